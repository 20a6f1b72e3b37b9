package stock

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

const (
	numFields  = 3
	colName    = 0
	colUnit    = 1
	colGSTRate = 2
)

// ReadItems reads masters/stock-items.csv.
func ReadItems(r io.Reader) ([]model.StockItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading stock CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var items []model.StockItem
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteItems writes masters/stock-items.csv.
func WriteItems(w io.Writer, items []model.StockItem) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "unit", "gst_rate"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range items {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalItem converts a StockItem to a CSV row.
func MarshalItem(item model.StockItem) []string {
	row := make([]string, numFields)
	row[colName] = item.Name
	row[colUnit] = item.Unit
	if !item.GSTRate.IsZero() {
		row[colGSTRate] = item.GSTRate.String()
	}
	return row
}

// UnmarshalItem converts a CSV row to a StockItem.
func UnmarshalItem(record []string) (model.StockItem, error) {
	if len(record) != numFields {
		return model.StockItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colName] == "" {
		return model.StockItem{}, fmt.Errorf("stock item name is required")
	}

	rate := decimal.Zero
	if record[colGSTRate] != "" {
		var err error
		rate, err = decimal.NewFromString(record[colGSTRate])
		if err != nil {
			return model.StockItem{}, fmt.Errorf("parsing gst_rate %q: %w", record[colGSTRate], err)
		}
	}

	return model.StockItem{
		Name:    record[colName],
		Unit:    record[colUnit],
		GSTRate: rate,
	}, nil
}
