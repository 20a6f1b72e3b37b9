package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/stock"
)

// StockSummaryRow is one item's movement totals: purchases bring stock
// in, sales take it out.
type StockSummaryRow struct {
	Item         string
	Unit         string
	Inward       decimal.Decimal
	Outward      decimal.Decimal
	Closing      decimal.Decimal // inward - outward
	InwardValue  decimal.Decimal // taxable value of purchases
	OutwardValue decimal.Decimal // taxable value of sales
}

// StockSummary aggregates item quantities across sales and purchase
// vouchers, keyed case-insensitively by item name. items supplies the
// display unit and may be nil.
func StockSummary(vouchers []model.Voucher, items *stock.Service) []StockSummaryRow {
	byItem := make(map[string]*StockSummaryRow)

	for _, v := range vouchers {
		if v.Type != model.VoucherSales && v.Type != model.VoucherPurchase {
			continue
		}
		for _, item := range v.Items {
			key := strings.ToLower(item.Name)
			row, ok := byItem[key]
			if !ok {
				row = &StockSummaryRow{Item: item.Name}
				if items != nil {
					if master, found := items.Get(item.Name); found {
						row.Item = master.Name
						row.Unit = master.Unit
					}
				}
				byItem[key] = row
			}

			if v.Type == model.VoucherPurchase {
				row.Inward = row.Inward.Add(item.Qty)
				row.InwardValue = row.InwardValue.Add(item.TaxableAmount())
			} else {
				row.Outward = row.Outward.Add(item.Qty)
				row.OutwardValue = row.OutwardValue.Add(item.TaxableAmount())
			}
		}
	}

	rows := make([]StockSummaryRow, 0, len(byItem))
	for _, row := range byItem {
		row.Closing = row.Inward.Sub(row.Outward)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Item) < strings.ToLower(rows[j].Item)
	})
	return rows
}
