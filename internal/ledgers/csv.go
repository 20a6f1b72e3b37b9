package ledgers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

const (
	numFields    = 8
	colID        = 0
	colName      = 1
	colCategory  = 2
	colGroup     = 3
	colSubGroup1 = 4
	colSubGroup2 = 5
	colSubGroup3 = 6
	colParentID  = 7
)

// ReadLedgers reads masters/ledgers.csv.
func ReadLedgers(r io.Reader) ([]model.LedgerAccount, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledgers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.LedgerAccount
	for i, rec := range records[1:] {
		acct, err := UnmarshalLedger(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteLedgers writes masters/ledgers.csv.
func WriteLedgers(w io.Writer, accounts []model.LedgerAccount) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"ledger_id", "name", "category", "group", "sub_group_1", "sub_group_2", "sub_group_3", "parent_ledger_id"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalLedger(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalLedger converts a LedgerAccount to a CSV row.
func MarshalLedger(a model.LedgerAccount) []string {
	row := make([]string, numFields)
	row[colID] = a.ID
	row[colName] = a.Name
	row[colCategory] = a.Category
	row[colGroup] = a.Group
	row[colSubGroup1] = a.SubGroup1
	row[colSubGroup2] = a.SubGroup2
	row[colSubGroup3] = a.SubGroup3
	row[colParentID] = a.ParentLedgerID
	return row
}

// UnmarshalLedger converts a CSV row to a LedgerAccount.
func UnmarshalLedger(record []string) (model.LedgerAccount, error) {
	if len(record) != numFields {
		return model.LedgerAccount{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colName] == "" {
		return model.LedgerAccount{}, fmt.Errorf("ledger name is required")
	}

	return model.LedgerAccount{
		ID:             record[colID],
		Name:           record[colName],
		Category:       record[colCategory],
		Group:          record[colGroup],
		SubGroup1:      record[colSubGroup1],
		SubGroup2:      record[colSubGroup2],
		SubGroup3:      record[colSubGroup3],
		ParentLedgerID: record[colParentID],
	}, nil
}
