package ledgers

import (
	"github.com/google/uuid"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// DefaultLedgers returns the ledgers every new books directory starts
// with: the trading and tax ledgers the posting engine references plus a
// cash account. Each gets a fresh ID.
func DefaultLedgers() []model.LedgerAccount {
	defaults := []model.LedgerAccount{
		{Name: "Cash", Category: "Assets", Group: "Current Assets", SubGroup1: "Cash & Bank"},
		{Name: "Sales", Category: "Income", Group: "Direct Income"},
		{Name: "Purchases", Category: "Expenditure", Group: "Direct Expenses"},
		{Name: "CGST", Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes"},
		{Name: "SGST", Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes"},
		{Name: "IGST", Category: "Liabilities", Group: "Current Liabilities", SubGroup1: "Duties & Taxes"},
	}
	for i := range defaults {
		defaults[i].ID = uuid.NewString()
	}
	return defaults
}
