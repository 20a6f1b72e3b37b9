package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType discriminates the voucher union. Every consumer switches
// exhaustively on it; adding a type means touching the posting engine.
type VoucherType string

const (
	VoucherSales    VoucherType = "sales"
	VoucherPurchase VoucherType = "purchase"
	VoucherPayment  VoucherType = "payment"
	VoucherReceipt  VoucherType = "receipt"
	VoucherContra   VoucherType = "contra"
	VoucherJournal  VoucherType = "journal"
)

// Valid reports whether t is one of the six known voucher types.
func (t VoucherType) Valid() bool {
	switch t {
	case VoucherSales, VoucherPurchase, VoucherPayment, VoucherReceipt, VoucherContra, VoucherJournal:
		return true
	}
	return false
}

// LineItem is one goods line on a sales or purchase voucher.
type LineItem struct {
	Name    string
	Qty     decimal.Decimal
	Rate    decimal.Decimal
	GSTRate decimal.Decimal // percentage; zero means resolve from the stock master
}

// TaxableAmount returns qty x rate.
func (li LineItem) TaxableAmount() decimal.Decimal {
	return li.Qty.Mul(li.Rate)
}

// JournalEntry is one verbatim debit/credit line on a journal voucher.
type JournalEntry struct {
	Ledger string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Voucher is a single business transaction. Which fields carry meaning
// depends on Type:
//
//	sales/purchase: Party, InterState, Items
//	payment/receipt: Party, Account, Amount
//	contra:          FromAccount, ToAccount, Amount
//	journal:         Entries
type Voucher struct {
	No          string // caller-supplied voucher number, e.g. "2025-04-012"
	Type        VoucherType
	Date        time.Time
	Party       string
	Account     string // cash or bank ledger for payment/receipt
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	InterState  bool // place of supply outside the home state
	Items       []LineItem
	Entries     []JournalEntry
	Narration   string
}

// Movement is one side of a double-entry posting derived from a voucher.
// Exactly one of Debit/Credit is non-zero for movements the engine emits.
type Movement struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}
