// Package posting derives double-entry ledger movements from vouchers and
// aggregates them into trial balances and ledger statements.
package posting

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/gst"
	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Well-known ledgers the engine posts trading and tax movements to.
const (
	LedgerSales     = "Sales"
	LedgerPurchases = "Purchases"
	LedgerCGST      = "CGST"
	LedgerSGST      = "SGST"
	LedgerIGST      = "IGST"
)

// RateResolver looks up the GST rate for a stock item by name. Used when a
// voucher line carries no rate of its own.
type RateResolver interface {
	GSTRate(item string) (decimal.Decimal, bool)
}

// Engine turns one voucher into its ordered list of account movements.
// It performs no rounding and never drops a movement because an account
// is unknown; unknown accounts are the aggregator's concern.
type Engine struct {
	rates RateResolver
	log   logrus.FieldLogger
}

// NewEngine creates an Engine. rates may be nil if every line carries its
// own GST rate.
func NewEngine(rates RateResolver, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{rates: rates, log: log}
}

// InvoiceTax sums the taxable amount and GST split across a sales or
// purchase voucher's item lines. Lines that fail to split (negative
// quantity or rate) contribute zero and are logged, never fatal.
func (e *Engine) InvoiceTax(v model.Voucher) (taxable decimal.Decimal, split gst.Split) {
	for _, item := range v.Items {
		rate := item.GSTRate
		if rate.IsZero() && e.rates != nil {
			if r, ok := e.rates.GSTRate(item.Name); ok {
				rate = r
			}
		}

		lineSplit, err := gst.Compute(item.TaxableAmount(), rate, v.InterState)
		if err != nil {
			e.log.WithFields(logrus.Fields{
				"voucher": v.No,
				"item":    item.Name,
			}).WithError(err).Warn("skipping malformed voucher line")
			continue
		}

		taxable = taxable.Add(item.TaxableAmount())
		split.CGST = split.CGST.Add(lineSplit.CGST)
		split.SGST = split.SGST.Add(lineSplit.SGST)
		split.IGST = split.IGST.Add(lineSplit.IGST)
		split.Total = split.Total.Add(lineSplit.Total)
	}
	return taxable, split
}

// Movements derives the double-entry movements for one voucher. For every
// voucher the sum of debits equals the sum of credits. A malformed voucher
// (empty journal, non-positive amount) contributes no movements so one bad
// record never aborts a report.
func (e *Engine) Movements(v model.Voucher) []model.Movement {
	switch v.Type {
	case model.VoucherSales:
		return e.invoiceMovements(v, false)
	case model.VoucherPurchase:
		return e.invoiceMovements(v, true)
	case model.VoucherPayment:
		return e.transferMovements(v, v.Party, v.Account)
	case model.VoucherReceipt:
		return e.transferMovements(v, v.Account, v.Party)
	case model.VoucherContra:
		return e.transferMovements(v, v.ToAccount, v.FromAccount)
	case model.VoucherJournal:
		return e.journalMovements(v)
	}
	e.log.WithField("voucher", v.No).Warnf("unknown voucher type %q", v.Type)
	return nil
}

// invoiceMovements posts a sales voucher (debit party, credit Sales and tax
// ledgers) or, mirrored, a purchase voucher (credit party, debit Purchases
// and tax ledgers).
func (e *Engine) invoiceMovements(v model.Voucher, mirror bool) []model.Movement {
	taxable, split := e.InvoiceTax(v)
	if split.Total.IsZero() {
		return nil
	}

	trading := LedgerSales
	if mirror {
		trading = LedgerPurchases
	}

	movs := []model.Movement{debit(v.Party, split.Total)}
	if !taxable.IsZero() {
		movs = append(movs, credit(trading, taxable))
	}
	if !split.IGST.IsZero() {
		movs = append(movs, credit(LedgerIGST, split.IGST))
	}
	if !split.CGST.IsZero() {
		movs = append(movs, credit(LedgerCGST, split.CGST), credit(LedgerSGST, split.SGST))
	}

	if mirror {
		for i := range movs {
			movs[i].Debit, movs[i].Credit = movs[i].Credit, movs[i].Debit
		}
	}
	return movs
}

// transferMovements posts Amount as a debit to one account and a credit to
// another (payment, receipt, contra).
func (e *Engine) transferMovements(v model.Voucher, debitAcct, creditAcct string) []model.Movement {
	if !v.Amount.IsPositive() {
		if !v.Amount.IsZero() {
			e.log.WithFields(logrus.Fields{
				"voucher": v.No,
				"amount":  v.Amount,
			}).Warn("skipping voucher with negative amount")
		}
		return nil
	}
	return []model.Movement{debit(debitAcct, v.Amount), credit(creditAcct, v.Amount)}
}

// journalMovements posts each journal entry verbatim.
func (e *Engine) journalMovements(v model.Voucher) []model.Movement {
	if len(v.Entries) == 0 {
		e.log.WithField("voucher", v.No).Warn("journal voucher has no entries")
		return nil
	}
	movs := make([]model.Movement, 0, len(v.Entries))
	for _, entry := range v.Entries {
		movs = append(movs, model.Movement{Account: entry.Ledger, Debit: entry.Debit, Credit: entry.Credit})
	}
	return movs
}

// Totals sums the debit and credit columns of a movement list.
func Totals(movs []model.Movement) (totalDebit, totalCredit decimal.Decimal) {
	for _, m := range movs {
		totalDebit = totalDebit.Add(m.Debit)
		totalCredit = totalCredit.Add(m.Credit)
	}
	return totalDebit, totalCredit
}

func debit(account string, amount decimal.Decimal) model.Movement {
	return model.Movement{Account: account, Debit: amount}
}

func credit(account string, amount decimal.Decimal) model.Movement {
	return model.Movement{Account: account, Credit: amount}
}
