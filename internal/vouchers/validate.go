package vouchers

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/id"
	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant int
	VoucherNo string
	Detail    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.VoucherNo, e.Detail)
}

// LedgerChecker tests whether a ledger name exists in the masters.
type LedgerChecker interface {
	Exists(name string) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateVouchers enforces 5 invariants on a month's vouchers before
// they are written. Entry is strict where reporting is lenient: a
// voucher that fails here never reaches the books.
func ValidateVouchers(vs []model.Voucher, ledgers LedgerChecker, year, month int) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool)
	for _, v := range vs {
		// Invariant 1: journal vouchers balance; other types balance by
		// construction.
		if v.Type == model.VoucherJournal {
			totalDebit := decimal.Zero
			totalCredit := decimal.Zero
			for _, entry := range v.Entries {
				totalDebit = totalDebit.Add(entry.Debit)
				totalCredit = totalCredit.Add(entry.Credit)
			}
			if !totalDebit.Equal(totalCredit) {
				errs = append(errs, ValidationError{
					Invariant: 1,
					VoucherNo: v.No,
					Detail:    fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
				})
			}
			if len(v.Entries) == 0 {
				errs = append(errs, ValidationError{Invariant: 1, VoucherNo: v.No, Detail: "journal voucher has no entries"})
			}
		}

		// Invariant 2: the fields the voucher type requires are present.
		for _, missing := range missingFields(v) {
			errs = append(errs, ValidationError{
				Invariant: 2,
				VoucherNo: v.No,
				Detail:    missing + " is required for " + string(v.Type) + " vouchers",
			})
		}

		// Invariant 3: referenced ledgers exist in the masters.
		for _, name := range referencedLedgers(v) {
			if !ledgers.Exists(name) {
				errs = append(errs, ValidationError{
					Invariant: 3,
					VoucherNo: v.No,
					Detail:    fmt.Sprintf("unknown ledger %q", name),
				})
			}
		}

		// Invariant 4: date within the month being written.
		if v.Date.Year() != year || int(v.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant: 4,
				VoucherNo: v.No,
				Detail:    fmt.Sprintf("date %s not in %04d-%02d", v.Date.Format("2006-01-02"), year, month),
			})
		}

		// Invariant 5: amounts are non-negative with at most 2 decimal
		// places; quantities and rates are non-negative.
		errs = append(errs, amountErrors(v)...)

		if no := id.VoucherGroup(v.No); no != "" {
			if seen[no] {
				errs = append(errs, ValidationError{Invariant: 2, VoucherNo: v.No, Detail: "duplicate voucher number"})
			}
			seen[no] = true
		}
	}

	return errs
}

// missingFields returns the names of required fields absent for the
// voucher's type.
func missingFields(v model.Voucher) []string {
	var missing []string
	require := func(value, name string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch v.Type {
	case model.VoucherSales, model.VoucherPurchase:
		require(v.Party, "party")
		if len(v.Items) == 0 {
			missing = append(missing, "items")
		}
	case model.VoucherPayment, model.VoucherReceipt:
		require(v.Party, "party")
		require(v.Account, "account")
	case model.VoucherContra:
		require(v.FromAccount, "from account")
		require(v.ToAccount, "to account")
	case model.VoucherJournal:
		// Entries are covered by invariant 1.
	default:
		missing = append(missing, "valid voucher type")
	}
	return missing
}

// referencedLedgers lists every ledger name a voucher posts to,
// including the trading and tax ledgers the engine will touch.
func referencedLedgers(v model.Voucher) []string {
	var names []string
	add := func(name string) {
		if name != "" {
			names = append(names, name)
		}
	}

	switch v.Type {
	case model.VoucherSales, model.VoucherPurchase:
		add(v.Party)
	case model.VoucherPayment, model.VoucherReceipt:
		add(v.Party)
		add(v.Account)
	case model.VoucherContra:
		add(v.FromAccount)
		add(v.ToAccount)
	case model.VoucherJournal:
		for _, entry := range v.Entries {
			add(entry.Ledger)
		}
	}
	return names
}

// amountErrors checks every decimal on the voucher for sign and scale.
func amountErrors(v model.Voucher) []ValidationError {
	var errs []ValidationError
	check := func(d decimal.Decimal, name string, money bool) {
		if d.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant: 5,
				VoucherNo: v.No,
				Detail:    fmt.Sprintf("%s %s is negative", name, d),
			})
			return
		}
		if money && !d.Mul(hundred).Equal(d.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant: 5,
				VoucherNo: v.No,
				Detail:    fmt.Sprintf("%s %s has more than 2 decimal places", name, d),
			})
		}
	}

	check(v.Amount, "amount", true)
	for _, item := range v.Items {
		check(item.Qty, "qty", false)
		check(item.Rate, "rate", false)
		check(item.GSTRate, "gst_rate", false)
	}
	for _, entry := range v.Entries {
		check(entry.Debit, "debit", true)
		check(entry.Credit, "credit", true)
	}
	return errs
}
