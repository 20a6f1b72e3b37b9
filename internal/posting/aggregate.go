package posting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// UnknownAccountPolicy decides what the aggregator does when a voucher
// references an account outside the known ledger set.
type UnknownAccountPolicy int

const (
	// AutoCreateUnknown materializes missing accounts on the fly so no
	// posting is ever dropped. The right choice for report contexts where
	// master data may be out of sync.
	AutoCreateUnknown UnknownAccountPolicy = iota
	// RejectUnknown fails the computation with a MissingReferenceError
	// naming every unknown account. The right choice for strict backends.
	RejectUnknown
)

// MissingReferenceError reports vouchers naming accounts absent from the
// known ledger set under the RejectUnknown policy.
type MissingReferenceError struct {
	Accounts []string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("vouchers reference unknown accounts: %s", strings.Join(e.Accounts, ", "))
}

// TrialBalanceRow is one account's net position. Exactly one of
// Debit/Credit is non-zero.
type TrialBalanceRow struct {
	Ledger string
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance is the full report: rows sorted by ledger name plus column
// totals, which are equal for any valid voucher set.
type TrialBalance struct {
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// StatementRow is one line of a single-account ledger statement, seen from
// that account's point of view.
type StatementRow struct {
	Date        time.Time
	VoucherNo   string
	VoucherType model.VoucherType
	Particulars string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// Aggregator nets voucher movements per account. It is stateless across
// calls; every computation starts from the snapshot it is handed.
type Aggregator struct {
	engine *Engine
	policy UnknownAccountPolicy
	log    logrus.FieldLogger
}

// NewAggregator creates an Aggregator over engine with the given policy.
func NewAggregator(engine *Engine, policy UnknownAccountPolicy, log logrus.FieldLogger) *Aggregator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Aggregator{engine: engine, policy: policy, log: log}
}

// account accumulates one ledger's totals. Display name is the first
// casing seen; lookups are case-insensitive.
type account struct {
	name   string
	debit  decimal.Decimal
	credit decimal.Decimal
}

// TrialBalance runs the engine over every voucher, nets each account to a
// single side, and drops zero-balance accounts. Known ledgers are seeded
// at zero so the unknown-account policy can tell them apart from typos.
func (a *Aggregator) TrialBalance(vouchers []model.Voucher, knownLedgers []string) (TrialBalance, error) {
	accounts := make(map[string]*account)
	known := make(map[string]bool, len(knownLedgers))
	for _, name := range knownLedgers {
		key := strings.ToLower(name)
		known[key] = true
		if _, ok := accounts[key]; !ok {
			accounts[key] = &account{name: name}
		}
	}

	var unknown []string
	unknownSeen := make(map[string]bool)

	for _, v := range vouchers {
		for _, m := range a.engine.Movements(v) {
			key := strings.ToLower(m.Account)
			acct, ok := accounts[key]
			if !ok {
				if !known[key] && !unknownSeen[key] {
					unknownSeen[key] = true
					unknown = append(unknown, m.Account)
					a.log.WithFields(logrus.Fields{
						"voucher": v.No,
						"account": m.Account,
					}).Warn("voucher references unknown ledger")
				}
				acct = &account{name: m.Account}
				accounts[key] = acct
			}
			acct.debit = acct.debit.Add(m.Debit)
			acct.credit = acct.credit.Add(m.Credit)
		}
	}

	if a.policy == RejectUnknown && len(unknown) > 0 {
		sort.Strings(unknown)
		return TrialBalance{}, &MissingReferenceError{Accounts: unknown}
	}

	var tb TrialBalance
	for _, acct := range accounts {
		net := acct.debit.Sub(acct.credit)
		if net.IsZero() {
			continue
		}
		row := TrialBalanceRow{Ledger: acct.name}
		if net.IsPositive() {
			row.Debit = net
			tb.TotalDebit = tb.TotalDebit.Add(net)
		} else {
			row.Credit = net.Neg()
			tb.TotalCredit = tb.TotalCredit.Add(net.Neg())
		}
		tb.Rows = append(tb.Rows, row)
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		return strings.ToLower(tb.Rows[i].Ledger) < strings.ToLower(tb.Rows[j].Ledger)
	})
	return tb, nil
}

// LedgerStatement filters vouchers touching the selected account and
// produces its running statement, sorted by date ascending (stable, so
// same-day vouchers keep input order) before the balance is computed.
func (a *Aggregator) LedgerStatement(vouchers []model.Voucher, selected string) []StatementRow {
	key := strings.ToLower(selected)

	var rows []StatementRow
	for _, v := range vouchers {
		movs := a.engine.Movements(v)
		for _, m := range movs {
			if strings.ToLower(m.Account) != key {
				continue
			}
			rows = append(rows, StatementRow{
				Date:        v.Date,
				VoucherNo:   v.No,
				VoucherType: v.Type,
				Particulars: particulars(v, movs, key),
				Debit:       m.Debit,
				Credit:      m.Credit,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	balance := decimal.Zero
	for i := range rows {
		balance = balance.Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].Balance = balance
	}
	return rows
}

// particulars names the other side of the entry: the first movement in the
// voucher not posted to the selected account, falling back to narration.
func particulars(v model.Voucher, movs []model.Movement, selectedKey string) string {
	for _, m := range movs {
		if strings.ToLower(m.Account) != selectedKey {
			return m.Account
		}
	}
	if v.Narration != "" {
		return v.Narration
	}
	return string(v.Type)
}
