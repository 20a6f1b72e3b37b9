// Package reports derives the thin report projections (day book, stock
// summary, GSTR tables) from posting engine output.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/posting"
)

// DayBookRow is one voucher in the day book.
type DayBookRow struct {
	Date        time.Time
	VoucherNo   string
	Type        model.VoucherType
	Particulars string
	Amount      decimal.Decimal // voucher total (sum of its debit movements)
}

// DayBook lists every voucher chronologically with its total amount.
// Vouchers contributing no movements still appear, at zero.
func DayBook(engine *posting.Engine, vouchers []model.Voucher) []DayBookRow {
	rows := make([]DayBookRow, 0, len(vouchers))
	for _, v := range vouchers {
		totalDebit, _ := posting.Totals(engine.Movements(v))
		rows = append(rows, DayBookRow{
			Date:        v.Date,
			VoucherNo:   v.No,
			Type:        v.Type,
			Particulars: voucherParticulars(v),
			Amount:      totalDebit,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

func voucherParticulars(v model.Voucher) string {
	switch v.Type {
	case model.VoucherContra:
		return fmt.Sprintf("%s -> %s", v.FromAccount, v.ToAccount)
	case model.VoucherJournal:
		if v.Narration != "" {
			return v.Narration
		}
		return "Journal"
	default:
		return v.Party
	}
}
