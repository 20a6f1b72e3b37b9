// Package vouchers stores vouchers as month-partitioned CSV files, one
// row per voucher line, grouped by voucher number.
package vouchers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/bahikhata-dev/bahikhata/internal/id"
	"github.com/bahikhata-dev/bahikhata/internal/model"
)

// Header is the CSV header for vouchers.csv.
const Header = "line_id,date,type,party,account,from_account,to_account,inter_state,item,qty,rate,gst_rate,amount,ledger,debit,credit,narration"

const (
	numFields     = 17
	dateFormat    = "2006-01-02"
	colLineID     = 0
	colDate       = 1
	colType       = 2
	colParty      = 3
	colAccount    = 4
	colFrom       = 5
	colTo         = 6
	colInterState = 7
	colItem       = 8
	colQty        = 9
	colRate       = 10
	colGSTRate    = 11
	colAmount     = 12
	colLedger     = 13
	colDebit      = 14
	colCredit     = 15
	colNarration  = 16
)

// line is one CSV row. A sales/purchase voucher has one line per item, a
// journal voucher one line per entry, and the transfer types a single
// line. Shared fields repeat on every line of a voucher.
type line struct {
	LineID     string
	Date       time.Time
	Type       model.VoucherType
	Party      string
	Account    string
	From       string
	To         string
	InterState bool
	Item       string
	Qty        decimal.Decimal
	Rate       decimal.Decimal
	GSTRate    decimal.Decimal
	Amount     decimal.Decimal
	Ledger     string
	Debit      decimal.Decimal
	Credit     decimal.Decimal
	Narration  string
}

// ReadVouchers reads all vouchers from a vouchers.csv reader. Rows that
// fail to parse are logged and skipped so one bad row never hides the
// rest of the month.
func ReadVouchers(r io.Reader, log logrus.FieldLogger) ([]model.Voucher, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	var lines []line
	first := true
	for rowNum := 1; ; rowNum++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vouchers CSV: %w", err)
		}
		if first {
			first = false
			continue // header
		}

		ln, err := unmarshalLine(rec)
		if err != nil {
			log.WithField("row", rowNum).WithError(err).Warn("skipping malformed voucher row")
			continue
		}
		lines = append(lines, ln)
	}

	return assemble(lines), nil
}

// WriteVouchers writes vouchers (including header).
func WriteVouchers(w io.Writer, vouchers []model.Voucher) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return writeLines(cw, vouchers)
}

// AppendVouchers appends vouchers to an existing vouchers.csv (no header).
func AppendVouchers(w io.Writer, vouchers []model.Voucher) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	return writeLines(cw, vouchers)
}

func writeLines(cw *csv.Writer, vouchers []model.Voucher) error {
	for _, v := range vouchers {
		for i, ln := range explode(v) {
			if err := cw.Write(marshalLine(ln)); err != nil {
				return fmt.Errorf("writing voucher %s line %d: %w", v.No, i, err)
			}
		}
	}
	return cw.Error()
}

// explode flattens a voucher into its CSV lines.
func explode(v model.Voucher) []line {
	base := line{
		Date:       v.Date,
		Type:       v.Type,
		Party:      v.Party,
		Account:    v.Account,
		From:       v.FromAccount,
		To:         v.ToAccount,
		InterState: v.InterState,
		Narration:  v.Narration,
	}

	var lines []line
	switch v.Type {
	case model.VoucherSales, model.VoucherPurchase:
		for _, item := range v.Items {
			ln := base
			ln.Item = item.Name
			ln.Qty = item.Qty
			ln.Rate = item.Rate
			ln.GSTRate = item.GSTRate
			lines = append(lines, ln)
		}
	case model.VoucherJournal:
		for _, entry := range v.Entries {
			ln := base
			ln.Ledger = entry.Ledger
			ln.Debit = entry.Debit
			ln.Credit = entry.Credit
			lines = append(lines, ln)
		}
	default:
		ln := base
		ln.Amount = v.Amount
		lines = append(lines, ln)
	}

	for i := range lines {
		lines[i].LineID = id.FormatLineID(v.No, i)
	}
	return lines
}

// assemble groups lines by voucher number, in file order, and rebuilds
// the vouchers.
func assemble(lines []line) []model.Voucher {
	var vouchers []model.Voucher
	byNo := make(map[string]int)

	for _, ln := range lines {
		no := id.VoucherGroup(ln.LineID)
		idx, seen := byNo[no]
		if !seen {
			idx = len(vouchers)
			byNo[no] = idx
			vouchers = append(vouchers, model.Voucher{
				No:          no,
				Type:        ln.Type,
				Date:        ln.Date,
				Party:       ln.Party,
				Account:     ln.Account,
				FromAccount: ln.From,
				ToAccount:   ln.To,
				Amount:      ln.Amount,
				InterState:  ln.InterState,
				Narration:   ln.Narration,
			})
		}

		switch ln.Type {
		case model.VoucherSales, model.VoucherPurchase:
			vouchers[idx].Items = append(vouchers[idx].Items, model.LineItem{
				Name:    ln.Item,
				Qty:     ln.Qty,
				Rate:    ln.Rate,
				GSTRate: ln.GSTRate,
			})
		case model.VoucherJournal:
			vouchers[idx].Entries = append(vouchers[idx].Entries, model.JournalEntry{
				Ledger: ln.Ledger,
				Debit:  ln.Debit,
				Credit: ln.Credit,
			})
		}
	}
	return vouchers
}

// marshalLine converts a line to a CSV row.
func marshalLine(ln line) []string {
	row := make([]string, numFields)
	row[colLineID] = ln.LineID
	row[colDate] = ln.Date.Format(dateFormat)
	row[colType] = string(ln.Type)
	row[colParty] = ln.Party
	row[colAccount] = ln.Account
	row[colFrom] = ln.From
	row[colTo] = ln.To
	if ln.InterState {
		row[colInterState] = "true"
	}
	row[colItem] = ln.Item
	if !ln.Qty.IsZero() {
		row[colQty] = ln.Qty.String()
	}
	if !ln.Rate.IsZero() {
		row[colRate] = ln.Rate.String()
	}
	if !ln.GSTRate.IsZero() {
		row[colGSTRate] = ln.GSTRate.String()
	}
	if !ln.Amount.IsZero() {
		row[colAmount] = ln.Amount.StringFixed(2)
	}
	row[colLedger] = ln.Ledger
	if !ln.Debit.IsZero() {
		row[colDebit] = ln.Debit.StringFixed(2)
	}
	if !ln.Credit.IsZero() {
		row[colCredit] = ln.Credit.StringFixed(2)
	}
	row[colNarration] = ln.Narration
	return row
}

// unmarshalLine converts a CSV row to a line.
func unmarshalLine(record []string) (line, error) {
	if len(record) != numFields {
		return line{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return line{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	vtype := model.VoucherType(record[colType])
	if !vtype.Valid() {
		return line{}, fmt.Errorf("unknown voucher type %q", record[colType])
	}

	ln := line{
		LineID:     record[colLineID],
		Date:       date,
		Type:       vtype,
		Party:      record[colParty],
		Account:    record[colAccount],
		From:       record[colFrom],
		To:         record[colTo],
		InterState: record[colInterState] == "true",
		Item:       record[colItem],
		Ledger:     record[colLedger],
		Narration:  record[colNarration],
	}

	for _, field := range []struct {
		name string
		col  int
		dst  *decimal.Decimal
	}{
		{"qty", colQty, &ln.Qty},
		{"rate", colRate, &ln.Rate},
		{"gst_rate", colGSTRate, &ln.GSTRate},
		{"amount", colAmount, &ln.Amount},
		{"debit", colDebit, &ln.Debit},
		{"credit", colCredit, &ln.Credit},
	} {
		if record[field.col] == "" {
			continue
		}
		d, err := decimal.NewFromString(record[field.col])
		if err != nil {
			return line{}, fmt.Errorf("parsing %s %q: %w", field.name, record[field.col], err)
		}
		*field.dst = d
	}

	return ln, nil
}
