package reports

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/posting"
)

// GSTRow is one party's aggregated line in a GSTR table.
type GSTRow struct {
	Party    string
	Vouchers int
	Taxable  decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	IGST     decimal.Decimal
	Total    decimal.Decimal
}

// GSTR1 summarizes outward supplies (sales vouchers) per party.
func GSTR1(engine *posting.Engine, vouchers []model.Voucher) []GSTRow {
	return gstTable(engine, vouchers, model.VoucherSales)
}

// GSTR2 summarizes inward supplies (purchase vouchers) per party.
func GSTR2(engine *posting.Engine, vouchers []model.Voucher) []GSTRow {
	return gstTable(engine, vouchers, model.VoucherPurchase)
}

func gstTable(engine *posting.Engine, vouchers []model.Voucher, vtype model.VoucherType) []GSTRow {
	byParty := make(map[string]*GSTRow)

	for _, v := range vouchers {
		if v.Type != vtype {
			continue
		}
		taxable, split := engine.InvoiceTax(v)

		key := strings.ToLower(v.Party)
		row, ok := byParty[key]
		if !ok {
			row = &GSTRow{Party: v.Party}
			byParty[key] = row
		}
		row.Vouchers++
		row.Taxable = row.Taxable.Add(taxable)
		row.CGST = row.CGST.Add(split.CGST)
		row.SGST = row.SGST.Add(split.SGST)
		row.IGST = row.IGST.Add(split.IGST)
		row.Total = row.Total.Add(split.Total)
	}

	rows := make([]GSTRow, 0, len(byParty))
	for _, row := range byParty {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].Party) < strings.ToLower(rows[j].Party)
	})
	return rows
}
