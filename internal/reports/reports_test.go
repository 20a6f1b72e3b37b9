package reports

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahikhata-dev/bahikhata/internal/model"
	"github.com/bahikhata-dev/bahikhata/internal/posting"
	"github.com/bahikhata-dev/bahikhata/internal/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func testEngine() *posting.Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return posting.NewEngine(nil, log)
}

func fixtureVouchers() []model.Voucher {
	return []model.Voucher{
		{
			No: "2025-04-002", Type: model.VoucherSales, Date: date(2025, 4, 8),
			Party: "Sharma Traders",
			Items: []model.LineItem{{Name: "Cement", Qty: dec("10"), Rate: dec("100"), GSTRate: dec("18")}},
		},
		{
			No: "2025-04-001", Type: model.VoucherPurchase, Date: date(2025, 4, 2),
			Party: "Mills Ltd", InterState: true,
			Items: []model.LineItem{{Name: "Cement", Qty: dec("50"), Rate: dec("80"), GSTRate: dec("18")}},
		},
		{
			No: "2025-04-003", Type: model.VoucherContra, Date: date(2025, 4, 9),
			FromAccount: "Cash", ToAccount: "HDFC Bank", Amount: dec("500"),
		},
	}
}

func TestDayBook_ChronologicalWithTotals(t *testing.T) {
	rows := DayBook(testEngine(), fixtureVouchers())
	require.Len(t, rows, 3)

	assert.Equal(t, "2025-04-001", rows[0].VoucherNo)
	assert.Equal(t, "2025-04-002", rows[1].VoucherNo)
	assert.Equal(t, "2025-04-003", rows[2].VoucherNo)

	// Purchase: 50 x 80 = 4000 taxable + 18% IGST = 4720 total debits.
	assert.True(t, rows[0].Amount.Equal(dec("4720")), "purchase amount = %s", rows[0].Amount)
	assert.True(t, rows[1].Amount.Equal(dec("1180")))
	assert.True(t, rows[2].Amount.Equal(dec("500")))
	assert.Equal(t, "Cash -> HDFC Bank", rows[2].Particulars)
}

func TestDayBook_EmptyJournalAppearsAtZero(t *testing.T) {
	vouchers := []model.Voucher{{No: "2025-04-001", Type: model.VoucherJournal, Date: date(2025, 4, 1)}}
	rows := DayBook(testEngine(), vouchers)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.IsZero())
}

func TestStockSummary_InwardOutwardClosing(t *testing.T) {
	items := stock.NewService([]model.StockItem{{Name: "Cement", Unit: "bag", GSTRate: dec("18")}})

	rows := StockSummary(fixtureVouchers(), items)
	require.Len(t, rows, 1)

	cement := rows[0]
	assert.Equal(t, "Cement", cement.Item)
	assert.Equal(t, "bag", cement.Unit)
	assert.True(t, cement.Inward.Equal(dec("50")))
	assert.True(t, cement.Outward.Equal(dec("10")))
	assert.True(t, cement.Closing.Equal(dec("40")))
	assert.True(t, cement.InwardValue.Equal(dec("4000")))
	assert.True(t, cement.OutwardValue.Equal(dec("1000")))
}

func TestStockSummary_NilMasters(t *testing.T) {
	rows := StockSummary(fixtureVouchers(), nil)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Unit)
}

func TestGSTR1_OutwardSuppliesOnly(t *testing.T) {
	rows := GSTR1(testEngine(), fixtureVouchers())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Sharma Traders", row.Party)
	assert.Equal(t, 1, row.Vouchers)
	assert.True(t, row.Taxable.Equal(dec("1000")))
	assert.True(t, row.CGST.Equal(dec("90")))
	assert.True(t, row.SGST.Equal(dec("90")))
	assert.True(t, row.IGST.IsZero())
	assert.True(t, row.Total.Equal(dec("1180")))
}

func TestGSTR2_InterStateGoesToIGST(t *testing.T) {
	rows := GSTR2(testEngine(), fixtureVouchers())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Mills Ltd", row.Party)
	assert.True(t, row.IGST.Equal(dec("720")))
	assert.True(t, row.CGST.IsZero())
	assert.True(t, row.Total.Equal(dec("4720")))
}

func TestGSTR1_AggregatesPerParty(t *testing.T) {
	vouchers := append(fixtureVouchers(), model.Voucher{
		No: "2025-04-004", Type: model.VoucherSales, Date: date(2025, 4, 20),
		Party: "sharma traders", // different casing, same party
		Items: []model.LineItem{{Name: "Bricks", Qty: dec("100"), Rate: dec("5"), GSTRate: dec("5")}},
	})

	rows := GSTR1(testEngine(), vouchers)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Vouchers)
	assert.True(t, rows[0].Taxable.Equal(dec("1500")))
}
