package vouchers

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahikhata-dev/bahikhata/internal/model"
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

func quietLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleVouchers() []model.Voucher {
	return []model.Voucher{
		{
			No:    "2025-04-001",
			Type:  model.VoucherSales,
			Date:  date(2025, 4, 3),
			Party: "Sharma Traders",
			Items: []model.LineItem{
				{Name: "Cement", Qty: dec("10"), Rate: dec("350"), GSTRate: dec("28")},
				{Name: "Bricks", Qty: dec("500"), Rate: dec("8"), GSTRate: dec("5")},
			},
			Narration: "April supply",
		},
		{
			No:      "2025-04-002",
			Type:    model.VoucherReceipt,
			Date:    date(2025, 4, 10),
			Party:   "Sharma Traders",
			Account: "Cash",
			Amount:  dec("2000"),
		},
		{
			No:   "2025-04-003",
			Type: model.VoucherJournal,
			Date: date(2025, 4, 30),
			Entries: []model.JournalEntry{
				{Ledger: "Rent", Debit: dec("5000")},
				{Ledger: "Cash", Credit: dec("5000")},
			},
		},
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVouchers(&buf, sampleVouchers()))

	got, err := ReadVouchers(&buf, quietLogger())
	require.NoError(t, err)
	require.Len(t, got, 3)

	sales := got[0]
	assert.Equal(t, model.VoucherSales, sales.Type)
	assert.Equal(t, "Sharma Traders", sales.Party)
	require.Len(t, sales.Items, 2)
	assert.True(t, sales.Items[1].Qty.Equal(dec("500")))
	assert.Equal(t, "April supply", sales.Narration)

	receipt := got[1]
	assert.True(t, receipt.Amount.Equal(dec("2000")))
	assert.Equal(t, "Cash", receipt.Account)

	journal := got[2]
	require.Len(t, journal.Entries, 2)
	assert.True(t, journal.Entries[0].Debit.Equal(dec("5000")))
	assert.Equal(t, "Rent", journal.Entries[0].Ledger)
}

func TestRead_GroupsLinesByVoucherNumber(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVouchers(&buf, sampleVouchers()))

	// The sales voucher wrote two rows but reads back as one voucher.
	rows := strings.Count(buf.String(), "\n")
	assert.Equal(t, 6, rows, "header + 5 line rows")
}

func TestRead_SkipsMalformedRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVouchers(&buf, sampleVouchers()[:1]))
	buf.WriteString("2025-04-099a,not-a-date,sales,X,,,,,Cement,1,10,5,,,,\n")

	got, err := ReadVouchers(&buf, quietLogger())
	require.NoError(t, err)
	assert.Len(t, got, 1, "bad row skipped, good voucher kept")
}

func TestRead_UnknownTypeSkipped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVouchers(&buf, sampleVouchers()[:1]))
	buf.WriteString("2025-04-099a,2025-04-05,refund,X,,,,,,,,,,,,,\n")

	got, err := ReadVouchers(&buf, quietLogger())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRead_InterStateFlag(t *testing.T) {
	v := sampleVouchers()[0]
	v.InterState = true

	var buf bytes.Buffer
	require.NoError(t, WriteVouchers(&buf, []model.Voucher{v}))

	got, err := ReadVouchers(&buf, quietLogger())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].InterState)
}
