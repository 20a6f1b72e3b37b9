package stock

import (
	"testing"

	"github.com/shopspring/decimal"
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

func TestGSTRate_Lookup(t *testing.T) {
	svc := NewService([]model.StockItem{
		{Name: "Cement", Unit: "bag", GSTRate: dec("28")},
		{Name: "Bricks", Unit: "pcs", GSTRate: dec("5")},
	})

	rate, ok := svc.GSTRate("cement")
	require.True(t, ok)
	assert.True(t, rate.Equal(dec("28")))

	_, ok = svc.GSTRate("Sand")
	assert.False(t, ok)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	svc := NewService([]model.StockItem{
		{Name: "Cement", Unit: "bag", GSTRate: dec("28")},
		{Name: "Sand", Unit: "ton"}, // zero-rate item
	})
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded.All(), 2)

	sand, ok := loaded.Get("sand")
	require.True(t, ok)
	assert.True(t, sand.GSTRate.IsZero())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	svc, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, svc.All())
}
