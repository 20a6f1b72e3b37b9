package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute_IntraState(t *testing.T) {
	split, err := Compute(dec("1000"), dec("18"), false)
	require.NoError(t, err)

	assert.True(t, split.CGST.Equal(dec("90")), "cgst = %s", split.CGST)
	assert.True(t, split.SGST.Equal(dec("90")), "sgst = %s", split.SGST)
	assert.True(t, split.IGST.IsZero())
	assert.True(t, split.Total.Equal(dec("1180")), "total = %s", split.Total)
}

func TestCompute_InterState(t *testing.T) {
	split, err := Compute(dec("1000"), dec("18"), true)
	require.NoError(t, err)

	assert.True(t, split.CGST.IsZero())
	assert.True(t, split.SGST.IsZero())
	assert.True(t, split.IGST.Equal(dec("180")), "igst = %s", split.IGST)
	assert.True(t, split.Total.Equal(dec("1180")))
}

func TestCompute_ZeroRate(t *testing.T) {
	split, err := Compute(dec("500"), decimal.Zero, false)
	require.NoError(t, err)

	assert.True(t, split.Tax().IsZero())
	assert.True(t, split.Total.Equal(dec("500")))
}

func TestCompute_ExactHalves(t *testing.T) {
	// An odd tax amount must still split exactly, not round.
	split, err := Compute(dec("100"), dec("5"), false)
	require.NoError(t, err)

	assert.True(t, split.CGST.Equal(dec("2.5")))
	assert.True(t, split.SGST.Equal(dec("2.5")))
	assert.True(t, split.CGST.Add(split.SGST).Equal(dec("5")))
}

func TestCompute_NegativeTaxable(t *testing.T) {
	_, err := Compute(dec("-1"), dec("18"), false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompute_NegativeRate(t *testing.T) {
	_, err := Compute(dec("100"), dec("-18"), false)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
