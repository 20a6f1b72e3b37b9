package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVoucherNo(t *testing.T) {
	assert.Equal(t, "2025-04-001", FormatVoucherNo(2025, 4, 1))
	assert.Equal(t, "2025-12-123", FormatVoucherNo(2025, 12, 123))
}

func TestFormatLineID(t *testing.T) {
	assert.Equal(t, "2025-04-001a", FormatLineID("2025-04-001", 0))
	assert.Equal(t, "2025-04-001c", FormatLineID("2025-04-001", 2))
}

func TestParseVoucherNo(t *testing.T) {
	year, month, seq, err := ParseVoucherNo("2025-04-012")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 4, month)
	assert.Equal(t, 12, seq)
}

func TestParseVoucherNo_StripsLineSuffix(t *testing.T) {
	year, month, seq, err := ParseVoucherNo("2025-04-012b")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 4, month)
	assert.Equal(t, 12, seq)
}

func TestParseVoucherNo_Invalid(t *testing.T) {
	_, _, _, err := ParseVoucherNo("garbage")
	assert.Error(t, err)

	_, _, _, err = ParseVoucherNo("2025-xx-001")
	assert.Error(t, err)
}

func TestVoucherGroup(t *testing.T) {
	assert.Equal(t, "2025-04-001", VoucherGroup("2025-04-001a"))
	assert.Equal(t, "2025-04-001", VoucherGroup("2025-04-001"))
	assert.Equal(t, "", VoucherGroup(""))
}
