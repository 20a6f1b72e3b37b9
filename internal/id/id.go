package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVoucherNo returns a voucher number like "2025-04-001".
func FormatVoucherNo(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLineID returns a voucher line ID like "2025-04-001a"
// (line 0='a', 1='b', etc.).
func FormatLineID(voucherNo string, line int) string {
	return voucherNo + string(rune('a'+line))
}

// ParseVoucherNo parses "2025-04-001" into year, month, seq. A line
// suffix, if present, is stripped first.
func ParseVoucherNo(no string) (year, month, seq int, err error) {
	base := VoucherGroup(no)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid voucher number format: %q", no)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in voucher number %q: %w", no, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in voucher number %q: %w", no, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in voucher number %q: %w", no, err)
	}

	return year, month, seq, nil
}

// VoucherGroup strips the line suffix from a line ID.
// "2025-04-001a" -> "2025-04-001"
func VoucherGroup(lineID string) string {
	if len(lineID) == 0 {
		return ""
	}
	i := len(lineID)
	for i > 0 && lineID[i-1] >= 'a' && lineID[i-1] <= 'z' {
		i--
	}
	return lineID[:i]
}
