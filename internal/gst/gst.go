// Package gst splits a taxable amount into Indian GST components.
//
// Intra-state supplies split the tax evenly into CGST and SGST;
// inter-state supplies carry the whole tax as IGST. All arithmetic is
// exact decimal so re-aggregated splits never drift.
package gst

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for negative amounts or rates.
var ErrInvalidInput = errors.New("invalid input")

var hundred = decimal.NewFromInt(100)

// Split is the GST breakdown of one taxable amount.
type Split struct {
	CGST  decimal.Decimal
	SGST  decimal.Decimal
	IGST  decimal.Decimal
	Total decimal.Decimal // taxable + tax
}

// Tax returns the total tax across all three components.
func (s Split) Tax() decimal.Decimal {
	return s.CGST.Add(s.SGST).Add(s.IGST)
}

// Compute splits taxable at rate percent. interState routes the whole tax
// to IGST; otherwise CGST and SGST each take half. No rounding is applied;
// display rounding is the caller's concern.
func Compute(taxable, rate decimal.Decimal, interState bool) (Split, error) {
	if taxable.IsNegative() {
		return Split{}, fmt.Errorf("%w: negative taxable amount %s", ErrInvalidInput, taxable)
	}
	if rate.IsNegative() {
		return Split{}, fmt.Errorf("%w: negative GST rate %s", ErrInvalidInput, rate)
	}

	tax := taxable.Mul(rate).Div(hundred)
	split := Split{Total: taxable.Add(tax)}
	if interState {
		split.IGST = tax
	} else {
		half := tax.Div(decimal.NewFromInt(2))
		split.CGST = half
		split.SGST = half
	}
	return split, nil
}
