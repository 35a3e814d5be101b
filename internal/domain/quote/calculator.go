// Package quote computes the payable amount of a structured quote.
package quote

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuote is returned for inputs the calculator refuses to price.
var ErrInvalidQuote = errors.New("invalid quote")

var hundred = decimal.NewFromInt(100)

// Input is the priced part of a quote. Charges behind a flag only count when
// the flag is set.
type Input struct {
	Price                decimal.Decimal
	Quantity             decimal.Decimal
	Discount             decimal.Decimal
	VisitRequired        bool
	VisitCharge          decimal.Decimal
	InstallationRequired bool
	InstallationCharge   decimal.Decimal
	OtherCharges         decimal.Decimal
	GSTPercent           decimal.Decimal
}

// Breakdown holds every intermediate amount. FinalPrice is rounded to the
// smallest currency unit (2 places, half-up).
type Breakdown struct {
	BaseTotal  decimal.Decimal
	Extras     decimal.Decimal
	Subtotal   decimal.Decimal
	GSTAmount  decimal.Decimal
	FinalPrice decimal.Decimal
}

// Calculate prices a quote:
//
//	base_total  = price * quantity
//	extras      = visit charge (if required) + installation charge (if required) + other charges
//	subtotal    = base_total + extras - discount
//	gst_amount  = subtotal * gst_percent / 100
//	final_price = subtotal + gst_amount
func Calculate(in Input) (Breakdown, error) {
	if err := validate(in); err != nil {
		return Breakdown{}, err
	}

	baseTotal := in.Price.Mul(in.Quantity)

	extras := in.OtherCharges
	if in.VisitRequired {
		extras = extras.Add(in.VisitCharge)
	}
	if in.InstallationRequired {
		extras = extras.Add(in.InstallationCharge)
	}

	gross := baseTotal.Add(extras)
	if in.Discount.GreaterThan(gross) {
		return Breakdown{}, fmt.Errorf("%w: discount %s exceeds subtotal %s", ErrInvalidQuote, in.Discount.StringFixed(2), gross.StringFixed(2))
	}

	subtotal := gross.Sub(in.Discount)
	gstAmount := subtotal.Mul(in.GSTPercent).Div(hundred)

	return Breakdown{
		BaseTotal:  baseTotal,
		Extras:     extras,
		Subtotal:   subtotal,
		GSTAmount:  gstAmount,
		FinalPrice: roundHalfUp(subtotal.Add(gstAmount)),
	}, nil
}

func validate(in Input) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"price", in.Price},
		{"quantity", in.Quantity},
		{"discount", in.Discount},
		{"visit_charge", in.VisitCharge},
		{"installation_charge", in.InstallationCharge},
		{"other_charges", in.OtherCharges},
		{"gst_percent", in.GSTPercent},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidQuote, f.name)
		}
	}
	if !in.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidQuote)
	}
	if in.GSTPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: gst_percent must not exceed 100", ErrInvalidQuote)
	}
	return nil
}

// roundHalfUp rounds to 2 places. Amounts are never negative here, so
// decimal's half-away-from-zero rounding is half-up.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
