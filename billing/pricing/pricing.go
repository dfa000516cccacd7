// Package pricing holds the calculators every billing call site goes through:
// base price, discount, extra charges, commission, line total, tax totals and
// bill item formatting. The functions are pure and safe for concurrent use.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
)

// centPlaces is the precision of every stored amount.
const centPlaces = 2

var hundred = decimal.NewFromInt(100)

func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centPlaces)
}

// BasePrice returns the pre-discount, pre-tax amount of a record: the fixed
// price for a transfer, rate times hours for a disposition. It is rounded to
// cents.
func BasePrice(rec *model.ServiceRecord) (decimal.Decimal, error) {
	if rec == nil {
		return decimal.Zero, fmt.Errorf("%w: nil record", model.ErrInvalidServiceRecord)
	}

	switch p := rec.Pricing.(type) {
	case model.FixedPrice:
		return roundCents(p.Price), nil
	case model.HourlyRate:
		if !p.Hours.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: disposition %s has no positive hours", model.ErrInvalidServiceRecord, rec.ID)
		}
		return roundCents(p.Rate.Mul(p.Hours)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: record %s has no pricing", model.ErrInvalidServiceRecord, rec.ID)
	}
}

// DiscountAmount applies a discount to base, rounded to cents. The result is
// not clamped: a fixed discount larger than base is returned as is.
func DiscountAmount(d *model.Discount, base decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	switch d.Kind {
	case model.AdjustmentPercentage:
		return roundCents(base.Mul(d.Value).Div(hundred))
	case model.AdjustmentFixed:
		return roundCents(d.Value)
	default:
		return decimal.Zero
	}
}

// ExtraChargesTotal sums the charge prices, each rounded to cents.
func ExtraChargesTotal(charges []model.ExtraCharge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(roundCents(c.Price))
	}
	return total
}

// LineTotal is base price minus discount plus extra charges, before tax.
func LineTotal(rec *model.ServiceRecord) (decimal.Decimal, error) {
	base, err := BasePrice(rec)
	if err != nil {
		return decimal.Zero, err
	}

	return base.Sub(DiscountAmount(rec.Discount, base)).Add(ExtraChargesTotal(rec.ExtraCharges)), nil
}

// Commission returns what the record's collaborator is owed. A percentage
// commission is taken on the line total; a fixed one ignores it.
func Commission(rec *model.ServiceRecord) (decimal.Decimal, error) {
	if rec == nil || rec.Commission == nil || rec.Commission.CollaboratorName == "" {
		return decimal.Zero, nil
	}

	switch rec.Commission.Kind {
	case model.AdjustmentFixed:
		return roundCents(rec.Commission.Value), nil
	case model.AdjustmentPercentage:
		lineTotal, err := LineTotal(rec)
		if err != nil {
			return decimal.Zero, err
		}
		return roundCents(lineTotal.Mul(rec.Commission.Value).Div(hundred)), nil
	default:
		return decimal.Zero, nil
	}
}
