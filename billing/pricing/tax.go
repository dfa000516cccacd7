package pricing

import (
	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
)

type TaxTotals struct {
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateTaxTotals computes tax and grand total for a subtotal. With tax
// excluded the tax is added on top; with tax included the total equals the
// subtotal and the tax is backed out of it. Tax amounts are rounded to cents.
func CalculateTaxTotals(subTotal, taxRate decimal.Decimal, mode model.TaxApplication) TaxTotals {
	if mode == model.TaxIncluded {
		divisor := hundred.Add(taxRate)
		if divisor.IsZero() {
			return TaxTotals{TaxAmount: decimal.Zero, Total: subTotal}
		}
		return TaxTotals{
			TaxAmount: subTotal.Mul(taxRate).Div(divisor).Round(centPlaces),
			Total:     subTotal,
		}
	}

	tax := subTotal.Mul(taxRate).Div(hundred).Round(centPlaces)
	return TaxTotals{
		TaxAmount: tax,
		Total:     subTotal.Add(tax),
	}
}
