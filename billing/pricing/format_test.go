package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfers.app/billing/model"
)

func TestFormatItem(t *testing.T) {
	testCases := []struct {
		name         string
		record       func() *model.ServiceRecord
		description  string
		quantity     string
		unitPrice    string
		totalPrice   string
		expectErrors bool
	}{
		{
			name:        "transfer_plain",
			record:      func() *model.ServiceRecord { return transfer("100") },
			description: "05-03-2024 | Traslado",
			quantity:    "1",
			unitPrice:   "100",
			totalPrice:  "100",
		},
		{
			name: "disposition_percentage_discount",
			record: func() *model.ServiceRecord {
				rec := disposition("20", "3")
				rec.Discount = &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("10")}
				return rec
			},
			description: "05-03-2024 | Disposición - descuento de 10%",
			quantity:    "3",
			unitPrice:   "20",
			totalPrice:  "54",
		},
		{
			name: "disposition_total_in_cents",
			record: func() *model.ServiceRecord {
				rec := disposition("20.55", "1.5")
				rec.Discount = &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("8.75")}
				return rec
			},
			description: "05-03-2024 | Disposición - descuento de 8.75%",
			quantity:    "1.5",
			unitPrice:   "20.55",
			totalPrice:  "28.13",
		},
		{
			name: "transfer_fixed_discount",
			record: func() *model.ServiceRecord {
				rec := transfer("80")
				rec.Discount = &model.Discount{Kind: model.AdjustmentFixed, Value: dec("5.5")}
				return rec
			},
			description: "05-03-2024 | Traslado - descuento de 5.5€",
			quantity:    "1",
			unitPrice:   "80",
			totalPrice:  "74.5",
		},
		{
			name: "zero_discount_not_annotated",
			record: func() *model.ServiceRecord {
				rec := transfer("80")
				rec.Discount = &model.Discount{Kind: model.AdjustmentFixed, Value: decimal.Zero}
				return rec
			},
			description: "05-03-2024 | Traslado",
			quantity:    "1",
			unitPrice:   "80",
			totalPrice:  "80",
		},
		{
			name:         "invalid_disposition",
			record:       func() *model.ServiceRecord { return disposition("20", "0") },
			expectErrors: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := tc.record()
			base, _ := BasePrice(rec)
			item, err := FormatItem(rec, DiscountAmount(rec.Discount, base))
			if tc.expectErrors {
				assert.ErrorIs(t, err, model.ErrInvalidServiceRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.description, item.Description)
			assert.True(t, dec(tc.quantity).Equal(item.Quantity), "quantity %s", item.Quantity)
			assert.True(t, dec(tc.unitPrice).Equal(item.UnitPrice), "unit %s", item.UnitPrice)
			assert.True(t, dec(tc.totalPrice).Equal(item.TotalPrice), "total %s", item.TotalPrice)
		})
	}
}

func TestExtraChargeItem(t *testing.T) {
	item := ExtraChargeItem(model.ExtraCharge{Name: "Peaje", Price: dec("25")})

	assert.Equal(t, "Cargos extra: Peaje", item.Description)
	assert.True(t, decimal.NewFromInt(1).Equal(item.Quantity))
	assert.True(t, dec("25").Equal(item.UnitPrice))
	assert.True(t, dec("25").Equal(item.TotalPrice))
}

func TestFormatMoney(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{in: "0", expected: "0,00 €"},
		{in: "65.34", expected: "65,34 €"},
		{in: "1234.5", expected: "1.234,50 €"},
		{in: "1234567.891", expected: "1.234.567,89 €"},
		{in: "-150", expected: "-150,00 €"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatMoney(dec(tc.in)))
		})
	}
}
