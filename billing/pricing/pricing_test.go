package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfers.app/billing/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func transfer(price string) *model.ServiceRecord {
	return &model.ServiceRecord{
		ID:      uuid.New(),
		Date:    time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Pricing: model.FixedPrice{Price: dec(price)},
	}
}

func disposition(rate, hours string) *model.ServiceRecord {
	return &model.ServiceRecord{
		ID:      uuid.New(),
		Date:    time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Pricing: model.HourlyRate{Rate: dec(rate), Hours: dec(hours)},
	}
}

func TestBasePrice(t *testing.T) {
	testCases := []struct {
		name        string
		record      *model.ServiceRecord
		expected    string
		expectError bool
	}{
		{name: "transfer_is_price", record: transfer("100"), expected: "100"},
		{name: "disposition_is_rate_times_hours", record: disposition("20", "3"), expected: "60"},
		{name: "disposition_fractional_hours", record: disposition("40", "1.5"), expected: "60"},
		{name: "disposition_rounded_to_cents", record: disposition("20.55", "1.5"), expected: "30.83"},
		{name: "transfer_rounded_to_cents", record: transfer("99.999"), expected: "100"},
		{name: "disposition_zero_hours", record: disposition("20", "0"), expectError: true},
		{name: "disposition_negative_hours", record: disposition("20", "-2"), expectError: true},
		{name: "no_pricing", record: &model.ServiceRecord{ID: uuid.New()}, expectError: true},
		{name: "nil_record", record: nil, expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base, err := BasePrice(tc.record)
			if tc.expectError {
				assert.ErrorIs(t, err, model.ErrInvalidServiceRecord)
				return
			}
			require.NoError(t, err)
			assert.True(t, dec(tc.expected).Equal(base), "got %s", base)
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	testCases := []struct {
		name     string
		discount *model.Discount
		base     string
		expected string
	}{
		{name: "no_discount", discount: nil, base: "100", expected: "0"},
		{name: "percentage", discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("10")}, base: "60", expected: "6"},
		{name: "percentage_rounded_to_cents", discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("8.75")}, base: "1.10", expected: "0.10"},
		{name: "percentage_rounded_down", discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("3")}, base: "1.10", expected: "0.03"},
		{name: "percentage_above_100_not_clamped", discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("120")}, base: "50", expected: "60"},
		{name: "fixed", discount: &model.Discount{Kind: model.AdjustmentFixed, Value: dec("15")}, base: "100", expected: "15"},
		{name: "fixed_above_base_not_clamped", discount: &model.Discount{Kind: model.AdjustmentFixed, Value: dec("150")}, base: "100", expected: "150"},
		{name: "unknown_kind", discount: &model.Discount{Kind: "bogus", Value: dec("15")}, base: "100", expected: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountAmount(tc.discount, dec(tc.base))
			assert.True(t, dec(tc.expected).Equal(got), "got %s", got)
		})
	}
}

func TestExtraChargesTotal(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(ExtraChargesTotal(nil)))

	charges := []model.ExtraCharge{
		{Name: "parking", Price: dec("12.5")},
		{Name: "toll", Price: dec("7.25")},
		{Name: "broken", Price: model.CoerceAmount("n/a")},
	}
	assert.True(t, dec("19.75").Equal(ExtraChargesTotal(charges)))

	charges = append(charges, model.ExtraCharge{Name: "split", Price: dec("3.333")})
	assert.True(t, dec("23.08").Equal(ExtraChargesTotal(charges)))
}

func TestLineTotal_CentPrecision(t *testing.T) {
	rec := transfer("1.10")
	rec.Discount = &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("8.75")}
	rec.ExtraCharges = []model.ExtraCharge{{Name: "wait", Price: dec("0.005")}}

	total, err := LineTotal(rec)
	require.NoError(t, err)
	assert.True(t, dec("1.01").Equal(total), "got %s", total)
	assert.True(t, total.Equal(total.Round(2)), "got %s", total)

	item, err := FormatItem(rec, DiscountAmount(rec.Discount, dec("1.10")))
	require.NoError(t, err)
	extra := ExtraChargeItem(rec.ExtraCharges[0])
	assert.True(t, total.Equal(item.TotalPrice.Add(extra.TotalPrice)), "item %s + extra %s vs line %s", item.TotalPrice, extra.TotalPrice, total)
}

func TestLineTotal(t *testing.T) {
	rec := disposition("20", "3")
	rec.Discount = &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("10")}

	total, err := LineTotal(rec)
	require.NoError(t, err)
	assert.True(t, dec("54").Equal(total), "got %s", total)

	rec.ExtraCharges = []model.ExtraCharge{{Name: "wait", Price: dec("25")}}
	total, err = LineTotal(rec)
	require.NoError(t, err)
	assert.True(t, dec("79").Equal(total), "got %s", total)

	_, err = LineTotal(disposition("20", "0"))
	assert.ErrorIs(t, err, model.ErrInvalidServiceRecord)
}

func TestCommission(t *testing.T) {
	withDiscount := func() *model.ServiceRecord {
		rec := disposition("20", "3")
		rec.Discount = &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("10")}
		return rec
	}

	testCases := []struct {
		name     string
		record   func() *model.ServiceRecord
		expected string
	}{
		{
			name:     "no_commission",
			record:   withDiscount,
			expected: "0",
		},
		{
			name: "no_collaborator",
			record: func() *model.ServiceRecord {
				rec := withDiscount()
				rec.Commission = &model.Commission{Kind: model.AdjustmentFixed, Value: dec("20")}
				return rec
			},
			expected: "0",
		},
		{
			name: "percentage_on_line_total",
			record: func() *model.ServiceRecord {
				rec := withDiscount()
				rec.Commission = &model.Commission{CollaboratorName: "Luis", Kind: model.AdjustmentPercentage, Value: dec("15")}
				return rec
			},
			expected: "8.10",
		},
		{
			name: "percentage_includes_extras",
			record: func() *model.ServiceRecord {
				rec := withDiscount()
				rec.ExtraCharges = []model.ExtraCharge{{Name: "wait", Price: dec("46")}}
				rec.Commission = &model.Commission{CollaboratorName: "Luis", Kind: model.AdjustmentPercentage, Value: dec("10")}
				return rec
			},
			expected: "10",
		},
		{
			name: "percentage_rounded_to_cents",
			record: func() *model.ServiceRecord {
				rec := withDiscount()
				rec.Commission = &model.Commission{CollaboratorName: "Luis", Kind: model.AdjustmentPercentage, Value: dec("12.345")}
				return rec
			},
			expected: "6.67",
		},
		{
			name: "fixed",
			record: func() *model.ServiceRecord {
				rec := withDiscount()
				rec.Commission = &model.Commission{CollaboratorName: "Ana", Kind: model.AdjustmentFixed, Value: dec("20")}
				return rec
			},
			expected: "20",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Commission(tc.record())
			require.NoError(t, err)
			assert.True(t, dec(tc.expected).Equal(got), "got %s", got)
		})
	}
}

func TestCommission_FixedIgnoresExtraCharges(t *testing.T) {
	rec := transfer("100")
	rec.Commission = &model.Commission{CollaboratorName: "Ana", Kind: model.AdjustmentFixed, Value: dec("20")}

	before, err := Commission(rec)
	require.NoError(t, err)
	lineBefore, err := LineTotal(rec)
	require.NoError(t, err)

	rec.ExtraCharges = []model.ExtraCharge{{Name: "toll", Price: dec("50")}}

	after, err := Commission(rec)
	require.NoError(t, err)
	lineAfter, err := LineTotal(rec)
	require.NoError(t, err)

	assert.False(t, lineBefore.Equal(lineAfter))
	assert.True(t, dec("20").Equal(before))
	assert.True(t, before.Equal(after))
}

func TestCommission_PercentageFollowsExtraCharges(t *testing.T) {
	rec := transfer("100")
	rec.Commission = &model.Commission{CollaboratorName: "Ana", Kind: model.AdjustmentPercentage, Value: dec("10")}

	before, err := Commission(rec)
	require.NoError(t, err)

	rec.ExtraCharges = []model.ExtraCharge{{Name: "toll", Price: dec("50")}}

	after, err := Commission(rec)
	require.NoError(t, err)

	assert.True(t, dec("10").Equal(before))
	assert.True(t, dec("15").Equal(after))
}
