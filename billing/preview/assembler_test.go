package preview

import (
	"context"
	"errors"
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

var serviceDate = time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)

func newFixture() (model.Client, []model.ServiceRecord) {
	client := model.Client{ID: uuid.New(), Name: "Hotel Miramar"}

	records := []model.ServiceRecord{
		{
			ID:       uuid.New(),
			ClientID: client.ID,
			Date:     serviceDate,
			Pricing:  model.FixedPrice{Price: dec("100")},
		},
		{
			ID:       uuid.New(),
			ClientID: client.ID,
			Date:     serviceDate,
			Pricing:  model.HourlyRate{Rate: dec("20"), Hours: dec("3")},
			Discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: dec("10")},
			ExtraCharges: []model.ExtraCharge{
				{Name: "Peaje", Price: dec("25")},
			},
		},
	}
	return client, records
}

func TestAssembler_Calculate(t *testing.T) {
	client, records := newFixture()
	other := model.ServiceRecord{ID: uuid.New(), ClientID: uuid.New(), Date: serviceDate, Pricing: model.FixedPrice{Price: dec("10")}}
	billed := model.ServiceRecord{ID: uuid.New(), ClientID: client.ID, Date: serviceDate, Pricing: model.FixedPrice{Price: dec("10")}, Billed: true}
	src := NewMemorySource([]model.Client{client}, append(records, other, billed))
	assembler := NewAssembler(src)

	missing := uuid.New()

	testCases := []struct {
		name          string
		ids           []uuid.UUID
		rate          string
		mode          model.TaxApplication
		expectedLines []uuid.UUID
		expectedSkip  []model.SkippedRecord
		subTotal      string
		taxAmount     string
		total         string
	}{
		{
			name:          "single_transfer",
			ids:           []uuid.UUID{records[0].ID},
			rate:          "10",
			mode:          model.TaxExcluded,
			expectedLines: []uuid.UUID{records[0].ID},
			subTotal:      "100",
			taxAmount:     "10",
			total:         "110",
		},
		{
			name:          "disposition_with_discount_and_extra",
			ids:           []uuid.UUID{records[1].ID},
			rate:          "21",
			mode:          model.TaxExcluded,
			expectedLines: []uuid.UUID{records[1].ID},
			subTotal:      "79",
			taxAmount:     "16.59",
			total:         "95.59",
		},
		{
			name:          "keeps_request_order",
			ids:           []uuid.UUID{records[1].ID, records[0].ID},
			rate:          "0",
			mode:          model.TaxIncluded,
			expectedLines: []uuid.UUID{records[1].ID, records[0].ID},
			subTotal:      "179",
			taxAmount:     "0",
			total:         "179",
		},
		{
			name:          "skips_unusable_records",
			ids:           []uuid.UUID{missing, records[0].ID, other.ID, billed.ID, records[0].ID},
			rate:          "10",
			mode:          model.TaxExcluded,
			expectedLines: []uuid.UUID{records[0].ID},
			expectedSkip: []model.SkippedRecord{
				{ServiceRecordID: missing, Reason: model.SkipNotFound},
				{ServiceRecordID: other.ID, Reason: model.SkipOtherClient},
				{ServiceRecordID: billed.ID, Reason: model.SkipAlreadyBilled},
				{ServiceRecordID: records[0].ID, Reason: model.SkipDuplicate},
			},
			subTotal:  "100",
			taxAmount: "10",
			total:     "110",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := assembler.Calculate(context.Background(), Request{
				ClientID:         client.ID,
				ServiceRecordIDs: tc.ids,
				TaxRate:          dec(tc.rate),
				TaxApplication:   tc.mode,
			})
			require.NoError(t, err)

			assert.Equal(t, client.Name, p.ClientName)
			assert.Equal(t, tc.expectedLines, p.ServiceRecordIDs())
			assert.Equal(t, tc.expectedSkip, p.Skipped)
			assert.True(t, dec(tc.subTotal).Equal(p.SubTotal), "sub total %s", p.SubTotal)
			assert.True(t, dec(tc.taxAmount).Equal(p.TaxAmount), "tax %s", p.TaxAmount)
			assert.True(t, dec(tc.total).Equal(p.Total), "total %s", p.Total)
		})
	}
}

func TestAssembler_Calculate_LineBreakdown(t *testing.T) {
	client, records := newFixture()
	assembler := NewAssembler(NewMemorySource([]model.Client{client}, records))

	p, err := assembler.Calculate(context.Background(), Request{
		ClientID:         client.ID,
		ServiceRecordIDs: []uuid.UUID{records[1].ID},
		TaxRate:          dec("21"),
		TaxApplication:   model.TaxExcluded,
	})
	require.NoError(t, err)
	require.Len(t, p.LineItems, 1)

	line := p.LineItems[0]
	assert.Equal(t, model.ServiceKindDisposition, line.ServiceKind)
	assert.Equal(t, "14-06-2024 | Disposición - descuento de 10%", line.Description)
	assert.True(t, dec("3").Equal(line.Quantity))
	assert.True(t, dec("20").Equal(line.UnitPrice))
	assert.True(t, dec("60").Equal(line.BasePrice))
	assert.True(t, dec("6").Equal(line.DiscountAmount))
	assert.True(t, dec("54").Equal(line.ItemTotal))
	assert.True(t, dec("25").Equal(line.ExtrasTotal))
	assert.True(t, dec("79").Equal(line.LineTotal))
	require.Len(t, line.ExtraCharges, 1)
	assert.Equal(t, "Peaje", line.ExtraCharges[0].Name)
}

func TestAssembler_Calculate_Idempotent(t *testing.T) {
	client, records := newFixture()
	assembler := NewAssembler(NewMemorySource([]model.Client{client}, records))

	req := Request{
		ClientID:         client.ID,
		ServiceRecordIDs: []uuid.UUID{records[0].ID, records[1].ID},
		TaxRate:          dec("21"),
		TaxApplication:   model.TaxIncluded,
	}

	first, err := assembler.Calculate(context.Background(), req)
	require.NoError(t, err)
	second, err := assembler.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.SubTotal.String(), second.SubTotal.String())
	assert.Equal(t, first.TaxAmount.String(), second.TaxAmount.String())
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestAssembler_Calculate_InvalidVersusMissing(t *testing.T) {
	client, records := newFixture()
	broken := uuid.New()
	missing := uuid.New()
	assembler := NewAssembler(NewMemorySource([]model.Client{client}, records).WithInvalid(broken))

	p, err := assembler.Calculate(context.Background(), Request{
		ClientID:         client.ID,
		ServiceRecordIDs: []uuid.UUID{broken, records[0].ID, missing},
		TaxRate:          dec("21"),
		TaxApplication:   model.TaxExcluded,
	})
	require.NoError(t, err)

	require.Len(t, p.LineItems, 1)
	assert.Equal(t, []model.SkippedRecord{
		{ServiceRecordID: broken, Reason: model.SkipInvalid},
		{ServiceRecordID: missing, Reason: model.SkipNotFound},
	}, p.Skipped)
}

func TestAssembler_Calculate_ClientNotFound(t *testing.T) {
	_, records := newFixture()
	assembler := NewAssembler(NewMemorySource(nil, records))

	p, err := assembler.Calculate(context.Background(), Request{
		ClientID:         uuid.New(),
		ServiceRecordIDs: []uuid.UUID{records[0].ID},
		TaxApplication:   model.TaxExcluded,
	})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, model.ErrClientNotFound)
}

type failingSource struct {
	*MemorySource
	err error
}

func (s failingSource) ListExtraCharges(context.Context, uuid.UUID) ([]model.ExtraCharge, error) {
	return nil, s.err
}

func TestAssembler_Calculate_StorageError(t *testing.T) {
	client, records := newFixture()
	src := failingSource{MemorySource: NewMemorySource([]model.Client{client}, records), err: errors.New("connection reset")}

	p, err := NewAssembler(src).Calculate(context.Background(), Request{
		ClientID:         client.ID,
		ServiceRecordIDs: []uuid.UUID{records[0].ID},
		TaxApplication:   model.TaxExcluded,
	})

	assert.Nil(t, p)
	assert.ErrorContains(t, err, "connection reset")
}
