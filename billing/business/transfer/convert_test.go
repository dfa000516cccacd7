package transfer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

func numeric(s string) pgtype.Numeric {
	return pgconv.Numeric(decimal.RequireFromString(s))
}

func TestToServiceRecord(t *testing.T) {
	date := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	billID := uuid.New()

	testCases := []struct {
		name        string
		row         transfers.Transfer
		expectError bool
		check       func(t *testing.T, rec *model.ServiceRecord)
	}{
		{
			name: "transfer_with_discount_and_commission",
			row: transfers.Transfer{
				ID:               pgconv.UUID(uuid.New()),
				ClientID:         pgconv.UUID(uuid.New()),
				Date:             pgconv.Date(date),
				ServiceKind:      "transfer",
				Price:            numeric("95.50"),
				Origin:           "Aeropuerto",
				Destination:      "Hotel",
				DiscountKind:     pgconv.Text("fixed"),
				DiscountValue:    numeric("5"),
				CollaboratorName: pgconv.Text("Luis"),
				CommissionKind:   pgconv.Text("percentage"),
				CommissionValue:  numeric("10"),
				Billed:           true,
				BillID:           pgconv.UUID(billID),
			},
			check: func(t *testing.T, rec *model.ServiceRecord) {
				require.Equal(t, model.ServiceKindTransfer, rec.Kind())
				assert.True(t, decimal.RequireFromString("95.5").Equal(rec.Pricing.(model.FixedPrice).Price))
				require.NotNil(t, rec.Discount)
				assert.Equal(t, model.AdjustmentFixed, rec.Discount.Kind)
				require.NotNil(t, rec.Commission)
				assert.Equal(t, "Luis", rec.Commission.CollaboratorName)
				assert.True(t, rec.Billed)
				assert.Equal(t, &billID, rec.BillID)
				assert.Equal(t, date, rec.Date)
			},
		},
		{
			name: "disposition",
			row: transfers.Transfer{
				ID:          pgconv.UUID(uuid.New()),
				ServiceKind: "disposition",
				Price:       numeric("20"),
				Hours:       numeric("3"),
			},
			check: func(t *testing.T, rec *model.ServiceRecord) {
				p, ok := rec.Pricing.(model.HourlyRate)
				require.True(t, ok)
				assert.True(t, decimal.NewFromInt(20).Equal(p.Rate))
				assert.True(t, decimal.NewFromInt(3).Equal(p.Hours))
				assert.Nil(t, rec.Discount)
				assert.Nil(t, rec.Commission)
				assert.Nil(t, rec.BillID)
			},
		},
		{
			name: "disposition_without_hours",
			row: transfers.Transfer{
				ID:          pgconv.UUID(uuid.New()),
				ServiceKind: "disposition",
				Price:       numeric("20"),
			},
			expectError: true,
		},
		{
			name: "unknown_kind",
			row: transfers.Transfer{
				ID:          pgconv.UUID(uuid.New()),
				ServiceKind: "shuttle",
				Price:       numeric("20"),
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := ToServiceRecord(tc.row)
			if tc.expectError {
				assert.ErrorIs(t, err, model.ErrInvalidServiceRecord)
				assert.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			tc.check(t, rec)
		})
	}
}

func TestGroupExtraCharges(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	grouped := GroupExtraCharges([]extracharges.ExtraCharge{
		{ID: pgconv.UUID(uuid.New()), TransferID: pgconv.UUID(first), Name: "Peaje", Price: numeric("7"), Position: 0},
		{ID: pgconv.UUID(uuid.New()), TransferID: pgconv.UUID(second), Name: "Parking", Price: numeric("12"), Position: 0},
		{ID: pgconv.UUID(uuid.New()), TransferID: pgconv.UUID(first), Name: "Espera", Price: numeric("15"), Position: 1},
	})

	require.Len(t, grouped[first], 2)
	assert.Equal(t, "Peaje", grouped[first][0].Name)
	assert.Equal(t, "Espera", grouped[first][1].Name)
	require.Len(t, grouped[second], 1)
	assert.NotNil(t, grouped[second][0].ID)
}
