package transfer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/mocks/domain/state_machine"
	"transfers.app/billing/mocks/repository/extracharge_repo"
	"transfers.app/billing/mocks/repository/transfer_repo"
	"transfers.app/billing/model"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

func TestReplaceExtraCharges(t *testing.T) {
	transferID := uuid.New()
	charges := []model.ExtraCharge{
		{Name: " Peaje ", Price: decimal.NewFromInt(7)},
		{Name: "Espera", Price: decimal.RequireFromString("12.5")},
	}

	testCases := []struct {
		name          string
		charges       []model.ExtraCharge
		getErr        error
		billed        bool
		deleteErr     error
		expectInserts int
		expectedCode  errs.ErrCode
	}{
		{name: "replaces_in_order", charges: charges, expectInserts: 2},
		{name: "clears_all", charges: nil, expectInserts: 0},
		{name: "empty_name", charges: []model.ExtraCharge{{Name: "  ", Price: decimal.NewFromInt(1)}}, expectedCode: errs.InvalidArgument},
		{name: "transfer_not_found", charges: charges, getErr: pgx.ErrNoRows, expectedCode: errs.NotFound},
		{name: "billed_transfer", charges: charges, billed: true, expectedCode: errs.FailedPrecondition},
		{name: "delete_fails", charges: charges, deleteErr: assert.AnError, expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transferRepo := transfer_repo.NewMockQuerier(ctrl)
			extraChargeRepo := extracharge_repo.NewMockQuerier(ctrl)
			sm := state_machine.NewMockStateMachine(ctrl)
			tx := state_machine.NewMockTxStore(ctrl)
			b := NewBusiness(nil, transferRepo, extraChargeRepo, sm)

			tx.EXPECT().Transfers().Return(transferRepo).AnyTimes()
			tx.EXPECT().ExtraCharges().Return(extraChargeRepo).AnyTimes()
			sm.EXPECT().ExecuteInTx(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fn func(domain.TxStore) error) error {
					return fn(tx)
				}).AnyTimes()

			row := transfers.Transfer{ID: pgconv.UUID(transferID), ServiceKind: "transfer", Price: numeric("50"), Billed: tc.billed}
			transferRepo.EXPECT().GetTransfer(gomock.Any(), pgconv.UUID(transferID)).Return(row, tc.getErr).AnyTimes()
			extraChargeRepo.EXPECT().DeleteExtraChargesByTransfer(gomock.Any(), pgconv.UUID(transferID)).Return(tc.deleteErr).AnyTimes()

			var inserted []extracharges.CreateExtraChargeParams
			extraChargeRepo.EXPECT().CreateExtraCharge(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg extracharges.CreateExtraChargeParams) (extracharges.ExtraCharge, error) {
					inserted = append(inserted, arg)
					return extracharges.ExtraCharge{
						ID:         pgconv.UUID(uuid.New()),
						TransferID: arg.TransferID,
						Name:       arg.Name,
						Price:      arg.Price,
						Position:   arg.Position,
					}, nil
				}).Times(tc.expectInserts)

			saved, err := b.ReplaceExtraCharges(context.Background(), transferID, tc.charges)

			if tc.expectedCode != errs.OK {
				assert.Nil(t, saved)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, saved, tc.expectInserts)
			for i := range inserted {
				assert.Equal(t, int32(i), inserted[i].Position)
				assert.NotNil(t, saved[i].ID)
			}
			if tc.expectInserts > 0 {
				assert.Equal(t, "Peaje", saved[0].Name)
				assert.True(t, decimal.RequireFromString("12.5").Equal(saved[1].Price))
			}
		})
	}
}
