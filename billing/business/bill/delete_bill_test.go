package bill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/pgconv"
)

func TestDeleteBill(t *testing.T) {
	testCases := []struct {
		name         string
		unbillErr    error
		deleteErr    error
		expectedCode errs.ErrCode
	}{
		{name: "happy_case"},
		{name: "unbill_fails", unbillErr: assert.AnError, expectedCode: errs.Internal},
		{name: "delete_fails", deleteErr: assert.AnError, expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			current := storedBill(model.BillStatusSent)
			env.expectBillLock(current)

			env.transferRepo.EXPECT().UnbillTransfersByBill(gomock.Any(), current.ID).Return(int64(2), tc.unbillErr)
			if tc.unbillErr == nil {
				env.billItemRepo.EXPECT().DeleteBillItemsByBill(gomock.Any(), current.ID).Return(nil)
				env.billRepo.EXPECT().DeleteBill(gomock.Any(), current.ID).Return(int64(1), tc.deleteErr)
			}

			err := env.business.DeleteBill(context.Background(), pgconv.FromUUID(current.ID))

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
