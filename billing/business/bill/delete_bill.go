package bill

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/repository/bills"
)

// DeleteBill removes a bill with its items and releases its records so they
// can be billed again, all in one transaction.
func (b *business) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return b.stateMachine.GetBillWithLock(ctx, id, func(store domain.TxStore, current bills.Bill) error {
		released, err := store.Transfers().UnbillTransfersByBill(ctx, current.ID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to release billed transfers"}
		}

		if err := store.BillItems().DeleteBillItemsByBill(ctx, current.ID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to delete bill items"}
		}

		if _, err := store.Bills().DeleteBill(ctx, current.ID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to delete bill"}
		}

		rlog.Info("bill deleted", "bill_id", id, "number", current.Number, "released_transfers", released)
		return nil
	})
}
