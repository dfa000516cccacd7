package bill

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

// EnsureTransfersBilled marks every record referenced by the bill items as
// billed by this bill. Records meanwhile billed elsewhere are left alone and
// logged. Cancelled bills are skipped.
func (b *business) EnsureTransfersBilled(ctx context.Context, id uuid.UUID) (int, error) {
	marked := 0

	err := b.stateMachine.GetBillWithLock(ctx, id, func(store domain.TxStore, current bills.Bill) error {
		if current.Status == string(model.BillStatusCancelled) {
			return nil
		}

		items, err := store.BillItems().ListBillItemsByBill(ctx, current.ID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to get bill items"}
		}

		seen := make(map[pgtype.UUID]struct{}, len(items))
		for _, item := range items {
			if _, ok := seen[item.TransferID]; ok {
				continue
			}
			seen[item.TransferID] = struct{}{}

			n, err := store.Transfers().MarkTransferBilled(ctx, transfers.MarkTransferBilledParams{
				ID:     item.TransferID,
				BillID: current.ID,
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to mark transfer as billed"}
			}
			if n == 0 {
				rlog.Warn("transfer billed by another bill", "bill_id", id, "transfer_id", pgconv.FromUUID(item.TransferID))
				continue
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return marked, nil
}

func (b *business) SetWorkflowID(ctx context.Context, id uuid.UUID, workflowID string) error {
	if err := b.billRepo.UpdateBillWorkflowID(ctx, bills.UpdateBillWorkflowIDParams{
		ID:         pgconv.UUID(id),
		WorkflowID: pgconv.Text(workflowID),
	}); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to store workflow id"}
	}
	return nil
}
