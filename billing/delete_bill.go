package billing

import (
	"context"

	"encore.dev/rlog"

	"transfers.app/billing/workflow"
)

// DeleteBill removes a bill and its items and releases its service records.
//
//encore:api public path=/v1/bills/:id method=DELETE
func (s *Service) DeleteBill(ctx context.Context, id string) error {
	billID, err := parseID("bill ID", id)
	if err != nil {
		return err
	}

	if err := s.business.DeleteBill(ctx, billID); err != nil {
		rlog.Error("failed to delete bill", "error", err, "id", id)
		return err
	}

	workflowID := workflow.WorkflowID(billID)
	runAsync("signal-bill-deleted", billID, func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.BillDeletedSignalName, workflow.BillDeletedSignal{
			Reason: "deleted",
		})
	})

	return nil
}
