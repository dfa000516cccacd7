package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
	"transfers.app/billing/workflow"
)

type UpdateBillStatusRequest struct {
	Status model.BillStatus `json:"status" validate:"required,oneof=draft sent paid cancelled"`
}

//encore:api public path=/v1/bills/:id/status method=PUT
func (s *Service) UpdateBillStatus(ctx context.Context, id string, req *UpdateBillStatusRequest) (*BillResponse, error) {
	billID, err := parseID("bill ID", id)
	if err != nil {
		return nil, err
	}

	result, err := s.business.UpdateBillStatus(ctx, billID, req.Status)
	if err != nil {
		rlog.Error("failed to update bill status", "error", err, "id", id, "status", req.Status)
		return nil, err
	}

	workflowID := workflow.WorkflowID(billID)
	runAsync("signal-status-changed", billID, func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.StatusChangedSignalName, workflow.StatusChangedSignal{
			Status: result.Status,
		})
	})

	return &BillResponse{Bill: *result}, nil
}

func (r *UpdateBillStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
