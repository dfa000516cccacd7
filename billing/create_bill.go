package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
	"transfers.app/billing/workflow"
)

type CreateBillRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	ClientID         string               `json:"client_id" validate:"required,uuid"`
	Date             time.Time            `json:"date"`
	DueDate          time.Time            `json:"due_date"`
	ServiceRecordIDs []string             `json:"service_record_ids" validate:"required,min=1,dive,uuid"`
	TaxRate          decimal.Decimal      `json:"tax_rate"`
	TaxApplication   model.TaxApplication `json:"tax_application" validate:"required,oneof=included excluded"`
	Notes            *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type BillResponse struct {
	Bill model.Bill `json:"bill"`
}

type CreateBillResponse struct {
	Bill     model.Bill `json:"bill"`
	Warnings []string   `json:"warnings,omitempty"`
}

//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) (*CreateBillResponse, error) {
	clientID, err := parseID("client_id", req.ClientID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("service_record_ids", req.ServiceRecordIDs)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, s.defaultDueDays())
	}

	result, err := s.business.CreateBill(ctx, &model.BillRequest{
		ClientID:         clientID,
		Date:             date,
		DueDate:          dueDate,
		ServiceRecordIDs: ids,
		TaxRate:          req.TaxRate,
		TaxApplication:   req.TaxApplication,
		Notes:            req.Notes,
	})
	if err != nil {
		rlog.Error("failed to create bill", "error", err, "client_id", clientID)
		return nil, err
	}

	for _, w := range result.Warnings {
		rlog.Warn("bill created with warning", "bill_id", result.Bill.ID, "warning", w)
	}

	// The bill exists at this point; a workflow failure is logged, not returned.
	if wfErr := s.startBillLifecycle(ctx, result.Bill); wfErr != nil {
		rlog.Error("workflow start issue", "bill_id", result.Bill.ID, "workflow_id", workflow.WorkflowID(result.Bill.ID), "error", wfErr)
	}

	return &CreateBillResponse{
		Bill:     *result.Bill,
		Warnings: result.Warnings,
	}, nil
}

func (r *CreateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if err := validateTaxRate(r.TaxRate); err != nil {
		return err
	}
	if !r.Date.IsZero() && !r.DueDate.IsZero() && r.DueDate.Before(r.Date) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "due_date must not be before date"}
	}
	return nil
}

func (s *Service) defaultDueDays() int {
	if cfg == nil {
		return 30
	}
	return cfg.DefaultDueDays()
}

// startBillLifecycle starts the Temporal workflow that follows the bill until
// it is settled, and records its id on the bill.
func (s *Service) startBillLifecycle(ctx context.Context, bill *model.Bill) error {
	workflowID := workflow.WorkflowID(bill.ID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}
	params := workflow.BillLifecycleParams{
		BillID:  bill.ID,
		DueDate: bill.DueDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillLifecycle, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "bill_id", bill.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}

	if err := s.business.SetWorkflowID(ctx, bill.ID, workflowID); err != nil {
		return fmt.Errorf("store workflow id %s: %w", workflowID, err)
	}
	return nil
}
