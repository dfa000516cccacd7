package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
)

// UpdateBillRequest edits a bill header. Omitted fields are left unchanged.
type UpdateBillRequest struct {
	Date           *time.Time            `json:"date,omitempty"`
	DueDate        *time.Time            `json:"due_date,omitempty"`
	TaxRate        *decimal.Decimal      `json:"tax_rate,omitempty"`
	TaxApplication *model.TaxApplication `json:"tax_application,omitempty" validate:"omitempty,oneof=included excluded"`
	Notes          *string               `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

//encore:api public path=/v1/bills/:id method=PATCH
func (s *Service) UpdateBill(ctx context.Context, id string, req *UpdateBillRequest) (*BillResponse, error) {
	billID, err := parseID("bill ID", id)
	if err != nil {
		return nil, err
	}

	result, err := s.business.UpdateBill(ctx, billID, &model.BillUpdate{
		Date:           req.Date,
		DueDate:        req.DueDate,
		TaxRate:        req.TaxRate,
		TaxApplication: req.TaxApplication,
		Notes:          req.Notes,
	})
	if err != nil {
		rlog.Error("failed to update bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{Bill: *result}, nil
}

func (r *UpdateBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if r.TaxRate != nil {
		if err := validateTaxRate(*r.TaxRate); err != nil {
			return err
		}
	}
	if r.Date != nil && r.DueDate != nil && r.DueDate.Before(*r.Date) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "due_date must not be before date"}
	}
	return nil
}
