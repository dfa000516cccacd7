package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
	"transfers.app/billing/preview"
)

type PreviewBillRequest struct {
	ClientID         string               `json:"client_id" validate:"required,uuid"`
	ServiceRecordIDs []string             `json:"service_record_ids" validate:"required,min=1,dive,uuid"`
	TaxRate          decimal.Decimal      `json:"tax_rate"`
	TaxApplication   model.TaxApplication `json:"tax_application" validate:"required,oneof=included excluded"`
}

type PreviewBillResponse struct {
	Preview model.BillPreview `json:"preview"`
}

//encore:api public path=/v1/bills/preview method=POST
func (s *Service) PreviewBill(ctx context.Context, req *PreviewBillRequest) (*PreviewBillResponse, error) {
	clientID, err := parseID("client_id", req.ClientID)
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("service_record_ids", req.ServiceRecordIDs)
	if err != nil {
		return nil, err
	}

	result, err := s.business.PreviewBill(ctx, preview.Request{
		ClientID:         clientID,
		ServiceRecordIDs: ids,
		TaxRate:          req.TaxRate,
		TaxApplication:   req.TaxApplication,
	})
	if err != nil {
		rlog.Error("failed to preview bill", "error", err, "client_id", clientID)
		return nil, err
	}

	return &PreviewBillResponse{Preview: *result}, nil
}

func (r *PreviewBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return validateTaxRate(r.TaxRate)
}

func validateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "tax_rate must not be negative"}
	}
	return nil
}
