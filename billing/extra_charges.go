package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
)

type ExtraChargeInput struct {
	Name  string          `json:"name" validate:"required,max=255"`
	Price decimal.Decimal `json:"price"`
}

type ReplaceExtraChargesRequest struct {
	ExtraCharges []ExtraChargeInput `json:"extra_charges" validate:"dive"`
}

type ExtraChargesResponse struct {
	ExtraCharges []model.ExtraCharge `json:"extra_charges"`
}

// ReplaceExtraCharges overwrites the extra charges of an unbilled record.
//
//encore:api public path=/v1/transfers/:id/extra-charges method=PUT
func (s *Service) ReplaceExtraCharges(ctx context.Context, id string, req *ReplaceExtraChargesRequest) (*ExtraChargesResponse, error) {
	transferID, err := parseID("transfer ID", id)
	if err != nil {
		return nil, err
	}

	charges := make([]model.ExtraCharge, len(req.ExtraCharges))
	for i, c := range req.ExtraCharges {
		charges[i] = model.ExtraCharge{Name: c.Name, Price: c.Price}
	}

	saved, err := s.transfers.ReplaceExtraCharges(ctx, transferID, charges)
	if err != nil {
		rlog.Error("failed to replace extra charges", "error", err, "transfer_id", id)
		return nil, err
	}

	return &ExtraChargesResponse{ExtraCharges: saved}, nil
}

func (r *ReplaceExtraChargesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	for _, c := range r.ExtraCharges {
		if c.Price.IsNegative() {
			return &errs.Error{Code: errs.InvalidArgument, Message: "extra charge price must not be negative"}
		}
	}
	return nil
}
