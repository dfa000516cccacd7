package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/business/bill"
	"transfers.app/billing/model"
)

type ListBillsRequest struct {
	ClientID string `query:"client_id" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=draft sent paid cancelled"`
	Limit    int    `query:"limit" validate:"gte=0"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

type ListBillsResponse struct {
	Bills  []model.Bill `json:"bills"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	filter := bill.ListFilter{
		Limit:  int32(req.Limit),
		Offset: int32(req.Offset),
	}
	if req.ClientID != "" {
		clientID, err := parseID("client_id", req.ClientID)
		if err != nil {
			return nil, err
		}
		filter.ClientID = &clientID
	}
	if req.Status != "" {
		status := model.BillStatus(req.Status)
		filter.Status = &status
	}

	bills, err := s.business.ListBills(ctx, filter)
	if err != nil {
		rlog.Error("failed to list bills", "error", err)
		return nil, err
	}

	response := &ListBillsResponse{
		Bills:  make([]model.Bill, len(bills)),
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	for i, b := range bills {
		response.Bills[i] = *b
	}

	return response, nil
}

func (r *ListBillsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
