package billing

import (
	"context"

	"encore.dev/rlog"
)

//encore:api public path=/v1/bills/:id method=GET
func (s *Service) GetBill(ctx context.Context, id string) (*BillResponse, error) {
	billID, err := parseID("bill ID", id)
	if err != nil {
		return nil, err
	}

	result, err := s.business.GetBill(ctx, billID)
	if err != nil {
		rlog.Error("failed to get bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: *result,
	}, nil
}
