package billing

import (
	"context"

	"encore.dev/rlog"

	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
)

type BillableTransfer struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	ServiceKind  model.ServiceKind   `json:"service_kind"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	Description  string              `json:"description"`
	ExtraCharges []model.ExtraCharge `json:"extra_charges"`
	LineTotal    string              `json:"line_total"`
}

type ListBillableTransfersResponse struct {
	Transfers []BillableTransfer `json:"transfers"`
}

// ListBillableTransfers returns the unbilled records of a client with their
// priced line total, for bill creation screens.
//
//encore:api public path=/v1/clients/:clientID/billable-transfers method=GET
func (s *Service) ListBillableTransfers(ctx context.Context, clientID string) (*ListBillableTransfersResponse, error) {
	id, err := parseID("client ID", clientID)
	if err != nil {
		return nil, err
	}

	records, err := s.transfers.ListBillableTransfers(ctx, id)
	if err != nil {
		rlog.Error("failed to list billable transfers", "error", err, "client_id", clientID)
		return nil, err
	}

	response := &ListBillableTransfersResponse{Transfers: make([]BillableTransfer, 0, len(records))}
	for _, rec := range records {
		lineTotal, err := pricing.LineTotal(rec)
		if err != nil {
			continue
		}
		charges := rec.ExtraCharges
		if charges == nil {
			charges = []model.ExtraCharge{}
		}
		response.Transfers = append(response.Transfers, BillableTransfer{
			ID:           rec.ID.String(),
			Date:         rec.Date.Format("2006-01-02"),
			ServiceKind:  rec.Kind(),
			Origin:       rec.Origin,
			Destination:  rec.Destination,
			Description:  pricing.ServiceLabel(rec.Kind()),
			ExtraCharges: charges,
			LineTotal:    lineTotal.StringFixed(2),
		})
	}

	return response, nil
}
