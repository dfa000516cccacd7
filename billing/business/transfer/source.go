package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/clients"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

// Source reads clients, records and extra charges from Postgres for the
// preview assembler.
type Source struct {
	clientRepo      clients.Querier
	transferRepo    transfers.Querier
	extraChargeRepo extracharges.Querier
}

func NewSource(clientRepo clients.Querier, transferRepo transfers.Querier, extraChargeRepo extracharges.Querier) *Source {
	return &Source{
		clientRepo:      clientRepo,
		transferRepo:    transferRepo,
		extraChargeRepo: extraChargeRepo,
	}
}

func (s *Source) GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	row, err := s.clientRepo.GetClient(ctx, pgconv.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrClientNotFound, id)
		}
		return nil, fmt.Errorf("get client %s: %w", id, err)
	}
	return ToClient(row), nil
}

func (s *Source) GetServiceRecord(ctx context.Context, id uuid.UUID) (*model.ServiceRecord, error) {
	row, err := s.transferRepo.GetTransfer(ctx, pgconv.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", model.ErrServiceRecordNotFound, id)
		}
		return nil, err
	}
	return ToServiceRecord(row)
}

func (s *Source) ListExtraCharges(ctx context.Context, serviceRecordID uuid.UUID) ([]model.ExtraCharge, error) {
	rows, err := s.extraChargeRepo.ListExtraChargesByTransfer(ctx, pgconv.UUID(serviceRecordID))
	if err != nil {
		return nil, err
	}

	charges := make([]model.ExtraCharge, len(rows))
	for i, row := range rows {
		charges[i] = ToExtraCharge(row)
	}
	return charges, nil
}
