package transfer

import (
	"context"

	"github.com/google/uuid"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/repository/clients"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/transfers"
)

// Business covers the service record operations billing depends on.
type Business interface {
	// ListBillableTransfers returns a client's records that can go on a new bill.
	ListBillableTransfers(ctx context.Context, clientID uuid.UUID) ([]*model.ServiceRecord, error)

	// ReplaceExtraCharges swaps a record's extra charges for the given list.
	ReplaceExtraCharges(ctx context.Context, transferID uuid.UUID, charges []model.ExtraCharge) ([]model.ExtraCharge, error)
}

type business struct {
	clientRepo      clients.Querier
	transferRepo    transfers.Querier
	extraChargeRepo extracharges.Querier
	stateMachine    domain.StateMachine
}

func NewBusiness(
	clientRepo clients.Querier,
	transferRepo transfers.Querier,
	extraChargeRepo extracharges.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		clientRepo:      clientRepo,
		transferRepo:    transferRepo,
		extraChargeRepo: extraChargeRepo,
		stateMachine:    stateMachine,
	}
}
