package bill

import (
	"context"

	"github.com/google/uuid"

	"transfers.app/billing/model"
)

// UpdateBillStatus moves a bill along draft->sent->paid or to cancelled.
func (b *business) UpdateBillStatus(ctx context.Context, id uuid.UUID, status model.BillStatus) (*model.Bill, error) {
	updated, err := b.stateMachine.TransitionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	return convertDBBillToModel(updated), nil
}
