package transfer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
)

// ReplaceExtraCharges deletes every extra charge of the record and inserts
// the given ones in order, in one transaction. Billed records are frozen.
func (b *business) ReplaceExtraCharges(ctx context.Context, transferID uuid.UUID, charges []model.ExtraCharge) ([]model.ExtraCharge, error) {
	for _, c := range charges {
		if strings.TrimSpace(c.Name) == "" {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "extra charge name is required"}
		}
	}

	saved := make([]model.ExtraCharge, 0, len(charges))

	err := b.stateMachine.ExecuteInTx(ctx, func(store domain.TxStore) error {
		row, err := store.Transfers().GetTransfer(ctx, pgconv.UUID(transferID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.WrapCode(model.ErrServiceRecordNotFound, errs.NotFound, "transfer not found")
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to get transfer"}
		}
		if row.Billed {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "transfer is already billed"}
		}

		if err := store.ExtraCharges().DeleteExtraChargesByTransfer(ctx, row.ID); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to delete extra charges"}
		}

		for i, c := range charges {
			created, err := store.ExtraCharges().CreateExtraCharge(ctx, extracharges.CreateExtraChargeParams{
				TransferID: row.ID,
				Name:       strings.TrimSpace(c.Name),
				Price:      pgconv.Numeric(c.Price),
				Position:   int32(i),
			})
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create extra charge"}
			}
			saved = append(saved, ToExtraCharge(created))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
