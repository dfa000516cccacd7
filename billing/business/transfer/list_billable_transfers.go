package transfer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/pgconv"
)

// ListBillableTransfers returns the client's unbilled records with their
// extra charges, oldest first. Rows that cannot be priced are left out.
func (b *business) ListBillableTransfers(ctx context.Context, clientID uuid.UUID) ([]*model.ServiceRecord, error) {
	if _, err := b.clientRepo.GetClient(ctx, pgconv.UUID(clientID)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapCode(model.ErrClientNotFound, errs.NotFound, "client not found")
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get client"}
	}

	rows, err := b.transferRepo.ListUnbilledTransfersByClient(ctx, pgconv.UUID(clientID))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list transfers"}
	}
	if len(rows) == 0 {
		return []*model.ServiceRecord{}, nil
	}

	ids := make([]pgtype.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	chargeRows, err := b.extraChargeRepo.ListExtraChargesByTransfers(ctx, ids)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list extra charges"}
	}
	charges := GroupExtraCharges(chargeRows)

	records := make([]*model.ServiceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := ToServiceRecord(row)
		if err != nil {
			rlog.Warn("skipping unpriceable transfer", "transfer_id", pgconv.FromUUID(row.ID), "error", err)
			continue
		}
		rec.ExtraCharges = charges[rec.ID]
		records = append(records, rec)
	}

	return records, nil
}
