package report

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/business/transfer"
	"transfers.app/billing/model"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

type Business interface {
	// ProfitReport aggregates the services dated within [from, to].
	ProfitReport(ctx context.Context, from, to time.Time) (*model.ProfitReport, error)
}

type business struct {
	transferRepo    transfers.Querier
	extraChargeRepo extracharges.Querier
}

func NewBusiness(transferRepo transfers.Querier, extraChargeRepo extracharges.Querier) Business {
	return &business{
		transferRepo:    transferRepo,
		extraChargeRepo: extraChargeRepo,
	}
}

func (b *business) ProfitReport(ctx context.Context, from, to time.Time) (*model.ProfitReport, error) {
	if to.Before(from) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "to must not be before from"}
	}

	rows, err := b.transferRepo.ListTransfersByDateRange(ctx, transfers.ListTransfersByDateRangeParams{
		DateFrom: pgconv.Date(from),
		DateTo:   pgconv.Date(to),
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list transfers"}
	}

	invalid := 0
	records := make([]*model.ServiceRecord, 0, len(rows))
	ids := make([]pgtype.UUID, 0, len(rows))
	for _, row := range rows {
		rec, err := transfer.ToServiceRecord(row)
		if err != nil {
			if !errors.Is(err, model.ErrInvalidServiceRecord) {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to read transfer"}
			}
			rlog.Warn("transfer left out of profit report", "transfer_id", pgconv.FromUUID(row.ID), "error", err)
			invalid++
			continue
		}
		records = append(records, rec)
		ids = append(ids, row.ID)
	}

	if len(ids) > 0 {
		chargeRows, err := b.extraChargeRepo.ListExtraChargesByTransfers(ctx, ids)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to list extra charges"}
		}
		charges := transfer.GroupExtraCharges(chargeRows)
		for _, rec := range records {
			rec.ExtraCharges = charges[rec.ID]
		}
	}

	report := BuildProfitReport(from, to, records)
	report.Invalid += invalid

	return report, nil
}
