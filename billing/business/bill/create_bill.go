package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/preview"
	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

// defaultDueDays applies when a request carries no due date.
const defaultDueDays = 30

var errTransferNotMarked = errors.New("transfer was not marked as billed")

// CreateBill prices the requested records, then writes the bill header, its
// items and the billed flags of its records in one transaction. Each item
// and flag write runs in its own savepoint: a failing one is reported as a
// warning while the rest of the bill is kept.
func (b *business) CreateBill(ctx context.Context, req *model.BillRequest) (*model.CreateBillResult, error) {
	if req == nil || req.ClientID == uuid.Nil || len(req.ServiceRecordIDs) == 0 {
		return nil, errs.WrapCode(model.ErrIncompleteBillRequest, errs.InvalidArgument, model.ErrIncompleteBillRequest.Error())
	}

	p, err := b.previewer.Calculate(ctx, preview.Request{
		ClientID:         req.ClientID,
		ServiceRecordIDs: req.ServiceRecordIDs,
		TaxRate:          req.TaxRate,
		TaxApplication:   req.TaxApplication,
	})
	if err != nil {
		return nil, mapPreviewError(err)
	}

	var warnings []string
	for _, s := range p.Skipped {
		warnings = append(warnings, fmt.Sprintf("service record %s skipped: %s", s.ServiceRecordID, s.Reason))
	}

	items := preview.ExpandItems(p)
	if len(items) == 0 {
		return nil, errs.WrapCode(model.ErrNoBillableItems, errs.FailedPrecondition, model.ErrNoBillableItems.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, errs.WrapCode(err, errs.Canceled, "bill creation canceled")
	}

	now := b.now()
	sequence := b.nextSequence(ctx, now)

	var (
		created bills.Bill
		saved   []model.BillItem
	)

	err = b.stateMachine.ExecuteInTx(ctx, func(store domain.TxStore) error {
		var err error
		created, err = b.insertHeader(ctx, store, req, p, now.Year(), sequence)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return errs.WrapCode(err, errs.Canceled, "bill creation canceled")
			}

			var row billitems.BillItem
			err := store.Savepoint(ctx, func(sp domain.TxStore) error {
				var err error
				row, err = sp.BillItems().CreateBillItem(ctx, billitems.CreateBillItemParams{
					BillID:        created.ID,
					TransferID:    pgconv.UUID(item.ServiceRecordID),
					Description:   item.Description,
					Quantity:      pgconv.Numeric(item.Quantity),
					UnitPrice:     pgconv.Numeric(item.UnitPrice),
					TotalPrice:    pgconv.Numeric(item.TotalPrice),
					IsExtraCharge: item.IsExtraCharge,
					Position:      item.Position,
				})
				return err
			})
			if err != nil {
				rlog.Warn("failed to insert bill item", "bill_number", created.Number, "description", item.Description, "error", err)
				warnings = append(warnings, fmt.Sprintf("bill item %q was not saved", item.Description))
				continue
			}
			saved = append(saved, convertDBBillItemToModel(row))
		}

		if len(saved) == 0 {
			return errs.WrapCode(model.ErrNoBillableItems, errs.Internal, "no bill item could be saved")
		}

		for _, id := range p.ServiceRecordIDs() {
			if err := ctx.Err(); err != nil {
				return errs.WrapCode(err, errs.Canceled, "bill creation canceled")
			}

			err := store.Savepoint(ctx, func(sp domain.TxStore) error {
				n, err := sp.Transfers().MarkTransferBilled(ctx, transfers.MarkTransferBilledParams{
					ID:     pgconv.UUID(id),
					BillID: created.ID,
				})
				if err != nil {
					return err
				}
				if n == 0 {
					return errTransferNotMarked
				}
				return nil
			})
			if err != nil {
				rlog.Warn("failed to mark transfer as billed", "bill_number", created.Number, "transfer_id", id, "error", err)
				warnings = append(warnings, fmt.Sprintf("service record %s was not marked as billed", id))
			}
		}

		return nil
	})
	if err != nil {
		if errs.Code(err) == errs.Unknown {
			return nil, errs.WrapCode(err, errs.Internal, "failed to create bill")
		}
		return nil, err
	}

	bill := convertDBBillToModel(created)
	bill.Items = saved

	return &model.CreateBillResult{Bill: bill, Warnings: warnings}, nil
}

// insertHeader writes the bill header as a draft. A number conflict with a
// concurrently created bill retries with the next sequence.
func (b *business) insertHeader(
	ctx context.Context,
	store domain.TxStore,
	req *model.BillRequest,
	p *model.BillPreview,
	year int,
	sequence billSequence,
) (bills.Bill, error) {
	date := req.Date
	if date.IsZero() {
		date = b.now()
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = date.AddDate(0, 0, defaultDueDays)
	}

	var created bills.Bill
	for attempt := int64(0); attempt < maxNumberAttempts; attempt++ {
		number := FormatBillNumber(b.numberPrefix, year, sequence.attempt(attempt))

		err := store.Savepoint(ctx, func(sp domain.TxStore) error {
			var err error
			created, err = sp.Bills().CreateBill(ctx, bills.CreateBillParams{
				Number:         number,
				ClientID:       pgconv.UUID(p.ClientID),
				Date:           pgconv.Date(truncateDay(date)),
				DueDate:        pgconv.Date(truncateDay(dueDate)),
				SubTotal:       pgconv.Numeric(p.SubTotal),
				TaxRate:        pgconv.Numeric(p.TaxRate),
				TaxAmount:      pgconv.Numeric(p.TaxAmount),
				TaxApplication: string(p.TaxApplication),
				Total:          pgconv.Numeric(p.Total),
				Status:         string(model.BillStatusDraft),
				Notes:          pgconv.NullText(req.Notes),
			})
			return err
		})
		if err == nil {
			return created, nil
		}

		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			rlog.Warn("bill number already taken, retrying", "number", number, "attempt", attempt+1)
			continue
		}

		return bills.Bill{}, &errs.Error{Code: errs.Internal, Message: "failed to create bill"}
	}

	return bills.Bill{}, &errs.Error{Code: errs.Aborted, Message: "could not allocate a unique bill number"}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
