package bill

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
)

// UpdateBill edits the header of a draft or sent bill. The subtotal is
// recomputed from the persisted items and the tax totals from it, so the
// stored financial fields never drift from the items.
func (b *business) UpdateBill(ctx context.Context, id uuid.UUID, update *model.BillUpdate) (*model.Bill, error) {
	if update == nil {
		update = &model.BillUpdate{}
	}

	var updated bills.Bill

	err := b.stateMachine.GetBillWithLock(ctx, id, func(store domain.TxStore, current bills.Bill) error {
		if model.BillStatus(current.Status).Terminal() {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "paid or cancelled bills cannot be edited"}
		}

		sum, err := store.BillItems().SumBillItems(ctx, current.ID)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to sum bill items"}
		}

		params := mergeUpdate(current, update)
		subTotal := pgconv.Decimal(sum)
		totals := pricing.CalculateTaxTotals(subTotal, pgconv.Decimal(params.TaxRate), model.TaxApplication(params.TaxApplication))
		params.SubTotal = pgconv.Numeric(subTotal)
		params.TaxAmount = pgconv.Numeric(totals.TaxAmount)
		params.Total = pgconv.Numeric(totals.Total)

		updated, err = store.Bills().UpdateBillDetails(ctx, params)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update bill"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bill := convertDBBillToModel(updated)
	items, err := b.getBillItems(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.Items = items

	return bill, nil
}

func mergeUpdate(current bills.Bill, update *model.BillUpdate) bills.UpdateBillDetailsParams {
	params := bills.UpdateBillDetailsParams{
		ID:             current.ID,
		Date:           current.Date,
		DueDate:        current.DueDate,
		TaxRate:        current.TaxRate,
		TaxApplication: current.TaxApplication,
		Notes:          current.Notes,
	}

	if update.Date != nil {
		params.Date = pgconv.Date(truncateDay(*update.Date))
	}
	if update.DueDate != nil {
		params.DueDate = pgconv.Date(truncateDay(*update.DueDate))
	}
	if update.TaxRate != nil {
		params.TaxRate = pgconv.Numeric(*update.TaxRate)
	}
	if update.TaxApplication != nil {
		params.TaxApplication = string(*update.TaxApplication)
	}
	if update.Notes != nil {
		params.Notes = pgconv.Text(*update.Notes)
	}

	return params
}
