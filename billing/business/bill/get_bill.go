package bill

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/pgconv"
)

// GetBill handles the business logic for retrieving a bill by ID with its items
func (b *business) GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, pgconv.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.WrapCode(model.ErrBillNotFound, errs.NotFound, "bill not found")
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	}

	bill := convertDBBillToModel(dbBill)

	items, err := b.getBillItems(ctx, id)
	if err != nil {
		return nil, err
	}
	bill.Items = items

	return bill, nil
}

func (b *business) getBillItems(ctx context.Context, billID uuid.UUID) ([]model.BillItem, error) {
	rows, err := b.billItemRepo.ListBillItemsByBill(ctx, pgconv.UUID(billID))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill items"}
	}

	items := make([]model.BillItem, len(rows))
	for i, row := range rows {
		items[i] = convertDBBillItemToModel(row)
	}
	return items, nil
}
