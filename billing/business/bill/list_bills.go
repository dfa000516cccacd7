package bill

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
)

// ListFilter narrows and pages ListBills. Nil filters match everything.
type ListFilter struct {
	ClientID *uuid.UUID
	Status   *model.BillStatus
	Limit    int32
	Offset   int32
}

// ListBills returns bill headers, newest first. Items are not loaded.
func (b *business) ListBills(ctx context.Context, filter ListFilter) ([]*model.Bill, error) {
	params := bills.ListBillsParams{
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		ClientID: pgconv.NullUUID(filter.ClientID),
	}
	if filter.Status != nil {
		params.Status = pgconv.Text(string(*filter.Status))
	}

	rows, err := b.billRepo.ListBills(ctx, params)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	result := make([]*model.Bill, len(rows))
	for i, row := range rows {
		result[i] = convertDBBillToModel(row)
	}

	return result, nil
}
