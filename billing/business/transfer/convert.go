package transfer

import (
	"github.com/google/uuid"

	"transfers.app/billing/model"
	"transfers.app/billing/repository/clients"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

// ToServiceRecord converts a transfers row. Rows whose pricing cannot be
// built, such as a disposition without hours, return
// model.ErrInvalidServiceRecord. Extra charges are not loaded.
func ToServiceRecord(row transfers.Transfer) (*model.ServiceRecord, error) {
	pricing, err := model.NewPricing(
		model.ServiceKind(row.ServiceKind),
		pgconv.Decimal(row.Price),
		pgconv.NullDecimal(row.Hours),
	)
	if err != nil {
		return nil, err
	}

	rec := &model.ServiceRecord{
		ID:          pgconv.FromUUID(row.ID),
		ClientID:    pgconv.FromUUID(row.ClientID),
		Date:        row.Date.Time,
		Pricing:     pricing,
		Origin:      row.Origin,
		Destination: row.Destination,
		Billed:      row.Billed,
		BillID:      pgconv.FromNullUUID(row.BillID),
		CreatedAt:   row.CreatedAt.Time,
	}

	if row.DiscountKind.Valid {
		rec.Discount = &model.Discount{
			Kind:  model.AdjustmentKind(row.DiscountKind.String),
			Value: pgconv.Decimal(row.DiscountValue),
		}
	}

	if row.CollaboratorName.Valid && row.CommissionKind.Valid {
		rec.Commission = &model.Commission{
			CollaboratorName: row.CollaboratorName.String,
			Kind:             model.AdjustmentKind(row.CommissionKind.String),
			Value:            pgconv.Decimal(row.CommissionValue),
		}
	}

	return rec, nil
}

func ToExtraCharge(row extracharges.ExtraCharge) model.ExtraCharge {
	id := pgconv.FromUUID(row.ID)
	return model.ExtraCharge{
		ID:    &id,
		Name:  row.Name,
		Price: pgconv.Decimal(row.Price),
	}
}

// GroupExtraCharges groups rows by record, keeping row order.
func GroupExtraCharges(rows []extracharges.ExtraCharge) map[uuid.UUID][]model.ExtraCharge {
	grouped := make(map[uuid.UUID][]model.ExtraCharge)
	for _, row := range rows {
		id := pgconv.FromUUID(row.TransferID)
		grouped[id] = append(grouped[id], ToExtraCharge(row))
	}
	return grouped
}

func ToClient(row clients.Client) *model.Client {
	c := &model.Client{
		ID:        pgconv.FromUUID(row.ID),
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.TaxID.Valid {
		c.TaxID = row.TaxID.String
	}
	if row.Email.Valid {
		c.Email = row.Email.String
	}
	if row.Address.Valid {
		c.Address = row.Address.String
	}
	return c
}
