package bill

import (
	"transfers.app/billing/model"
	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
)

// convertDBBillToModel converts a database Bill to a domain model Bill
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	return &model.Bill{
		ID:             pgconv.FromUUID(dbBill.ID),
		Number:         dbBill.Number,
		ClientID:       pgconv.FromUUID(dbBill.ClientID),
		Date:           dbBill.Date.Time,
		DueDate:        dbBill.DueDate.Time,
		SubTotal:       pgconv.Decimal(dbBill.SubTotal),
		TaxRate:        pgconv.Decimal(dbBill.TaxRate),
		TaxAmount:      pgconv.Decimal(dbBill.TaxAmount),
		TaxApplication: model.TaxApplication(dbBill.TaxApplication),
		Total:          pgconv.Decimal(dbBill.Total),
		Status:         model.BillStatus(dbBill.Status),
		Notes:          pgconv.FromNullText(dbBill.Notes),
		CreatedAt:      dbBill.CreatedAt.Time,
		UpdatedAt:      dbBill.UpdatedAt.Time,
	}
}

func convertDBBillItemToModel(item billitems.BillItem) model.BillItem {
	return model.BillItem{
		ID:              pgconv.FromUUID(item.ID),
		BillID:          pgconv.FromUUID(item.BillID),
		ServiceRecordID: pgconv.FromUUID(item.TransferID),
		Description:     item.Description,
		Quantity:        pgconv.Decimal(item.Quantity),
		UnitPrice:       pgconv.Decimal(item.UnitPrice),
		TotalPrice:      pgconv.Decimal(item.TotalPrice),
		IsExtraCharge:   item.IsExtraCharge,
		Position:        item.Position,
		CreatedAt:       item.CreatedAt.Time,
	}
}
