package preview

import (
	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
)

// ExpandItems turns a preview into bill rows: one main row per record
// followed by one row per extra charge of that record. Positions are
// assigned in order starting at 1. BillID is left for the caller.
func ExpandItems(p *model.BillPreview) []model.BillItem {
	if p == nil {
		return nil
	}

	var (
		items    []model.BillItem
		position int32
	)
	for _, line := range p.LineItems {
		position++
		items = append(items, model.BillItem{
			ServiceRecordID: line.ServiceRecordID,
			Description:     line.Description,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			TotalPrice:      line.ItemTotal,
			Position:        position,
		})

		for _, c := range line.ExtraCharges {
			row := pricing.ExtraChargeItem(c)
			position++
			items = append(items, model.BillItem{
				ServiceRecordID: line.ServiceRecordID,
				Description:     row.Description,
				Quantity:        row.Quantity,
				UnitPrice:       row.UnitPrice,
				TotalPrice:      row.TotalPrice,
				IsExtraCharge:   true,
				Position:        position,
			})
		}
	}

	return items
}
