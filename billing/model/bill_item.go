package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillItem is one persisted bill row: either a service row or an extra
// charge row.
type BillItem struct {
	ID              uuid.UUID       `json:"id"`
	BillID          uuid.UUID       `json:"bill_id"`
	ServiceRecordID uuid.UUID       `json:"service_record_id"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	IsExtraCharge   bool            `json:"is_extra_charge"`
	Position        int32           `json:"position"`
	CreatedAt       time.Time       `json:"created_at"`
}
