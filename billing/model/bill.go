package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bill struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	ClientID       uuid.UUID       `json:"client_id"`
	Date           time.Time       `json:"date"`
	DueDate        time.Time       `json:"due_date"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TaxApplication TaxApplication  `json:"tax_application"`
	Total          decimal.Decimal `json:"total"`
	Status         BillStatus      `json:"status"`
	Notes          *string         `json:"notes,omitempty"`
	Items          []BillItem      `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type BillStatus string

const (
	BillStatusDraft     BillStatus = "draft"
	BillStatusSent      BillStatus = "sent"
	BillStatusPaid      BillStatus = "paid"
	BillStatusCancelled BillStatus = "cancelled"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusDraft, BillStatusSent, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a bill may move from s to next. Forward
// moves are draft->sent->paid; any status may move to cancelled.
func (s BillStatus) CanTransitionTo(next BillStatus) bool {
	switch next {
	case BillStatusCancelled:
		return s.Valid()
	case BillStatusSent:
		return s == BillStatusDraft
	case BillStatusPaid:
		return s == BillStatusSent
	}
	return false
}

// Terminal statuses end the bill lifecycle.
func (s BillStatus) Terminal() bool {
	return s == BillStatusPaid || s == BillStatusCancelled
}

// BillRequest is the input of bill creation.
type BillRequest struct {
	ClientID         uuid.UUID
	Date             time.Time
	DueDate          time.Time
	ServiceRecordIDs []uuid.UUID
	TaxRate          decimal.Decimal
	TaxApplication   TaxApplication
	Notes            *string
}

// CreateBillResult carries the new bill plus the soft failures that did not
// stop its creation.
type CreateBillResult struct {
	Bill     *Bill    `json:"bill"`
	Warnings []string `json:"warnings,omitempty"`
}

// BillUpdate holds the editable fields of a bill. Nil fields are unchanged.
type BillUpdate struct {
	Date           *time.Time
	DueDate        *time.Time
	TaxRate        *decimal.Decimal
	TaxApplication *TaxApplication
	Notes          *string
}
