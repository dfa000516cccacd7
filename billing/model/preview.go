package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TaxApplication string

const (
	// TaxIncluded means prices already contain the tax.
	TaxIncluded TaxApplication = "included"
	// TaxExcluded means the tax is added on top of the subtotal.
	TaxExcluded TaxApplication = "excluded"
)

func (t TaxApplication) Valid() bool {
	return t == TaxIncluded || t == TaxExcluded
}

// BillPreview is the in-memory result of pricing a selection of service
// records for a client. It is never persisted as such.
type BillPreview struct {
	ClientID       uuid.UUID         `json:"client_id"`
	ClientName     string            `json:"client_name"`
	LineItems      []PreviewLineItem `json:"line_items"`
	Skipped        []SkippedRecord   `json:"skipped,omitempty"`
	SubTotal       decimal.Decimal   `json:"sub_total"`
	TaxRate        decimal.Decimal   `json:"tax_rate"`
	TaxApplication TaxApplication    `json:"tax_application"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	Total          decimal.Decimal   `json:"total"`
}

// ServiceRecordIDs returns the ids of the priced records in preview order.
func (p *BillPreview) ServiceRecordIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.LineItems))
	for i, item := range p.LineItems {
		ids[i] = item.ServiceRecordID
	}
	return ids
}

type PreviewLineItem struct {
	ServiceRecordID uuid.UUID       `json:"service_record_id"`
	ServiceKind     ServiceKind     `json:"service_kind"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	// ItemTotal is unit price times quantity minus the discount, without extras.
	ItemTotal    decimal.Decimal `json:"item_total"`
	ExtraCharges []ExtraCharge   `json:"extra_charges"`
	ExtrasTotal  decimal.Decimal `json:"extras_total"`
	// LineTotal is ItemTotal plus ExtrasTotal.
	LineTotal decimal.Decimal `json:"line_total"`
}

type SkipReason string

const (
	SkipNotFound      SkipReason = "not_found"
	SkipInvalid       SkipReason = "invalid"
	SkipAlreadyBilled SkipReason = "already_billed"
	SkipOtherClient   SkipReason = "other_client"
	SkipDuplicate     SkipReason = "duplicate"
)

type SkippedRecord struct {
	ServiceRecordID uuid.UUID  `json:"service_record_id"`
	Reason          SkipReason `json:"reason"`
}
