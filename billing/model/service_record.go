package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceKind string

const (
	ServiceKindTransfer    ServiceKind = "transfer"
	ServiceKindDisposition ServiceKind = "disposition"
)

// Pricing is the service-kind specific part of a ServiceRecord. It is either
// FixedPrice (transfer) or HourlyRate (disposition).
type Pricing interface {
	Kind() ServiceKind
	isPricing()
}

// FixedPrice prices a point-to-point transfer with one total amount.
type FixedPrice struct {
	Price decimal.Decimal `json:"price"`
}

func (FixedPrice) Kind() ServiceKind { return ServiceKindTransfer }
func (FixedPrice) isPricing()        {}

// HourlyRate prices a disposition as Rate per hour over Hours.
type HourlyRate struct {
	Rate  decimal.Decimal `json:"rate"`
	Hours decimal.Decimal `json:"hours"`
}

func (HourlyRate) Kind() ServiceKind { return ServiceKindDisposition }
func (HourlyRate) isPricing()        {}

// NewPricing builds the pricing variant for a stored record. price is the
// total for transfers and the hourly rate for dispositions.
func NewPricing(kind ServiceKind, price decimal.Decimal, hours *decimal.Decimal) (Pricing, error) {
	switch kind {
	case ServiceKindTransfer:
		return FixedPrice{Price: price}, nil
	case ServiceKindDisposition:
		if hours == nil || !hours.IsPositive() {
			return nil, ErrInvalidServiceRecord
		}
		return HourlyRate{Rate: price, Hours: *hours}, nil
	default:
		return nil, ErrInvalidServiceRecord
	}
}

type AdjustmentKind string

const (
	AdjustmentPercentage AdjustmentKind = "percentage"
	AdjustmentFixed      AdjustmentKind = "fixed"
)

func (k AdjustmentKind) Valid() bool {
	return k == AdjustmentPercentage || k == AdjustmentFixed
}

type Discount struct {
	Kind  AdjustmentKind  `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

type Commission struct {
	CollaboratorName string          `json:"collaborator_name"`
	Kind             AdjustmentKind  `json:"kind"`
	Value            decimal.Decimal `json:"value"`
}

// ServiceRecord is one transportation service (a "transfer" in the UI).
type ServiceRecord struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	Date         time.Time
	Pricing      Pricing
	Discount     *Discount
	ExtraCharges []ExtraCharge
	Commission   *Commission
	Origin       string
	Destination  string
	Billed       bool
	BillID       *uuid.UUID
	CreatedAt    time.Time
}

func (r *ServiceRecord) Kind() ServiceKind {
	if r.Pricing == nil {
		return ""
	}
	return r.Pricing.Kind()
}
