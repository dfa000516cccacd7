package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
)

const (
	dateLayout = "02-01-2006"

	labelTransfer    = "Traslado"
	labelDisposition = "Disposición"

	extraChargePrefix = "Cargos extra: "
)

// Item is the display shape of one bill row.
type Item struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// FormatItem builds the main bill row of a record. Dispositions are shown as
// hours times rate, transfers as one unit at the base price. TotalPrice is
// the cent-rounded base minus the discount and excludes extra charges, which
// get their own rows.
func FormatItem(rec *model.ServiceRecord, discount decimal.Decimal) (Item, error) {
	base, err := BasePrice(rec)
	if err != nil {
		return Item{}, err
	}

	var item Item
	switch p := rec.Pricing.(type) {
	case model.HourlyRate:
		item.Quantity = p.Hours
		item.UnitPrice = p.Rate
	default:
		item.Quantity = decimal.NewFromInt(1)
		item.UnitPrice = base
	}

	item.Description = Describe(rec, discount)
	item.TotalPrice = base.Sub(discount)
	return item, nil
}

// Describe renders "DD-MM-YYYY | <service>" plus the discount annotation when
// a discount applies.
func Describe(rec *model.ServiceRecord, discount decimal.Decimal) string {
	var sb strings.Builder
	sb.WriteString(rec.Date.Format(dateLayout))
	sb.WriteString(" | ")
	sb.WriteString(ServiceLabel(rec.Kind()))

	if discount.IsPositive() && rec.Discount != nil {
		unit := "€"
		if rec.Discount.Kind == model.AdjustmentPercentage {
			unit = "%"
		}
		fmt.Fprintf(&sb, " - descuento de %s%s", rec.Discount.Value.String(), unit)
	}

	return sb.String()
}

func ServiceLabel(kind model.ServiceKind) string {
	if kind == model.ServiceKindDisposition {
		return labelDisposition
	}
	return labelTransfer
}

// ExtraChargeItem builds the bill row of one extra charge.
func ExtraChargeItem(c model.ExtraCharge) Item {
	return Item{
		Description: extraChargePrefix + c.Name,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   roundCents(c.Price),
		TotalPrice:  roundCents(c.Price),
	}
}
