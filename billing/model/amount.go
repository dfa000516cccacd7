package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount reads a loosely typed monetary value. Values that are not
// numeric (nil, empty or malformed strings, other types) become zero.
func CoerceAmount(v any) decimal.Decimal {
	switch t := v.(type) {
	case decimal.Decimal:
		return t
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero
		}
		return *t
	case decimal.NullDecimal:
		if !t.Valid {
			return decimal.Zero
		}
		return t.Decimal
	case float64:
		return decimal.NewFromFloat(t)
	case float32:
		return decimal.NewFromFloat32(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int32:
		return decimal.NewFromInt32(t)
	case int64:
		return decimal.NewFromInt(t)
	case json.Number:
		return parseAmount(t.String())
	case string:
		return parseAmount(t)
	default:
		return decimal.Zero
	}
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
