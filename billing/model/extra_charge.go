package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExtraCharge is an ad hoc fee attached to a service record. Slice order is
// display order.
type ExtraCharge struct {
	ID    *uuid.UUID      `json:"id,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UnmarshalJSON accepts the price as a number or a string. Anything that does
// not parse as a number is read as zero.
func (c *ExtraCharge) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID    *uuid.UUID      `json:"id"`
		Name  string          `json:"name"`
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var raw any
	if len(aux.Price) > 0 {
		if err := json.Unmarshal(aux.Price, &raw); err != nil {
			raw = nil
		}
	}

	c.ID = aux.ID
	c.Name = aux.Name
	c.Price = CoerceAmount(raw)
	return nil
}
