package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"transfers.app/billing/model"
)

// Dataset is the JSON export billctl reads: clients plus their service
// records with extra charges inlined.
type Dataset struct {
	Clients []model.Client
	Records []model.ServiceRecord
	// Invalid holds ids of records whose pricing could not be built.
	Invalid []uuid.UUID
}

type clientJSON struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	TaxID   string    `json:"tax_id"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

type adjustmentJSON struct {
	Kind  model.AdjustmentKind `json:"kind"`
	Value decimal.Decimal      `json:"value"`
}

type commissionJSON struct {
	CollaboratorName string               `json:"collaborator_name"`
	Kind             model.AdjustmentKind `json:"kind"`
	Value            decimal.Decimal      `json:"value"`
}

type recordJSON struct {
	ID           uuid.UUID           `json:"id"`
	ClientID     uuid.UUID           `json:"client_id"`
	Date         string              `json:"date"`
	ServiceKind  model.ServiceKind   `json:"service_kind"`
	Price        any                 `json:"price"`
	Hours        any                 `json:"hours"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	Discount     *adjustmentJSON     `json:"discount"`
	Commission   *commissionJSON     `json:"commission"`
	ExtraCharges []model.ExtraCharge `json:"extra_charges"`
	Billed       bool                `json:"billed"`
}

type datasetJSON struct {
	Clients []clientJSON `json:"clients"`
	Records []recordJSON `json:"records"`
}

func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadDataset(f)
}

// ReadDataset decodes a dataset. Amounts may be numbers or strings. Records
// that cannot be priced are kept out of Records and listed in Invalid, so a
// preview can still tell them apart from unknown ids.
func ReadDataset(r io.Reader) (*Dataset, error) {
	var raw datasetJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := &Dataset{
		Clients: make([]model.Client, len(raw.Clients)),
		Records: make([]model.ServiceRecord, 0, len(raw.Records)),
	}
	for i, c := range raw.Clients {
		ds.Clients[i] = model.Client{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Email: c.Email, Address: c.Address}
	}

	for _, r := range raw.Records {
		rec, err := r.toServiceRecord()
		if err != nil {
			ds.Invalid = append(ds.Invalid, r.ID)
			continue
		}
		ds.Records = append(ds.Records, *rec)
	}

	return ds, nil
}

func (r recordJSON) toServiceRecord() (*model.ServiceRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}

	var hours *decimal.Decimal
	if r.Hours != nil {
		h := model.CoerceAmount(r.Hours)
		hours = &h
	}
	pricing, err := model.NewPricing(r.ServiceKind, model.CoerceAmount(r.Price), hours)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", r.ID, err)
	}

	rec := &model.ServiceRecord{
		ID:           r.ID,
		ClientID:     r.ClientID,
		Date:         date,
		Pricing:      pricing,
		ExtraCharges: r.ExtraCharges,
		Origin:       r.Origin,
		Destination:  r.Destination,
		Billed:       r.Billed,
	}
	if r.Discount != nil {
		rec.Discount = &model.Discount{Kind: r.Discount.Kind, Value: r.Discount.Value}
	}
	if r.Commission != nil {
		rec.Commission = &model.Commission{
			CollaboratorName: r.Commission.CollaboratorName,
			Kind:             r.Commission.Kind,
			Value:            r.Commission.Value,
		}
	}
	return rec, nil
}

// Between returns the records dated within [from, to].
func (d *Dataset) Between(from, to time.Time) []*model.ServiceRecord {
	out := make([]*model.ServiceRecord, 0, len(d.Records))
	for i := range d.Records {
		rec := &d.Records[i]
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Unbilled returns the ids of the client's unbilled records in file order.
func (d *Dataset) Unbilled(clientID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for _, rec := range d.Records {
		if rec.ClientID == clientID && !rec.Billed {
			ids = append(ids, rec.ID)
		}
	}
	return ids
}
