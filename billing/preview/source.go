package preview

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"transfers.app/billing/model"
)

// Source is the storage the assembler reads from. GetClient must return
// model.ErrClientNotFound and GetServiceRecord model.ErrServiceRecordNotFound
// (possibly wrapped) when the row does not exist.
type Source interface {
	GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error)
	GetServiceRecord(ctx context.Context, id uuid.UUID) (*model.ServiceRecord, error)
	ListExtraCharges(ctx context.Context, serviceRecordID uuid.UUID) ([]model.ExtraCharge, error)
}

// MemorySource serves clients and records from memory. The CLI prices JSON
// exports with it.
type MemorySource struct {
	clients map[uuid.UUID]model.Client
	records map[uuid.UUID]model.ServiceRecord
	invalid map[uuid.UUID]struct{}
}

func NewMemorySource(clients []model.Client, records []model.ServiceRecord) *MemorySource {
	s := &MemorySource{
		clients: make(map[uuid.UUID]model.Client, len(clients)),
		records: make(map[uuid.UUID]model.ServiceRecord, len(records)),
		invalid: make(map[uuid.UUID]struct{}),
	}
	for _, c := range clients {
		s.clients[c.ID] = c
	}
	for _, r := range records {
		s.records[r.ID] = r
	}
	return s
}

// WithInvalid registers ids of records that exist but could not be priced.
// GetServiceRecord reports them as model.ErrInvalidServiceRecord.
func (s *MemorySource) WithInvalid(ids ...uuid.UUID) *MemorySource {
	for _, id := range ids {
		s.invalid[id] = struct{}{}
	}
	return s
}

func (s *MemorySource) GetClient(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, model.ErrClientNotFound
	}
	return &c, nil
}

func (s *MemorySource) GetServiceRecord(_ context.Context, id uuid.UUID) (*model.ServiceRecord, error) {
	if _, bad := s.invalid[id]; bad {
		return nil, fmt.Errorf("%w: record %s", model.ErrInvalidServiceRecord, id)
	}
	r, ok := s.records[id]
	if !ok {
		return nil, model.ErrServiceRecordNotFound
	}
	r.ExtraCharges = nil
	return &r, nil
}

func (s *MemorySource) ListExtraCharges(_ context.Context, serviceRecordID uuid.UUID) ([]model.ExtraCharge, error) {
	r, ok := s.records[serviceRecordID]
	if !ok {
		return nil, nil
	}
	charges := make([]model.ExtraCharge, len(r.ExtraCharges))
	copy(charges, r.ExtraCharges)
	return charges, nil
}
