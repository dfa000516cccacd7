// Package preview assembles bill previews from stored service records and
// expands them into the rows a persisted bill is made of.
package preview

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"transfers.app/billing/model"
	"transfers.app/billing/pricing"
)

const defaultFetchConcurrency = 8

type Request struct {
	ClientID         uuid.UUID
	ServiceRecordIDs []uuid.UUID
	TaxRate          decimal.Decimal
	TaxApplication   model.TaxApplication
}

type Assembler struct {
	source      Source
	concurrency int
}

func NewAssembler(source Source) *Assembler {
	return &Assembler{source: source, concurrency: defaultFetchConcurrency}
}

// slot is the outcome for one requested id: a priced line or a skip reason.
type slot struct {
	line *model.PreviewLineItem
	skip model.SkipReason
}

// Calculate prices the requested records for a client. Records are fetched
// concurrently but line items keep the request order. Records that are
// missing, invalid, already billed or owned by another client are left out
// and reported in Skipped. A missing client fails the whole preview.
func (a *Assembler) Calculate(ctx context.Context, req Request) (*model.BillPreview, error) {
	client, err := a.source.GetClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	slots := make([]slot, len(req.ServiceRecordIDs))
	seen := make(map[uuid.UUID]struct{}, len(req.ServiceRecordIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, id := range req.ServiceRecordIDs {
		if _, dup := seen[id]; dup {
			slots[i].skip = model.SkipDuplicate
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			s, err := a.resolve(gctx, client.ID, id)
			if err != nil {
				return err
			}
			slots[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &model.BillPreview{
		ClientID:       client.ID,
		ClientName:     client.Name,
		LineItems:      make([]model.PreviewLineItem, 0, len(slots)),
		SubTotal:       decimal.Zero,
		TaxRate:        req.TaxRate,
		TaxApplication: req.TaxApplication,
	}

	for i, s := range slots {
		if s.line == nil {
			p.Skipped = append(p.Skipped, model.SkippedRecord{
				ServiceRecordID: req.ServiceRecordIDs[i],
				Reason:          s.skip,
			})
			continue
		}
		p.LineItems = append(p.LineItems, *s.line)
		p.SubTotal = p.SubTotal.Add(s.line.LineTotal)
	}

	totals := pricing.CalculateTaxTotals(p.SubTotal, p.TaxRate, p.TaxApplication)
	p.TaxAmount = totals.TaxAmount
	p.Total = totals.Total

	return p, nil
}

func (a *Assembler) resolve(ctx context.Context, clientID, id uuid.UUID) (slot, error) {
	rec, err := a.source.GetServiceRecord(ctx, id)
	switch {
	case errors.Is(err, model.ErrServiceRecordNotFound):
		return slot{skip: model.SkipNotFound}, nil
	case errors.Is(err, model.ErrInvalidServiceRecord):
		return slot{skip: model.SkipInvalid}, nil
	case err != nil:
		return slot{}, fmt.Errorf("get service record %s: %w", id, err)
	}

	if rec.ClientID != clientID {
		return slot{skip: model.SkipOtherClient}, nil
	}
	if rec.Billed {
		return slot{skip: model.SkipAlreadyBilled}, nil
	}

	charges, err := a.source.ListExtraCharges(ctx, id)
	if err != nil {
		return slot{}, fmt.Errorf("list extra charges of %s: %w", id, err)
	}
	rec.ExtraCharges = charges

	line, err := PriceRecord(rec)
	if errors.Is(err, model.ErrInvalidServiceRecord) {
		return slot{skip: model.SkipInvalid}, nil
	}
	if err != nil {
		return slot{}, err
	}

	return slot{line: &line}, nil
}

// PriceRecord builds the preview line of one record with its extra charges
// already attached.
func PriceRecord(rec *model.ServiceRecord) (model.PreviewLineItem, error) {
	base, err := pricing.BasePrice(rec)
	if err != nil {
		return model.PreviewLineItem{}, err
	}

	discount := pricing.DiscountAmount(rec.Discount, base)
	item, err := pricing.FormatItem(rec, discount)
	if err != nil {
		return model.PreviewLineItem{}, err
	}

	lineTotal, err := pricing.LineTotal(rec)
	if err != nil {
		return model.PreviewLineItem{}, err
	}

	return model.PreviewLineItem{
		ServiceRecordID: rec.ID,
		ServiceKind:     rec.Kind(),
		Description:     item.Description,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		BasePrice:       base,
		DiscountAmount:  discount,
		ItemTotal:       item.TotalPrice,
		ExtraCharges:    rec.ExtraCharges,
		ExtrasTotal:     pricing.ExtraChargesTotal(rec.ExtraCharges),
		LineTotal:       lineTotal,
	}, nil
}
