package bill

import (
	"context"
	"errors"

	"encore.dev/beta/errs"

	"transfers.app/billing/model"
	"transfers.app/billing/preview"
)

// PreviewBill prices a selection of records without persisting anything.
func (b *business) PreviewBill(ctx context.Context, req preview.Request) (*model.BillPreview, error) {
	p, err := b.previewer.Calculate(ctx, req)
	if err != nil {
		return nil, mapPreviewError(err)
	}
	return p, nil
}

func mapPreviewError(err error) error {
	if errors.Is(err, model.ErrClientNotFound) {
		return errs.WrapCode(err, errs.NotFound, "client not found")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errs.WrapCode(err, errs.Canceled, "bill preview canceled")
	}
	return errs.WrapCode(errors.Join(model.ErrPreviewComputationFailed, err), errs.Internal, model.ErrPreviewComputationFailed.Error())
}
