package billing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"transfers.app/billing/model"
)

const dateLayout = "2006-01-02"

type ProfitReportRequest struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to" validate:"required,datetime=2006-01-02"`
}

type ProfitReportResponse struct {
	Report model.ProfitReport `json:"report"`
}

// ProfitReport aggregates revenue and collaborator commissions over the
// services dated within [from, to].
//
//encore:api public path=/v1/reports/profits method=GET
func (s *Service) ProfitReport(ctx context.Context, req *ProfitReportRequest) (*ProfitReportResponse, error) {
	from, _ := time.Parse(dateLayout, req.From)
	to, _ := time.Parse(dateLayout, req.To)

	result, err := s.reports.ProfitReport(ctx, from, to)
	if err != nil {
		rlog.Error("failed to build profit report", "error", err, "from", req.From, "to", req.To)
		return nil, err
	}

	return &ProfitReportResponse{Report: *result}, nil
}

func (r *ProfitReportRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
