package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"transfers.app/billing/mocks/business/bill_business"
	"transfers.app/billing/mocks/business/report_business"
	"transfers.app/billing/mocks/business/transfer_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

type testService struct {
	service   *Service
	bills     *bill_business.MockBusiness
	transfers *transfer_business.MockBusiness
	reports   *report_business.MockBusiness
	temporal  *mocks.Client
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testService{
		bills:     bill_business.NewMockBusiness(ctrl),
		transfers: transfer_business.NewMockBusiness(ctrl),
		reports:   report_business.NewMockBusiness(ctrl),
		temporal:  mocks.NewClient(t),
	}
	ts.service = &Service{
		business:  ts.bills,
		transfers: ts.transfers,
		reports:   ts.reports,
		temporal:  ts.temporal,
		taskQueue: "billing-test",
	}

	// run async operations inline so signal expectations are checked
	prev := runAsync
	runAsync = func(op string, billID uuid.UUID, fn func(ctx context.Context) error) {
		_ = deliverSignal(context.Background(), op, billID, fn)
	}
	t.Cleanup(func() { runAsync = prev })

	return ts
}
