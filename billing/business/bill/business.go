package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/model"
	"transfers.app/billing/preview"
	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
)

type Business interface {
	PreviewBill(ctx context.Context, req preview.Request) (*model.BillPreview, error)
	CreateBill(ctx context.Context, req *model.BillRequest) (*model.CreateBillResult, error)
	GetBill(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	ListBills(ctx context.Context, filter ListFilter) ([]*model.Bill, error)
	UpdateBill(ctx context.Context, id uuid.UUID, update *model.BillUpdate) (*model.Bill, error)
	UpdateBillStatus(ctx context.Context, id uuid.UUID, status model.BillStatus) (*model.Bill, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error

	// EnsureTransfersBilled re-applies the billed flag to every record on the
	// bill and returns how many records were updated.
	EnsureTransfersBilled(ctx context.Context, id uuid.UUID) (int, error)
	SetWorkflowID(ctx context.Context, id uuid.UUID, workflowID string) error
}

// Previewer computes bill previews. *preview.Assembler implements it.
type Previewer interface {
	Calculate(ctx context.Context, req preview.Request) (*model.BillPreview, error)
}

// business handles bill creation, edition and lifecycle
type business struct {
	billRepo     bills.Querier
	billItemRepo billitems.Querier
	previewer    Previewer
	stateMachine domain.StateMachine

	numberPrefix string
	now          func() time.Time
}

// NewBillBusiness creates the bill business layer. numberPrefix starts every
// bill number, e.g. FACTURA.
func NewBillBusiness(
	billRepo bills.Querier,
	billItemRepo billitems.Querier,
	previewer Previewer,
	stateMachine domain.StateMachine,
	numberPrefix string,
) Business {
	return &business{
		billRepo:     billRepo,
		billItemRepo: billItemRepo,
		previewer:    previewer,
		stateMachine: stateMachine,
		numberPrefix: numberPrefix,
		now:          time.Now,
	}
}
