package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/mocks/domain/state_machine"
	"transfers.app/billing/mocks/repository/bill_repo"
	"transfers.app/billing/mocks/repository/billitem_repo"
	"transfers.app/billing/mocks/repository/transfer_repo"
	"transfers.app/billing/model"
	"transfers.app/billing/preview"
	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/pgconv"
)

var fixedNow = time.Date(2024, time.June, 14, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	business     *business
	billRepo     *bill_repo.MockQuerier
	billItemRepo *billitem_repo.MockQuerier
	transferRepo *transfer_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
	tx           *state_machine.MockTxStore

	client  model.Client
	records []model.ServiceRecord
}

// newTestEnv wires the business with mocks. The mocked state machine runs
// callbacks directly against the mocked tx store, whose queriers are the
// same mocks the business uses outside transactions.
func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)

	env := &testEnv{
		billRepo:     bill_repo.NewMockQuerier(ctrl),
		billItemRepo: billitem_repo.NewMockQuerier(ctrl),
		transferRepo: transfer_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
		tx:           state_machine.NewMockTxStore(ctrl),
	}

	env.tx.EXPECT().Bills().Return(env.billRepo).AnyTimes()
	env.tx.EXPECT().BillItems().Return(env.billItemRepo).AnyTimes()
	env.tx.EXPECT().Transfers().Return(env.transferRepo).AnyTimes()
	env.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.TxStore) error) error {
			return fn(env.tx)
		}).AnyTimes()
	env.stateMachine.EXPECT().ExecuteInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(domain.TxStore) error) error {
			return fn(env.tx)
		}).AnyTimes()

	env.client = model.Client{ID: uuid.New(), Name: "Hotel Miramar"}
	env.records = []model.ServiceRecord{
		{
			ID:       uuid.New(),
			ClientID: env.client.ID,
			Date:     fixedNow,
			Pricing:  model.FixedPrice{Price: decimal.NewFromInt(100)},
		},
		{
			ID:       uuid.New(),
			ClientID: env.client.ID,
			Date:     fixedNow,
			Pricing:  model.HourlyRate{Rate: decimal.NewFromInt(20), Hours: decimal.NewFromInt(3)},
			Discount: &model.Discount{Kind: model.AdjustmentPercentage, Value: decimal.NewFromInt(10)},
			ExtraCharges: []model.ExtraCharge{
				{Name: "Peaje", Price: decimal.NewFromInt(25)},
			},
		},
		{
			ID:       uuid.New(),
			ClientID: env.client.ID,
			Date:     fixedNow,
			Pricing:  model.FixedPrice{Price: decimal.NewFromInt(40)},
			Billed:   true,
		},
	}

	src := preview.NewMemorySource([]model.Client{env.client}, env.records)
	env.business = &business{
		billRepo:     env.billRepo,
		billItemRepo: env.billItemRepo,
		previewer:    preview.NewAssembler(src),
		stateMachine: env.stateMachine,
		numberPrefix: "FACTURA",
		now:          func() time.Time { return fixedNow },
	}

	return env
}

// expectBillLock makes GetBillWithLock run fn with current.
func (env *testEnv) expectBillLock(current bills.Bill) {
	env.stateMachine.EXPECT().GetBillWithLock(gomock.Any(), pgconv.FromUUID(current.ID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(domain.TxStore, bills.Bill) error) error {
			return fn(env.tx, current)
		})
}

func billFromParams(id uuid.UUID, arg bills.CreateBillParams) bills.Bill {
	return bills.Bill{
		ID:             pgconv.UUID(id),
		Number:         arg.Number,
		ClientID:       arg.ClientID,
		Date:           arg.Date,
		DueDate:        arg.DueDate,
		SubTotal:       arg.SubTotal,
		TaxRate:        arg.TaxRate,
		TaxAmount:      arg.TaxAmount,
		TaxApplication: arg.TaxApplication,
		Total:          arg.Total,
		Status:         arg.Status,
		Notes:          arg.Notes,
		CreatedAt:      pgconv.Timestamptz(fixedNow),
		UpdatedAt:      pgconv.Timestamptz(fixedNow),
	}
}

func itemFromParams(arg billitems.CreateBillItemParams) billitems.BillItem {
	return billitems.BillItem{
		ID:            pgconv.UUID(uuid.New()),
		BillID:        arg.BillID,
		TransferID:    arg.TransferID,
		Description:   arg.Description,
		Quantity:      arg.Quantity,
		UnitPrice:     arg.UnitPrice,
		TotalPrice:    arg.TotalPrice,
		IsExtraCharge: arg.IsExtraCharge,
		Position:      arg.Position,
		CreatedAt:     pgconv.Timestamptz(fixedNow),
	}
}

func storedBill(status model.BillStatus) bills.Bill {
	return bills.Bill{
		ID:             pgconv.UUID(uuid.New()),
		Number:         "FACTURA-2024-0003",
		ClientID:       pgconv.UUID(uuid.New()),
		Date:           pgconv.Date(fixedNow),
		DueDate:        pgconv.Date(fixedNow.AddDate(0, 0, 30)),
		SubTotal:       pgconv.Numeric(decimal.NewFromInt(100)),
		TaxRate:        pgconv.Numeric(decimal.NewFromInt(10)),
		TaxAmount:      pgconv.Numeric(decimal.NewFromInt(10)),
		TaxApplication: string(model.TaxExcluded),
		Total:          pgconv.Numeric(decimal.NewFromInt(110)),
		Status:         string(status),
		Notes:          pgtype.Text{},
		CreatedAt:      pgconv.Timestamptz(fixedNow),
		UpdatedAt:      pgconv.Timestamptz(fixedNow),
	}
}
