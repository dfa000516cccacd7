package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"transfers.app/billing/business/bill"
	"transfers.app/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	BillBusiness bill.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(billBusiness bill.Business) {
	activityDeps = &ActivityDependencies{
		BillBusiness: billBusiness,
	}
}

func dependencies() (*ActivityDependencies, error) {
	if activityDeps == nil || activityDeps.BillBusiness == nil {
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}
	return activityDeps, nil
}

// EnsureTransfersBilledActivity re-applies the billed flag to every record on
// the bill. It repairs records whose flag update failed during creation.
func EnsureTransfersBilledActivity(ctx context.Context, billID uuid.UUID) (int, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing ensure transfers billed activity", "billID", billID)

	deps, err := dependencies()
	if err != nil {
		logger.Error("Activity dependencies not set")
		return 0, err
	}

	marked, err := deps.BillBusiness.EnsureTransfersBilled(ctx, billID)
	if err != nil {
		logger.Error("Failed to ensure transfers billed", "billID", billID, "error", err)
		if errs.Code(err) == errs.NotFound {
			return 0, temporal.NewNonRetryableApplicationError("bill not found", "BILL_NOT_FOUND", err)
		}
		return 0, err
	}

	logger.Info("Transfers billed", "billID", billID, "marked", marked)
	return marked, nil
}

// DueReminder is the outcome of a due-date check.
type DueReminder struct {
	Overdue bool             `json:"overdue"`
	Status  model.BillStatus `json:"status"`
	Number  string           `json:"number"`
}

// DueReminderActivity checks a bill once its due date passed and emits a
// reminder when it is still unpaid.
func DueReminderActivity(ctx context.Context, billID uuid.UUID) (*DueReminder, error) {
	logger := activity.GetLogger(ctx)

	deps, err := dependencies()
	if err != nil {
		logger.Error("Activity dependencies not set")
		return nil, err
	}

	b, err := deps.BillBusiness.GetBill(ctx, billID)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			return nil, temporal.NewNonRetryableApplicationError("bill not found", "BILL_NOT_FOUND", err)
		}
		logger.Error("Failed to get bill", "billID", billID, "error", err)
		return nil, err
	}

	result := &DueReminder{Status: b.Status, Number: b.Number}
	if b.Status == model.BillStatusDraft || b.Status == model.BillStatusSent {
		result.Overdue = true
		logger.Warn("Bill is past its due date", "billID", billID, "number", b.Number, "status", b.Status, "total", b.Total.StringFixed(2))
	}

	return result, nil
}
