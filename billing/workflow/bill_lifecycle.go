package workflow

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// BillLifecycleParams contains parameters for starting the lifecycle workflow
type BillLifecycleParams struct {
	BillID  uuid.UUID `json:"bill_id"`
	DueDate time.Time `json:"due_date"`
}

// WorkflowID is the id the lifecycle workflow of a bill runs under.
func WorkflowID(billID uuid.UUID) string {
	return "bill-" + billID.String()
}

// BillLifecycle follows a bill from creation until it is settled. It first
// re-applies the billed flag to the bill's records, then waits for the due
// date and reminds when the bill is still unpaid. Paid, cancelled and deleted
// signals end it early.
func BillLifecycle(ctx workflow.Context, params BillLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting bill lifecycle workflow", "billID", params.BillID, "dueDate", params.DueDate)

	statusCh := workflow.GetSignalChannel(ctx, StatusChangedSignalName)
	deletedCh := workflow.GetSignalChannel(ctx, BillDeletedSignalName)

	if err := ensureTransfersBilled(ctx, params.BillID); err != nil {
		logger.Error("Failed to ensure transfers billed", "billID", params.BillID, "error", err)
		return err
	}

	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	defer cancelTimer()

	wait := params.DueDate.Sub(workflow.Now(ctx))
	if wait < 0 {
		wait = 0
	}
	timer := workflow.NewTimer(timerCtx, wait)

	done := false
	for !done {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(statusCh, func(c workflow.ReceiveChannel, more bool) {
			var signal StatusChangedSignal
			c.Receive(ctx, &signal)
			logger.Info("Bill status changed", "billID", params.BillID, "status", signal.Status)
			if signal.Status.Terminal() {
				done = true
			}
		})

		selector.AddReceive(deletedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal BillDeletedSignal
			c.Receive(ctx, &signal)
			logger.Info("Bill deleted", "billID", params.BillID, "reason", signal.Reason)
			done = true
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			if err := f.Get(ctx, nil); err != nil {
				logger.Error("Due date timer failed", "billID", params.BillID, "error", err)
				done = true
				return
			}

			reminder, err := dueReminder(ctx, params.BillID)
			if err != nil {
				logger.Error("Failed to check due bill", "billID", params.BillID, "error", err)
			} else if reminder.Overdue {
				logger.Info("Due reminder sent", "billID", params.BillID, "number", reminder.Number)
			}
			done = true
		})

		selector.Select(ctx)
	}

	logger.Info("Bill lifecycle workflow completed", "billID", params.BillID)
	return nil
}

func ensureTransfersBilled(ctx workflow.Context, billID uuid.UUID) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EnsureTransfersBilledActivity, billID).Get(ctx, nil)
}

func dueReminder(ctx workflow.Context, billID uuid.UUID) (*DueReminder, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var reminder DueReminder
	if err := workflow.ExecuteActivity(activityCtx, DueReminderActivity, billID).Get(ctx, &reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}
