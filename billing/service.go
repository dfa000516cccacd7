package billing

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"transfers.app/billing/business/bill"
	"transfers.app/billing/business/report"
	"transfers.app/billing/business/transfer"
	"transfers.app/billing/domain/bill_state_machine"
	"transfers.app/billing/preview"
	"transfers.app/billing/repository"
	"transfers.app/billing/workflow"
)

var billingDB = sqldb.NewDatabase("billing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business  bill.Business
	transfers transfer.Business
	reports   report.Business

	temporal  client.Client
	worker    worker.Worker
	taskQueue string
}

func initService() (*Service, error) {
	pool := sqldb.Driver(billingDB)
	repo := repository.NewRepository(pool)
	stateMachine := domain.NewBillStateMachine(pool)

	source := transfer.NewSource(repo.Clients, repo.Transfers, repo.ExtraCharges)
	billBusiness := bill.NewBillBusiness(
		repo.Bills,
		repo.BillItems,
		preview.NewAssembler(source),
		stateMachine,
		cfg.BillNumberPrefix(),
	)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.Host(),
		Namespace: cfg.Temporal.Namespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	taskQueue := cfg.Temporal.TaskQueue()
	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.BillLifecycle)
	w.RegisterActivity(workflow.EnsureTransfersBilledActivity)
	w.RegisterActivity(workflow.DueReminderActivity)
	workflow.SetActivityDependencies(billBusiness)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}
	rlog.Info("billing service initialized", "task_queue", taskQueue)

	return &Service{
		business:  billBusiness,
		transfers: transfer.NewBusiness(repo.Clients, repo.Transfers, repo.ExtraCharges, stateMachine),
		reports:   report.NewBusiness(repo.Transfers, repo.ExtraCharges),
		temporal:  c,
		worker:    w,
		taskQueue: taskQueue,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}
