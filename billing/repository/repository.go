package repository

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/clients"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/transfers"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Clients      clients.Querier
	Transfers    transfers.Querier
	ExtraCharges extracharges.Querier
	Bills        bills.Querier
	BillItems    billitems.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Clients:      clients.New(db),
		Transfers:    transfers.New(db),
		ExtraCharges: extracharges.New(db),
		Bills:        bills.New(db),
		BillItems:    billitems.New(db),
	}
}

// WithTx returns the same queriers bound to tx.
func WithTx(tx pgx.Tx) *Repository {
	return &Repository{
		Clients:      clients.New(tx),
		Transfers:    transfers.New(tx),
		ExtraCharges: extracharges.New(tx),
		Bills:        bills.New(tx),
		BillItems:    billitems.New(tx),
	}
}
