package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"transfers.app/billing/model"
	"transfers.app/billing/repository"
	"transfers.app/billing/repository/billitems"
	"transfers.app/billing/repository/bills"
	"transfers.app/billing/repository/extracharges"
	"transfers.app/billing/repository/pgconv"
	"transfers.app/billing/repository/transfers"
)

// TxStore exposes the queriers bound to one open transaction.
type TxStore interface {
	Bills() bills.Querier
	BillItems() billitems.Querier
	Transfers() transfers.Querier
	ExtraCharges() extracharges.Querier

	// Savepoint runs fn in a nested transaction. If fn fails only its own
	// writes are rolled back and the outer transaction stays usable.
	Savepoint(ctx context.Context, fn func(TxStore) error) error
}

// StateMachine defines the interface for bill state transitions and transaction management
type StateMachine interface {
	// ExecuteInTx runs fn in one transaction, committed only if fn succeeds.
	ExecuteInTx(ctx context.Context, fn func(TxStore) error) error

	// GetBillWithLock runs fn in a transaction holding the bill row lock.
	GetBillWithLock(ctx context.Context, billID uuid.UUID, fn func(TxStore, bills.Bill) error) error

	// TransitionStatus moves a bill to next under row lock.
	TransitionStatus(ctx context.Context, billID uuid.UUID, next model.BillStatus) (bills.Bill, error)
}

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BillStateMachine owns transaction boundaries and row locks for bills.
type BillStateMachine struct {
	db Beginner
}

func NewBillStateMachine(db Beginner) *BillStateMachine {
	return &BillStateMachine{db: db}
}

type txStore struct {
	tx   pgx.Tx
	repo *repository.Repository
}

func newTxStore(tx pgx.Tx) *txStore {
	return &txStore{tx: tx, repo: repository.WithTx(tx)}
}

func (s *txStore) Bills() bills.Querier               { return s.repo.Bills }
func (s *txStore) BillItems() billitems.Querier       { return s.repo.BillItems }
func (s *txStore) Transfers() transfers.Querier       { return s.repo.Transfers }
func (s *txStore) ExtraCharges() extracharges.Querier { return s.repo.ExtraCharges }

func (s *txStore) Savepoint(ctx context.Context, fn func(TxStore) error) error {
	sp, err := s.tx.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(newTxStore(sp)); err != nil {
		_ = sp.Rollback(ctx)
		return err
	}

	return sp.Commit(ctx)
}

// ExecuteInTx runs fn in one transaction.
func (sm *BillStateMachine) ExecuteInTx(ctx context.Context, fn func(TxStore) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(newTxStore(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}

// GetBillWithLock performs any operation with proper row-level locking and transaction management
func (sm *BillStateMachine) GetBillWithLock(ctx context.Context, id uuid.UUID, fn func(TxStore, bills.Bill) error) error {
	return sm.ExecuteInTx(ctx, func(store TxStore) error {
		current, err := store.Bills().GetBillForUpdate(ctx, pgconv.UUID(id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.WrapCode(model.ErrBillNotFound, errs.NotFound, "bill not found")
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to lock bill"}
		}

		return fn(store, current)
	})
}

// TransitionStatus validates and applies a status change. Cancelling an
// already cancelled bill is a no-op.
func (sm *BillStateMachine) TransitionStatus(ctx context.Context, id uuid.UUID, next model.BillStatus) (bills.Bill, error) {
	var updated bills.Bill

	err := sm.GetBillWithLock(ctx, id, func(store TxStore, current bills.Bill) error {
		if err := CheckTransition(model.BillStatus(current.Status), next); err != nil {
			return err
		}
		if current.Status == string(next) {
			updated = current
			return nil
		}

		var err error
		updated, err = store.Bills().UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
			ID:     current.ID,
			Status: string(next),
		})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update bill status"}
		}
		return nil
	})

	return updated, err
}

// CheckTransition returns an InvalidArgument error wrapping
// model.ErrInvalidStatusTransition when current may not move to next.
func CheckTransition(current, next model.BillStatus) error {
	if !next.Valid() {
		return errs.WrapCode(model.ErrInvalidStatusTransition, errs.InvalidArgument, "unknown bill status "+string(next))
	}
	if current == model.BillStatusCancelled && next == model.BillStatusCancelled {
		return nil
	}
	if !current.CanTransitionTo(next) {
		return errs.WrapCode(model.ErrInvalidStatusTransition, errs.FailedPrecondition,
			"bill cannot move from "+string(current)+" to "+string(next))
	}
	return nil
}
