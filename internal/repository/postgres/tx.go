package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avast/retry-go"

	"fitimprove/internal/domain"
)

type txKey struct{}

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querierFrom returns the transaction carried in ctx when present, else db.
// Repositories resolve their querier through this so the same methods work
// inside and outside a transaction.
func querierFrom(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type txManager struct {
	db *sql.DB
}

// NewTxManager returns a domain.TxManager backed by database/sql transactions.
// Serialization failures and deadlocks abort the transaction and re-run fn,
// so a partially-applied slot mutation is never left visible.
func NewTxManager(db *sql.DB) domain.TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(
		func() error { return m.runTx(ctx, fn) },
		retry.Context(ctx),
		retry.Attempts(txRetryAttempts),
		retry.Delay(txRetryDelay),
		retry.RetryIf(IsRetryable),
		retry.LastErrorOnly(true),
	)
}

func (m *txManager) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
