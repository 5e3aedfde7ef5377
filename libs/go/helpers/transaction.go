package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/regime-co/regime-api/libs/go/db"
	"github.com/regime-co/regime-api/libs/go/logger"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes a function within a database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// ErrTxClosed means the commit already went through
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTransactionRetry retries WithTransaction on serialization failures
func WithTransactionRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) || attempt == maxRetries {
			break
		}
		logger.Log.Warn("Transaction failed due to serialization error, retrying",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
	}
	return err
}

// IsSerializationFailure reports whether err carries postgres code 40001
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// IsUniqueViolation reports whether err carries postgres code 23505
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PoolTxRunner runs query closures inside a pool transaction. Services depend on the
// interfaces.TxRunner contract so tests can run the closure against a mock querier.
type PoolTxRunner struct {
	pool       *pgxpool.Pool
	maxRetries int
}

// NewPoolTxRunner creates a transaction runner over a connection pool
func NewPoolTxRunner(pool *pgxpool.Pool, maxRetries int) *PoolTxRunner {
	return &PoolTxRunner{pool: pool, maxRetries: maxRetries}
}

// RunInTx executes fn with a querier bound to a fresh transaction
func (r *PoolTxRunner) RunInTx(ctx context.Context, fn func(q db.Querier) error) error {
	return WithTransactionRetry(ctx, r.pool, r.maxRetries, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}
