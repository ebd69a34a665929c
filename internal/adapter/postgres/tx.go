package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adframe/internal/core/domain"
)

// SQLSTATE codes mapped onto domain errors.
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// storageErr marks a driver error as domain.ErrStorageUnavailable while
// keeping the cause in the chain. Unique and check violations are caller
// errors and map to domain.ErrConflict and domain.ErrInvalidInput.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case checkViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// inTx runs fn in a transaction. It commits when fn returns nil and rolls
// back otherwise. Errors returned by fn are passed through untouched.
func inTx(ctx context.Context, pool *pgxpool.Pool, op string, fn func(tx pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return storageErr(op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cErr := tx.Commit(ctx); cErr != nil {
			err = storageErr(op, cErr)
		}
	}()
	return fn(tx)
}
