package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"adframe/internal/core/domain"
)

func TestStorageErr(t *testing.T) {
	assert.NoError(t, storageErr("op", nil))

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "campaigns_pkey"}, want: domain.ErrConflict},
		{name: "check", err: &pgconn.PgError{Code: "23514", ConstraintName: "frames_price_check"}, want: domain.ErrInvalidInput},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "57P01"}, want: domain.ErrStorageUnavailable},
		{name: "network", err: errors.New("connection refused"), want: domain.ErrStorageUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storageErr("create campaign", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "create campaign")
		})
	}
}
