package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func Test_classifyPostgresError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			want: ErrEmployeeAlreadyExists,
		},
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: pgerrcode.SerializationFailure},
			want: ErrUpdateConflict,
		},
		{
			name: "deadlock detected",
			err:  &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			want: ErrUpdateConflict,
		},
		{
			name: "transaction rollback",
			err:  &pgconn.PgError{Code: pgerrcode.TransactionRollback},
			want: ErrUpdateConflict,
		},
		{
			name: "undefined table",
			err:  &pgconn.PgError{Code: pgerrcode.UndefinedTable},
			want: ErrStoreNotInitialized,
		},
		{
			name: "unrelated postgres error",
			err:  &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			want: nil,
		},
		{
			name: "not a postgres error",
			err:  errors.New("network down"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyPostgresError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
			} else {
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}
