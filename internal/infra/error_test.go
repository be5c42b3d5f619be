//go:build unit

package infra_test

import (
	"testing"

	"gin-order-service/internal/infra"
	"gin-order-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindConflict},
		{name: "wrapped pg error keeps its code", err: errs.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), want: infra.KindDuplicateKey},
		{name: "other pg code", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "non-pg error", err: assert.AnError, want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("kind survives outer wrapping", func(t *testing.T) {
		err := errs.Wrap(infra.WrapRepoErr("find", pgx.ErrNoRows, infra.KindNotFound), "load order")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
