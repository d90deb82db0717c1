package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/domain"
)

func TestMapWriteError(t *testing.T) {
	t.Run("numeric overflow is validation", func(t *testing.T) {
		err := mapWriteError("update item", fmt.Errorf("exec: %w", &pgconn.PgError{Code: codeNumericOutOfRange, ColumnName: "sale_price"}))
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "numeric value out of range", ve.Fields["sale_price"])
	})

	t.Run("numeric overflow without column", func(t *testing.T) {
		err := mapWriteError("create item", &pgconn.PgError{Code: codeNumericOutOfRange})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("check constraint", func(t *testing.T) {
		err := mapWriteError("create item", &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "items_price_check"})
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "price")
	})

	t.Run("unique and fk", func(t *testing.T) {
		assert.ErrorIs(t, mapWriteError("x", &pgconn.PgError{Code: codeUniqueViolation}), domain.ErrDuplicate)
		assert.ErrorIs(t, mapWriteError("x", &pgconn.PgError{Code: codeForeignKeyViolation}), domain.ErrIntegrity)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		base := errors.New("boom")
		err := mapWriteError("x", base)
		assert.ErrorIs(t, err, base)
		assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	})
}
