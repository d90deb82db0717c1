package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/thrift-inventory/internal/domain"
)

// SQLSTATE de violaciones de integridad.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// mapWriteError traduce errores de escritura a errores de dominio; el resto se envuelve con op.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrDuplicate)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrIntegrity)
		case codeCheckViolation:
			return domain.NewValidationError(checkField(pgErr.ConstraintName), "violates check constraint")
		case codeNumericOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "value"
			}
			return domain.NewValidationError(field, "numeric value out of range")
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// checkField deduce la columna de un constraint CHECK con el nombre por defecto de Postgres
// (items_price_check -> price).
func checkField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_check")
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// likePattern arma un patrón ILIKE de subcadena escapando los comodines del usuario.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
