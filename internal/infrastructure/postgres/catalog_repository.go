package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// table describe cómo mapear una entidad de catálogo a su tabla.
// Las columnas de filtro vacías indican que el filtro no aplica a esa tabla.
type table[T any] struct {
	name     string
	idColumn string
	columns  []string // columnas sin el id, en el orden de values
	orderBy  string

	activeColumn    string // CatalogFilter.ActiveOnly
	availableColumn string // CatalogFilter.AvailableOnly
	parentColumn    string // CatalogFilter.ParentID
	kindColumn      string // CatalogFilter.Kind

	id     func(v *T) *int64
	fields func(v *T) []any // destinos de Scan para columns (sin id)
	values func(v *T) []any // valores para INSERT/UPDATE de columns
}

func (t *table[T]) selectList() string {
	return t.idColumn + ", " + strings.Join(t.columns, ", ")
}

func (t *table[T]) scan(row pgx.Row) (*T, error) {
	var v T
	dest := append([]any{t.id(&v)}, t.fields(&v)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &v, nil
}

// CatalogRepo implementación genérica de repository.CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo[T any] struct {
	q Querier
	t *table[T]
}

// newCatalogRepository construye el adaptador para la tabla descrita por t.
func newCatalogRepository[T any](q Querier, t *table[T]) *CatalogRepo[T] {
	return &CatalogRepo[T]{q: q, t: t}
}

// where arma la cláusula WHERE del listado y sus argumentos.
func (r *CatalogRepo[T]) where(f repository.CatalogFilter) (string, []any) {
	var conds []string
	var args []any
	if f.ActiveOnly && r.t.activeColumn != "" {
		conds = append(conds, r.t.activeColumn+" = TRUE")
	}
	if f.AvailableOnly && r.t.availableColumn != "" {
		conds = append(conds, r.t.availableColumn+" = TRUE")
	}
	if f.ParentID != nil && r.t.parentColumn != "" {
		args = append(args, *f.ParentID)
		conds = append(conds, r.t.parentColumn+" = $"+strconv.Itoa(len(args)))
	}
	if f.Kind != "" && r.t.kindColumn != "" {
		args = append(args, f.Kind)
		conds = append(conds, r.t.kindColumn+" = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devuelve la página pedida y el total filtrado (antes de paginar).
func (r *CatalogRepo[T]) List(ctx context.Context, f repository.CatalogFilter) ([]*T, int, error) {
	where, args := r.where(f)

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM "+r.t.name+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.t.name, err)
	}

	query := "SELECT " + r.t.selectList() + " FROM " + r.t.name + where + " ORDER BY " + r.t.orderBy
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", r.t.name, err)
	}
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		v, err := r.t.scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", r.t.name, err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CatalogRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := "SELECT " + r.t.selectList() + " FROM " + r.t.name + " WHERE " + r.t.idColumn + " = $1"
	v, err := r.t.scan(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.t.name, err)
	}
	return v, nil
}

// GetByIDs devuelve los registros existentes indexados por id.
func (r *CatalogRepo[T]) GetByIDs(ctx context.Context, ids []int64) (map[int64]*T, error) {
	out := make(map[int64]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := "SELECT " + r.t.selectList() + " FROM " + r.t.name + " WHERE " + r.t.idColumn + " = ANY($1)"
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get %s by ids: %w", r.t.name, err)
	}
	defer rows.Close()
	for rows.Next() {
		v, err := r.t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.t.name, err)
		}
		out[*r.t.id(v)] = v
	}
	return out, rows.Err()
}

// Create inserta y asigna el id generado.
func (r *CatalogRepo[T]) Create(ctx context.Context, v *T) error {
	placeholders := make([]string, len(r.t.columns))
	for i := range placeholders {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	query := "INSERT INTO " + r.t.name + " (" + strings.Join(r.t.columns, ", ") + ") VALUES (" +
		strings.Join(placeholders, ", ") + ") RETURNING " + r.t.idColumn
	if err := r.q.QueryRow(ctx, query, r.t.values(v)...).Scan(r.t.id(v)); err != nil {
		return mapWriteError("insert "+r.t.name, err)
	}
	return nil
}

// Update reescribe todas las columnas del registro.
func (r *CatalogRepo[T]) Update(ctx context.Context, v *T) error {
	sets := make([]string, len(r.t.columns))
	for i, c := range r.t.columns {
		sets[i] = c + " = $" + strconv.Itoa(i+2)
	}
	query := "UPDATE " + r.t.name + " SET " + strings.Join(sets, ", ") + " WHERE " + r.t.idColumn + " = $1"
	args := append([]any{*r.t.id(v)}, r.t.values(v)...)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return mapWriteError("update "+r.t.name, err)
	}
	return nil
}

// Delete devuelve false si no existía. Si está referenciado devuelve domain.ErrIntegrity.
func (r *CatalogRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, "DELETE FROM "+r.t.name+" WHERE "+r.t.idColumn+" = $1", id)
	if err != nil {
		return false, mapWriteError("delete "+r.t.name, err)
	}
	return cmd.RowsAffected() > 0, nil
}
