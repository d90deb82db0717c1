package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// table reglas de una tabla de referencia en memoria.
type table[T any] struct {
	name   string
	rows   func(st *state) map[int64]T
	id     func(v *T) *int64
	unique func(v *T) string // clave única; nil si la tabla no tiene
	match  func(v *T, f repository.CatalogFilter) bool
	less   func(a, b *T) bool
	// refs verifica las FK salientes (ej. category -> department).
	refs func(st *state, v *T) bool
	// inUse indica si otra fila referencia id (FK restrict).
	inUse func(st *state, id int64) bool
	// cascade borra filas dependientes con ON DELETE CASCADE.
	cascade func(st *state, id int64)
}

// CatalogRepo implementación genérica de repository.CatalogRepository en memoria.
type CatalogRepo[T any] struct {
	c *conn
	t *table[T]
}

func (r *CatalogRepo[T]) List(ctx context.Context, f repository.CatalogFilter) ([]*T, int, error) {
	var list []*T
	var total int
	err := r.c.do(ctx, func(st *state) error {
		all := make([]*T, 0)
		for _, v := range r.t.rows(st) {
			v := v
			if r.t.match == nil || r.t.match(&v, f) {
				all = append(all, &v)
			}
		}
		sort.SliceStable(all, func(i, j int) bool { return r.t.less(all[i], all[j]) })
		total = len(all)
		list = paginate(all, f.Limit, f.Offset)
		return nil
	})
	return list, total, err
}

func (r *CatalogRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out *T
	err := r.c.do(ctx, func(st *state) error {
		if v, ok := r.t.rows(st)[id]; ok {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *CatalogRepo[T]) GetByIDs(ctx context.Context, ids []int64) (map[int64]*T, error) {
	out := make(map[int64]*T, len(ids))
	err := r.c.do(ctx, func(st *state) error {
		rows := r.t.rows(st)
		for _, id := range ids {
			if v, ok := rows[id]; ok {
				out[id] = &v
			}
		}
		return nil
	})
	return out, err
}

func (r *CatalogRepo[T]) Create(ctx context.Context, v *T) error {
	return r.c.do(ctx, func(st *state) error {
		if err := r.checkWrite(st, v, 0); err != nil {
			return err
		}
		*r.t.id(v) = st.nextID(r.t.name)
		r.t.rows(st)[*r.t.id(v)] = *v
		return nil
	})
}

func (r *CatalogRepo[T]) Update(ctx context.Context, v *T) error {
	return r.c.do(ctx, func(st *state) error {
		id := *r.t.id(v)
		if _, ok := r.t.rows(st)[id]; !ok {
			return nil
		}
		if err := r.checkWrite(st, v, id); err != nil {
			return err
		}
		r.t.rows(st)[id] = *v
		return nil
	})
}

func (r *CatalogRepo[T]) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.do(ctx, func(st *state) error {
		rows := r.t.rows(st)
		if _, ok := rows[id]; !ok {
			return nil
		}
		if r.t.inUse != nil && r.t.inUse(st, id) {
			return fmt.Errorf("delete %s %d: %w", r.t.name, id, domain.ErrIntegrity)
		}
		if r.t.cascade != nil {
			r.t.cascade(st, id)
		}
		delete(rows, id)
		deleted = true
		return nil
	})
	return deleted, err
}

// checkWrite valida unicidad (excluyendo selfID) y FK salientes.
func (r *CatalogRepo[T]) checkWrite(st *state, v *T, selfID int64) error {
	if r.t.unique != nil {
		key := r.t.unique(v)
		for id, other := range r.t.rows(st) {
			other := other
			if id != selfID && r.t.unique(&other) == key {
				return fmt.Errorf("%s %q: %w", r.t.name, key, domain.ErrDuplicate)
			}
		}
	}
	if r.t.refs != nil && !r.t.refs(st, v) {
		return fmt.Errorf("%s: %w", r.t.name, domain.ErrIntegrity)
	}
	return nil
}

func paginate[T any](all []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return make([]T, 0)
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
