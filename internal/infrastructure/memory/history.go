package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo historial en memoria. Solo inserción y lectura.
type HistoryRepo struct {
	c *conn
}

func (r *HistoryRepo) Create(ctx context.Context, e *entity.HistoryEntry) error {
	return r.c.do(ctx, func(st *state) error {
		if _, ok := st.items[e.ItemID]; !ok {
			return fmt.Errorf("insert history: %w", domain.ErrIntegrity)
		}
		e.ID = st.nextID("item_history")
		st.history[e.ID] = *e
		return nil
	})
}

func (r *HistoryRepo) ListByItem(ctx context.Context, itemID int64, limit, offset int) ([]*entity.HistoryEntry, error) {
	var out []*entity.HistoryEntry
	err := r.c.do(ctx, func(st *state) error {
		all := make([]*entity.HistoryEntry, 0)
		for _, h := range st.history {
			if h.ItemID == itemID {
				h := h
				all = append(all, &h)
			}
		}
		sort.Slice(all, func(i, j int) bool {
			if !all[i].ActionDate.Equal(all[j].ActionDate) {
				return all[i].ActionDate.After(all[j].ActionDate)
			}
			return all[i].ID > all[j].ID
		})
		out = paginate(all, limit, offset)
		return nil
	})
	return out, err
}
