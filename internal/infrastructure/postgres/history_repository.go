package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo historial de ítems sobre PostgreSQL. Solo INSERT y SELECT.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Create inserta la entrada; falla con domain.ErrIntegrity si el ítem no existe.
func (r *HistoryRepo) Create(ctx context.Context, e *entity.HistoryEntry) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO item_history (item_id, action, action_date, old_value, new_value, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING history_id`,
		e.ItemID, e.Action, e.ActionDate, e.OldValue, e.NewValue, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		return mapWriteError("insert history", err)
	}
	return nil
}

// ListByItem más reciente primero. limit <= 0 devuelve todas (LIMIT NULL).
func (r *HistoryRepo) ListByItem(ctx context.Context, itemID int64, limit, offset int) ([]*entity.HistoryEntry, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.q.Query(ctx, `
		SELECT history_id, item_id, action, action_date, old_value, new_value, notes
		FROM item_history WHERE item_id = $1
		ORDER BY action_date DESC, history_id DESC
		LIMIT $2 OFFSET $3`, itemID, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.HistoryEntry, 0)
	for rows.Next() {
		var e entity.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Action, &e.ActionDate, &e.OldValue, &e.NewValue, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
