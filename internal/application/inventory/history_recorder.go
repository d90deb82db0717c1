package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// historyLog inserta entradas de historial dentro de la transacción en curso y
// acumula las acciones para reportarlas a métricas solo después del commit.
type historyLog struct {
	repo    repository.HistoryRepository
	actions []string
}

func newHistoryLog(repo repository.HistoryRepository) *historyLog {
	return &historyLog{repo: repo}
}

// append inserta e; una entrada nil (sin cambios) se ignora.
func (h *historyLog) append(ctx context.Context, e *entity.HistoryEntry) error {
	if e == nil {
		return nil
	}
	if err := h.repo.Create(ctx, e); err != nil {
		return fmt.Errorf("record history %s: %w", e.Action, err)
	}
	h.actions = append(h.actions, e.Action)
	return nil
}

// flush reporta las acciones registradas. Se llama con la transacción ya confirmada.
func (h *historyLog) flush(m Metrics) {
	if h == nil {
		return
	}
	for _, a := range h.actions {
		m.HistoryRecorded(a)
	}
}
