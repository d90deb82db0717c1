package dto

import (
	"time"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// HistoryResponse entrada del historial de un ítem.
type HistoryResponse struct {
	ID         int64     `json:"history_id"`
	ItemID     int64     `json:"item_id"`
	Action     string    `json:"action"`
	ActionDate time.Time `json:"action_date"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	Notes      *string   `json:"notes"`
}

// NewHistoryResponse convierte la entidad.
func NewHistoryResponse(h *entity.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:         h.ID,
		ItemID:     h.ItemID,
		Action:     h.Action,
		ActionDate: h.ActionDate,
		OldValue:   h.OldValue,
		NewValue:   h.NewValue,
		Notes:      h.Notes,
	}
}
