package entity

import "time"

// Acciones registradas en el historial de un ítem.
const (
	HistoryActionCreated         = "Created"
	HistoryActionUpdated         = "Updated"
	HistoryActionStatusChanged   = "Status_Changed"
	HistoryActionLocationChanged = "Location_Changed"
	HistoryActionPriceChanged    = "Price_Changed"
	HistoryActionPhotoAdded      = "Photo_Added"
	HistoryActionPhotoRemoved    = "Photo_Removed"
)

// HistoryEntry registro inmutable de un cambio sobre un ítem. Solo desaparece por cascada al borrar el ítem.
type HistoryEntry struct {
	ID         int64
	ItemID     int64
	Action     string
	ActionDate time.Time
	OldValue   *string
	NewValue   *string
	Notes      *string
}
