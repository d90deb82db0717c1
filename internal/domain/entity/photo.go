package entity

import "time"

// Photo foto asociada a un ítem. FilePath es la ruta servida (ej. /images/12_abc.jpg).
// A lo sumo una foto primaria por ítem.
type Photo struct {
	ID           int64
	ItemID       int64
	FilePath     string
	IsPrimary    bool
	SortOrder    int
	UploadedDate time.Time
}
