package dto

import (
	"time"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// CreatePhotoRequest alta de foto por ruta (la imagen ya está almacenada).
type CreatePhotoRequest struct {
	FilePath  string `json:"file_path" validate:"required,min=1,max=500"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder *int   `json:"sort_order" validate:"omitempty,min=0"`
}

// SortOrderOrDefault orden por defecto 1.
func (r CreatePhotoRequest) SortOrderOrDefault() int {
	if r.SortOrder == nil {
		return 1
	}
	return *r.SortOrder
}

// UpdatePhotoRequest PATCH de una foto.
type UpdatePhotoRequest struct {
	FilePath  *string `json:"file_path" validate:"omitempty,min=1,max=500"`
	IsPrimary *bool   `json:"is_primary"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,min=0"`
}

// PhotoResponse salida de una foto.
type PhotoResponse struct {
	ID           int64     `json:"photo_id"`
	ItemID       int64     `json:"item_id"`
	FilePath     string    `json:"file_path"`
	IsPrimary    bool      `json:"is_primary"`
	SortOrder    int       `json:"sort_order"`
	UploadedDate time.Time `json:"uploaded_date"`
}

// NewPhotoResponse convierte la entidad.
func NewPhotoResponse(p *entity.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		ItemID:       p.ItemID,
		FilePath:     p.FilePath,
		IsPrimary:    p.IsPrimary,
		SortOrder:    p.SortOrder,
		UploadedDate: p.UploadedDate,
	}
}
