package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain"
)

// Los ids de ítems inexistentes se ignoran en todas las operaciones masivas.

// BulkStatusRequest cambio masivo de estado.
type BulkStatusRequest struct {
	ItemIDs  []int64 `json:"item_ids" validate:"required"`
	StatusID int64   `json:"status_id" validate:"required,gt=0"`
	Notes    *string `json:"notes"`
}

// BulkLocationRequest cambio masivo de ubicación.
type BulkLocationRequest struct {
	ItemIDs    []int64 `json:"item_ids" validate:"required"`
	LocationID int64   `json:"location_id" validate:"required,gt=0"`
	Notes      *string `json:"notes"`
}

// BulkPriceRequest cambio masivo de precio. Si no se envía ningún campo, solo se cuentan los ítems.
type BulkPriceRequest struct {
	ItemIDs   []int64          `json:"item_ids" validate:"required"`
	Price     *decimal.Decimal `json:"price"`
	OnSale    *bool            `json:"on_sale"`
	SalePrice *decimal.Decimal `json:"sale_price"`
}

// Validate valida etiquetas y precios no negativos.
func (r *BulkPriceRequest) Validate() error {
	ve := &domain.ValidationError{}
	collect(ve, r)
	checkMoney(ve, "price", r.Price)
	checkMoney(ve, "sale_price", r.SalePrice)
	if ve.Empty() {
		return nil
	}
	return ve
}

// BulkDeleteRequest borrado masivo. Reason es informativo.
type BulkDeleteRequest struct {
	ItemIDs []int64 `json:"item_ids" validate:"required"`
	Reason  *string `json:"reason"`
}

// BulkUpdateResponse resultado de una actualización masiva.
type BulkUpdateResponse struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

// BulkDeleteResponse resultado de un borrado masivo.
type BulkDeleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}
