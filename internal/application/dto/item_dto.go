package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// CreateItemRequest entrada para crear un ítem.
type CreateItemRequest struct {
	DepartmentID      int64            `json:"department_id" validate:"required,gt=0"`
	CategoryID        int64            `json:"category_id" validate:"required,gt=0"`
	ItemTypeID        int64            `json:"item_type_id" validate:"required,gt=0"`
	Brand             *string          `json:"brand" validate:"omitempty,max=100"`
	SizeID            int64            `json:"size_id" validate:"required,gt=0"`
	ColorPrimaryID    int64            `json:"color_primary_id" validate:"required,gt=0"`
	ColorSecondaryID  *int64           `json:"color_secondary_id" validate:"omitempty,gt=0"`
	Material          *string          `json:"material" validate:"omitempty,max=100"`
	ConditionID       int64            `json:"condition_id" validate:"required,gt=0"`
	StatusID          int64            `json:"status_id" validate:"required,gt=0"`
	CurrentLocationID *int64           `json:"current_location_id" validate:"omitempty,gt=0"`
	Price             *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice     *decimal.Decimal `json:"original_price"`
	OnSale            bool             `json:"on_sale"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	Description       string           `json:"description" validate:"required,min=1"`
	InternalNotes     *string          `json:"internal_notes"`
	CustomerNotes     *string          `json:"customer_notes"`
	Season            *string          `json:"season" validate:"omitempty,max=50"`
	TagIDs            []int64          `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

// Validate valida etiquetas y precios no negativos.
func (r *CreateItemRequest) Validate() error {
	ve := &domain.ValidationError{}
	collect(ve, r)
	checkMoney(ve, "price", r.Price)
	checkMoney(ve, "original_price", r.OriginalPrice)
	checkMoney(ve, "sale_price", r.SalePrice)
	if ve.Empty() {
		return nil
	}
	return ve
}

// ToEntity construye el ítem (sin ID ni fechas, los asigna el repositorio).
func (r *CreateItemRequest) ToEntity() *entity.Item {
	item := &entity.Item{
		DepartmentID:      r.DepartmentID,
		CategoryID:        r.CategoryID,
		ItemTypeID:        r.ItemTypeID,
		Brand:             r.Brand,
		SizeID:            r.SizeID,
		ColorPrimaryID:    r.ColorPrimaryID,
		ColorSecondaryID:  r.ColorSecondaryID,
		Material:          r.Material,
		ConditionID:       r.ConditionID,
		StatusID:          r.StatusID,
		CurrentLocationID: r.CurrentLocationID,
		OriginalPrice:     r.OriginalPrice,
		OnSale:            r.OnSale,
		SalePrice:         r.SalePrice,
		Description:       r.Description,
		InternalNotes:     r.InternalNotes,
		CustomerNotes:     r.CustomerNotes,
		Season:            r.Season,
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	return item
}

// UpdateItemRequest PATCH de un ítem. Solo se aplican los campos presentes.
// Los campos obligatorios del ítem no aceptan null; los opcionales usan Nullable para poder limpiarse.
// Version, si se envía, debe coincidir con la versión almacenada.
type UpdateItemRequest struct {
	DepartmentID      *int64                    `json:"department_id" validate:"omitempty,gt=0"`
	CategoryID        *int64                    `json:"category_id" validate:"omitempty,gt=0"`
	ItemTypeID        *int64                    `json:"item_type_id" validate:"omitempty,gt=0"`
	Brand             Nullable[string]          `json:"brand"`
	SizeID            *int64                    `json:"size_id" validate:"omitempty,gt=0"`
	ColorPrimaryID    *int64                    `json:"color_primary_id" validate:"omitempty,gt=0"`
	ColorSecondaryID  Nullable[int64]           `json:"color_secondary_id"`
	Material          Nullable[string]          `json:"material"`
	ConditionID       *int64                    `json:"condition_id" validate:"omitempty,gt=0"`
	StatusID          *int64                    `json:"status_id" validate:"omitempty,gt=0"`
	CurrentLocationID Nullable[int64]           `json:"current_location_id"`
	Price             *decimal.Decimal          `json:"price"`
	OriginalPrice     Nullable[decimal.Decimal] `json:"original_price"`
	OnSale            *bool                     `json:"on_sale"`
	SalePrice         Nullable[decimal.Decimal] `json:"sale_price"`
	Description       *string                   `json:"description" validate:"omitempty,min=1"`
	InternalNotes     Nullable[string]          `json:"internal_notes"`
	CustomerNotes     Nullable[string]          `json:"customer_notes"`
	Season            Nullable[string]          `json:"season"`
	DateSold          Nullable[time.Time]       `json:"date_sold"`
	TagIDs            *[]int64                  `json:"tag_ids"`
	Version           *int                      `json:"version" validate:"omitempty,gt=0"`
}

// Validate valida etiquetas, precios no negativos y longitudes de los campos Nullable.
func (r *UpdateItemRequest) Validate() error {
	ve := &domain.ValidationError{}
	collect(ve, r)
	checkMoney(ve, "price", r.Price)
	checkMoney(ve, "original_price", r.OriginalPrice.Value)
	checkMoney(ve, "sale_price", r.SalePrice.Value)
	checkMaxLen(ve, "brand", r.Brand.Value, 100)
	checkMaxLen(ve, "material", r.Material.Value, 100)
	checkMaxLen(ve, "season", r.Season.Value, 50)
	checkPositive(ve, "color_secondary_id", r.ColorSecondaryID.Value)
	checkPositive(ve, "current_location_id", r.CurrentLocationID.Value)
	if r.TagIDs != nil {
		for _, id := range *r.TagIDs {
			if id <= 0 {
				ve.Add("tag_ids", "must contain positive ids")
				break
			}
		}
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func checkMaxLen(ve *domain.ValidationError, field string, s *string, max int) {
	if s != nil && len([]rune(*s)) > max {
		ve.Add(field, "must have at most "+strconv.Itoa(max)+" characters")
	}
}

func checkPositive(ve *domain.ValidationError, field string, id *int64) {
	if id != nil && *id <= 0 {
		ve.Add(field, "must be greater than 0")
	}
}

// ItemListQuery parámetros de GET /items.
type ItemListQuery struct {
	DepartmentID   *int64           `query:"department_id"`
	CategoryID     *int64           `query:"category_id"`
	ItemTypeID     *int64           `query:"item_type_id"`
	Brand          *string          `query:"brand"`
	SizeID         *int64           `query:"size_id"`
	ColorPrimaryID *int64           `query:"color_primary_id"`
	ConditionID    *int64           `query:"condition_id"`
	StatusID       *int64           `query:"status_id"`
	LocationID     *int64           `query:"location_id"`
	MinPrice       *decimal.Decimal `query:"min_price"`
	MaxPrice       *decimal.Decimal `query:"max_price"`
	OnSale         *bool            `query:"on_sale"`
	Season         *string          `query:"season"`
	Search         *string          `query:"search"`
	TagIDs         []int64          `query:"tag_ids"`
	Page           int              `query:"page" validate:"min=1"`
	PageSize       int              `query:"page_size" validate:"min=1,max=100"`
	SortBy         string           `query:"sort_by"`
	SortOrder      string           `query:"sort_order" validate:"oneof=asc desc"`
}

// Defaults aplica page=1, page_size=20, sort_order=desc.
func (q *ItemListQuery) Defaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 20
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

// Validate valida la paginación, el orden y los precios mínimos/máximos.
func (q *ItemListQuery) Validate() error {
	ve := &domain.ValidationError{}
	collect(ve, q)
	checkNonNegative(ve, "min_price", q.MinPrice)
	checkNonNegative(ve, "max_price", q.MaxPrice)
	if ve.Empty() {
		return nil
	}
	return ve
}

// ItemResponse ítem con sus relaciones resueltas.
type ItemResponse struct {
	ID                int64              `json:"item_id"`
	DepartmentID      int64              `json:"department_id"`
	CategoryID        int64              `json:"category_id"`
	ItemTypeID        int64              `json:"item_type_id"`
	Brand             *string            `json:"brand"`
	SizeID            int64              `json:"size_id"`
	ColorPrimaryID    int64              `json:"color_primary_id"`
	ColorSecondaryID  *int64             `json:"color_secondary_id"`
	Material          *string            `json:"material"`
	ConditionID       int64              `json:"condition_id"`
	StatusID          int64              `json:"status_id"`
	CurrentLocationID *int64             `json:"current_location_id"`
	Price             decimal.Decimal    `json:"price"`
	OriginalPrice     *decimal.Decimal   `json:"original_price"`
	OnSale            bool               `json:"on_sale"`
	SalePrice         *decimal.Decimal   `json:"sale_price"`
	Description       string             `json:"description"`
	InternalNotes     *string            `json:"internal_notes"`
	CustomerNotes     *string            `json:"customer_notes"`
	Season            *string            `json:"season"`
	DateAdded         time.Time          `json:"date_added"`
	DateSold          *time.Time         `json:"date_sold"`
	Version           int                `json:"version"`
	Department        *entity.Department `json:"department"`
	Category          *entity.Category   `json:"category"`
	ItemType          *entity.ItemType   `json:"item_type"`
	Size              *entity.Size       `json:"size"`
	ColorPrimary      *entity.Color      `json:"color_primary"`
	ColorSecondary    *entity.Color      `json:"color_secondary"`
	Condition         *entity.Condition  `json:"condition"`
	Status            *entity.Status     `json:"status"`
	CurrentLocation   *entity.Location   `json:"current_location"`
	Tags              []entity.Tag       `json:"tags"`
	Photos            []PhotoResponse    `json:"photos"`
}

// NewItemResponse copia los campos escalares; las relaciones las completa el caso de uso.
func NewItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		DepartmentID:      it.DepartmentID,
		CategoryID:        it.CategoryID,
		ItemTypeID:        it.ItemTypeID,
		Brand:             it.Brand,
		SizeID:            it.SizeID,
		ColorPrimaryID:    it.ColorPrimaryID,
		ColorSecondaryID:  it.ColorSecondaryID,
		Material:          it.Material,
		ConditionID:       it.ConditionID,
		StatusID:          it.StatusID,
		CurrentLocationID: it.CurrentLocationID,
		Price:             it.Price,
		OriginalPrice:     it.OriginalPrice,
		OnSale:            it.OnSale,
		SalePrice:         it.SalePrice,
		Description:       it.Description,
		InternalNotes:     it.InternalNotes,
		CustomerNotes:     it.CustomerNotes,
		Season:            it.Season,
		DateAdded:         it.DateAdded,
		DateSold:          it.DateSold,
		Version:           it.Version,
		Tags:              []entity.Tag{},
		Photos:            []PhotoResponse{},
	}
}

// ItemDetailResponse ítem con relaciones e historial (más reciente primero).
type ItemDetailResponse struct {
	ItemResponse
	History []HistoryResponse `json:"history"`
}

// ItemListResponse lista paginada de ítems.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	PageResponse
}
