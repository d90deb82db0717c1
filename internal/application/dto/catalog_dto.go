package dto

import "github.com/jhoicas/thrift-inventory/internal/domain/entity"

// Requests de alta y PATCH de las nueve tablas de referencia.
// Los Create construyen la entidad con ToEntity; los Update la modifican con Apply (solo campos presentes).

func boolOrTrue(b *bool) bool {
	return b == nil || *b
}

// ── Department ───────────────────────────────────────────────────────────────

type CreateDepartmentRequest struct {
	Name      string `json:"department_name" validate:"required,min=1,max=100"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
	Active    *bool  `json:"active"`
}

func (r CreateDepartmentRequest) ToEntity() *entity.Department {
	return &entity.Department{Name: r.Name, SortOrder: r.SortOrder, Active: boolOrTrue(r.Active)}
}

type UpdateDepartmentRequest struct {
	Name      *string `json:"department_name" validate:"omitempty,min=1,max=100"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,min=0"`
	Active    *bool   `json:"active"`
}

func (r UpdateDepartmentRequest) Apply(d *entity.Department) {
	if r.Name != nil {
		d.Name = *r.Name
	}
	if r.SortOrder != nil {
		d.SortOrder = *r.SortOrder
	}
	if r.Active != nil {
		d.Active = *r.Active
	}
}

// ── Category ─────────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name         string `json:"category_name" validate:"required,min=1,max=100"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
	SortOrder    int    `json:"sort_order" validate:"min=0"`
	Active       *bool  `json:"active"`
}

func (r CreateCategoryRequest) ToEntity() *entity.Category {
	return &entity.Category{Name: r.Name, DepartmentID: r.DepartmentID, SortOrder: r.SortOrder, Active: boolOrTrue(r.Active)}
}

type UpdateCategoryRequest struct {
	Name         *string `json:"category_name" validate:"omitempty,min=1,max=100"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,gt=0"`
	SortOrder    *int    `json:"sort_order" validate:"omitempty,min=0"`
	Active       *bool   `json:"active"`
}

func (r UpdateCategoryRequest) Apply(c *entity.Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.DepartmentID != nil {
		c.DepartmentID = *r.DepartmentID
	}
	if r.SortOrder != nil {
		c.SortOrder = *r.SortOrder
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
}

// ── ItemType ─────────────────────────────────────────────────────────────────

type CreateItemTypeRequest struct {
	Name       string `json:"item_type_name" validate:"required,min=1,max=100"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	SortOrder  int    `json:"sort_order" validate:"min=0"`
	Active     *bool  `json:"active"`
}

func (r CreateItemTypeRequest) ToEntity() *entity.ItemType {
	return &entity.ItemType{Name: r.Name, CategoryID: r.CategoryID, SortOrder: r.SortOrder, Active: boolOrTrue(r.Active)}
}

type UpdateItemTypeRequest struct {
	Name       *string `json:"item_type_name" validate:"omitempty,min=1,max=100"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
	SortOrder  *int    `json:"sort_order" validate:"omitempty,min=0"`
	Active     *bool   `json:"active"`
}

func (r UpdateItemTypeRequest) Apply(t *entity.ItemType) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.CategoryID != nil {
		t.CategoryID = *r.CategoryID
	}
	if r.SortOrder != nil {
		t.SortOrder = *r.SortOrder
	}
	if r.Active != nil {
		t.Active = *r.Active
	}
}

// ── Size ─────────────────────────────────────────────────────────────────────

type CreateSizeRequest struct {
	Value     string  `json:"size_value" validate:"required,min=1,max=50"`
	System    string  `json:"size_system" validate:"required,min=1,max=50"`
	SortOrder int     `json:"sort_order" validate:"min=0"`
	Notes     *string `json:"notes"`
}

func (r CreateSizeRequest) ToEntity() *entity.Size {
	return &entity.Size{Value: r.Value, System: r.System, SortOrder: r.SortOrder, Notes: r.Notes}
}

type UpdateSizeRequest struct {
	Value     *string `json:"size_value" validate:"omitempty,min=1,max=50"`
	System    *string `json:"size_system" validate:"omitempty,min=1,max=50"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,min=0"`
	Notes     *string `json:"notes"`
}

func (r UpdateSizeRequest) Apply(s *entity.Size) {
	if r.Value != nil {
		s.Value = *r.Value
	}
	if r.System != nil {
		s.System = *r.System
	}
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
	if r.Notes != nil {
		s.Notes = r.Notes
	}
}

// ── Color ────────────────────────────────────────────────────────────────────

type CreateColorRequest struct {
	Name      string  `json:"color_name" validate:"required,min=1,max=50"`
	Family    string  `json:"color_family" validate:"required,min=1,max=50"`
	HexCode   *string `json:"hex_code" validate:"omitempty,hexcolor"`
	SortOrder int     `json:"sort_order" validate:"min=0"`
}

func (r CreateColorRequest) ToEntity() *entity.Color {
	return &entity.Color{Name: r.Name, Family: r.Family, HexCode: r.HexCode, SortOrder: r.SortOrder}
}

type UpdateColorRequest struct {
	Name      *string `json:"color_name" validate:"omitempty,min=1,max=50"`
	Family    *string `json:"color_family" validate:"omitempty,min=1,max=50"`
	HexCode   *string `json:"hex_code" validate:"omitempty,hexcolor"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,min=0"`
}

func (r UpdateColorRequest) Apply(c *entity.Color) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Family != nil {
		c.Family = *r.Family
	}
	if r.HexCode != nil {
		c.HexCode = r.HexCode
	}
	if r.SortOrder != nil {
		c.SortOrder = *r.SortOrder
	}
}

// ── Tag ──────────────────────────────────────────────────────────────────────

type CreateTagRequest struct {
	Name        string  `json:"tag_name" validate:"required,min=1,max=50"`
	Category    string  `json:"tag_category" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r CreateTagRequest) ToEntity() *entity.Tag {
	return &entity.Tag{Name: r.Name, Category: r.Category, Description: r.Description, Active: boolOrTrue(r.Active)}
}

type UpdateTagRequest struct {
	Name        *string `json:"tag_name" validate:"omitempty,min=1,max=50"`
	Category    *string `json:"tag_category" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r UpdateTagRequest) Apply(t *entity.Tag) {
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.Active != nil {
		t.Active = *r.Active
	}
}

// ── Condition ────────────────────────────────────────────────────────────────

type CreateConditionRequest struct {
	Name        string  `json:"condition_name" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order" validate:"min=0"`
}

func (r CreateConditionRequest) ToEntity() *entity.Condition {
	return &entity.Condition{Name: r.Name, Description: r.Description, SortOrder: r.SortOrder}
}

type UpdateConditionRequest struct {
	Name        *string `json:"condition_name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,min=0"`
}

func (r UpdateConditionRequest) Apply(c *entity.Condition) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.SortOrder != nil {
		c.SortOrder = *r.SortOrder
	}
}

// ── Status ───────────────────────────────────────────────────────────────────

type CreateStatusRequest struct {
	Name               string  `json:"status_name" validate:"required,min=1,max=50"`
	Description        *string `json:"description"`
	IsAvailableForSale bool    `json:"is_available_for_sale"`
	SortOrder          int     `json:"sort_order" validate:"min=0"`
}

func (r CreateStatusRequest) ToEntity() *entity.Status {
	return &entity.Status{Name: r.Name, Description: r.Description, IsAvailableForSale: r.IsAvailableForSale, SortOrder: r.SortOrder}
}

type UpdateStatusRequest struct {
	Name               *string `json:"status_name" validate:"omitempty,min=1,max=50"`
	Description        *string `json:"description"`
	IsAvailableForSale *bool   `json:"is_available_for_sale"`
	SortOrder          *int    `json:"sort_order" validate:"omitempty,min=0"`
}

func (r UpdateStatusRequest) Apply(s *entity.Status) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Description != nil {
		s.Description = r.Description
	}
	if r.IsAvailableForSale != nil {
		s.IsAvailableForSale = *r.IsAvailableForSale
	}
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
}

// ── Location ─────────────────────────────────────────────────────────────────

type CreateLocationRequest struct {
	Name        string  `json:"location_name" validate:"required,min=1,max=100"`
	Type        string  `json:"location_type" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r CreateLocationRequest) ToEntity() *entity.Location {
	return &entity.Location{Name: r.Name, Type: r.Type, Description: r.Description, Active: boolOrTrue(r.Active)}
}

type UpdateLocationRequest struct {
	Name        *string `json:"location_name" validate:"omitempty,min=1,max=100"`
	Type        *string `json:"location_type" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func (r UpdateLocationRequest) Apply(l *entity.Location) {
	if r.Name != nil {
		l.Name = *r.Name
	}
	if r.Type != nil {
		l.Type = *r.Type
	}
	if r.Description != nil {
		l.Description = r.Description
	}
	if r.Active != nil {
		l.Active = *r.Active
	}
}
