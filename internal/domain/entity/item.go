package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item unidad vendible del inventario. Las FK apuntan al catálogo; Photos e History le pertenecen
// y se eliminan en cascada con él.
type Item struct {
	ID                int64
	DepartmentID      int64
	CategoryID        int64
	ItemTypeID        int64
	Brand             *string
	SizeID            int64
	ColorPrimaryID    int64
	ColorSecondaryID  *int64
	Material          *string
	ConditionID       int64
	StatusID          int64
	CurrentLocationID *int64
	Price             decimal.Decimal  // precio de venta (>= 0)
	OriginalPrice     *decimal.Decimal // precio de etiqueta original, informativo
	OnSale            bool
	SalePrice         *decimal.Decimal
	Description       string
	InternalNotes     *string
	CustomerNotes     *string
	Season            *string // All Season, Spring/Summer, Fall/Winter
	DateAdded         time.Time
	DateSold          *time.Time
	Version           int // se incrementa en cada mutación persistida
	TagIDs            []int64
}

// Clone copia profunda (punteros y slice de tags incluidos).
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Brand = cloneString(i.Brand)
	c.Material = cloneString(i.Material)
	c.InternalNotes = cloneString(i.InternalNotes)
	c.CustomerNotes = cloneString(i.CustomerNotes)
	c.Season = cloneString(i.Season)
	c.ColorSecondaryID = cloneInt64(i.ColorSecondaryID)
	c.CurrentLocationID = cloneInt64(i.CurrentLocationID)
	c.OriginalPrice = cloneDecimal(i.OriginalPrice)
	c.SalePrice = cloneDecimal(i.SalePrice)
	if i.DateSold != nil {
		t := *i.DateSold
		c.DateSold = &t
	}
	if i.TagIDs != nil {
		c.TagIDs = append([]int64(nil), i.TagIDs...)
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt64(n *int64) *int64 {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
