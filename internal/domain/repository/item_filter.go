package repository

import "github.com/shopspring/decimal"

// ItemSortKey enumeración cerrada de campos por los que se puede ordenar el listado de ítems.
type ItemSortKey string

const (
	SortByDateAdded     ItemSortKey = "date_added"
	SortByItemID        ItemSortKey = "item_id"
	SortByPrice         ItemSortKey = "price"
	SortByBrand         ItemSortKey = "brand"
	SortByDescription   ItemSortKey = "description"
	SortBySeason        ItemSortKey = "season"
	SortBySalePrice     ItemSortKey = "sale_price"
	SortByOriginalPrice ItemSortKey = "original_price"
	SortByDateSold      ItemSortKey = "date_sold"
)

var itemSortKeys = map[ItemSortKey]bool{
	SortByDateAdded:     true,
	SortByItemID:        true,
	SortByPrice:         true,
	SortByBrand:         true,
	SortByDescription:   true,
	SortBySeason:        true,
	SortBySalePrice:     true,
	SortByOriginalPrice: true,
	SortByDateSold:      true,
}

// ResolveItemSortKey traduce el parámetro sort_by. Un valor desconocido no es error: cae en date_added.
func ResolveItemSortKey(s string) ItemSortKey {
	k := ItemSortKey(s)
	if itemSortKeys[k] {
		return k
	}
	return SortByDateAdded
}

// ItemFilter filtros opcionales del listado. Los campos nil se ignoran; los presentes se combinan con AND.
// TagIDs es disyuntivo: basta con que el ítem tenga uno de ellos.
type ItemFilter struct {
	DepartmentID   *int64
	CategoryID     *int64
	ItemTypeID     *int64
	Brand          *string // subcadena, sin distinguir mayúsculas
	SizeID         *int64
	ColorPrimaryID *int64
	ConditionID    *int64
	StatusID       *int64
	LocationID     *int64
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	OnSale         *bool
	Season         *string
	Search         *string // description OR brand OR customer_notes
	TagIDs         []int64

	SortBy   ItemSortKey
	SortDesc bool
	Limit    int
	Offset   int
}
