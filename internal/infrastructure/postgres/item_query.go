package postgres

import (
	"strconv"
	"strings"

	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// itemSortColumns enumeración cerrada: el valor de sort_by nunca llega al SQL sin pasar por aquí.
var itemSortColumns = map[repository.ItemSortKey]string{
	repository.SortByDateAdded:     "date_added",
	repository.SortByItemID:        "item_id",
	repository.SortByPrice:         "price",
	repository.SortByBrand:         "brand",
	repository.SortByDescription:   "description",
	repository.SortBySeason:        "season",
	repository.SortBySalePrice:     "sale_price",
	repository.SortByOriginalPrice: "original_price",
	repository.SortByDateSold:      "date_sold",
}

// itemQuery acumula condiciones y argumentos numerados ($1, $2...).
type itemQuery struct {
	conds []string
	args  []any
}

func (q *itemQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *itemQuery) add(cond string) {
	q.conds = append(q.conds, cond)
}

func (q *itemQuery) eqInt(column string, v *int64) {
	if v != nil {
		q.add(column + " = " + q.arg(*v))
	}
}

func (q *itemQuery) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// buildItemFilter traduce ItemFilter a WHERE. Las condiciones se combinan con AND;
// tag_ids es un EXISTS sobre item_tags, así un ítem con varios tags pedidos aparece una sola vez.
func buildItemFilter(f repository.ItemFilter) *itemQuery {
	q := &itemQuery{}
	q.eqInt("i.department_id", f.DepartmentID)
	q.eqInt("i.category_id", f.CategoryID)
	q.eqInt("i.item_type_id", f.ItemTypeID)
	q.eqInt("i.size_id", f.SizeID)
	q.eqInt("i.color_primary_id", f.ColorPrimaryID)
	q.eqInt("i.condition_id", f.ConditionID)
	q.eqInt("i.status_id", f.StatusID)
	q.eqInt("i.current_location_id", f.LocationID)
	if f.Brand != nil {
		q.add("i.brand ILIKE " + q.arg(likePattern(*f.Brand)))
	}
	if f.MinPrice != nil {
		q.add("i.price >= " + q.arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		q.add("i.price <= " + q.arg(*f.MaxPrice))
	}
	if f.OnSale != nil {
		q.add("i.on_sale = " + q.arg(*f.OnSale))
	}
	if f.Season != nil {
		q.add("i.season = " + q.arg(*f.Season))
	}
	if f.Search != nil {
		p := q.arg(likePattern(*f.Search))
		q.add("(i.description ILIKE " + p + " OR i.brand ILIKE " + p + " OR i.customer_notes ILIKE " + p + ")")
	}
	if len(f.TagIDs) > 0 {
		q.add("EXISTS (SELECT 1 FROM item_tags t WHERE t.item_id = i.item_id AND t.tag_id = ANY(" + q.arg(f.TagIDs) + "))")
	}
	return q
}

// itemOrderBy orden estable: la columna pedida y luego item_id en la misma dirección.
// Los NULL van al final en ambas direcciones.
func itemOrderBy(f repository.ItemFilter) string {
	col, ok := itemSortColumns[f.SortBy]
	if !ok {
		col = itemSortColumns[repository.SortByDateAdded]
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	if col == "item_id" {
		return " ORDER BY i.item_id " + dir
	}
	return " ORDER BY i." + col + " " + dir + " NULLS LAST, i.item_id " + dir
}

// buildItemList devuelve la consulta de conteo y la de página con sus argumentos.
func buildItemList(f repository.ItemFilter) (countSQL string, countArgs []any, listSQL string, listArgs []any) {
	q := buildItemFilter(f)
	where := q.where()
	countSQL = "SELECT count(*) FROM items i" + where
	countArgs = append([]any(nil), q.args...)

	listSQL = "SELECT " + itemSelectList + " FROM items i" + where + itemOrderBy(f)
	if f.Limit > 0 {
		listSQL += " LIMIT " + q.arg(f.Limit)
	}
	if f.Offset > 0 {
		listSQL += " OFFSET " + q.arg(f.Offset)
	}
	return countSQL, countArgs, listSQL, q.args
}
