package postgres

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

func TestBuildItemFilter_Empty(t *testing.T) {
	q := buildItemFilter(repository.ItemFilter{})
	assert.Empty(t, q.where())
	assert.Empty(t, q.args)
}

func TestBuildItemFilter_CombinesWithAnd(t *testing.T) {
	dep := int64(2)
	minPrice := decimal.NewFromInt(10)
	brand := "50%_off"
	q := buildItemFilter(repository.ItemFilter{
		DepartmentID: &dep,
		Brand:        &brand,
		MinPrice:     &minPrice,
		TagIDs:       []int64{4, 5},
	})

	assert.Equal(t,
		" WHERE i.department_id = $1 AND i.brand ILIKE $2 AND i.price >= $3"+
			" AND EXISTS (SELECT 1 FROM item_tags t WHERE t.item_id = i.item_id AND t.tag_id = ANY($4))",
		q.where())
	assert.Equal(t, []any{int64(2), `%50\%\_off%`, minPrice, []int64{4, 5}}, q.args)
}

func TestBuildItemFilter_SearchReusesPlaceholder(t *testing.T) {
	s := "denim"
	q := buildItemFilter(repository.ItemFilter{Search: &s})
	assert.Equal(t, " WHERE (i.description ILIKE $1 OR i.brand ILIKE $1 OR i.customer_notes ILIKE $1)", q.where())
	assert.Len(t, q.args, 1)
}

func TestItemOrderBy(t *testing.T) {
	cases := []struct {
		name string
		f    repository.ItemFilter
		want string
	}{
		{"default", repository.ItemFilter{SortDesc: true}, " ORDER BY i.date_added DESC NULLS LAST, i.item_id DESC"},
		{"brand asc", repository.ItemFilter{SortBy: repository.SortByBrand}, " ORDER BY i.brand ASC NULLS LAST, i.item_id ASC"},
		{"id", repository.ItemFilter{SortBy: repository.SortByItemID, SortDesc: true}, " ORDER BY i.item_id DESC"},
		{"unknown", repository.ItemFilter{SortBy: "price; DROP TABLE items"}, " ORDER BY i.date_added ASC NULLS LAST, i.item_id ASC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, itemOrderBy(tc.f))
		})
	}
}

func TestBuildItemList_Pagination(t *testing.T) {
	on := true
	count, countArgs, list, listArgs := buildItemList(repository.ItemFilter{OnSale: &on, Limit: 20, Offset: 40})

	assert.Equal(t, "SELECT count(*) FROM items i WHERE i.on_sale = $1", count)
	assert.Equal(t, []any{true}, countArgs)
	assert.True(t, strings.HasSuffix(list, " LIMIT $2 OFFSET $3"), list)
	assert.Equal(t, []any{true, 20, 40}, listArgs)
}
