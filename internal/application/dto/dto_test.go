package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/domain"
)

func TestNullable_Unmarshal(t *testing.T) {
	var r UpdateItemRequest
	require.NoError(t, json.Unmarshal([]byte(`{"brand":null,"season":"Fall","original_price":"12.50"}`), &r))

	assert.True(t, r.Brand.Set)
	assert.Nil(t, r.Brand.Value)
	require.True(t, r.Season.Set)
	assert.Equal(t, "Fall", *r.Season.Value)
	require.NotNil(t, r.OriginalPrice.Value)
	assert.True(t, r.OriginalPrice.Value.Equal(decimal.RequireFromString("12.5")))
	assert.False(t, r.Material.Set)
	assert.Nil(t, r.Price)
}

func TestNullable_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Nullable[int64] `json:"a"`
		B Nullable[int64] `json:"b"`
	}{A: Some[int64](3), B: Null[int64]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrInvalidInput))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	return ve.Fields
}

func TestCreateItemRequest_Validate(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	r := CreateItemRequest{DepartmentID: 1, CategoryID: 1, ItemTypeID: 1, SizeID: 1, ColorPrimaryID: 1, ConditionID: 1, StatusID: 1, Price: &neg}

	f := fields(t, r.Validate())
	assert.Equal(t, "must be greater than or equal to 0", f["price"])
	assert.Equal(t, "field required", f["description"])
	assert.NotContains(t, f, "department_id")

	r.Description = "ok"
	zero := decimal.Zero
	r.Price = &zero
	assert.NoError(t, r.Validate())
}

func TestUpdateItemRequest_Validate(t *testing.T) {
	long := make([]rune, 51)
	for i := range long {
		long[i] = 'ñ'
	}
	tags := []int64{1, 0}
	r := UpdateItemRequest{
		Season:           Some(string(long)),
		ColorSecondaryID: Some[int64](0),
		TagIDs:           &tags,
		SalePrice:        Some(decimal.NewFromInt(-2)),
	}
	f := fields(t, r.Validate())
	assert.Contains(t, f, "season")
	assert.Contains(t, f, "color_secondary_id")
	assert.Contains(t, f, "tag_ids")
	assert.Contains(t, f, "sale_price")

	assert.NoError(t, (&UpdateItemRequest{Brand: Null[string]()}).Validate())
}

func TestMoneyFields_RangeAndScale(t *testing.T) {
	dec := decimal.RequireFromString
	base := func(p decimal.Decimal) CreateItemRequest {
		return CreateItemRequest{DepartmentID: 1, CategoryID: 1, ItemTypeID: 1, SizeID: 1, ColorPrimaryID: 1, ConditionID: 1, StatusID: 1, Description: "ok", Price: &p}
	}

	r := base(dec("100000000"))
	assert.Equal(t, "must be less than or equal to 99999999.99", fields(t, r.Validate())["price"])

	r = base(dec("10.999"))
	assert.Equal(t, "must have at most 2 decimal places", fields(t, r.Validate())["price"])

	r = base(dec("99999999.99"))
	assert.NoError(t, r.Validate())
	r = base(dec("10.50"))
	assert.NoError(t, r.Validate())

	u := UpdateItemRequest{OriginalPrice: Some(dec("1e9")), SalePrice: Some(dec("0.001"))}
	f := fields(t, u.Validate())
	assert.Contains(t, f, "original_price")
	assert.Contains(t, f, "sale_price")

	big := dec("123456789")
	f = fields(t, (&BulkPriceRequest{ItemIDs: []int64{1}, Price: &big}).Validate())
	assert.Contains(t, f, "price")
}

func TestItemListQuery_Validate(t *testing.T) {
	q := ItemListQuery{}
	q.Defaults()
	assert.NoError(t, q.Validate())
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)

	q.PageSize = 101
	q.SortOrder = "up"
	f := fields(t, q.Validate())
	assert.Contains(t, f, "page_size")
	assert.Contains(t, f, "sort_order")
}

func TestBulkPriceRequest_Validate(t *testing.T) {
	f := fields(t, (&BulkPriceRequest{}).Validate())
	assert.Contains(t, f, "item_ids")

	assert.NoError(t, (&BulkPriceRequest{ItemIDs: []int64{}}).Validate())
}

func TestNewPageResponse(t *testing.T) {
	assert.Equal(t, 3, NewPageResponse(41, 1, 20).TotalPages)
	assert.Equal(t, 0, NewPageResponse(0, 1, 20).TotalPages)
}
