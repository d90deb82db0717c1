package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

func TestCreate_RecordsCreatedEntryAndLoadsRelations(t *testing.T) {
	f := newFixture(t)

	item := f.createItem(t, "18", func(in *dto.CreateItemRequest) {
		in.Brand = strPtr("Ann Taylor")
		in.TagIDs = []int64{f.ids.vintage, f.ids.boho, f.ids.vintage}
		in.CurrentLocationID = &f.ids.floor
	})

	require.NotZero(t, item.ID)
	assert.Equal(t, 1, item.Version)
	require.NotNil(t, item.Department)
	assert.Equal(t, "Women's", item.Department.Name)
	require.NotNil(t, item.CurrentLocation)
	assert.Equal(t, "Sales Floor", item.CurrentLocation.Name)
	assert.Nil(t, item.ColorSecondary)
	require.Len(t, item.Tags, 2, "tags duplicados se guardan una sola vez")
	assert.Equal(t, "Boho", item.Tags[0].Name, "tags ordenados por nombre")

	hist := f.history(t, item.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, entity.HistoryActionCreated, hist[0].Action)
	assert.Equal(t, "Item created: Silk blouse with pearl buttons", *hist[0].NewValue)
	assert.Equal(t, "Initial creation", *hist[0].Notes)
	assert.Equal(t, 1, f.metrics.history[entity.HistoryActionCreated])
}

func TestCreate_TaxonomyMismatchIsValidationError(t *testing.T) {
	f := newFixture(t)

	_, err := f.items.Create(f.ctx, f.newItemRequest("10", func(in *dto.CreateItemRequest) {
		in.DepartmentID = f.ids.otherDept
	}))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Contains(t, ve.Fields, "category_id")
}

func TestCreate_MissingReferenceIsValidationError(t *testing.T) {
	f := newFixture(t)

	_, err := f.items.Create(f.ctx, f.newItemRequest("10", func(in *dto.CreateItemRequest) {
		in.StatusID = 999
	}))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Contains(t, ve.Fields, "status_id")
}

func TestCreate_RejectsNegativePriceAndMissingFields(t *testing.T) {
	f := newFixture(t)

	in := f.newItemRequest("-1")
	in.Description = ""
	_, err := f.items.Create(f.ctx, in)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "price")
	assert.Contains(t, ve.Fields, "description")
}

func TestUpdate_PriceChangeWritesSingleEntry(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "18")

	out, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{Price: decPtr("15")})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 2, out.Version)

	hist := f.history(t, item.ID)
	require.Len(t, hist, 2)
	assert.Equal(t, entity.HistoryActionUpdated, hist[0].Action, "más reciente primero")
	assert.Equal(t, "price: 18.0 -> 15.0", *hist[0].OldValue)
	assert.Equal(t, "Item updated", *hist[0].NewValue)
	assert.Equal(t, "1 fields updated", *hist[0].Notes)
}

func TestUpdate_NoEffectiveChangeWritesNothing(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "18", func(in *dto.CreateItemRequest) {
		in.TagIDs = []int64{f.ids.vintage}
	})

	tags := []int64{f.ids.vintage}
	out, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{
		Price:       decPtr("18.00"),
		Description: strPtr(item.Description),
		TagIDs:      &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Version)
	assert.Len(t, f.history(t, item.ID), 1)
}

func TestUpdate_NullClearsOptionalField(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "18", func(in *dto.CreateItemRequest) {
		in.Brand = strPtr("Gap")
		in.ColorSecondaryID = &f.ids.blue
	})

	out, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{
		Brand:            dto.Null[string](),
		ColorSecondaryID: dto.Null[int64](),
		Season:           dto.Some("Fall/Winter"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Brand)
	assert.Nil(t, out.ColorSecondaryID)
	require.NotNil(t, out.Season)
	assert.Equal(t, "Fall/Winter", *out.Season)

	hist := f.history(t, item.ID)
	assert.Equal(t, "brand: Gap -> None; color_secondary_id: 2 -> None; season: None -> Fall/Winter", *hist[0].OldValue)
	assert.Equal(t, "3 fields updated", *hist[0].Notes)
}

func TestUpdate_TagsDiff(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "5", func(in *dto.CreateItemRequest) {
		in.TagIDs = []int64{f.ids.vintage}
	})

	tags := []int64{f.ids.boho, f.ids.vintage, 999}
	out, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{TagIDs: &tags})
	require.NoError(t, err)
	assert.Len(t, out.Tags, 2, "los tags inexistentes se ignoran")

	hist := f.history(t, item.ID)
	assert.Equal(t, "tags: [1] -> [1 2]", *hist[0].OldValue)
}

func TestUpdate_ManyChangesListsFirstFive(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "20")

	out, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{
		Brand:         dto.Some("Zara"),
		Material:      dto.Some("Cotton"),
		Price:         decPtr("12.5"),
		OnSale:        boolPtr(true),
		SalePrice:     dto.Some(decimal.NewFromInt(10)),
		Description:   strPtr("Cotton blouse"),
		CustomerNotes: dto.Some("Small stain"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	hist := f.history(t, item.ID)
	assert.Equal(t, "7 fields updated", *hist[0].Notes)
	assert.Equal(t,
		"brand: None -> Zara; material: None -> Cotton; price: 20.0 -> 12.5; on_sale: false -> true; sale_price: None -> 10.0",
		*hist[0].OldValue)
}

func TestUpdate_VersionMismatchIsConflict(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "18")

	_, err := f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{Price: decPtr("15")})
	require.NoError(t, err)

	stale := 1
	_, err = f.items.Update(f.ctx, item.ID, dto.UpdateItemRequest{Price: decPtr("10"), Version: &stale})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := f.items.Get(f.ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(15)), "el cambio rechazado no se aplica")
	assert.Len(t, got.History, 2)
}

func TestUpdate_UnknownItemIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.items.Update(f.ctx, 42, dto.UpdateItemRequest{Price: decPtr("1")})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Item", nf.Entity)
}

func TestDelete_CascadesPhotosAndHistory(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "8")
	_, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/a.jpg"})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(f.ctx, item.ID))

	_, err = f.items.Get(f.ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"/images/a.jpg"}, f.files.removed)

	entries, err := f.store.Repos().History.ListByItem(f.ctx, item.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, f.items.Delete(f.ctx, item.ID), domain.ErrNotFound)
}

func TestList_FiltersSortAndPaginate(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "30", func(in *dto.CreateItemRequest) {
		in.Brand = strPtr("Levi's")
		in.TagIDs = []int64{f.ids.vintage}
	})
	b := f.createItem(t, "10", func(in *dto.CreateItemRequest) {
		in.Brand = strPtr("Gap")
		in.TagIDs = []int64{f.ids.vintage, f.ids.boho}
	})
	c := f.createItem(t, "20", func(in *dto.CreateItemRequest) {
		in.Description = "Denim jacket"
	})

	t.Run("tag filter matches any tag without duplicates", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{TagIDs: []int64{f.ids.vintage, f.ids.boho}, SortBy: "price", SortOrder: "asc"})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Total)
		require.Len(t, out.Items, 2)
		assert.Equal(t, b.ID, out.Items[0].ID)
		assert.Equal(t, a.ID, out.Items[1].ID)
	})

	t.Run("price range", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{MinPrice: decPtr("15"), MaxPrice: decPtr("30")})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Total)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{Search: strPtr("DENIM")})
		require.NoError(t, err)
		require.Len(t, out.Items, 1)
		assert.Equal(t, c.ID, out.Items[0].ID)
	})

	t.Run("brand sort puts missing brands last", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{SortBy: "brand", SortOrder: "asc"})
		require.NoError(t, err)
		require.Len(t, out.Items, 3)
		assert.Equal(t, []int64{b.ID, a.ID, c.ID}, []int64{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID})
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{Page: 2, PageSize: 2, SortBy: "item_id", SortOrder: "asc"})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Total)
		assert.Equal(t, 2, out.TotalPages)
		require.Len(t, out.Items, 1)
		assert.Equal(t, c.ID, out.Items[0].ID)
	})

	t.Run("page beyond int range returns empty page", func(t *testing.T) {
		out, err := f.items.List(f.ctx, dto.ItemListQuery{Page: 4611686018427387905, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Total)
		assert.Empty(t, out.Items)
	})

	t.Run("invalid page size", func(t *testing.T) {
		_, err := f.items.List(f.ctx, dto.ItemListQuery{PageSize: 101})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestHistory_UnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.History(f.ctx, 77, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func boolPtr(b bool) *bool { return &b }
