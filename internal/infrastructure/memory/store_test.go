package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// seedItem crea el catálogo mínimo y un ítem que lo referencia.
func seedItem(t *testing.T, ctx context.Context, s *Store) *entity.Item {
	t.Helper()
	c := s.Catalog()
	dep := &entity.Department{Name: "Women's", Active: true}
	require.NoError(t, c.Departments.Create(ctx, dep))
	cat := &entity.Category{Name: "Tops", DepartmentID: dep.ID, Active: true}
	require.NoError(t, c.Categories.Create(ctx, cat))
	typ := &entity.ItemType{Name: "Blouse", CategoryID: cat.ID, Active: true}
	require.NoError(t, c.ItemTypes.Create(ctx, typ))
	size := &entity.Size{Value: "M", System: "Letter"}
	require.NoError(t, c.Sizes.Create(ctx, size))
	color := &entity.Color{Name: "White", Family: "Neutrals"}
	require.NoError(t, c.Colors.Create(ctx, color))
	cond := &entity.Condition{Name: "Good"}
	require.NoError(t, c.Conditions.Create(ctx, cond))
	st := &entity.Status{Name: "Available", IsAvailableForSale: true}
	require.NoError(t, c.Statuses.Create(ctx, st))

	it := &entity.Item{
		DepartmentID: dep.ID, CategoryID: cat.ID, ItemTypeID: typ.ID, SizeID: size.ID,
		ColorPrimaryID: color.ID, ConditionID: cond.ID, StatusID: st.ID,
		Price: decimal.NewFromInt(10), Description: "Cream blouse",
	}
	require.NoError(t, s.Repos().Items.Create(ctx, it))
	return it
}

func TestCatalog_UniqueAndRefs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c := s.Catalog()

	require.NoError(t, c.Tags.Create(ctx, &entity.Tag{Name: "Vintage", Category: "Era"}))
	err := c.Tags.Create(ctx, &entity.Tag{Name: "Vintage", Category: "Style"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	// Los talles no son únicos por valor.
	require.NoError(t, c.Sizes.Create(ctx, &entity.Size{Value: "8", System: "US Numeric"}))
	require.NoError(t, c.Sizes.Create(ctx, &entity.Size{Value: "8", System: "Shoes"}))

	err = c.Categories.Create(ctx, &entity.Category{Name: "Tops", DepartmentID: 99})
	assert.True(t, errors.Is(err, domain.ErrIntegrity))
}

func TestCatalog_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	c := NewStore().Catalog()
	for i, name := range []string{"Kids", "Men's", "Women's"} {
		require.NoError(t, c.Departments.Create(ctx, &entity.Department{Name: name, SortOrder: i, Active: name != "Kids"}))
	}

	all, total, err := c.Departments.List(ctx, repository.CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, all, 3)

	active, total, err := c.Departments.List(ctx, repository.CatalogFilter{ActiveOnly: true, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, active, 1)
	assert.Equal(t, "Men's", active[0].Name)

	_, _, err = c.Departments.List(ctx, repository.CatalogFilter{Offset: 10})
	require.NoError(t, err)
}

func TestPaginate_OffsetOutOfRange(t *testing.T) {
	all := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, paginate(all, 2, -5))
	assert.Empty(t, paginate(all, 2, 3))
	assert.Equal(t, []int{3}, paginate(all, 0, 2))
}

func TestCatalog_DeleteInUse(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	it := seedItem(t, ctx, s)

	_, err := s.Catalog().Statuses.Delete(ctx, it.StatusID)
	assert.True(t, errors.Is(err, domain.ErrIntegrity))

	ok, err := s.Catalog().Statuses.Delete(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItems_VersionAndCascade(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	it := seedItem(t, ctx, s)
	repos := s.Repos()
	assert.Equal(t, 1, it.Version)

	stale := it.Clone()
	it.Price = decimal.NewFromInt(12)
	require.NoError(t, repos.Items.Update(ctx, it))
	assert.Equal(t, 2, it.Version)

	stale.Price = decimal.NewFromInt(5)
	assert.True(t, errors.Is(repos.Items.Update(ctx, stale), domain.ErrConflict))

	require.NoError(t, repos.History.Create(ctx, &entity.HistoryEntry{ItemID: it.ID, Action: entity.HistoryActionCreated}))
	require.NoError(t, repos.Photos.Create(ctx, &entity.Photo{ItemID: it.ID, FilePath: "/images/a.jpg", IsPrimary: true}))

	ok, err := repos.Items.Delete(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	hist, err := repos.History.ListByItem(ctx, it.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)
	photos, err := repos.Photos.ListByItem(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestRun_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	it := seedItem(t, ctx, s)
	boom := errors.New("boom")

	err := s.Run(ctx, func(repos inventory.TxRepos) error {
		cur, err := repos.Items.GetForUpdate(ctx, it.ID)
		if err != nil {
			return err
		}
		cur.Description = "changed"
		if err := repos.Items.Update(ctx, cur); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Repos().Items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cream blouse", got.Description)
	assert.Equal(t, 1, got.Version)

	s.Reset()
	got, err = s.Repos().Items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestView_WritesWaitForSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	it := seedItem(t, ctx, s)
	done := make(chan error, 1)

	err := s.View(ctx, func(repos inventory.TxRepos) error {
		first, err := repos.Items.GetByID(ctx, it.ID)
		require.NoError(t, err)
		go func() {
			done <- s.Run(ctx, func(w inventory.TxRepos) error {
				cur, err := w.Items.GetForUpdate(ctx, it.ID)
				if err != nil {
					return err
				}
				cur.Price = decimal.NewFromInt(99)
				return w.Items.Update(ctx, cur)
			})
		}()
		time.Sleep(20 * time.Millisecond)

		second, err := repos.Items.GetByID(ctx, it.ID)
		require.NoError(t, err)
		assert.True(t, first.Price.Equal(second.Price))
		assert.Equal(t, first.Version, second.Version)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, <-done)

	after, err := s.Repos().Items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, after.Price.Equal(decimal.NewFromInt(99)))
}

func TestPhotos_CountByFilePath(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	it := seedItem(t, ctx, s)
	photos := s.Repos().Photos
	require.NoError(t, photos.Create(ctx, &entity.Photo{ItemID: it.ID, FilePath: "/images/a.jpg"}))
	require.NoError(t, photos.Create(ctx, &entity.Photo{ItemID: it.ID, FilePath: "/images/a.jpg"}))

	n, err := photos.CountByFilePath(ctx, "/images/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = photos.CountByFilePath(ctx, "/images/b.jpg")
	require.NoError(t, err)
	assert.Zero(t, n)
}
