package inventory_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/memory"
)

// recordingMetrics cuenta lo que los casos de uso reportan tras el commit.
type recordingMetrics struct {
	mu      sync.Mutex
	history map[string]int
	bulk    map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{history: map[string]int{}, bulk: map[string]int{}}
}

func (m *recordingMetrics) HistoryRecorded(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[action]++
}

func (m *recordingMetrics) BulkApplied(op string, items int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bulk[op] += items
}

// memStorage PhotoStorage en memoria: registra rutas guardadas y borradas.
type memStorage struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	failOn  error
}

func (s *memStorage) Save(_ context.Context, itemID int64, label string, r io.Reader) (string, error) {
	if s.failOn != nil {
		return "", s.failOn
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := fmt.Sprintf("/images/%d_%s_%d.jpg", itemID, label, len(s.saved)+1)
	s.saved = append(s.saved, p)
	return p, nil
}

func (s *memStorage) Remove(_ context.Context, filePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, filePath)
	return nil
}

type catalogIDs struct {
	dept, otherDept           int64
	cat, otherCat             int64
	itemType                  int64
	size                      int64
	black, blue               int64
	good                      int64
	available, sold           int64
	floor, storage            int64
	vintage, boho, inactiveTg int64
}

type fixture struct {
	ctx     context.Context
	store   *memory.Store
	items   *inventory.ItemUseCase
	bulk    *inventory.BulkUseCase
	photos  *inventory.PhotoUseCase
	metrics *recordingMetrics
	files   *memStorage
	ids     catalogIDs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	m := newRecordingMetrics()
	files := &memStorage{}
	f := &fixture{
		ctx:     context.Background(),
		store:   store,
		metrics: m,
		files:   files,
		items:   inventory.NewItemUseCase(store, files, m, nil),
		bulk:    inventory.NewBulkUseCase(store, files, m, nil),
		photos:  inventory.NewPhotoUseCase(store, store.Repos(), files, m, nil),
	}
	f.seedCatalog(t)
	return f
}

func (f *fixture) seedCatalog(t *testing.T) {
	t.Helper()
	c := f.store.Catalog()
	ctx := f.ctx

	women := &entity.Department{Name: "Women's", SortOrder: 1, Active: true}
	men := &entity.Department{Name: "Men's", SortOrder: 2, Active: true}
	require.NoError(t, c.Departments.Create(ctx, women))
	require.NoError(t, c.Departments.Create(ctx, men))

	tops := &entity.Category{Name: "Tops", DepartmentID: women.ID, Active: true}
	shirts := &entity.Category{Name: "Shirts", DepartmentID: men.ID, Active: true}
	require.NoError(t, c.Categories.Create(ctx, tops))
	require.NoError(t, c.Categories.Create(ctx, shirts))

	blouse := &entity.ItemType{Name: "Blouse", CategoryID: tops.ID, Active: true}
	require.NoError(t, c.ItemTypes.Create(ctx, blouse))

	m := &entity.Size{Value: "M", System: "Letter"}
	require.NoError(t, c.Sizes.Create(ctx, m))

	black := &entity.Color{Name: "Black", Family: "Neutrals"}
	blue := &entity.Color{Name: "Navy", Family: "Blues"}
	require.NoError(t, c.Colors.Create(ctx, black))
	require.NoError(t, c.Colors.Create(ctx, blue))

	good := &entity.Condition{Name: "Good"}
	require.NoError(t, c.Conditions.Create(ctx, good))

	available := &entity.Status{Name: "Available", IsAvailableForSale: true}
	sold := &entity.Status{Name: "Sold"}
	require.NoError(t, c.Statuses.Create(ctx, available))
	require.NoError(t, c.Statuses.Create(ctx, sold))

	floor := &entity.Location{Name: "Sales Floor", Type: "Floor", Active: true}
	storage := &entity.Location{Name: "Back Storage", Type: "Storage", Active: true}
	require.NoError(t, c.Locations.Create(ctx, floor))
	require.NoError(t, c.Locations.Create(ctx, storage))

	vintage := &entity.Tag{Name: "Vintage", Category: "Era", Active: true}
	boho := &entity.Tag{Name: "Boho", Category: "Style", Active: true}
	old := &entity.Tag{Name: "Y2K", Category: "Era", Active: false}
	require.NoError(t, c.Tags.Create(ctx, vintage))
	require.NoError(t, c.Tags.Create(ctx, boho))
	require.NoError(t, c.Tags.Create(ctx, old))

	f.ids = catalogIDs{
		dept: women.ID, otherDept: men.ID,
		cat: tops.ID, otherCat: shirts.ID,
		itemType: blouse.ID, size: m.ID,
		black: black.ID, blue: blue.ID,
		good:      good.ID,
		available: available.ID, sold: sold.ID,
		floor: floor.ID, storage: storage.ID,
		vintage: vintage.ID, boho: boho.ID, inactiveTg: old.ID,
	}
}

// newItemRequest ítem válido con el precio dado; mods ajusta campos.
func (f *fixture) newItemRequest(price string, mods ...func(*dto.CreateItemRequest)) dto.CreateItemRequest {
	p := decimal.RequireFromString(price)
	in := dto.CreateItemRequest{
		DepartmentID:   f.ids.dept,
		CategoryID:     f.ids.cat,
		ItemTypeID:     f.ids.itemType,
		SizeID:         f.ids.size,
		ColorPrimaryID: f.ids.black,
		ConditionID:    f.ids.good,
		StatusID:       f.ids.available,
		Price:          &p,
		Description:    "Silk blouse with pearl buttons",
	}
	for _, m := range mods {
		m(&in)
	}
	return in
}

func (f *fixture) createItem(t *testing.T, price string, mods ...func(*dto.CreateItemRequest)) *dto.ItemResponse {
	t.Helper()
	out, err := f.items.Create(f.ctx, f.newItemRequest(price, mods...))
	require.NoError(t, err)
	return out
}

func (f *fixture) history(t *testing.T, itemID int64) []dto.HistoryResponse {
	t.Helper()
	out, err := f.items.History(f.ctx, itemID, dto.PageRequest{})
	require.NoError(t, err)
	return out
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
