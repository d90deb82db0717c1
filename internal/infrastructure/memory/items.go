package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo ítems en memoria.
type ItemRepo struct {
	c *conn
}

func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	var list []*entity.Item
	var total int
	err := r.c.do(ctx, func(st *state) error {
		all := make([]*entity.Item, 0)
		for _, it := range st.items {
			if matchItem(st, it, f) {
				all = append(all, it)
			}
		}
		sortItems(all, f.SortBy, f.SortDesc)
		total = len(all)
		for _, it := range paginate(all, f.Limit, f.Offset) {
			list = append(list, it.Clone())
		}
		if list == nil {
			list = make([]*entity.Item, 0)
		}
		return nil
	})
	return list, total, err
}

func containsFold(s *string, sub string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), strings.ToLower(sub))
}

func eqID(filter *int64, v int64) bool {
	return filter == nil || *filter == v
}

func matchItem(st *state, it *entity.Item, f repository.ItemFilter) bool {
	if !eqID(f.DepartmentID, it.DepartmentID) || !eqID(f.CategoryID, it.CategoryID) ||
		!eqID(f.ItemTypeID, it.ItemTypeID) || !eqID(f.SizeID, it.SizeID) ||
		!eqID(f.ColorPrimaryID, it.ColorPrimaryID) || !eqID(f.ConditionID, it.ConditionID) ||
		!eqID(f.StatusID, it.StatusID) {
		return false
	}
	if f.LocationID != nil && (it.CurrentLocationID == nil || *it.CurrentLocationID != *f.LocationID) {
		return false
	}
	if f.Brand != nil && !containsFold(it.Brand, *f.Brand) {
		return false
	}
	if f.MinPrice != nil && it.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && it.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.OnSale != nil && it.OnSale != *f.OnSale {
		return false
	}
	if f.Season != nil && (it.Season == nil || *it.Season != *f.Season) {
		return false
	}
	if f.Search != nil {
		s := *f.Search
		if !containsFold(&it.Description, s) && !containsFold(it.Brand, s) && !containsFold(it.CustomerNotes, s) {
			return false
		}
	}
	if len(f.TagIDs) > 0 {
		set := st.itemTags[it.ID]
		found := false
		for _, id := range f.TagIDs {
			if _, ok := set[id]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortItems mismo orden que el SQL: columna pedida con NULL al final y luego item_id en la misma dirección.
func sortItems(items []*entity.Item, key repository.ItemSortKey, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		c, aNull, bNull := compareItems(a, b, key)
		if aNull != bNull {
			return bNull
		}
		if c == 0 {
			if desc {
				return a.ID > b.ID
			}
			return a.ID < b.ID
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func cmpString(a, b *string) (int, bool, bool) {
	if a == nil || b == nil {
		return 0, a == nil, b == nil
	}
	return strings.Compare(*a, *b), false, false
}

func cmpDecimal(a, b *decimal.Decimal) (int, bool, bool) {
	if a == nil || b == nil {
		return 0, a == nil, b == nil
	}
	return a.Cmp(*b), false, false
}

func cmpTime(a, b *time.Time) (int, bool, bool) {
	if a == nil || b == nil {
		return 0, a == nil, b == nil
	}
	return a.Compare(*b), false, false
}

func compareItems(a, b *entity.Item, key repository.ItemSortKey) (int, bool, bool) {
	switch key {
	case repository.SortByItemID:
		return 0, false, false
	case repository.SortByPrice:
		return a.Price.Cmp(b.Price), false, false
	case repository.SortByBrand:
		return cmpString(a.Brand, b.Brand)
	case repository.SortByDescription:
		return strings.Compare(a.Description, b.Description), false, false
	case repository.SortBySeason:
		return cmpString(a.Season, b.Season)
	case repository.SortBySalePrice:
		return cmpDecimal(a.SalePrice, b.SalePrice)
	case repository.SortByOriginalPrice:
		return cmpDecimal(a.OriginalPrice, b.OriginalPrice)
	case repository.SortByDateSold:
		return cmpTime(a.DateSold, b.DateSold)
	default:
		return a.DateAdded.Compare(b.DateAdded), false, false
	}
}

func (st *state) tagIDs(itemID int64) []int64 {
	ids := make([]int64, 0, len(st.itemTags[itemID]))
	for id := range st.itemTags[itemID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var out *entity.Item
	err := r.c.do(ctx, func(st *state) error {
		if it, ok := st.items[id]; ok {
			out = it.Clone()
			out.TagIDs = st.tagIDs(id)
		}
		return nil
	})
	return out, err
}

// GetForUpdate el lock de la transacción ya serializa el acceso.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) ListForUpdate(ctx context.Context, ids []int64) ([]*entity.Item, error) {
	list := make([]*entity.Item, 0, len(ids))
	err := r.c.do(ctx, func(st *state) error {
		seen := map[int64]bool{}
		for _, id := range ids {
			if it, ok := st.items[id]; ok && !seen[id] {
				seen[id] = true
				list = append(list, it.Clone())
			}
		}
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		return nil
	})
	return list, err
}

// checkRefs FK salientes del ítem, como las REFERENCES del esquema.
func checkRefs(st *state, it *entity.Item) error {
	_, dep := st.departments[it.DepartmentID]
	_, cat := st.categories[it.CategoryID]
	_, typ := st.itemTypes[it.ItemTypeID]
	_, size := st.sizes[it.SizeID]
	_, color := st.colors[it.ColorPrimaryID]
	_, cond := st.conditions[it.ConditionID]
	_, status := st.statuses[it.StatusID]
	ok := dep && cat && typ && size && color && cond && status
	if it.ColorSecondaryID != nil {
		_, c2 := st.colors[*it.ColorSecondaryID]
		ok = ok && c2
	}
	if it.CurrentLocationID != nil {
		_, loc := st.locations[*it.CurrentLocationID]
		ok = ok && loc
	}
	if !ok {
		return fmt.Errorf("item references: %w", domain.ErrIntegrity)
	}
	if it.Price.IsNegative() {
		return domain.NewValidationError("price", "violates check constraint")
	}
	return nil
}

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	return r.c.do(ctx, func(st *state) error {
		if err := checkRefs(st, it); err != nil {
			return err
		}
		it.ID = st.nextID("items")
		if it.DateAdded.IsZero() {
			it.DateAdded = time.Now().UTC()
		}
		it.Version = 1
		stored := it.Clone()
		stored.TagIDs = nil
		st.items[it.ID] = stored
		return nil
	})
}

func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	return r.c.do(ctx, func(st *state) error {
		cur, ok := st.items[it.ID]
		if !ok {
			return domain.NewNotFound("Item")
		}
		if cur.Version != it.Version {
			return fmt.Errorf("item %d version %d: %w", it.ID, it.Version, domain.ErrConflict)
		}
		if err := checkRefs(st, it); err != nil {
			return err
		}
		it.Version++
		stored := it.Clone()
		stored.TagIDs = nil
		stored.DateAdded = cur.DateAdded
		st.items[it.ID] = stored
		return nil
	})
}

// Delete borra el ítem con sus fotos, historial y tags (cascada).
func (r *ItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.do(ctx, func(st *state) error {
		if _, ok := st.items[id]; !ok {
			return nil
		}
		delete(st.items, id)
		delete(st.itemTags, id)
		for pid, p := range st.photos {
			if p.ItemID == id {
				delete(st.photos, pid)
			}
		}
		for hid, h := range st.history {
			if h.ItemID == id {
				delete(st.history, hid)
			}
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *ItemRepo) ReplaceTags(ctx context.Context, itemID int64, tagIDs []int64) ([]int64, error) {
	var out []int64
	err := r.c.do(ctx, func(st *state) error {
		if _, ok := st.items[itemID]; !ok {
			return fmt.Errorf("item tags: %w", domain.ErrIntegrity)
		}
		set := map[int64]struct{}{}
		for _, id := range tagIDs {
			if _, ok := st.tags[id]; ok {
				set[id] = struct{}{}
			}
		}
		st.itemTags[itemID] = set
		out = st.tagIDs(itemID)
		return nil
	})
	return out, err
}

func (r *ItemRepo) TagsByItems(ctx context.Context, itemIDs []int64) (map[int64][]entity.Tag, error) {
	out := make(map[int64][]entity.Tag, len(itemIDs))
	err := r.c.do(ctx, func(st *state) error {
		for _, itemID := range itemIDs {
			var tags []entity.Tag
			for id := range st.itemTags[itemID] {
				if t, ok := st.tags[id]; ok {
					tags = append(tags, t)
				}
			}
			if len(tags) == 0 {
				continue
			}
			sort.Slice(tags, func(i, j int) bool { return byName(tags[i].Name, tags[j].Name, tags[i].ID, tags[j].ID) })
			out[itemID] = tags
		}
		return nil
	})
	return out, err
}
