package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// idSet ids distintos a consultar en lote.
type idSet map[int64]struct{}

func (s idSet) add(id int64) {
	if id > 0 {
		s[id] = struct{}{}
	}
}

func (s idSet) addOpt(id *int64) {
	if id != nil {
		s.add(*id)
	}
}

func (s idSet) slice() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

func fetch[T any](ctx context.Context, repo repository.CatalogRepository[T], ids idSet, name string) (map[int64]*T, error) {
	if len(ids) == 0 {
		return map[int64]*T{}, nil
	}
	m, err := repo.GetByIDs(ctx, ids.slice())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return m, nil
}

func lookup[T any](m map[int64]*T, id *int64) *T {
	if id == nil {
		return nil
	}
	return m[*id]
}

// loadRelations construye las respuestas con catálogo, tags y fotos resueltos en lote (una consulta por relación).
func loadRelations(ctx context.Context, repos TxRepos, items []*entity.Item) ([]dto.ItemResponse, error) {
	out := make([]dto.ItemResponse, 0, len(items))
	if len(items) == 0 {
		return out, nil
	}
	deps, cats, types, sizes, colors := idSet{}, idSet{}, idSet{}, idSet{}, idSet{}
	conds, stats, locs := idSet{}, idSet{}, idSet{}
	itemIDs := make([]int64, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
		deps.add(it.DepartmentID)
		cats.add(it.CategoryID)
		types.add(it.ItemTypeID)
		sizes.add(it.SizeID)
		colors.add(it.ColorPrimaryID)
		colors.addOpt(it.ColorSecondaryID)
		conds.add(it.ConditionID)
		stats.add(it.StatusID)
		locs.addOpt(it.CurrentLocationID)
	}

	c := repos.Catalog
	depM, err := fetch(ctx, c.Departments, deps, "departments")
	if err != nil {
		return nil, err
	}
	catM, err := fetch(ctx, c.Categories, cats, "categories")
	if err != nil {
		return nil, err
	}
	typeM, err := fetch(ctx, c.ItemTypes, types, "item types")
	if err != nil {
		return nil, err
	}
	sizeM, err := fetch(ctx, c.Sizes, sizes, "sizes")
	if err != nil {
		return nil, err
	}
	colorM, err := fetch(ctx, c.Colors, colors, "colors")
	if err != nil {
		return nil, err
	}
	condM, err := fetch(ctx, c.Conditions, conds, "conditions")
	if err != nil {
		return nil, err
	}
	statM, err := fetch(ctx, c.Statuses, stats, "statuses")
	if err != nil {
		return nil, err
	}
	locM, err := fetch(ctx, c.Locations, locs, "locations")
	if err != nil {
		return nil, err
	}
	tags, err := repos.Items.TagsByItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	photos, err := repos.Photos.ListByItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}

	for _, it := range items {
		r := dto.NewItemResponse(it)
		r.Department = depM[it.DepartmentID]
		r.Category = catM[it.CategoryID]
		r.ItemType = typeM[it.ItemTypeID]
		r.Size = sizeM[it.SizeID]
		r.ColorPrimary = colorM[it.ColorPrimaryID]
		r.ColorSecondary = lookup(colorM, it.ColorSecondaryID)
		r.Condition = condM[it.ConditionID]
		r.Status = statM[it.StatusID]
		r.CurrentLocation = lookup(locM, it.CurrentLocationID)
		if t := tags[it.ID]; len(t) > 0 {
			r.Tags = t
		}
		for _, p := range photos[it.ID] {
			r.Photos = append(r.Photos, dto.NewPhotoResponse(p))
		}
		out = append(out, r)
	}
	return out, nil
}

// checkReferences verifica que las FK del ítem existan y que la taxonomía sea coherente:
// la categoría pertenece al departamento y el tipo a la categoría.
func checkReferences(ctx context.Context, c repository.Catalog, it *entity.Item) error {
	ve := &domain.ValidationError{}

	dep, err := c.Departments.GetByID(ctx, it.DepartmentID)
	if err != nil {
		return err
	}
	if dep == nil {
		ve.Add("department_id", "department not found")
	}
	cat, err := c.Categories.GetByID(ctx, it.CategoryID)
	if err != nil {
		return err
	}
	switch {
	case cat == nil:
		ve.Add("category_id", "category not found")
	case dep != nil && cat.DepartmentID != dep.ID:
		ve.Add("category_id", "category does not belong to department")
	}
	typ, err := c.ItemTypes.GetByID(ctx, it.ItemTypeID)
	if err != nil {
		return err
	}
	switch {
	case typ == nil:
		ve.Add("item_type_id", "item type not found")
	case cat != nil && typ.CategoryID != cat.ID:
		ve.Add("item_type_id", "item type does not belong to category")
	}

	if err := exists(ctx, c.Sizes, it.SizeID, "size_id", "size", ve); err != nil {
		return err
	}
	if err := exists(ctx, c.Colors, it.ColorPrimaryID, "color_primary_id", "color", ve); err != nil {
		return err
	}
	if it.ColorSecondaryID != nil {
		if err := exists(ctx, c.Colors, *it.ColorSecondaryID, "color_secondary_id", "color", ve); err != nil {
			return err
		}
	}
	if err := exists(ctx, c.Conditions, it.ConditionID, "condition_id", "condition", ve); err != nil {
		return err
	}
	if err := exists(ctx, c.Statuses, it.StatusID, "status_id", "status", ve); err != nil {
		return err
	}
	if it.CurrentLocationID != nil {
		if err := exists(ctx, c.Locations, *it.CurrentLocationID, "current_location_id", "location", ve); err != nil {
			return err
		}
	}
	if ve.Empty() {
		return nil
	}
	return ve
}

func exists[T any](ctx context.Context, repo repository.CatalogRepository[T], id int64, field, name string, ve *domain.ValidationError) error {
	v, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		ve.Add(field, name+" not found")
	}
	return nil
}
