package memory

import (
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// Reglas de las tablas de referencia: mismas unicidades, FK y orden que el esquema SQL.

func bySortOrder(aSort, bSort int, aID, bID int64) bool {
	if aSort != bSort {
		return aSort < bSort
	}
	return aID < bID
}

func byName(aName, bName string, aID, bID int64) bool {
	if aName != bName {
		return aName < bName
	}
	return aID < bID
}

func itemsReference(st *state, match func(it *entity.Item) bool) bool {
	for _, it := range st.items {
		if match(it) {
			return true
		}
	}
	return false
}

func parentMatches(f repository.CatalogFilter, parentID int64) bool {
	return f.ParentID == nil || *f.ParentID == parentID
}

func kindMatches(f repository.CatalogFilter, kind string) bool {
	return f.Kind == "" || f.Kind == kind
}

var departmentsTable = &table[entity.Department]{
	name:   "departments",
	rows:   func(st *state) map[int64]entity.Department { return st.departments },
	id:     func(v *entity.Department) *int64 { return &v.ID },
	unique: func(v *entity.Department) string { return v.Name },
	match:  func(v *entity.Department, f repository.CatalogFilter) bool { return !f.ActiveOnly || v.Active },
	less: func(a, b *entity.Department) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	inUse: func(st *state, id int64) bool {
		for _, c := range st.categories {
			if c.DepartmentID == id {
				return true
			}
		}
		return itemsReference(st, func(it *entity.Item) bool { return it.DepartmentID == id })
	},
}

var categoriesTable = &table[entity.Category]{
	name: "categories",
	rows: func(st *state) map[int64]entity.Category { return st.categories },
	id:   func(v *entity.Category) *int64 { return &v.ID },
	match: func(v *entity.Category, f repository.CatalogFilter) bool {
		return (!f.ActiveOnly || v.Active) && parentMatches(f, v.DepartmentID)
	},
	less: func(a, b *entity.Category) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	refs: func(st *state, v *entity.Category) bool {
		_, ok := st.departments[v.DepartmentID]
		return ok
	},
	inUse: func(st *state, id int64) bool {
		for _, t := range st.itemTypes {
			if t.CategoryID == id {
				return true
			}
		}
		return itemsReference(st, func(it *entity.Item) bool { return it.CategoryID == id })
	},
}

var itemTypesTable = &table[entity.ItemType]{
	name: "item_types",
	rows: func(st *state) map[int64]entity.ItemType { return st.itemTypes },
	id:   func(v *entity.ItemType) *int64 { return &v.ID },
	match: func(v *entity.ItemType, f repository.CatalogFilter) bool {
		return (!f.ActiveOnly || v.Active) && parentMatches(f, v.CategoryID)
	},
	less: func(a, b *entity.ItemType) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	refs: func(st *state, v *entity.ItemType) bool {
		_, ok := st.categories[v.CategoryID]
		return ok
	},
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool { return it.ItemTypeID == id })
	},
}

var sizesTable = &table[entity.Size]{
	name:  "sizes",
	rows:  func(st *state) map[int64]entity.Size { return st.sizes },
	id:    func(v *entity.Size) *int64 { return &v.ID },
	match: func(v *entity.Size, f repository.CatalogFilter) bool { return kindMatches(f, v.System) },
	less: func(a, b *entity.Size) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool { return it.SizeID == id })
	},
}

var colorsTable = &table[entity.Color]{
	name:   "colors",
	rows:   func(st *state) map[int64]entity.Color { return st.colors },
	id:     func(v *entity.Color) *int64 { return &v.ID },
	unique: func(v *entity.Color) string { return v.Name },
	match:  func(v *entity.Color, f repository.CatalogFilter) bool { return kindMatches(f, v.Family) },
	less: func(a, b *entity.Color) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool {
			return it.ColorPrimaryID == id || (it.ColorSecondaryID != nil && *it.ColorSecondaryID == id)
		})
	},
}

var tagsTable = &table[entity.Tag]{
	name:   "tags",
	rows:   func(st *state) map[int64]entity.Tag { return st.tags },
	id:     func(v *entity.Tag) *int64 { return &v.ID },
	unique: func(v *entity.Tag) string { return v.Name },
	match: func(v *entity.Tag, f repository.CatalogFilter) bool {
		return (!f.ActiveOnly || v.Active) && kindMatches(f, v.Category)
	},
	less: func(a, b *entity.Tag) bool { return byName(a.Name, b.Name, a.ID, b.ID) },
	cascade: func(st *state, id int64) {
		for _, set := range st.itemTags {
			delete(set, id)
		}
	},
}

var conditionsTable = &table[entity.Condition]{
	name:   "conditions",
	rows:   func(st *state) map[int64]entity.Condition { return st.conditions },
	id:     func(v *entity.Condition) *int64 { return &v.ID },
	unique: func(v *entity.Condition) string { return v.Name },
	less: func(a, b *entity.Condition) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool { return it.ConditionID == id })
	},
}

var statusesTable = &table[entity.Status]{
	name:   "item_status",
	rows:   func(st *state) map[int64]entity.Status { return st.statuses },
	id:     func(v *entity.Status) *int64 { return &v.ID },
	unique: func(v *entity.Status) string { return v.Name },
	match: func(v *entity.Status, f repository.CatalogFilter) bool {
		return !f.AvailableOnly || v.IsAvailableForSale
	},
	less: func(a, b *entity.Status) bool {
		return bySortOrder(a.SortOrder, b.SortOrder, a.ID, b.ID)
	},
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool { return it.StatusID == id })
	},
}

var locationsTable = &table[entity.Location]{
	name:   "locations",
	rows:   func(st *state) map[int64]entity.Location { return st.locations },
	id:     func(v *entity.Location) *int64 { return &v.ID },
	unique: func(v *entity.Location) string { return v.Name },
	match: func(v *entity.Location, f repository.CatalogFilter) bool {
		return (!f.ActiveOnly || v.Active) && kindMatches(f, v.Type)
	},
	less: func(a, b *entity.Location) bool { return byName(a.Name, b.Name, a.ID, b.ID) },
	inUse: func(st *state, id int64) bool {
		return itemsReference(st, func(it *entity.Item) bool {
			return it.CurrentLocationID != nil && *it.CurrentLocationID == id
		})
	},
}
