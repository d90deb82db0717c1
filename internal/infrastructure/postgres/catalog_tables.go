package postgres

import "github.com/jhoicas/thrift-inventory/internal/domain/entity"

// Descriptores de las tablas de referencia. El orden de listado sigue sort_order (o el nombre
// en tablas sin sort_order) con el id como desempate.

var departmentsTable = &table[entity.Department]{
	name:         "departments",
	idColumn:     "department_id",
	columns:      []string{"department_name", "sort_order", "active"},
	orderBy:      "sort_order, department_id",
	activeColumn: "active",
	id:           func(v *entity.Department) *int64 { return &v.ID },
	fields:       func(v *entity.Department) []any { return []any{&v.Name, &v.SortOrder, &v.Active} },
	values:       func(v *entity.Department) []any { return []any{v.Name, v.SortOrder, v.Active} },
}

var categoriesTable = &table[entity.Category]{
	name:         "categories",
	idColumn:     "category_id",
	columns:      []string{"category_name", "department_id", "sort_order", "active"},
	orderBy:      "sort_order, category_id",
	activeColumn: "active",
	parentColumn: "department_id",
	id:           func(v *entity.Category) *int64 { return &v.ID },
	fields: func(v *entity.Category) []any {
		return []any{&v.Name, &v.DepartmentID, &v.SortOrder, &v.Active}
	},
	values: func(v *entity.Category) []any {
		return []any{v.Name, v.DepartmentID, v.SortOrder, v.Active}
	},
}

var itemTypesTable = &table[entity.ItemType]{
	name:         "item_types",
	idColumn:     "item_type_id",
	columns:      []string{"item_type_name", "category_id", "sort_order", "active"},
	orderBy:      "sort_order, item_type_id",
	activeColumn: "active",
	parentColumn: "category_id",
	id:           func(v *entity.ItemType) *int64 { return &v.ID },
	fields: func(v *entity.ItemType) []any {
		return []any{&v.Name, &v.CategoryID, &v.SortOrder, &v.Active}
	},
	values: func(v *entity.ItemType) []any {
		return []any{v.Name, v.CategoryID, v.SortOrder, v.Active}
	},
}

var sizesTable = &table[entity.Size]{
	name:       "sizes",
	idColumn:   "size_id",
	columns:    []string{"size_value", "size_system", "sort_order", "notes"},
	orderBy:    "sort_order, size_id",
	kindColumn: "size_system",
	id:         func(v *entity.Size) *int64 { return &v.ID },
	fields:     func(v *entity.Size) []any { return []any{&v.Value, &v.System, &v.SortOrder, &v.Notes} },
	values:     func(v *entity.Size) []any { return []any{v.Value, v.System, v.SortOrder, v.Notes} },
}

var colorsTable = &table[entity.Color]{
	name:       "colors",
	idColumn:   "color_id",
	columns:    []string{"color_name", "color_family", "hex_code", "sort_order"},
	orderBy:    "sort_order, color_id",
	kindColumn: "color_family",
	id:         func(v *entity.Color) *int64 { return &v.ID },
	fields:     func(v *entity.Color) []any { return []any{&v.Name, &v.Family, &v.HexCode, &v.SortOrder} },
	values:     func(v *entity.Color) []any { return []any{v.Name, v.Family, v.HexCode, v.SortOrder} },
}

var tagsTable = &table[entity.Tag]{
	name:         "tags",
	idColumn:     "tag_id",
	columns:      []string{"tag_name", "tag_category", "description", "active"},
	orderBy:      "tag_name, tag_id",
	activeColumn: "active",
	kindColumn:   "tag_category",
	id:           func(v *entity.Tag) *int64 { return &v.ID },
	fields: func(v *entity.Tag) []any {
		return []any{&v.Name, &v.Category, &v.Description, &v.Active}
	},
	values: func(v *entity.Tag) []any {
		return []any{v.Name, v.Category, v.Description, v.Active}
	},
}

var conditionsTable = &table[entity.Condition]{
	name:     "conditions",
	idColumn: "condition_id",
	columns:  []string{"condition_name", "description", "sort_order"},
	orderBy:  "sort_order, condition_id",
	id:       func(v *entity.Condition) *int64 { return &v.ID },
	fields:   func(v *entity.Condition) []any { return []any{&v.Name, &v.Description, &v.SortOrder} },
	values:   func(v *entity.Condition) []any { return []any{v.Name, v.Description, v.SortOrder} },
}

var statusesTable = &table[entity.Status]{
	name:            "item_status",
	idColumn:        "status_id",
	columns:         []string{"status_name", "description", "is_available_for_sale", "sort_order"},
	orderBy:         "sort_order, status_id",
	availableColumn: "is_available_for_sale",
	id:              func(v *entity.Status) *int64 { return &v.ID },
	fields: func(v *entity.Status) []any {
		return []any{&v.Name, &v.Description, &v.IsAvailableForSale, &v.SortOrder}
	},
	values: func(v *entity.Status) []any {
		return []any{v.Name, v.Description, v.IsAvailableForSale, v.SortOrder}
	},
}

var locationsTable = &table[entity.Location]{
	name:         "locations",
	idColumn:     "location_id",
	columns:      []string{"location_name", "location_type", "description", "active"},
	orderBy:      "location_name, location_id",
	activeColumn: "active",
	kindColumn:   "location_type",
	id:           func(v *entity.Location) *int64 { return &v.ID },
	fields: func(v *entity.Location) []any {
		return []any{&v.Name, &v.Type, &v.Description, &v.Active}
	},
	values: func(v *entity.Location) []any {
		return []any{v.Name, v.Type, v.Description, v.Active}
	},
}
