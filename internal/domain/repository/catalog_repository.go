package repository

import (
	"context"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// CatalogFilter filtros comunes a las tablas de referencia. Cada tabla ignora los que no aplican:
//   - ActiveOnly: solo registros activos (departments, categories, item types, tags, locations).
//   - AvailableOnly: solo estados disponibles para venta (statuses).
//   - ParentID: department_id para categories, category_id para item types.
//   - Kind: size_system, color_family, tag_category o location_type.
type CatalogFilter struct {
	ActiveOnly    bool
	AvailableOnly bool
	ParentID      *int64
	Kind          string
	Limit         int
	Offset        int
}

// CatalogRepository puerto genérico de persistencia para las entidades de referencia (DIP).
// GetByID devuelve (nil, nil) si no existe; Delete devuelve false si no existía.
type CatalogRepository[T any] interface {
	List(ctx context.Context, f CatalogFilter) ([]*T, int, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*T, error)
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Catalog agrupa los nueve repositorios de referencia.
type Catalog struct {
	Departments CatalogRepository[entity.Department]
	Categories  CatalogRepository[entity.Category]
	ItemTypes   CatalogRepository[entity.ItemType]
	Sizes       CatalogRepository[entity.Size]
	Colors      CatalogRepository[entity.Color]
	Tags        CatalogRepository[entity.Tag]
	Conditions  CatalogRepository[entity.Condition]
	Statuses    CatalogRepository[entity.Status]
	Locations   CatalogRepository[entity.Location]
}
