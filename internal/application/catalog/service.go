package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// CheckFunc valida reglas que cruzan tablas antes de persistir (ej. que exista el departamento padre).
type CheckFunc[T any] func(ctx context.Context, v *T) error

// ChangeFunc valida una modificación comparando el registro antes y después de aplicarla.
type ChangeFunc[T any] func(ctx context.Context, before, after *T) error

// Service CRUD genérico de una tabla de referencia.
type Service[T any] struct {
	entity   string
	repo     repository.CatalogRepository[T]
	check    CheckFunc[T]
	onChange ChangeFunc[T]
}

// NewService construye el servicio. entity nombra la tabla en errores ("Department"); check puede ser nil.
func NewService[T any](entity string, repo repository.CatalogRepository[T], check CheckFunc[T]) *Service[T] {
	return &Service[T]{entity: entity, repo: repo, check: check}
}

// WithChangeCheck agrega una validación que solo corre en Update.
func (s *Service[T]) WithChangeCheck(fn ChangeFunc[T]) *Service[T] {
	s.onChange = fn
	return s
}

// Entity nombre de la entidad.
func (s *Service[T]) Entity() string { return s.entity }

// List devuelve la página pedida y el total filtrado.
func (s *Service[T]) List(ctx context.Context, f repository.CatalogFilter) ([]*T, int, error) {
	list, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return list, total, nil
}

// Get devuelve NotFoundError si no existe.
func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.NewNotFound(s.entity)
	}
	return v, nil
}

// Create valida y persiste. Un nombre duplicado llega como domain.ErrDuplicate desde el repositorio.
func (s *Service[T]) Create(ctx context.Context, v *T) (*T, error) {
	if s.check != nil {
		if err := s.check(ctx, v); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update carga el registro, aplica apply (solo campos presentes) y persiste.
func (s *Service[T]) Update(ctx context.Context, id int64, apply func(*T)) (*T, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *v
	apply(v)
	if s.check != nil {
		if err := s.check(ctx, v); err != nil {
			return nil, err
		}
	}
	if s.onChange != nil {
		if err := s.onChange(ctx, &before, v); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete falla con domain.ErrIntegrity si algún ítem (u otra tabla) referencia el registro.
func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFound(s.entity)
	}
	return nil
}

// Services los nueve servicios de catálogo.
type Services struct {
	Departments *Service[entity.Department]
	Categories  *Service[entity.Category]
	ItemTypes   *Service[entity.ItemType]
	Sizes       *Service[entity.Size]
	Colors      *Service[entity.Color]
	Tags        *Service[entity.Tag]
	Conditions  *Service[entity.Condition]
	Statuses    *Service[entity.Status]
	Locations   *Service[entity.Location]
}

// NewServices arma los servicios sobre los repositorios dados.
// Categorías e item types validan que su padre exista y no cambian de padre mientras
// algún ítem los referencie: la taxonomía del ítem quedaría inconsistente.
func NewServices(c repository.Catalog, items repository.ItemRepository) *Services {
	return &Services{
		Departments: NewService("Department", c.Departments, nil),
		Categories: NewService("Category", c.Categories, func(ctx context.Context, v *entity.Category) error {
			return parentExists(ctx, c.Departments, v.DepartmentID, "department_id", "department")
		}).WithChangeCheck(func(ctx context.Context, before, after *entity.Category) error {
			if before.DepartmentID == after.DepartmentID {
				return nil
			}
			return notReferenced(ctx, items, repository.ItemFilter{CategoryID: &after.ID}, "department_id", "category")
		}),
		ItemTypes: NewService("ItemType", c.ItemTypes, func(ctx context.Context, v *entity.ItemType) error {
			return parentExists(ctx, c.Categories, v.CategoryID, "category_id", "category")
		}).WithChangeCheck(func(ctx context.Context, before, after *entity.ItemType) error {
			if before.CategoryID == after.CategoryID {
				return nil
			}
			return notReferenced(ctx, items, repository.ItemFilter{ItemTypeID: &after.ID}, "category_id", "item type")
		}),
		Sizes:      NewService("Size", c.Sizes, nil),
		Colors:     NewService("Color", c.Colors, nil),
		Tags:       NewService("Tag", c.Tags, nil),
		Conditions: NewService("Condition", c.Conditions, nil),
		Statuses:   NewService("Status", c.Statuses, nil),
		Locations:  NewService("Location", c.Locations, nil),
	}
}

func parentExists[P any](ctx context.Context, repo repository.CatalogRepository[P], id int64, field, name string) error {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NewValidationError(field, name+" not found")
	}
	return nil
}

// notReferenced falla si algún ítem cumple f.
func notReferenced(ctx context.Context, items repository.ItemRepository, f repository.ItemFilter, field, name string) error {
	f.Limit = 1
	_, total, err := items.List(ctx, f)
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if total > 0 {
		return domain.NewValidationError(field, fmt.Sprintf("cannot move %s: %d item(s) reference it", name, total))
	}
	return nil
}
