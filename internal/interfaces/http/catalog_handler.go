package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// creator request de alta que construye la entidad.
type creator[T any] interface {
	ToEntity() *T
}

// patcher request de PATCH que modifica la entidad cargada.
type patcher[T any] interface {
	Apply(*T)
}

// catalogFilters qué filtros de listado acepta un recurso.
type catalogFilters struct {
	parent       string // department_id, category_id
	kind         string // size_system, color_family, tag_category, location_type
	active       bool   // active_only (default true)
	availability bool   // available_only
}

// CatalogHandler CRUD HTTP genérico de una tabla de referencia.
// C y U son los requests de alta y PATCH de la entidad T.
type CatalogHandler[T any, C creator[T], U patcher[T]] struct {
	svc     *catalog.Service[T]
	plural  string
	filters catalogFilters
}

func newCatalogHandler[T any, C creator[T], U patcher[T]](svc *catalog.Service[T], plural string, filters catalogFilters) *CatalogHandler[T, C, U] {
	return &CatalogHandler[T, C, U]{svc: svc, plural: plural, filters: filters}
}

// register monta GET/POST /path y GET/PATCH/DELETE /path/:id. guard va delante de DELETE.
func (h *CatalogHandler[T, C, U]) register(r fiber.Router, path string, guard fiber.Handler) {
	g := r.Group(path)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", guard, h.Delete)
}

// List responde {<plural>: [...], total} con total = filas que cumplen el filtro.
func (h *CatalogHandler[T, C, U]) List(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	list, total, err := h.svc.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	if list == nil {
		list = []*T{}
	}
	return c.JSON(fiber.Map{h.plural: list, "total": total})
}

func (h *CatalogHandler[T, C, U]) filter(c *fiber.Ctx) (repository.CatalogFilter, error) {
	return parseCatalogFilter(c, h.filters.parent, h.filters.kind, h.filters.active, h.filters.availability)
}

func (h *CatalogHandler[T, C, U]) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	v, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(v)
}

func (h *CatalogHandler[T, C, U]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	if err := dto.Validate(in); err != nil {
		return err
	}
	v, err := h.svc.Create(c.UserContext(), in.ToEntity())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *CatalogHandler[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	if err := dto.Validate(in); err != nil {
		return err
	}
	v, err := h.svc.Update(c.UserContext(), id, in.Apply)
	if err != nil {
		return err
	}
	return c.JSON(v)
}

func (h *CatalogHandler[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// registerCatalog monta las nueve tablas de referencia.
func registerCatalog(r fiber.Router, s *catalog.Services, guard fiber.Handler) {
	newCatalogHandler[entity.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest](
		s.Departments, "departments", catalogFilters{active: true}).register(r, "/departments", guard)
	newCatalogHandler[entity.Category, dto.CreateCategoryRequest, dto.UpdateCategoryRequest](
		s.Categories, "categories", catalogFilters{parent: "department_id", active: true}).register(r, "/categories", guard)
	newCatalogHandler[entity.ItemType, dto.CreateItemTypeRequest, dto.UpdateItemTypeRequest](
		s.ItemTypes, "item_types", catalogFilters{parent: "category_id", active: true}).register(r, "/item-types", guard)
	newCatalogHandler[entity.Size, dto.CreateSizeRequest, dto.UpdateSizeRequest](
		s.Sizes, "sizes", catalogFilters{kind: "size_system"}).register(r, "/sizes", guard)
	newCatalogHandler[entity.Color, dto.CreateColorRequest, dto.UpdateColorRequest](
		s.Colors, "colors", catalogFilters{kind: "color_family"}).register(r, "/colors", guard)
	newCatalogHandler[entity.Tag, dto.CreateTagRequest, dto.UpdateTagRequest](
		s.Tags, "tags", catalogFilters{kind: "tag_category", active: true}).register(r, "/tags", guard)
	newCatalogHandler[entity.Condition, dto.CreateConditionRequest, dto.UpdateConditionRequest](
		s.Conditions, "conditions", catalogFilters{}).register(r, "/conditions", guard)
	statuses := newCatalogHandler[entity.Status, dto.CreateStatusRequest, dto.UpdateStatusRequest](
		s.Statuses, "statuses", catalogFilters{availability: true})
	statuses.register(r, "/statuses", guard)
	statuses.register(r, "/item-statuses", guard)
	newCatalogHandler[entity.Location, dto.CreateLocationRequest, dto.UpdateLocationRequest](
		s.Locations, "locations", catalogFilters{kind: "location_type", active: true}).register(r, "/locations", guard)
}
