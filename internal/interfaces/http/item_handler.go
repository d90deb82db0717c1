package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
)

// ItemHandler maneja las peticiones HTTP de ítems, su historial y su etiqueta de precio.
type ItemHandler struct {
	uc   *inventory.ItemUseCase
	tags *inventory.PriceTagUseCase
}

// NewItemHandler construye el handler. tags puede ser nil (sin etiqueta PDF).
func NewItemHandler(uc *inventory.ItemUseCase, tags *inventory.PriceTagUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, tags: tags}
}

// List godoc
// @Summary      Listar ítems
// @Description  Filtros combinados con AND; tag_ids coincide con cualquiera de los tags. sort_by desconocido ordena por date_added.
// @Tags         items
// @Produce      json
// @Param        department_id  query  int     false  "Departamento"
// @Param        category_id    query  int     false  "Categoría"
// @Param        brand          query  string  false  "Marca (subcadena)"
// @Param        min_price      query  number  false  "Precio mínimo"
// @Param        max_price      query  number  false  "Precio máximo"
// @Param        search         query  string  false  "Busca en descripción, marca y notas"
// @Param        tag_ids        query  string  false  "Ids de tags, repetidos o separados por coma"
// @Param        page           query  int     false  "Página"  default(1)
// @Param        page_size      query  int     false  "Tamaño de página"  default(20)
// @Param        sort_by        query  string  false  "Campo de orden"  default(date_added)
// @Param        sort_order     query  string  false  "asc | desc"  default(desc)
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	q, err := parseItemListQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener ítem con relaciones e historial
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.ItemDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem (PATCH)
// @Description  Solo se modifican los campos presentes; null borra un campo opcional. version opcional para control de concurrencia.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /items/{id} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem (con fotos, tags e historial)
// @Tags         items
// @Security     Bearer
// @Param        id   path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// History godoc
// @Summary      Historial del ítem (más reciente primero)
// @Tags         items
// @Produce      json
// @Param        id     path   int  true   "ID del ítem"
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite (1-500)"  default(100)
// @Success      200  {array}   dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id}/history [get]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.History(c.UserContext(), id, page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PriceTag godoc
// @Summary      Etiqueta de precio imprimible con QR
// @Tags         items
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id}/tag.pdf [get]
func (h *ItemHandler) PriceTag(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if h.tags == nil {
		return fiber.ErrNotFound
	}
	pdf, err := h.tags.Render(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"item-%d-tag.pdf\"", id))
	return c.Send(pdf)
}
