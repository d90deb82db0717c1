package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain"
)

// PhotoHandler fotos de ítems: alta por ruta, subida multipart, PATCH y borrado.
type PhotoHandler struct {
	uc *inventory.PhotoUseCase
}

// NewPhotoHandler construye el handler.
func NewPhotoHandler(uc *inventory.PhotoUseCase) *PhotoHandler {
	return &PhotoHandler{uc: uc}
}

// List godoc
// @Summary      Fotos del ítem (por sort_order)
// @Tags         photos
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {array}   dto.PhotoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id}/photos [get]
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), itemID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar foto por ruta
// @Tags         photos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del ítem"
// @Param        body  body  dto.CreatePhotoRequest  true  "Ruta y orden"
// @Success      201   {object}  dto.PhotoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /items/{id}/photos [post]
func (h *PhotoHandler) Create(c *fiber.Ctx) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CreatePhotoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Add(c.UserContext(), itemID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Upload godoc
// @Summary      Subir foto (multipart)
// @Description  La imagen (JPEG o PNG) se reduce al tamaño máximo configurado y se guarda como JPEG.
// @Tags         photos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id          path      int   true   "ID del ítem"
// @Param        file        formData  file  true   "Imagen"
// @Param        is_primary  formData  bool  false  "Foto principal"
// @Param        sort_order  formData  int   false  "Orden"  default(1)
// @Success      201  {object}  dto.PhotoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id}/photos/upload [post]
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return domain.NewValidationError("file", "field required")
	}
	ve := &domain.ValidationError{}
	isPrimary := false
	if v := c.FormValue("is_primary"); v != "" {
		if isPrimary, err = strconv.ParseBool(v); err != nil {
			ve.Add("is_primary", "must be a boolean")
		}
	}
	sortOrder := 1
	if v := c.FormValue("sort_order"); v != "" {
		if sortOrder, err = strconv.Atoi(v); err != nil || sortOrder < 0 {
			ve.Add("sort_order", "must be greater than or equal to 0")
		}
	}
	if !ve.Empty() {
		return ve
	}

	f, err := fh.Open()
	if err != nil {
		return invalidBody()
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), itemID, f, isPrimary, sortOrder)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar foto
// @Tags         photos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        photo_id  path  int                     true  "ID de la foto"
// @Param        body      body  dto.UpdatePhotoRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.PhotoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/photos/{photo_id} [patch]
func (h *PhotoHandler) Update(c *fiber.Ctx) error {
	photoID, err := pathID(c, "photo_id")
	if err != nil {
		return err
	}
	var in dto.UpdatePhotoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	out, err := h.uc.Update(c.UserContext(), photoID, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar foto
// @Tags         photos
// @Security     Bearer
// @Param        photo_id  path  int  true  "ID de la foto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/photos/{photo_id} [delete]
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	photoID, err := pathID(c, "photo_id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), photoID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
