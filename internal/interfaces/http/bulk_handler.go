package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
)

// BulkHandler operaciones masivas sobre ítems. Los ids inexistentes se ignoran.
type BulkHandler struct {
	uc *inventory.BulkUseCase
}

// NewBulkHandler construye el handler.
func NewBulkHandler(uc *inventory.BulkUseCase) *BulkHandler {
	return &BulkHandler{uc: uc}
}

// UpdateStatus godoc
// @Summary      Cambio masivo de estado
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStatusRequest  true  "Ítems y estado destino"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items/bulk/update-status [post]
func (h *BulkHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.BulkStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	n, err := h.uc.UpdateStatus(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkUpdateResponse{Message: fmt.Sprintf("Updated status for %d items", n), UpdatedCount: n})
}

// UpdateLocation godoc
// @Summary      Cambio masivo de ubicación
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkLocationRequest  true  "Ítems y ubicación destino"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items/bulk/update-location [post]
func (h *BulkHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.BulkLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	n, err := h.uc.UpdateLocation(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkUpdateResponse{Message: fmt.Sprintf("Updated location for %d items", n), UpdatedCount: n})
}

// UpdatePrice godoc
// @Summary      Cambio masivo de precio
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkPriceRequest  true  "Ítems y precios"
// @Success      200   {object}  dto.BulkUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items/bulk/update-price [post]
func (h *BulkHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.BulkPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	n, err := h.uc.UpdatePrice(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkUpdateResponse{Message: fmt.Sprintf("Updated prices for %d items", n), UpdatedCount: n})
}

// Delete godoc
// @Summary      Borrado masivo
// @Tags         bulk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDeleteRequest  true  "Ítems a borrar"
// @Success      200   {object}  dto.BulkDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items/bulk/delete [post]
func (h *BulkHandler) Delete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}
	n, err := h.uc.Delete(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.BulkDeleteResponse{Message: fmt.Sprintf("Deleted %d items", n), DeletedCount: n})
}
