package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verificación de la base de datos para /health. nil equivale a siempre disponible.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler endpoints informativos.
type SystemHandler struct {
	name    string
	version string
	db      Pinger
}

// NewSystemHandler construye el handler.
func NewSystemHandler(name, version string, db Pinger) *SystemHandler {
	return &SystemHandler{name: name, version: version, db: db}
}

// Register monta GET / y GET /health.
func (h *SystemHandler) Register(r fiber.Router) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

// Root godoc
// @Summary      Información del API
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": h.name,
		"status":  "running",
		"version": h.version,
		"docs":    "/docs",
	})
}

// Health godoc
// @Summary      Estado del servicio y de la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "database": "unreachable"})
		}
	}
	return c.JSON(fiber.Map{"status": "healthy", "database": "connected"})
}
