package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Items     *inventory.ItemUseCase
	Photos    *inventory.PhotoUseCase
	Bulk      *inventory.BulkUseCase
	PriceTags *inventory.PriceTagUseCase
	Catalog   *catalog.Services
	JWTSecret string // vacío: escrituras sin autenticación
}

// Router registra las rutas de la API en la raíz.
// Las rutas fijas (/items/bulk/..., /items/photos/...) se registran antes que /items/:id.
// Con JWT configurado, borrar ítems o filas de catálogo exige rol admin.
func Router(app fiber.Router, deps RouterDeps) {
	api := app.Group("/", WriteProtection(deps.JWTSecret))
	adminOnly := AdminOnly(deps.JWTSecret)

	itemHandler := NewItemHandler(deps.Items, deps.PriceTags)
	photoHandler := NewPhotoHandler(deps.Photos)
	bulkHandler := NewBulkHandler(deps.Bulk)

	items := api.Group("/items")

	// Bulk
	bulk := items.Group("/bulk")
	bulk.Post("/update-status", bulkHandler.UpdateStatus)
	bulk.Post("/update-location", bulkHandler.UpdateLocation)
	bulk.Post("/update-price", bulkHandler.UpdatePrice)
	bulk.Post("/delete", adminOnly, bulkHandler.Delete)

	// Fotos por id de foto
	items.Patch("/photos/:photo_id", photoHandler.Update)
	items.Delete("/photos/:photo_id", photoHandler.Delete)

	// Ítems
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.Get)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	items.Get("/:id/history", itemHandler.History)
	items.Get("/:id/tag.pdf", itemHandler.PriceTag)
	items.Get("/:id/photos", photoHandler.List)
	items.Post("/:id/photos", photoHandler.Create)
	items.Post("/:id/photos/upload", photoHandler.Upload)

	// Catálogo
	registerCatalog(api, deps.Catalog, adminOnly)
}
