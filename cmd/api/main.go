// @title           Thrift Inventory API
// @version         1.0
// @description     Inventario de prendas de segunda mano: ítems, fotos, historial, operaciones masivas y catálogo.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/imagestore"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/thrift-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/thrift-inventory/internal/interfaces/http"
	"github.com/jhoicas/thrift-inventory/pkg/config"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
	"github.com/jhoicas/thrift-inventory/pkg/metrics"
)

const (
	version     = "1.0.0"
	swaggerFile = "./docs/swagger.json"
)

// storage persistencia elegida por DB_DRIVER.
type storage struct {
	tx    inventory.TxRunner
	repos inventory.TxRepos
	db    httpRouter.Pinger // nil con el driver en memoria
	close func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer store.close()

	images, err := imagestore.New(cfg.Images, log)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de imágenes")
	}
	m := metrics.New("thrift_inventory")

	itemUC := inventory.NewItemUseCase(store.tx, images, m, log)
	photoUC := inventory.NewPhotoUseCase(store.tx, store.repos, images, m, log)
	bulkUC := inventory.NewBulkUseCase(store.tx, images, m, log)
	priceTagUC := inventory.NewPriceTagUseCase(store.repos, infrapdf.NewPriceTagGenerator(), cfg.App.StoreName)
	catalogSvc := catalog.NewServices(store.repos.Catalog, store.repos.Items)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs (generar con swag init -g cmd/api/main.go)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Static(cfg.Images.URLPrefix, images.Dir(), fiber.Static{MaxAge: 3600})
	app.Get("/metrics", m.Handler())
	httpRouter.NewSystemHandler(cfg.App.Name, version, store.db).Register(app)

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("AUTH_JWT_SECRET vacío: las rutas de escritura no exigen token")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		Items:     itemUC,
		Photos:    photoUC,
		Bulk:      bulkUC,
		PriceTags: priceTagUC,
		Catalog:   catalogSvc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (con migraciones) o el store en memoria.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		mem := memory.NewStore()
		return &storage{tx: mem, repos: mem.Repos(), close: func() {}}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if len(applied) > 0 {
		log.Info().Str("versions", strings.Join(applied, ",")).Msg("migraciones aplicadas")
	}
	return &storage{
		tx:    postgres.NewTxRunner(pool),
		repos: postgres.NewRepos(pool),
		db:    pool,
		close: pool.Close,
	}, nil
}
