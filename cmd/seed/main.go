// Command seed carga el catálogo de referencia y, opcionalmente, ítems.
//
//	go run ./cmd/seed                      # catálogo + ítems de ejemplo si no hay ítems
//	go run ./cmd/seed --items stock.csv    # importa un CSV
//	go run ./cmd/seed --reset --samples=false
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/thrift-inventory/pkg/config"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

func main() {
	itemsPath := pflag.String("items", "", "CSV de ítems a importar")
	latin1 := pflag.Bool("latin1", false, "el CSV está codificado en ISO-8859-1")
	reset := pflag.Bool("reset", false, "vaciar todas las tablas antes de sembrar")
	samples := pflag.Bool("samples", true, "crear ítems de ejemplo si no hay ítems cargados")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		tx    inventory.TxRunner
		repos inventory.TxRepos
	)
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: ejecución en seco, nada se persiste")
		mem := memory.NewStore()
		tx, repos = mem, mem.Repos()
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conectar a PostgreSQL")
		}
		defer pool.Close()
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if *reset {
			if err := postgres.Reset(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("vaciar tablas")
			}
			log.Warn().Msg("tablas vaciadas")
		}
		tx, repos = postgres.NewTxRunner(pool), postgres.NewRepos(pool)
	}

	s := newSeeder(catalog.NewServices(repos.Catalog, repos.Items), inventory.NewItemUseCase(tx, nil, nil, log), log)

	n, err := s.seedCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}
	log.Info().Int("created", n).Msg("catálogo listo")

	var rows []itemRow
	switch {
	case *itemsPath != "":
		f, err := os.Open(*itemsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir CSV")
		}
		rows, err = readItemsCSV(f, *latin1)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", *itemsPath).Msg("leer CSV")
		}
	case *samples:
		count, err := s.itemCount(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("contar ítems")
		}
		if count > 0 {
			log.Info().Int("items", count).Msg("ya hay ítems, se omiten los de ejemplo")
			return
		}
		rows = sampleItems
	}
	if len(rows) == 0 {
		return
	}

	created, skipped, err := s.seedItems(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar ítems")
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("ítems listos")
}
