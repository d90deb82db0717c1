package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// View abre una transacción REPEATABLE READ de solo lectura: todas las consultas de fn
// ven la misma instantánea.
func (r *TxRunner) View(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin read transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit read transaction: %w", err)
	}
	return nil
}

// NewRepos arma todos los repositorios sobre q (pool para lecturas, tx dentro de Run).
func NewRepos(q Querier) inventory.TxRepos {
	return inventory.TxRepos{
		Items:   NewItemRepository(q),
		History: NewHistoryRepository(q),
		Photos:  NewPhotoRepository(q),
		Catalog: NewCatalog(q),
	}
}

// NewCatalog repositorios de las nueve tablas de referencia.
func NewCatalog(q Querier) repository.Catalog {
	return repository.Catalog{
		Departments: newCatalogRepository(q, departmentsTable),
		Categories:  newCatalogRepository(q, categoriesTable),
		ItemTypes:   newCatalogRepository(q, itemTypesTable),
		Sizes:       newCatalogRepository(q, sizesTable),
		Colors:      newCatalogRepository(q, colorsTable),
		Tags:        newCatalogRepository(q, tagsTable),
		Conditions:  newCatalogRepository(q, conditionsTable),
		Statuses:    newCatalogRepository(q, statusesTable),
		Locations:   newCatalogRepository(q, locationsTable),
	}
}
