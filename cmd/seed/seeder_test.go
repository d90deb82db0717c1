package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
	"github.com/jhoicas/thrift-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

func newTestSeeder() *seeder {
	mem := memory.NewStore()
	repos := mem.Repos()
	return newSeeder(catalog.NewServices(repos.Catalog, repos.Items), inventory.NewItemUseCase(mem, nil, nil, logger.Nop()), logger.Nop())
}

func TestSeedCatalog_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestSeeder()

	n, err := s.seedCatalog(ctx)
	require.NoError(t, err)
	assert.Positive(t, n)

	again, err := s.seedCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)

	_, total, err := s.svc.Departments.List(ctx, repository.CatalogFilter{})
	require.NoError(t, err)
	assert.Equal(t, len(taxonomy), total)

	// "Tops" existe en varios departamentos y no se confunde.
	assert.NotEqual(t, s.categories[key("Women's", "Tops")], s.categories[key("Men's", "Tops")])
	assert.NotZero(t, s.sizesByValue[key("M")])
}

func TestSeedItems_Samples(t *testing.T) {
	ctx := context.Background()
	s := newTestSeeder()
	_, err := s.seedCatalog(ctx)
	require.NoError(t, err)

	created, skipped, err := s.seedItems(ctx, sampleItems)
	require.NoError(t, err)
	assert.Equal(t, len(sampleItems), created)
	assert.Zero(t, skipped)

	count, err := s.itemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleItems), count)
}

func TestSeedItems_SkipsUnresolvedRows(t *testing.T) {
	ctx := context.Background()
	s := newTestSeeder()
	_, err := s.seedCatalog(ctx)
	require.NoError(t, err)

	rows := []itemRow{
		{Line: 2, Department: "Women's", Category: "Tops", ItemType: "Blouse", Size: "M", Color: "White",
			Condition: "Good", Status: "Available", Price: "12.50", Description: "Cream blouse"},
		{Line: 3, Department: "Women's", Category: "Tops", ItemType: "Blouse", Size: "M", Color: "White",
			Condition: "Good", Status: "Available", Price: "12.50", Description: "Tagged", Tags: []string{"Nope"}},
		{Line: 4, Department: "Women's", Category: "Tops", ItemType: "Blouse", Size: "M", Color: "White",
			Condition: "Good", Status: "Available", Price: "abc", Description: "Bad price"},
	}
	created, skipped, err := s.seedItems(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, skipped)

	_, err = s.resolve(rows[1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tag "nope"`)
}
