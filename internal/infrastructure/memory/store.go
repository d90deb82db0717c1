package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store base de datos en memoria con las mismas reglas que el esquema PostgreSQL
// (unicidad, FK restrict, cascadas). Las transacciones se serializan: Run trabaja sobre
// una copia del estado y la publica solo si fn no devuelve error.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea una base vacía.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn con repositorios atados a una copia del estado; commit = reemplazar el estado.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(newRepos(&conn{store: s, tx: snapshot})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = snapshot
	return nil
}

// View ejecuta fn sobre el estado publicado con el lock tomado: ninguna escritura se intercala.
func (s *Store) View(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(newRepos(&conn{store: s, tx: s.st}))
}

// Repos repositorios fuera de transacción: cada llamada toma el lock del store.
func (s *Store) Repos() inventory.TxRepos {
	return newRepos(&conn{store: s})
}

// Catalog repositorios de catálogo fuera de transacción.
func (s *Store) Catalog() repository.Catalog {
	return newCatalog(&conn{store: s})
}

// Reset vacía todas las tablas y reinicia los ids.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = newState()
}

// conn ejecuta operaciones sobre el estado publicado (con lock) o sobre la copia de una transacción.
type conn struct {
	store *Store
	tx    *state
}

func (c *conn) do(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.tx != nil {
		return fn(c.tx)
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return fn(c.store.st)
}

func newRepos(c *conn) inventory.TxRepos {
	return inventory.TxRepos{
		Items:   &ItemRepo{c: c},
		History: &HistoryRepo{c: c},
		Photos:  &PhotoRepo{c: c},
		Catalog: newCatalog(c),
	}
}

func newCatalog(c *conn) repository.Catalog {
	return repository.Catalog{
		Departments: &CatalogRepo[entity.Department]{c: c, t: departmentsTable},
		Categories:  &CatalogRepo[entity.Category]{c: c, t: categoriesTable},
		ItemTypes:   &CatalogRepo[entity.ItemType]{c: c, t: itemTypesTable},
		Sizes:       &CatalogRepo[entity.Size]{c: c, t: sizesTable},
		Colors:      &CatalogRepo[entity.Color]{c: c, t: colorsTable},
		Tags:        &CatalogRepo[entity.Tag]{c: c, t: tagsTable},
		Conditions:  &CatalogRepo[entity.Condition]{c: c, t: conditionsTable},
		Statuses:    &CatalogRepo[entity.Status]{c: c, t: statusesTable},
		Locations:   &CatalogRepo[entity.Location]{c: c, t: locationsTable},
	}
}

// state contenido de todas las tablas.
type state struct {
	departments map[int64]entity.Department
	categories  map[int64]entity.Category
	itemTypes   map[int64]entity.ItemType
	sizes       map[int64]entity.Size
	colors      map[int64]entity.Color
	tags        map[int64]entity.Tag
	conditions  map[int64]entity.Condition
	statuses    map[int64]entity.Status
	locations   map[int64]entity.Location

	items    map[int64]*entity.Item // TagIDs no se usa aquí: los tags viven en itemTags
	itemTags map[int64]map[int64]struct{}
	photos   map[int64]entity.Photo
	history  map[int64]entity.HistoryEntry

	seq map[string]int64
}

func newState() *state {
	return &state{
		departments: map[int64]entity.Department{},
		categories:  map[int64]entity.Category{},
		itemTypes:   map[int64]entity.ItemType{},
		sizes:       map[int64]entity.Size{},
		colors:      map[int64]entity.Color{},
		tags:        map[int64]entity.Tag{},
		conditions:  map[int64]entity.Condition{},
		statuses:    map[int64]entity.Status{},
		locations:   map[int64]entity.Location{},
		items:       map[int64]*entity.Item{},
		itemTags:    map[int64]map[int64]struct{}{},
		photos:      map[int64]entity.Photo{},
		history:     map[int64]entity.HistoryEntry{},
		seq:         map[string]int64{},
	}
}

func (s *state) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	c := &state{
		departments: copyMap(s.departments),
		categories:  copyMap(s.categories),
		itemTypes:   copyMap(s.itemTypes),
		sizes:       copyMap(s.sizes),
		colors:      copyMap(s.colors),
		tags:        copyMap(s.tags),
		conditions:  copyMap(s.conditions),
		statuses:    copyMap(s.statuses),
		locations:   copyMap(s.locations),
		items:       make(map[int64]*entity.Item, len(s.items)),
		itemTags:    make(map[int64]map[int64]struct{}, len(s.itemTags)),
		photos:      copyMap(s.photos),
		history:     copyMap(s.history),
		seq:         copyMap(s.seq),
	}
	for id, it := range s.items {
		c.items[id] = it.Clone()
	}
	for id, set := range s.itemTags {
		c.itemTags[id] = copyMap(set)
	}
	return c
}
