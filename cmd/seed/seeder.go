package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/application/catalog"
	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

// itemRow ítem con sus referencias por nombre (muestras y filas CSV).
type itemRow struct {
	Line           int
	Department     string
	Category       string
	ItemType       string
	Brand          string
	SizeSystem     string
	Size           string
	Color          string
	SecondaryColor string
	Material       string
	Condition      string
	Status         string
	Location       string
	Price          string
	OriginalPrice  string
	Description    string
	InternalNotes  string
	CustomerNotes  string
	Season         string
	Tags           []string
}

// seeder crea el catálogo faltante y los ítems, resolviendo nombres a ids.
// Las claves de los índices se comparan sin distinguir mayúsculas.
type seeder struct {
	svc   *catalog.Services
	items *inventory.ItemUseCase
	log   *logger.Logger

	departments  map[string]int64
	categories   map[string]int64 // departamento/categoría
	itemTypes    map[string]int64 // departamento/categoría/tipo
	sizes        map[string]int64 // sistema/valor
	sizesByValue map[string]int64 // primer talle con ese valor
	colors       map[string]int64
	tags         map[string]int64
	conditions   map[string]int64
	statuses     map[string]int64
	locations    map[string]int64
}

func newSeeder(svc *catalog.Services, items *inventory.ItemUseCase, log *logger.Logger) *seeder {
	return &seeder{svc: svc, items: items, log: logger.OrNop(log).Named("seed")}
}

func key(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "/")
}

// index lista todos los registros (activos o no) de una tabla y los indexa con keyOf.
func index[T any](ctx context.Context, svc *catalog.Service[T], keyOf func(*T) string, idOf func(*T) int64) (map[string]int64, error) {
	list, _, err := svc.List(ctx, repository.CatalogFilter{})
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(list))
	for _, v := range list {
		if k := keyOf(v); k != "" {
			out[k] = idOf(v)
		}
	}
	return out, nil
}

// ensure crea el registro si la clave no está indexada. Devuelve 1 si lo creó.
func ensure[T any](ctx context.Context, svc *catalog.Service[T], idx map[string]int64, k string, build func() *T, idOf func(*T) int64) (int, error) {
	if _, ok := idx[k]; ok {
		return 0, nil
	}
	v, err := svc.Create(ctx, build())
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", svc.Entity(), k, err)
	}
	idx[k] = idOf(v)
	return 1, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// seedCatalog crea las entradas de referencia que falten. Es idempotente.
func (s *seeder) seedCatalog(ctx context.Context) (int, error) {
	if err := s.loadTaxonomy(ctx); err != nil {
		return 0, err
	}
	created := 0
	add := func(n int, err error) error {
		created += n
		return err
	}

	for i, d := range taxonomy {
		dk := key(d.name)
		if err := add(ensure(ctx, s.svc.Departments, s.departments, dk, func() *entity.Department {
			return &entity.Department{Name: d.name, SortOrder: i + 1, Active: true}
		}, func(v *entity.Department) int64 { return v.ID })); err != nil {
			return created, err
		}
		for j, c := range d.categories {
			ck := key(d.name, c.name)
			if err := add(ensure(ctx, s.svc.Categories, s.categories, ck, func() *entity.Category {
				return &entity.Category{Name: c.name, DepartmentID: s.departments[dk], SortOrder: j + 1, Active: true}
			}, func(v *entity.Category) int64 { return v.ID })); err != nil {
				return created, err
			}
			for k, t := range c.types {
				if err := add(ensure(ctx, s.svc.ItemTypes, s.itemTypes, key(d.name, c.name, t), func() *entity.ItemType {
					return &entity.ItemType{Name: t, CategoryID: s.categories[ck], SortOrder: k + 1, Active: true}
				}, func(v *entity.ItemType) int64 { return v.ID })); err != nil {
					return created, err
				}
			}
		}
	}

	for _, z := range sizes {
		if err := add(ensure(ctx, s.svc.Sizes, s.sizes, key(z.system, z.value), func() *entity.Size {
			return &entity.Size{Value: z.value, System: z.system, SortOrder: z.sortOrder, Notes: optional(z.notes)}
		}, func(v *entity.Size) int64 { return v.ID })); err != nil {
			return created, err
		}
		if _, ok := s.sizesByValue[key(z.value)]; !ok {
			s.sizesByValue[key(z.value)] = s.sizes[key(z.system, z.value)]
		}
	}
	for _, c := range colors {
		if err := add(ensure(ctx, s.svc.Colors, s.colors, key(c.name), func() *entity.Color {
			return &entity.Color{Name: c.name, Family: c.family, HexCode: optional(c.hex), SortOrder: c.sortOrder}
		}, func(v *entity.Color) int64 { return v.ID })); err != nil {
			return created, err
		}
	}
	for _, t := range tags {
		if err := add(ensure(ctx, s.svc.Tags, s.tags, key(t.name), func() *entity.Tag {
			return &entity.Tag{Name: t.name, Category: t.category, Description: optional(t.description), Active: true}
		}, func(v *entity.Tag) int64 { return v.ID })); err != nil {
			return created, err
		}
	}
	for i, c := range conditions {
		if err := add(ensure(ctx, s.svc.Conditions, s.conditions, key(c.name), func() *entity.Condition {
			return &entity.Condition{Name: c.name, Description: optional(c.description), SortOrder: i + 1}
		}, func(v *entity.Condition) int64 { return v.ID })); err != nil {
			return created, err
		}
	}
	for i, st := range statuses {
		if err := add(ensure(ctx, s.svc.Statuses, s.statuses, key(st.name), func() *entity.Status {
			return &entity.Status{Name: st.name, Description: optional(st.description), IsAvailableForSale: st.availableForSale, SortOrder: i + 1}
		}, func(v *entity.Status) int64 { return v.ID })); err != nil {
			return created, err
		}
	}
	for _, l := range locations {
		if err := add(ensure(ctx, s.svc.Locations, s.locations, key(l.name), func() *entity.Location {
			return &entity.Location{Name: l.name, Type: l.kind, Description: optional(l.description), Active: true}
		}, func(v *entity.Location) int64 { return v.ID })); err != nil {
			return created, err
		}
	}
	return created, nil
}

// loadTaxonomy indexa lo que ya existe en la base.
func (s *seeder) loadTaxonomy(ctx context.Context) error {
	var err error
	if s.departments, err = index(ctx, s.svc.Departments,
		func(v *entity.Department) string { return key(v.Name) },
		func(v *entity.Department) int64 { return v.ID }); err != nil {
		return err
	}
	deptName := invert(s.departments)
	if s.categories, err = index(ctx, s.svc.Categories,
		func(v *entity.Category) string { return key(deptName[v.DepartmentID], v.Name) },
		func(v *entity.Category) int64 { return v.ID }); err != nil {
		return err
	}
	catPath := invert(s.categories)
	if s.itemTypes, err = index(ctx, s.svc.ItemTypes,
		func(v *entity.ItemType) string {
			if catPath[v.CategoryID] == "" {
				return ""
			}
			return catPath[v.CategoryID] + "/" + key(v.Name)
		},
		func(v *entity.ItemType) int64 { return v.ID }); err != nil {
		return err
	}
	s.sizesByValue = map[string]int64{}
	if s.sizes, err = index(ctx, s.svc.Sizes,
		func(v *entity.Size) string {
			if _, ok := s.sizesByValue[key(v.Value)]; !ok {
				s.sizesByValue[key(v.Value)] = v.ID
			}
			return key(v.System, v.Value)
		},
		func(v *entity.Size) int64 { return v.ID }); err != nil {
		return err
	}
	if s.colors, err = index(ctx, s.svc.Colors,
		func(v *entity.Color) string { return key(v.Name) },
		func(v *entity.Color) int64 { return v.ID }); err != nil {
		return err
	}
	if s.tags, err = index(ctx, s.svc.Tags,
		func(v *entity.Tag) string { return key(v.Name) },
		func(v *entity.Tag) int64 { return v.ID }); err != nil {
		return err
	}
	if s.conditions, err = index(ctx, s.svc.Conditions,
		func(v *entity.Condition) string { return key(v.Name) },
		func(v *entity.Condition) int64 { return v.ID }); err != nil {
		return err
	}
	if s.statuses, err = index(ctx, s.svc.Statuses,
		func(v *entity.Status) string { return key(v.Name) },
		func(v *entity.Status) int64 { return v.ID }); err != nil {
		return err
	}
	s.locations, err = index(ctx, s.svc.Locations,
		func(v *entity.Location) string { return key(v.Name) },
		func(v *entity.Location) int64 { return v.ID })
	return err
}

func invert(m map[string]int64) map[int64]string {
	out := make(map[int64]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// resolve traduce una fila por nombres al request de alta.
func (s *seeder) resolve(r itemRow) (dto.CreateItemRequest, error) {
	var missing []string
	lookup := func(idx map[string]int64, what, k string) int64 {
		id, ok := idx[k]
		if !ok {
			missing = append(missing, fmt.Sprintf("%s %q", what, k))
		}
		return id
	}
	in := dto.CreateItemRequest{
		DepartmentID:  lookup(s.departments, "department", key(r.Department)),
		CategoryID:    lookup(s.categories, "category", key(r.Department, r.Category)),
		ItemTypeID:    lookup(s.itemTypes, "item type", key(r.Department, r.Category, r.ItemType)),
		ConditionID:   lookup(s.conditions, "condition", key(r.Condition)),
		StatusID:      lookup(s.statuses, "status", key(r.Status)),
		Brand:         optional(r.Brand),
		Material:      optional(r.Material),
		Description:   strings.TrimSpace(r.Description),
		InternalNotes: optional(r.InternalNotes),
		CustomerNotes: optional(r.CustomerNotes),
		Season:        optional(r.Season),
	}
	if r.SizeSystem != "" {
		in.SizeID = lookup(s.sizes, "size", key(r.SizeSystem, r.Size))
	} else {
		in.SizeID = lookup(s.sizesByValue, "size", key(r.Size))
	}
	in.ColorPrimaryID = lookup(s.colors, "color", key(r.Color))
	if r.SecondaryColor != "" {
		id := lookup(s.colors, "color", key(r.SecondaryColor))
		in.ColorSecondaryID = &id
	}
	if r.Location != "" {
		id := lookup(s.locations, "location", key(r.Location))
		in.CurrentLocationID = &id
	}
	for _, t := range r.Tags {
		in.TagIDs = append(in.TagIDs, lookup(s.tags, "tag", key(t)))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.Price))
	if err != nil {
		missing = append(missing, fmt.Sprintf("price %q", r.Price))
	}
	in.Price = &price
	if r.OriginalPrice != "" {
		op, err := decimal.NewFromString(strings.TrimSpace(r.OriginalPrice))
		if err != nil {
			missing = append(missing, fmt.Sprintf("original price %q", r.OriginalPrice))
		}
		in.OriginalPrice = &op
	}
	if len(missing) > 0 {
		return in, fmt.Errorf("unknown or invalid: %s", strings.Join(missing, ", "))
	}
	return in, nil
}

// seedItems crea cada fila. Una fila inválida se registra y se salta.
func (s *seeder) seedItems(ctx context.Context, rows []itemRow) (created, skipped int, err error) {
	for _, r := range rows {
		in, rerr := s.resolve(r)
		if rerr == nil {
			_, rerr = s.items.Create(ctx, in)
		}
		if rerr != nil {
			if ctx.Err() != nil {
				return created, skipped, ctx.Err()
			}
			skipped++
			s.log.Warn().Err(rerr).Int("line", r.Line).Str("description", r.Description).Msg("ítem omitido")
			continue
		}
		created++
	}
	return created, skipped, nil
}

// itemCount total de ítems cargados.
func (s *seeder) itemCount(ctx context.Context) (int, error) {
	out, err := s.items.List(ctx, dto.ItemListQuery{PageSize: 1})
	if err != nil {
		return 0, err
	}
	return out.Total, nil
}
