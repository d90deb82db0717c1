package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// queryParser acumula los errores de parseo de la query string por parámetro.
type queryParser struct {
	c  *fiber.Ctx
	ve domain.ValidationError
}

func newQueryParser(c *fiber.Ctx) *queryParser {
	return &queryParser{c: c}
}

func (p *queryParser) err() error {
	if p.ve.Empty() {
		return nil
	}
	return &p.ve
}

func (p *queryParser) raw(key string) (string, bool) {
	v := strings.TrimSpace(p.c.Query(key))
	return v, v != ""
}

func (p *queryParser) integer(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.ve.Add(key, "must be an integer")
		return def
	}
	return n
}

// positive como integer, pero un valor explícito menor que 1 es error (no cae en def).
func (p *queryParser) positive(key string, def int) int {
	if _, ok := p.raw(key); !ok {
		return def
	}
	n := p.integer(key, def)
	if n < 1 && p.ve.Fields[key] == "" {
		p.ve.Add(key, "must be greater than or equal to 1")
	}
	return n
}

func (p *queryParser) id(key string) *int64 {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.ve.Add(key, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) str(key string) *string {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	return &v
}

func (p *queryParser) boolean(key string) *bool {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.ve.Add(key, "must be a boolean")
		return nil
	}
	return &b
}

func (p *queryParser) number(key string) *decimal.Decimal {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.ve.Add(key, "must be a number")
		return nil
	}
	return &d
}

// ids acepta el parámetro repetido (?tag_ids=1&tag_ids=2) y listas separadas por coma (?tag_ids=1,2).
func (p *queryParser) ids(key string) []int64 {
	var out []int64
	for _, raw := range p.c.Context().QueryArgs().PeekMulti(key) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				p.ve.Add(key, "must be a list of integers")
				return nil
			}
			out = append(out, n)
		}
	}
	return out
}

// pathID lee un parámetro de ruta numérico.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

func parseItemListQuery(c *fiber.Ctx) (dto.ItemListQuery, error) {
	p := newQueryParser(c)
	q := dto.ItemListQuery{
		DepartmentID:   p.id("department_id"),
		CategoryID:     p.id("category_id"),
		ItemTypeID:     p.id("item_type_id"),
		Brand:          p.str("brand"),
		SizeID:         p.id("size_id"),
		ColorPrimaryID: p.id("color_primary_id"),
		ConditionID:    p.id("condition_id"),
		StatusID:       p.id("status_id"),
		LocationID:     p.id("location_id"),
		MinPrice:       p.number("min_price"),
		MaxPrice:       p.number("max_price"),
		OnSale:         p.boolean("on_sale"),
		Season:         p.str("season"),
		Search:         p.str("search"),
		TagIDs:         p.ids("tag_ids"),
		Page:           p.positive("page", 1),
		PageSize:       p.positive("page_size", 20),
		SortBy:         c.Query("sort_by"),
		SortOrder:      strings.ToLower(c.Query("sort_order", "desc")),
	}
	return q, p.err()
}

func parsePage(c *fiber.Ctx) (dto.PageRequest, error) {
	p := newQueryParser(c)
	page := dto.PageRequest{Skip: p.integer("skip", 0), Limit: p.integer("limit", 100)}
	if err := p.err(); err != nil {
		return page, err
	}
	return page, dto.Validate(page)
}

// parseCatalogFilter lee skip/limit y los filtros que aplican a la tabla.
// active_only vale true por defecto; available_only solo filtra si viene en true.
func parseCatalogFilter(c *fiber.Ctx, parentKey, kindKey string, hasActive, hasAvailable bool) (repository.CatalogFilter, error) {
	page, err := parsePage(c)
	if err != nil {
		return repository.CatalogFilter{}, err
	}
	p := newQueryParser(c)
	f := repository.CatalogFilter{Limit: page.Limit, Offset: page.Skip}
	if hasActive {
		f.ActiveOnly = true
		if v := p.boolean("active_only"); v != nil {
			f.ActiveOnly = *v
		}
	}
	if hasAvailable {
		if v := p.boolean("available_only"); v != nil {
			f.AvailableOnly = *v
		}
	}
	if parentKey != "" {
		f.ParentID = p.id(parentKey)
	}
	if kindKey != "" {
		if v := p.str(kindKey); v != nil {
			f.Kind = *v
		}
	}
	return f, p.err()
}
