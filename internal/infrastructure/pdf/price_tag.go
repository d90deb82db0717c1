// Package pdf genera la etiqueta de precio imprimible de un ítem.
//
// Layout de la etiqueta (80 x 120 mm):
//
//	┌──────────────────────────────┐
//	│  TIENDA              #ítem   │
//	│  ──────────────────────────  │
//	│  Marca                       │
//	│  Descripción                 │
//	│  Depto / Categoría / Tipo    │
//	│  Talla | Color | Condición   │
//	│  ──────────────────────────  │
//	│  PRECIO (oferta tachada)     │
//	│  QR                          │
//	└──────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
)

var _ inventory.PriceTagRenderer = (*PriceTagGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSale    = &props.Color{Red: 190, Green: 30, Blue: 45}
)

const (
	tagWidthMM  = 80
	tagHeightMM = 120
)

// PriceTagGenerator implementa inventory.PriceTagRenderer usando Maroto v2.
type PriceTagGenerator struct{}

// NewPriceTagGenerator construye el generador.
func NewPriceTagGenerator() *PriceTagGenerator { return &PriceTagGenerator{} }

// Render genera el PDF y devuelve sus bytes.
func (g *PriceTagGenerator) Render(tag inventory.PriceTag) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(tagWidthMM, tagHeightMM).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(fmt.Sprintf("Etiqueta ítem %d", tag.ItemID), true).
		WithAuthor(tag.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tag))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(descriptionRows(tag)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(priceRow(tag))
	if tag.QRContent != "" {
		m.AddRows(qrRow(tag))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(tag inventory.PriceTag) core.Row {
	return row.New(9).Add(
		col.New(8).Add(text.New(nonEmpty(tag.StoreName, "-"), props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New(fmt.Sprintf("#%d", tag.ItemID), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 2,
		})),
	)
}

func descriptionRows(tag inventory.PriceTag) []core.Row {
	var rows []core.Row
	if tag.Brand != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(tag.Brand, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)))
	}
	rows = append(rows,
		row.New(12).Add(col.New(12).Add(
			text.New(tag.Description, props.Text{Size: 9, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(joinNonEmpty(" / ", tag.Department, tag.Category, tag.ItemType), props.Text{
				Size: 7, Color: colorGray,
			}),
		)),
		row.New(6).Add(
			col.New(4).Add(text.New("Talla: "+nonEmpty(tag.Size, "-"), props.Text{Size: 7, Top: 1})),
			col.New(4).Add(text.New("Color: "+nonEmpty(tag.Color, "-"), props.Text{Size: 7, Top: 1})),
			col.New(4).Add(text.New(nonEmpty(tag.Condition, "-"), props.Text{Size: 7, Top: 1, Align: align.Right})),
		),
	)
	return rows
}

// priceRow: con oferta muestra el precio regular en gris y el de oferta destacado.
func priceRow(tag inventory.PriceTag) core.Row {
	if tag.OnSale && tag.SalePrice != nil {
		return row.New(16).Add(
			col.New(5).Add(
				text.New("Antes", props.Text{Size: 7, Color: colorGray, Top: 2}),
				text.New(money(tag.Price), props.Text{Size: 10, Color: colorGray, Top: 6}),
			),
			col.New(7).Add(
				text.New("OFERTA", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorSale, Align: align.Right, Top: 2}),
				text.New(money(*tag.SalePrice), props.Text{
					Style: fontstyle.Bold, Size: 16, Color: colorSale, Align: align.Right, Top: 6,
				}),
			),
		)
	}
	right := []core.Component{
		text.New(money(tag.Price), props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Align: align.Right, Top: 4,
		}),
	}
	left := col.New(5)
	if tag.OriginalPrice != nil && tag.OriginalPrice.GreaterThan(tag.Price) {
		left.Add(
			text.New("Precio original", props.Text{Size: 6, Color: colorGray, Top: 2}),
			text.New(money(*tag.OriginalPrice), props.Text{Size: 8, Color: colorGray, Top: 6}),
		)
	}
	return row.New(16).Add(left, col.New(7).Add(right...))
}

func qrRow(tag inventory.PriceTag) core.Row {
	return row.New(35).Add(
		col.New(3),
		col.New(6).Add(code.NewQr(tag.QRContent, props.Rect{Percent: 95, Center: true})),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// money formatea con puntos de miles y dos decimales. Ej: 25000.5 → "$25.000,50"
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + formatThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
