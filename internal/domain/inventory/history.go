package inventory

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// MaxChangesInMessage cantidad máxima de cambios enumerados en old_value de una entrada "Updated".
// El resto se omite del mensaje pero se cuenta en notes.
const MaxChangesInMessage = 5

// createdSnippetRunes largo del fragmento de descripción en la entrada "Created".
const createdSnippetRunes = 50

// noneValue representación de un valor opcional ausente.
const noneValue = "None"

// Change diferencia de un campo: "field: old -> new".
type Change struct {
	Field string
	Old   string
	New   string
}

func (c Change) String() string {
	return c.Field + ": " + c.Old + " -> " + c.New
}

// Diff acumula los cambios de un PATCH campo a campo. Solo registra si old != new.
type Diff struct {
	Changes []Change
}

// Add registra el cambio si los valores formateados difieren. Devuelve true si hubo cambio.
func (d *Diff) Add(field, old, new string) bool {
	if old == new {
		return false
	}
	d.Changes = append(d.Changes, Change{Field: field, Old: old, New: new})
	return true
}

// Len cantidad de campos cambiados.
func (d *Diff) Len() int { return len(d.Changes) }

// ── Formato de valores ───────────────────────────────────────────────────────

// FormatDecimal muestra al menos un decimal: 18 -> "18.0", 15.25 -> "15.25".
func FormatDecimal(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}

// FormatOptDecimal como FormatDecimal; nil -> "None".
func FormatOptDecimal(d *decimal.Decimal) string {
	if d == nil {
		return noneValue
	}
	return FormatDecimal(*d)
}

// FormatOptString nil -> "None".
func FormatOptString(s *string) string {
	if s == nil {
		return noneValue
	}
	return *s
}

// FormatID formatea un id.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// FormatOptID nil -> "None".
func FormatOptID(id *int64) string {
	if id == nil {
		return noneValue
	}
	return FormatID(*id)
}

// FormatBool true / false.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// FormatOptTime RFC 3339 en UTC; nil -> "None".
func FormatOptTime(t *time.Time) string {
	if t == nil {
		return noneValue
	}
	return t.UTC().Format(time.RFC3339)
}

// FormatTagSet conjunto de tags ordenado: [1 2 5]. El orden de entrada no importa.
func FormatTagSet(ids []int64) string {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return fmt.Sprint(sorted)
}

// ── Construcción de entradas ─────────────────────────────────────────────────

// CreatedEntry entrada inicial al crear un ítem.
func CreatedEntry(item *entity.Item, now time.Time) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ItemID:     item.ID,
		Action:     entity.HistoryActionCreated,
		ActionDate: now,
		NewValue:   ptr("Item created: " + truncateRunes(item.Description, createdSnippetRunes)),
		Notes:      ptr("Initial creation"),
	}
}

// UpdatedEntry entrada agregada de un PATCH. Devuelve nil si no hubo cambios.
func UpdatedEntry(itemID int64, diff Diff, now time.Time) *entity.HistoryEntry {
	if diff.Len() == 0 {
		return nil
	}
	n := diff.Len()
	if n > MaxChangesInMessage {
		n = MaxChangesInMessage
	}
	parts := make([]string, 0, n)
	for _, c := range diff.Changes[:n] {
		parts = append(parts, c.String())
	}
	return &entity.HistoryEntry{
		ItemID:     itemID,
		Action:     entity.HistoryActionUpdated,
		ActionDate: now,
		OldValue:   ptr(strings.Join(parts, "; ")),
		NewValue:   ptr("Item updated"),
		Notes:      ptr(fmt.Sprintf("%d fields updated", diff.Len())),
	}
}

// StatusChangedEntry entrada de cambio masivo de estado. Se escribe aunque el estado no cambie.
func StatusChangedEntry(itemID, oldStatusID, newStatusID int64, notes *string, now time.Time) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ItemID:     itemID,
		Action:     entity.HistoryActionStatusChanged,
		ActionDate: now,
		OldValue:   ptr(FormatID(oldStatusID)),
		NewValue:   ptr(FormatID(newStatusID)),
		Notes:      notes,
	}
}

// LocationChangedEntry entrada de cambio masivo de ubicación. Se escribe aunque la ubicación no cambie.
func LocationChangedEntry(itemID int64, oldLocationID *int64, newLocationID int64, notes *string, now time.Time) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ItemID:     itemID,
		Action:     entity.HistoryActionLocationChanged,
		ActionDate: now,
		OldValue:   ptr(FormatOptID(oldLocationID)),
		NewValue:   ptr(FormatID(newLocationID)),
		Notes:      notes,
	}
}

// PriceChange campos de un cambio masivo de precio; nil = no enviado.
type PriceChange struct {
	Price     *decimal.Decimal
	OnSale    *bool
	SalePrice *decimal.Decimal
}

// Empty indica que no se envió ningún campo.
func (p PriceChange) Empty() bool {
	return p.Price == nil && p.OnSale == nil && p.SalePrice == nil
}

// ApplyPriceChange aplica los campos enviados al ítem y devuelve la entrada de historial
// (nil si no se envió ningún campo). No compara con el valor anterior.
func ApplyPriceChange(item *entity.Item, change PriceChange, now time.Time) *entity.HistoryEntry {
	var parts []string
	if change.Price != nil {
		parts = append(parts, "price: "+FormatDecimal(item.Price)+" -> "+FormatDecimal(*change.Price))
		item.Price = *change.Price
	}
	if change.OnSale != nil {
		item.OnSale = *change.OnSale
		parts = append(parts, "on_sale: "+FormatBool(*change.OnSale))
	}
	if change.SalePrice != nil {
		v := *change.SalePrice
		item.SalePrice = &v
		parts = append(parts, "sale_price: "+FormatDecimal(v))
	}
	if len(parts) == 0 {
		return nil
	}
	return &entity.HistoryEntry{
		ItemID:     item.ID,
		Action:     entity.HistoryActionPriceChanged,
		ActionDate: now,
		OldValue:   ptr(strings.Join(parts, "; ")),
		NewValue:   ptr("Bulk price update"),
		Notes:      ptr("Bulk operation"),
	}
}

// PhotoEntry entrada al agregar o quitar una foto.
func PhotoEntry(itemID int64, action, filePath string, now time.Time) *entity.HistoryEntry {
	e := &entity.HistoryEntry{ItemID: itemID, Action: action, ActionDate: now}
	if action == entity.HistoryActionPhotoRemoved {
		e.OldValue = ptr(filePath)
	} else {
		e.NewValue = ptr(filePath)
	}
	return e
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func ptr(s string) *string { return &s }
