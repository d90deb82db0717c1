package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Columnas reconocidas en la cabecera. El orden en el archivo es libre.
const (
	colDepartment     = "department"
	colCategory       = "category"
	colItemType       = "item_type"
	colBrand          = "brand"
	colSizeSystem     = "size_system"
	colSize           = "size"
	colColor          = "color"
	colSecondaryColor = "secondary_color"
	colMaterial       = "material"
	colCondition      = "condition"
	colStatus         = "status"
	colLocation       = "location"
	colPrice          = "price"
	colOriginalPrice  = "original_price"
	colDescription    = "description"
	colInternalNotes  = "internal_notes"
	colCustomerNotes  = "customer_notes"
	colSeason         = "season"
	colTags           = "tags"
)

var requiredColumns = []string{
	colDepartment, colCategory, colItemType, colSize, colColor,
	colCondition, colStatus, colPrice, colDescription,
}

// readItemsCSV lee ítems con cabecera. Los tags van separados por ';'.
// Con latin1 el archivo se decodifica desde ISO-8859-1 (exportaciones de planilla).
func readItemsCSV(r io.Reader, latin1 bool) ([]itemRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv vacío")
		}
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		pos[h] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("faltan columnas: %s", strings.Join(missing, ", "))
	}

	var rows []itemRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		get := func(col string) string {
			i, ok := pos[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if blank(rec) {
			continue
		}
		rows = append(rows, itemRow{
			Line:           line,
			Department:     get(colDepartment),
			Category:       get(colCategory),
			ItemType:       get(colItemType),
			Brand:          get(colBrand),
			SizeSystem:     get(colSizeSystem),
			Size:           get(colSize),
			Color:          get(colColor),
			SecondaryColor: get(colSecondaryColor),
			Material:       get(colMaterial),
			Condition:      get(colCondition),
			Status:         get(colStatus),
			Location:       get(colLocation),
			Price:          get(colPrice),
			OriginalPrice:  get(colOriginalPrice),
			Description:    get(colDescription),
			InternalNotes:  get(colInternalNotes),
			CustomerNotes:  get(colCustomerNotes),
			Season:         get(colSeason),
			Tags:           splitTags(get(colTags)),
		})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ";") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
