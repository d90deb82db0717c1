package entity

// Entidades de referencia (catálogo). Son tablas pequeñas que cambian poco y clasifican los Item.
// Se serializan directamente en las respuestas HTTP, por eso llevan tags json.

// Department departamento de la tienda (Women's, Men's, Kids...). Raíz de la taxonomía.
type Department struct {
	ID        int64  `json:"department_id"`
	Name      string `json:"department_name"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
}

// Category categoría dentro de un departamento.
type Category struct {
	ID           int64  `json:"category_id"`
	Name         string `json:"category_name"`
	DepartmentID int64  `json:"department_id"`
	SortOrder    int    `json:"sort_order"`
	Active       bool   `json:"active"`
}

// ItemType tipo de prenda dentro de una categoría (segundo nivel de la taxonomía).
type ItemType struct {
	ID         int64  `json:"item_type_id"`
	Name       string `json:"item_type_name"`
	CategoryID int64  `json:"category_id"`
	SortOrder  int    `json:"sort_order"`
	Active     bool   `json:"active"`
}

// Size talla; System agrupa (Letter, US Numeric, Waist, Shoes, Universal).
type Size struct {
	ID        int64   `json:"size_id"`
	Value     string  `json:"size_value"`
	System    string  `json:"size_system"`
	SortOrder int     `json:"sort_order"`
	Notes     *string `json:"notes"`
}

// Color color con familia (Neutrals, Blues...) y código hex opcional.
type Color struct {
	ID        int64   `json:"color_id"`
	Name      string  `json:"color_name"`
	Family    string  `json:"color_family"`
	HexCode   *string `json:"hex_code"`
	SortOrder int     `json:"sort_order"`
}

// Tag etiqueta libre (Era, Style, Feature, Occasion, Pattern). Relación N:M con Item.
type Tag struct {
	ID          int64   `json:"tag_id"`
	Name        string  `json:"tag_name"`
	Category    string  `json:"tag_category"`
	Description *string `json:"description"`
	Active      bool    `json:"active"`
}

// Condition estado físico de la prenda (Excellent, Good, Fair, Poor).
type Condition struct {
	ID          int64   `json:"condition_id"`
	Name        string  `json:"condition_name"`
	Description *string `json:"description"`
	SortOrder   int     `json:"sort_order"`
}

// Status estado comercial del ítem. No hay máquina de estados: cualquier estado puede pasar a cualquier otro.
type Status struct {
	ID                 int64   `json:"status_id"`
	Name               string  `json:"status_name"`
	Description        *string `json:"description"`
	IsAvailableForSale bool    `json:"is_available_for_sale"`
	SortOrder          int     `json:"sort_order"`
}

// Location ubicación física (Sales Floor, Storage, Processing, Archive).
type Location struct {
	ID          int64   `json:"location_id"`
	Name        string  `json:"location_name"`
	Type        string  `json:"location_type"`
	Description *string `json:"description"`
	Active      bool    `json:"active"`
}
