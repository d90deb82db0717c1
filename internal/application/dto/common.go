package dto

// PageRequest paginación por skip/limit de listados secundarios (catálogo, historial).
type PageRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=1,max=500"`
}

// DefaultPage aplica valores por defecto si Limit es cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit == 0 {
		p.Limit = 100
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula total_pages = ceil(total/pageSize); 0 si no hay resultados.
func NewPageResponse(total, page, pageSize int) PageResponse {
	pages := 0
	if total > 0 && pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	return PageResponse{Total: total, Page: page, PageSize: pageSize, TotalPages: pages}
}

// ErrorResponse cuerpo de error HTTP. Details trae el mensaje por campo en errores de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
