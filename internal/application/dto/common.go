package dto

// Tamaños de página permitidos en los listados HTML (parámetro pp).
var PageSizes = []int{5, 10, 20}

// DefaultPageSize tamaño de página cuando pp no viene o no es válido.
const DefaultPageSize = 5

// PageRequest paginación por número de página (page >= 1) y tamaño (pp).
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize aplica tamaño por defecto y página mínima.
func (p PageRequest) Normalize() PageRequest {
	valid := false
	for _, s := range PageSizes {
		if p.PerPage == s {
			valid = true
			break
		}
	}
	if !valid {
		p.PerPage = DefaultPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// Offset devuelve el desplazamiento SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPageResponse calcula el total de páginas (al menos 1).
func NewPageResponse(p PageRequest, total int) PageResponse {
	pages := 1
	if p.PerPage > 0 && total > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return PageResponse{Page: p.Page, PerPage: p.PerPage, Total: total, Pages: pages}
}

// HasPrev indica si existe página anterior.
func (p PageResponse) HasPrev() bool { return p.Page > 1 }

// HasNext indica si existe página siguiente.
func (p PageResponse) HasNext() bool { return p.Page < p.Pages }

// ErrorResponse cuerpo de error HTTP de los endpoints internos.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse sobre de éxito de la API JSON: {status, mensaje, data}. Status repite el código HTTP.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Mensaje string      `json:"mensaje,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError sobre de error de la API JSON: {status, error}. Error puede ser texto o errores por campo.
type APIError struct {
	Status int         `json:"status" example:"400"`
	Error  interface{} `json:"error"`
}
