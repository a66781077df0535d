package dto

// Response envolvente JSON estándar de la API:
// { success, data?, message?, errors?, pagination? }.
type Response struct {
	Success    bool         `json:"success"`
	Data       interface{}  `json:"data,omitempty"`
	Message    string       `json:"message,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// FieldError violación de esquema a nivel de campo (lista errors del envelope).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination arma los metadatos a partir de página, límite y total de filas.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// PageRequest paginación de entrada (query params page/limit).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica los valores por defecto del sistema (página 1, 10 por página).
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset desplazamiento de filas equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
