package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=0,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// Estados del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Envelope sobre común de todas las respuestas JSON.
type Envelope struct {
	StatusCode   int               `json:"statusCode"`
	Status       string            `json:"status"`
	Data         any               `json:"data"`
	ErrorCode    string            `json:"errorCode"`
	ErrorMessage string            `json:"errorMessage"`
	Errors       map[string]string `json:"errors,omitempty"`
}
