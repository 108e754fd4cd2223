package dto

// AccessCheckRequest diagnóstico del evaluador. UserID vacío evalúa al usuario autenticado.
type AccessCheckRequest struct {
	UserID     string `json:"user_id" validate:"omitempty,uuid"`
	Module     string `json:"module" validate:"required,max=50"`
	Permission string `json:"permission" validate:"required,max=50"`
	RecordKind string `json:"record_kind" validate:"omitempty,oneof=account lead project task ticket"`
	RecordID   string `json:"record_id" validate:"omitempty,uuid"`
}

// ModuleResponse módulo del catálogo con su estado en la empresa.
type ModuleResponse struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}
