package dto

import "time"

// CreateRecordRequest alta de un registro (cuenta, lead, proyecto, tarea, ticket).
type CreateRecordRequest struct {
	Title      string         `json:"title" validate:"required,min=1,max=300"`
	Data       map[string]any `json:"data"`
	Visibility string         `json:"visibility" validate:"omitempty,oneof=owner team company shared public"`
	TeamID     string         `json:"team_id" validate:"omitempty,uuid"`
	SharedWith []string       `json:"shared_with" validate:"omitempty,max=100,dive,uuid"`
}

// UpdateRecordRequest actualización parcial; los campos de Data se fusionan.
type UpdateRecordRequest struct {
	Title      *string        `json:"title" validate:"omitempty,min=1,max=300"`
	Data       map[string]any `json:"data"`
	Visibility *string        `json:"visibility" validate:"omitempty,oneof=owner team company shared public"`
	SharedWith []string       `json:"shared_with" validate:"omitempty,max=100,dive,uuid"`
}

// RecordResponse registro con los campos ocultos por FLAC ya retirados.
type RecordResponse struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Title      string         `json:"title"`
	Data       map[string]any `json:"data"`
	OwnerID    string         `json:"owner_id"`
	TeamID     string         `json:"team_id,omitempty"`
	Visibility string         `json:"visibility"`
	SharedWith []string       `json:"shared_with"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// RecordListResponse lista paginada.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
