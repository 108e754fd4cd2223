package dto

import "time"

// CompanySetupRequest paso 2 del onboarding.
type CompanySetupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Industry string `json:"industry" validate:"omitempty,max=100"`
	Country  string `json:"country" validate:"omitempty,len=2"`
	Locale   string `json:"locale" validate:"omitempty,max=10"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Industry        string    `json:"industry,omitempty"`
	Country         string    `json:"country,omitempty"`
	Plan            string    `json:"plan,omitempty"`
	LifecycleStatus string    `json:"lifecycle_status"`
	Locale          string    `json:"locale"`
	Timezone        string    `json:"timezone"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CompanySetupResponse empresa creada y token re-emitido con el company_id.
type CompanySetupResponse struct {
	Company          CompanyResponse `json:"company"`
	Token            string          `json:"token,omitempty"`
	AlreadyCompleted bool            `json:"already_completed"`
}
