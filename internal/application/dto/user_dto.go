package dto

import "time"

// SignupRequest paso 1 del onboarding: registro del usuario dueño.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AcceptInviteRequest activa a un usuario invitado con su token y una contraseña nueva.
type AcceptInviteRequest struct {
	Token    string `json:"token" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse salida de un usuario (sin password ni token de invitación).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id,omitempty"`
	TeamID    string    `json:"team_id,omitempty"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse token JWT más el usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RoleAssignmentResponse rol activo del usuario.
type RoleAssignmentResponse struct {
	Code      string `json:"code"`
	CompanyID string `json:"company_id,omitempty"`
	Module    string `json:"module,omitempty"`
}

// MeResponse usuario actual con sus roles y empresa.
type MeResponse struct {
	User    UserResponse             `json:"user"`
	Roles   []RoleAssignmentResponse `json:"roles"`
	Company *CompanyResponse         `json:"company,omitempty"`
}

// UserListResponse lista paginada de usuarios de la empresa.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
