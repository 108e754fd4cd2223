package entity

import "time"

// Estados válidos para User. Los usuarios nunca se eliminan físicamente.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema. CompanyID queda vacío hasta completar
// la configuración de empresa del onboarding.
type User struct {
	ID           string
	CompanyID    string
	TeamID       string
	Email        string
	PasswordHash string // bcrypt; vacío para invitados que aún no aceptan
	Name         string
	Role         string // etiqueta visible: super_admin, admin, member
	Status       string
	Preferences  map[string]any
	InviteToken  string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompany informa si el usuario ya está vinculado a una empresa.
func (u *User) HasCompany() bool { return u != nil && u.CompanyID != "" }

// OccupiesSeat informa si el usuario consume una licencia de la suscripción.
func (u *User) OccupiesSeat() bool {
	return u.Status == UserStatusActive || u.Status == UserStatusPending
}
