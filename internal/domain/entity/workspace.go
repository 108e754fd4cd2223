package entity

import "time"

// Niveles de visibilidad FLAC por campo.
const (
	FieldHidden = "hidden"
	FieldView   = "view"
	FieldEdit   = "edit"
)

// FieldPolicy regla FLAC: visibilidad de un campo de un módulo para un rol de la empresa.
type FieldPolicy struct {
	ID         string
	CompanyID  string
	RoleCode   string
	Module     string
	Field      string
	Visibility string
	UpdatedAt  time.Time
}

// Tipos de registro del workspace.
const (
	KindAccount = "account"
	KindLead    = "lead"
	KindProject = "project"
	KindTask    = "task"
	KindTicket  = "ticket"
)

// KindModules asocia cada tipo de registro con el módulo que lo gobierna.
var KindModules = map[string]string{
	KindAccount: ModuleSales,
	KindLead:    ModuleSales,
	KindProject: ModuleProjects,
	KindTask:    ModuleTasks,
	KindTicket:  ModuleSupport,
}

// Niveles de visibilidad de un registro.
const (
	VisibilityOwner   = "owner"
	VisibilityTeam    = "team"
	VisibilityCompany = "company"
	VisibilityShared  = "shared"
	VisibilityPublic  = "public"
)

// WorkspaceRecord registro genérico de un módulo (cuenta, lead, proyecto, tarea, ticket).
type WorkspaceRecord struct {
	ID         string
	CompanyID  string
	Kind       string
	Title      string
	Data       map[string]any
	OwnerID    string
	TeamID     string
	Visibility string
	SharedWith []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
