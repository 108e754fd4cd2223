package entity

import "time"

// Ciclo de vida comercial de una empresa.
const (
	LifecycleSignup     = "signup"
	LifecycleOnboarding = "onboarding"
	LifecycleTrial      = "trial"
	LifecycleActive     = "active"
	LifecyclePaused     = "paused"
	LifecycleCancelled  = "cancelled"
	LifecycleSuspended  = "suspended"
)

// Company representa una organización/tenant del sistema.
type Company struct {
	ID              string
	Name            string
	Industry        string
	Country         string
	Plan            string // etiqueta del plan contratado (pro, pro max)
	LifecycleStatus string
	Locale          string
	Timezone        string
	AIQuotaUsed     int
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkspaceReady informa si el onboarding terminó (empresa en prueba o activa).
func (c *Company) WorkspaceReady() bool {
	return c.LifecycleStatus == LifecycleTrial || c.LifecycleStatus == LifecycleActive
}

// Módulos SaaS del catálogo (deben coincidir con module_definitions).
const (
	ModuleSales     = "sales"
	ModuleMarketing = "marketing"
	ModuleSupport   = "support"
	ModuleProjects  = "projects"
	ModuleTasks     = "tasks"
	ModuleDashboard = "dashboard"
	ModuleAI        = "ai"
	ModuleCompanies = "companies"
)

// ModuleDefinition entrada del catálogo de módulos habilitables.
type ModuleDefinition struct {
	Code        string
	Category    string
	Name        string
	Description string
	IsActive    bool
}

// CompanyModule representa la habilitación de un módulo en una empresa.
type CompanyModule struct {
	CompanyID   string
	ModuleCode  string
	Enabled     bool
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	UpdatedAt   time.Time
}

// Usable informa si el módulo está habilitado, activo y sin vencer en el instante now.
func (m *CompanyModule) Usable(now time.Time) bool {
	if m == nil || !m.Enabled || !m.IsActive {
		return false
	}
	return m.ExpiresAt == nil || m.ExpiresAt.After(now)
}
