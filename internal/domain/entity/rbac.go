package entity

import "time"

// Categorías de rol.
const (
	RoleCategoryPlatform = "platform"
	RoleCategoryCustomer = "customer"
	RoleCategoryModule   = "module"
)

// Códigos de roles de plataforma y de cliente.
const (
	RolePlatformAdmin   = "platform_admin"
	RolePlatformUser    = "platform_user"
	RolePlatformSupport = "platform_support"
	RoleSuperAdmin      = "super_admin"
	RoleAdmin           = "admin"
	RoleMember          = "member"
)

// Códigos de permiso.
const (
	PermView            = "view"
	PermCreate          = "create"
	PermUpdate          = "update"
	PermDelete          = "delete"
	PermManage          = "manage"
	PermAssign          = "assign"
	PermShare           = "share"
	PermExport          = "export"
	PermImport          = "import"
	PermConfigure       = "configure"
	PermManageUsers     = "manage_users"
	PermManageRoles     = "manage_roles"
	PermViewAnalytics   = "view_analytics"
	PermManageAnalytics = "manage_analytics"
	PermAIChat          = "ai_chat"
	PermAIInsights      = "ai_insights"
	PermAIConfigure     = "ai_configure"
	PermSuperPlanAccess = "super_plan_access"
	PermBillingAdmin    = "billing_admin"
)

// Role plantilla de rol. Module vacío = rol de alcance empresa (satisface cualquier módulo).
type Role struct {
	ID       string
	Code     string
	Name     string
	Level    int
	Category string
	Module   string
	ParentID string // arista de herencia; vacío = raíz
}

// UserRole asignación de un rol a un usuario. CompanyID vacío solo para roles de plataforma.
type UserRole struct {
	ID         string
	UserID     string
	RoleID     string
	RoleCode   string
	CompanyID  string
	Module     string
	AssignedBy string
	IsActive   bool
	AssignedAt time.Time
}

// Permission permiso, opcionalmente acotado a un módulo (Module vacío = global).
type Permission struct {
	ID     string
	Code   string
	Module string
	Name   string
}

// Efectos de un PermissionOverride.
const (
	OverrideGrant = "grant"
	OverrideDeny  = "deny"
)

// PermissionOverride concesión o denegación explícita por usuario que prevalece sobre los roles.
// Module vacío aplica a todos los módulos.
type PermissionOverride struct {
	ID         string
	UserID     string
	CompanyID  string
	Module     string
	Permission string
	Effect     string
	Reason     string
	GrantedBy  string
	IsActive   bool
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}

// AppliesAt informa si el override está vigente en now.
func (o PermissionOverride) AppliesAt(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	return o.ExpiresAt == nil || o.ExpiresAt.After(now)
}
