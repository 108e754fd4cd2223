// Package rbac contiene el catálogo estático de roles, permisos, módulos y planes que
// se siembra en la base (cmd/seed) y las reglas de mapeo usadas por el onboarding.
package rbac

import (
	"sort"
	"strings"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// RoleDef definición sembrable de un rol. Parent es el código del rol del que hereda.
type RoleDef struct {
	Code     string
	Name     string
	Level    int
	Category string
	Module   string
	Parent   string
}

// Roles catálogo completo. Los roles de módulo forman cadenas de herencia
// (p. ej. sales_manager → sales_rep → sales_user → sales_viewer).
var Roles = []RoleDef{
	{Code: entity.RolePlatformAdmin, Name: "Platform Admin", Level: 100, Category: entity.RoleCategoryPlatform},
	{Code: entity.RolePlatformUser, Name: "Platform User", Level: 50, Category: entity.RoleCategoryPlatform, Parent: entity.RolePlatformSupport},
	{Code: entity.RolePlatformSupport, Name: "Platform Support", Level: 30, Category: entity.RoleCategoryPlatform},

	{Code: entity.RoleSuperAdmin, Name: "Super Admin", Level: 90, Category: entity.RoleCategoryCustomer, Parent: entity.RoleAdmin},
	{Code: entity.RoleAdmin, Name: "Admin", Level: 70, Category: entity.RoleCategoryCustomer, Parent: entity.RoleMember},
	{Code: entity.RoleMember, Name: "Member", Level: 10, Category: entity.RoleCategoryCustomer},

	{Code: "ai_manager", Name: "AI Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleAI, Parent: "ai_user"},
	{Code: "ai_user", Name: "AI User", Level: 40, Category: entity.RoleCategoryModule, Module: entity.ModuleAI, Parent: "ai_viewer"},
	{Code: "ai_viewer", Name: "AI Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleAI},

	{Code: "sales_manager", Name: "Sales Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleSales, Parent: "sales_rep"},
	{Code: "sales_rep", Name: "Sales Rep", Level: 50, Category: entity.RoleCategoryModule, Module: entity.ModuleSales, Parent: "sales_user"},
	{Code: "sales_user", Name: "Sales User", Level: 30, Category: entity.RoleCategoryModule, Module: entity.ModuleSales, Parent: "sales_viewer"},
	{Code: "sales_viewer", Name: "Sales Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleSales},

	{Code: "marketing_manager", Name: "Marketing Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleMarketing, Parent: "marketing_user"},
	{Code: "marketing_user", Name: "Marketing User", Level: 40, Category: entity.RoleCategoryModule, Module: entity.ModuleMarketing, Parent: "marketing_viewer"},
	{Code: "marketing_viewer", Name: "Marketing Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleMarketing},

	{Code: "support_manager", Name: "Support Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleSupport, Parent: "support_agent"},
	{Code: "support_agent", Name: "Support Agent", Level: 50, Category: entity.RoleCategoryModule, Module: entity.ModuleSupport, Parent: "support_user"},
	{Code: "support_user", Name: "Support User", Level: 30, Category: entity.RoleCategoryModule, Module: entity.ModuleSupport, Parent: "support_viewer"},
	{Code: "support_viewer", Name: "Support Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleSupport},

	{Code: "project_manager", Name: "Project Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleProjects, Parent: "project_lead"},
	{Code: "project_lead", Name: "Project Lead", Level: 50, Category: entity.RoleCategoryModule, Module: entity.ModuleProjects, Parent: "project_member"},
	{Code: "project_member", Name: "Project Member", Level: 30, Category: entity.RoleCategoryModule, Module: entity.ModuleProjects, Parent: "project_viewer"},
	{Code: "project_viewer", Name: "Project Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleProjects},

	{Code: "task_manager", Name: "Task Manager", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleTasks, Parent: "task_user"},
	{Code: "task_user", Name: "Task User", Level: 30, Category: entity.RoleCategoryModule, Module: entity.ModuleTasks, Parent: "task_viewer"},
	{Code: "task_viewer", Name: "Task Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleTasks},

	{Code: "dashboard_admin", Name: "Dashboard Admin", Level: 80, Category: entity.RoleCategoryModule, Module: entity.ModuleDashboard, Parent: "dashboard_user"},
	{Code: "dashboard_user", Name: "Dashboard User", Level: 40, Category: entity.RoleCategoryModule, Module: entity.ModuleDashboard, Parent: "dashboard_viewer"},
	{Code: "dashboard_viewer", Name: "Dashboard Viewer", Level: 10, Category: entity.RoleCategoryModule, Module: entity.ModuleDashboard},
}

var (
	crud     = []string{entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermDelete}
	fullCRUD = append(append([]string{}, crud...), entity.PermManage, entity.PermConfigure)
	owner    = append(append([]string{}, fullCRUD...),
		entity.PermAssign, entity.PermShare, entity.PermExport, entity.PermImport,
		entity.PermManageUsers, entity.PermManageRoles, entity.PermViewAnalytics, entity.PermManageAnalytics)
	manager = append(append([]string{}, crud...), entity.PermManage,
		entity.PermAssign, entity.PermShare, entity.PermExport, entity.PermImport,
		entity.PermViewAnalytics, entity.PermManageAnalytics, entity.PermManageUsers)
	rep     = []string{entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermAssign, entity.PermShare, entity.PermExport, entity.PermViewAnalytics}
	contrib = []string{entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermShare}
	viewer  = []string{entity.PermView}
)

// workspaceModules módulos con registros y roles propios.
var workspaceModules = []string{entity.ModuleSales, entity.ModuleMarketing, entity.ModuleSupport, entity.ModuleProjects, entity.ModuleTasks}

// RolePermissions matriz rol → módulo → permisos base.
var RolePermissions = func() map[string]map[string][]string {
	m := map[string]map[string][]string{
		entity.RolePlatformAdmin: {
			entity.ModuleAI:        fullCRUD,
			entity.ModuleDashboard: {entity.PermView, entity.PermManageAnalytics, entity.PermConfigure},
			entity.ModuleCompanies: fullCRUD,
		},
		entity.RoleSuperAdmin: {
			entity.ModuleAI:        append(append([]string{}, fullCRUD...), entity.PermAIChat, entity.PermAIInsights, entity.PermAIConfigure),
			entity.ModuleDashboard: {entity.PermView, entity.PermViewAnalytics, entity.PermManageAnalytics, entity.PermConfigure},
			entity.ModuleCompanies: append(append([]string{}, fullCRUD...), entity.PermManageUsers, entity.PermManageRoles),
		},
		entity.RoleAdmin: {
			entity.ModuleAI:        {entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermAIChat, entity.PermAIInsights},
			entity.ModuleDashboard: {entity.PermView, entity.PermViewAnalytics},
		},
		entity.RoleMember: {
			entity.ModuleAI:        {entity.PermView, entity.PermAIChat},
			entity.ModuleDashboard: viewer,
		},
		"ai_manager": {entity.ModuleAI: {entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermDelete, entity.PermManage, entity.PermAIChat, entity.PermAIInsights, entity.PermAIConfigure, entity.PermManageUsers}},
		"ai_user":    {entity.ModuleAI: {entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermAIChat, entity.PermAIInsights}},
		"ai_viewer":  {entity.ModuleAI: viewer},

		"sales_manager": {entity.ModuleSales: manager},
		"sales_rep":     {entity.ModuleSales: rep},
		"sales_user":    {entity.ModuleSales: contrib},
		"sales_viewer":  {entity.ModuleSales: viewer},

		"marketing_manager": {entity.ModuleMarketing: manager},
		"marketing_user":    {entity.ModuleMarketing: append(append([]string{}, contrib...), entity.PermViewAnalytics)},
		"marketing_viewer":  {entity.ModuleMarketing: viewer},

		"support_manager": {entity.ModuleSupport: manager},
		"support_agent":   {entity.ModuleSupport: rep},
		"support_user":    {entity.ModuleSupport: contrib},
		"support_viewer":  {entity.ModuleSupport: viewer},

		"project_manager": {entity.ModuleProjects: manager},
		"project_lead":    {entity.ModuleProjects: rep},
		"project_member":  {entity.ModuleProjects: contrib},
		"project_viewer":  {entity.ModuleProjects: viewer},

		"task_manager": {entity.ModuleTasks: manager},
		"task_user":    {entity.ModuleTasks: contrib},
		"task_viewer":  {entity.ModuleTasks: viewer},

		"dashboard_admin":  {entity.ModuleDashboard: {entity.PermView, entity.PermViewAnalytics, entity.PermManageAnalytics, entity.PermConfigure}},
		"dashboard_user":   {entity.ModuleDashboard: {entity.PermView, entity.PermViewAnalytics}},
		"dashboard_viewer": {entity.ModuleDashboard: viewer},
	}
	for _, mod := range workspaceModules {
		m[entity.RolePlatformAdmin][mod] = fullCRUD
		m[entity.RoleSuperAdmin][mod] = owner
		m[entity.RoleAdmin][mod] = rep
		m[entity.RoleMember][mod] = viewer
	}
	return m
}()

// GlobalPermissions permisos sin módulo (solo se conceden por override).
var GlobalPermissions = []string{entity.PermSuperPlanAccess, entity.PermBillingAdmin}

// ModulePermissionPairs pares (módulo, permiso) distintos de la matriz, ordenados.
func ModulePermissionPairs() [][2]string {
	seen := make(map[[2]string]bool)
	for _, byModule := range RolePermissions {
		for mod, perms := range byModule {
			for _, p := range perms {
				seen[[2]string{mod, p}] = true
			}
		}
	}
	out := make([][2]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Modules catálogo de módulos habilitables.
var Modules = []entity.ModuleDefinition{
	{Code: entity.ModuleSales, Category: "crm", Name: "Sales", Description: "Cuentas, leads y oportunidades", IsActive: true},
	{Code: entity.ModuleMarketing, Category: "crm", Name: "Marketing", Description: "Campañas y segmentos", IsActive: true},
	{Code: entity.ModuleSupport, Category: "crm", Name: "Support", Description: "Tickets de soporte", IsActive: true},
	{Code: entity.ModuleProjects, Category: "workspace", Name: "Projects", Description: "Proyectos y entregables", IsActive: true},
	{Code: entity.ModuleTasks, Category: "workspace", Name: "Tasks", Description: "Tareas y seguimiento", IsActive: true},
	{Code: entity.ModuleDashboard, Category: "analytics", Name: "Dashboard", Description: "Indicadores de la empresa", IsActive: true},
	{Code: entity.ModuleAI, Category: "ai", Name: "AI", Description: "Recomendaciones e insights", IsActive: true},
	{Code: entity.ModuleCompanies, Category: "admin", Name: "Companies", Description: "Administración de la empresa", IsActive: true},
}

// IsModule informa si code pertenece al catálogo.
func IsModule(code string) bool {
	for _, m := range Modules {
		if m.Code == code {
			return true
		}
	}
	return false
}

// Plans planes sembrados. Los precios son por licencia y año.
var Plans = []entity.SubscriptionPlan{
	{
		Name: "Pro", Description: "Sin IA", PricePerSeatYear: 9999,
		Features:      []string{"Core workspace modules", "Basic features", "Email support"},
		TrialEligible: true, TrialDays: 90, Status: entity.PlanStatusActive,
	},
	{
		Name: "Pro Max", Description: "AI Recommendations + AI Insights", PricePerSeatYear: 14999,
		Features:      []string{"All Pro features", "AI Recommendations", "AI Insights", "Priority support"},
		TrialEligible: true, TrialDays: 90, Recommended: true, Status: entity.PlanStatusActive,
	},
	{
		Name: "Ultra", Description: "Full Conversational AI", PricePerSeatYear: 49999,
		Features:          []string{"All Pro Max features", "Full Conversational AI", "24/7 support", "Advanced features"},
		TrialRequiresCard: true, Status: entity.PlanStatusComingSoon,
	},
}

// NormalizePlanName acepta los alias históricos de los planes.
func NormalizePlanName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pro":
		return "Pro"
	case "pro max", "promax", "maxpro", "max pro":
		return "Pro Max"
	case "ultra":
		return "Ultra"
	}
	return strings.TrimSpace(name)
}

// InviteRole traduce la etiqueta de invitación (SuperAdmin, Admin, User) al código de rol.
func InviteRole(label string) (string, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "")) {
	case "superadmin", "super_admin":
		return entity.RoleSuperAdmin, true
	case "admin":
		return entity.RoleAdmin, true
	case "user", "member", "":
		return entity.RoleMember, true
	}
	return "", false
}

// DashboardFeatures funcionalidades del tablero según plan; super_plan_access las desbloquea todas.
func DashboardFeatures(planName string, superPlanAccess bool) []string {
	switch {
	case superPlanAccess:
		return []string{"all_plan_features", "ai_recommendations", "ai_insights", "conversational_ai", "advanced_analytics"}
	case NormalizePlanName(planName) == "Ultra":
		return []string{"all_plan_features", "ai_recommendations", "ai_insights", "conversational_ai"}
	case NormalizePlanName(planName) == "Pro Max":
		return []string{"core_features", "ai_recommendations", "ai_insights"}
	default:
		return []string{"core_features"}
	}
}
