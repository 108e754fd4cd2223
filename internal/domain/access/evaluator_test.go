package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	userID    = "u-1"
	companyID = "c-1"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// roles: cadena sales_manager → sales_rep → sales_user → sales_viewer,
// más los roles de empresa y platform_admin.
func baseRoles() map[string]entity.Role {
	return map[string]entity.Role{
		"r-viewer":   {ID: "r-viewer", Code: "sales_viewer", Module: entity.ModuleSales},
		"r-user":     {ID: "r-user", Code: "sales_user", Module: entity.ModuleSales, ParentID: "r-viewer"},
		"r-rep":      {ID: "r-rep", Code: "sales_rep", Module: entity.ModuleSales, ParentID: "r-user"},
		"r-manager":  {ID: "r-manager", Code: "sales_manager", Module: entity.ModuleSales, ParentID: "r-rep"},
		"r-proj":     {ID: "r-proj", Code: "project_member", Module: entity.ModuleProjects},
		"r-super":    {ID: "r-super", Code: entity.RoleSuperAdmin},
		"r-member":   {ID: "r-member", Code: entity.RoleMember},
		"r-platform": {ID: "r-platform", Code: entity.RolePlatformAdmin},
	}
}

func baseGrants() map[string][]entity.Permission {
	sales := func(codes ...string) []entity.Permission {
		out := make([]entity.Permission, 0, len(codes))
		for _, c := range codes {
			out = append(out, entity.Permission{Code: c, Module: entity.ModuleSales})
		}
		return out
	}
	return map[string][]entity.Permission{
		"r-viewer":  sales(entity.PermView),
		"r-user":    sales(entity.PermCreate, entity.PermUpdate),
		"r-rep":     sales(entity.PermAssign),
		"r-manager": sales(entity.PermDelete),
		"r-proj":    {{Code: entity.PermView, Module: entity.ModuleProjects}},
		"r-super": append(sales(entity.PermView, entity.PermCreate, entity.PermUpdate, entity.PermDelete),
			entity.Permission{Code: entity.PermView, Module: entity.ModuleProjects}),
		"r-member": sales(entity.PermView),
	}
}

func enabledModule(code string) *entity.CompanyModule {
	return &entity.CompanyModule{CompanyID: companyID, ModuleCode: code, Enabled: true, IsActive: true}
}

func assign(roleID string) entity.UserRole {
	return entity.UserRole{UserID: userID, RoleID: roleID, CompanyID: companyID, IsActive: true}
}

func snapshot(assignments ...entity.UserRole) access.Snapshot {
	return access.Snapshot{
		Module:      enabledModule(entity.ModuleSales),
		Assignments: assignments,
		Roles:       baseRoles(),
		Grants:      baseGrants(),
	}
}

func request(permission string) access.Request {
	return access.Request{UserID: userID, CompanyID: companyID, Module: entity.ModuleSales, Permission: permission}
}

func evaluate(t *testing.T, req access.Request, snap access.Snapshot) access.Decision {
	t.Helper()
	d, err := access.NewEvaluator(0).Evaluate(req, snap, now)
	require.NoError(t, err)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 1: módulo habilitado
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_ModuloDeshabilitado_IgnoraRoles(t *testing.T) {
	cases := map[string]*entity.CompanyModule{
		"sin fila":      nil,
		"enabled false": {CompanyID: companyID, ModuleCode: entity.ModuleSales, Enabled: false, IsActive: true},
		"inactivo":      {CompanyID: companyID, ModuleCode: entity.ModuleSales, Enabled: true, IsActive: false},
		"vencido": func() *entity.CompanyModule {
			exp := now.Add(-time.Hour)
			return &entity.CompanyModule{CompanyID: companyID, ModuleCode: entity.ModuleSales, Enabled: true, IsActive: true, ExpiresAt: &exp}
		}(),
		"otra empresa": {CompanyID: "c-2", ModuleCode: entity.ModuleSales, Enabled: true, IsActive: true},
	}
	for name, mod := range cases {
		t.Run(name, func(t *testing.T) {
			snap := snapshot(assign("r-super"), assign("r-manager"))
			snap.Module = mod
			d := evaluate(t, request(entity.PermView), snap)

			assert.False(t, d.Allowed)
			assert.Equal(t, access.ReasonModuleDisabled, d.Reason)
			assert.False(t, d.ModuleEnabled)
			// las demás etapas se siguen reportando
			assert.True(t, d.HasRole)
			assert.True(t, d.HasPermission)
		})
	}
}

func TestEvaluate_PlatformAdmin_OmiteTodasLasEtapas(t *testing.T) {
	snap := snapshot(entity.UserRole{UserID: userID, RoleID: "r-platform", IsActive: true})
	snap.Module = nil

	d := evaluate(t, request(entity.PermDelete), snap)

	assert.True(t, d.Allowed)
	assert.Equal(t, access.ReasonPlatformAdmin, d.Reason)
	assert.False(t, d.ModuleEnabled, "el diagnóstico refleja el estado real del módulo")
}

func TestEvaluate_SinEmpresa(t *testing.T) {
	req := request(entity.PermView)
	req.CompanyID = ""
	d := evaluate(t, req, snapshot())

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonNoCompany, d.Reason)
}

func TestEvaluate_ModuloYPermisoObligatorios(t *testing.T) {
	_, err := access.NewEvaluator(0).Evaluate(access.Request{UserID: userID, CompanyID: companyID}, snapshot(), now)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 2: roles
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_SinRol_RoleMissing(t *testing.T) {
	d := evaluate(t, request(entity.PermView), snapshot())

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonRoleMissing, d.Reason)
	assert.True(t, d.ModuleEnabled)
	assert.False(t, d.HasRole)
}

func TestEvaluate_RolDeOtroModulo_NoSatisface(t *testing.T) {
	d := evaluate(t, request(entity.PermView), snapshot(assign("r-proj")))

	assert.Equal(t, access.ReasonRoleMissing, d.Reason)
}

func TestEvaluate_AsignacionAcotadaAOtroModulo_NoSatisface(t *testing.T) {
	a := assign("r-super")
	a.Module = entity.ModuleProjects
	d := evaluate(t, request(entity.PermView), snapshot(a))

	assert.Equal(t, access.ReasonRoleMissing, d.Reason)
}

func TestEvaluate_AsignacionInactivaOEnOtraEmpresa_SeIgnora(t *testing.T) {
	inactive := assign("r-manager")
	inactive.IsActive = false
	other := assign("r-manager")
	other.CompanyID = "c-2"

	d := evaluate(t, request(entity.PermView), snapshot(inactive, other))

	assert.Equal(t, access.ReasonRoleMissing, d.Reason)
}

func TestEvaluate_RolDeEmpresa_SatisfaceCualquierModulo(t *testing.T) {
	d := evaluate(t, request(entity.PermDelete), snapshot(assign("r-super")))

	assert.True(t, d.Allowed)
	assert.Equal(t, access.ReasonGranted, d.Reason)
	assert.Equal(t, []string{entity.RoleSuperAdmin}, d.MatchedRoles)
}

func TestEvaluate_RolDeEmpresaSinConcesionEnModulo_PermissionDenied(t *testing.T) {
	snap := snapshot(assign("r-member"))
	snap.Module = enabledModule(entity.ModuleProjects)
	req := request(entity.PermView)
	req.Module = entity.ModuleProjects

	d := evaluate(t, req, snap)

	assert.True(t, d.HasRole, "member satisface la etapa de rol en cualquier módulo")
	assert.False(t, d.HasPermission)
	assert.Equal(t, access.ReasonPermissionDenied, d.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 3: permisos, herencia y overrides
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_PermisoHeredadoDeAncestros(t *testing.T) {
	snap := snapshot(assign("r-manager"))
	for _, perm := range []string{entity.PermView, entity.PermCreate, entity.PermAssign, entity.PermDelete} {
		d := evaluate(t, request(perm), snap)
		assert.True(t, d.Allowed, "sales_manager hereda %s", perm)
	}
}

func TestEvaluate_HerenciaNoBaja_AHijos(t *testing.T) {
	d := evaluate(t, request(entity.PermDelete), snapshot(assign("r-user")))

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonPermissionDenied, d.Reason)
	assert.True(t, d.HasRole)
}

func TestEvaluate_VariosRoles_UnionDePermisos(t *testing.T) {
	d := evaluate(t, request(entity.PermCreate), snapshot(assign("r-member"), assign("r-user")))

	assert.True(t, d.Allowed)
	assert.ElementsMatch(t, []string{entity.RoleMember, "sales_user"}, d.MatchedRoles)
}

func TestEvaluate_OverrideDeny_SuprimeConcesionDeRol(t *testing.T) {
	snap := snapshot(assign("r-manager"))
	snap.Overrides = []entity.PermissionOverride{{
		UserID: userID, CompanyID: companyID, Module: entity.ModuleSales,
		Permission: entity.PermDelete, Effect: entity.OverrideDeny, IsActive: true,
	}}

	d := evaluate(t, request(entity.PermDelete), snap)

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonPermissionDenied, d.Reason)
	assert.True(t, d.HasRole)
	assert.False(t, d.HasPermission)
}

func TestEvaluate_OverrideDenyGlobal_GanaSobreGrant(t *testing.T) {
	snap := snapshot(assign("r-viewer"))
	snap.Overrides = []entity.PermissionOverride{
		{UserID: userID, CompanyID: companyID, Module: entity.ModuleSales, Permission: entity.PermExport, Effect: entity.OverrideGrant, IsActive: true},
		{UserID: userID, CompanyID: companyID, Permission: entity.PermExport, Effect: entity.OverrideDeny, IsActive: true},
	}

	d := evaluate(t, request(entity.PermExport), snap)

	assert.False(t, d.HasPermission)
}

func TestEvaluate_OverrideGrant_AgregaPermiso(t *testing.T) {
	snap := snapshot(assign("r-viewer"))
	snap.Overrides = []entity.PermissionOverride{{
		UserID: userID, CompanyID: companyID, Module: entity.ModuleSales,
		Permission: entity.PermExport, Effect: entity.OverrideGrant, IsActive: true,
	}}

	d := evaluate(t, request(entity.PermExport), snap)

	assert.True(t, d.Allowed)
	assert.Contains(t, d.Permissions, entity.PermExport)
}

func TestEvaluate_OverrideVencidoOInactivo_NoAplica(t *testing.T) {
	expired := now.Add(-time.Minute)
	snap := snapshot(assign("r-manager"))
	snap.Overrides = []entity.PermissionOverride{
		{UserID: userID, CompanyID: companyID, Permission: entity.PermDelete, Effect: entity.OverrideDeny, IsActive: true, ExpiresAt: &expired},
		{UserID: userID, CompanyID: companyID, Permission: entity.PermDelete, Effect: entity.OverrideDeny, IsActive: false},
		{UserID: "otro", CompanyID: companyID, Permission: entity.PermDelete, Effect: entity.OverrideDeny, IsActive: true},
		{UserID: userID, CompanyID: companyID, Module: entity.ModuleProjects, Permission: entity.PermDelete, Effect: entity.OverrideDeny, IsActive: true},
	}

	d := evaluate(t, request(entity.PermDelete), snap)

	assert.True(t, d.Allowed)
}

func TestEvaluate_CicloDeHerencia_EsErrorDeConfiguracion(t *testing.T) {
	snap := snapshot(assign("r-a"))
	snap.Roles["r-a"] = entity.Role{ID: "r-a", Code: "a", Module: entity.ModuleSales, ParentID: "r-b"}
	snap.Roles["r-b"] = entity.Role{ID: "r-b", Code: "b", Module: entity.ModuleSales, ParentID: "r-a"}

	_, err := access.NewEvaluator(0).Evaluate(request(entity.PermView), snap, now)

	require.ErrorIs(t, err, domain.ErrInheritanceCycle)
}

func TestEvaluate_CadenaMasProfundaQueElLimite_EsError(t *testing.T) {
	// sales_manager tiene 4 niveles; con tope 3 debe fallar
	_, err := access.NewEvaluator(3).Evaluate(request(entity.PermView), snapshot(assign("r-manager")), now)
	require.ErrorIs(t, err, domain.ErrInheritanceCycle)

	_, err = access.NewEvaluator(4).Evaluate(request(entity.PermView), snapshot(assign("r-manager")), now)
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Etapa 4: visibilidad del registro
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_RegistroPrivadoDeOtro_VisibilityDenied(t *testing.T) {
	req := request(entity.PermView)
	req.Record = &entity.WorkspaceRecord{CompanyID: companyID, OwnerID: "u-2", Visibility: entity.VisibilityOwner}

	d := evaluate(t, req, snapshot(assign("r-manager")))

	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonVisibilityDenied, d.Reason)
	assert.True(t, d.VisibilityChecked)
	assert.False(t, d.VisibilityAllowed)
	assert.True(t, d.HasPermission)
}

func TestEvaluate_SuperAdminVeRegistrosPrivados(t *testing.T) {
	req := request(entity.PermView)
	req.Record = &entity.WorkspaceRecord{CompanyID: companyID, OwnerID: "u-2", Visibility: entity.VisibilityOwner}

	d := evaluate(t, req, snapshot(assign("r-super")))

	assert.True(t, d.Allowed)
}

func TestEvaluate_PrimeraEtapaFallidaDefineReason(t *testing.T) {
	snap := snapshot()
	snap.Module = nil
	req := request(entity.PermView)
	req.Record = &entity.WorkspaceRecord{CompanyID: companyID, OwnerID: "u-2", Visibility: entity.VisibilityOwner}

	d := evaluate(t, req, snap)

	assert.Equal(t, access.ReasonModuleDisabled, d.Reason)
	assert.False(t, d.HasRole)
	assert.False(t, d.HasPermission)
	assert.True(t, d.VisibilityChecked)
	assert.False(t, d.VisibilityAllowed)
}
