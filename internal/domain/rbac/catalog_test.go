package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/rbac"
)

// La herencia sembrada debe formar cadenas que terminan (sin ciclos ni padres inexistentes).
func TestRoles_HerenciaSinCiclos(t *testing.T) {
	byCode := make(map[string]rbac.RoleDef, len(rbac.Roles))
	for _, r := range rbac.Roles {
		_, dup := byCode[r.Code]
		require.False(t, dup, "rol duplicado %s", r.Code)
		byCode[r.Code] = r
	}
	for _, r := range rbac.Roles {
		seen := map[string]bool{}
		for code := r.Code; code != ""; code = byCode[code].Parent {
			require.False(t, seen[code], "ciclo en %s", r.Code)
			seen[code] = true
			_, ok := byCode[code]
			require.True(t, ok, "padre inexistente %s", code)
		}
	}
}

// Un rol hijo nunca tiene menos permisos que su padre en su módulo.
func TestRolePermissions_HijoContienePadre(t *testing.T) {
	byCode := make(map[string]rbac.RoleDef, len(rbac.Roles))
	for _, r := range rbac.Roles {
		byCode[r.Code] = r
	}
	for _, r := range rbac.Roles {
		if r.Parent == "" || r.Module == "" {
			continue
		}
		child := rbac.RolePermissions[r.Code][r.Module]
		for _, p := range rbac.RolePermissions[r.Parent][r.Module] {
			assert.Contains(t, child, p, "%s debería incluir %s de %s", r.Code, p, r.Parent)
		}
	}
}

func TestModulePermissionPairs_Ordenados(t *testing.T) {
	pairs := rbac.ModulePermissionPairs()
	require.NotEmpty(t, pairs)
	assert.Contains(t, pairs, [2]string{entity.ModuleSales, entity.PermDelete})
	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		assert.True(t, prev[0] < cur[0] || (prev[0] == cur[0] && prev[1] < cur[1]))
	}
}

func TestInviteRole(t *testing.T) {
	cases := map[string]string{"SuperAdmin": entity.RoleSuperAdmin, "Admin": entity.RoleAdmin, "User": entity.RoleMember, "": entity.RoleMember}
	for label, want := range cases {
		got, ok := rbac.InviteRole(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got)
	}
	_, ok := rbac.InviteRole("Owner")
	assert.False(t, ok)
}

func TestNormalizePlanName(t *testing.T) {
	assert.Equal(t, "Pro Max", rbac.NormalizePlanName("MaxPro"))
	assert.Equal(t, "Pro Max", rbac.NormalizePlanName(" pro max "))
	assert.Equal(t, "Pro", rbac.NormalizePlanName("PRO"))
	assert.Equal(t, "Enterprise", rbac.NormalizePlanName("Enterprise"))
}

func TestDashboardFeatures(t *testing.T) {
	assert.Equal(t, []string{"core_features"}, rbac.DashboardFeatures("Pro", false))
	assert.Contains(t, rbac.DashboardFeatures("Pro Max", false), "ai_insights")
	assert.Contains(t, rbac.DashboardFeatures("Pro", true), "advanced_analytics")
}
