// Package access evalúa si un usuario puede ejecutar un permiso sobre un módulo de su
// empresa. La evaluación es pura: recibe una instantánea consistente de los datos RBAC
// y no consulta la base ni guarda caché.
//
// Etapas, en orden:
//
//	1. módulo habilitado para la empresa (platform_admin omite todas las etapas)
//	2. rol asignado compatible con el módulo (con herencia por rol padre)
//	3. permiso concedido por los roles, ajustado por overrides (deny gana)
//	4. visibilidad del registro, si se indicó uno
//
// Todas las banderas se calculan siempre; Reason indica la primera etapa que falló.
package access

import (
	"fmt"
	"time"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// Reason resultado de la evaluación expuesto al cliente.
type Reason string

const (
	ReasonGranted          Reason = "GRANTED"
	ReasonPlatformAdmin    Reason = "PLATFORM_ADMIN"
	ReasonNoCompany        Reason = "NO_COMPANY"
	ReasonModuleDisabled   Reason = "MODULE_DISABLED"
	ReasonRoleMissing      Reason = "ROLE_MISSING"
	ReasonPermissionDenied Reason = "PERMISSION_DENIED"
	ReasonVisibilityDenied Reason = "VISIBILITY_DENIED"
)

// DefaultMaxDepth profundidad máxima de la cadena de roles padre.
const DefaultMaxDepth = 10

// Request qué se quiere hacer. Module y Permission son obligatorios.
type Request struct {
	UserID     string
	CompanyID  string
	Module     string
	Permission string
	Record     *entity.WorkspaceRecord
}

// Snapshot datos RBAC del usuario leídos en una sola pasada.
type Snapshot struct {
	TeamID      string
	Module      *entity.CompanyModule // nil = la empresa no tiene el módulo
	Assignments []entity.UserRole
	Roles       map[string]entity.Role         // todos los roles por ID (incluye ancestros)
	Grants      map[string][]entity.Permission // permisos base por RoleID
	Overrides   []entity.PermissionOverride
}

// Decision resultado con diagnóstico por etapa.
type Decision struct {
	Allowed           bool     `json:"allowed"`
	Reason            Reason   `json:"reason"`
	ModuleEnabled     bool     `json:"module_enabled"`
	HasRole           bool     `json:"has_role"`
	HasPermission     bool     `json:"has_permission"`
	VisibilityChecked bool     `json:"visibility_checked"`
	VisibilityAllowed bool     `json:"visibility_allowed"`
	MatchedRoles      []string `json:"matched_roles,omitempty"`
	Permissions       []string `json:"effective_permissions,omitempty"`
}

// Evaluator aplica las reglas de acceso.
type Evaluator struct {
	maxDepth int
}

// NewEvaluator construye el evaluador. maxDepth <= 0 usa DefaultMaxDepth.
func NewEvaluator(maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Evaluator{maxDepth: maxDepth}
}

// Evaluate decide el acceso. Las denegaciones esperadas nunca son error; solo una herencia
// de roles inválida (ciclo o cadena demasiado profunda) devuelve domain.ErrInheritanceCycle.
func (e *Evaluator) Evaluate(req Request, snap Snapshot, now time.Time) (Decision, error) {
	if req.Module == "" || req.Permission == "" {
		return Decision{}, fmt.Errorf("%w: módulo y permiso son obligatorios", domain.ErrInvalidInput)
	}

	var d Decision
	d.ModuleEnabled = snap.Module != nil && snap.Module.CompanyID == req.CompanyID && snap.Module.Usable(now)

	if e.isPlatformAdmin(snap) {
		d.Allowed = true
		d.Reason = ReasonPlatformAdmin
		d.HasRole = true
		d.HasPermission = true
		d.VisibilityChecked = req.Record != nil
		d.VisibilityAllowed = true
		d.MatchedRoles = []string{entity.RolePlatformAdmin}
		return d, nil
	}

	if req.CompanyID == "" {
		d.Reason = ReasonNoCompany
		return d, nil
	}

	chains, err := e.matchRoles(req, snap)
	if err != nil {
		return Decision{}, err
	}
	d.HasRole = len(chains) > 0
	for _, chain := range chains {
		d.MatchedRoles = append(d.MatchedRoles, chain[0].Code)
	}

	effective := EffectivePermissions(chains, snap, req, now)
	d.HasPermission = effective[req.Permission]
	d.Permissions = sortedKeys(effective)

	if req.Record != nil {
		d.VisibilityChecked = true
		d.VisibilityAllowed = CanView(Viewer{
			UserID:      req.UserID,
			CompanyID:   req.CompanyID,
			TeamID:      snap.TeamID,
			CompanyWide: holdsCompanyWideView(chains),
		}, req.Record)
	}

	switch {
	case !d.ModuleEnabled:
		d.Reason = ReasonModuleDisabled
	case !d.HasRole:
		d.Reason = ReasonRoleMissing
	case !d.HasPermission:
		d.Reason = ReasonPermissionDenied
	case d.VisibilityChecked && !d.VisibilityAllowed:
		d.Reason = ReasonVisibilityDenied
	default:
		d.Allowed = true
		d.Reason = ReasonGranted
	}
	return d, nil
}

func (e *Evaluator) isPlatformAdmin(snap Snapshot) bool {
	for _, a := range snap.Assignments {
		if !a.IsActive {
			continue
		}
		if role, ok := snap.Roles[a.RoleID]; ok && role.Code == entity.RolePlatformAdmin {
			return true
		}
	}
	return false
}

// matchRoles devuelve, por cada asignación compatible, la cadena rol → ancestros.
func (e *Evaluator) matchRoles(req Request, snap Snapshot) ([][]entity.Role, error) {
	var chains [][]entity.Role
	for _, a := range snap.Assignments {
		if !a.IsActive || a.CompanyID != req.CompanyID {
			continue
		}
		if a.Module != "" && a.Module != req.Module {
			continue
		}
		chain, err := e.ancestry(a.RoleID, snap.Roles)
		if err != nil {
			return nil, err
		}
		if len(chain) == 0 {
			continue
		}
		for _, r := range chain {
			if r.Module == "" || r.Module == req.Module {
				chains = append(chains, chain)
				break
			}
		}
	}
	return chains, nil
}

// ancestry recorre la cadena de padres con tope de profundidad y conjunto de visitados.
func (e *Evaluator) ancestry(roleID string, roles map[string]entity.Role) ([]entity.Role, error) {
	var chain []entity.Role
	visited := make(map[string]bool)
	for id := roleID; id != ""; {
		role, ok := roles[id]
		if !ok {
			break
		}
		if visited[id] {
			return nil, fmt.Errorf("%w: ciclo detectado en el rol %s", domain.ErrInheritanceCycle, role.Code)
		}
		if len(chain) >= e.maxDepth {
			return nil, fmt.Errorf("%w: el rol %s supera la profundidad máxima %d", domain.ErrInheritanceCycle, roles[roleID].Code, e.maxDepth)
		}
		visited[id] = true
		chain = append(chain, role)
		id = role.ParentID
	}
	return chain, nil
}

// EffectivePermissions une los permisos de todas las cadenas y aplica los overrides
// vigentes del usuario: primero las concesiones, luego las denegaciones.
func EffectivePermissions(chains [][]entity.Role, snap Snapshot, req Request, now time.Time) map[string]bool {
	set := make(map[string]bool)
	for _, chain := range chains {
		for _, role := range chain {
			for _, p := range snap.Grants[role.ID] {
				if p.Module == "" || p.Module == req.Module {
					set[p.Code] = true
				}
			}
		}
	}

	var denied []string
	for _, o := range snap.Overrides {
		if o.UserID != req.UserID || o.CompanyID != req.CompanyID {
			continue
		}
		if o.Module != "" && o.Module != req.Module {
			continue
		}
		if !o.AppliesAt(now) {
			continue
		}
		switch o.Effect {
		case entity.OverrideGrant:
			set[o.Permission] = true
		case entity.OverrideDeny:
			denied = append(denied, o.Permission)
		}
	}
	for _, code := range denied {
		delete(set, code)
	}
	return set
}

func holdsCompanyWideView(chains [][]entity.Role) bool {
	for _, chain := range chains {
		if chain[0].Code == entity.RoleSuperAdmin {
			return true
		}
	}
	return false
}
