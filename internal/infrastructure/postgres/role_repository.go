package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo roles, asignaciones y role_permissions sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// ListRoles devuelve todos los roles indexados por ID. El catálogo es pequeño y sembrado.
func (r *RoleRepo) ListRoles(ctx context.Context) (map[string]entity.Role, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, code, name, level, category, COALESCE(module, ''), COALESCE(parent_id::text, '')
		FROM roles`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	roles := make(map[string]entity.Role)
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Code, &role.Name, &role.Level, &role.Category, &role.Module, &role.ParentID); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles[role.ID] = role
	}
	return roles, rows.Err()
}

// GetByCode obtiene un rol por código.
func (r *RoleRepo) GetByCode(ctx context.Context, code string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `
		SELECT id, code, name, level, category, COALESCE(module, ''), COALESCE(parent_id::text, '')
		FROM roles WHERE code = $1`, code,
	).Scan(&role.ID, &role.Code, &role.Name, &role.Level, &role.Category, &role.Module, &role.ParentID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role %s: %w", code, err)
	}
	return &role, nil
}

// Assign crea la asignación o la reactiva si ya existía con el mismo alcance.
func (r *RoleRepo) Assign(ctx context.Context, ur *entity.UserRole) error {
	query := `
		INSERT INTO user_roles (id, user_id, role_id, company_id, module, assigned_by, is_active, assigned_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7)
		ON CONFLICT (user_id, role_id, company_id, module)
		DO UPDATE SET is_active = true, assigned_by = EXCLUDED.assigned_by, assigned_at = EXCLUDED.assigned_at`
	_, err := r.q.Exec(ctx, query,
		ur.ID, ur.UserID, ur.RoleID, nullIfEmpty(ur.CompanyID), ur.Module, nullIfEmpty(ur.AssignedBy), ur.AssignedAt,
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	ur.IsActive = true
	return nil
}

// ListAssignments devuelve las asignaciones activas del usuario con el código del rol.
func (r *RoleRepo) ListAssignments(ctx context.Context, userID string) ([]entity.UserRole, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ur.id, ur.user_id, ur.role_id, ro.code, COALESCE(ur.company_id::text, ''), ur.module,
		       COALESCE(ur.assigned_by::text, ''), ur.is_active, ur.assigned_at
		FROM user_roles ur
		JOIN roles ro ON ro.id = ur.role_id
		WHERE ur.user_id = $1 AND ur.is_active
		ORDER BY ro.level DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()
	var list []entity.UserRole
	for rows.Next() {
		var ur entity.UserRole
		if err := rows.Scan(&ur.ID, &ur.UserID, &ur.RoleID, &ur.RoleCode, &ur.CompanyID, &ur.Module,
			&ur.AssignedBy, &ur.IsActive, &ur.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		list = append(list, ur)
	}
	return list, rows.Err()
}

// ListGrants devuelve los permisos base por rol para el módulo y los permisos globales.
func (r *RoleRepo) ListGrants(ctx context.Context, module string) (map[string][]entity.Permission, error) {
	rows, err := r.q.Query(ctx, `
		SELECT rp.role_id, p.id, p.code, COALESCE(p.module, ''), p.name
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		WHERE p.module = $1 OR p.module IS NULL`, module)
	if err != nil {
		return nil, fmt.Errorf("list grants %s: %w", module, err)
	}
	defer rows.Close()
	grants := make(map[string][]entity.Permission)
	for rows.Next() {
		var roleID string
		var p entity.Permission
		if err := rows.Scan(&roleID, &p.ID, &p.Code, &p.Module, &p.Name); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		grants[roleID] = append(grants[roleID], p)
	}
	return grants, rows.Err()
}
