package repository

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// RoleRepository roles sembrados, asignaciones y permisos base.
type RoleRepository interface {
	// ListRoles devuelve todos los roles indexados por ID.
	ListRoles(ctx context.Context) (map[string]entity.Role, error)
	GetByCode(ctx context.Context, code string) (*entity.Role, error)
	// Assign crea o reactiva la asignación (user, role, company, module).
	Assign(ctx context.Context, ur *entity.UserRole) error
	// ListAssignments devuelve las asignaciones activas del usuario, con RoleCode resuelto.
	ListAssignments(ctx context.Context, userID string) ([]entity.UserRole, error)
	// ListGrants devuelve los permisos por rol (role_id → permisos) del módulo y los globales.
	ListGrants(ctx context.Context, module string) (map[string][]entity.Permission, error)
}

// OverrideRepository concesiones y denegaciones explícitas por usuario.
type OverrideRepository interface {
	ListForUser(ctx context.Context, userID, companyID string) ([]entity.PermissionOverride, error)
	Create(ctx context.Context, o *entity.PermissionOverride) error
	// ActiveHolder devuelve la concesión activa del permiso en la empresa, o nil.
	ActiveHolder(ctx context.Context, companyID, permission string) (*entity.PermissionOverride, error)
	// Deactivate desactiva las concesiones activas del permiso en la empresa.
	Deactivate(ctx context.Context, companyID, permission string) (int64, error)
}
