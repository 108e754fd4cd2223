package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.OverrideRepository = (*OverrideRepo)(nil)

// superPlanIndex índice parcial que garantiza un único titular de super_plan_access.
const superPlanIndex = "ux_permission_overrides_super_plan"

// OverrideRepo permission_overrides sobre PostgreSQL.
type OverrideRepo struct {
	q Querier
}

// NewOverrideRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOverrideRepository(q Querier) *OverrideRepo {
	return &OverrideRepo{q: q}
}

const overrideColumns = `
	id, user_id, company_id, COALESCE(module, ''), permission, effect, reason,
	COALESCE(granted_by::text, ''), is_active, expires_at, created_at`

// ListForUser devuelve los overrides activos del usuario en la empresa. El vencimiento
// lo aplica el evaluador con su propio reloj.
func (r *OverrideRepo) ListForUser(ctx context.Context, userID, companyID string) ([]entity.PermissionOverride, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+overrideColumns+` FROM permission_overrides WHERE user_id = $1 AND company_id = $2 AND is_active`,
		userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()
	var list []entity.PermissionOverride
	for rows.Next() {
		var o entity.PermissionOverride
		if err := rows.Scan(&o.ID, &o.UserID, &o.CompanyID, &o.Module, &o.Permission, &o.Effect, &o.Reason,
			&o.GrantedBy, &o.IsActive, &o.ExpiresAt, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Create persiste el override. Un segundo titular activo de super_plan_access devuelve domain.ErrConflict.
func (r *OverrideRepo) Create(ctx context.Context, o *entity.PermissionOverride) error {
	query := `
		INSERT INTO permission_overrides (id, user_id, company_id, module, permission, effect, reason,
		                                  granted_by, is_active, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.UserID, o.CompanyID, nullIfEmpty(o.Module), o.Permission, o.Effect, o.Reason,
		nullIfEmpty(o.GrantedBy), o.IsActive, o.ExpiresAt, o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) && violatedConstraint(err) == superPlanIndex {
			return fmt.Errorf("%w: la empresa ya tiene un titular de %s", domain.ErrConflict, o.Permission)
		}
		return fmt.Errorf("insert override: %w", err)
	}
	return nil
}

// ActiveHolder devuelve la concesión vigente del permiso en la empresa.
func (r *OverrideRepo) ActiveHolder(ctx context.Context, companyID, permission string) (*entity.PermissionOverride, error) {
	var o entity.PermissionOverride
	err := r.q.QueryRow(ctx, `
		SELECT `+overrideColumns+` FROM permission_overrides
		 WHERE company_id = $1 AND permission = $2 AND effect = 'grant' AND is_active
		   AND (expires_at IS NULL OR expires_at > now())
		 ORDER BY created_at DESC LIMIT 1`, companyID, permission,
	).Scan(&o.ID, &o.UserID, &o.CompanyID, &o.Module, &o.Permission, &o.Effect, &o.Reason,
		&o.GrantedBy, &o.IsActive, &o.ExpiresAt, &o.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active holder: %w", err)
	}
	return &o, nil
}

// Deactivate desactiva las concesiones activas del permiso en la empresa.
func (r *OverrideRepo) Deactivate(ctx context.Context, companyID, permission string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE permission_overrides SET is_active = false
		 WHERE company_id = $1 AND permission = $2 AND effect = 'grant' AND is_active`, companyID, permission)
	if err != nil {
		return 0, fmt.Errorf("deactivate overrides: %w", err)
	}
	return cmd.RowsAffected(), nil
}
