package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.FieldPolicyRepository = (*FieldPolicyRepo)(nil)

// FieldPolicyRepo field_policies (FLAC) sobre PostgreSQL.
type FieldPolicyRepo struct {
	q Querier
}

// NewFieldPolicyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFieldPolicyRepository(q Querier) *FieldPolicyRepo {
	return &FieldPolicyRepo{q: q}
}

// Upsert crea o reemplaza la visibilidad de (empresa, rol, módulo, campo).
func (r *FieldPolicyRepo) Upsert(ctx context.Context, p *entity.FieldPolicy) error {
	query := `
		INSERT INTO field_policies (id, company_id, role_code, module, field, visibility, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, role_code, module, field)
		DO UPDATE SET visibility = EXCLUDED.visibility, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, p.ID, p.CompanyID, p.RoleCode, p.Module, p.Field, p.Visibility, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert field policy: %w", err)
	}
	return nil
}

// ListByCompany devuelve las políticas de la empresa; module vacío devuelve todas.
func (r *FieldPolicyRepo) ListByCompany(ctx context.Context, companyID, module string) ([]entity.FieldPolicy, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, role_code, module, field, visibility, updated_at
		FROM field_policies
		WHERE company_id = $1 AND ($2 = '' OR module = $2)
		ORDER BY module, role_code, field`, companyID, module)
	if err != nil {
		return nil, fmt.Errorf("list field policies: %w", err)
	}
	defer rows.Close()
	var list []entity.FieldPolicy
	for rows.Next() {
		var p entity.FieldPolicy
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.RoleCode, &p.Module, &p.Field, &p.Visibility, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan field policy: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las políticas configuradas.
func (r *FieldPolicyRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM field_policies WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count field policies: %w", err)
	}
	return n, nil
}
