package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)

const companyModuleColumns = `company_id, module_code, enabled, is_active, activated_at, expires_at, updated_at`

// ModuleRepo catálogo de módulos y company_modules sobre PostgreSQL.
type ModuleRepo struct {
	q Querier
}

// NewModuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewModuleRepository(q Querier) *ModuleRepo {
	return &ModuleRepo{q: q}
}

// ListDefinitions devuelve el catálogo ordenado por categoría y código.
func (r *ModuleRepo) ListDefinitions(ctx context.Context) ([]entity.ModuleDefinition, error) {
	rows, err := r.q.Query(ctx, `
		SELECT code, category, name, description, is_active
		FROM module_definitions ORDER BY category, code`)
	if err != nil {
		return nil, fmt.Errorf("list module definitions: %w", err)
	}
	defer rows.Close()
	var list []entity.ModuleDefinition
	for rows.Next() {
		var m entity.ModuleDefinition
		if err := rows.Scan(&m.Code, &m.Category, &m.Name, &m.Description, &m.IsActive); err != nil {
			return nil, fmt.Errorf("scan module definition: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetCompanyModule obtiene la habilitación del módulo, o nil si la empresa nunca lo tuvo.
func (r *ModuleRepo) GetCompanyModule(ctx context.Context, companyID, module string) (*entity.CompanyModule, error) {
	m, err := scanCompanyModule(r.q.QueryRow(ctx,
		`SELECT `+companyModuleColumns+` FROM company_modules WHERE company_id = $1 AND module_code = $2`,
		companyID, module))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company module %s: %w", module, err)
	}
	return m, nil
}

// ListCompanyModules devuelve todas las filas de la empresa.
func (r *ModuleRepo) ListCompanyModules(ctx context.Context, companyID string) ([]entity.CompanyModule, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+companyModuleColumns+` FROM company_modules WHERE company_id = $1 ORDER BY module_code`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list company modules: %w", err)
	}
	defer rows.Close()
	var list []entity.CompanyModule
	for rows.Next() {
		m, err := scanCompanyModule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company module: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

// Upsert habilita o actualiza el módulo de la empresa.
func (r *ModuleRepo) Upsert(ctx context.Context, m *entity.CompanyModule) error {
	query := `
		INSERT INTO company_modules (company_id, module_code, enabled, is_active, activated_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, module_code)
		DO UPDATE SET enabled = EXCLUDED.enabled, is_active = EXCLUDED.is_active,
		              expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, m.CompanyID, m.ModuleCode, m.Enabled, m.IsActive, m.ActivatedAt, m.ExpiresAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert company module %s: %w", m.ModuleCode, err)
	}
	return nil
}

// CountEnabled cuenta los módulos utilizables de la empresa.
func (r *ModuleRepo) CountEnabled(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT count(*) FROM company_modules
		 WHERE company_id = $1 AND enabled AND is_active
		   AND (expires_at IS NULL OR expires_at > now())`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count enabled modules: %w", err)
	}
	return n, nil
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Consulta directamente company_modules para una respuesta O(1) vía índice.
func (r *ModuleRepo) HasActiveModule(ctx context.Context, companyID, module string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM company_modules
			 WHERE company_id  = $1
			   AND module_code = $2
			   AND enabled
			   AND is_active
			   AND (expires_at IS NULL OR expires_at > now())
		)`
	var active bool
	if err := r.q.QueryRow(ctx, query, companyID, module).Scan(&active); err != nil {
		return false, fmt.Errorf("check module %s: %w", module, err)
	}
	return active, nil
}

func scanCompanyModule(row pgx.Row) (*entity.CompanyModule, error) {
	var m entity.CompanyModule
	if err := row.Scan(&m.CompanyID, &m.ModuleCode, &m.Enabled, &m.IsActive, &m.ActivatedAt, &m.ExpiresAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
