package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

const recordColumns = `
	id, company_id, kind, title, data, owner_id, COALESCE(team_id::text, ''), visibility,
	shared_with::text[], created_at, updated_at`

// RecordRepo workspace_records sobre PostgreSQL.
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

// Create persiste un registro.
func (r *RecordRepo) Create(ctx context.Context, rec *entity.WorkspaceRecord) error {
	query := `
		INSERT INTO workspace_records (id, company_id, kind, title, data, owner_id, team_id, visibility,
		                               shared_with, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::text[]::uuid[], $10, $11)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.CompanyID, rec.Kind, rec.Title, jsonObject(rec.Data), rec.OwnerID, nullIfEmpty(rec.TeamID),
		rec.Visibility, stringSlice(rec.SharedWith), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", rec.Kind, err)
	}
	return nil
}

// GetByID obtiene un registro de la empresa por tipo e ID.
func (r *RecordRepo) GetByID(ctx context.Context, companyID, kind, id string) (*entity.WorkspaceRecord, error) {
	rec, err := scanRecord(r.q.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM workspace_records WHERE company_id = $1 AND kind = $2 AND id = $3`,
		companyID, kind, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	return rec, nil
}

// Update reemplaza título, datos y visibilidad.
func (r *RecordRepo) Update(ctx context.Context, rec *entity.WorkspaceRecord) error {
	query := `
		UPDATE workspace_records
		   SET title = $4, data = $5, team_id = $6, visibility = $7, shared_with = $8::text[]::uuid[], updated_at = $9
		 WHERE company_id = $1 AND kind = $2 AND id = $3`
	cmd, err := r.q.Exec(ctx, query,
		rec.CompanyID, rec.Kind, rec.ID, rec.Title, jsonObject(rec.Data), nullIfEmpty(rec.TeamID),
		rec.Visibility, stringSlice(rec.SharedWith), rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", rec.Kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el registro.
func (r *RecordRepo) Delete(ctx context.Context, companyID, kind, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM workspace_records WHERE company_id = $1 AND kind = $2 AND id = $3`,
		companyID, kind, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListVisible lista los registros que el usuario puede ver. Las condiciones replican
// access.CanView para no traer filas que luego se descartarían.
func (r *RecordRepo) ListVisible(ctx context.Context, f repository.RecordFilter) ([]*entity.WorkspaceRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM workspace_records
		WHERE company_id = $1 AND kind = $2
		  AND ( $3
		     OR owner_id = $4
		     OR visibility IN ('company', 'public')
		     OR (visibility = 'team' AND (team_id IS NULL OR team_id::text = NULLIF($5, '')))
		     OR (visibility = 'shared' AND $4 = ANY(shared_with)) )
		ORDER BY created_at DESC
		LIMIT $6 OFFSET $7`
	rows, err := r.q.Query(ctx, query, f.CompanyID, f.Kind, f.CompanyWide, f.UserID, f.TeamID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", f.Kind, err)
	}
	defer rows.Close()
	var list []*entity.WorkspaceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", f.Kind, err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanRecord(row pgx.Row) (*entity.WorkspaceRecord, error) {
	var rec entity.WorkspaceRecord
	err := row.Scan(&rec.ID, &rec.CompanyID, &rec.Kind, &rec.Title, &rec.Data, &rec.OwnerID, &rec.TeamID,
		&rec.Visibility, &rec.SharedWith, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
