package repository

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// FieldPolicyRepository políticas FLAC por empresa.
type FieldPolicyRepository interface {
	Upsert(ctx context.Context, p *entity.FieldPolicy) error
	// ListByCompany filtra por módulo; module vacío devuelve todas.
	ListByCompany(ctx context.Context, companyID, module string) ([]entity.FieldPolicy, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}

// RecordFilter criterio de listado con la visibilidad resuelta en SQL.
type RecordFilter struct {
	CompanyID   string
	Kind        string
	UserID      string
	TeamID      string
	CompanyWide bool // ve todos los registros de la empresa
	Limit       int
	Offset      int
}

// RecordRepository registros genéricos del workspace.
type RecordRepository interface {
	Create(ctx context.Context, rec *entity.WorkspaceRecord) error
	GetByID(ctx context.Context, companyID, kind, id string) (*entity.WorkspaceRecord, error)
	Update(ctx context.Context, rec *entity.WorkspaceRecord) error
	Delete(ctx context.Context, companyID, kind, id string) error
	ListVisible(ctx context.Context, f RecordFilter) ([]*entity.WorkspaceRecord, error)
}
