package repository

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetForUpdate bloquea la fila de la empresa hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}

// ModuleRepository catálogo de módulos y su habilitación por empresa.
type ModuleRepository interface {
	ListDefinitions(ctx context.Context) ([]entity.ModuleDefinition, error)
	GetCompanyModule(ctx context.Context, companyID, module string) (*entity.CompanyModule, error)
	ListCompanyModules(ctx context.Context, companyID string) ([]entity.CompanyModule, error)
	Upsert(ctx context.Context, m *entity.CompanyModule) error
	CountEnabled(ctx context.Context, companyID string) (int, error)
	HasActiveModule(ctx context.Context, companyID, module string) (bool, error)
}
