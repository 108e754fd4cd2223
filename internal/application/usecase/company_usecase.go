package usecase

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// CompanyUseCase consulta la empresa del usuario autenticado.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Current devuelve la empresa del principal.
func (uc *CompanyUseCase) Current(ctx context.Context, p access.Principal) (*dto.CompanyResponse, error) {
	if p.CompanyID == "" {
		return nil, domain.ErrNoCompany
	}
	company, err := uc.repo.GetByID(ctx, p.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	out := dto.ToCompanyResponse(company)
	return &out, nil
}
