package usecase

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios dentro de la empresa del principal.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List usuarios de la empresa (activos, pendientes y suspendidos).
func (uc *UserUseCase) List(ctx context.Context, p access.Principal, page dto.PageRequest) (*dto.UserListResponse, error) {
	if p.CompanyID == "" {
		return nil, domain.ErrNoCompany
	}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, p.CompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, p.CompanyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID obtiene un usuario de la misma empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || (user.CompanyID != p.CompanyID && !p.PlatformAdmin) {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}
