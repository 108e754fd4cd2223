package repository

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByInviteToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	// CountByCompany cuenta todos los usuarios de la empresa, sin importar el estado.
	CountByCompany(ctx context.Context, companyID string) (int, error)
	// CountSeats cuenta los usuarios activos o pendientes de la empresa.
	CountSeats(ctx context.Context, companyID string) (int, error)
}
