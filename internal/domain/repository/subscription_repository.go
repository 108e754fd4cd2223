package repository

import (
	"context"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// SubscriptionRepository planes y suscripciones.
type SubscriptionRepository interface {
	ListPlans(ctx context.Context) ([]entity.SubscriptionPlan, error)
	GetPlanByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error)
	GetActiveByCompany(ctx context.Context, companyID string) (*entity.Subscription, error)
	// Create devuelve domain.ErrConflict si la empresa ya tiene una suscripción activa.
	Create(ctx context.Context, s *entity.Subscription) error
}
