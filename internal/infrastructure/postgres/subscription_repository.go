package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// activeSubscriptionIndex índice parcial: una sola suscripción activa por empresa.
const activeSubscriptionIndex = "ux_subscriptions_active_company"

const planColumns = `
	id, name, description, price_per_seat_year, features, trial_eligible, trial_days,
	trial_requires_card, recommended, status`

// SubscriptionRepo planes y suscripciones sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// ListPlans devuelve los planes ordenados por precio.
func (r *SubscriptionRepo) ListPlans(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	rows, err := r.q.Query(ctx, `SELECT `+planColumns+` FROM subscription_plans ORDER BY price_per_seat_year`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []entity.SubscriptionPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetPlanByName busca el plan sin distinguir mayúsculas.
func (r *SubscriptionRepo) GetPlanByName(ctx context.Context, name string) (*entity.SubscriptionPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM subscription_plans WHERE lower(name) = lower($1)`, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan %s: %w", name, err)
	}
	return p, nil
}

// GetActiveByCompany devuelve la suscripción activa de la empresa, o nil.
func (r *SubscriptionRepo) GetActiveByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	query := `
		SELECT s.id, s.company_id, s.plan_id, p.name, COALESCE(s.created_by::text, ''), s.license_count,
		       s.billing_type, s.base_price, s.discount_percent, s.discount_amount, s.final_price,
		       s.is_trial, s.trial_ends_at, s.is_active, s.starts_at, s.ends_at, s.created_at, s.updated_at
		FROM subscriptions s
		JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.company_id = $1 AND s.is_active`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.PlanID, &s.PlanName, &s.CreatedBy, &s.LicenseCount,
		&s.BillingType, &s.BasePrice, &s.DiscountPercent, &s.DiscountAmount, &s.FinalPrice,
		&s.IsTrial, &s.TrialEndsAt, &s.IsActive, &s.StartsAt, &s.EndsAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active subscription: %w", err)
	}
	return &s, nil
}

// Create persiste la suscripción. El índice parcial rechaza una segunda suscripción activa.
func (r *SubscriptionRepo) Create(ctx context.Context, s *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, company_id, plan_id, created_by, license_count, billing_type,
		                           base_price, discount_percent, discount_amount, final_price,
		                           is_trial, trial_ends_at, is_active, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.PlanID, nullIfEmpty(s.CreatedBy), s.LicenseCount, s.BillingType,
		s.BasePrice, s.DiscountPercent, s.DiscountAmount, s.FinalPrice,
		s.IsTrial, s.TrialEndsAt, s.IsActive, s.StartsAt, s.EndsAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) && violatedConstraint(err) == activeSubscriptionIndex {
			return fmt.Errorf("%w: la empresa ya tiene una suscripción activa", domain.ErrConflict)
		}
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func scanPlan(row pgx.Row) (*entity.SubscriptionPlan, error) {
	var p entity.SubscriptionPlan
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PricePerSeatYear, &p.Features, &p.TrialEligible,
		&p.TrialDays, &p.TrialRequiresCard, &p.Recommended, &p.Status)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
