package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un plan.
const (
	PlanStatusActive     = "active"
	PlanStatusComingSoon = "coming_soon"
)

// BillingYearly único tipo de facturación ofrecido (anual).
const BillingYearly = "yearly"

// SubscriptionPlan plan comercial con precio por licencia y año en unidades enteras.
type SubscriptionPlan struct {
	ID                string
	Name              string
	Description       string
	PricePerSeatYear  int64
	Features          []string
	TrialEligible     bool
	TrialDays         int
	TrialRequiresCard bool
	Recommended       bool
	Status            string
}

// Purchasable informa si el plan puede contratarse hoy.
func (p *SubscriptionPlan) Purchasable() bool { return p.Status == PlanStatusActive }

// Subscription contratación de un plan por una empresa.
type Subscription struct {
	ID              string
	CompanyID       string
	PlanID          string
	PlanName        string
	CreatedBy       string
	LicenseCount    int
	BillingType     string
	BasePrice       int64
	DiscountPercent decimal.Decimal
	DiscountAmount  int64
	FinalPrice      int64 // 0 mientras dure la prueba
	IsTrial         bool
	TrialEndsAt     *time.Time
	IsActive        bool
	StartsAt        time.Time
	EndsAt          time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
