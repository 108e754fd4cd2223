package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StepResponse paso del onboarding.
type StepResponse struct {
	Number   int    `json:"number"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Optional bool   `json:"optional"`
}

// OnboardingStatusResponse avance derivado del onboarding.
type OnboardingStatusResponse struct {
	CompletedSteps     []int          `json:"completed_steps"`
	CurrentStep        int            `json:"current_step"`
	NextStep           *StepResponse  `json:"next_step"`
	ProgressPercentage int            `json:"progress_percentage"`
	Completed          bool           `json:"completed"`
	TotalSteps         int            `json:"total_steps"`
	Steps              []StepResponse `json:"steps"`
	CompanyID          string         `json:"company_id,omitempty"`
	LifecycleStatus    string         `json:"lifecycle_status,omitempty"`
}

// PlanResponse plan con información de prueba.
type PlanResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	PricePerSeatYear  int64    `json:"price_per_seat_year"`
	Features          []string `json:"features"`
	TrialEligible     bool     `json:"trial_eligible"`
	TrialDays         int      `json:"trial_days"`
	TrialRequiresCard bool     `json:"trial_requires_card"`
	Recommended       bool     `json:"recommended"`
	Status            string   `json:"status"`
	Available         bool     `json:"available"`
}

// BucketResponse paquete de licencias y su descuento.
type BucketResponse struct {
	Seats           int  `json:"seats"`
	DiscountPercent int  `json:"discount_percent"`
	OpenEnded       bool `json:"open_ended,omitempty"`
}

// PlansResponse paso 3: planes y paquetes.
type PlansResponse struct {
	Plans   []PlanResponse   `json:"plans"`
	Buckets []BucketResponse `json:"buckets"`
}

// LicenseBucketRequest paso 4: cotización (sin persistencia).
type LicenseBucketRequest struct {
	PlanName     string `json:"plan_name" validate:"required,max=50"`
	LicenseCount int    `json:"license_count" validate:"required,min=1,max=1000000"`
}

// QuoteResponse cotización anual.
type QuoteResponse struct {
	PlanName        string          `json:"plan_name"`
	LicenseCount    int             `json:"license_count"`
	BillingType     string          `json:"billing_type"`
	PricePerSeat    int64           `json:"price_per_seat"`
	BasePrice       int64           `json:"base_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  int64           `json:"discount_amount"`
	FinalPrice      int64           `json:"final_price"`
	Savings         int64           `json:"savings"`
	TrialEligible   bool            `json:"trial_eligible"`
	TrialDays       int             `json:"trial_days"`
	DueToday        int64           `json:"due_today"`
}

// PaymentRequest paso 5: activa la suscripción o la prueba.
type PaymentRequest struct {
	PlanName      string `json:"plan_name" validate:"required,max=50"`
	LicenseCount  int    `json:"license_count" validate:"required,min=1,max=1000000"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=trial card invoice"`
}

// SubscriptionResponse suscripción de la empresa.
type SubscriptionResponse struct {
	ID              string          `json:"id"`
	PlanName        string          `json:"plan_name"`
	LicenseCount    int             `json:"license_count"`
	BillingType     string          `json:"billing_type"`
	BasePrice       int64           `json:"base_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  int64           `json:"discount_amount"`
	FinalPrice      int64           `json:"final_price"`
	IsTrial         bool            `json:"is_trial"`
	TrialEndsAt     *time.Time      `json:"trial_ends_at,omitempty"`
	IsActive        bool            `json:"is_active"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	SeatsUsed       int             `json:"seats_used"`
}

// PaymentResponse resultado del paso 5.
type PaymentResponse struct {
	Subscription     SubscriptionResponse `json:"subscription"`
	AlreadyCompleted bool                 `json:"already_completed"`
}

// InviteUserRequest usuario a invitar. Role: SuperAdmin, Admin o User (por defecto User).
type InviteUserRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Role  string `json:"role" validate:"omitempty,oneof=SuperAdmin Admin User"`
}

// AddUsersRequest paso 6.
type AddUsersRequest struct {
	Users []InviteUserRequest `json:"users" validate:"required,min=1,max=100,dive"`
}

// AddUsersResponse usuarios creados en estado pending.
type AddUsersResponse struct {
	Invited          []UserResponse `json:"invited"`
	Skipped          []string       `json:"skipped,omitempty"`
	SeatsUsed        int            `json:"seats_used"`
	SeatLimit        int            `json:"seat_limit"`
	AlreadyCompleted bool           `json:"already_completed"`
}

// SpecialPermissionRequest paso 7.
type SpecialPermissionRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// SpecialPermissionResponse titular vigente de super_plan_access.
type SpecialPermissionResponse struct {
	UserID           string `json:"user_id,omitempty"`
	Permission       string `json:"permission"`
	PreviousHolder   string `json:"previous_holder,omitempty"`
	Revoked          bool   `json:"revoked,omitempty"`
	AlreadyCompleted bool   `json:"already_completed"`
}

// EnableModulesRequest paso 8.
type EnableModulesRequest struct {
	Modules []string `json:"modules" validate:"required,min=1,dive,required,max=50"`
}

// EnableModulesResponse módulos habilitados tras el paso.
type EnableModulesResponse struct {
	Enabled          []string `json:"enabled"`
	AlreadyCompleted bool     `json:"already_completed"`
}

// FieldPolicyRequest regla FLAC.
type FieldPolicyRequest struct {
	RoleCode   string `json:"role_code" validate:"required,max=50"`
	Module     string `json:"module" validate:"required,max=50"`
	Field      string `json:"field" validate:"required,max=100"`
	Visibility string `json:"visibility" validate:"required,oneof=view edit hidden"`
}

// FLACRequest paso 9.
type FLACRequest struct {
	Policies []FieldPolicyRequest `json:"policies" validate:"required,min=1,max=500,dive"`
}

// FLACResponse políticas vigentes tras el paso.
type FLACResponse struct {
	Configured       int  `json:"configured"`
	AlreadyCompleted bool `json:"already_completed"`
}

// DashboardConfig configuración inicial del tablero.
type DashboardConfig struct {
	Plan               string   `json:"plan"`
	HasSuperPlanAccess bool     `json:"has_super_plan_access"`
	Features           []string `json:"features"`
	Modules            []string `json:"modules"`
}

// FinishResponse paso 10.
type FinishResponse struct {
	LifecycleStatus  string          `json:"lifecycle_status"`
	DashboardConfig  DashboardConfig `json:"dashboard_config"`
	AlreadyCompleted bool            `json:"already_completed"`
}
