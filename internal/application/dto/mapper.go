package dto

import "github.com/jhoicas/workspace-api/internal/domain/entity"

// ToUserResponse convierte la entidad sin exponer hash ni token de invitación.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		TeamID:    u.TeamID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToCompanyResponse convierte la empresa.
func ToCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		Country:         c.Country,
		Plan:            c.Plan,
		LifecycleStatus: c.LifecycleStatus,
		Locale:          c.Locale,
		Timezone:        c.Timezone,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ToSubscriptionResponse convierte la suscripción; seatsUsed lo aporta el llamador.
func ToSubscriptionResponse(s *entity.Subscription, seatsUsed int) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              s.ID,
		PlanName:        s.PlanName,
		LicenseCount:    s.LicenseCount,
		BillingType:     s.BillingType,
		BasePrice:       s.BasePrice,
		DiscountPercent: s.DiscountPercent,
		DiscountAmount:  s.DiscountAmount,
		FinalPrice:      s.FinalPrice,
		IsTrial:         s.IsTrial,
		TrialEndsAt:     s.TrialEndsAt,
		IsActive:        s.IsActive,
		StartsAt:        s.StartsAt,
		EndsAt:          s.EndsAt,
		SeatsUsed:       seatsUsed,
	}
}

// ToPlanResponse convierte un plan del catálogo.
func ToPlanResponse(p *entity.SubscriptionPlan) PlanResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		PricePerSeatYear:  p.PricePerSeatYear,
		Features:          features,
		TrialEligible:     p.TrialEligible,
		TrialDays:         p.TrialDays,
		TrialRequiresCard: p.TrialRequiresCard,
		Recommended:       p.Recommended,
		Status:            p.Status,
		Available:         p.Purchasable(),
	}
}

// ToRecordResponse convierte un registro; data ya debe venir filtrada por FLAC.
func ToRecordResponse(r *entity.WorkspaceRecord, data map[string]any) RecordResponse {
	if data == nil {
		data = map[string]any{}
	}
	shared := r.SharedWith
	if shared == nil {
		shared = []string{}
	}
	return RecordResponse{
		ID:         r.ID,
		Kind:       r.Kind,
		Title:      r.Title,
		Data:       data,
		OwnerID:    r.OwnerID,
		TeamID:     r.TeamID,
		Visibility: r.Visibility,
		SharedWith: shared,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
