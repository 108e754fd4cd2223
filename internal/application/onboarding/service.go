// Package onboarding orquesta los pasos 2 a 10 del alta de una empresa. El paso 1 es el
// registro (auth.Signup). Cada paso es idempotente: repetirlo devuelve el estado vigente
// con AlreadyCompleted = true y el avance se deriva siempre de las entidades persistidas.
package onboarding

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/flac"
	steps "github.com/jhoicas/workspace-api/internal/domain/onboarding"
	"github.com/jhoicas/workspace-api/internal/domain/pricing"
	"github.com/jhoicas/workspace-api/internal/domain/rbac"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

// Métodos de pago del paso 5.
const (
	PaymentTrial   = "trial"
	PaymentCard    = "card"
	PaymentInvoice = "invoice"
)

// paidPeriod duración de una suscripción anual pagada.
const paidPeriod = 365 * 24 * time.Hour

// Service casos de uso del onboarding.
type Service struct {
	repos     Repos
	tx        TxRunner
	tokens    TokenIssuer
	publisher InvitePublisher
	trialDays int
	log       *logger.Logger
	now       func() time.Time
}

// NewService construye el servicio. repos se usa para lecturas fuera de transacción.
// trialDays aplica cuando el plan no define días de prueba.
func NewService(repos Repos, tx TxRunner, tokens TokenIssuer, publisher InvitePublisher, trialDays int, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repos:     repos,
		tx:        tx,
		tokens:    tokens,
		publisher: publisher,
		trialDays: trialDays,
		log:       log.Component("onboarding"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ─── Estado ──────────────────────────────────────────────────────────────────

// Status deriva el avance del usuario. Sin escrituras, dos llamadas seguidas devuelven lo mismo.
func (s *Service) Status(ctx context.Context, userID string) (*dto.OnboardingStatusResponse, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	ev := steps.Evidence{UserExists: true}
	out := &dto.OnboardingStatusResponse{}
	if user.HasCompany() {
		company, err := s.repos.Companies.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			ev.CompanyLinked = true
			ev.Lifecycle = company.LifecycleStatus
			out.CompanyID = company.ID
			out.LifecycleStatus = company.LifecycleStatus
			if err := s.collectEvidence(ctx, company.ID, &ev); err != nil {
				return nil, err
			}
		}
	}

	p := steps.Derive(ev)
	out.CompletedSteps = p.CompletedSteps
	out.CurrentStep = p.CurrentStep
	out.ProgressPercentage = p.ProgressPercentage
	out.Completed = p.Completed
	out.TotalSteps = steps.TotalSteps
	if p.NextStep != nil {
		next := toStepResponse(*p.NextStep)
		out.NextStep = &next
	}
	out.Steps = make([]dto.StepResponse, 0, len(steps.Steps))
	for _, st := range steps.Steps {
		out.Steps = append(out.Steps, toStepResponse(st))
	}
	return out, nil
}

func (s *Service) collectEvidence(ctx context.Context, companyID string, ev *steps.Evidence) error {
	sub, err := s.repos.Subscriptions.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return err
	}
	ev.ActiveSubscription = sub != nil
	if ev.CompanyUsers, err = s.repos.Users.CountSeats(ctx, companyID); err != nil {
		return err
	}
	holder, err := s.repos.Overrides.ActiveHolder(ctx, companyID, entity.PermSuperPlanAccess)
	if err != nil {
		return err
	}
	ev.SuperPlanHolder = holder != nil
	if ev.EnabledModules, err = s.repos.Modules.CountEnabled(ctx, companyID); err != nil {
		return err
	}
	if ev.FieldPolicies, err = s.repos.Policies.CountByCompany(ctx, companyID); err != nil {
		return err
	}
	return nil
}

// ─── Paso 2 ──────────────────────────────────────────────────────────────────

// SetupCompany crea la empresa, vincula al creador, le asigna super_admin y re-emite el token.
func (s *Service) SetupCompany(ctx context.Context, userID string, in dto.CompanySetupRequest) (*dto.CompanySetupResponse, error) {
	var (
		company  *entity.Company
		user     *entity.User
		existing bool
	)
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		var err error
		user, err = r.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if user.HasCompany() {
			existing = true
			company, err = r.Companies.GetByID(ctx, user.CompanyID)
			if err != nil {
				return err
			}
			if company == nil {
				return domain.ErrCompanyNotFound
			}
			return nil
		}

		now := s.now()
		company = &entity.Company{
			ID:              uuid.New().String(),
			Name:            strings.TrimSpace(in.Name),
			Industry:        strings.TrimSpace(in.Industry),
			Country:         strings.ToUpper(in.Country),
			LifecycleStatus: entity.LifecycleOnboarding,
			Locale:          defaultString(in.Locale, "es"),
			Timezone:        defaultString(in.Timezone, "UTC"),
			CreatedBy:       user.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.Companies.Create(ctx, company); err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		user.CompanyID = company.ID
		user.Role = entity.RoleSuperAdmin
		user.UpdatedAt = now
		if err := r.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("link user: %w", err)
		}
		return s.assignRole(ctx, r, user.ID, company.ID, entity.RoleSuperAdmin, user.ID)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, err
	}
	if !existing {
		s.log.Info().Str("company_id", company.ID).Str("user_id", user.ID).Msg("empresa creada")
	}
	return &dto.CompanySetupResponse{Company: dto.ToCompanyResponse(company), Token: token, AlreadyCompleted: existing}, nil
}

// ─── Pasos 3 y 4 ─────────────────────────────────────────────────────────────

// Plans lista planes y paquetes de licencias.
func (s *Service) Plans(ctx context.Context) (*dto.PlansResponse, error) {
	plans, err := s.repos.Subscriptions.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.PlansResponse{Plans: make([]dto.PlanResponse, 0, len(plans))}
	for i := range plans {
		out.Plans = append(out.Plans, dto.ToPlanResponse(&plans[i]))
	}
	for _, b := range pricing.Buckets() {
		out.Buckets = append(out.Buckets, dto.BucketResponse{
			Seats:           b.Seats,
			DiscountPercent: b.DiscountPercent,
			OpenEnded:       b.Seats == pricing.OpenEndedSeats,
		})
	}
	return out, nil
}

// LicenseBucket cotiza sin persistir nada.
func (s *Service) LicenseBucket(ctx context.Context, in dto.LicenseBucketRequest) (*dto.QuoteResponse, error) {
	plan, err := s.plan(ctx, s.repos, in.PlanName)
	if err != nil {
		return nil, err
	}
	q, err := pricing.Calculate(plan.PricePerSeatYear, in.LicenseCount)
	if err != nil {
		return nil, err
	}
	trial := plan.TrialEligible && plan.Purchasable()
	out := &dto.QuoteResponse{
		PlanName:        plan.Name,
		LicenseCount:    q.Seats,
		BillingType:     entity.BillingYearly,
		PricePerSeat:    q.PricePerSeat,
		BasePrice:       q.BasePrice,
		DiscountPercent: q.DiscountPercent,
		DiscountAmount:  q.DiscountAmount,
		FinalPrice:      q.FinalPrice,
		Savings:         q.Savings,
		TrialEligible:   trial,
		DueToday:        q.FinalPrice,
	}
	if trial {
		out.TrialDays = s.planTrialDays(plan)
		out.DueToday = 0
	}
	return out, nil
}

// ─── Paso 5 ──────────────────────────────────────────────────────────────────

// Payment activa la suscripción (o la prueba). Si ya hay una activa la devuelve sin crear otra.
func (s *Service) Payment(ctx context.Context, userID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	var (
		sub      *entity.Subscription
		seats    int
		existing bool
	)
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		if seats, err = r.Users.CountSeats(ctx, company.ID); err != nil {
			return err
		}
		if sub, err = r.Subscriptions.GetActiveByCompany(ctx, company.ID); err != nil {
			return err
		}
		if sub != nil {
			existing = true
			return nil
		}

		plan, err := s.plan(ctx, r, in.PlanName)
		if err != nil {
			return err
		}
		if !plan.Purchasable() {
			return fmt.Errorf("%w: %s", domain.ErrPlanUnavailable, plan.Name)
		}
		if in.LicenseCount < seats {
			return fmt.Errorf("%w: la empresa ya ocupa %d licencias", domain.ErrInvalidSeatCount, seats)
		}
		q, err := pricing.Calculate(plan.PricePerSeatYear, in.LicenseCount)
		if err != nil {
			return err
		}

		method := in.PaymentMethod
		if method == "" {
			method = PaymentCard
			if plan.TrialEligible {
				method = PaymentTrial
			}
		}
		if method == PaymentTrial && !plan.TrialEligible {
			return fmt.Errorf("%w: el plan %s no ofrece prueba", domain.ErrInvalidInput, plan.Name)
		}

		now := s.now()
		sub = &entity.Subscription{
			ID:              uuid.New().String(),
			CompanyID:       company.ID,
			PlanID:          plan.ID,
			PlanName:        plan.Name,
			CreatedBy:       userID,
			LicenseCount:    q.Seats,
			BillingType:     entity.BillingYearly,
			BasePrice:       q.BasePrice,
			DiscountPercent: q.DiscountPercent,
			DiscountAmount:  q.DiscountAmount,
			FinalPrice:      q.FinalPrice,
			IsActive:        true,
			StartsAt:        now,
			EndsAt:          now.Add(paidPeriod),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if method == PaymentTrial {
			ends := now.AddDate(0, 0, s.planTrialDays(plan))
			sub.IsTrial = true
			sub.FinalPrice = 0
			sub.TrialEndsAt = &ends
			sub.EndsAt = ends
		}
		if err := r.Subscriptions.Create(ctx, sub); err != nil {
			return err
		}

		company.Plan = strings.ToLower(plan.Name)
		company.UpdatedAt = now
		return r.Companies.Update(ctx, company)
	})
	if err != nil {
		return nil, err
	}
	if !existing {
		s.log.Info().Str("company_id", sub.CompanyID).Str("plan", sub.PlanName).
			Int("licenses", sub.LicenseCount).Bool("trial", sub.IsTrial).Msg("suscripción activada")
	}
	return &dto.PaymentResponse{Subscription: dto.ToSubscriptionResponse(sub, seats), AlreadyCompleted: existing}, nil
}

// ─── Paso 6 ──────────────────────────────────────────────────────────────────

// AddUsers invita usuarios en estado pending. Se rechaza el lote completo si supera las
// licencias; los emails ya registrados se omiten. Los eventos se publican tras el Commit.
func (s *Service) AddUsers(ctx context.Context, userID string, in dto.AddUsersRequest) (*dto.AddUsersResponse, error) {
	out := &dto.AddUsersResponse{Invited: []dto.UserResponse{}}
	var events []UserInvitedEvent

	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		sub, err := r.Subscriptions.GetActiveByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		if sub == nil {
			return domain.ErrNoSubscription
		}
		used, err := r.Users.CountSeats(ctx, company.ID)
		if err != nil {
			return err
		}

		type invite struct {
			email, name, role string
		}
		var pending []invite
		seen := make(map[string]bool)
		for _, u := range in.Users {
			email := strings.ToLower(strings.TrimSpace(u.Email))
			role, ok := rbac.InviteRole(u.Role)
			if !ok {
				return fmt.Errorf("%w: rol de invitación desconocido %q", domain.ErrInvalidInput, u.Role)
			}
			if seen[email] {
				continue
			}
			seen[email] = true
			prev, err := r.Users.GetByEmail(ctx, email)
			if err != nil {
				return err
			}
			if prev != nil {
				out.Skipped = append(out.Skipped, email)
				continue
			}
			pending = append(pending, invite{email: email, name: strings.TrimSpace(u.Name), role: role})
		}

		out.SeatLimit = sub.LicenseCount
		if used+len(pending) > sub.LicenseCount {
			return fmt.Errorf("%w: %d ocupadas + %d nuevas > %d contratadas",
				domain.ErrSeatLimitReached, used, len(pending), sub.LicenseCount)
		}

		now := s.now()
		for _, p := range pending {
			u := &entity.User{
				ID:          uuid.New().String(),
				CompanyID:   company.ID,
				Email:       p.email,
				Name:        p.name,
				Role:        p.role,
				Status:      entity.UserStatusPending,
				InviteToken: uuid.New().String(),
				CreatedBy:   userID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := r.Users.Create(ctx, u); err != nil {
				return fmt.Errorf("invite %s: %w", p.email, err)
			}
			if err := s.assignRole(ctx, r, u.ID, company.ID, p.role, userID); err != nil {
				return err
			}
			out.Invited = append(out.Invited, dto.ToUserResponse(u))
			events = append(events, UserInvitedEvent{
				UserID: u.ID, CompanyID: company.ID, Email: u.Email, Name: u.Name, Role: p.role,
				InviteToken: u.InviteToken, InvitedBy: userID, OccurredAt: now,
			})
		}
		out.SeatsUsed = used + len(pending)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.AlreadyCompleted = len(out.Invited) == 0
	if len(events) > 0 && s.publisher != nil {
		if err := s.publisher.PublishInvited(ctx, events); err != nil {
			s.log.Error().Err(err).Int("events", len(events)).Msg("no se pudieron publicar las invitaciones")
		}
	}
	return out, nil
}

// ─── Paso 7 ──────────────────────────────────────────────────────────────────

// GrantSuperPermission asigna super_plan_access a un usuario de la empresa, revocando al
// titular anterior en la misma transacción. Solo un super_admin o el creador pueden hacerlo.
func (s *Service) GrantSuperPermission(ctx context.Context, userID string, in dto.SpecialPermissionRequest) (*dto.SpecialPermissionResponse, error) {
	out := &dto.SpecialPermissionResponse{UserID: in.UserID, Permission: entity.PermSuperPlanAccess}
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		if err := s.requireOwner(ctx, r, userID, company); err != nil {
			return err
		}
		target, err := r.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if target == nil || target.CompanyID != company.ID || !target.OccupiesSeat() {
			return domain.ErrUserNotFound
		}

		holder, err := r.Overrides.ActiveHolder(ctx, company.ID, entity.PermSuperPlanAccess)
		if err != nil {
			return err
		}
		if holder != nil && holder.UserID == target.ID {
			out.AlreadyCompleted = true
			return nil
		}
		if holder != nil {
			out.PreviousHolder = holder.UserID
		}
		if _, err := r.Overrides.Deactivate(ctx, company.ID, entity.PermSuperPlanAccess); err != nil {
			return err
		}
		return r.Overrides.Create(ctx, &entity.PermissionOverride{
			ID:         uuid.New().String(),
			UserID:     target.ID,
			CompanyID:  company.ID,
			Permission: entity.PermSuperPlanAccess,
			Effect:     entity.OverrideGrant,
			Reason:     "onboarding: permiso especial",
			GrantedBy:  userID,
			IsActive:   true,
			CreatedAt:  s.now(),
		})
	})
	if err != nil {
		return nil, err
	}
	if !out.AlreadyCompleted {
		s.log.Info().Str("user_id", in.UserID).Str("previous_holder", out.PreviousHolder).Msg("super_plan_access asignado")
	}
	return out, nil
}

// RevokeSuperPermission retira super_plan_access al titular vigente, si lo hay.
func (s *Service) RevokeSuperPermission(ctx context.Context, userID string) (*dto.SpecialPermissionResponse, error) {
	out := &dto.SpecialPermissionResponse{Permission: entity.PermSuperPlanAccess}
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		if err := s.requireOwner(ctx, r, userID, company); err != nil {
			return err
		}
		holder, err := r.Overrides.ActiveHolder(ctx, company.ID, entity.PermSuperPlanAccess)
		if err != nil {
			return err
		}
		if holder != nil {
			out.PreviousHolder = holder.UserID
		}
		n, err := r.Overrides.Deactivate(ctx, company.ID, entity.PermSuperPlanAccess)
		if err != nil {
			return err
		}
		out.Revoked = n > 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Paso 8 ──────────────────────────────────────────────────────────────────

// EnableModules habilita módulos del catálogo. La habilitación vence con la suscripción.
func (s *Service) EnableModules(ctx context.Context, userID string, in dto.EnableModulesRequest) (*dto.EnableModulesResponse, error) {
	codes := make([]string, 0, len(in.Modules))
	seen := make(map[string]bool)
	for _, raw := range in.Modules {
		code := strings.ToLower(strings.TrimSpace(raw))
		if !rbac.IsModule(code) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModule, raw)
		}
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	out := &dto.EnableModulesResponse{}
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		sub, err := r.Subscriptions.GetActiveByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		if sub == nil {
			return domain.ErrNoSubscription
		}

		now := s.now()
		expires := sub.EndsAt
		changed := false
		for _, code := range codes {
			current, err := r.Modules.GetCompanyModule(ctx, company.ID, code)
			if err != nil {
				return err
			}
			if current.Usable(now) && current.ExpiresAt != nil && current.ExpiresAt.Equal(expires) {
				continue
			}
			changed = true
			if err := r.Modules.Upsert(ctx, &entity.CompanyModule{
				CompanyID:   company.ID,
				ModuleCode:  code,
				Enabled:     true,
				IsActive:    true,
				ActivatedAt: now,
				ExpiresAt:   &expires,
				UpdatedAt:   now,
			}); err != nil {
				return err
			}
		}
		out.AlreadyCompleted = !changed
		out.Enabled, err = enabledModules(ctx, r, company.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Paso 9 ──────────────────────────────────────────────────────────────────

// ConfigureFLAC guarda las políticas de visibilidad por campo (upsert por rol, módulo y campo).
func (s *Service) ConfigureFLAC(ctx context.Context, userID string, in dto.FLACRequest) (*dto.FLACResponse, error) {
	for _, p := range in.Policies {
		if !rbac.IsModule(p.Module) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownModule, p.Module)
		}
		if !flac.ValidVisibility(p.Visibility) {
			return nil, fmt.Errorf("%w: visibilidad %q", domain.ErrInvalidInput, p.Visibility)
		}
	}

	out := &dto.FLACResponse{}
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		current, err := r.Policies.ListByCompany(ctx, company.ID, "")
		if err != nil {
			return err
		}
		have := make(map[string]string, len(current))
		for _, p := range current {
			have[p.RoleCode+"|"+p.Module+"|"+p.Field] = p.Visibility
		}

		now := s.now()
		changed := false
		for _, p := range in.Policies {
			role, err := r.Roles.GetByCode(ctx, p.RoleCode)
			if err != nil {
				return err
			}
			if role == nil {
				return fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, p.RoleCode)
			}
			if have[p.RoleCode+"|"+p.Module+"|"+p.Field] == p.Visibility {
				continue
			}
			changed = true
			if err := r.Policies.Upsert(ctx, &entity.FieldPolicy{
				ID:         uuid.New().String(),
				CompanyID:  company.ID,
				RoleCode:   p.RoleCode,
				Module:     p.Module,
				Field:      p.Field,
				Visibility: p.Visibility,
				UpdatedAt:  now,
			}); err != nil {
				return err
			}
		}
		out.AlreadyCompleted = !changed
		out.Configured, err = r.Policies.CountByCompany(ctx, company.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Paso 10 ─────────────────────────────────────────────────────────────────

// Finish deja la empresa en trial o active según la suscripción y arma la configuración
// inicial del tablero para el usuario que llama.
func (s *Service) Finish(ctx context.Context, userID string) (*dto.FinishResponse, error) {
	out := &dto.FinishResponse{}
	err := s.tx.RunOnboarding(ctx, func(r Repos) error {
		_, company, err := s.lockCompany(ctx, r, userID)
		if err != nil {
			return err
		}
		sub, err := r.Subscriptions.GetActiveByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		if sub == nil {
			return domain.ErrNoSubscription
		}

		now := s.now()
		if company.WorkspaceReady() {
			out.AlreadyCompleted = true
		} else {
			company.LifecycleStatus = entity.LifecycleActive
			if sub.IsTrial {
				company.LifecycleStatus = entity.LifecycleTrial
			}
			company.UpdatedAt = now
			if err := r.Companies.Update(ctx, company); err != nil {
				return err
			}
		}
		out.LifecycleStatus = company.LifecycleStatus

		holder, err := r.Overrides.ActiveHolder(ctx, company.ID, entity.PermSuperPlanAccess)
		if err != nil {
			return err
		}
		super := holder != nil && holder.UserID == userID
		cfg := dto.DashboardConfig{
			Plan:               sub.PlanName,
			HasSuperPlanAccess: super,
			Features:           rbac.DashboardFeatures(sub.PlanName, super),
		}
		if super {
			for _, m := range rbac.Modules {
				cfg.Modules = append(cfg.Modules, m.Code)
			}
		} else if cfg.Modules, err = enabledModules(ctx, r, company.ID, now); err != nil {
			return err
		}
		out.DashboardConfig = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !out.AlreadyCompleted {
		s.log.Info().Str("user_id", userID).Str("lifecycle", out.LifecycleStatus).Msg("onboarding completado")
	}
	return out, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// lockCompany carga al usuario y bloquea la fila de su empresa hasta el fin de la transacción.
func (s *Service) lockCompany(ctx context.Context, r Repos, userID string) (*entity.User, *entity.Company, error) {
	user, err := r.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	if !user.HasCompany() {
		return nil, nil, domain.ErrNoCompany
	}
	company, err := r.Companies.GetForUpdate(ctx, user.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrCompanyNotFound
	}
	return user, company, nil
}

// requireOwner exige super_admin activo en la empresa o ser su creador.
func (s *Service) requireOwner(ctx context.Context, r Repos, userID string, company *entity.Company) error {
	if company.CreatedBy == userID {
		return nil
	}
	assignments, err := r.Roles.ListAssignments(ctx, userID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.IsActive && a.CompanyID == company.ID && a.RoleCode == entity.RoleSuperAdmin {
			return nil
		}
	}
	return fmt.Errorf("%w: solo un super_admin puede gestionar %s", domain.ErrForbidden, entity.PermSuperPlanAccess)
}

func (s *Service) assignRole(ctx context.Context, r Repos, userID, companyID, code, assignedBy string) error {
	role, err := r.Roles.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("rol %s no sembrado: %w", code, domain.ErrNotFound)
	}
	return r.Roles.Assign(ctx, &entity.UserRole{
		ID:         uuid.New().String(),
		UserID:     userID,
		RoleID:     role.ID,
		RoleCode:   role.Code,
		CompanyID:  companyID,
		AssignedBy: assignedBy,
		IsActive:   true,
		AssignedAt: s.now(),
	})
}

func (s *Service) plan(ctx context.Context, r Repos, name string) (*entity.SubscriptionPlan, error) {
	plan, err := r.Subscriptions.GetPlanByName(ctx, rbac.NormalizePlanName(name))
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlanNotFound, name)
	}
	return plan, nil
}

func (s *Service) planTrialDays(plan *entity.SubscriptionPlan) int {
	if plan.TrialDays > 0 {
		return plan.TrialDays
	}
	return s.trialDays
}

func enabledModules(ctx context.Context, r Repos, companyID string, now time.Time) ([]string, error) {
	list, err := r.Modules.ListCompanyModules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for i := range list {
		if list[i].Usable(now) {
			out = append(out, list[i].ModuleCode)
		}
	}
	sort.Strings(out)
	return out, nil
}

func toStepResponse(st steps.Step) dto.StepResponse {
	return dto.StepResponse{Number: st.Number, Code: st.Code, Title: st.Title, Optional: st.Optional}
}

func defaultString(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
