// Package authz carga los datos RBAC de un usuario y los pasa al evaluador de acceso.
package authz

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

// Service resuelve principals y decisiones de acceso. No guarda caché: cada llamada lee
// una instantánea nueva.
type Service struct {
	users     repository.UserRepository
	roles     repository.RoleRepository
	modules   repository.ModuleRepository
	overrides repository.OverrideRepository
	evaluator *access.Evaluator
	log       *logger.Logger
	now       func() time.Time
}

// NewService construye el servicio de autorización.
func NewService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	modules repository.ModuleRepository,
	overrides repository.OverrideRepository,
	evaluator *access.Evaluator,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		users:     users,
		roles:     roles,
		modules:   modules,
		overrides: overrides,
		evaluator: evaluator,
		log:       log.Component("authz"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Principal resuelve el usuario contra la base. La empresa sale del usuario persistido,
// no del token, para que un token emitido antes del paso 2 siga sirviendo.
func (s *Service) Principal(ctx context.Context, userID string) (access.Principal, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return access.Principal{}, err
	}
	if user == nil {
		return access.Principal{}, domain.ErrUserNotFound
	}
	if user.Status == entity.UserStatusSuspended || user.Status == entity.UserStatusInactive {
		return access.Principal{}, domain.ErrUnauthorized
	}

	assignments, err := s.roles.ListAssignments(ctx, userID)
	if err != nil {
		return access.Principal{}, err
	}
	p := access.Principal{UserID: user.ID, CompanyID: user.CompanyID, TeamID: user.TeamID}
	seen := make(map[string]bool)
	for _, a := range assignments {
		if !a.IsActive {
			continue
		}
		if a.RoleCode == entity.RolePlatformAdmin {
			p.PlatformAdmin = true
		}
		if a.CompanyID == "" || a.CompanyID != user.CompanyID || seen[a.RoleCode] {
			continue
		}
		seen[a.RoleCode] = true
		p.RoleCodes = append(p.RoleCodes, a.RoleCode)
	}
	return p, nil
}

// Check evalúa el acceso y devuelve la decisión completa. Una denegación no es error.
func (s *Service) Check(ctx context.Context, p access.Principal, module, permission string, rec *entity.WorkspaceRecord) (access.Decision, error) {
	snap, err := s.snapshot(ctx, p, module)
	if err != nil {
		return access.Decision{}, err
	}
	req := access.Request{
		UserID:     p.UserID,
		CompanyID:  p.CompanyID,
		Module:     module,
		Permission: permission,
		Record:     rec,
	}
	d, err := s.evaluator.Evaluate(req, snap, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrInheritanceCycle) {
			s.log.Error().Err(err).
				Str("user_id", p.UserID).
				Str("company_id", p.CompanyID).
				Str("module", module).
				Str("permission", permission).
				Msg("herencia de roles inválida")
		}
		return access.Decision{}, err
	}
	return d, nil
}

// Authorize como Check, pero una denegación devuelve *access.DeniedError.
func (s *Service) Authorize(ctx context.Context, p access.Principal, module, permission string, rec *entity.WorkspaceRecord) (access.Decision, error) {
	d, err := s.Check(ctx, p, module, permission, rec)
	if err != nil {
		return d, err
	}
	if !d.Allowed {
		return d, &access.DeniedError{Module: module, Permission: permission, Decision: d}
	}
	return d, nil
}

// HasActiveModule verificación rápida del módulo, usada por el middleware de rutas.
func (s *Service) HasActiveModule(ctx context.Context, companyID, module string) (bool, error) {
	if companyID == "" || module == "" {
		return false, nil
	}
	return s.modules.HasActiveModule(ctx, companyID, module)
}

func (s *Service) snapshot(ctx context.Context, p access.Principal, module string) (access.Snapshot, error) {
	snap := access.Snapshot{TeamID: p.TeamID}
	var err error
	if snap.Assignments, err = s.roles.ListAssignments(ctx, p.UserID); err != nil {
		return snap, err
	}
	if snap.Roles, err = s.roles.ListRoles(ctx); err != nil {
		return snap, err
	}
	if module == "" {
		return snap, nil
	}
	if snap.Grants, err = s.roles.ListGrants(ctx, module); err != nil {
		return snap, err
	}
	if p.CompanyID == "" {
		return snap, nil
	}
	if snap.Module, err = s.modules.GetCompanyModule(ctx, p.CompanyID, module); err != nil {
		return snap, err
	}
	if snap.Overrides, err = s.overrides.ListForUser(ctx, p.UserID, p.CompanyID); err != nil {
		return snap, err
	}
	return snap, nil
}
