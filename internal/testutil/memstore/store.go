// Package memstore implementa los puertos de repositorio en memoria para los tests de
// casos de uso y handlers. Se siembra con el mismo catálogo que cmd/seed y replica las
// restricciones únicas de la base (email, suscripción activa, titular de super_plan_access).
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/rbac"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

type state struct {
	users          map[string]entity.User
	companies      map[string]entity.Company
	companyModules map[string]entity.CompanyModule
	assignments    []entity.UserRole
	overrides      []entity.PermissionOverride
	subscriptions  []entity.Subscription
	policies       map[string]entity.FieldPolicy
	records        map[string]entity.WorkspaceRecord
}

func (s state) clone() state {
	c := state{
		users:          make(map[string]entity.User, len(s.users)),
		companies:      make(map[string]entity.Company, len(s.companies)),
		companyModules: make(map[string]entity.CompanyModule, len(s.companyModules)),
		assignments:    append([]entity.UserRole(nil), s.assignments...),
		overrides:      append([]entity.PermissionOverride(nil), s.overrides...),
		subscriptions:  append([]entity.Subscription(nil), s.subscriptions...),
		policies:       make(map[string]entity.FieldPolicy, len(s.policies)),
		records:        make(map[string]entity.WorkspaceRecord, len(s.records)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.companyModules {
		c.companyModules[k] = v
	}
	for k, v := range s.policies {
		c.policies[k] = v
	}
	for k, v := range s.records {
		c.records[k] = v
	}
	return c
}

// Store base de datos en memoria.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	st   state

	modules []entity.ModuleDefinition
	roles   map[string]entity.Role
	grants  map[string][]entity.Permission
	plans   []entity.SubscriptionPlan
}

// New crea un store sembrado con módulos, roles, permisos y planes del catálogo.
func New() *Store {
	s := &Store{
		st: state{
			users:          map[string]entity.User{},
			companies:      map[string]entity.Company{},
			companyModules: map[string]entity.CompanyModule{},
			policies:       map[string]entity.FieldPolicy{},
			records:        map[string]entity.WorkspaceRecord{},
		},
		modules: append([]entity.ModuleDefinition(nil), rbac.Modules...),
		roles:   map[string]entity.Role{},
		grants:  map[string][]entity.Permission{},
	}
	for _, r := range rbac.Roles {
		role := entity.Role{ID: RoleID(r.Code), Code: r.Code, Name: r.Name, Level: r.Level, Category: r.Category, Module: r.Module}
		if r.Parent != "" {
			role.ParentID = RoleID(r.Parent)
		}
		s.roles[role.ID] = role
	}
	for code, byModule := range rbac.RolePermissions {
		for mod, perms := range byModule {
			for _, p := range perms {
				s.grants[RoleID(code)] = append(s.grants[RoleID(code)], entity.Permission{ID: "perm-" + mod + "-" + p, Code: p, Module: mod, Name: p})
			}
		}
	}
	for i, p := range rbac.Plans {
		p.ID = fmt.Sprintf("plan-%d", i+1)
		s.plans = append(s.plans, p)
	}
	return s
}

// RoleID ID sembrado del rol.
func RoleID(code string) string { return "role-" + code }

// ─── helpers de fixture ──────────────────────────────────────────────────────

// PutUser inserta o reemplaza un usuario.
func (s *Store) PutUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

// PutCompany inserta o reemplaza una empresa.
func (s *Store) PutCompany(c entity.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.companies[c.ID] = c
}

// Grant asigna un rol al usuario. companyID vacío para roles de plataforma.
func (s *Store) Grant(userID, companyID, roleCode, module string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.assignments = append(s.st.assignments, entity.UserRole{
		ID: fmt.Sprintf("ur-%d", len(s.st.assignments)+1), UserID: userID, RoleID: RoleID(roleCode), RoleCode: roleCode,
		CompanyID: companyID, Module: module, IsActive: true, AssignedAt: time.Now(),
	})
}

// Enable habilita un módulo para la empresa.
func (s *Store) Enable(companyID, module string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.st.companyModules[companyID+"|"+module] = entity.CompanyModule{
		CompanyID: companyID, ModuleCode: module, Enabled: true, IsActive: true, ActivatedAt: now, UpdatedAt: now,
	}
}

// PutOverride agrega un override.
func (s *Store) PutOverride(o entity.PermissionOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.overrides = append(s.st.overrides, o)
}

// SetParent cambia el padre de un rol (para provocar ciclos en tests).
func (s *Store) SetParent(roleCode, parentCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.roles[RoleID(roleCode)]
	r.ParentID = RoleID(parentCode)
	s.roles[r.ID] = r
}

// Subscriptions devuelve todas las suscripciones (activas e inactivas).
func (s *Store) Subscriptions() []entity.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Subscription(nil), s.st.subscriptions...)
}

// ActiveOverrides devuelve los overrides activos de un permiso en la empresa.
func (s *Store) ActiveOverrides(companyID, permission string) []entity.PermissionOverride {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.PermissionOverride
	for _, o := range s.st.overrides {
		if o.CompanyID == companyID && o.Permission == permission && o.IsActive {
			out = append(out, o)
		}
	}
	return out
}

// Users devuelve los usuarios de la empresa.
func (s *Store) Users(companyID string) []entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.User
	for _, u := range s.st.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out
}

// ─── puertos ─────────────────────────────────────────────────────────────────

// Repos juego de repositorios sobre el store.
func (s *Store) Repos() onboarding.Repos {
	return onboarding.Repos{
		Users:         s.UserRepo(),
		Companies:     s.CompanyRepo(),
		Roles:         s.RoleRepo(),
		Overrides:     s.OverrideRepo(),
		Subscriptions: s.SubscriptionRepo(),
		Modules:       s.ModuleRepo(),
		Policies:      s.PolicyRepo(),
	}
}

// RunOnboarding serializa las transacciones y restaura el estado si fn falla.
func (s *Store) RunOnboarding(ctx context.Context, fn func(repos onboarding.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	saved := s.st.clone()
	s.mu.Unlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.st = saved
		s.mu.Unlock()
		return err
	}
	return nil
}

var _ onboarding.TxRunner = (*Store)(nil)

// UserRepo puerto de usuarios.
func (s *Store) UserRepo() repository.UserRepository { return userRepo{s} }

// CompanyRepo puerto de empresas.
func (s *Store) CompanyRepo() repository.CompanyRepository { return companyRepo{s} }

// ModuleRepo puerto de módulos.
func (s *Store) ModuleRepo() repository.ModuleRepository { return moduleRepo{s} }

// RoleRepo puerto de roles.
func (s *Store) RoleRepo() repository.RoleRepository { return roleRepo{s} }

// OverrideRepo puerto de overrides.
func (s *Store) OverrideRepo() repository.OverrideRepository { return overrideRepo{s} }

// SubscriptionRepo puerto de suscripciones.
func (s *Store) SubscriptionRepo() repository.SubscriptionRepository { return subscriptionRepo{s} }

// PolicyRepo puerto de políticas FLAC.
func (s *Store) PolicyRepo() repository.FieldPolicyRepository { return policyRepo{s} }

// RecordRepo puerto de registros.
func (s *Store) RecordRepo() repository.RecordRepository { return recordRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.st.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) GetByInviteToken(_ context.Context, token string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if token != "" && u.InviteToken == token {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.User
	for _, u := range r.s.st.users {
		if u.CompanyID == companyID {
			u := u
			list = append(list, &u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) || list[i].Email < list[j].Email && list[i].CreatedAt.Equal(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}

func (r userRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, u := range r.s.st.users {
		if u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r userRepo) CountSeats(_ context.Context, companyID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, u := range r.s.st.users {
		if u.CompanyID == companyID && u.OccupiesSeat() {
			n++
		}
	}
	return n, nil
}

type companyRepo struct{ s *Store }

func (r companyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.companies[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.st.companies[c.ID] = *c
	return nil
}

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.st.companies[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r companyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Company, error) {
	return r.GetByID(ctx, id)
}

func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.companies[c.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	r.s.st.companies[c.ID] = *c
	return nil
}

type moduleRepo struct{ s *Store }

func (r moduleRepo) ListDefinitions(context.Context) ([]entity.ModuleDefinition, error) {
	return append([]entity.ModuleDefinition(nil), r.s.modules...), nil
}

func (r moduleRepo) GetCompanyModule(_ context.Context, companyID, module string) (*entity.CompanyModule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m, ok := r.s.st.companyModules[companyID+"|"+module]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r moduleRepo) ListCompanyModules(_ context.Context, companyID string) ([]entity.CompanyModule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []entity.CompanyModule
	for _, m := range r.s.st.companyModules {
		if m.CompanyID == companyID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ModuleCode < list[j].ModuleCode })
	return list, nil
}

func (r moduleRepo) Upsert(_ context.Context, m *entity.CompanyModule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := m.CompanyID + "|" + m.ModuleCode
	if prev, ok := r.s.st.companyModules[key]; ok {
		m.ActivatedAt = prev.ActivatedAt
	}
	r.s.st.companyModules[key] = *m
	return nil
}

func (r moduleRepo) CountEnabled(_ context.Context, companyID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	now := time.Now()
	for _, m := range r.s.st.companyModules {
		if m.CompanyID == companyID && m.Usable(now) {
			n++
		}
	}
	return n, nil
}

func (r moduleRepo) HasActiveModule(ctx context.Context, companyID, module string) (bool, error) {
	m, _ := r.GetCompanyModule(ctx, companyID, module)
	return m.Usable(time.Now()), nil
}

type roleRepo struct{ s *Store }

func (r roleRepo) ListRoles(context.Context) (map[string]entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]entity.Role, len(r.s.roles))
	for k, v := range r.s.roles {
		out[k] = v
	}
	return out, nil
}

func (r roleRepo) GetByCode(_ context.Context, code string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if role, ok := r.s.roles[RoleID(code)]; ok {
		return &role, nil
	}
	return nil, nil
}

func (r roleRepo) Assign(_ context.Context, ur *entity.UserRole) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ur.IsActive = true
	if role, ok := r.s.roles[ur.RoleID]; ok {
		ur.RoleCode = role.Code
	}
	for i, a := range r.s.st.assignments {
		if a.UserID == ur.UserID && a.RoleID == ur.RoleID && a.CompanyID == ur.CompanyID && a.Module == ur.Module {
			r.s.st.assignments[i].IsActive = true
			r.s.st.assignments[i].AssignedBy = ur.AssignedBy
			return nil
		}
	}
	r.s.st.assignments = append(r.s.st.assignments, *ur)
	return nil
}

func (r roleRepo) ListAssignments(_ context.Context, userID string) ([]entity.UserRole, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.UserRole
	for _, a := range r.s.st.assignments {
		if a.UserID == userID && a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r roleRepo) ListGrants(_ context.Context, module string) (map[string][]entity.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string][]entity.Permission)
	for roleID, perms := range r.s.grants {
		for _, p := range perms {
			if p.Module == "" || p.Module == module {
				out[roleID] = append(out[roleID], p)
			}
		}
	}
	return out, nil
}

type overrideRepo struct{ s *Store }

func (r overrideRepo) ListForUser(_ context.Context, userID, companyID string) ([]entity.PermissionOverride, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.PermissionOverride
	for _, o := range r.s.st.overrides {
		if o.UserID == userID && o.CompanyID == companyID && o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r overrideRepo) Create(_ context.Context, o *entity.PermissionOverride) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o.Permission == entity.PermSuperPlanAccess && o.Effect == entity.OverrideGrant && o.IsActive {
		for _, existing := range r.s.st.overrides {
			if existing.CompanyID == o.CompanyID && existing.Permission == o.Permission &&
				existing.Effect == entity.OverrideGrant && existing.IsActive {
				return fmt.Errorf("%w: la empresa ya tiene un titular de %s", domain.ErrConflict, o.Permission)
			}
		}
	}
	r.s.st.overrides = append(r.s.st.overrides, *o)
	return nil
}

func (r overrideRepo) ActiveHolder(_ context.Context, companyID, permission string) (*entity.PermissionOverride, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for i := len(r.s.st.overrides) - 1; i >= 0; i-- {
		o := r.s.st.overrides[i]
		if o.CompanyID == companyID && o.Permission == permission && o.Effect == entity.OverrideGrant && o.AppliesAt(now) {
			return &o, nil
		}
	}
	return nil, nil
}

func (r overrideRepo) Deactivate(_ context.Context, companyID, permission string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for i, o := range r.s.st.overrides {
		if o.CompanyID == companyID && o.Permission == permission && o.Effect == entity.OverrideGrant && o.IsActive {
			r.s.st.overrides[i].IsActive = false
			n++
		}
	}
	return n, nil
}

type subscriptionRepo struct{ s *Store }

func (r subscriptionRepo) ListPlans(context.Context) ([]entity.SubscriptionPlan, error) {
	return append([]entity.SubscriptionPlan(nil), r.s.plans...), nil
}

func (r subscriptionRepo) GetPlanByName(_ context.Context, name string) (*entity.SubscriptionPlan, error) {
	for _, p := range r.s.plans {
		if strings.EqualFold(p.Name, name) {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r subscriptionRepo) GetActiveByCompany(_ context.Context, companyID string) (*entity.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sub := range r.s.st.subscriptions {
		if sub.CompanyID == companyID && sub.IsActive {
			return &sub, nil
		}
	}
	return nil, nil
}

func (r subscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.subscriptions {
		if existing.CompanyID == sub.CompanyID && existing.IsActive && sub.IsActive {
			return fmt.Errorf("%w: la empresa ya tiene una suscripción activa", domain.ErrConflict)
		}
	}
	r.s.st.subscriptions = append(r.s.st.subscriptions, *sub)
	return nil
}

type policyRepo struct{ s *Store }

func policyKey(p *entity.FieldPolicy) string {
	return p.CompanyID + "|" + p.RoleCode + "|" + p.Module + "|" + p.Field
}

func (r policyRepo) Upsert(_ context.Context, p *entity.FieldPolicy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.policies[policyKey(p)] = *p
	return nil
}

func (r policyRepo) ListByCompany(_ context.Context, companyID, module string) ([]entity.FieldPolicy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.FieldPolicy
	for _, p := range r.s.st.policies {
		if p.CompanyID == companyID && (module == "" || p.Module == module) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return policyKey(&out[i]) < policyKey(&out[j]) })
	return out, nil
}

func (r policyRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	list, _ := r.ListByCompany(ctx, companyID, "")
	return len(list), nil
}

type recordRepo struct{ s *Store }

func (r recordRepo) Create(_ context.Context, rec *entity.WorkspaceRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.records[rec.ID] = *rec
	return nil
}

func (r recordRepo) GetByID(_ context.Context, companyID, kind, id string) (*entity.WorkspaceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.st.records[id]
	if !ok || rec.CompanyID != companyID || rec.Kind != kind {
		return nil, nil
	}
	return &rec, nil
}

func (r recordRepo) Update(_ context.Context, rec *entity.WorkspaceRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.st.records[rec.ID]
	if !ok || prev.CompanyID != rec.CompanyID || prev.Kind != rec.Kind {
		return domain.ErrNotFound
	}
	r.s.st.records[rec.ID] = *rec
	return nil
}

func (r recordRepo) Delete(_ context.Context, companyID, kind, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.st.records[id]
	if !ok || prev.CompanyID != companyID || prev.Kind != kind {
		return domain.ErrNotFound
	}
	delete(r.s.st.records, id)
	return nil
}

// ListVisible replica el filtro SQL de visibilidad.
func (r recordRepo) ListVisible(_ context.Context, f repository.RecordFilter) ([]*entity.WorkspaceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.WorkspaceRecord
	for _, rec := range r.s.st.records {
		if rec.CompanyID != f.CompanyID || rec.Kind != f.Kind || !visible(f, rec) {
			continue
		}
		rec := rec
		list = append(list, &rec)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, f.Limit, f.Offset), nil
}

func visible(f repository.RecordFilter, rec entity.WorkspaceRecord) bool {
	if f.CompanyWide || rec.OwnerID == f.UserID {
		return true
	}
	switch rec.Visibility {
	case entity.VisibilityCompany, entity.VisibilityPublic:
		return true
	case entity.VisibilityTeam:
		return rec.TeamID == "" || (f.TeamID != "" && rec.TeamID == f.TeamID)
	case entity.VisibilityShared:
		for _, id := range rec.SharedWith {
			if id == f.UserID {
				return true
			}
		}
	}
	return false
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
