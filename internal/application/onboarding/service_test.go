package onboarding_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/testutil/memstore"
)

const ownerID = "11111111-1111-1111-1111-111111111111"

// Cerca del reloj real: los conteos de módulos del store comparan contra time.Now.
var fixedNow = time.Now().UTC().Truncate(time.Second)

type fakeTokens struct{ issued []string }

func (f *fakeTokens) IssueToken(u *entity.User) (string, error) {
	tok := "tok-" + u.ID + "-" + u.CompanyID
	f.issued = append(f.issued, tok)
	return tok, nil
}

type fakePublisher struct {
	events []onboarding.UserInvitedEvent
	err    error
}

func (f *fakePublisher) PublishInvited(_ context.Context, events []onboarding.UserInvitedEvent) error {
	f.events = append(f.events, events...)
	return f.err
}

type fixture struct {
	svc    *onboarding.Service
	store  *memstore.Store
	tokens *fakeTokens
	pub    *fakePublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	store.PutUser(entity.User{ID: ownerID, Email: "owner@acme.test", Name: "Owner", Status: entity.UserStatusActive, CreatedAt: fixedNow})
	f := &fixture{store: store, tokens: &fakeTokens{}, pub: &fakePublisher{}}
	f.svc = onboarding.NewService(store.Repos(), store, f.tokens, f.pub, 90, nil).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func (f *fixture) company(t *testing.T) string {
	t.Helper()
	res, err := f.svc.SetupCompany(context.Background(), ownerID, dto.CompanySetupRequest{Name: "Acme", Country: "co"})
	require.NoError(t, err)
	return res.Company.ID
}

func (f *fixture) pay(t *testing.T, seats int) *dto.PaymentResponse {
	t.Helper()
	res, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Pro Max", LicenseCount: seats})
	require.NoError(t, err)
	return res
}

func (f *fixture) invite(t *testing.T, emails ...string) *dto.AddUsersResponse {
	t.Helper()
	req := dto.AddUsersRequest{}
	for _, e := range emails {
		req.Users = append(req.Users, dto.InviteUserRequest{Email: e, Name: e})
	}
	res, err := f.svc.AddUsers(context.Background(), ownerID, req)
	require.NoError(t, err)
	return res
}

// ─── Estado ──────────────────────────────────────────────────────────────────

func TestStatus_SoloRegistro(t *testing.T) {
	f := newFixture(t)
	st, err := f.svc.Status(context.Background(), ownerID)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, st.CompletedSteps)
	assert.Equal(t, 10, st.ProgressPercentage)
	require.NotNil(t, st.NextStep)
	assert.Equal(t, 2, st.NextStep.Number)
	assert.Len(t, st.Steps, 10)
}

func TestStatus_DosLlamadasIguales(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 3)

	a, err := f.svc.Status(context.Background(), ownerID)
	require.NoError(t, err)
	b, err := f.svc.Status(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.CompletedSteps)
}

func TestStatus_UsuarioInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Status(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ─── Paso 2 ──────────────────────────────────────────────────────────────────

func TestSetupCompany_CreaEmpresaYAsignaSuperAdmin(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.SetupCompany(context.Background(), ownerID, dto.CompanySetupRequest{Name: " Acme ", Country: "co"})
	require.NoError(t, err)

	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, "Acme", res.Company.Name)
	assert.Equal(t, "CO", res.Company.Country)
	assert.Equal(t, entity.LifecycleOnboarding, res.Company.LifecycleStatus)
	assert.Equal(t, "es", res.Company.Locale)
	assert.Equal(t, "tok-"+ownerID+"-"+res.Company.ID, res.Token)

	roles, err := f.store.RoleRepo().ListAssignments(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, entity.RoleSuperAdmin, roles[0].RoleCode)
	assert.Equal(t, res.Company.ID, roles[0].CompanyID)
}

func TestSetupCompany_Idempotente(t *testing.T) {
	f := newFixture(t)
	first := f.company(t)

	res, err := f.svc.SetupCompany(context.Background(), ownerID, dto.CompanySetupRequest{Name: "Otra"})
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Equal(t, first, res.Company.ID)
	assert.Equal(t, "Acme", res.Company.Name)
}

// ─── Pasos 3 y 4 ─────────────────────────────────────────────────────────────

func TestPlans_IncluyeUltraNoDisponible(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.Plans(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Plans, 3)
	byName := map[string]dto.PlanResponse{}
	for _, p := range res.Plans {
		byName[p.Name] = p
	}
	assert.True(t, byName["Pro"].Available)
	assert.True(t, byName["Pro Max"].Recommended)
	assert.False(t, byName["Ultra"].Available)
	assert.Len(t, res.Buckets, 8)
	assert.True(t, res.Buckets[len(res.Buckets)-1].OpenEnded)
}

func TestLicenseBucket_CotizaProMaxDiez(t *testing.T) {
	f := newFixture(t)
	q, err := f.svc.LicenseBucket(context.Background(), dto.LicenseBucketRequest{PlanName: "promax", LicenseCount: 10})
	require.NoError(t, err)

	assert.Equal(t, "Pro Max", q.PlanName)
	assert.Equal(t, int64(149990), q.BasePrice)
	assert.True(t, decimal.NewFromInt(20).Equal(q.DiscountPercent))
	assert.Equal(t, int64(29998), q.DiscountAmount)
	assert.Equal(t, int64(119992), q.FinalPrice)
	assert.Equal(t, int64(29998), q.Savings)
	assert.True(t, q.TrialEligible)
	assert.Equal(t, 90, q.TrialDays)
	assert.Equal(t, int64(0), q.DueToday)
}

func TestLicenseBucket_PaqueteInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.LicenseBucket(context.Background(), dto.LicenseBucketRequest{PlanName: "Pro", LicenseCount: 7})
	assert.ErrorIs(t, err, domain.ErrInvalidSeatCount)
}

func TestLicenseBucket_PlanInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.LicenseBucket(context.Background(), dto.LicenseBucketRequest{PlanName: "Gold", LicenseCount: 1})
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

// ─── Paso 5 ──────────────────────────────────────────────────────────────────

func TestPayment_ActivaPrueba(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	res := f.pay(t, 10)

	sub := res.Subscription
	assert.False(t, res.AlreadyCompleted)
	assert.True(t, sub.IsTrial)
	assert.Equal(t, int64(0), sub.FinalPrice)
	assert.Equal(t, int64(149990), sub.BasePrice)
	require.NotNil(t, sub.TrialEndsAt)
	assert.Equal(t, fixedNow.AddDate(0, 0, 90), *sub.TrialEndsAt)
	assert.Equal(t, 1, sub.SeatsUsed)
}

func TestPayment_TarjetaCobraPrecioFinal(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	res, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Pro", LicenseCount: 1, PaymentMethod: "card"})
	require.NoError(t, err)

	assert.False(t, res.Subscription.IsTrial)
	assert.Equal(t, int64(9999), res.Subscription.FinalPrice)
	assert.Equal(t, fixedNow.Add(365*24*time.Hour), res.Subscription.EndsAt)
}

func TestPayment_RepetirNoCreaOtraSuscripcion(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	first := f.pay(t, 3)

	again, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Pro", LicenseCount: 5})
	require.NoError(t, err)
	assert.True(t, again.AlreadyCompleted)
	assert.Equal(t, first.Subscription.ID, again.Subscription.ID)
	assert.Len(t, f.store.Subscriptions(), 1)
}

func TestPayment_UltraNoDisponible(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	_, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Ultra", LicenseCount: 1})
	assert.ErrorIs(t, err, domain.ErrPlanUnavailable)
	assert.Empty(t, f.store.Subscriptions())
}

func TestPayment_SinEmpresa(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Pro", LicenseCount: 1})
	assert.ErrorIs(t, err, domain.ErrNoCompany)
}

// ─── Paso 6 ──────────────────────────────────────────────────────────────────

func TestAddUsers_InvitaPendientesYPublica(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	f.pay(t, 3)

	res, err := f.svc.AddUsers(context.Background(), ownerID, dto.AddUsersRequest{Users: []dto.InviteUserRequest{
		{Email: "Admin@Acme.test", Name: "Admin", Role: "Admin"},
		{Email: "user@acme.test", Name: "User"},
	}})
	require.NoError(t, err)

	require.Len(t, res.Invited, 2)
	assert.Equal(t, "admin@acme.test", res.Invited[0].Email)
	assert.Equal(t, entity.UserStatusPending, res.Invited[0].Status)
	assert.Equal(t, entity.RoleAdmin, res.Invited[0].Role)
	assert.Equal(t, entity.RoleMember, res.Invited[1].Role)
	assert.Equal(t, 3, res.SeatsUsed)
	assert.Equal(t, 3, res.SeatLimit)

	require.Len(t, f.pub.events, 2)
	assert.Equal(t, companyID, f.pub.events[0].CompanyID)
	assert.NotEmpty(t, f.pub.events[0].InviteToken)
}

func TestAddUsers_LimiteDeLicenciasRechazaElLote(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	f.pay(t, 1)

	_, err := f.svc.AddUsers(context.Background(), ownerID, dto.AddUsersRequest{Users: []dto.InviteUserRequest{
		{Email: "a@acme.test", Name: "A"},
	}})
	assert.ErrorIs(t, err, domain.ErrSeatLimitReached)
	assert.Len(t, f.store.Users(companyID), 1)
	assert.Empty(t, f.pub.events)
}

func TestAddUsers_EmailsExistentesSeOmiten(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 3)
	f.invite(t, "a@acme.test")

	res := f.invite(t, "a@acme.test", "owner@acme.test")
	assert.True(t, res.AlreadyCompleted)
	assert.Empty(t, res.Invited)
	assert.ElementsMatch(t, []string{"a@acme.test", "owner@acme.test"}, res.Skipped)
}

func TestAddUsers_FalloDePublicacionNoRevierte(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	f.pay(t, 3)
	f.pub.err = errors.New("broker caído")

	res := f.invite(t, "a@acme.test")
	assert.Len(t, res.Invited, 1)
	assert.Len(t, f.store.Users(companyID), 2)
}

func TestAddUsers_SinSuscripcion(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	_, err := f.svc.AddUsers(context.Background(), ownerID, dto.AddUsersRequest{Users: []dto.InviteUserRequest{{Email: "a@acme.test", Name: "A"}}})
	assert.ErrorIs(t, err, domain.ErrNoSubscription)
}

// ─── Paso 7 ──────────────────────────────────────────────────────────────────

func TestGrantSuperPermission_RevocaTitularAnterior(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	f.pay(t, 3)
	invited := f.invite(t, "a@acme.test", "b@acme.test").Invited
	ctx := context.Background()

	first, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: invited[0].ID})
	require.NoError(t, err)
	assert.Empty(t, first.PreviousHolder)

	second, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: invited[1].ID})
	require.NoError(t, err)
	assert.Equal(t, invited[0].ID, second.PreviousHolder)

	active := f.store.ActiveOverrides(companyID, entity.PermSuperPlanAccess)
	require.Len(t, active, 1)
	assert.Equal(t, invited[1].ID, active[0].UserID)
}

func TestGrantSuperPermission_ConcurrenteDejaUnSoloTitular(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	f.pay(t, 10)
	invited := f.invite(t, "a@acme.test", "b@acme.test", "c@acme.test", "d@acme.test", "e@acme.test").Invited
	targets := []string{ownerID}
	for _, u := range invited {
		targets = append(targets, u.ID)
	}

	ctx := context.Background()
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			_, errs[i] = f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: target})
		}(i, target)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	active := f.store.ActiveOverrides(companyID, entity.PermSuperPlanAccess)
	require.Len(t, active, 1)
	assert.Contains(t, targets, active[0].UserID)
}

func TestGrantSuperPermission_MismoTitularIdempotente(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 1)
	ctx := context.Background()

	_, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: ownerID})
	require.NoError(t, err)
	again, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.True(t, again.AlreadyCompleted)
}

func TestGrantSuperPermission_SoloSuperAdmin(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 3)
	invited := f.invite(t, "a@acme.test").Invited

	_, err := f.svc.GrantSuperPermission(context.Background(), invited[0].ID, dto.SpecialPermissionRequest{UserID: invited[0].ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGrantSuperPermission_UsuarioDeOtraEmpresa(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.store.PutUser(entity.User{ID: "22222222-2222-2222-2222-222222222222", CompanyID: "otra", Email: "x@otra.test", Status: entity.UserStatusActive})

	_, err := f.svc.GrantSuperPermission(context.Background(), ownerID, dto.SpecialPermissionRequest{UserID: "22222222-2222-2222-2222-222222222222"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRevokeSuperPermission(t *testing.T) {
	f := newFixture(t)
	companyID := f.company(t)
	ctx := context.Background()
	_, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: ownerID})
	require.NoError(t, err)

	res, err := f.svc.RevokeSuperPermission(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, res.Revoked)
	assert.Equal(t, ownerID, res.PreviousHolder)
	assert.Empty(t, f.store.ActiveOverrides(companyID, entity.PermSuperPlanAccess))

	res, err = f.svc.RevokeSuperPermission(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, res.Revoked)
}

// ─── Pasos 8 y 9 ─────────────────────────────────────────────────────────────

func TestEnableModules_HabilitaYRepiteIdempotente(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 1)
	ctx := context.Background()

	res, err := f.svc.EnableModules(ctx, ownerID, dto.EnableModulesRequest{Modules: []string{"Sales", "tasks", "sales"}})
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, []string{"sales", "tasks"}, res.Enabled)

	res, err = f.svc.EnableModules(ctx, ownerID, dto.EnableModulesRequest{Modules: []string{"sales"}})
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
}

func TestEnableModules_ModuloDesconocido(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 1)
	_, err := f.svc.EnableModules(context.Background(), ownerID, dto.EnableModulesRequest{Modules: []string{"inventory"}})
	assert.ErrorIs(t, err, domain.ErrUnknownModule)
}

func TestConfigureFLAC(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	ctx := context.Background()
	req := dto.FLACRequest{Policies: []dto.FieldPolicyRequest{
		{RoleCode: entity.RoleMember, Module: entity.ModuleSales, Field: "amount", Visibility: entity.FieldHidden},
		{RoleCode: entity.RoleAdmin, Module: entity.ModuleSales, Field: "amount", Visibility: entity.FieldView},
	}}

	res, err := f.svc.ConfigureFLAC(ctx, ownerID, req)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Configured)
	assert.False(t, res.AlreadyCompleted)

	res, err = f.svc.ConfigureFLAC(ctx, ownerID, req)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Equal(t, 2, res.Configured)
}

func TestConfigureFLAC_RolDesconocido(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	_, err := f.svc.ConfigureFLAC(context.Background(), ownerID, dto.FLACRequest{Policies: []dto.FieldPolicyRequest{
		{RoleCode: "gerente", Module: entity.ModuleSales, Field: "amount", Visibility: entity.FieldView},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── Paso 10 y flujo completo ────────────────────────────────────────────────

func TestFinish_FlujoCompleto(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	f.pay(t, 3)
	f.invite(t, "a@acme.test")
	ctx := context.Background()
	_, err := f.svc.GrantSuperPermission(ctx, ownerID, dto.SpecialPermissionRequest{UserID: ownerID})
	require.NoError(t, err)
	_, err = f.svc.EnableModules(ctx, ownerID, dto.EnableModulesRequest{Modules: []string{"sales"}})
	require.NoError(t, err)
	_, err = f.svc.ConfigureFLAC(ctx, ownerID, dto.FLACRequest{Policies: []dto.FieldPolicyRequest{
		{RoleCode: entity.RoleMember, Module: entity.ModuleSales, Field: "amount", Visibility: entity.FieldHidden},
	}})
	require.NoError(t, err)

	res, err := f.svc.Finish(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleTrial, res.LifecycleStatus)
	assert.Equal(t, "Pro Max", res.DashboardConfig.Plan)
	assert.True(t, res.DashboardConfig.HasSuperPlanAccess)
	assert.Len(t, res.DashboardConfig.Modules, 8)
	assert.Contains(t, res.DashboardConfig.Features, "conversational_ai")

	st, err := f.svc.Status(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, st.Completed)
	assert.Equal(t, 100, st.ProgressPercentage)
	assert.Nil(t, st.NextStep)

	again, err := f.svc.Finish(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyCompleted)
}

func TestFinish_SinSuperPermisoSoloModulosHabilitados(t *testing.T) {
	f := newFixture(t)
	f.company(t)
	_, err := f.svc.Payment(context.Background(), ownerID, dto.PaymentRequest{PlanName: "Pro", LicenseCount: 1, PaymentMethod: "card"})
	require.NoError(t, err)
	_, err = f.svc.EnableModules(context.Background(), ownerID, dto.EnableModulesRequest{Modules: []string{"tasks"}})
	require.NoError(t, err)

	res, err := f.svc.Finish(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, res.LifecycleStatus)
	assert.False(t, res.DashboardConfig.HasSuperPlanAccess)
	assert.Equal(t, []string{"tasks"}, res.DashboardConfig.Modules)
	assert.Equal(t, []string{"core_features"}, res.DashboardConfig.Features)
}
