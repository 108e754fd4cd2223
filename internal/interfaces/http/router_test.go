package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/application/auth"
	"github.com/jhoicas/workspace-api/internal/application/authz"
	"github.com/jhoicas/workspace-api/internal/application/billing"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/application/usecase"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/infrastructure/kafka"
	"github.com/jhoicas/workspace-api/internal/infrastructure/pdf"
	"github.com/jhoicas/workspace-api/internal/infrastructure/redis"
	apphttp "github.com/jhoicas/workspace-api/internal/interfaces/http"
	"github.com/jhoicas/workspace-api/internal/testutil/memstore"
	pkgjwt "github.com/jhoicas/workspace-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "workspace-api-test"
)

type envelope struct {
	StatusCode   int               `json:"statusCode"`
	Status       string            `json:"status"`
	Data         json.RawMessage   `json:"data"`
	ErrorCode    string            `json:"errorCode"`
	ErrorMessage string            `json:"errorMessage"`
	Errors       map[string]string `json:"errors"`
}

// memIdempotency almacén de idempotencia en memoria con la misma semántica que Redis.
type memIdempotency struct {
	mu    sync.Mutex
	saved map[string]redis.StoredResponse
	locks map[string]bool
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{saved: map[string]redis.StoredResponse{}, locks: map[string]bool{}}
}

func (m *memIdempotency) Get(_ context.Context, key string) (*redis.StoredResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.saved[key]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *memIdempotency) Lock(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}

func (m *memIdempotency) Save(_ context.Context, key string, resp redis.StoredResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[key] = resp
	delete(m.locks, key)
	return nil
}

func (m *memIdempotency) Unlock(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, key)
	return nil
}

type testServer struct {
	app   *fiber.App
	store *memstore.Store
	idem  *memIdempotency
}

func newServer(t *testing.T, rps float64, burst int) *testServer {
	t.Helper()
	store := memstore.New()
	authzSvc := authz.NewService(store.UserRepo(), store.RoleRepo(), store.ModuleRepo(), store.OverrideRepo(), access.NewEvaluator(0), nil)
	authUC := auth.NewAuthUseCase(store.UserRepo(), store.CompanyRepo(), store.RoleRepo(), auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
	})
	idem := newMemIdempotency()
	app := apphttp.NewApp("workspace-api-test", apphttp.RouterDeps{
		AuthUC:         authUC,
		Authz:          authzSvc,
		Onboarding:     onboarding.NewService(store.Repos(), store, authUC, kafka.NewLogPublisher(nil), 90, nil),
		WorkspaceUC:    usecase.NewWorkspaceUseCase(store.RecordRepo(), store.PolicyRepo(), authzSvc),
		AccessUC:       usecase.NewAccessUseCase(authzSvc, store.RecordRepo()),
		ModuleService:  usecase.NewModuleService(store.ModuleRepo()),
		UserUC:         usecase.NewUserUseCase(store.UserRepo()),
		CompanyUC:      usecase.NewCompanyUseCase(store.CompanyRepo()),
		SubscriptionUC: billing.NewSubscriptionUseCase(store.CompanyRepo(), store.SubscriptionRepo(), store.UserRepo(), pdf.NewMarotoPDFGenerator()),
		Idempotency:    idem,
		JWTSecret:      testJWTSecret,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	})
	return &testServer{app: app, store: store, idem: idem}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any, headers ...string) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

// signupWithCompany registra al dueño y crea su empresa; devuelve el token re-emitido.
func (s *testServer) signupWithCompany(t *testing.T, email string) string {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email": email, "password": "s3cret-pass", "name": "Dueña",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.ErrorMessage)
	token := decode[struct {
		Token string `json:"token"`
	}](t, env).Token

	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step2-company", token, map[string]string{
		"name": "Acme", "country": "co",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	return decode[struct {
		Token string `json:"token"`
	}](t, env).Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinToken(t *testing.T) {
	s := newServer(t, 0, 0)
	resp, env := s.do(t, http.MethodGet, "/api/v1/onboarding/status", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.CodeAuth, env.ErrorCode)
	assert.Equal(t, "failure", env.Status)
}

func TestAuth_TokenDeUsuarioInexistente(t *testing.T) {
	s := newServer(t, 0, 0)
	tok, err := pkgjwt.Generate(testJWTSecret, "no-existe", "", "", testIssuer, 5)
	require.NoError(t, err)

	resp, env := s.do(t, http.MethodGet, "/api/v1/auth/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, apphttp.CodeAuth, env.ErrorCode)
}

func TestSignup_ValidacionConCampos(t *testing.T) {
	s := newServer(t, 0, 0)
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email": "no-es-email", "password": "corta",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.ErrorCode)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "password")
	assert.Equal(t, "Name es obligatorio", env.Errors["name"])
}

func TestSignup_EmailDuplicado(t *testing.T) {
	s := newServer(t, 0, 0)
	body := map[string]string{"email": "a@acme.test", "password": "s3cret-pass", "name": "A"}
	resp, _ := s.do(t, http.MethodPost, "/api/v1/auth/signup/", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeConflict, env.ErrorCode)
}

func TestLogin_LimitePorIP(t *testing.T) {
	s := newServer(t, 0.001, 2)
	body := map[string]string{"email": "x@acme.test", "password": "incorrecta"}
	for i := 0; i < 2; i++ {
		resp, _ := s.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, apphttp.CodeRateLimited, env.ErrorCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Onboarding y workspace
// ──────────────────────────────────────────────────────────────────────────────

func TestSinEmpresa_NoCompany(t *testing.T) {
	s := newServer(t, 0, 0)
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email": "solo@acme.test", "password": "s3cret-pass", "name": "Solo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := decode[struct {
		Token string `json:"token"`
	}](t, env).Token

	resp, env = s.do(t, http.MethodGet, "/api/v1/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.CodePermissionDenied, env.ErrorCode)
	assert.Equal(t, "NO_COMPANY", decode[map[string]any](t, env)["reason"])
}

func TestFlujoCompleto(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	// Paso 5 con Idempotency-Key: el reintento repite la respuesta guardada.
	payment := map[string]any{"plan_name": "Pro", "license_count": 5}
	resp, env := s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step5-payment", token, payment, apphttp.HeaderIdempotencyKey, "pay-1")
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	first := string(env.Data)

	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step5-payment", token, payment, apphttp.HeaderIdempotencyKey, "pay-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("Idempotent-Replayed"))
	assert.JSONEq(t, first, string(env.Data))
	assert.Len(t, s.store.Subscriptions(), 1)

	// Módulo deshabilitado antes del paso 8.
	resp, env = s.do(t, http.MethodGet, "/api/v1/accounts", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "MODULE_DISABLED", decode[map[string]any](t, env)["reason"])

	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step8-modules", token, map[string]any{
		"modules": []string{entity.ModuleSales},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)

	resp, env = s.do(t, http.MethodPost, "/api/v1/accounts", token, map[string]any{
		"title": "Globex", "data": map[string]any{"amount": 1200},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.ErrorMessage)
	created := decode[map[string]any](t, env)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	resp, env = s.do(t, http.MethodGet, "/api/v1/accounts/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[struct {
		Items []map[string]any `json:"items"`
	}](t, env)
	assert.Len(t, list.Items, 1)

	resp, _ = s.do(t, http.MethodDelete, "/api/v1/accounts/"+id, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/accounts/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, env.ErrorCode)

	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step10-finish", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	assert.Equal(t, entity.LifecycleTrial, decode[map[string]any](t, env)["lifecycle_status"])

	resp, env = s.do(t, http.MethodGet, "/api/v1/onboarding/status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decode[map[string]any](t, env)["completed"])
}

func TestAddUsers_LimiteDeLicencias(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")
	resp, env := s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step5-payment", token, map[string]any{"plan_name": "Pro", "license_count": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)

	// dueño + 3 invitados > 3 licencias: se rechaza el lote completo
	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step6-add-users", token, map[string]any{
		"users": []map[string]string{
			{"email": "a@acme.test", "name": "A"},
			{"email": "b@acme.test", "name": "B"},
			{"email": "c@acme.test", "name": "C"},
		},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.CodeSeatLimit, env.ErrorCode)

	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step6-add-users", token, map[string]any{
		"users": []map[string]string{
			{"email": "a@acme.test", "name": "A"},
			{"email": "b@acme.test", "name": "B"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	out := decode[map[string]any](t, env)
	assert.EqualValues(t, 3, out["seats_used"])
	assert.EqualValues(t, 3, out["seat_limit"])
}

func TestLicenseBucket_LicenciasSobreElMaximo(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	resp, env := s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step4-license-bucket", token, map[string]any{
		"plan_name": "Pro Max", "license_count": 1_000_000_000_000_000,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.ErrorCode)
	assert.Contains(t, env.Errors, "license_count")
}

func TestAceptarInvitacion_ActivaYPermiteLogin(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")
	resp, env := s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step5-payment", token, map[string]any{"plan_name": "Pro", "license_count": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	resp, env = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step6-add-users", token, map[string]any{
		"users": []map[string]string{{"email": "rep@acme.test", "name": "Rep"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)

	login := map[string]string{"email": "rep@acme.test", "password": "clave-nueva-1"}
	resp, _ = s.do(t, http.MethodPost, "/api/v1/auth/login", "", login)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	invited, err := s.store.UserRepo().GetByEmail(context.Background(), "rep@acme.test")
	require.NoError(t, err)
	require.NotNil(t, invited)
	require.NotEmpty(t, invited.InviteToken)
	accept := map[string]string{"token": invited.InviteToken, "password": "clave-nueva-1"}

	resp, env = s.do(t, http.MethodPost, "/api/v1/auth/accept-invite", "", accept)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	accepted := decode[struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}](t, env)
	assert.NotEmpty(t, accepted.Token)
	assert.Equal(t, entity.UserStatusActive, accepted.User["status"])

	resp, env = s.do(t, http.MethodGet, "/api/v1/auth/me", accepted.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)

	resp, env = s.do(t, http.MethodPost, "/api/v1/auth/login", "", login)
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)

	// el token se consume al aceptar
	resp, env = s.do(t, http.MethodPost, "/api/v1/auth/accept-invite", "", accept)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, env.ErrorCode)
}

func TestAceptarInvitacion_Validacion(t *testing.T) {
	s := newServer(t, 0, 0)
	resp, env := s.do(t, http.MethodPost, "/api/v1/auth/accept-invite", "", map[string]string{"password": "corta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "token")
	assert.Contains(t, env.Errors, "password")
}

func TestAddUsers_ErroresDeCamposAnidados(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	resp, env := s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step6-add-users", token, map[string]any{
		"users": []map[string]string{{"email": "mal", "name": "A"}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "users[0].email")
}

func TestAccessCheck_DenegacionResponde200(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	resp, env := s.do(t, http.MethodPost, "/api/v1/access/check", token, map[string]string{
		"module": entity.ModuleProjects, "permission": entity.PermView,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, env.ErrorMessage)
	d := decode[access.Decision](t, env)
	assert.False(t, d.Allowed)
	assert.Equal(t, access.ReasonModuleDisabled, d.Reason)
}

func TestModulos_Catalogo(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	resp, env := s.do(t, http.MethodGet, "/api/v1/modules", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]map[string]any](t, env), 8)
}

func TestSuscripcion_ComprobantePDF(t *testing.T) {
	s := newServer(t, 0, 0)
	token := s.signupWithCompany(t, "owner@acme.test")

	resp, env := s.do(t, http.MethodGet, "/api/v1/subscriptions/current", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, env.ErrorCode)

	resp, _ = s.do(t, http.MethodPost, "/api/v1/onboarding/complete/step5-payment", token, map[string]any{"plan_name": "Pro Max", "license_count": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = s.do(t, http.MethodGet, "/api/v1/subscriptions/current", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Pro Max", decode[map[string]any](t, env)["plan_name"])

	resp, _ = s.do(t, http.MethodGet, "/api/v1/subscriptions/current/receipt", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "comprobante_WS-")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRutaInexistente(t *testing.T) {
	s := newServer(t, 0, 0)
	for _, path := range []string{"/no-existe", "/api/v1/no-existe", "/api/v1/invites/accept"} {
		resp, env := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, apphttp.CodeNotFound, env.ErrorCode, path)
	}
}
