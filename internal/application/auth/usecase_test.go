package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/application/auth"
	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/testutil/memstore"
	"github.com/jhoicas/workspace-api/pkg/jwt"
)

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "workspace-api"}

func newUseCase() (*auth.AuthUseCase, *memstore.Store) {
	store := memstore.New()
	return auth.NewAuthUseCase(store.UserRepo(), store.CompanyRepo(), store.RoleRepo(), jwtCfg), store
}

func TestSignup_CreaUsuarioSinEmpresa(t *testing.T) {
	uc, _ := newUseCase()
	res, err := uc.Signup(context.Background(), dto.SignupRequest{Email: " Ana@Acme.test ", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "ana@acme.test", res.User.Email)
	assert.Equal(t, entity.UserStatusActive, res.User.Status)
	assert.Empty(t, res.User.CompanyID)

	claims, err := jwt.ParseClaims(jwtCfg.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Empty(t, claims.CompanyID)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "ana@acme.test", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Signup(ctx, dto.SignupRequest{Email: "ANA@acme.test", Password: "otro12345", Name: "Ana 2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "ana@acme.test", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@acme.test", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestLogin_PasswordIncorrectoYEmailInexistenteIguales(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Signup(ctx, dto.SignupRequest{Email: "ana@acme.test", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@acme.test", Password: "malo"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@acme.test", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_InvitadoPendienteNoEntra(t *testing.T) {
	uc, store := newUseCase()
	store.PutUser(entity.User{ID: "u-p", CompanyID: "c-1", Email: "inv@acme.test", Status: entity.UserStatusPending})

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "inv@acme.test", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_IncluyeRolesYEmpresa(t *testing.T) {
	uc, store := newUseCase()
	store.PutCompany(entity.Company{ID: "c-1", Name: "Acme", LifecycleStatus: entity.LifecycleOnboarding})
	store.PutUser(entity.User{ID: "u-1", CompanyID: "c-1", Email: "ana@acme.test", Role: entity.RoleSuperAdmin, Status: entity.UserStatusActive})
	store.Grant("u-1", "c-1", entity.RoleSuperAdmin, "")

	me, err := uc.Me(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, me.Company)
	assert.Equal(t, "Acme", me.Company.Name)
	require.Len(t, me.Roles, 1)
	assert.Equal(t, entity.RoleSuperAdmin, me.Roles[0].Code)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Me(context.Background(), "nadie")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAcceptInvite_ActivaConsumeTokenYEmiteJWT(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	store.PutUser(entity.User{
		ID: "u-p", CompanyID: "c-1", Email: "inv@acme.test", Role: entity.RoleMember,
		Status: entity.UserStatusPending, InviteToken: "tok-1",
	})

	res, err := uc.AcceptInvite(ctx, dto.AcceptInviteRequest{Token: " tok-1 ", Password: "clave-nueva-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, res.User.Status)

	claims, err := jwt.ParseClaims(jwtCfg.Secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-p", claims.UserID)
	assert.Equal(t, "c-1", claims.CompanyID)

	stored, err := store.UserRepo().GetByID(ctx, "u-p")
	require.NoError(t, err)
	assert.Empty(t, stored.InviteToken)
	assert.NotEmpty(t, stored.PasswordHash)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "inv@acme.test", Password: "clave-nueva-1"})
	require.NoError(t, err)

	_, err = uc.AcceptInvite(ctx, dto.AcceptInviteRequest{Token: "tok-1", Password: "otra-clave-2"})
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)
}

func TestAcceptInvite_TokenDesconocidoOUsuarioNoPendiente(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	store.PutUser(entity.User{ID: "u-s", CompanyID: "c-1", Email: "sus@acme.test", Status: entity.UserStatusSuspended, InviteToken: "tok-s"})

	_, err := uc.AcceptInvite(ctx, dto.AcceptInviteRequest{Token: "no-existe", Password: "clave-nueva-1"})
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)

	_, err = uc.AcceptInvite(ctx, dto.AcceptInviteRequest{Token: "tok-s", Password: "clave-nueva-1"})
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)

	_, err = uc.AcceptInvite(ctx, dto.AcceptInviteRequest{Token: "  ", Password: "clave-nueva-1"})
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)
}
