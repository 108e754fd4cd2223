package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
	"github.com/jhoicas/workspace-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro (paso 1 del onboarding), login y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	roleRepo    repository.RoleRepository
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, roleRepo repository.RoleRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, roleRepo: roleRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Signup crea el usuario dueño sin empresa. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(in.Email)
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto responden igual.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrUnauthorized
	}
	return uc.authResponse(user)
}

// AcceptInvite fija la contraseña del invitado, lo activa y consume el token.
// Un token desconocido o ya usado devuelve ErrInviteNotFound.
func (uc *AuthUseCase) AcceptInvite(ctx context.Context, in dto.AcceptInviteRequest) (*dto.AuthResponse, error) {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return nil, domain.ErrInviteNotFound
	}
	user, err := uc.userRepo.GetByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != entity.UserStatusPending {
		return nil, domain.ErrInviteNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.Status = entity.UserStatusActive
	user.InviteToken = ""
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Me usuario autenticado con sus roles activos y su empresa.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	assignments, err := uc.roleRepo.ListAssignments(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.MeResponse{User: dto.ToUserResponse(user), Roles: []dto.RoleAssignmentResponse{}}
	for _, a := range assignments {
		out.Roles = append(out.Roles, dto.RoleAssignmentResponse{Code: a.RoleCode, CompanyID: a.CompanyID, Module: a.Module})
	}
	if user.HasCompany() {
		company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			c := dto.ToCompanyResponse(company)
			out.Company = &c
		}
	}
	return out, nil
}

// IssueToken firma un token con la empresa y el rol actuales del usuario.
func (uc *AuthUseCase) IssueToken(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := uc.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
