package onboarding

import (
	"context"
	"time"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// Repos juego de repositorios atados a una misma conexión o transacción.
type Repos struct {
	Users         repository.UserRepository
	Companies     repository.CompanyRepository
	Roles         repository.RoleRepository
	Overrides     repository.OverrideRepository
	Subscriptions repository.SubscriptionRepository
	Modules       repository.ModuleRepository
	Policies      repository.FieldPolicyRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se hace Rollback.
type TxRunner interface {
	RunOnboarding(ctx context.Context, fn func(repos Repos) error) error
}

// UserInvitedEvent se publica por cada usuario invitado en el paso 6, después del Commit.
type UserInvitedEvent struct {
	UserID      string    `json:"user_id"`
	CompanyID   string    `json:"company_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	InviteToken string    `json:"invite_token"`
	InvitedBy   string    `json:"invited_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// InvitePublisher entrega los eventos de invitación (Kafka o log).
type InvitePublisher interface {
	PublishInvited(ctx context.Context, events []UserInvitedEvent) error
}

// TokenIssuer re-emite el token cuando cambia la empresa del usuario.
type TokenIssuer interface {
	IssueToken(user *entity.User) (string, error)
}
