package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
)

// Ensure TxRunner implements onboarding.TxRunner.
var _ onboarding.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Repos construye el juego de repositorios sobre un Querier (pool o tx).
func Repos(q Querier) onboarding.Repos {
	return onboarding.Repos{
		Users:         NewUserRepository(q),
		Companies:     NewCompanyRepository(q),
		Roles:         NewRoleRepository(q),
		Overrides:     NewOverrideRepository(q),
		Subscriptions: NewSubscriptionRepository(q),
		Modules:       NewModuleRepository(q),
		Policies:      NewFieldPolicyRepository(q),
	}
}

// RunOnboarding inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunOnboarding(ctx context.Context, fn func(repos onboarding.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
