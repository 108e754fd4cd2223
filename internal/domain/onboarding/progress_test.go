package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/onboarding"
)

func TestDerive_SinUsuario(t *testing.T) {
	p := onboarding.Derive(onboarding.Evidence{})

	assert.Equal(t, 0, p.CurrentStep)
	assert.Equal(t, 0, p.ProgressPercentage)
	assert.Empty(t, p.CompletedSteps)
	require.NotNil(t, p.NextStep)
	assert.Equal(t, 1, p.NextStep.Number)
}

func TestDerive_SoloRegistro(t *testing.T) {
	p := onboarding.Derive(onboarding.Evidence{UserExists: true})

	assert.Equal(t, 1, p.CurrentStep)
	assert.Equal(t, 10, p.ProgressPercentage)
	assert.Equal(t, "company", p.NextStep.Code)
}

func TestDerive_SuscripcionActivaCompletaPasos3a5(t *testing.T) {
	p := onboarding.Derive(onboarding.Evidence{UserExists: true, CompanyLinked: true, ActiveSubscription: true, CompanyUsers: 1})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.CompletedSteps)
	assert.Equal(t, 50, p.ProgressPercentage)
	assert.Equal(t, 6, p.NextStep.Number)
}

func TestDerive_EvidenciaSinSuscripcionNoCuenta(t *testing.T) {
	p := onboarding.Derive(onboarding.Evidence{
		UserExists: true, CompanyLinked: true,
		CompanyUsers: 4, EnabledModules: 3, FieldPolicies: 2, Lifecycle: entity.LifecycleActive,
	})

	assert.Equal(t, 2, p.CurrentStep)
	assert.Equal(t, []int{1, 2}, p.CompletedSteps)
}

func TestDerive_PasoOpcionalSinTitular(t *testing.T) {
	p := onboarding.Derive(onboarding.Evidence{
		UserExists: true, CompanyLinked: true, ActiveSubscription: true,
		CompanyUsers: 3, EnabledModules: 2,
	})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 8}, p.CompletedSteps)
	assert.Equal(t, 8, p.CurrentStep)
	assert.Equal(t, 80, p.ProgressPercentage)
	assert.Equal(t, "flac", p.NextStep.Code)
}

func TestDerive_FlujoCompleto(t *testing.T) {
	for _, lifecycle := range []string{entity.LifecycleTrial, entity.LifecycleActive} {
		p := onboarding.Derive(onboarding.Evidence{
			UserExists: true, CompanyLinked: true, ActiveSubscription: true,
			CompanyUsers: 2, SuperPlanHolder: true, EnabledModules: 1, FieldPolicies: 1,
			Lifecycle: lifecycle,
		})

		assert.True(t, p.Completed)
		assert.Equal(t, 100, p.ProgressPercentage)
		assert.Nil(t, p.NextStep)
		assert.Len(t, p.CompletedSteps, onboarding.TotalSteps)
	}
}

func TestDerive_Determinista(t *testing.T) {
	ev := onboarding.Evidence{UserExists: true, CompanyLinked: true, ActiveSubscription: true, CompanyUsers: 2}
	assert.Equal(t, onboarding.Derive(ev), onboarding.Derive(ev))
}
