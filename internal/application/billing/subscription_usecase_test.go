package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/application/billing"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/testutil/memstore"
)

type fakeGenerator struct {
	got *billing.Receipt
	err error
}

func (f *fakeGenerator) GenerateReceiptPDF(_ context.Context, r *billing.Receipt) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func setup(t *testing.T, withSub bool) (*billing.SubscriptionUseCase, *fakeGenerator) {
	t.Helper()
	store := memstore.New()
	store.PutCompany(entity.Company{ID: "c-1", Name: "Acme", LifecycleStatus: entity.LifecycleActive})
	store.PutUser(entity.User{ID: "u-1", CompanyID: "c-1", Email: "a@acme.test", Status: entity.UserStatusActive})
	store.PutUser(entity.User{ID: "u-2", CompanyID: "c-1", Email: "b@acme.test", Status: entity.UserStatusActive})
	if withSub {
		start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.SubscriptionRepo().Create(context.Background(), &entity.Subscription{
			ID: "abcd1234-5678-4000-8000-000000000000", CompanyID: "c-1", PlanName: "Pro",
			LicenseCount: 10, BasePrice: 99990, DiscountPercent: decimal.Zero, FinalPrice: 99990,
			IsActive: true, StartsAt: start, EndsAt: start.AddDate(1, 0, 0),
		}))
	}
	gen := &fakeGenerator{}
	return billing.NewSubscriptionUseCase(store.CompanyRepo(), store.SubscriptionRepo(), store.UserRepo(), gen), gen
}

func TestCurrent_ConLicenciasOcupadas(t *testing.T) {
	uc, _ := setup(t, true)
	got, err := uc.Current(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Pro", got.PlanName)
	assert.Equal(t, 10, got.LicenseCount)
	assert.Equal(t, 2, got.SeatsUsed)
}

func TestCurrent_SinSuscripcion(t *testing.T) {
	uc, _ := setup(t, false)
	_, err := uc.Current(context.Background(), "c-1")
	assert.ErrorIs(t, err, domain.ErrNoSubscription)

	_, err = uc.Current(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNoCompany)
}

func TestDownloadReceipt_ArmaComprobante(t *testing.T) {
	uc, gen := setup(t, true)
	b, name, err := uc.DownloadReceipt(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, "%PDF-fake", string(b))
	assert.Equal(t, "comprobante_WS-2026-ABCD1234.pdf", name)
	require.NotNil(t, gen.got)
	assert.Equal(t, "Acme", gen.got.Company.Name)
	require.NotNil(t, gen.got.Plan)
	assert.Equal(t, "Pro", gen.got.Plan.Name)
	assert.Equal(t, 2, gen.got.SeatsUsed)
	assert.False(t, gen.got.IssuedAt.IsZero())
}

func TestDownloadReceipt_ErrorDelGenerador(t *testing.T) {
	uc, gen := setup(t, true)
	gen.err = errors.New("sin fuentes")
	_, _, err := uc.DownloadReceipt(context.Background(), "c-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin fuentes")
}

func TestReceiptNumber(t *testing.T) {
	at := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "WS-2027-ABC", billing.ReceiptNumber("abc", at))
}
