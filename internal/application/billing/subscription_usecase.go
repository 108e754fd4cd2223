// Package billing expone la suscripción vigente de la empresa y su comprobante en PDF.
package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// SubscriptionUseCase consulta la suscripción activa y genera su comprobante.
type SubscriptionUseCase struct {
	companyRepo repository.CompanyRepository
	subRepo     repository.SubscriptionRepository
	userRepo    repository.UserRepository
	generator   ReceiptPDFGenerator
	now         func() time.Time
}

// NewSubscriptionUseCase construye el caso de uso inyectando todas sus dependencias.
func NewSubscriptionUseCase(
	companyRepo repository.CompanyRepository,
	subRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		companyRepo: companyRepo,
		subRepo:     subRepo,
		userRepo:    userRepo,
		generator:   generator,
		now:         time.Now,
	}
}

// Current suscripción activa con las licencias ocupadas.
func (uc *SubscriptionUseCase) Current(ctx context.Context, companyID string) (*dto.SubscriptionResponse, error) {
	r, err := uc.load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := dto.ToSubscriptionResponse(r.Subscription, r.SeatsUsed)
	return &out, nil
}

// DownloadReceipt genera el comprobante de la suscripción activa.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNoCompany        si el usuario aún no tiene empresa.
//   - domain.ErrNoSubscription   si la empresa no tiene suscripción activa.
func (uc *SubscriptionUseCase) DownloadReceipt(ctx context.Context, companyID string) (pdfBytes []byte, filename string, err error) {
	r, err := uc.load(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrCompanyNotFound
	}
	r.Company = company
	if r.Plan, err = uc.subRepo.GetPlanByName(ctx, r.Subscription.PlanName); err != nil {
		return nil, "", fmt.Errorf("receipt: obtener plan: %w", err)
	}
	r.IssuedAt = uc.now()
	r.Number = ReceiptNumber(r.Subscription.ID, r.Subscription.StartsAt)

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("comprobante_%s.pdf", r.Number), nil
}

// ReceiptNumber número legible: año de inicio + primeros 8 caracteres del ID.
func ReceiptNumber(subscriptionID string, startsAt time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(subscriptionID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("WS-%d-%s", startsAt.Year(), short)
}

func (uc *SubscriptionUseCase) load(ctx context.Context, companyID string) (*Receipt, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	sub, err := uc.subRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNoSubscription
	}
	seats, err := uc.userRepo.CountSeats(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &Receipt{Subscription: sub, SeatsUsed: seats}, nil
}
