package billing

import (
	"context"
	"time"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// Receipt datos del comprobante de una suscripción.
type Receipt struct {
	Number       string
	IssuedAt     time.Time
	Company      *entity.Company
	Subscription *entity.Subscription
	Plan         *entity.SubscriptionPlan
	SeatsUsed    int
}

// ReceiptPDFGenerator genera el PDF del comprobante.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, r *Receipt) ([]byte, error)
}
