package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/application/billing"
)

// SubscriptionHandler suscripción vigente y su comprobante.
type SubscriptionHandler struct {
	uc *billing.SubscriptionUseCase
}

// NewSubscriptionHandler construye el handler.
func NewSubscriptionHandler(uc *billing.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// Current godoc
// @Summary      Suscripción vigente
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.SubscriptionResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/subscriptions/current [get]
func (h *SubscriptionHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         subscriptions
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/subscriptions/current/receipt [get]
func (h *SubscriptionHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadReceipt(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}
