package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
)

// OnboardingHandler expone los pasos 2 a 10 del alta. Todos los POST aceptan Idempotency-Key.
type OnboardingHandler struct {
	svc *onboarding.Service
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(svc *onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// Status godoc
// @Summary      Avance del onboarding
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.OnboardingStatusResponse}
// @Router       /api/v1/onboarding/status [get]
func (h *OnboardingHandler) Status(c *fiber.Ctx) error {
	out, err := h.svc.Status(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// SetupCompany godoc
// @Summary      Paso 2: crear empresa
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CompanySetupRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.Envelope{data=dto.CompanySetupResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/onboarding/complete/step2-company [post]
func (h *OnboardingHandler) SetupCompany(c *fiber.Ctx) error {
	var in dto.CompanySetupRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.SetupCompany(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// Plans godoc
// @Summary      Paso 3: planes y paquetes de licencias
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.PlansResponse}
// @Router       /api/v1/onboarding/complete/step3-plans [get]
func (h *OnboardingHandler) Plans(c *fiber.Ctx) error {
	out, err := h.svc.Plans(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// LicenseBucket godoc
// @Summary      Paso 4: cotización anual
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LicenseBucketRequest  true  "plan_name, license_count"
// @Success      200   {object}  dto.Envelope{data=dto.QuoteResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/onboarding/complete/step4-license-bucket [post]
func (h *OnboardingHandler) LicenseBucket(c *fiber.Ctx) error {
	var in dto.LicenseBucketRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.LicenseBucket(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// Payment godoc
// @Summary      Paso 5: activar suscripción o prueba
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header  string  false  "Clave de reintento"
// @Param        body  body  dto.PaymentRequest  true  "plan_name, license_count, payment_method"
// @Success      200   {object}  dto.Envelope{data=dto.PaymentResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /api/v1/onboarding/complete/step5-payment [post]
func (h *OnboardingHandler) Payment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.Payment(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// AddUsers godoc
// @Summary      Paso 6: invitar usuarios
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddUsersRequest  true  "Usuarios a invitar"
// @Success      200   {object}  dto.Envelope{data=dto.AddUsersResponse}
// @Failure      403   {object}  dto.Envelope  "SEAT_LIMIT_REACHED"
// @Router       /api/v1/onboarding/complete/step6-add-users [post]
func (h *OnboardingHandler) AddUsers(c *fiber.Ctx) error {
	var in dto.AddUsersRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.AddUsers(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// GrantSuperPermission godoc
// @Summary      Paso 7: asignar super_plan_access
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SpecialPermissionRequest  true  "user_id"
// @Success      200   {object}  dto.Envelope{data=dto.SpecialPermissionResponse}
// @Failure      403   {object}  dto.Envelope
// @Router       /api/v1/onboarding/complete/step7-special-permission [post]
func (h *OnboardingHandler) GrantSuperPermission(c *fiber.Ctx) error {
	var in dto.SpecialPermissionRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.GrantSuperPermission(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// RevokeSuperPermission godoc
// @Summary      Paso 7: revocar super_plan_access
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.Envelope{data=dto.SpecialPermissionResponse}
// @Router       /api/v1/onboarding/complete/step7-special-permission [delete]
func (h *OnboardingHandler) RevokeSuperPermission(c *fiber.Ctx) error {
	out, err := h.svc.RevokeSuperPermission(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// EnableModules godoc
// @Summary      Paso 8: habilitar módulos
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EnableModulesRequest  true  "Códigos de módulo"
// @Success      200   {object}  dto.Envelope{data=dto.EnableModulesResponse}
// @Router       /api/v1/onboarding/complete/step8-modules [post]
func (h *OnboardingHandler) EnableModules(c *fiber.Ctx) error {
	var in dto.EnableModulesRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.EnableModules(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// ConfigureFLAC godoc
// @Summary      Paso 9: políticas de acceso por campo
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.FLACRequest  true  "Políticas"
// @Success      200   {object}  dto.Envelope{data=dto.FLACResponse}
// @Router       /api/v1/onboarding/complete/step9-flac [post]
func (h *OnboardingHandler) ConfigureFLAC(c *fiber.Ctx) error {
	var in dto.FLACRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.svc.ConfigureFLAC(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}

// Finish godoc
// @Summary      Paso 10: finalizar onboarding
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.Envelope{data=dto.FinishResponse}
// @Router       /api/v1/onboarding/complete/step10-finish [post]
func (h *OnboardingHandler) Finish(c *fiber.Ctx) error {
	out, err := h.svc.Finish(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return success(c, fiber.StatusOK, out)
}
