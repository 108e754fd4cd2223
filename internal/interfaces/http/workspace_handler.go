package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/application/usecase"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// Collections ruta → tipo de registro del workspace.
var Collections = map[string]string{
	"accounts": entity.KindAccount,
	"leads":    entity.KindLead,
	"projects": entity.KindProject,
	"tasks":    entity.KindTask,
	"tickets":  entity.KindTicket,
}

// WorkspaceHandler CRUD genérico de registros; el tipo se fija al registrar la ruta.
type WorkspaceHandler struct {
	uc *usecase.WorkspaceUseCase
}

// NewWorkspaceHandler construye el handler.
func NewWorkspaceHandler(uc *usecase.WorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros visibles
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path   string  true   "accounts | leads | projects | tasks | tickets"
// @Param        limit       query  int     false  "Límite (máx 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope{data=dto.RecordListResponse}
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/{collection} [get]
func (h *WorkspaceHandler) List(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page dto.PageRequest
		if ok, err := bindQuery(c, &page); !ok {
			return err
		}
		out, err := h.uc.List(c.UserContext(), GetPrincipal(c), kind, page)
		if err != nil {
			return writeError(c, err)
		}
		return success(c, fiber.StatusOK, out)
	}
}

// Get godoc
// @Summary      Obtener registro
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "accounts | leads | projects | tasks | tickets"
// @Param        id          path  string  true  "ID del registro"
// @Success      200  {object}  dto.Envelope{data=dto.RecordResponse}
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/{collection}/{id} [get]
func (h *WorkspaceHandler) Get(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), kind, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return success(c, fiber.StatusOK, out)
	}
}

// Create godoc
// @Summary      Crear registro
// @Tags         workspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string                   true  "accounts | leads | projects | tasks | tickets"
// @Param        body        body  dto.CreateRecordRequest  true  "Registro"
// @Success      201  {object}  dto.Envelope{data=dto.RecordResponse}
// @Failure      400  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/{collection} [post]
func (h *WorkspaceHandler) Create(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.CreateRecordRequest
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), kind, in)
		if err != nil {
			return writeError(c, err)
		}
		return success(c, fiber.StatusCreated, out)
	}
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         workspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string                   true  "accounts | leads | projects | tasks | tickets"
// @Param        id          path  string                   true  "ID del registro"
// @Param        body        body  dto.UpdateRecordRequest  true  "Cambios"
// @Success      200  {object}  dto.Envelope{data=dto.RecordResponse}
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/{collection}/{id} [put]
func (h *WorkspaceHandler) Update(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.UpdateRecordRequest
		if ok, err := bindJSON(c, &in); !ok {
			return err
		}
		out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), kind, c.Params("id"), in)
		if err != nil {
			return writeError(c, err)
		}
		return success(c, fiber.StatusOK, out)
	}
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Param        collection  path  string  true  "accounts | leads | projects | tasks | tickets"
// @Param        id          path  string  true  "ID del registro"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/{collection}/{id} [delete]
func (h *WorkspaceHandler) Delete(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), kind, id); err != nil {
			return writeError(c, err)
		}
		return success(c, fiber.StatusOK, fiber.Map{"id": id, "deleted": true})
	}
}
