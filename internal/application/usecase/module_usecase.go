package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// ModuleService expone el catálogo de módulos y su estado en cada empresa.
type ModuleService struct {
	modules repository.ModuleRepository
	now     func() time.Time
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(modules repository.ModuleRepository) *ModuleService {
	return &ModuleService{modules: modules, now: time.Now}
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la empresa no tiene el módulo contratado.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error) {
	if companyID == "" || moduleName == "" {
		return false, fmt.Errorf("module: companyID y moduleName son obligatorios")
	}
	return s.modules.HasActiveModule(ctx, companyID, moduleName)
}

// Catalog lista los módulos activos del catálogo marcando los habilitados para la empresa.
// companyID vacío devuelve el catálogo sin habilitar ninguno.
func (s *ModuleService) Catalog(ctx context.Context, companyID string) ([]dto.ModuleResponse, error) {
	defs, err := s.modules.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	enabled := make(map[string]bool)
	if companyID != "" {
		list, err := s.modules.ListCompanyModules(ctx, companyID)
		if err != nil {
			return nil, err
		}
		now := s.now()
		for i := range list {
			enabled[list[i].ModuleCode] = list[i].Usable(now)
		}
	}
	out := make([]dto.ModuleResponse, 0, len(defs))
	for _, d := range defs {
		if !d.IsActive {
			continue
		}
		out = append(out, dto.ModuleResponse{
			Code:        d.Code,
			Category:    d.Category,
			Name:        d.Name,
			Description: d.Description,
			Enabled:     enabled[d.Code],
		})
	}
	return out, nil
}
