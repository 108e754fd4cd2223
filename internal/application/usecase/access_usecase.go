package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// AccessChecker resuelve principals y evalúa sin convertir la denegación en error.
type AccessChecker interface {
	Principal(ctx context.Context, userID string) (access.Principal, error)
	Check(ctx context.Context, p access.Principal, module, permission string, rec *entity.WorkspaceRecord) (access.Decision, error)
}

// AccessUseCase diagnóstico del evaluador: devuelve la decisión con todas las banderas.
type AccessUseCase struct {
	checker AccessChecker
	records repository.RecordRepository
}

// NewAccessUseCase construye el caso de uso.
func NewAccessUseCase(checker AccessChecker, records repository.RecordRepository) *AccessUseCase {
	return &AccessUseCase{checker: checker, records: records}
}

// Check evalúa al usuario indicado (o al propio llamador). Consultar a otro usuario exige
// ser platform_admin o super_admin de la misma empresa.
func (uc *AccessUseCase) Check(ctx context.Context, caller access.Principal, in dto.AccessCheckRequest) (*access.Decision, error) {
	if in.RecordID != "" && in.RecordKind == "" {
		return nil, fmt.Errorf("%w: record_kind es obligatorio con record_id", domain.ErrInvalidInput)
	}

	target := caller
	if in.UserID != "" && in.UserID != caller.UserID {
		p, err := uc.checker.Principal(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		if !caller.PlatformAdmin && (p.CompanyID != caller.CompanyID || !caller.HasRole(entity.RoleSuperAdmin)) {
			return nil, fmt.Errorf("%w: solo un super_admin puede diagnosticar a otros usuarios", domain.ErrForbidden)
		}
		target = p
	}

	var rec *entity.WorkspaceRecord
	if in.RecordID != "" {
		var err error
		rec, err = uc.records.GetByID(ctx, target.CompanyID, in.RecordKind, in.RecordID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, domain.ErrNotFound
		}
	}

	d, err := uc.checker.Check(ctx, target, in.Module, in.Permission, rec)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
