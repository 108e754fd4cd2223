package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/workspace-api/internal/application/dto"
	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/internal/domain/flac"
	"github.com/jhoicas/workspace-api/internal/domain/repository"
)

// Authorizer decide el acceso; una denegación devuelve *access.DeniedError.
type Authorizer interface {
	Authorize(ctx context.Context, p access.Principal, module, permission string, rec *entity.WorkspaceRecord) (access.Decision, error)
}

// WorkspaceUseCase CRUD de registros del workspace (cuentas, leads, proyectos, tareas, tickets).
// Cada operación pasa por el evaluador de acceso y por FLAC.
type WorkspaceUseCase struct {
	records  repository.RecordRepository
	policies repository.FieldPolicyRepository
	authz    Authorizer
	now      func() time.Time
}

// NewWorkspaceUseCase construye el caso de uso.
func NewWorkspaceUseCase(records repository.RecordRepository, policies repository.FieldPolicyRepository, authz Authorizer) *WorkspaceUseCase {
	return &WorkspaceUseCase{records: records, policies: policies, authz: authz, now: time.Now}
}

// List registros visibles para el usuario, con los campos ocultos retirados.
func (uc *WorkspaceUseCase) List(ctx context.Context, p access.Principal, kind string, page dto.PageRequest) (*dto.RecordListResponse, error) {
	module, err := moduleFor(kind)
	if err != nil {
		return nil, err
	}
	if _, err := uc.authz.Authorize(ctx, p, module, entity.PermView, nil); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.records.ListVisible(ctx, repository.RecordFilter{
		CompanyID:   p.CompanyID,
		Kind:        kind,
		UserID:      p.UserID,
		TeamID:      p.TeamID,
		CompanyWide: companyWide(p),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return nil, err
	}
	matrix, err := uc.matrix(ctx, p, module)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, dto.ToRecordResponse(rec, matrix.Filter(rec.Data)))
	}
	return &dto.RecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get un registro; la visibilidad se valida en la etapa 4 del evaluador.
func (uc *WorkspaceUseCase) Get(ctx context.Context, p access.Principal, kind, id string) (*dto.RecordResponse, error) {
	module, rec, err := uc.load(ctx, p, kind, id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.authz.Authorize(ctx, p, module, entity.PermView, rec); err != nil {
		return nil, err
	}
	return uc.respond(ctx, p, module, rec)
}

// Create alta de un registro. El creador queda como dueño y la visibilidad por defecto es team.
func (uc *WorkspaceUseCase) Create(ctx context.Context, p access.Principal, kind string, in dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	module, err := moduleFor(kind)
	if err != nil {
		return nil, err
	}
	if p.CompanyID == "" {
		return nil, domain.ErrNoCompany
	}
	if _, err := uc.authz.Authorize(ctx, p, module, entity.PermCreate, nil); err != nil {
		return nil, err
	}
	matrix, err := uc.matrix(ctx, p, module)
	if err != nil {
		return nil, err
	}
	if err := matrix.CheckWritable(in.Data); err != nil {
		return nil, err
	}

	now := uc.now()
	rec := &entity.WorkspaceRecord{
		ID:         uuid.New().String(),
		CompanyID:  p.CompanyID,
		Kind:       kind,
		Title:      strings.TrimSpace(in.Title),
		Data:       in.Data,
		OwnerID:    p.UserID,
		TeamID:     in.TeamID,
		Visibility: in.Visibility,
		SharedWith: dedupe(in.SharedWith),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if rec.Data == nil {
		rec.Data = map[string]any{}
	}
	if rec.TeamID == "" {
		rec.TeamID = p.TeamID
	}
	if rec.Visibility == "" {
		rec.Visibility = entity.VisibilityTeam
	}
	if err := uc.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}
	return uc.respond(ctx, p, module, rec)
}

// Update actualización parcial. Los campos de Data se fusionan; cambiar visibilidad o
// compartidos exige ser el dueño o tener el permiso share.
func (uc *WorkspaceUseCase) Update(ctx context.Context, p access.Principal, kind, id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	module, rec, err := uc.load(ctx, p, kind, id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.authz.Authorize(ctx, p, module, entity.PermUpdate, rec); err != nil {
		return nil, err
	}
	sharing := in.Visibility != nil || in.SharedWith != nil
	if sharing && rec.OwnerID != p.UserID {
		if _, err := uc.authz.Authorize(ctx, p, module, entity.PermShare, rec); err != nil {
			return nil, err
		}
	}
	matrix, err := uc.matrix(ctx, p, module)
	if err != nil {
		return nil, err
	}
	if err := matrix.CheckWritable(in.Data); err != nil {
		return nil, err
	}

	if in.Title != nil {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if rec.Data == nil {
		rec.Data = map[string]any{}
	}
	for k, v := range in.Data {
		rec.Data[k] = v
	}
	if in.Visibility != nil {
		rec.Visibility = *in.Visibility
	}
	if in.SharedWith != nil {
		rec.SharedWith = dedupe(in.SharedWith)
	}
	rec.UpdatedAt = uc.now()
	if err := uc.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return uc.respond(ctx, p, module, rec)
}

// Delete elimina el registro.
func (uc *WorkspaceUseCase) Delete(ctx context.Context, p access.Principal, kind, id string) error {
	module, rec, err := uc.load(ctx, p, kind, id)
	if err != nil {
		return err
	}
	if _, err := uc.authz.Authorize(ctx, p, module, entity.PermDelete, rec); err != nil {
		return err
	}
	return uc.records.Delete(ctx, p.CompanyID, kind, id)
}

// Lookup carga un registro sin autorizar, para diagnósticos de acceso.
func (uc *WorkspaceUseCase) Lookup(ctx context.Context, companyID, kind, id string) (*entity.WorkspaceRecord, error) {
	if _, err := moduleFor(kind); err != nil {
		return nil, err
	}
	rec, err := uc.records.GetByID(ctx, companyID, kind, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (uc *WorkspaceUseCase) load(ctx context.Context, p access.Principal, kind, id string) (string, *entity.WorkspaceRecord, error) {
	module, err := moduleFor(kind)
	if err != nil {
		return "", nil, err
	}
	if p.CompanyID == "" {
		return "", nil, domain.ErrNoCompany
	}
	rec, err := uc.Lookup(ctx, p.CompanyID, kind, id)
	if err != nil {
		return "", nil, err
	}
	return module, rec, nil
}

func (uc *WorkspaceUseCase) respond(ctx context.Context, p access.Principal, module string, rec *entity.WorkspaceRecord) (*dto.RecordResponse, error) {
	matrix, err := uc.matrix(ctx, p, module)
	if err != nil {
		return nil, err
	}
	out := dto.ToRecordResponse(rec, matrix.Filter(rec.Data))
	return &out, nil
}

// matrix FLAC efectiva; platform_admin no tiene restricciones de campo.
func (uc *WorkspaceUseCase) matrix(ctx context.Context, p access.Principal, module string) (flac.Matrix, error) {
	if p.PlatformAdmin || p.CompanyID == "" {
		return flac.Matrix{}, nil
	}
	policies, err := uc.policies.ListByCompany(ctx, p.CompanyID, module)
	if err != nil {
		return nil, err
	}
	return flac.Resolve(policies, p.RoleCodes, module), nil
}

func companyWide(p access.Principal) bool {
	return p.PlatformAdmin || p.HasRole(entity.RoleSuperAdmin)
}

func moduleFor(kind string) (string, error) {
	module, ok := entity.KindModules[kind]
	if !ok {
		return "", fmt.Errorf("%w: tipo de registro %q", domain.ErrInvalidInput, kind)
	}
	return module, nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
