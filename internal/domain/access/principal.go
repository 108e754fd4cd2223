package access

import (
	"fmt"

	"github.com/jhoicas/workspace-api/internal/domain"
)

// Principal usuario autenticado ya resuelto contra la base.
type Principal struct {
	UserID        string
	CompanyID     string
	TeamID        string
	RoleCodes     []string // roles activos del usuario en su empresa
	PlatformAdmin bool
}

// HasRole informa si el usuario tiene asignado alguno de los códigos.
func (p Principal) HasRole(codes ...string) bool {
	for _, held := range p.RoleCodes {
		for _, c := range codes {
			if held == c {
				return true
			}
		}
	}
	return false
}

// DeniedError denegación esperada con el diagnóstico completo.
type DeniedError struct {
	Module     string
	Permission string
	Decision   Decision
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("acceso denegado a %s:%s (%s)", e.Module, e.Permission, e.Decision.Reason)
}

func (e *DeniedError) Unwrap() error { return domain.ErrForbidden }
