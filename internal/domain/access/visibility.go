package access

import (
	"sort"

	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// Viewer relación del usuario con los registros de su empresa.
type Viewer struct {
	UserID      string
	CompanyID   string
	TeamID      string
	CompanyWide bool // super_admin: ve todos los registros de la empresa
}

// CanView aplica el nivel de visibilidad del registro.
//   - owner: solo el dueño.
//   - team: miembros del equipo del registro; sin equipo se comporta como company.
//   - company / public: cualquier usuario de la empresa.
//   - shared: el dueño y los usuarios de SharedWith.
//
// Un nivel desconocido se deniega.
func CanView(v Viewer, rec *entity.WorkspaceRecord) bool {
	if rec == nil || rec.CompanyID != v.CompanyID {
		return false
	}
	if v.CompanyWide || rec.OwnerID == v.UserID {
		return true
	}
	switch rec.Visibility {
	case entity.VisibilityOwner:
		return false
	case entity.VisibilityTeam:
		if rec.TeamID == "" {
			return true
		}
		return v.TeamID != "" && v.TeamID == rec.TeamID
	case entity.VisibilityCompany, entity.VisibilityPublic:
		return true
	case entity.VisibilityShared:
		for _, id := range rec.SharedWith {
			if id == v.UserID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ValidVisibility informa si v es un nivel de visibilidad conocido.
func ValidVisibility(v string) bool {
	switch v {
	case entity.VisibilityOwner, entity.VisibilityTeam, entity.VisibilityCompany,
		entity.VisibilityShared, entity.VisibilityPublic:
		return true
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
