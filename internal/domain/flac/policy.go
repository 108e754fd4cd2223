// Package flac resuelve el control de acceso por campo (view/edit/hidden) de los
// registros del workspace.
package flac

import (
	"sort"

	"github.com/jhoicas/workspace-api/internal/domain"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
)

// rank orden de permisividad: hidden < view < edit.
func rank(v string) int {
	switch v {
	case entity.FieldEdit:
		return 2
	case entity.FieldView:
		return 1
	default:
		return 0
	}
}

// ValidVisibility informa si v es un nivel FLAC conocido.
func ValidVisibility(v string) bool {
	return v == entity.FieldHidden || v == entity.FieldView || v == entity.FieldEdit
}

// Matrix nivel efectivo por campo. Los campos ausentes son editables.
type Matrix map[string]string

// Resolve combina las políticas del módulo para los roles del usuario, tomando el nivel
// más permisivo entre roles. Un rol sin política para un campo lo deja editable.
func Resolve(policies []entity.FieldPolicy, roleCodes []string, module string) Matrix {
	byRole := make(map[string]map[string]string)
	fields := make(map[string]bool)
	for _, p := range policies {
		if p.Module != module {
			continue
		}
		if byRole[p.RoleCode] == nil {
			byRole[p.RoleCode] = make(map[string]string)
		}
		byRole[p.RoleCode][p.Field] = p.Visibility
		fields[p.Field] = true
	}

	m := make(Matrix, len(fields))
	if len(roleCodes) == 0 {
		return m
	}
	for field := range fields {
		best := entity.FieldHidden
		for _, role := range roleCodes {
			level, ok := byRole[role][field]
			if !ok {
				level = entity.FieldEdit
			}
			if rank(level) > rank(best) {
				best = level
			}
		}
		if best != entity.FieldEdit {
			m[field] = best
		}
	}
	return m
}

// Level nivel del campo.
func (m Matrix) Level(field string) string {
	if v, ok := m[field]; ok {
		return v
	}
	return entity.FieldEdit
}

// Filter devuelve una copia de data sin los campos ocultos.
func (m Matrix) Filter(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if m.Level(k) == entity.FieldHidden {
			continue
		}
		out[k] = v
	}
	return out
}

// CheckWritable falla con *domain.FieldAccessError en el primer campo (orden alfabético)
// que no es editable.
func (m Matrix) CheckWritable(data map[string]any) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if level := m.Level(k); level != entity.FieldEdit {
			return &domain.FieldAccessError{Field: k, Visibility: level}
		}
	}
	return nil
}

// HiddenFields campos ocultos, ordenados.
func (m Matrix) HiddenFields() []string {
	var out []string
	for k, v := range m {
		if v == entity.FieldHidden {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
