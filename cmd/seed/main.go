// seed genera el script SQL que siembra el catálogo de módulos, roles, permisos,
// role_permissions y planes a partir de internal/domain/rbac.
//
// Uso: go run ./cmd/seed [ruta de salida]
// Por defecto escribe internal/infrastructure/postgres/migrations/002_seed_catalog.sql.
// Los IDs son UUID v5 derivados del código, así que el script es estable entre ejecuciones.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/workspace-api/internal/domain/rbac"
)

// seedNamespace espacio de nombres de los UUID v5 sembrados.
var seedNamespace = uuid.MustParse("0b6f3c52-5d1e-4c1a-9a57-3f8e2d7b9c10")

func main() {
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d módulos, %d roles, %d planes\n", outPath, len(rbac.Modules), len(rbac.Roles), len(rbac.Plans))
}

// SeedID UUID estable para una entidad sembrada (p. ej. "role:sales_manager").
func SeedID(key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(key)).String()
}

func writeSeed(w io.Writer) error {
	title := cases.Title(language.English)
	var b strings.Builder

	b.WriteString("-- Catálogo sembrado: módulos, roles, permisos, role_permissions y planes.\n")
	b.WriteString("-- Generado por cmd/seed a partir de internal/domain/rbac. No editar a mano.\n\n")

	b.WriteString("-- 1. Módulos\n")
	b.WriteString("INSERT INTO module_definitions (code, category, name, description, is_active) VALUES\n")
	for i, m := range rbac.Modules {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', %t)%s\n",
			m.Code, m.Category, escapeSQL(m.Name), escapeSQL(m.Description), m.IsActive, sep(i, len(rbac.Modules)))
	}
	b.WriteString("ON CONFLICT (code) DO UPDATE SET category = EXCLUDED.category, name = EXCLUDED.name,\n")
	b.WriteString("  description = EXCLUDED.description, is_active = EXCLUDED.is_active;\n\n")

	// Los padres se enlazan en una segunda pasada para no depender del orden de inserción.
	b.WriteString("-- 2. Roles\n")
	b.WriteString("INSERT INTO roles (id, code, name, level, category, module) VALUES\n")
	for i, r := range rbac.Roles {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d, '%s', %s)%s\n",
			SeedID("role:"+r.Code), r.Code, escapeSQL(r.Name), r.Level, r.Category, sqlNullable(r.Module), sep(i, len(rbac.Roles)))
	}
	b.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, level = EXCLUDED.level,\n")
	b.WriteString("  category = EXCLUDED.category, module = EXCLUDED.module;\n\n")
	for _, r := range rbac.Roles {
		if r.Parent == "" {
			continue
		}
		fmt.Fprintf(&b, "UPDATE roles SET parent_id = '%s' WHERE code = '%s';\n", SeedID("role:"+r.Parent), r.Code)
	}
	b.WriteString("\n")

	b.WriteString("-- 3. Permisos\n")
	b.WriteString("INSERT INTO permissions (id, code, module, name) VALUES\n")
	pairs := rbac.ModulePermissionPairs()
	total := len(pairs) + len(rbac.GlobalPermissions)
	n := 0
	for _, p := range pairs {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s')%s\n",
			SeedID("perm:"+p[0]+":"+p[1]), p[1], p[0], humanize(title, p[0]+" "+p[1]), sep(n, total))
		n++
	}
	for _, code := range rbac.GlobalPermissions {
		fmt.Fprintf(&b, "  ('%s', '%s', NULL, '%s')%s\n", SeedID("perm::"+code), code, humanize(title, code), sep(n, total))
		n++
	}
	b.WriteString("ON CONFLICT (code, module) DO UPDATE SET name = EXCLUDED.name;\n\n")

	b.WriteString("-- 4. Role permissions\n")
	b.WriteString("INSERT INTO role_permissions (role_id, permission_id) VALUES\n")
	var grants []string
	for _, r := range rbac.Roles {
		byModule := rbac.RolePermissions[r.Code]
		for _, mod := range sortedModules(byModule) {
			for _, perm := range byModule[mod] {
				grants = append(grants, fmt.Sprintf("  ('%s', '%s')", SeedID("role:"+r.Code), SeedID("perm:"+mod+":"+perm)))
			}
		}
	}
	b.WriteString(strings.Join(grants, ",\n"))
	b.WriteString("\nON CONFLICT DO NOTHING;\n\n")

	b.WriteString("-- 5. Planes\n")
	b.WriteString("INSERT INTO subscription_plans (id, name, description, price_per_seat_year, features, trial_eligible,\n")
	b.WriteString("  trial_days, trial_requires_card, recommended, status) VALUES\n")
	for i, p := range rbac.Plans {
		features := make([]string, len(p.Features))
		for j, f := range p.Features {
			features[j] = "'" + escapeSQL(f) + "'"
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', %d, ARRAY[%s]::text[], %t, %d, %t, %t, '%s')%s\n",
			SeedID("plan:"+p.Name), escapeSQL(p.Name), escapeSQL(p.Description), p.PricePerSeatYear,
			strings.Join(features, ", "), p.TrialEligible, p.TrialDays, p.TrialRequiresCard, p.Recommended, p.Status,
			sep(i, len(rbac.Plans)))
	}
	b.WriteString("ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description,\n")
	b.WriteString("  price_per_seat_year = EXCLUDED.price_per_seat_year, features = EXCLUDED.features,\n")
	b.WriteString("  trial_eligible = EXCLUDED.trial_eligible, trial_days = EXCLUDED.trial_days,\n")
	b.WriteString("  trial_requires_card = EXCLUDED.trial_requires_card, recommended = EXCLUDED.recommended,\n")
	b.WriteString("  status = EXCLUDED.status;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// humanize "sales manage_users" → "Sales Manage Users".
func humanize(c cases.Caser, s string) string {
	return escapeSQL(c.String(strings.ReplaceAll(s, "_", " ")))
}

func sortedModules(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func sqlNullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
