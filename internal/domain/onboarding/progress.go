// Package onboarding deriva el avance del onboarding de 10 pasos a partir de las
// entidades persistidas. No existe un contador guardado: el avance se recalcula en
// cada consulta y el flujo puede retomarse tras una caída.
package onboarding

import "github.com/jhoicas/workspace-api/internal/domain/entity"

// TotalSteps número de pasos del flujo.
const TotalSteps = 10

// Step describe un paso del flujo.
type Step struct {
	Number   int    `json:"number"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Optional bool   `json:"optional"`
}

// Steps pasos en orden.
var Steps = []Step{
	{Number: 1, Code: "signup", Title: "Registro"},
	{Number: 2, Code: "company", Title: "Datos de la empresa"},
	{Number: 3, Code: "plans", Title: "Plan anual"},
	{Number: 4, Code: "license_bucket", Title: "Paquete de licencias"},
	{Number: 5, Code: "payment", Title: "Pago o activación de prueba"},
	{Number: 6, Code: "add_users", Title: "Invitar usuarios"},
	{Number: 7, Code: "special_permission", Title: "Permiso super_plan_access", Optional: true},
	{Number: 8, Code: "modules", Title: "Habilitar módulos"},
	{Number: 9, Code: "flac", Title: "Acceso por campo (FLAC)"},
	{Number: 10, Code: "workspace_ready", Title: "Espacio de trabajo listo"},
}

// Evidence hechos persistidos que prueban cada paso.
type Evidence struct {
	UserExists         bool
	CompanyLinked      bool
	ActiveSubscription bool
	CompanyUsers       int // usuarios activos o pendientes
	SuperPlanHolder    bool
	EnabledModules     int
	FieldPolicies      int
	Lifecycle          string
}

// Progress estado derivado.
type Progress struct {
	CompletedSteps     []int
	CurrentStep        int // último paso con evidencia (0 = ninguno)
	NextStep           *Step
	ProgressPercentage int
	Completed          bool
}

// Derive calcula el avance. Los pasos posteriores a la empresa solo cuentan con empresa
// vinculada y los posteriores al pago solo con suscripción activa. Los pasos 3 y 4 no
// persisten nada propio: la suscripción activa los prueba.
func Derive(ev Evidence) Progress {
	done := make(map[int]bool, TotalSteps)
	done[1] = ev.UserExists
	if ev.UserExists && ev.CompanyLinked {
		done[2] = true
		if ev.ActiveSubscription {
			done[3], done[4], done[5] = true, true, true
			done[6] = ev.CompanyUsers > 1
			done[7] = ev.SuperPlanHolder
			done[8] = ev.EnabledModules > 0
			done[9] = ev.FieldPolicies > 0
			done[10] = ev.Lifecycle == entity.LifecycleTrial || ev.Lifecycle == entity.LifecycleActive
		}
	}

	p := Progress{CompletedSteps: []int{}}
	for _, s := range Steps {
		if done[s.Number] {
			p.CompletedSteps = append(p.CompletedSteps, s.Number)
			p.CurrentStep = s.Number
		}
	}
	p.ProgressPercentage = p.CurrentStep * 100 / TotalSteps
	p.Completed = p.CurrentStep == TotalSteps
	if !p.Completed {
		next := Steps[p.CurrentStep]
		p.NextStep = &next
	}
	return p
}
