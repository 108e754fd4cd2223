package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/workspace-api/internal/application/auth"
	"github.com/jhoicas/workspace-api/internal/application/authz"
	"github.com/jhoicas/workspace-api/internal/application/billing"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/application/usecase"
	"github.com/jhoicas/workspace-api/internal/domain/entity"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	Authz          *authz.Service
	Onboarding     *onboarding.Service
	WorkspaceUC    *usecase.WorkspaceUseCase
	AccessUC       *usecase.AccessUseCase
	ModuleService  *usecase.ModuleService
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	SubscriptionUC *billing.SubscriptionUseCase
	Idempotency    IdempotencyStore // nil desactiva la idempotencia
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *logger.Logger
}

// NewApp construye la app Fiber con el manejador de errores del sobre, los middlewares
// globales y todas las rutas registradas.
func NewApp(appName string, deps RouterDeps) *fiber.App {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(RequestLogger(deps.Logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return success(c, fiber.StatusOK, fiber.Map{"status": "ok", "service": appName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API bajo /api/v1. StrictRouting queda desactivado,
// por lo que la barra final es opcional. Las rutas protegidas se montan en grupos con
// prefijo propio: una ruta inexistente responde 404 y no 401.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público, con límite por IP)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	limited := RateLimit(deps.RateLimitRPS, deps.RateLimitBurst)
	authGroup.Post("/signup", limited, authHandler.Signup)
	authGroup.Post("/login", limited, authHandler.Login)
	authGroup.Post("/accept-invite", limited, authHandler.AcceptInvite)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Authz)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	idem := Idempotency(deps.Idempotency)
	protected := func(prefix string, extra ...fiber.Handler) fiber.Router {
		return api.Group(prefix, append([]fiber.Handler{requireAuth, idem}, extra...)...)
	}

	// Onboarding
	ob := NewOnboardingHandler(deps.Onboarding)
	onboard := protected("/onboarding")
	onboard.Get("/status", ob.Status)
	steps := onboard.Group("/complete")
	steps.Post("/step2-company", ob.SetupCompany)
	steps.Get("/step3-plans", ob.Plans)
	steps.Post("/step4-license-bucket", ob.LicenseBucket)
	steps.Post("/step5-payment", ob.Payment)
	steps.Post("/step6-add-users", ob.AddUsers)
	steps.Post("/step7-special-permission", ob.GrantSuperPermission)
	steps.Delete("/step7-special-permission", ob.RevokeSuperPermission)
	steps.Post("/step8-modules", ob.EnableModules)
	steps.Post("/step9-flac", ob.ConfigureFLAC)
	steps.Post("/step10-finish", ob.Finish)

	// Acceso y catálogo
	accessHandler := NewAccessHandler(deps.AccessUC, deps.ModuleService)
	protected("/modules").Get("/", accessHandler.Modules)
	protected("/access").Post("/check", accessHandler.Check)

	// Empresa, usuarios y suscripción
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected("/companies").Get("/current", companyHandler.Current)

	userHandler := NewUserHandler(deps.UserUC)
	users := protected("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	subHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs := protected("/subscriptions")
	subs.Get("/current", subHandler.Current)
	subs.Get("/current/receipt", subHandler.Receipt)

	// Registros del workspace: cada colección exige su módulo activo
	ws := NewWorkspaceHandler(deps.WorkspaceUC)
	for path, kind := range Collections {
		g := protected("/"+path, RequireModule(entity.KindModules[kind], deps.Authz))
		g.Get("/", ws.List(kind))
		g.Post("/", ws.Create(kind))
		g.Get("/:id", ws.Get(kind))
		g.Put("/:id", ws.Update(kind))
		g.Delete("/:id", ws.Delete(kind))
	}
}
