// @title                       Workspace API
// @version                     1.0
// @description                 Workspace SaaS multi-empresa: onboarding, RBAC por módulo y registros con FLAC.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/workspace-api/docs"
	"github.com/jhoicas/workspace-api/internal/application/auth"
	"github.com/jhoicas/workspace-api/internal/application/authz"
	"github.com/jhoicas/workspace-api/internal/application/billing"
	"github.com/jhoicas/workspace-api/internal/application/onboarding"
	"github.com/jhoicas/workspace-api/internal/application/usecase"
	"github.com/jhoicas/workspace-api/internal/domain/access"
	infrakafka "github.com/jhoicas/workspace-api/internal/infrastructure/kafka"
	infrapdf "github.com/jhoicas/workspace-api/internal/infrastructure/pdf"
	"github.com/jhoicas/workspace-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/workspace-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/workspace-api/internal/interfaces/http"
	"github.com/jhoicas/workspace-api/pkg/config"
	"github.com/jhoicas/workspace-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	overrideRepo := postgres.NewOverrideRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	policyRepo := postgres.NewFieldPolicyRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Invitaciones: Kafka si hay brokers; si no, solo log.
	var invites onboarding.InvitePublisher = infrakafka.NewLogPublisher(log)
	if len(cfg.Kafka.Brokers) > 0 {
		kp := infrakafka.NewInvitePublisher(infrakafka.NewWriter(cfg.Kafka.Brokers), cfg.Kafka.InviteTopic)
		defer kp.Close()
		invites = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.InviteTopic).Msg("publicación de invitaciones en Kafka")
	}

	// Idempotencia: Redis opcional.
	var idem httpRouter.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := infraredis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		idem = infraredis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: Idempotency-Key desactivado")
	}

	authzSvc := authz.NewService(userRepo, roleRepo, moduleRepo, overrideRepo, access.NewEvaluator(cfg.RBAC.MaxInheritanceDepth), log)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	onboardingSvc := onboarding.NewService(postgres.Repos(pool), txRunner, authUC, invites, cfg.Onboarding.TrialDays, log)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Authz:          authzSvc,
		Onboarding:     onboardingSvc,
		WorkspaceUC:    usecase.NewWorkspaceUseCase(recordRepo, policyRepo, authzSvc),
		AccessUC:       usecase.NewAccessUseCase(authzSvc, recordRepo),
		ModuleService:  usecase.NewModuleService(moduleRepo),
		UserUC:         usecase.NewUserUseCase(userRepo),
		CompanyUC:      usecase.NewCompanyUseCase(companyRepo),
		SubscriptionUC: billing.NewSubscriptionUseCase(companyRepo, subRepo, userRepo, infrapdf.NewMarotoPDFGenerator()),
		Idempotency:    idem,
		JWTSecret:      cfg.JWT.Secret,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Logger:         log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Workspace API",
	}))

	// Documento generado por swag, con el host de esta instancia.
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
