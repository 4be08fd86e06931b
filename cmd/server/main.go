package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jessndots/express-jobly/auth"
	authHandlers "github.com/jessndots/express-jobly/auth/handlers"
	"github.com/jessndots/express-jobly/companies"
	companyHandlers "github.com/jessndots/express-jobly/companies/handlers"
	companyRepository "github.com/jessndots/express-jobly/companies/repository"
	companyServices "github.com/jessndots/express-jobly/companies/services"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/jessndots/express-jobly/internal/auth/tokens"
	"github.com/jessndots/express-jobly/internal/cache"
	"github.com/jessndots/express-jobly/internal/database/observability"
	"github.com/jessndots/express-jobly/internal/database/postgres"
	"github.com/jessndots/express-jobly/internal/middleware/requestid"
	applog "github.com/jessndots/express-jobly/internal/pkg/log"
	platformconfig "github.com/jessndots/express-jobly/internal/platform/config"
	"github.com/jessndots/express-jobly/jobs"
	jobHandlers "github.com/jessndots/express-jobly/jobs/handlers"
	jobRepository "github.com/jessndots/express-jobly/jobs/repository"
	jobServices "github.com/jessndots/express-jobly/jobs/services"
	"github.com/jessndots/express-jobly/users"
	userHandlers "github.com/jessndots/express-jobly/users/handlers"
	userRepository "github.com/jessndots/express-jobly/users/repository"
	userServices "github.com/jessndots/express-jobly/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}
	applog.SetDebug(cfg.Server.Debug)

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	cacheService, err := cache.NewService(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to create cache service: %v", err)
	}
	defer cacheService.Close()

	issuer, err := tokens.NewIssuer(cfg.JWT)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observability.MustRegister(registry)

	app := fiber.New(fiber.Config{
		// Handlers answer errors themselves; this only covers fiber's own
		// errors such as unmatched routes.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				code := apperrors.CodeInvalidRequest
				if fe.Code == fiber.StatusNotFound {
					code = apperrors.CodeNotFound
				}
				return c.Status(fe.Code).JSON(apperrors.ErrorResponse{Code: code, Message: fe.Message})
			}
			return apperrors.HandleError(c, err)
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, PATCH, OPTIONS",
	}))
	app.Use(observability.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	companyRepo := companyRepository.NewPostgresRepository(pgClient)
	jobRepo := jobRepository.NewPostgresRepository(pgClient)
	userRepo := userRepository.NewPostgresRepository(pgClient)

	userService := userServices.NewService(userRepo, cfg.Security)

	auth.RegisterRoutes(app, &auth.AuthHandlers{
		AuthHandler: authHandlers.NewAuthHandler(userService, issuer),
	}, cfg)
	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyServices.NewService(companyRepo, cacheService)),
	}, cfg)
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobServices.NewService(jobRepo, cacheService)),
	}, cfg)
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userService, issuer),
	}, cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		applog.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			applog.Error("Shutdown failed: %v", err)
		}
	}()

	applog.Info("Starting Jobly API on %s", cfg.Server.Addr())
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
