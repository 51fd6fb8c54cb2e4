package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"cityinfo/docs"
	"cityinfo/internal/apiversion"
	"cityinfo/internal/auth"
	"cityinfo/internal/config"
	"cityinfo/internal/database"
	handlers "cityinfo/internal/http/handler"
	"cityinfo/internal/http/middleware"
	"cityinfo/internal/logger"
	"cityinfo/internal/otel"
	"cityinfo/internal/service"
	"cityinfo/internal/storage"
)

// @title                       City Info API
// @version                     1.0
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log, cfg.ServiceName)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing shutdown error", zap.Error(err))
		}
	}()

	// ---- readiness dependencies ----
	pgDep := handlers.Dependency{Name: "postgres"}
	if cfg.Database.Enabled() {
		var db *sql.DB
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		pgDep.Check = db.PingContext
	}

	storeDep := handlers.Dependency{Name: "object_storage"}
	if cfg.MinIO.Enabled() {
		bucket, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
		storeDep.Check = bucket.Ping
	}

	// ---- request pipeline ----
	versions, err := apiversion.NewSet(cfg.API.SupportedVersions...)
	if err != nil {
		log.Fatal("invalid API_SUPPORTED_VERSIONS", zap.Error(err))
	}

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		log.Fatal("invalid auth configuration", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(log),
	})

	// RequestID first so every later log line and error body carries it.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())

	handlers.RegisterRoutes(app, handlers.RouteConfig{
		Logger:       log,
		Versions:     versions,
		Verifier:     verifier,
		TestService:  service.NewTestService(log),
		Dependencies: []handlers.Dependency{pgDep, storeDep},
		Metrics:      reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := cfg.AppHost + ":" + cfg.Port

	go func() {
		log.Info("server starting", zap.String("addr", addr), zap.String("api_versions", versions.Header()))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("server stopped cleanly")
}
