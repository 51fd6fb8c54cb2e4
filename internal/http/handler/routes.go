package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cityinfo/internal/apiversion"
	"cityinfo/internal/auth"
	"cityinfo/internal/http/middleware"
	"cityinfo/internal/service"
)

// RouteConfig carries what RegisterRoutes wires into the handlers.
type RouteConfig struct {
	Logger       *zap.Logger
	Versions     *apiversion.Set
	Verifier     *auth.Verifier
	TestService  service.TestService
	Dependencies []Dependency
	// Metrics enables GET /metrics when non-nil.
	Metrics prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, rc RouteConfig) {
	log := rc.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(log, rc.Dependencies...))

	if rc.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(rc.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/versions", GetVersions(rc.Versions))

	// Version is resolved before authentication: an unsupported version is a routing miss.
	api.Get("/:version/test/:id",
		middleware.APIVersion(rc.Versions),
		middleware.RequireAuth(rc.Verifier),
		GetTest(rc.TestService, log),
	)
}
