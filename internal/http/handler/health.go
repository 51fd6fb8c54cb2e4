package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cityinfo/internal/http/middleware"
)

const dependencyTimeout = 2 * time.Second

// Dependency is a readiness check. A nil Check marks the dependency as disabled.
type Dependency struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthCheck reports readiness: 200 with per-dependency status when every enabled
// dependency answers within 2s, otherwise 503.
func HealthCheck(log *zap.Logger, deps ...Dependency) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		checks := make(fiber.Map, len(deps))
		healthy := true

		for _, d := range deps {
			if d.Check == nil {
				checks[d.Name] = "disabled"
				continue
			}

			ctx, cancel := context.WithTimeout(c.UserContext(), dependencyTimeout)
			err := d.Check(ctx)
			cancel()

			if err != nil {
				healthy = false
				checks[d.Name] = "unavailable"
				log.Warn("dependency check failed",
					zap.String("request_id", middleware.RequestIDFromCtx(c)),
					zap.String("dependency", d.Name),
					zap.Error(err),
				)
				continue
			}
			checks[d.Name] = "ok"
		}

		if !healthy {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "checks": checks})
	}
}

// LivenessProbe answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
