package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"cityinfo/internal/http/middleware"
	"cityinfo/internal/service"
)

const includePOIParam = "includePointsOfInterest"

// TestQuery holds the bound inputs of the test endpoint.
// IncludePointsOfInterest is accepted but does not change the response.
type TestQuery struct {
	ID                      int32
	IncludePointsOfInterest bool
}

// bindError is a 400 with a machine-readable code.
type bindError struct {
	code    string
	message string
}

func (e *bindError) Error() string { return e.message }

// bindTestQuery parses the path id and the optional flag.
func bindTestQuery(c *fiber.Ctx) (TestQuery, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		return TestQuery{}, &bindError{code: "INVALID_ID", message: "id must be a 32-bit integer"}
	}

	q := TestQuery{ID: int32(id)}
	if raw := c.Query(includePOIParam); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return TestQuery{}, &bindError{code: "INVALID_QUERY", message: includePOIParam + " must be a boolean"}
		}
		q.IncludePointsOfInterest = b
	}
	return q, nil
}

// GetTest godoc
//
// @Summary   Test endpoint
// @Tags      test
// @Param     version                  path   string true  "API version"  Enums(v1, v2)
// @Param     id                       path   int    true  "Resource identifier"
// @Param     includePointsOfInterest  query  bool   false "Accepted, currently without effect"  default(false)
// @Success   200  "empty body"
// @Failure   400  {object}  errorPayload
// @Failure   401  {object}  errorPayload
// @Security  BearerAuth
// @Router    /api/{version}/test/{id} [get]
func GetTest(svc service.TestService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := bindTestQuery(c)
		if err != nil {
			var be *bindError
			if errors.As(err, &be) {
				return writeError(c, fiber.StatusBadRequest, be.code, be.message)
			}
			return err
		}

		ctx := c.UserContext()
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int("test.id", int(q.ID)),
			attribute.Bool("test.include_points_of_interest", q.IncludePointsOfInterest),
		)
		log.Debug("get test",
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.Int32("id", q.ID),
			zap.Bool("include_points_of_interest", q.IncludePointsOfInterest),
		)

		svc.Test(ctx)
		svc.SecondTest(ctx)

		c.Status(fiber.StatusOK)
		return nil
	}
}
