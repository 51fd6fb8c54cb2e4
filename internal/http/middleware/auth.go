package middleware

import (
	"github.com/gofiber/fiber/v2"

	"cityinfo/internal/auth"
)

// UserIDLocalKey holds the authenticated subject.
const UserIDLocalKey = "user_id"

// RequireAuth rejects requests without a valid bearer token. Failures are returned
// as auth.ErrMissingToken / auth.ErrInvalidToken for the global error handler to render.
func RequireAuth(v *auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		claims, err := v.Verify(raw)
		if err != nil {
			return err
		}

		c.Locals(UserIDLocalKey, claims.Subject)
		return c.Next()
	}
}
