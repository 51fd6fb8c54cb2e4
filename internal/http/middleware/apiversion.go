package middleware

import (
	"github.com/gofiber/fiber/v2"

	"cityinfo/internal/apiversion"
)

const (
	// SupportedVersionsHeader reports every version the endpoint accepts.
	SupportedVersionsHeader = "api-supported-versions"
	// APIVersionLocalKey holds the resolved version, e.g. "1.0".
	APIVersionLocalKey = "api_version"
)

// APIVersion resolves the ":version" route segment ("v1", "v2.0") against set.
// A segment without the "v" prefix does not match the route and yields 404.
func APIVersion(set *apiversion.Set) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(SupportedVersionsHeader, set.Header())

		raw := c.Params("version")
		if len(raw) < 1 || (raw[0] != 'v' && raw[0] != 'V') {
			return fiber.ErrNotFound
		}

		v, err := set.Resolve(raw[1:])
		if err != nil {
			return err
		}

		c.Locals(APIVersionLocalKey, v.String())
		return c.Next()
	}
}
