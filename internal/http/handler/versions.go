package handler

import (
	"github.com/gofiber/fiber/v2"

	"cityinfo/internal/apiversion"
)

// VersionsResponse lists the API versions the service accepts.
type VersionsResponse struct {
	Versions []string `json:"versions"`
	Default  string   `json:"default"`
	Latest   string   `json:"latest"`
}

// GetVersions godoc
//
// @Summary  API version discovery
// @Tags     system
// @Produce  json
// @Success  200  {object}  VersionsResponse
// @Router   /api/versions [get]
func GetVersions(set *apiversion.Set) fiber.Handler {
	supported := set.Versions()
	res := VersionsResponse{
		Versions: make([]string, len(supported)),
		Default:  set.Default().String(),
		Latest:   set.Latest().String(),
	}
	for i, v := range supported {
		res.Versions[i] = v.String()
	}

	return func(c *fiber.Ctx) error {
		return c.JSON(res)
	}
}
