// Package rayid provides request ID middleware for Fiber.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns a unique RayID to every request.
// The ID is stored in the request locals under "ray_id" and echoed in the
// response headers. An incoming X-Ray-ID header is honored so upstream
// proxies can propagate their own IDs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
