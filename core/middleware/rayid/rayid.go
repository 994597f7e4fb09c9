package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request ID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key holding the request ID.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a RayID. An incoming
// X-Ray-ID header is kept so that IDs propagate from the calling server.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
