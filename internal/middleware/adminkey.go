package middleware

import (
	"crypto/subtle"

	"github.com/m1z23r/drift/pkg/drift"
)

const adminKeyHeader = "X-Admin-Key"

// AdminKey guards operational endpoints with a static key from config.
// An empty configured key disables the guarded endpoints entirely.
func AdminKey(key string) drift.HandlerFunc {
	return func(c *drift.Context) {
		if key == "" {
			c.NotFound("not found")
			return
		}

		provided := c.GetHeader(adminKeyHeader)
		if provided == "" {
			c.Unauthorized("missing admin key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.Unauthorized("invalid admin key")
			return
		}

		c.Next()
	}
}
