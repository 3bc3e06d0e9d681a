package middleware

import (
	"github.com/gin-gonic/gin"

	"unit_rental/internal/busy"
)

// TrackBusy marks the request as an in-flight operation for the
// authenticated user. The handle is released when the handler returns,
// including on panic recovery or error responses. Must run after
// RequireAuth so the user id claim is available.
func TrackBusy(tracker *busy.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uidClaim, exists := c.Get("user_id")
		uid, ok := uidClaim.(float64)
		if !exists || !ok {
			c.Next()
			return
		}

		done := tracker.Begin(uint(uid), c.Request.Method+" "+c.FullPath())
		defer done()
		c.Next()
	}
}
