package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatepass/backend/pkg/response"
)

// EventDay returns a middleware that rejects scans outside the configured
// event date. The date is compared in a fixed UTC offset (minutes east, e.g.
// 330 for IST) so the check does not depend on the server's locale. An empty
// eventDate disables the gate.
func EventDay(eventDate string, tzOffsetMinutes int, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		if eventDate == "" {
			c.Next()
			return
		}
		local := now().UTC().Add(time.Duration(tzOffsetMinutes) * time.Minute)
		if local.Format("2006-01-02") != eventDate {
			response.Fail(c, "QR scanning will be active only on event day")
			c.Abort()
			return
		}
		c.Next()
	}
}
