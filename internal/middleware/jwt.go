package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gatepass/backend/internal/auth"
	"github.com/gatepass/backend/pkg/response"
)

// ContextRole is the key under which the verified scanner role is stored in
// the gin context.
const ContextRole = "scanner_role"

// ScannerAuth returns a middleware that verifies a bearer scanner token and
// attaches its role claim to the request context.
func ScannerAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Scanner login required")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Scanner login required")
			c.Abort()
			return
		}
		claims, err := jwtService.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid/Expired token")
			c.Abort()
			return
		}
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
