package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatepass/backend/pkg/response"
	"github.com/gatepass/backend/pkg/utils"
)

// LoginRequest is the body for POST /scanner-login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Handler handles scanner authentication.
type Handler struct {
	password     string
	passwordHash string
	jwt          *JWTService
	logger       *zap.Logger
}

// NewHandler creates an auth handler. When passwordHash is set it takes
// precedence over the plaintext password.
func NewHandler(password, passwordHash string, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{password: password, passwordHash: passwordHash, jwt: jwt, logger: logger}
}

// Enabled reports whether a scanner password is configured at all. With no
// password the scan endpoints run open.
func (h *Handler) Enabled() bool {
	return h.password != "" || h.passwordHash != ""
}

// Login handles POST /scanner-login. Exchanges the shared scanner password
// for a short-lived token carrying the scanner role.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, "Invalid password")
		return
	}
	if req.Password == "" || !h.checkPassword(req.Password) {
		response.Unauthorized(c, "Invalid password")
		return
	}

	token, err := h.jwt.Generate(RoleScanner)
	if err != nil {
		h.logger.Error("generate scanner token", zap.Error(err))
		response.Internal(c, "Login error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *Handler) checkPassword(plain string) bool {
	if h.passwordHash != "" {
		return utils.CheckPassword(plain, h.passwordHash)
	}
	if h.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(h.password)) == 1
}
