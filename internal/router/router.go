// Package router builds the gin route table, shared between the server
// entrypoint and the handler tests.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatepass/backend/internal/attendees"
	"github.com/gatepass/backend/internal/auth"
	"github.com/gatepass/backend/internal/middleware"
	"github.com/gatepass/backend/pkg/response"
)

// Deps carries everything the route table needs.
type Deps struct {
	Logger    *zap.Logger
	Attendees *attendees.Handler
	Auth      *auth.Handler
	JWT       *auth.JWTService

	CORSAllowedOrigins string
	// EventDate gates scanning to one day when set (YYYY-MM-DD).
	EventDate       string
	TZOffsetMinutes int
	// QRLocalDir, when non-empty, is served under /qr/ (local-disk image
	// storage mode).
	QRLocalDir string
	// Now overrides the clock for the event-day gate in tests.
	Now func() time.Time
}

// New builds the route table.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(d.CORSAllowedOrigins))
	if d.Logger != nil {
		r.Use(middleware.Logger(d.Logger))
	}

	r.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	r.POST("/scanner-login", d.Auth.Login)
	r.POST("/register", d.Attendees.Register)
	r.POST("/update", d.Attendees.Update)
	r.GET("/users", d.Attendees.List)

	eventDay := middleware.EventDay(d.EventDate, d.TZOffsetMinutes, d.Now)

	// The manual fallback stays open: checkpoint staff use it from devices
	// that never went through scanner login.
	r.GET("/manual", eventDay, d.Attendees.Manual)

	scan := r.Group("")
	if d.Auth.Enabled() {
		scan.Use(middleware.ScannerAuth(d.JWT))
	}
	scan.GET("/scan/:id", eventDay, d.Attendees.Scan)
	scan.GET("/user/:id", d.Attendees.Get)

	if d.QRLocalDir != "" {
		r.Static("/qr", d.QRLocalDir)
	}

	return r
}
