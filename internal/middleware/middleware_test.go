package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gatepass/backend/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(svc *auth.JWTService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", ScannerAuth(svc), func(c *gin.Context) {
		role := c.GetString(ContextRole)
		c.JSON(http.StatusOK, gin.H{"success": true, "role": role})
	})
	return r
}

func TestScannerAuth_ValidToken(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 12)
	token, err := svc.Generate(auth.RoleScanner)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newProtectedRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
}

func TestScannerAuth_Rejections(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 12)
	other, _ := auth.NewJWTService("other-secret", 12).Generate(auth.RoleScanner)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newProtectedRouter(svc).ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func eventDayRouter(date string, offset int, now func() time.Time) *gin.Engine {
	r := gin.New()
	r.GET("/scan", EventDay(date, offset, now), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestEventDay_DisabledWhenUnset(t *testing.T) {
	r := eventDayRouter("", 330, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scan", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestEventDay_OffsetBoundary(t *testing.T) {
	// 2026-01-14 20:00 UTC is already 2026-01-15 01:30 at +05:30.
	clock := func() time.Time {
		return time.Date(2026, 1, 14, 20, 0, 0, 0, time.UTC)
	}

	w := httptest.NewRecorder()
	eventDayRouter("2026-01-15", 330, clock).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scan", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("on-day scan: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	eventDayRouter("2026-01-14", 330, clock).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scan", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("off-day scan: status = %d, want 200 envelope", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"success":false`) {
		t.Errorf("off-day scan body = %s, want success:false", body)
	}
}
