package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/infrastructure/auth"
	"github.com/estatedesk/estatedesk/internal/infrastructure/permission"
	"github.com/estatedesk/estatedesk/internal/infrastructure/ratelimit"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", 60)
	token, _, err := jwtSvc.Issue(7, "Joy", authorization.RoleAdmin)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/me", NewAuthMiddleware(jwtSvc, testLogger()).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   AdminID(c),
			"name": AdminName(c),
			"role": authorization.RoleFromContext(c),
		})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"name":"Joy","role":"admin"}`, w.Body.String())
			}
		})
	}
}

type stubEnforcer struct {
	allowed bool
	err     error
}

func (s stubEnforcer) Enforce(authorization.AdminRole, permission.Resource, permission.Action) (bool, error) {
	return s.allowed, s.err
}

func TestRequirePermission(t *testing.T) {
	run := func(enf PolicyEnforcer, role string) int {
		engine := gin.New()
		engine.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set(constants.ContextKeyAdminRole, role)
			}
			c.Next()
		}, NewPermissionMiddleware(enf, testLogger()).RequirePermission(permission.ResourceReports, permission.ActionRead),
			func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run(stubEnforcer{allowed: true}, "admin"))
	assert.Equal(t, http.StatusForbidden, run(stubEnforcer{allowed: false}, "caretaker"))
	assert.Equal(t, http.StatusUnauthorized, run(stubEnforcer{allowed: true}, ""))
	assert.Equal(t, http.StatusInternalServerError, run(stubEnforcer{err: errors.New("boom")}, "admin"))
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(ratelimit.NewMemoryRateLimiter(), "login",
		ratelimit.RateLimitConfig{RequestsPerMinute: 2}, testLogger())
	engine := gin.New()
	engine.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.GET("/", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(testLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
