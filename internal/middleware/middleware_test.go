package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/joshua-takyi/streetbite/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(users models.UsersRepo, extra ...gin.HandlerFunc) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(RequestID(), StructuredLogger(logger), ErrorHandler(logger), Session(secret, users, logger))
	handlers := append(extra, func(c *gin.Context) {
		claims := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID(), "role": claims.GetSafeRole()})
	})
	r.GET("/", handlers...)
	return r
}

func token(t *testing.T, id string, role models.UserRole) string {
	t.Helper()
	tok, err := helpers.IssueToken(secret, models.User{ID: id, Role: role}, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func TestRequestID(t *testing.T) {
	r := newEngine(store.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
}

func TestSession(t *testing.T) {
	users := store.New()
	r := newEngine(users)

	t.Run("no token is guest", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.JSONEq(t, `{"id":"","role":"guest"}`, w.Body.String())
	})

	t.Run("invalid token is guest", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"id":"","role":"guest"}`, w.Body.String())
	})

	t.Run("bearer token registers unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "kim", models.RoleCustomer))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"id":"kim","role":"customer"}`, w.Body.String())

		u, ok := users.GetUser("kim")
		require.True(t, ok)
		assert.Equal(t, models.RoleCustomer, u.Role)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: token(t, "owner1", models.RoleStore)})
		req.Header.Set("Authorization", "Bearer "+token(t, "kim", models.RoleCustomer))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"id":"owner1","role":"store"}`, w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	r := newEngine(store.New(), RequireRole(models.RoleStore))

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"guest", "", http.StatusUnauthorized},
		{"customer", token(t, "kim", models.RoleCustomer), http.StatusForbidden},
		{"store", token(t, "owner1", models.RoleStore), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	r := newEngine(store.New(), func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Abort()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error","request_id":"req-1"}`, w.Body.String())
}

func TestCurrentUser_WithoutSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.True(t, CurrentUser(c).IsGuest())
}
