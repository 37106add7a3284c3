package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/streetbite/internal/helpers"
	"github.com/joshua-takyi/streetbite/internal/models"
)

const (
	RequestIDKey = "request_id"
	UserKey      = "user"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get(RequestIDKey)

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if claims, ok := c.Get(UserKey); ok {
			if sc, ok := claims.(*helpers.SessionClaims); ok {
				attrs = append(attrs, "role", sc.GetSafeRole())
			}
		}

		if statusCode >= http.StatusInternalServerError {
			logger.Error("HTTP Request", attrs...)
			return
		}
		logger.Info("HTTP Request", attrs...)
	}
}

// ErrorHandler turns errors attached with c.Error into a 500 envelope when
// the handler did not write a response itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID, _ := c.Get(RequestIDKey)

		logger.Error("Request error",
			"request_id", requestID,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		if c.Writer.Written() {
			return
		}
		resp := models.ErrorResponse("Internal server error")
		if id, ok := requestID.(string); ok {
			resp.RequestID = id
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// Session resolves the caller from the session cookie or a bearer token.
// Missing or invalid tokens are not an error: the request continues as a
// guest.
func Session(secret []byte, users models.UsersRepo, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			token = helpers.BearerToken(c.GetHeader("Authorization"))
		}

		claims := helpers.GuestClaims()
		if token != "" {
			parsed, err := helpers.ValidateToken(secret, token)
			if err != nil {
				logger.Debug("ignoring invalid session token", "error", err)
			} else {
				claims = parsed
				// sessions outlive a restart; keep the registry in step
				if _, ok := users.GetUser(parsed.UserID()); !ok {
					users.RegisterUser(parsed.User())
				}
			}
		}

		c.Set(UserKey, claims)
		c.Next()
	}
}

// RequireRole rejects callers whose session role is not in roles.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentUser(c)
		if !slices.Contains(roles, claims.GetSafeRole()) {
			status := http.StatusForbidden
			if claims.IsGuest() {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, models.ErrorResponse("this action requires one of the roles: "+joinRoles(roles)))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session claims set by Session, or guest claims
// when the middleware did not run.
func CurrentUser(c *gin.Context) *helpers.SessionClaims {
	v, ok := c.Get(UserKey)
	if !ok {
		return helpers.GuestClaims()
	}
	claims, ok := v.(*helpers.SessionClaims)
	if !ok || claims == nil {
		return helpers.GuestClaims()
	}
	return claims
}

func joinRoles(roles []models.UserRole) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += ", "
		}
		out += string(r)
	}
	return out
}
