package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

// Session constants. The cookie name and the key of the single session
// attribute (the logged-in username).
const (
	SessionName    = "nutrigenie_session"
	SessionUserKey = "userID"
)

// RequestIDHeader is the HTTP header for request ID.
const RequestIDHeader = "X-Request-ID"

// ContextRequestIDKey is the gin context key holding the request ID.
const ContextRequestIDKey = "requestID"

// RequestID injects a unique request ID into each request. If the
// X-Request-ID header is present, it uses that value; otherwise it generates
// a new UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", c.GetString(ContextRequestIDKey)).
			Msg("request")
	}
}

// RequireLogin guards a route behind the session gate: a request without a
// logged-in session attribute is redirected to the login view. This is the
// gate's only enforcement point.
func RequireLogin(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A decode error (e.g. cookie signed with an old secret) yields a
		// fresh session; treat it as anonymous.
		session, _ := store.Get(c.Request, SessionName)
		if session == nil || session.Values[SessionUserKey] == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
