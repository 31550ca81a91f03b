package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
)

type contextKey string

const (
	SessionEntryKey contextKey = "sessionEntry"
	SessionIDKey    contextKey = "sessionID"
)

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Trigger, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// htmx from unpkg, tailwind play CDN
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://unpkg.com https://cdn.tailwindcss.com; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// Redirect sends the browser to url. htmx requests get an HX-Redirect header
// so the whole page navigates instead of swapping a fragment.
func Redirect(c *gin.Context, url string) {
	if IsHTMX(c) {
		c.Header("HX-Redirect", url)
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, url)
	c.Abort()
}

func SetSession(c *gin.Context, entry *session.Entry) {
	c.Set(string(SessionEntryKey), entry)
	c.Set(string(SessionIDKey), entry.ID)
}

// SessionFromContext returns the browser session attached by the session
// middleware, or nil outside of it.
func SessionFromContext(c *gin.Context) *session.Entry {
	v, exists := c.Get(string(SessionEntryKey))
	if !exists {
		return nil
	}
	entry, ok := v.(*session.Entry)
	if !ok {
		return nil
	}
	return entry
}

func StoreFromContext(c *gin.Context) *session.Store {
	if entry := SessionFromContext(c); entry != nil {
		return entry.Store
	}
	return nil
}

func RemoteFromContext(c *gin.Context) *api.Client {
	if entry := SessionFromContext(c); entry != nil {
		return entry.Client
	}
	return nil
}

// GetUserFromContext returns the authenticated identity, or nil while the
// session is loading or anonymous.
func GetUserFromContext(c *gin.Context) *models.Identity {
	store := StoreFromContext(c)
	if store == nil {
		return nil
	}
	snap := store.Snapshot()
	if !snap.Authenticated() {
		return nil
	}
	return snap.Identity
}
