package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionMiddleware binds every request to a browser session. A missing,
// expired or forged cookie starts a fresh session.
func SessionMiddleware(tokens *TokenService, registry *session.Registry, cookie CookieConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			sid     string
			refresh = true
		)
		if raw, err := c.Cookie(cookie.Name); err == nil && raw != "" {
			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				logger.Debug("Discarding session cookie", zap.Error(err))
			} else {
				sid = claims.SessionID
				refresh = tokens.NeedsRefresh(claims)
			}
		}
		if sid == "" {
			sid = uuid.NewString()
		}

		entry, created, err := registry.Acquire(sid)
		if err != nil {
			logger.Error("Failed to create session store", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if created || refresh {
			token, err := tokens.GenerateToken(sid)
			if err != nil {
				logger.Error("Failed to sign session cookie", zap.Error(err))
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, token, int(tokens.ttl.Seconds()), "/", "", cookie.Secure, true)
		}

		middleware.SetSession(c, entry)
		c.Next()
	}
}
