package guard

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/observability/metrics"
)

type Options struct {
	// PendingWait bounds how long a request waits for a loading session
	// before the pending indicator is served instead.
	PendingWait  time.Duration
	EnforceRoles bool
}

// Middleware protects a route group. While the session is loading it waits
// for it to become ready; if that takes longer than PendingWait, pending
// renders a neutral indicator that polls the same URL.
func Middleware(opts Options, pending gin.HandlerFunc, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		store := middleware.StoreFromContext(c)
		if store == nil {
			middleware.Redirect(c, LoginPath)
			return
		}

		path := c.Request.URL.Path
		decision := Decide(store.Snapshot(), path, opts.EnforceRoles)
		if decision.Kind == Pending {
			timer := time.NewTimer(opts.PendingWait)
			select {
			case <-store.Ready():
			case <-timer.C:
			case <-c.Request.Context().Done():
			}
			timer.Stop()
			decision = Decide(store.Snapshot(), path, opts.EnforceRoles)
		}

		metrics.Get().GuardDecisionsTotal.Add(c.Request.Context(), 1,
			metric.WithAttributes(attribute.String("decision", decision.Kind.String())))

		switch decision.Kind {
		case Allow:
			c.Next()
		case Redirect:
			logger.Debug("Guard redirect", zap.String("path", path), zap.String("target", decision.Target))
			middleware.Redirect(c, decision.Target)
		default:
			c.Header("Cache-Control", "no-store")
			pending(c)
			c.Abort()
		}
	}
}
