package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

const healthKey = "health"

var _ Service = (*ServiceImpl)(nil)

// HealthSource is the remote call the dashboards display.
type HealthSource interface {
	Health(ctx context.Context) (map[string]any, error)
}

type Service interface {
	Health(ctx context.Context, source HealthSource) views.HealthView
}

// ServiceImpl caches the health payload process-wide; it is the same for
// every session.
type ServiceImpl struct {
	cache   *cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
	printer *message.Printer
}

func NewService(ttl time.Duration, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		cache:   cache.New(ttl, 2*ttl),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		printer: message.NewPrinter(language.English),
	}
}

type cachedHealth struct {
	payload   map[string]any
	checkedAt time.Time
}

// Health never fails: an unreachable backend becomes an offline view.
// Failures are not cached so recovery shows on the next refresh.
func (s *ServiceImpl) Health(ctx context.Context, source HealthSource) views.HealthView {
	l := s.logger.With(zap.String("method", "Health"))

	if v, ok := s.cache.Get(healthKey); ok {
		hit := v.(cachedHealth)
		return s.view(hit.payload, hit.checkedAt)
	}

	payload, err := source.Health(ctx)
	if err != nil {
		l.Warn("Health check failed", zap.Error(err))
		return views.HealthView{
			Online:    false,
			Error:     "Failed to connect to backend",
			Stats:     s.stats(nil),
			CheckedAt: s.now(),
		}
	}

	entry := cachedHealth{payload: payload, checkedAt: s.now()}
	// go-cache reads a zero expiration as "never expires".
	if s.ttl > 0 {
		s.cache.SetDefault(healthKey, entry)
	}
	return s.view(entry.payload, entry.checkedAt)
}

func (s *ServiceImpl) view(payload map[string]any, checkedAt time.Time) views.HealthView {
	return views.HealthView{
		Online:    true,
		Payload:   payload,
		Stats:     s.stats(payload),
		CheckedAt: checkedAt,
	}
}

func (s *ServiceImpl) stats(payload map[string]any) []views.StatCard {
	return []views.StatCard{
		{Label: "Total Population", Value: s.display(payload["population"]), Color: "indigo"},
		{Label: "Active Simulations", Value: s.display(payload["simulations"]), Color: "emerald"},
		{Label: "Inventory Items", Value: s.display(payload["inventory"]), Color: "amber"},
		{Label: "Reports Generated", Value: s.display(payload["reports"]), Color: "pink"},
	}
}

func (s *ServiceImpl) display(v any) string {
	switch n := v.(type) {
	case nil:
		return "—"
	case float64:
		if n == float64(int64(n)) {
			return s.printer.Sprintf("%d", int64(n))
		}
		return s.printer.Sprintf("%.2f", n)
	case string:
		if n == "" {
			return "—"
		}
		return n
	default:
		return fmt.Sprint(n)
	}
}
