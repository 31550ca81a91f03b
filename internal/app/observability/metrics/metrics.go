package metrics

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// AppMetrics holds the dashboard's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal     metric.Int64Counter
	HTTPRequestDuration   metric.Float64Histogram
	AuthRequestsTotal     metric.Int64Counter
	RemoteRequestDuration metric.Float64Histogram
	ActiveSessions        metric.Int64UpDownCounter
	GuardDecisionsTotal   metric.Int64Counter
	TemplateRenderSeconds metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments from the global MeterProvider. Call
// it after the provider is installed; later calls are no-ops.
func InitAppMetrics(logger *zap.Logger) {
	once.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
		appMetrics = build(logger)
		logger.Info("Application metrics instruments initialized")
	})
}

// Get returns the instruments. If InitAppMetrics was never called (tests,
// the check command) the instruments come from whatever global provider is
// installed, which defaults to a no-op.
func Get() *AppMetrics {
	InitAppMetrics(nil)
	return appMetrics
}

func build(logger *zap.Logger) *AppMetrics {
	meter := otel.GetMeterProvider().Meter("population-dashboard")
	m := &AppMetrics{}
	var err error

	m.HTTPRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests completed"),
		metric.WithUnit("{request}"),
	)
	logInstrumentErr(logger, "http_requests_total", err)

	m.HTTPRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
	)
	logInstrumentErr(logger, "http_request_duration_seconds", err)

	m.AuthRequestsTotal, err = meter.Int64Counter(
		"auth_requests_total",
		metric.WithDescription("Login, register and logout attempts by outcome"),
		metric.WithUnit("{request}"),
	)
	logInstrumentErr(logger, "auth_requests_total", err)

	m.RemoteRequestDuration, err = meter.Float64Histogram(
		"remote_request_duration_seconds",
		metric.WithDescription("Duration of calls to the remote authority in seconds"),
		metric.WithUnit("s"),
	)
	logInstrumentErr(logger, "remote_request_duration_seconds", err)

	m.ActiveSessions, err = meter.Int64UpDownCounter(
		"active_sessions",
		metric.WithDescription("Session stores currently held in the registry"),
		metric.WithUnit("{session}"),
	)
	logInstrumentErr(logger, "active_sessions", err)

	m.GuardDecisionsTotal, err = meter.Int64Counter(
		"guard_decisions_total",
		metric.WithDescription("Route guard decisions by kind"),
		metric.WithUnit("{decision}"),
	)
	logInstrumentErr(logger, "guard_decisions_total", err)

	m.TemplateRenderSeconds, err = meter.Float64Histogram(
		"template_render_duration_seconds",
		metric.WithDescription("Duration of template rendering in seconds"),
		metric.WithUnit("s"),
	)
	logInstrumentErr(logger, "template_render_duration_seconds", err)

	return m
}

// The otel API returns a usable no-op instrument alongside any error, so a
// failure is logged and the process carries on.
func logInstrumentErr(logger *zap.Logger, name string, err error) {
	if err != nil {
		logger.Error("Metrics: failed to create instrument", zap.String("name", name), zap.Error(err))
	}
}
