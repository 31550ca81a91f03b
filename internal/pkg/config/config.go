package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const minSecretLength = 32

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	SecureCookie bool
}

type GuardConfig struct {
	// PendingWait bounds how long a request waits for a loading session
	// before the pending indicator is rendered instead.
	PendingWait  time.Duration
	EnforceRoles bool
}

// RateLimitConfig throttles login and registration attempts per client.
type RateLimitConfig struct {
	AuthAttempts int
	AuthWindow   time.Duration
}

type CacheConfig struct {
	HealthTTL time.Duration
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
}

type Config struct {
	ServerPort    string
	PprofAddr     string
	LogLevel      string
	API           APIConfig
	Session       SessionConfig
	Guard         GuardConfig
	Cache         CacheConfig
	RateLimit     RateLimitConfig
	Observability ObservabilityConfig
}

// Load reads the configuration from the environment. Callers are expected to
// have loaded any .env file beforehand.
func Load() (*Config, error) {
	var errs []string
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	apiTimeout, err := getDurationOrDefault("API_TIMEOUT", 15*time.Second)
	collect(err)
	sessionTTL, err := getDurationOrDefault("SESSION_TTL", 24*time.Hour)
	collect(err)
	secure, err := getBoolOrDefault("SESSION_SECURE", false)
	collect(err)
	pendingWait, err := getDurationOrDefault("GUARD_PENDING_WAIT", 2*time.Second)
	collect(err)
	enforceRoles, err := getBoolOrDefault("GUARD_ENFORCE_ROLES", false)
	collect(err)
	healthTTL, err := getDurationOrDefault("HEALTH_CACHE_TTL", 30*time.Second)
	collect(err)
	authAttempts, err := getIntOrDefault("AUTH_RATE_LIMIT", 10)
	collect(err)
	authWindow, err := getDurationOrDefault("AUTH_RATE_WINDOW", time.Minute)
	collect(err)

	cfg := &Config{
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		PprofAddr:  getEnvOrDefault("PPROF_ADDR", ":6060"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnvOrDefault("API_BASE_URL", "https://coffee-grind.onrender.com/api"), "/"),
			Timeout: apiTimeout,
		},
		Session: SessionConfig{
			Secret:       os.Getenv("SESSION_SECRET"),
			TTL:          sessionTTL,
			CookieName:   getEnvOrDefault("SESSION_COOKIE", "dashboard_session"),
			SecureCookie: secure,
		},
		Guard: GuardConfig{
			PendingWait:  pendingWait,
			EnforceRoles: enforceRoles,
		},
		Cache: CacheConfig{
			HealthTTL: healthTTL,
		},
		RateLimit: RateLimitConfig{
			AuthAttempts: authAttempts,
			AuthWindow:   authWindow,
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "population-dashboard"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}

	if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("API_BASE_URL %q is not an absolute URL", cfg.API.BaseURL))
	}
	if len(cfg.Session.Secret) < minSecretLength {
		errs = append(errs, fmt.Sprintf("SESSION_SECRET must be at least %d characters", minSecretLength))
	}
	if cfg.Session.TTL <= 0 {
		errs = append(errs, "SESSION_TTL must be positive")
	}
	if cfg.Cache.HealthTTL <= 0 {
		errs = append(errs, "HEALTH_CACHE_TTL must be positive")
	}

	if cfg.RateLimit.AuthAttempts <= 0 || cfg.RateLimit.AuthWindow <= 0 {
		errs = append(errs, "AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be positive")
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
