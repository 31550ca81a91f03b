package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/observability/metrics"
)

const (
	maxResponseBytes = 4 << 20
	csrfCookieName   = "csrftoken"
	csrfHeaderName   = "X-CSRFToken"
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Transport is wrapped with otelhttp; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// Client talks to the remote authority. Each client owns its own cookie jar,
// so one client corresponds to one set of remote credentials.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("api base url %q must be absolute", opts.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   timeout,
			Jar:       jar,
			Transport: otelhttp.NewTransport(transport),
		},
		logger: logger,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do performs a JSON request and returns the raw response body. Non-2xx
// responses are returned as *Error together with the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	l := c.logger.With(zap.String("method", method), zap.String("path", path))
	start := time.Now()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachCSRF(req)

	resp, err := c.httpClient.Do(req)
	c.recordDuration(ctx, method, path, start, resp)
	if err != nil {
		l.Warn("Remote request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %s %s: %w", models.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", models.ErrRemoteUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.Debug("Remote request rejected", zap.Int("status", resp.StatusCode))
		return raw, &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: raw}
	}
	return raw, nil
}

// doJSON is do followed by decoding the body into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	raw, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func decode(raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %w", models.ErrMalformedResponse, err)
	}
	return nil
}

// attachCSRF mirrors Django's double-submit cookie so unsafe methods pass
// SessionAuthentication once the remote session exists.
func (c *Client) attachCSRF(req *http.Request) {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return
	}
	for _, ck := range c.httpClient.Jar.Cookies(req.URL) {
		if ck.Name == csrfCookieName {
			req.Header.Set(csrfHeaderName, ck.Value)
			req.Header.Set("Referer", c.baseURL.Scheme+"://"+c.baseURL.Host+"/")
			return
		}
	}
}

func (c *Client) recordDuration(ctx context.Context, method, path string, start time.Time, resp *http.Response) {
	status := "error"
	if resp != nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}
	metrics.Get().RemoteRequestDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("route", routeTemplate(path)),
			attribute.String("status", status),
		))
}

// routeTemplate collapses numeric path segments so metrics keep a bounded
// label set.
func routeTemplate(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && strings.Trim(p, "0123456789") == "" {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
