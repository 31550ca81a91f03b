package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
)

func newRouter(t *testing.T, remote http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.Options{BaseURL: srv.URL + "/api"}, zap.NewNop())
	require.NoError(t, err)
	store := session.New(client, zap.NewNop())
	store.Initialize(context.Background())
	t.Cleanup(store.Close)

	h := NewHandlers(handlers.NewBaseHandler(zap.NewNop()), NewService(time.Minute, zap.NewNop()), zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, &session.Entry{ID: "sid", Store: store, Client: client})
		c.Next()
	})
	r.GET("/admin/dashboard", h.AdminDashboard)
	r.GET("/admin/dashboard/health", h.AdminHealth)
	r.GET("/manager/dashboard", h.ManagerDashboard)
	return r
}

func backend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/auth/current/":
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "alice", "first_name": "Alice", "role": "admin"})
	case "/api/health/":
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "healthy", "reports": 24})
	case "/api/inventory/ingredients/low-stock/":
		_, _ = w.Write([]byte(`[{"id":1,"name":"Milk","is_low_stock":true},{"id":2,"name":"Beans","is_low_stock":true}]`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestAdminDashboard(t *testing.T) {
	r := newRouter(t, backend)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find("main").Text(), "Welcome back, Alice")
	assert.Equal(t, 4, doc.Find("[data-stat]").Length())
	assert.Equal(t, "24", doc.Find("[data-stat]").Eq(3).Text())
	assert.Contains(t, doc.Find("#low-stock-count").Text(), "2 ingredient(s)")
	assert.Equal(t, 1, doc.Find("[data-status='online']").Length())
}

func TestAdminDashboardBackendDown(t *testing.T) {
	r := newRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/current/" {
			backend(w, r)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("[data-status='offline']").Length())
	assert.Contains(t, doc.Text(), "Failed to load stock levels")
}

func TestHealthFragmentHasNoLayout(t *testing.T) {
	r := newRouter(t, backend)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard/health", nil)
	req.Header.Set("HX-Request", "true")
	r.ServeHTTP(w, req)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("nav").Length())
	assert.Equal(t, 1, doc.Find("#health-panel").Length())
	assert.Contains(t, doc.Find("#health-payload").Text(), "healthy")
}

func TestManagerDashboard(t *testing.T) {
	r := newRouter(t, backend)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manager/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Manager dashboard")
	assert.Contains(t, w.Body.String(), "healthy")
}
