package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

var _ Remote = (*api.Client)(nil)

// Remote is what the dashboards read from the session's client.
type Remote interface {
	HealthSource
	LowStockIngredients(ctx context.Context) ([]models.Ingredient, error)
}

type Handlers struct {
	*handlers.BaseHandler
	service Service
	logger  *zap.Logger
}

func NewHandlers(base *handlers.BaseHandler, service Service, logger *zap.Logger) *Handlers {
	return &Handlers{BaseHandler: base, service: service, logger: logger}
}

func greeting(user *models.Identity) string {
	if user == nil {
		return ""
	}
	return "Welcome back, " + user.DisplayName()
}

func (h *Handlers) AdminDashboard(c *gin.Context) {
	remote := middleware.RemoteFromContext(c)
	data := views.AdminDashboardData{Greeting: greeting(middleware.GetUserFromContext(c))}

	var g errgroup.Group
	g.Go(func() error {
		data.Health = h.service.Health(c.Request.Context(), remote)
		return nil
	})
	g.Go(func() error {
		low, err := remote.LowStockIngredients(c.Request.Context())
		if err != nil {
			h.logger.Warn("Failed to load low stock ingredients", zap.Error(err))
			data.LowStockError = "Failed to load stock levels"
			return nil
		}
		data.LowStockCount = len(low)
		return nil
	})
	_ = g.Wait()

	h.RenderPage(c, http.StatusOK, "Admin dashboard", "Dashboard", views.AdminDashboard(data))
}

func (h *Handlers) AdminHealth(c *gin.Context) {
	health := h.service.Health(c.Request.Context(), middleware.RemoteFromContext(c))
	h.Render(c, http.StatusOK, views.HealthPanel(health, "/admin/dashboard/health"))
}

func (h *Handlers) ManagerDashboard(c *gin.Context) {
	data := views.ManagerDashboardData{
		Greeting: greeting(middleware.GetUserFromContext(c)),
		Health:   h.service.Health(c.Request.Context(), middleware.RemoteFromContext(c)),
	}
	h.RenderPage(c, http.StatusOK, "Manager dashboard", "Dashboard", views.ManagerDashboard(data))
}

func (h *Handlers) ManagerHealth(c *gin.Context) {
	health := h.service.Health(c.Request.Context(), middleware.RemoteFromContext(c))
	h.Render(c, http.StatusOK, views.HealthPanel(health, "/manager/dashboard/health"))
}
