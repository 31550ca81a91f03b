package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/domain/auth"
	"github.com/FACorreiaa/population-dashboard/internal/app/domain/dashboard"
	"github.com/FACorreiaa/population-dashboard/internal/app/domain/inventory"
	"github.com/FACorreiaa/population-dashboard/internal/app/domain/reports"
	"github.com/FACorreiaa/population-dashboard/internal/app/guard"
	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/renderer"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
	"github.com/FACorreiaa/population-dashboard/internal/pkg/config"
)

type Dependencies struct {
	Config   *config.Config
	Registry *session.Registry
	Tokens   *auth.TokenService
	Logger   *zap.Logger
}

type AppHandlers struct {
	Base      *handlers.BaseHandler
	Auth      *auth.AuthHandlers
	Dashboard *dashboard.Handlers
	Inventory *inventory.Handlers
	Reports   *reports.Handlers
}

func Setup(r *gin.Engine, deps Dependencies) {
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	setupRouter(r, setupDependencies(deps), deps)
}

func setupDependencies(deps Dependencies) *AppHandlers {
	log := deps.Logger
	base := handlers.NewBaseHandler(log)

	return &AppHandlers{
		Base:      base,
		Auth:      auth.NewAuthHandlers(base, log.Named("auth")),
		Dashboard: dashboard.NewHandlers(base, dashboard.NewService(deps.Config.Cache.HealthTTL, log.Named("dashboard")), log.Named("dashboard")),
		Inventory: inventory.NewHandlers(base, inventory.NewService(log.Named("inventory")), log.Named("inventory")),
		Reports:   reports.NewHandlers(base, reports.NewService(log.Named("reports")), log.Named("reports")),
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, deps Dependencies) {
	cfg := deps.Config

	// Liveness only; never touches a session.
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": deps.Registry.Len()})
	})

	sessionMW := auth.SessionMiddleware(deps.Tokens, deps.Registry, auth.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.SecureCookie,
	}, deps.Logger.Named("session"))
	limiter := middleware.RateLimitMiddleware(middleware.NewRateLimiter(
		deps.Logger.Named("ratelimit"), cfg.RateLimit.AuthAttempts, cfg.RateLimit.AuthWindow))

	app := r.Group("/")
	app.Use(sessionMW)
	{
		app.GET("/", h.Auth.Root)
		app.GET("/login", h.Auth.ShowLogin)
		app.POST("/login", limiter, h.Auth.Login)
		app.GET("/register", h.Auth.ShowRegister)
		app.POST("/register", limiter, h.Auth.Register)
		app.POST("/logout", h.Auth.Logout)
	}

	protect := guard.Middleware(guard.Options{
		PendingWait:  cfg.Guard.PendingWait,
		EnforceRoles: cfg.Guard.EnforceRoles,
	}, h.Base.Pending, deps.Logger.Named("guard"))

	admin := app.Group("/admin")
	admin.Use(protect)
	{
		admin.GET("/dashboard", h.Dashboard.AdminDashboard)
		admin.GET("/dashboard/health", h.Dashboard.AdminHealth)

		admin.GET("/inventory", h.Inventory.AdminInventory)
		admin.POST("/inventory/items", h.Inventory.CreateItem)
		admin.GET("/inventory/items/:id/edit", h.Inventory.EditItem)
		admin.PUT("/inventory/items/:id", h.Inventory.UpdateItem)
		admin.DELETE("/inventory/items/:id", h.Inventory.DeleteItem)
		admin.POST("/inventory/ingredients", h.Inventory.CreateIngredient)
		admin.GET("/inventory/ingredients/:id/edit", h.Inventory.EditIngredient)
		admin.PUT("/inventory/ingredients/:id", h.Inventory.UpdateIngredient)
		admin.DELETE("/inventory/ingredients/:id", h.Inventory.DeleteIngredient)

		admin.GET("/reports", h.Reports.ReportsPage)
		admin.GET("/reports/table", h.Reports.ReportsTable)
		admin.GET("/reports/export.csv", h.Reports.ExportCSV)
	}

	manager := app.Group("/manager")
	manager.Use(protect)
	{
		manager.GET("/dashboard", h.Dashboard.ManagerDashboard)
		manager.GET("/dashboard/health", h.Dashboard.ManagerHealth)
		manager.GET("/inventory", h.Inventory.ManagerInventory)
	}

	r.NoRoute(sessionMW, h.Base.NotFound)
}
