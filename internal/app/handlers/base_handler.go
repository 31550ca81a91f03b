package handlers

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/renderer"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) NewLayoutData(c *gin.Context, title, activeNav string, content templ.Component) models.LayoutTempl {
	user := middleware.GetUserFromContext(c)
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.NavFor(user),
		ActiveNav: activeNav,
		User:      user,
	}
}

// Render writes a bare component, used for htmx fragments.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Render(status, renderer.New(c.Request.Context(), component))
}

// RenderPage wraps content in the full layout with navigation.
func (h *BaseHandler) RenderPage(c *gin.Context, status int, title, activeNav string, content templ.Component) {
	layoutData := h.NewLayoutData(c, title, activeNav, content)
	h.Render(c, status, views.LayoutPage(layoutData))
}

// Pending is the guard's indicator for a session that is still loading.
func (h *BaseHandler) Pending(c *gin.Context) {
	h.Render(c, 200, views.Pending(c.Request.URL.RequestURI()))
}

func (h *BaseHandler) NotFound(c *gin.Context) {
	h.RenderPage(c, 404, "Not found", "", views.Banner(views.BannerProps{
		Type:    views.BannerInfo,
		Message: "The page you are looking for does not exist.",
	}))
}
