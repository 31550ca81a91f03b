package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

const loadFailedMessage = "Failed to load reports"

type Handlers struct {
	*handlers.BaseHandler
	service Service
	logger  *zap.Logger
}

func NewHandlers(base *handlers.BaseHandler, service Service, logger *zap.Logger) *Handlers {
	return &Handlers{BaseHandler: base, service: service, logger: logger}
}

func queryFrom(c *gin.Context) Query {
	return Query{
		Search: c.Query("q"),
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}
}

func (h *Handlers) load(c *gin.Context) views.ReportsData {
	q := queryFrom(c).normalized()
	data := views.ReportsData{Search: q.Search, Type: q.Type, Status: q.Status}

	client := middleware.RemoteFromContext(c)
	if client == nil {
		data.Error = loadFailedMessage
		data.Reports = []models.Report{}
		return data
	}
	reports, err := h.service.List(c.Request.Context(), client, q)
	if err != nil {
		data.Error = loadFailedMessage
		data.Reports = []models.Report{}
		return data
	}
	data.Reports = reports
	return data
}

func (h *Handlers) ReportsPage(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "Reports", "Reports", views.ReportsPage(h.load(c)))
}

// ReportsTable is the fragment the filter form swaps in.
func (h *Handlers) ReportsTable(c *gin.Context) {
	h.Render(c, http.StatusOK, views.ReportsTable(h.load(c)))
}

// ExportCSV downloads the rows the page would show for the same query.
func (h *Handlers) ExportCSV(c *gin.Context) {
	data := h.load(c)
	if data.Error != "" {
		c.String(http.StatusBadGateway, data.Error)
		return
	}
	if len(data.Reports) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="reports.csv"`)
	c.Status(http.StatusOK)
	if err := h.service.WriteCSV(c.Writer, data.Reports); err != nil {
		h.logger.Error("Failed to write reports CSV", zap.String("method", "ExportCSV"), zap.Error(err))
	}
}
