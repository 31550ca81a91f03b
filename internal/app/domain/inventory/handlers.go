package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/session"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

const loadFailedMessage = "Failed to fetch data"

type Handlers struct {
	*handlers.BaseHandler
	service Service
	logger  *zap.Logger
}

func NewHandlers(base *handlers.BaseHandler, service Service, logger *zap.Logger) *Handlers {
	return &Handlers{BaseHandler: base, service: service, logger: logger}
}

func remoteFrom(c *gin.Context) Remote {
	// Avoids a typed-nil interface when no session is bound.
	if client := middleware.RemoteFromContext(c); client != nil {
		return client
	}
	return nil
}

// panel loads the current inventory into data, keeping whatever message the
// caller already set.
func (h *Handlers) panel(c *gin.Context, data views.InventoryData) views.InventoryData {
	remote := remoteFrom(c)
	if remote == nil {
		data.Error = loadFailedMessage
		return data
	}
	overview, err := h.service.Overview(c.Request.Context(), remote)
	if err != nil {
		if data.Error == "" {
			data.Error = loadFailedMessage
		}
		return data
	}
	data.Items = overview.Items
	data.Ingredients = overview.Ingredients
	return data
}

func (h *Handlers) AdminInventory(c *gin.Context) {
	data := h.panel(c, views.InventoryData{Tab: c.DefaultQuery("tab", views.TabItems)})
	h.RenderPage(c, http.StatusOK, "Inventory", "Inventory", views.AdminInventory(data))
}

func (h *Handlers) ManagerInventory(c *gin.Context) {
	data := h.panel(c, views.InventoryData{})
	h.RenderPage(c, http.StatusOK, "Inventory", "Inventory", views.ManagerInventory(data))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// remoteFieldErrors maps a remote rejection onto form fields, falling back to
// a general message.
func remoteFieldErrors(err error, fallback string) models.FieldErrors {
	if errors.Is(err, models.ErrValidation) {
		if errs := session.FailureFromError(err).Fields(); !errs.Empty() {
			return errs
		}
	}
	return models.FieldErrors{models.GeneralField: {fallback}}
}

func (h *Handlers) CreateItem(c *gin.Context) {
	h.saveItem(c, 0)
}

func (h *Handlers) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.saveItem(c, id)
}

func (h *Handlers) saveItem(c *gin.Context, id int64) {
	in, form, errs := ParseItemForm(c)
	form.ID = id
	data := views.InventoryData{Tab: views.TabItems}

	if !errs.Empty() {
		data.ItemForm = form
		h.Render(c, http.StatusUnprocessableEntity, views.InventoryPanel(h.panel(c, data)))
		return
	}

	remote := remoteFrom(c)
	if remote == nil {
		form.Errors = models.FieldErrors{models.GeneralField: {failedVerb(id, "item")}}
		data.ItemForm = form
		h.Render(c, http.StatusInternalServerError, views.InventoryPanel(data))
		return
	}
	if _, err := h.service.SaveItem(c.Request.Context(), remote, id, in); err != nil {
		form.Errors = remoteFieldErrors(err, failedVerb(id, "item"))
		data.ItemForm = form
		h.Render(c, statusFor(err), views.InventoryPanel(h.panel(c, data)))
		return
	}

	data.Notice = doneVerb(id, "Item")
	h.Render(c, http.StatusOK, views.InventoryPanel(h.panel(c, data)))
}

func (h *Handlers) EditItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	remote := remoteFrom(c)
	if remote == nil {
		h.Render(c, http.StatusInternalServerError, views.ItemForm(views.ItemFormData{
			Errors: models.FieldErrors{models.GeneralField: {"Failed to load item"}},
		}))
		return
	}
	item, err := h.service.GetItem(c.Request.Context(), remote, id)
	if err != nil {
		h.logger.Warn("Failed to load item", zap.Int64("id", id), zap.Error(err))
		h.Render(c, statusFor(err), views.ItemForm(views.ItemFormData{
			Errors: models.FieldErrors{models.GeneralField: {"Failed to load item"}},
		}))
		return
	}
	form := ItemFormFrom(item)
	// Without the ingredient list the recipe section is left out, so saving
	// keeps the current recipe.
	if ingredients, err := h.service.Ingredients(c.Request.Context(), remote); err == nil {
		form.Ingredients = ingredients
	}
	h.Render(c, http.StatusOK, views.ItemForm(form))
}

func (h *Handlers) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data := views.InventoryData{Tab: views.TabItems}
	remote := remoteFrom(c)
	if remote == nil {
		data.Error = "Failed to delete item"
		h.Render(c, http.StatusInternalServerError, views.InventoryPanel(data))
		return
	}
	if err := h.service.DeleteItem(c.Request.Context(), remote, id); err != nil {
		data.Error = "Failed to delete item"
		h.Render(c, statusFor(err), views.InventoryPanel(h.panel(c, data)))
		return
	}
	data.Notice = "Item deleted"
	h.Render(c, http.StatusOK, views.InventoryPanel(h.panel(c, data)))
}

func (h *Handlers) CreateIngredient(c *gin.Context) {
	h.saveIngredient(c, 0)
}

func (h *Handlers) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.saveIngredient(c, id)
}

func (h *Handlers) saveIngredient(c *gin.Context, id int64) {
	in, form, errs := ParseIngredientForm(c)
	form.ID = id
	data := views.InventoryData{Tab: views.TabIngredients}

	if !errs.Empty() {
		data.IngredientForm = form
		h.Render(c, http.StatusUnprocessableEntity, views.InventoryPanel(h.panel(c, data)))
		return
	}

	remote := remoteFrom(c)
	if remote == nil {
		form.Errors = models.FieldErrors{models.GeneralField: {failedVerb(id, "ingredient")}}
		data.IngredientForm = form
		h.Render(c, http.StatusInternalServerError, views.InventoryPanel(data))
		return
	}
	if _, err := h.service.SaveIngredient(c.Request.Context(), remote, id, in); err != nil {
		form.Errors = remoteFieldErrors(err, failedVerb(id, "ingredient"))
		data.IngredientForm = form
		h.Render(c, statusFor(err), views.InventoryPanel(h.panel(c, data)))
		return
	}

	data.Notice = doneVerb(id, "Ingredient")
	h.Render(c, http.StatusOK, views.InventoryPanel(h.panel(c, data)))
}

func (h *Handlers) EditIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	remote := remoteFrom(c)
	if remote == nil {
		h.Render(c, http.StatusInternalServerError, views.IngredientForm(views.IngredientFormData{
			Errors: models.FieldErrors{models.GeneralField: {"Failed to load ingredient"}},
		}))
		return
	}
	ing, err := h.service.GetIngredient(c.Request.Context(), remote, id)
	if err != nil {
		h.logger.Warn("Failed to load ingredient", zap.Int64("id", id), zap.Error(err))
		h.Render(c, statusFor(err), views.IngredientForm(views.IngredientFormData{
			Errors: models.FieldErrors{models.GeneralField: {"Failed to load ingredient"}},
		}))
		return
	}
	h.Render(c, http.StatusOK, views.IngredientForm(IngredientFormFrom(ing)))
}

func (h *Handlers) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	data := views.InventoryData{Tab: views.TabIngredients}
	remote := remoteFrom(c)
	if remote == nil {
		data.Error = "Failed to delete ingredient"
		h.Render(c, http.StatusInternalServerError, views.InventoryPanel(data))
		return
	}
	if err := h.service.DeleteIngredient(c.Request.Context(), remote, id); err != nil {
		data.Error = "Failed to delete ingredient"
		h.Render(c, statusFor(err), views.InventoryPanel(h.panel(c, data)))
		return
	}
	data.Notice = "Ingredient deleted"
	h.Render(c, http.StatusOK, views.InventoryPanel(h.panel(c, data)))
}

func failedVerb(id int64, noun string) string {
	if id == 0 {
		return "Failed to create " + noun
	}
	return "Failed to update " + noun
}

func doneVerb(id int64, noun string) string {
	if id == 0 {
		return noun + " created"
	}
	return noun + " updated"
}

// statusFor picks the status a failed mutation is answered with. htmx is
// configured to swap 4xx bodies, so remote rejections keep their class.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
