package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/app/api"
	"github.com/FACorreiaa/population-dashboard/internal/app/handlers"
	"github.com/FACorreiaa/population-dashboard/internal/app/middleware"
	"github.com/FACorreiaa/population-dashboard/internal/app/models"
	"github.com/FACorreiaa/population-dashboard/internal/app/views"
)

const (
	// Both login and registration land here regardless of role.
	afterAuthPath = "/admin/dashboard"
	loginPath     = "/login"

	loginFailedMessage = "Login failed"
)

type AuthHandlers struct {
	*handlers.BaseHandler
	logger *zap.Logger
}

func NewAuthHandlers(base *handlers.BaseHandler, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{BaseHandler: base, logger: logger}
}

func (h *AuthHandlers) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, loginPath)
}

func (h *AuthHandlers) ShowLogin(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "Sign in", "Sign In", views.LoginPage(views.LoginFormData{}))
}

func (h *AuthHandlers) ShowRegister(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "Create account", "Create Account",
		views.RegisterPage(views.RegisterFormData{Role: models.RoleManager}))
}

func (h *AuthHandlers) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	l := h.logger.With(zap.String("method", "Login"), zap.String("username", username))

	if username == "" || password == "" {
		l.Debug("Missing username or password")
		h.loginFailed(c, http.StatusBadRequest, username, "Username and password are required")
		return
	}

	store := middleware.StoreFromContext(c)
	if store == nil {
		l.Error("No session bound to request")
		h.loginFailed(c, http.StatusInternalServerError, username, loginFailedMessage)
		return
	}

	res := store.Login(c.Request.Context(), username, password)
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = loginFailedMessage
		}
		h.loginFailed(c, http.StatusUnauthorized, username, msg)
		return
	}

	middleware.Redirect(c, afterAuthPath)
}

func (h *AuthHandlers) loginFailed(c *gin.Context, status int, username, message string) {
	if middleware.IsHTMX(c) {
		h.Render(c, status, views.LoginFeedback(message))
		return
	}
	h.RenderPage(c, status, "Sign in", "Sign In", views.LoginPage(views.LoginFormData{Username: username, Error: message}))
}

func (h *AuthHandlers) Register(c *gin.Context) {
	role := models.Role(c.PostForm("role"))
	if !role.Valid() {
		role = models.RoleManager
	}
	fields := api.RegistrationFields{
		Username:        strings.TrimSpace(c.PostForm("username")),
		Email:           strings.TrimSpace(c.PostForm("email")),
		FirstName:       strings.TrimSpace(c.PostForm("first_name")),
		LastName:        strings.TrimSpace(c.PostForm("last_name")),
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
		Role:            role,
	}
	form := views.RegisterFormData{
		Username:  fields.Username,
		Email:     fields.Email,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Role:      role,
	}

	store := middleware.StoreFromContext(c)
	if store == nil {
		h.logger.Error("No session bound to request", zap.String("method", "Register"))
		form.Errors = models.FieldErrors{models.GeneralField: {"Registration failed"}}
		h.registerFailed(c, http.StatusInternalServerError, form)
		return
	}

	res := store.Register(c.Request.Context(), fields)
	if !res.Success {
		form.Errors = res.Errors
		h.registerFailed(c, http.StatusBadRequest, form)
		return
	}

	middleware.Redirect(c, afterAuthPath)
}

func (h *AuthHandlers) registerFailed(c *gin.Context, status int, form views.RegisterFormData) {
	if middleware.IsHTMX(c) {
		h.Render(c, status, views.RegisterForm(form))
		return
	}
	h.RenderPage(c, status, "Create account", "Create Account", views.RegisterPage(form))
}

// Logout always ends on the login page, whatever the remote answered.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if store := middleware.StoreFromContext(c); store != nil {
		store.Logout(c.Request.Context())
	}
	middleware.Redirect(c, loginPath)
}
