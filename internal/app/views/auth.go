package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type LoginFormData struct {
	Username string
	Error    string
}

type RegisterFormData struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      models.Role
	Errors    models.FieldErrors
}

func authCard(title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="mx-auto mt-12 max-w-md rounded-lg bg-white p-8 shadow"><h1 class="mb-6 text-2xl font-bold">`)
		h.text(title)
		h.raw(`</h1>`)
		h.render(ctx, body)
		h.raw(`</div>`)
	})
}

func LoginPage(data LoginFormData) templ.Component {
	return authCard("Sign in", LoginForm(data))
}

// LoginForm posts over htmx; failures are swapped into #login-feedback.
func LoginForm(data LoginFormData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<form id="login-form" method="post" action="/login" hx-post="/login" hx-target="#login-feedback" hx-swap="innerHTML">`)
		h.raw(`<div id="login-feedback">`)
		h.render(ctx, Banner(BannerProps{ID: "login-error", Type: BannerError, Message: data.Error}))
		h.raw(`</div>`)
		h.render(ctx, field(fieldProps{Label: "Username", Name: "username", Value: data.Username, Required: true,
			Extra: map[string]string{"autocomplete": "username"}}))
		h.render(ctx, field(fieldProps{Label: "Password", Name: "password", Type: "password", Required: true,
			Extra: map[string]string{"autocomplete": "current-password"}}))
		h.raw(`<button type="submit"`)
		h.attr("class", classes(buttonClass, "w-full"))
		h.raw(`>Sign in</button>`)
		h.raw(`<p class="mt-4 text-center text-sm text-gray-600">No account? <a href="/register" class="text-indigo-600">Create one</a></p>`)
		h.raw(`</form>`)
	})
}

func LoginFeedback(message string) templ.Component {
	return Banner(BannerProps{ID: "login-error", Type: BannerError, Message: message})
}

func RegisterPage(data RegisterFormData) templ.Component {
	return authCard("Create account", RegisterForm(data))
}

// RegisterForm is swapped as a whole so every field can show its own error.
func RegisterForm(data RegisterFormData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		errs := data.Errors
		if errs == nil {
			errs = models.FieldErrors{}
		}
		role := data.Role
		if !role.Valid() {
			role = models.RoleManager
		}

		h.raw(`<form id="register-form" method="post" action="/register" hx-post="/register" hx-target="this" hx-swap="outerHTML">`)
		h.render(ctx, Banner(BannerProps{ID: "register-error", Type: BannerError, Message: errs.First(models.GeneralField)}))
		h.render(ctx, field(fieldProps{Label: "Username", Name: "username", Value: data.Username, Error: errs.First("username"), Required: true}))
		h.render(ctx, field(fieldProps{Label: "Email", Name: "email", Type: "email", Value: data.Email, Error: errs.First("email"), Required: true}))
		h.raw(`<div class="grid grid-cols-2 gap-4">`)
		h.render(ctx, field(fieldProps{Label: "First name", Name: "first_name", Value: data.FirstName, Error: errs.First("first_name")}))
		h.render(ctx, field(fieldProps{Label: "Last name", Name: "last_name", Value: data.LastName, Error: errs.First("last_name")}))
		h.raw(`</div>`)
		h.render(ctx, field(fieldProps{Label: "Password", Name: "password", Type: "password", Error: errs.First("password"), Required: true}))
		h.render(ctx, field(fieldProps{Label: "Confirm password", Name: "password_confirm", Type: "password", Error: errs.First("password_confirm"), Required: true}))
		h.render(ctx, selectField("Role", "role", string(role), errs.First("role"), []option{
			{Value: string(models.RoleManager), Label: models.RoleManager.Label()},
			{Value: string(models.RoleAdmin), Label: models.RoleAdmin.Label()},
		}))
		h.raw(`<button type="submit"`)
		h.attr("class", classes(buttonClass, "w-full"))
		h.raw(`>Create account</button>`)
		h.raw(`<p class="mt-4 text-center text-sm text-gray-600">Already registered? <a href="/login" class="text-indigo-600">Sign in</a></p>`)
		h.raw(`</form>`)
	})
}
