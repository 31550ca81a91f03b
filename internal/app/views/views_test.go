package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestLoginForm(t *testing.T) {
	t.Run("it renders the sign-in form", func(t *testing.T) {
		doc := renderDoc(t, LoginPage(LoginFormData{}))

		form := doc.Find("form#login-form")
		require.Equal(t, 1, form.Length())
		hxPost, _ := form.Attr("hx-post")
		assert.Equal(t, "/login", hxPost)
		assert.Equal(t, 1, form.Find("input[name='username']").Length())
		assert.Equal(t, 1, form.Find("input[name='password'][type='password']").Length())
		assert.Equal(t, 1, form.Find("button[type='submit']").Length())
		assert.Equal(t, 0, doc.Find("[role='alert']").Length())
		assert.Equal(t, 1, doc.Find("a[href='/register']").Length())
	})

	t.Run("it shows the error and keeps the username escaped", func(t *testing.T) {
		doc := renderDoc(t, LoginForm(LoginFormData{Username: `<b>eve</b>`, Error: "Invalid credentials"}))

		assert.Equal(t, "Invalid credentials", doc.Find("#login-error").Text())
		val, _ := doc.Find("input[name='username']").Attr("value")
		assert.Equal(t, `<b>eve</b>`, val)
		assert.Equal(t, 0, doc.Find("b").Length())
	})
}

func TestRegisterFormShowsFieldErrors(t *testing.T) {
	doc := renderDoc(t, RegisterForm(RegisterFormData{
		Username: "carol",
		Email:    "c@example.com",
		Errors: models.FieldErrors{
			"email":             {"taken"},
			models.GeneralField: {"Registration failed"},
		},
	}))

	assert.Equal(t, "taken", doc.Find("[data-field='email']").Text())
	assert.Equal(t, "Registration failed", doc.Find("#register-error").Text())
	assert.Equal(t, 0, doc.Find("[data-field='username']").Length())
	selected, _ := doc.Find("select[name='role'] option[selected]").Attr("value")
	assert.Equal(t, "manager", selected)
	_, hasValue := doc.Find("input[name='password']").Attr("value")
	assert.False(t, hasValue)
}

func TestLayoutPage(t *testing.T) {
	user := &models.Identity{Username: "alice", FirstName: "Alice", Role: models.RoleAdmin}
	doc := renderDoc(t, LayoutPage(models.LayoutTempl{
		Title:     "Dashboard",
		User:      user,
		Nav:       models.NavFor(user),
		ActiveNav: "Reports",
		Content:   Banner(BannerProps{ID: "content", Message: "hello"}),
	}))

	assert.Equal(t, "Dashboard", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("meta[name='htmx-config']").Length())
	assert.Equal(t, 3, doc.Find("nav li").Length())
	assert.Contains(t, doc.Find("#current-user").Text(), "Administrator")
	cls, _ := doc.Find("a[href='/admin/reports']").Attr("class")
	assert.Contains(t, cls, "text-indigo-600")
	assert.NotContains(t, cls, "text-gray-600")
	assert.Equal(t, "hello", doc.Find("main #content").Text())
}

func TestLayoutPageAnonymousHasNoLogout(t *testing.T) {
	doc := renderDoc(t, LayoutPage(models.LayoutTempl{Title: "Sign in", Nav: models.OfflineNav}))
	assert.Equal(t, 0, doc.Find("form[action='/logout']").Length())
	assert.Equal(t, 1, doc.Find("a[href='/login']").Length())
}

func TestPendingPollsSamePath(t *testing.T) {
	doc := renderDoc(t, Pending("/admin/inventory"))
	el := doc.Find("#session-pending")
	require.Equal(t, 1, el.Length())
	get, _ := el.Attr("hx-get")
	assert.Equal(t, "/admin/inventory", get)
	assert.Equal(t, 0, doc.Find("nav").Length())
}

func TestHealthPanel(t *testing.T) {
	t.Run("online shows payload", func(t *testing.T) {
		doc := renderDoc(t, HealthPanel(HealthView{
			Online:    true,
			Payload:   map[string]any{"status": "ok"},
			CheckedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}, "/admin/dashboard/health"))

		assert.Equal(t, 1, doc.Find("[data-status='online']").Length())
		assert.Contains(t, doc.Find("#health-payload").Text(), `"status": "ok"`)
		get, _ := doc.Find("#health-panel").Attr("hx-get")
		assert.Equal(t, "/admin/dashboard/health", get)
	})

	t.Run("offline shows error", func(t *testing.T) {
		doc := renderDoc(t, HealthPanel(HealthView{Error: "Failed to connect to backend"}, "/x"))
		assert.Equal(t, 1, doc.Find("[data-status='offline']").Length())
		assert.Contains(t, doc.Find("[role='alert']").Text(), "Failed to connect")
	})
}

func TestItemsTable(t *testing.T) {
	items := []models.Item{
		{ID: 1, Name: "Latte", Category: "beverage", Price: 3.5, IsAvailable: true},
		{ID: 2, Name: "Cake", Category: "dessert", Price: 4, IsAvailable: false},
	}

	doc := renderDoc(t, ItemsTable(items, true))
	assert.Equal(t, 2, doc.Find("tbody tr").Length())
	assert.Contains(t, doc.Find("#item-1").Text(), "$3.50")
	del, _ := doc.Find("#item-2 [hx-delete]").Attr("hx-delete")
	assert.Equal(t, "/admin/inventory/items/2", del)

	readOnly := renderDoc(t, ItemsTable(items, false))
	assert.Equal(t, 0, readOnly.Find("[hx-delete]").Length())

	empty := renderDoc(t, ItemsTable(nil, true))
	assert.Contains(t, empty.Find("tbody").Text(), "No items found")
}

func TestItemFormModes(t *testing.T) {
	create := renderDoc(t, ItemForm(ItemFormData{}))
	post, _ := create.Find("form").Attr("hx-post")
	assert.Equal(t, "/admin/inventory/items", post)

	edit := renderDoc(t, ItemForm(ItemFormData{ID: 4, Name: "Mocha", Category: "food", Errors: models.FieldErrors{"price": {"Enter a valid number"}}}))
	put, _ := edit.Find("form").Attr("hx-put")
	assert.Equal(t, "/admin/inventory/items/4", put)
	cat, _ := edit.Find("select[name='category'] option[selected]").Attr("value")
	assert.Equal(t, "food", cat)
	assert.Equal(t, "Enter a valid number", edit.Find("[data-field='price']").Text())
}

func TestManagerInventoryMarksLowStock(t *testing.T) {
	doc := renderDoc(t, ManagerInventory(InventoryData{
		Ingredients: []models.Ingredient{
			{ID: 1, Name: "Milk", Unit: "l", IsLowStock: true},
			{ID: 2, Name: "Sugar", Unit: "kg"},
		},
	}))
	assert.Equal(t, 1, doc.Find("[data-low-stock]").Length())
	assert.Contains(t, doc.Find("#low-stock-warning").Text(), "1 ingredient(s)")
	assert.Equal(t, 0, doc.Find("form").Length())
}

func TestReportsPage(t *testing.T) {
	doc := renderDoc(t, ReportsPage(ReportsData{
		Search: "q1",
		Type:   "sales",
		Reports: []models.Report{
			{ID: 9, Title: "Q1 sales", Type: "sales", Status: "completed"},
		},
	}))

	href, _ := doc.Find("#export-csv").Attr("href")
	assert.Equal(t, "/admin/reports/export.csv?q=q1&type=sales", href)
	assert.Equal(t, "Q1 sales", strings.TrimSpace(doc.Find("#report-9 td").Eq(1).Text()))
	assert.Equal(t, "Completed", doc.Find("#report-9 span").Text())
	selected, _ := doc.Find("select[name='type'] option[selected]").Attr("value")
	assert.Equal(t, "sales", selected)
}

func TestReportsTableEmptyAndError(t *testing.T) {
	empty := renderDoc(t, ReportsTable(ReportsData{}))
	assert.Contains(t, empty.Text(), "No reports found")

	failed := renderDoc(t, ReportsTable(ReportsData{Error: "Failed to load reports"}))
	assert.Equal(t, "Failed to load reports", failed.Find("#reports-error").Text())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Low Stock", Label("low_stock"))
	assert.Equal(t, "Forecast", Label("forecast"))
}
