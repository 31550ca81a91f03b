package views

import (
	"context"
	"encoding/json"
	"time"

	"github.com/a-h/templ"
)

type StatCard struct {
	Label string
	Value string
	Color string
}

// HealthView is the remote status as the dashboards display it.
type HealthView struct {
	Online    bool
	Error     string
	Payload   map[string]any
	Stats     []StatCard
	CheckedAt time.Time
}

type AdminDashboardData struct {
	Greeting      string
	Health        HealthView
	LowStockCount int
	LowStockError string
}

type ManagerDashboardData struct {
	Greeting string
	Health   HealthView
}

var statColors = map[string]string{
	"indigo":  "bg-indigo-100 text-indigo-600",
	"emerald": "bg-emerald-100 text-emerald-600",
	"amber":   "bg-amber-100 text-amber-600",
	"pink":    "bg-pink-100 text-pink-600",
}

func AdminDashboard(data AdminDashboardData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1 class="mb-2 text-2xl font-bold">Admin dashboard</h1><p class="mb-6 text-gray-600">`)
		h.text(data.Greeting)
		h.raw(`</p><div id="stats" class="mb-8 grid grid-cols-1 gap-4 md:grid-cols-4">`)
		for _, s := range data.Health.Stats {
			h.raw(`<div class="rounded-lg bg-white p-5 shadow-sm"><p class="text-sm text-gray-500">`)
			h.text(s.Label)
			h.raw(`</p><p`)
			h.attr("class", classes("mt-1 rounded px-2 text-2xl font-bold", statColors[s.Color]))
			h.raw(` data-stat>`)
			h.text(s.Value)
			h.raw(`</p></div>`)
		}
		h.raw(`</div><div class="grid grid-cols-1 gap-6 md:grid-cols-2">`)
		h.render(ctx, HealthPanel(data.Health, "/admin/dashboard/health"))
		h.raw(`<section class="rounded-lg bg-white p-6 shadow-sm"><h2 class="mb-4 text-lg font-semibold">Inventory</h2>`)
		if data.LowStockError != "" {
			h.render(ctx, Banner(BannerProps{Type: BannerError, Message: data.LowStockError}))
		} else {
			h.raw(`<p id="low-stock-count" class="text-sm text-gray-700">`)
			h.text(itoa(int64(data.LowStockCount)))
			h.raw(` ingredient(s) below minimum stock</p>`)
		}
		h.raw(`<div class="mt-4 flex gap-3"><a href="/admin/inventory" class="text-sm text-indigo-600">Manage inventory</a>`)
		h.raw(`<a href="/admin/reports" class="text-sm text-indigo-600">View reports</a></div></section>`)
		h.raw(`</div>`)
	})
}

// HealthPanel refreshes itself from refreshURL every 30 seconds.
func HealthPanel(health HealthView, refreshURL string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<section id="health-panel" class="rounded-lg bg-white p-6 shadow-sm" hx-trigger="every 30s" hx-swap="outerHTML"`)
		h.attr("hx-get", refreshURL)
		h.raw(`><h2 class="mb-4 text-lg font-semibold">System status</h2>`)
		if !health.Online {
			h.raw(`<div data-status="offline" class="text-center">`)
			h.render(ctx, Banner(BannerProps{Type: BannerError, Message: health.Error}))
			h.raw(`<p class="text-sm text-gray-500">Make sure the backend server is running</p></div>`)
		} else {
			h.raw(`<div data-status="online" class="flex items-center gap-3 rounded bg-gray-50 p-3">`)
			h.raw(`<span class="h-2.5 w-2.5 rounded-full bg-emerald-500"></span><span>Backend API</span>`)
			h.raw(`<span class="ml-auto text-sm font-medium text-emerald-500">Operational</span></div>`)
			h.render(ctx, payloadBlock(health.Payload))
		}
		if !health.CheckedAt.IsZero() {
			h.raw(`<p class="mt-3 text-xs text-gray-400">Checked `)
			h.text(health.CheckedAt.Format("15:04:05"))
			h.raw(`</p>`)
		}
		h.raw(`</section>`)
	})
}

func payloadBlock(payload map[string]any) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(payload) == 0 {
			return
		}
		pretty, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return
		}
		h.raw(`<div class="mt-4 rounded bg-gray-100 p-4"><p class="mb-2 text-xs font-semibold uppercase text-gray-500">API response</p>`)
		h.raw(`<pre id="health-payload" class="font-mono text-sm text-gray-700">`)
		h.text(string(pretty))
		h.raw(`</pre></div>`)
	})
}

func ManagerDashboard(data ManagerDashboardData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<h1 class="mb-2 text-2xl font-bold">Manager dashboard</h1><p class="mb-6 text-gray-600">`)
		h.text(data.Greeting)
		h.raw(`</p>`)
		h.render(ctx, HealthPanel(data.Health, "/manager/dashboard/health"))
	})
}
