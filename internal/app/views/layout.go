package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"4..","swap":true,"error":false},{"code":"5..","swap":true,"error":true}]}`

// LayoutPage renders the full document with navigation around data.Content.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="htmx-config"`)
		h.attr("content", htmxConfig)
		h.raw(`><title>`)
		h.text(data.Title)
		h.raw(`</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		h.raw(`</head><body class="min-h-screen bg-gray-50 text-gray-900">`)
		h.render(ctx, navbar(data))
		h.raw(`<main id="main" class="mx-auto max-w-7xl px-4 py-8">`)
		h.render(ctx, data.Content)
		h.raw(`</main></body></html>`)
	})
}

func navbar(data models.LayoutTempl) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<nav class="border-b bg-white"><div class="mx-auto flex max-w-7xl items-center justify-between px-4 py-3">`)
		h.raw(`<span class="font-semibold">Population Dashboard</span><ul class="flex gap-4">`)
		for _, item := range data.Nav.Items {
			cls := "text-gray-600 hover:text-gray-900"
			if item.Name == data.ActiveNav {
				cls = classes(cls, "font-semibold text-indigo-600")
			}
			h.raw(`<li><a`)
			h.attr("href", item.URL)
			h.attr("class", cls)
			h.raw(`>`)
			h.text(item.Name)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)
		if data.User != nil {
			h.raw(`<div class="flex items-center gap-3"><span id="current-user" class="text-sm text-gray-600">`)
			h.text(data.User.DisplayName())
			h.raw(` · `)
			h.text(data.User.Role.Label())
			h.raw(`</span><form method="post" action="/logout" hx-post="/logout">`)
			h.raw(`<button type="submit" class="rounded bg-gray-100 px-3 py-1 text-sm hover:bg-gray-200">Log out</button></form></div>`)
		}
		h.raw(`</div></nav>`)
	})
}
