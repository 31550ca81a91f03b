package views

import (
	"context"

	"github.com/a-h/templ"
)

// Pending is shown while the session is still resolving. It carries no
// user-specific content and polls path until the guard can decide.
func Pending(path string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Loading…</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`<script src="https://cdn.tailwindcss.com"></script></head>`)
		h.raw(`<body class="flex min-h-screen items-center justify-center bg-gray-50">`)
		h.raw(`<div id="session-pending" role="status" hx-trigger="load delay:750ms" hx-target="body" hx-swap="outerHTML" hx-select="body"`)
		h.attr("hx-get", path)
		h.raw(`><div class="h-10 w-10 animate-spin rounded-full border-4 border-indigo-200 border-t-indigo-600"></div>`)
		h.raw(`<span class="sr-only">Loading…</span></div></body></html>`)
	})
}
