package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

type ReportsData struct {
	Reports []models.Report
	Search  string
	Type    string
	Status  string
	Error   string
}

func (d ReportsData) query() string {
	q := url.Values{}
	if d.Search != "" {
		q.Set("q", d.Search)
	}
	if d.Type != "" {
		q.Set("type", d.Type)
	}
	if d.Status != "" {
		q.Set("status", d.Status)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

var statusStyles = map[string]string{
	"completed": "bg-emerald-100 text-emerald-600",
	"pending":   "bg-amber-100 text-amber-600",
	"failed":    "bg-red-100 text-red-600",
}

func ReportsPage(data ReportsData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="mb-6 flex items-center justify-between"><div><h1 class="text-2xl font-bold">Reports</h1>`)
		h.raw(`<p class="text-sm text-gray-500">Manage and export generated reports</p></div>`)
		h.raw(`<a id="export-csv" class="rounded-md bg-emerald-600 px-4 py-2 text-sm font-medium text-white hover:bg-emerald-500"`)
		h.attr("href", "/admin/reports/export.csv"+data.query())
		h.raw(`>Export CSV</a></div>`)

		h.raw(`<form id="reports-filter" class="mb-4 flex flex-wrap gap-3" method="get" action="/admin/reports" hx-get="/admin/reports/table" hx-target="#reports-table" hx-swap="outerHTML" hx-trigger="input changed delay:300ms, change, submit">`)
		h.raw(`<input type="search" name="q" placeholder="Search reports..."`)
		h.attr("value", data.Search)
		h.attr("class", classes(inputClass, "mt-0 w-64"))
		h.raw(`>`)
		h.render(ctx, filterSelect("type", "All types", data.Type, models.ReportTypes))
		h.render(ctx, filterSelect("status", "All statuses", data.Status, models.ReportStatuses))
		h.raw(`</form>`)
		h.render(ctx, ReportsTable(data))
	})
}

func filterSelect(name, allLabel, selected string, values []string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<select`)
		h.attr("name", name)
		h.attr("class", classes(inputClass, "mt-0 w-auto"))
		h.raw(`><option value="">`)
		h.text(allLabel)
		h.raw(`</option>`)
		for _, o := range labelledOptions(values) {
			h.raw(`<option`)
			h.attr("value", o.Value)
			if o.Value == selected {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(o.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
	})
}

func ReportsTable(data ReportsData) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div id="reports-table" class="overflow-hidden rounded-lg bg-white shadow-sm">`)
		switch {
		case data.Error != "":
			h.render(ctx, Banner(BannerProps{ID: "reports-error", Type: BannerError, Message: data.Error}))
		case len(data.Reports) == 0:
			h.raw(`<p class="px-4 py-8 text-center text-gray-500">No reports found</p>`)
		default:
			h.raw(`<table`)
			h.attr("class", tableClass)
			h.raw(`><thead><tr>`)
			for _, col := range []string{"ID", "Title", "Type", "Status", "Created"} {
				h.raw(`<th`)
				h.attr("class", thClass)
				h.raw(`>`)
				h.text(col)
				h.raw(`</th>`)
			}
			h.raw(`</tr></thead><tbody class="divide-y divide-gray-100">`)
			for _, r := range data.Reports {
				h.raw(`<tr data-report`)
				h.attr("id", "report-"+itoa(r.ID))
				h.raw(`><td`)
				h.attr("class", tdClass)
				h.raw(`>`)
				h.text(itoa(r.ID))
				h.raw(`</td><td`)
				h.attr("class", classes(tdClass, "font-medium"))
				h.raw(`>`)
				h.text(r.Title)
				h.raw(`</td><td`)
				h.attr("class", tdClass)
				h.raw(`>`)
				h.text(Label(r.Type))
				h.raw(`</td><td`)
				h.attr("class", tdClass)
				h.raw(`><span`)
				h.attr("class", classes(pillClass, statusStyles[r.Status]))
				h.raw(`>`)
				h.text(Label(r.Status))
				h.raw(`</span></td><td`)
				h.attr("class", classes(tdClass, "text-gray-500"))
				h.raw(`>`)
				if !r.CreatedAt.IsZero() {
					h.text(r.CreatedAt.Format("2006-01-02 15:04"))
				}
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table>`)
		}
		h.raw(`</div>`)
	})
}
