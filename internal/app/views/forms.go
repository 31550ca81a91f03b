package views

import (
	"context"

	"github.com/a-h/templ"
)

const (
	inputClass      = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm focus:border-indigo-500 focus:outline-none"
	inputErrorClass = "border-red-500 focus:border-red-500"
	buttonClass     = "rounded-md bg-indigo-600 px-4 py-2 text-sm font-medium text-white hover:bg-indigo-500"
	dangerClass     = "rounded-md bg-red-50 px-3 py-1 text-xs font-medium text-red-700 hover:bg-red-100"
)

type fieldProps struct {
	Label    string
	Name     string
	Type     string
	Value    string
	Error    string
	Required bool
	Extra    map[string]string
}

func field(p fieldProps) templ.Component {
	return component(func(_ context.Context, h *html) {
		if p.Type == "" {
			p.Type = "text"
		}
		h.raw(`<div class="mb-4"><label class="block text-sm font-medium text-gray-700"`)
		h.attr("for", p.Name)
		h.raw(`>`)
		h.text(p.Label)
		h.raw(`</label><input`)
		h.attr("id", p.Name)
		h.attr("name", p.Name)
		h.attr("type", p.Type)
		if p.Type != "password" {
			h.attr("value", p.Value)
		}
		cls := inputClass
		if p.Error != "" {
			cls = classes(inputClass, inputErrorClass)
			h.attr("aria-invalid", "true")
		}
		h.attr("class", cls)
		for _, k := range sortedKeys(p.Extra) {
			h.attr(k, p.Extra[k])
		}
		if p.Required {
			h.raw(` required`)
		}
		h.raw(`>`)
		if p.Error != "" {
			h.raw(`<p class="mt-1 text-xs text-red-600" data-field-error`)
			h.attr("data-field", p.Name)
			h.raw(`>`)
			h.text(p.Error)
			h.raw(`</p>`)
		}
		h.raw(`</div>`)
	})
}

type option struct {
	Value string
	Label string
}

func selectField(label, name, selected, errMsg string, options []option) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="mb-4"><label class="block text-sm font-medium text-gray-700"`)
		h.attr("for", name)
		h.raw(`>`)
		h.text(label)
		h.raw(`</label><select`)
		h.attr("id", name)
		h.attr("name", name)
		h.attr("class", inputClass)
		h.raw(`>`)
		for _, o := range options {
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
		if errMsg != "" {
			h.raw(`<p class="mt-1 text-xs text-red-600" data-field-error`)
			h.attr("data-field", name)
			h.raw(`>`)
			h.text(errMsg)
			h.raw(`</p>`)
		}
		h.raw(`</div>`)
	})
}

func labelledOptions(values []string) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{Value: v, Label: Label(v)})
	}
	return out
}
