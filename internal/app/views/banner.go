package views

import (
	"context"

	"github.com/a-h/templ"
)

type BannerType string

const (
	BannerError   BannerType = "error"
	BannerSuccess BannerType = "success"
	BannerInfo    BannerType = "info"
)

type BannerProps struct {
	ID      string
	Type    BannerType
	Message string
}

func bannerClasses(t BannerType) string {
	base := "rounded-md border px-4 py-3 text-sm mb-4"
	switch t {
	case BannerError:
		return classes(base, "border-red-200 bg-red-50 text-red-700")
	case BannerSuccess:
		return classes(base, "border-green-200 bg-green-50 text-green-700")
	default:
		return classes(base, "border-blue-200 bg-blue-50 text-blue-700")
	}
}

func Banner(props BannerProps) templ.Component {
	return component(func(_ context.Context, h *html) {
		if props.Message == "" {
			return
		}
		h.raw(`<div role="alert"`)
		if props.ID != "" {
			h.attr("id", props.ID)
		}
		h.attr("class", bannerClasses(props.Type))
		h.attr("data-banner", string(props.Type))
		h.raw(`>`)
		h.text(props.Message)
		h.raw(`</div>`)
	})
}
