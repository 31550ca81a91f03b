package renderer

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin/render"

	"github.com/FACorreiaa/population-dashboard/internal/app/observability/metrics"
)

// HTMLTemplRenderer lets c.HTML accept templ components, deferring anything
// else to the previous renderer.
type HTMLTemplRenderer struct {
	FallbackHTMLRenderer render.HTMLRender
}

func (r *HTMLTemplRenderer) Instance(name string, data any) render.Render {
	component, ok := data.(templ.Component)
	if !ok {
		if r.FallbackHTMLRenderer != nil {
			return r.FallbackHTMLRenderer.Instance(name, data)
		}
		return &Renderer{Ctx: context.Background()}
	}
	return &Renderer{Ctx: context.Background(), Component: component}
}

func New(ctx context.Context, component templ.Component) *Renderer {
	return &Renderer{Ctx: ctx, Component: component}
}

// Renderer is a gin render.Render for one templ component. The status code is
// written by gin before Render is called.
type Renderer struct {
	Ctx       context.Context
	Component templ.Component
}

func (t Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Component == nil {
		return nil
	}
	start := time.Now()
	err := t.Component.Render(t.Ctx, w)
	metrics.Get().TemplateRenderSeconds.Record(t.Ctx, time.Since(start).Seconds())
	return err
}

func (t Renderer) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
