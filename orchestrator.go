// Package formbuilder is the top-level entry point: it re-exports the render
// pipeline so callers can serve a form from a schema document with one call.
package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// RenderOptions describes per-request markup data such as the form action
// and hidden inputs.
type RenderOptions = render.RenderOptions

// Values holds answers keyed by field id.
type Values = render.Values

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML imports a JSON or YAML schema document and renders the first
// step in locale with the built-in HTML renderer.
func GenerateHTML(ctx context.Context, source []byte, locale string, values Values, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source: source,
		Locale: locale,
		Values: values,
	})
}

// GenerateHTMLFromSchema renders step of an already loaded schema, bypassing
// the loader.
func GenerateHTMLFromSchema(ctx context.Context, schema model.FormSchema, locale string, step int, values Values, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Schema: &schema,
		Locale: locale,
		Values: values,
		Step:   step,
	})
}
