package html

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle rooted at templates/.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS    fs.FS
	templatesDir  string
	engineOptions []EngineOption
}

// WithTemplatesFS supplies an alternate bundle. It must provide form.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates missing
// there fall back to the bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = path
	}
}

// WithEngineOptions forwards filters and global data to the template engine.
func WithEngineOptions(options ...EngineOption) Option {
	return func(cfg *config) {
		cfg.engineOptions = append(cfg.engineOptions, options...)
	}
}

// Renderer draws a plan as an HTML form fragment.
type Renderer struct {
	engine *Engine
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer, defaulting to the embedded templates.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engineOpts := []EngineOption{WithFS(cfg.templateFS)}
	if cfg.templatesDir != "" {
		engineOpts = append(engineOpts, WithBaseDir(cfg.templatesDir))
	}
	engine, err := NewEngine(append(engineOpts, cfg.engineOptions...)...)
	if err != nil {
		return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
	}
	return &Renderer{engine: engine}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the plan. Descriptions are sanitized; all other text is
// escaped by the template.
func (r *Renderer) Render(ctx context.Context, plan render.Plan, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.engine == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}
	out, err := r.engine.RenderTemplate("form", map[string]any{
		"form": buildView(plan, opts),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(out), nil
}
