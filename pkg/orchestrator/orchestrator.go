package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formbuilder/pkg/loader"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSchemaTransformer registers a Transformer that can mutate the schema
// after loading but before projection.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithTranslator resolves the interface chrome (buttons, step counter).
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithLoaderOptions forwards options to loader.Import for Source requests.
func WithLoaderOptions(opts ...loader.Option) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = append(o.loaderOptions, opts...)
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from schema document to rendered
// output. It applies defaults (html renderer, embedded templates) while
// remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	translator      render.Translator
	loaderOptions   []loader.Option
	logger          zerolog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one screen of a form to render.
type Request struct {
	// Source is a JSON or YAML schema document. Optional when Schema is set.
	Source []byte

	// Schema bypasses the loader when the caller already holds a schema.
	Schema *model.FormSchema

	// Locale selects the overlay; unsupported locales fall back to the
	// schema default.
	Locale string

	// Values are the answers collected so far.
	Values render.Values

	// Step is the zero-based active step.
	Step int

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request markup data such as the form action
	// and hidden inputs.
	RenderOptions render.RenderOptions
}

// Generate executes the load → transform → project → render sequence and
// returns the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	schema, err := o.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	plan := o.project(schema, req.Locale, req.Values, req.Step)
	return o.render(ctx, req.Renderer, plan, req.RenderOptions)
}

// Plan resolves the request up to projection without rendering.
func (o *Orchestrator) Plan(ctx context.Context, req Request) (render.Plan, error) {
	schema, err := o.prepare(ctx, req)
	if err != nil {
		return render.Plan{}, err
	}
	return o.project(schema, req.Locale, req.Values, req.Step), nil
}

func (o *Orchestrator) prepare(ctx context.Context, req Request) (model.FormSchema, error) {
	if ctx == nil {
		return model.FormSchema{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.FormSchema{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.FormSchema{}, err
	}

	schema, err := o.resolveSchema(req)
	if err != nil {
		return model.FormSchema{}, err
	}
	if err := o.applyTransformer(ctx, &schema); err != nil {
		return model.FormSchema{}, err
	}
	return schema, nil
}

func (o *Orchestrator) resolveSchema(req Request) (model.FormSchema, error) {
	if req.Schema != nil {
		if err := req.Schema.Validate(); err != nil {
			return model.FormSchema{}, fmt.Errorf("orchestrator: invalid schema: %w", err)
		}
		return req.Schema.Clone(), nil
	}
	if len(req.Source) == 0 {
		return model.FormSchema{}, errors.New("orchestrator: source or schema is required")
	}
	schema, report, err := loader.Import(req.Source, o.loaderOptions...)
	if err != nil {
		return model.FormSchema{}, fmt.Errorf("orchestrator: load schema: %w", err)
	}
	if report.Repaired() {
		o.logger.Debug().Int("repairs", len(report.Repairs)).Msg("schema repaired on load")
	}
	return schema, nil
}

func (o *Orchestrator) project(schema model.FormSchema, locale string, values render.Values, step int) render.Plan {
	return render.Project(schema, locale, values,
		render.WithStep(step),
		render.WithTranslator(o.translator),
	)
}

func (o *Orchestrator) render(ctx context.Context, name string, plan render.Plan, opts render.RenderOptions) ([]byte, error) {
	renderer, err := o.rendererFor(name)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, plan, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyTransformer(ctx context.Context, schema *model.FormSchema) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, schema); err != nil {
		return fmt.Errorf("orchestrator: transform schema: %w", err)
	}
	if err := schema.Validate(); err != nil {
		return fmt.Errorf("orchestrator: transformed schema: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry, err = render.NewDefaultRegistry(renderer)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default registry: %w", err)
			return
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
