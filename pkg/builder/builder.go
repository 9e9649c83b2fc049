package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrFieldNotFound is returned when an id matches no field.
	ErrFieldNotFound = errors.New("builder: field not found")
	// ErrGroupNotFound is returned when an id matches no top-level group.
	ErrGroupNotFound = errors.New("builder: group not found")
	// ErrDifferentContainer is returned when reordering across containers.
	ErrDifferentContainer = errors.New("builder: fields live in different containers")
	// ErrUnsupportedLocale is returned for locales outside supportedLocales.
	ErrUnsupportedLocale = errors.New("builder: locale is not supported")
	// ErrDefaultLocale is returned when removing the default locale.
	ErrDefaultLocale = errors.New("builder: the default locale cannot be removed")
	// ErrTypeChange is returned for type changes between groups and leaves.
	ErrTypeChange = errors.New("builder: groups and leaf fields cannot change into each other")
)

// Option configures a Builder.
type Option func(*Builder)

// WithIDGenerator sets the generator used for new fields, groups and options.
func WithIDGenerator(ids model.IDGenerator) Option {
	return func(b *Builder) {
		if ids != nil {
			b.ids = ids
		}
	}
}

// WithLogger sets the logger edits are traced to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithLocale sets the initial editing locale. Unsupported locales fall back
// to the default one.
func WithLocale(locale string) Option {
	return func(b *Builder) {
		b.locale = strings.TrimSpace(locale)
	}
}

// Builder is an editing session over one schema. Every edit is applied to a
// copy that is validated before it replaces the current schema, so a failed
// edit leaves the last valid schema in place.
//
// A Builder is owned by one session and is not safe for concurrent use.
type Builder struct {
	schema model.FormSchema
	ids    model.IDGenerator
	locale string
	logger zerolog.Logger
}

// New starts a session over a copy of schema. The schema must be valid.
func New(schema model.FormSchema, opts ...Option) (*Builder, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	b := &Builder{
		schema: schema.Clone(),
		ids:    model.UUIDGenerator(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if !b.schema.Supports(b.locale) {
		b.locale = b.schema.DefaultLocale
	}
	return b, nil
}

// NewEmpty starts a session over an empty schema.
func NewEmpty(title string, opts ...Option) *Builder {
	b, _ := New(model.NewSchema(title), opts...)
	return b
}

// Schema returns a deep copy of the current schema.
func (b *Builder) Schema() model.FormSchema {
	return b.schema.Clone()
}

// Field returns a copy of the field with the given id.
func (b *Builder) Field(id string) (model.Field, bool) {
	f, _, ok := b.schema.Find(id)
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// Locale returns the editing locale.
func (b *Builder) Locale() string {
	return b.locale
}

// Translating reports whether edits write translation overlays.
func (b *Builder) Translating() bool {
	return b.locale != b.schema.DefaultLocale
}

// update runs fn on a copy of the schema and commits it when it is valid.
func (b *Builder) update(op string, fn func(s *model.FormSchema) error) error {
	candidate := b.schema.Clone()
	if err := fn(&candidate); err != nil {
		b.logger.Debug().Str("op", op).Err(err).Msg("edit rejected")
		return err
	}
	if err := candidate.Validate(); err != nil {
		b.logger.Debug().Str("op", op).Err(err).Msg("edit violates schema invariants")
		return fmt.Errorf("builder: %s: %w", op, err)
	}
	b.schema = candidate
	b.logger.Debug().Str("op", op).Int("fields", len(candidate.Fields)).Msg("edit applied")
	return nil
}

// SetShowStepNumbers toggles step numbering in step mode.
func (b *Builder) SetShowStepNumbers(show bool) {
	b.schema.ShowStepNumbers = show
}

// SetShowResponseSummary toggles the terminal summary step.
func (b *Builder) SetShowResponseSummary(show bool) {
	b.schema.ShowResponseSummary = show
}
