package tui

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formbuilder/pkg/render"
)

// OutputFormat controls how the submission is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional prefixes the filler applies when printing messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// SubmitTransformer mutates the submission before serialization.
type SubmitTransformer func(render.Submission) (render.Submission, error)

// Option configures the Filler.
type Option func(*Filler)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(f *Filler) {
		if format != "" {
			f.outputFormat = format
		}
	}
}

// WithSubmitTransformer lets callers mutate the submission prior to
// serialization.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(f *Filler) {
		f.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(f *Filler) {
		f.theme = theme
	}
}

// WithTranslator resolves navigation and summary strings.
func WithTranslator(t render.Translator) Option {
	return func(f *Filler) {
		f.translator = t
	}
}

// WithLogger traces step transitions at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Filler) {
		f.logger = logger
	}
}
