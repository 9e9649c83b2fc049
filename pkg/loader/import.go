package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// ErrImport wraps every reason an import was rejected. No partial schema is
// returned alongside it.
var ErrImport = errors.New("loader: import rejected")

// Option configures Import and LoadFS.
type Option func(*config)

type config struct {
	ids    model.IDGenerator
	logger zerolog.Logger
}

// WithIDGenerator sets the generator used to replace missing or duplicate ids.
func WithIDGenerator(ids model.IDGenerator) Option {
	return func(cfg *config) {
		if ids != nil {
			cfg.ids = ids
		}
	}
}

// WithLogger routes repair notices to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Repair records one change Import made to accept a document.
type Repair struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report lists the repairs applied during an import.
type Report struct {
	Repairs []Repair `json:"repairs,omitempty"`
}

// Repaired reports whether the imported schema differs from the document.
func (r Report) Repaired() bool {
	return len(r.Repairs) > 0
}

func (r *Report) add(path, format string, args ...any) {
	r.Repairs = append(r.Repairs, Repair{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Import parses a JSON or YAML schema document. Missing top-level keys are
// filled from the structural defaults, recoverable inconsistencies are
// repaired and listed in the Report, and anything else is rejected with
// ErrImport.
func Import(data []byte, opts ...Option) (model.FormSchema, Report, error) {
	cfg := config{ids: model.UUIDGenerator(), logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var report Report
	doc, err := parseDocument(data)
	if err != nil {
		return model.FormSchema{}, Report{}, err
	}
	if err := mergeDefaults(doc, &report); err != nil {
		return model.FormSchema{}, Report{}, err
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("%w: %v", ErrImport, err)
	}
	var schema model.FormSchema
	if err := json.Unmarshal(payload, &schema); err != nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("%w: %w", ErrImport, err)
	}

	if !schema.Supports(schema.DefaultLocale) {
		return model.FormSchema{}, Report{}, fmt.Errorf("%w: %w: default locale %q is not in supportedLocales",
			ErrImport, model.ErrLocaleClosure, schema.DefaultLocale)
	}

	schema = repair(schema, cfg.ids, &report)
	if err := schema.Validate(); err != nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("%w: %w", ErrImport, err)
	}

	for _, r := range report.Repairs {
		cfg.logger.Debug().Str("path", r.Path).Msg(r.Message)
	}
	return schema, report, nil
}

// LoadFS reads path from fsys and imports it.
func LoadFS(fsys fs.FS, path string, opts ...Option) (model.FormSchema, Report, error) {
	if fsys == nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("%w: filesystem is nil", ErrImport)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	schema, report, err := Import(data, opts...)
	if err != nil {
		return model.FormSchema{}, Report{}, fmt.Errorf("%s: %w", path, err)
	}
	return schema, report, nil
}

// parseDocument decodes data as JSON, falling back to YAML, into a generic
// object.
func parseDocument(data []byte) (map[string]any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("%w: document is empty", ErrImport)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, fmt.Errorf("%w: invalid JSON or YAML object", ErrImport)
	}
	return doc, nil
}

func mergeDefaults(doc map[string]any, report *Report) error {
	fields, ok := doc["fields"]
	if !ok || fields == nil {
		return fmt.Errorf("%w: fields is required", ErrImport)
	}
	if _, ok := fields.([]any); !ok {
		return fmt.Errorf("%w: fields must be an array", ErrImport)
	}

	locales, _ := doc["supportedLocales"].([]any)
	if len(locales) == 0 {
		primary := model.DefaultLocale
		if def, _ := doc["defaultLocale"].(string); strings.TrimSpace(def) != "" {
			primary = def
		}
		locales = []any{primary}
		doc["supportedLocales"] = locales
		report.add("supportedLocales", "defaulted to [%s]", primary)
	}
	if def, _ := doc["defaultLocale"].(string); strings.TrimSpace(def) == "" {
		first, _ := locales[0].(string)
		doc["defaultLocale"] = first
		report.add("defaultLocale", "defaulted to %q", first)
	}
	if _, ok := doc["submitButtonText"]; !ok {
		doc["submitButtonText"] = model.DefaultSubmitButtonText
		report.add("submitButtonText", "defaulted to %q", model.DefaultSubmitButtonText)
	}
	return nil
}
