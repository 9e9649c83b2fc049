package render

import (
	"errors"
	"fmt"
	"strings"
)

// Chrome keys name the fixed interface strings a renderer shows next to the
// schema-provided text.
const (
	ChromeNext     = "next"
	ChromePrevious = "previous"
	ChromeSummary  = "summary"
	ChromeRequired = "required"
	ChromeNoAnswer = "noAnswer"
	ChromeStepOf   = "stepOf"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves interface strings for a locale. Args are only passed for
// ChromeStepOf (current step, total steps).
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler returns the string used when a translation is
// unavailable.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

var defaultChrome = map[string]string{
	ChromeNext:     "Next",
	ChromePrevious: "Previous",
	ChromeSummary:  "Review your answers",
	ChromeRequired: "Required",
	ChromeNoAnswer: "No answer",
	ChromeStepOf:   "Step %d of %d",
}

// DefaultChrome falls back to the built-in English strings.
func DefaultChrome(_ string, key string, args []any, _ error) string {
	text := defaultChrome[key]
	if len(args) > 0 && strings.Contains(text, "%") {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// chrome resolves every interface string for locale. Step numbers are only
// filled in when the plan is in step mode.
func chrome(t Translator, onMissing MissingTranslationHandler, locale string, step StepInfo) map[string]string {
	if onMissing == nil {
		onMissing = DefaultChrome
	}
	out := make(map[string]string, len(defaultChrome))
	for key := range defaultChrome {
		var args []any
		if key == ChromeStepOf {
			args = []any{step.Index + 1, step.Total}
		}
		out[key] = translateChrome(t, onMissing, locale, key, args)
	}
	return out
}

func translateChrome(t Translator, onMissing MissingTranslationHandler, locale, key string, args []any) string {
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}
