package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// SetEditingLocale switches the locale text edits are written to. Any locale
// other than the default writes translation overlays.
func (b *Builder) SetEditingLocale(locale string) error {
	locale = strings.TrimSpace(locale)
	if !b.schema.Supports(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	b.locale = locale
	return nil
}

// AddLocale appends locale to supportedLocales. Adding a present locale is a
// no-op.
func (b *Builder) AddLocale(locale string) error {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fmt.Errorf("%w: empty locale", ErrUnsupportedLocale)
	}
	if b.schema.Supports(locale) {
		return nil
	}
	return b.update("add locale", func(s *model.FormSchema) error {
		s.SupportedLocales = append(s.SupportedLocales, locale)
		return nil
	})
}

// RemoveLocale drops locale from supportedLocales along with every overlay
// keyed by it. The default locale cannot be removed.
func (b *Builder) RemoveLocale(locale string) error {
	if locale == b.schema.DefaultLocale {
		return fmt.Errorf("%w: %q", ErrDefaultLocale, locale)
	}
	if !b.schema.Supports(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	err := b.update("remove locale", func(s *model.FormSchema) error {
		*s = i18n.PruneLocale(*s, locale)
		s.SupportedLocales = slices.DeleteFunc(s.SupportedLocales, func(l string) bool { return l == locale })
		return nil
	})
	if err != nil {
		return err
	}
	if b.locale == locale {
		b.locale = b.schema.DefaultLocale
	}
	return nil
}

// SetDefaultLocale makes a supported locale the default. Overlays keyed by
// the new default are dropped because the base text now speaks for it.
func (b *Builder) SetDefaultLocale(locale string) error {
	if !b.schema.Supports(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	if locale == b.schema.DefaultLocale {
		return nil
	}
	return b.update("set default locale", func(s *model.FormSchema) error {
		*s = i18n.PruneLocale(*s, locale)
		s.DefaultLocale = locale
		return nil
	})
}

// SetText writes field text in the editing locale.
func (b *Builder) SetText(fieldID string, key i18n.Key, value string) error {
	f, _, ok := b.schema.Find(fieldID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}
	return b.ReplaceField(i18n.SetText(f, key, b.locale, b.schema.DefaultLocale, value))
}

// SetOptionLabel writes an option label in the editing locale.
func (b *Builder) SetOptionLabel(fieldID, optionID, value string) error {
	f, _, ok := b.schema.Find(fieldID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}
	next, err := i18n.SetOptionLabel(f, optionID, b.locale, b.schema.DefaultLocale, value)
	if err != nil {
		return err
	}
	return b.ReplaceField(next)
}

// SetFormText writes form-level text in the editing locale.
func (b *Builder) SetFormText(key i18n.FormKey, value string) error {
	return b.update("set form text", func(s *model.FormSchema) error {
		*s = i18n.SetFormText(*s, key, b.locale, value)
		return nil
	})
}

// Progress reports translation coverage for every non-default locale.
func (b *Builder) Progress() []i18n.Progress {
	var out []i18n.Progress
	for _, locale := range b.schema.SupportedLocales {
		if locale == b.schema.DefaultLocale {
			continue
		}
		out = append(out, i18n.Completeness(b.schema, locale))
	}
	return out
}
