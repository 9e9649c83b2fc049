package i18n

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Key names a translatable attribute of a field.
type Key string

const (
	KeyLabel       Key = "label"
	KeyPlaceholder Key = "placeholder"
	KeyDescription Key = "description"
	// KeyTitle is the title of a group. Other arms have no title.
	KeyTitle Key = "title"
)

var (
	// ErrNotChoice is returned when option labels are edited on a field
	// without options.
	ErrNotChoice = errors.New("i18n: field has no options")
	// ErrUnknownOption is returned when an option id is not part of the field.
	ErrUnknownOption = errors.New("i18n: unknown option")
)

// Resolve returns the text shown for key in locale. Translations override the
// base value; a missing or empty translation falls back to the base.
func Resolve(f model.Field, key Key, locale, defaultLocale string) string {
	if f == nil {
		return ""
	}
	base := baseText(f, key)
	if locale == defaultLocale || locale == "" {
		return base
	}
	tr, ok := f.Base().I18n[locale]
	if !ok {
		return base
	}
	if text := overlayText(tr, key); text != "" {
		return text
	}
	return base
}

// ResolveOption returns the label of opt in locale. Option translations are
// keyed by option id.
func ResolveOption(f model.Field, opt model.Option, locale, defaultLocale string) string {
	if f == nil || locale == defaultLocale || locale == "" {
		return opt.Label
	}
	if label := f.Base().I18n[locale].Options[opt.ID]; label != "" {
		return label
	}
	return opt.Label
}

// SetText writes value for key. In the default locale the base field is
// updated; in any other locale only the locale's overlay changes and the base
// is left untouched. The input field is never modified.
func SetText(f model.Field, key Key, locale, defaultLocale, value string) model.Field {
	if f == nil {
		return nil
	}
	out := f.Clone()
	if locale == defaultLocale || locale == "" {
		return withBaseText(out, key, value)
	}

	base := out.Base()
	tr := base.I18n[locale]
	switch key {
	case KeyLabel:
		tr.Label = value
	case KeyPlaceholder:
		tr.Placeholder = value
	case KeyDescription:
		tr.Description = value
	case KeyTitle:
		tr.Title = value
	}
	base.I18n = putTranslation(base.I18n, locale, tr)
	return out.WithBase(base)
}

// SetOptionLabel writes the label of the option identified by optionID. The
// default locale rewrites the option itself; other locales write
// i18n[locale].options[optionID].
func SetOptionLabel(f model.Field, optionID, locale, defaultLocale, value string) (model.Field, error) {
	choice, ok := model.AsChoice(f)
	if !ok {
		return f, ErrNotChoice
	}
	index := -1
	for i, item := range choice.Items() {
		if item.ID == optionID {
			index = i
			break
		}
	}
	if index < 0 {
		return f, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
	}

	out := choice.Clone().(model.ChoiceField)
	if locale == defaultLocale || locale == "" {
		items := out.Items()
		items[index].Label = value
		return out.WithItems(items), nil
	}

	base := out.Base()
	tr := base.I18n[locale]
	if tr.Options == nil {
		tr.Options = make(map[string]string)
	}
	if value == "" {
		delete(tr.Options, optionID)
		if len(tr.Options) == 0 {
			tr.Options = nil
		}
	} else {
		tr.Options[optionID] = value
	}
	base.I18n = putTranslation(base.I18n, locale, tr)
	return out.WithBase(base), nil
}

func baseText(f model.Field, key Key) string {
	base := f.Base()
	switch key {
	case KeyLabel:
		return base.Label
	case KeyPlaceholder:
		return base.Placeholder
	case KeyDescription:
		return base.Description
	case KeyTitle:
		if group, ok := f.(model.GroupField); ok {
			return group.Title
		}
	}
	return ""
}

func withBaseText(f model.Field, key Key, value string) model.Field {
	if key == KeyTitle {
		if group, ok := f.(model.GroupField); ok {
			group.Title = value
			return group
		}
		return f
	}
	base := f.Base()
	switch key {
	case KeyLabel:
		base.Label = value
	case KeyPlaceholder:
		base.Placeholder = value
	case KeyDescription:
		base.Description = value
	}
	return f.WithBase(base)
}

func overlayText(tr model.Translation, key Key) string {
	switch key {
	case KeyLabel:
		return tr.Label
	case KeyPlaceholder:
		return tr.Placeholder
	case KeyDescription:
		return tr.Description
	case KeyTitle:
		return tr.Title
	default:
		return ""
	}
}

// putTranslation stores tr, creating the map on demand and dropping locales
// whose overlay became empty.
func putTranslation(m map[string]model.Translation, locale string, tr model.Translation) map[string]model.Translation {
	if tr.Empty() {
		delete(m, locale)
		if len(m) == 0 {
			return nil
		}
		return m
	}
	if m == nil {
		m = make(map[string]model.Translation)
	}
	m[locale] = tr
	return m
}
