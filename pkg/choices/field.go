package choices

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// AddTo appends a default option to the field.
func (e *Editor) AddTo(f model.ChoiceField) (model.ChoiceField, error) {
	items, err := e.Add(f.Items())
	if err != nil {
		return f, err
	}
	return cloneChoice(f).WithItems(items), nil
}

// RemoveFrom removes the option at index. Translations keyed by the removed
// option are dropped and a default pointing at its value is cleared.
func (e *Editor) RemoveFrom(f model.ChoiceField, index int) (model.ChoiceField, error) {
	items, err := e.Remove(f.Items(), index)
	if err != nil {
		return f, err
	}
	removed := f.Items()[index]

	out := cloneChoice(f).WithItems(items)
	out = dropOptionTranslations(out, removed.ID)
	if !hasValue(items, removed.Value) {
		out = replaceDefault(out, removed.Value, "")
	}
	return out, nil
}

// DuplicateIn duplicates the option at index. Translations of the source
// option are copied to the new id.
func (e *Editor) DuplicateIn(f model.ChoiceField, index int) (model.ChoiceField, error) {
	items, err := e.Duplicate(f.Items(), index)
	if err != nil {
		return f, err
	}
	sourceID := f.Items()[index].ID
	copyID := items[index+1].ID

	out := cloneChoice(f).WithItems(items)
	base := out.Base()
	for locale, tr := range base.I18n {
		label, ok := tr.Options[sourceID]
		if !ok {
			continue
		}
		tr.Options[copyID] = label + copyLabelSuffix
		base.I18n[locale] = tr
	}
	return out.WithBase(base).(model.ChoiceField), nil
}

// UpdateIn patches the option at index. A default pointing at the old value
// follows a value change.
func (e *Editor) UpdateIn(f model.ChoiceField, index int, patch Patch) (model.ChoiceField, error) {
	items, err := e.Update(f.Items(), index, patch)
	if err != nil {
		return f, err
	}
	before := f.Items()[index].Value
	after := items[index].Value

	out := cloneChoice(f).WithItems(items)
	if before != after && !hasValue(items, before) {
		if strings.TrimSpace(after) == "" {
			after = ""
		}
		out = replaceDefault(out, before, after)
	}
	return out, nil
}

// Translate writes the label of optionID in the editor's locale. In the
// default locale the option label itself changes.
func (e *Editor) Translate(f model.ChoiceField, optionID, label string) (model.ChoiceField, error) {
	next, err := i18n.SetOptionLabel(f, optionID, e.locale, e.defaultLocale, label)
	if err != nil {
		return f, err
	}
	return next.(model.ChoiceField), nil
}

// SetDefault sets the default of a select or radio field. An empty value
// clears it; anything else must match a non-empty option value.
func SetDefault(f model.SelectField, value string) (model.SelectField, error) {
	if value != "" && (strings.TrimSpace(value) == "" || !hasValue(f.SelectOptions.Items, value)) {
		return f, fmt.Errorf("%w: %q", model.ErrInvalidDefault, value)
	}
	out := f.Clone().(model.SelectField)
	out.SelectOptions.DefaultValue = value
	return out, nil
}

// SetDefaults sets the defaults of a multiselect field. Every value must match
// a non-empty option value.
func SetDefaults(f model.MultiSelectField, values []string) (model.MultiSelectField, error) {
	for _, value := range values {
		if strings.TrimSpace(value) == "" || !hasValue(f.MultiSelectOptions.Items, value) {
			return f, fmt.Errorf("%w: %q", model.ErrInvalidDefault, value)
		}
	}
	out := f.Clone().(model.MultiSelectField)
	if len(values) == 0 {
		out.MultiSelectOptions.DefaultValue = nil
		return out, nil
	}
	out.MultiSelectOptions.DefaultValue = append([]string(nil), values...)
	return out, nil
}

func cloneChoice(f model.ChoiceField) model.ChoiceField {
	return f.Clone().(model.ChoiceField)
}

func hasValue(items []model.Option, value string) bool {
	for _, item := range items {
		if item.Value == value {
			return true
		}
	}
	return false
}

func dropOptionTranslations(f model.ChoiceField, optionID string) model.ChoiceField {
	base := f.Base()
	changed := false
	for locale, tr := range base.I18n {
		if _, ok := tr.Options[optionID]; !ok {
			continue
		}
		delete(tr.Options, optionID)
		if len(tr.Options) == 0 {
			tr.Options = nil
		}
		if tr.Empty() {
			delete(base.I18n, locale)
		} else {
			base.I18n[locale] = tr
		}
		changed = true
	}
	if !changed {
		return f
	}
	if len(base.I18n) == 0 {
		base.I18n = nil
	}
	return f.WithBase(base).(model.ChoiceField)
}

// replaceDefault rewrites default values equal to from. An empty to removes
// them.
func replaceDefault(f model.ChoiceField, from, to string) model.ChoiceField {
	switch typed := f.(type) {
	case model.SelectField:
		if typed.SelectOptions.DefaultValue == from {
			typed.SelectOptions.DefaultValue = to
		}
		return typed
	case model.MultiSelectField:
		var next []string
		for _, v := range typed.MultiSelectOptions.DefaultValue {
			switch {
			case v != from:
				next = append(next, v)
			case to != "":
				next = append(next, to)
			}
		}
		typed.MultiSelectOptions.DefaultValue = next
		return typed
	default:
		return f
	}
}
