package model

import (
	"fmt"
	"strings"
)

// Validate checks invariants I1-I5 and returns a *ValidationError listing every
// violation, or nil.
func (s FormSchema) Validate() error {
	verr := &ValidationError{}
	validateLocales(s, verr)

	seen := make(map[string]string)
	for i, f := range s.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		if f == nil {
			verr.add(path, ErrUnknownFieldType, "field is nil")
			continue
		}
		validateField(s, f, path, seen, verr)
		group, ok := f.(GroupField)
		if !ok {
			continue
		}
		for j, child := range group.Fields {
			childPath := fmt.Sprintf("%s.fields[%d]", path, j)
			if child == nil {
				verr.add(childPath, ErrUnknownFieldType, "field is nil")
				continue
			}
			validateField(s, child, childPath, seen, verr)
		}
	}
	return verr.orNil()
}

func validateLocales(s FormSchema, verr *ValidationError) {
	if strings.TrimSpace(s.DefaultLocale) == "" {
		verr.add("defaultLocale", ErrLocaleClosure, "default locale is required")
	} else if !s.Supports(s.DefaultLocale) {
		verr.add("defaultLocale", ErrLocaleClosure, "default locale %q is not in supportedLocales", s.DefaultLocale)
	}
	for locale := range s.I18n {
		if !s.overlayLocale(locale) {
			verr.add("i18n."+locale, ErrLocaleClosure, "overlay locale %q must be a supported non-default locale", locale)
		}
	}
}

// overlayLocale reports whether locale may key an i18n overlay.
func (s FormSchema) overlayLocale(locale string) bool {
	return locale != s.DefaultLocale && s.Supports(locale)
}

func validateField(s FormSchema, f Field, path string, seen map[string]string, verr *ValidationError) {
	base := f.Base()
	if !armAccepts(f) {
		verr.add(path, ErrUnknownFieldType, "type %q does not match its payload", base.Type)
	}
	if strings.TrimSpace(base.ID) == "" {
		verr.add(path, ErrMissingID, "field id is required")
	} else if prev, dup := seen[base.ID]; dup {
		verr.add(path, ErrDuplicateID, "id %q already used at %s", base.ID, prev)
	} else {
		seen[base.ID] = path
	}
	for locale := range base.I18n {
		if !s.overlayLocale(locale) {
			verr.add(path+".i18n."+locale, ErrLocaleClosure, "overlay locale %q must be a supported non-default locale", locale)
		}
	}

	choice, ok := AsChoice(f)
	if !ok {
		return
	}
	validateOptions(choice.Items(), path, verr)

	switch typed := f.(type) {
	case SelectField:
		if def := typed.SelectOptions.DefaultValue; def != "" && !hasValue(typed.SelectOptions.Items, def) {
			verr.add(path+".selectOptions.defaultValue", ErrInvalidDefault, "default %q does not match a non-empty option value", def)
		}
	case MultiSelectField:
		for _, def := range typed.MultiSelectOptions.DefaultValue {
			if !hasValue(typed.MultiSelectOptions.Items, def) {
				verr.add(path+".multiSelectOptions.defaultValue", ErrInvalidDefault, "default %q does not match a non-empty option value", def)
			}
		}
	}
}

func validateOptions(items []Option, path string, verr *ValidationError) {
	ids := make(map[string]struct{}, len(items))
	for i, item := range items {
		optPath := fmt.Sprintf("%s.items[%d]", path, i)
		if strings.TrimSpace(item.ID) == "" {
			verr.add(optPath, ErrMissingID, "option id is required")
			continue
		}
		if _, dup := ids[item.ID]; dup {
			verr.add(optPath, ErrDuplicateOptionID, "option id %q is repeated", item.ID)
			continue
		}
		ids[item.ID] = struct{}{}
	}
}

func hasValue(items []Option, value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, item := range items {
		if item.Value == value && strings.TrimSpace(item.Value) != "" {
			return true
		}
	}
	return false
}

// armAccepts reports whether the field's Type belongs to its concrete arm.
func armAccepts(f Field) bool {
	t := f.Base().Type
	switch f.(type) {
	case TextField:
		return t == FieldTypeText || t == FieldTypeTextarea || t == FieldTypeEmail || t == FieldTypePhone
	case NumberField:
		return t == FieldTypeNumber
	case DateField:
		return t == FieldTypeDate || t == FieldTypeTime || t == FieldTypeDateTime
	case SelectField:
		return t == FieldTypeSelect || t == FieldTypeRadio
	case MultiSelectField:
		return t == FieldTypeMultiSelect
	case ToggleField:
		return t == FieldTypeToggle
	case ImageSelectField:
		return t == FieldTypeImageSelect || t == FieldTypeImageSelectMulti
	case FileUploadField:
		return t == FieldTypeFileUpload
	case GroupField:
		return t == FieldTypeGroup
	default:
		return false
	}
}
