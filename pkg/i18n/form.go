package i18n

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// FormKey names a translatable form-level attribute.
type FormKey string

const (
	FormTitle       FormKey = "title"
	FormDescription FormKey = "description"
	FormSubmitText  FormKey = "submitButtonText"
)

// ResolveForm returns form-level text for locale, falling back to the base.
func ResolveForm(s model.FormSchema, key FormKey, locale string) string {
	base := formBase(s, key)
	if locale == s.DefaultLocale || locale == "" {
		return base
	}
	if text := formOverlay(s.I18n[locale], key); text != "" {
		return text
	}
	return base
}

// SetFormText writes form-level text. The base is only written in the default
// locale. The input schema is never modified.
func SetFormText(s model.FormSchema, key FormKey, locale, value string) model.FormSchema {
	out := s.Clone()
	if locale == s.DefaultLocale || locale == "" {
		switch key {
		case FormTitle:
			out.Title = value
		case FormDescription:
			out.Description = value
		case FormSubmitText:
			out.SubmitButtonText = value
		}
		return out
	}

	tr := out.I18n[locale]
	switch key {
	case FormTitle:
		tr.Title = value
	case FormDescription:
		tr.Description = value
	case FormSubmitText:
		tr.SubmitButtonText = value
	}
	if tr.Empty() {
		delete(out.I18n, locale)
		if len(out.I18n) == 0 {
			out.I18n = nil
		}
		return out
	}
	if out.I18n == nil {
		out.I18n = make(map[string]model.FormTranslation)
	}
	out.I18n[locale] = tr
	return out
}

// PruneLocale removes every overlay keyed by locale from the form and its
// fields.
func PruneLocale(s model.FormSchema, locale string) model.FormSchema {
	out := s.Clone()
	delete(out.I18n, locale)
	if len(out.I18n) == 0 {
		out.I18n = nil
	}
	for i, f := range out.Fields {
		f = pruneField(f, locale)
		if group, ok := f.(model.GroupField); ok {
			for j, child := range group.Fields {
				group.Fields[j] = pruneField(child, locale).(model.LeafField)
			}
			f = group
		}
		out.Fields[i] = f
	}
	return out
}

func pruneField(f model.Field, locale string) model.Field {
	base := f.Base()
	if _, ok := base.I18n[locale]; !ok {
		return f
	}
	delete(base.I18n, locale)
	if len(base.I18n) == 0 {
		base.I18n = nil
	}
	return f.WithBase(base)
}

// Progress reports how many translatable strings have an overlay in a locale.
// Only strings with a non-empty base count; Missing lists their paths.
type Progress struct {
	Locale     string
	Total      int
	Translated int
	Missing    []string
}

// Complete reports whether every translatable string is covered.
func (p Progress) Complete() bool {
	return p.Translated == p.Total
}

// Completeness measures translation coverage of locale. The default locale is
// always complete.
func Completeness(s model.FormSchema, locale string) Progress {
	progress := Progress{Locale: locale}
	if locale == s.DefaultLocale {
		return progress
	}

	check := func(path, base, overlay string) {
		if base == "" {
			return
		}
		progress.Total++
		if overlay != "" {
			progress.Translated++
			return
		}
		progress.Missing = append(progress.Missing, path)
	}

	formTr := s.I18n[locale]
	check("title", s.Title, formTr.Title)
	check("description", s.Description, formTr.Description)
	check("submitButtonText", s.SubmitButtonText, formTr.SubmitButtonText)

	var visit func(f model.Field)
	visit = func(f model.Field) {
		base := f.Base()
		tr := base.I18n[locale]
		if group, ok := f.(model.GroupField); ok {
			check(base.ID+".title", group.Title, tr.Title)
			check(base.ID+".description", base.Description, tr.Description)
			for _, child := range group.Fields {
				visit(child)
			}
			return
		}
		check(base.ID+".label", base.Label, tr.Label)
		check(base.ID+".placeholder", base.Placeholder, tr.Placeholder)
		check(base.ID+".description", base.Description, tr.Description)
		if choice, ok := model.AsChoice(f); ok {
			for _, item := range choice.Items() {
				check(fmt.Sprintf("%s.options.%s", base.ID, item.ID), item.Label, tr.Options[item.ID])
			}
		}
	}
	for _, f := range s.Fields {
		visit(f)
	}
	return progress
}

func formBase(s model.FormSchema, key FormKey) string {
	switch key {
	case FormTitle:
		return s.Title
	case FormDescription:
		return s.Description
	case FormSubmitText:
		return s.SubmitButtonText
	default:
		return ""
	}
}

func formOverlay(tr model.FormTranslation, key FormKey) string {
	switch key {
	case FormTitle:
		return tr.Title
	case FormDescription:
		return tr.Description
	case FormSubmitText:
		return tr.SubmitButtonText
	default:
		return ""
	}
}
