package render

import (
	"strconv"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Summarize builds the read-only response summary: one section per group with
// label and answer pairs. Choice answers use resolved option labels and file
// uploads list file names. Top-level leaf fields are collected into sections
// without a group id.
func Summarize(schema model.FormSchema, locale string, values Values) []SummarySection {
	locale = EffectiveLocale(schema, locale)
	def := schema.DefaultLocale

	var (
		out   []SummarySection
		loose *SummarySection
	)
	flush := func() {
		if loose != nil {
			out = append(out, *loose)
			loose = nil
		}
	}

	for _, f := range schema.Fields {
		switch typed := f.(type) {
		case model.GroupField:
			flush()
			section := SummarySection{
				GroupID: typed.ID,
				Title:   i18n.Resolve(typed, i18n.KeyTitle, locale, def),
				Items:   make([]SummaryItem, 0, len(typed.Fields)),
			}
			for _, child := range typed.Fields {
				section.Items = append(section.Items, summaryItem(child, locale, def, values))
			}
			out = append(out, section)
		case model.LeafField:
			if loose == nil {
				loose = &SummarySection{Items: []SummaryItem{}}
			}
			loose.Items = append(loose.Items, summaryItem(typed, locale, def, values))
		}
	}
	flush()
	return out
}

func summaryItem(f model.LeafField, locale, def string, values Values) SummaryItem {
	base := f.Base()
	return SummaryItem{
		FieldID: base.ID,
		Label:   i18n.Resolve(f, i18n.KeyLabel, locale, def),
		Type:    base.Type,
		Answers: Answers(f, FieldValue(f, values), locale, def),
	}
}

// Answers formats a field value for display. Empty values yield nil.
func Answers(f model.LeafField, value any, locale, def string) []string {
	if _, ok := f.(model.ToggleField); !ok && IsEmpty(f, value) {
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		if choice, ok := model.AsChoice(f); ok {
			return []string{optionLabel(choice, v, locale, def)}
		}
		return []string{v}
	case []string:
		out := make([]string, 0, len(v))
		choice, isChoice := model.AsChoice(f)
		for _, s := range v {
			if isChoice {
				out = append(out, optionLabel(choice, s, locale, def))
				continue
			}
			out = append(out, s)
		}
		return out
	case []model.FileRef:
		out := make([]string, 0, len(v))
		for _, ref := range v {
			out = append(out, ref.Name)
		}
		return out
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return nil
	}
}

// optionLabel maps a stored value back to its resolved option label. Values
// no longer present in the option list are shown as stored.
func optionLabel(f model.ChoiceField, value, locale, def string) string {
	for _, item := range f.Items() {
		if item.Value == value {
			return i18n.ResolveOption(f, item, locale, def)
		}
	}
	return value
}
