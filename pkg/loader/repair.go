package loader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// repair fixes what can be fixed without guessing intent: missing item
// lists, missing or repeated ids and overlays keyed by locales that cannot
// carry one. schema must be freshly decoded; it is modified in place.
func repair(schema model.FormSchema, ids model.IDGenerator, report *Report) model.FormSchema {
	out := schema

	for _, locale := range slices.Sorted(maps.Keys(out.I18n)) {
		if locale == out.DefaultLocale || !out.Supports(locale) {
			delete(out.I18n, locale)
			report.add("i18n."+locale, "dropped overlay for locale %q", locale)
		}
	}
	if len(out.I18n) == 0 {
		out.I18n = nil
	}

	seen := make(map[string]struct{})
	for i, f := range out.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		f = repairField(out, f, path, seen, ids, report)
		if group, ok := f.(model.GroupField); ok {
			for j, child := range group.Fields {
				childPath := fmt.Sprintf("%s.fields[%d]", path, j)
				group.Fields[j] = repairField(out, child, childPath, seen, ids, report).(model.LeafField)
			}
			f = group
		}
		out.Fields[i] = f
	}
	return out
}

func repairField(schema model.FormSchema, f model.Field, path string, seen map[string]struct{}, ids model.IDGenerator, report *Report) model.Field {
	base := f.Base()

	id := strings.TrimSpace(base.ID)
	_, dup := seen[id]
	if id == "" || dup {
		prefix := model.PrefixField
		if base.Type == model.FieldTypeGroup {
			prefix = model.PrefixGroup
		}
		next := ids.NewID(prefix)
		if id == "" {
			report.add(path+".id", "assigned missing id %q", next)
		} else {
			report.add(path+".id", "replaced duplicate id %q with %q", id, next)
		}
		base.ID = next
	}
	seen[base.ID] = struct{}{}

	for _, locale := range slices.Sorted(maps.Keys(base.I18n)) {
		if locale == schema.DefaultLocale || !schema.Supports(locale) {
			delete(base.I18n, locale)
			report.add(path+".i18n."+locale, "dropped overlay for locale %q", locale)
		}
	}
	if len(base.I18n) == 0 {
		base.I18n = nil
	}
	f = f.WithBase(base)

	if group, ok := f.(model.GroupField); ok && group.Fields == nil {
		group.Fields = model.LeafFields{}
		return group
	}

	choice, ok := model.AsChoice(f)
	if !ok {
		return f
	}
	items := choice.Items()
	if items == nil {
		report.add(path+".items", "replaced missing option list with an empty one")
		return choice.WithItems([]model.Option{})
	}

	optionIDs := make(map[string]struct{}, len(items))
	for i := range items {
		optID := strings.TrimSpace(items[i].ID)
		if _, dup := optionIDs[optID]; optID == "" || dup {
			next := ids.NewID(model.PrefixOption)
			if optID == "" {
				report.add(fmt.Sprintf("%s.items[%d].id", path, i), "assigned missing option id %q", next)
			} else {
				report.add(fmt.Sprintf("%s.items[%d].id", path, i), "replaced duplicate option id %q with %q", optID, next)
			}
			items[i].ID = next
		}
		optionIDs[items[i].ID] = struct{}{}
	}

	choice = choice.WithItems(items)
	base = choice.Base()
	for _, locale := range slices.Sorted(maps.Keys(base.I18n)) {
		tr := base.I18n[locale]
		for _, optID := range slices.Sorted(maps.Keys(tr.Options)) {
			if _, ok := optionIDs[optID]; ok {
				continue
			}
			delete(tr.Options, optID)
			report.add(path+".i18n."+locale+".options."+optID, "dropped translation for unknown option")
		}
		if len(tr.Options) == 0 {
			tr.Options = nil
		}
		if tr.Empty() {
			delete(base.I18n, locale)
			continue
		}
		base.I18n[locale] = tr
	}
	if len(base.I18n) == 0 {
		base.I18n = nil
	}
	return choice.WithBase(base)
}
