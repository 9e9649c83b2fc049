package render

import (
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/steps"
)

// ProjectOption configures Project.
type ProjectOption func(*projectConfig)

type projectConfig struct {
	step       int
	translator Translator
	onMissing  MissingTranslationHandler
}

// WithStep selects the active step by index. Out of range indices resolve to
// the first step.
func WithStep(index int) ProjectOption {
	return func(cfg *projectConfig) {
		cfg.step = index
	}
}

// WithMachine selects the step the machine is positioned on. The machine is
// only read.
func WithMachine(m *steps.Machine) ProjectOption {
	return func(cfg *projectConfig) {
		if m != nil {
			cfg.step = m.Index()
		}
	}
}

// WithTranslator resolves interface strings through t.
func WithTranslator(t Translator) ProjectOption {
	return func(cfg *projectConfig) {
		cfg.translator = t
	}
}

// WithMissingTranslationHandler overrides the fallback for interface strings.
func WithMissingTranslationHandler(fn MissingTranslationHandler) ProjectOption {
	return func(cfg *projectConfig) {
		cfg.onMissing = fn
	}
}

// EffectiveLocale returns locale when the schema supports it and the default
// locale otherwise.
func EffectiveLocale(schema model.FormSchema, locale string) string {
	if locale != "" && schema.Supports(locale) {
		return locale
	}
	return schema.DefaultLocale
}

// Project resolves schema for locale and values into a Plan. It is pure:
// neither schema nor values are modified and identical inputs yield
// deep-equal plans.
//
// In step mode only the active group's fields are projected and the summary
// step carries the response summary instead. Otherwise groups are flattened
// into ordered (groupID, field) pairs.
func Project(schema model.FormSchema, locale string, values Values, opts ...ProjectOption) Plan {
	cfg := projectConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	locale = EffectiveLocale(schema, locale)
	state := steps.At(schema, cfg.step)

	plan := Plan{
		Locale:          locale,
		Title:           i18n.ResolveForm(schema, i18n.FormTitle, locale),
		Description:     i18n.ResolveForm(schema, i18n.FormDescription, locale),
		SubmitText:      i18n.ResolveForm(schema, i18n.FormSubmitText, locale),
		StepMode:        state.StepMode,
		ShowStepNumbers: schema.ShowStepNumbers,
		Step: StepInfo{
			Index:       state.Index,
			Total:       state.Total,
			IsSummary:   state.IsSummary,
			IsFirst:     state.IsFirst,
			IsLast:      state.IsLast,
			CanNext:     state.CanNext,
			CanPrevious: state.CanPrevious,
			CanSubmit:   state.CanSubmit,
		},
		Fields: []FieldPlan{},
	}
	if plan.SubmitText == "" {
		plan.SubmitText = model.DefaultSubmitButtonText
	}
	plan.Chrome = chrome(cfg.translator, cfg.onMissing, locale, plan.Step)

	def := schema.DefaultLocale
	if state.StepMode {
		for i, group := range schema.Groups() {
			plan.Groups = append(plan.Groups, groupHeader(group, i, locale, def, i == state.Index && !state.IsSummary))
		}
		switch {
		case state.IsSummary:
			plan.Summary = Summarize(schema, locale, values)
		case state.Group != nil:
			for _, child := range state.Group.Fields {
				plan.Fields = append(plan.Fields, projectField(state.Group.ID, child, locale, def, values))
			}
		}
	} else {
		groupIndex := 0
		for _, f := range schema.Fields {
			switch typed := f.(type) {
			case model.GroupField:
				plan.Groups = append(plan.Groups, groupHeader(typed, groupIndex, locale, def, false))
				groupIndex++
				for _, child := range typed.Fields {
					plan.Fields = append(plan.Fields, projectField(typed.ID, child, locale, def, values))
				}
			case model.LeafField:
				plan.Fields = append(plan.Fields, projectField("", typed, locale, def, values))
			}
		}
	}

	plan.StepComplete = true
	for _, f := range plan.Fields {
		if f.Missing {
			plan.StepComplete = false
			break
		}
	}
	return plan
}

func groupHeader(group model.GroupField, index int, locale, def string, active bool) GroupHeader {
	return GroupHeader{
		ID:              group.ID,
		Index:           index,
		Title:           i18n.Resolve(group, i18n.KeyTitle, locale, def),
		ShowTitle:       group.ShowTitle,
		Description:     i18n.Resolve(group, i18n.KeyDescription, locale, def),
		ShowDescription: group.ShowDescription,
		Active:          active,
	}
}

func projectField(groupID string, f model.LeafField, locale, def string, values Values) FieldPlan {
	base := f.Base()
	plan := FieldPlan{
		GroupID:         groupID,
		ID:              base.ID,
		Type:            base.Type,
		Label:           i18n.Resolve(f, i18n.KeyLabel, locale, def),
		Placeholder:     i18n.Resolve(f, i18n.KeyPlaceholder, locale, def),
		Description:     i18n.Resolve(f, i18n.KeyDescription, locale, def),
		ShowDescription: base.ShowDescription,
		Required:        base.Required(),
		Value:           FieldValue(f, values),
	}

	switch typed := f.(type) {
	case model.TextField:
		if opts := typed.TextOptions; opts != nil {
			plan.MinLength = opts.MinLength
			plan.MaxLength = opts.MaxLength
			plan.Rows = opts.Rows
		}
	case model.NumberField:
		if opts := typed.NumberOptions; opts != nil {
			plan.Min = copyFloat(opts.Min)
			plan.Max = copyFloat(opts.Max)
			plan.Step = opts.Step
		}
	case model.DateField:
		if opts := typed.DateOptions; opts != nil {
			plan.MinDate = opts.Min
			plan.MaxDate = opts.Max
		}
	case model.SelectField:
		opts := typed.SelectOptions
		if plan.Placeholder == "" {
			plan.Placeholder = opts.Placeholder
		}
		plan.AllowClear = opts.AllowClear
		plan.Layout = opts.Layout
		plan.Columns = opts.Columns
	case model.MultiSelectField:
		opts := typed.MultiSelectOptions
		if plan.Placeholder == "" {
			plan.Placeholder = opts.Placeholder
		}
		plan.Multiple = true
		plan.MaxSelections = opts.MaxSelections
		plan.Layout = opts.Layout
		plan.Columns = opts.Columns
	case model.ToggleField:
		plan.CheckedValue = typed.ToggleOptions.CheckedValue
		plan.UncheckedValue = typed.ToggleOptions.UncheckedValue
	case model.ImageSelectField:
		plan.Multiple = typed.Multiple()
		plan.Columns = typed.ImageSelectOptions.Columns
		plan.MaxSelections = typed.ImageSelectOptions.MaxSelections
	case model.FileUploadField:
		opts := typed.FileUploadOptions
		plan.Multiple = true
		plan.Accept = append([]string(nil), opts.Accept...)
		plan.MaxFiles = opts.MaxFiles
		plan.MaxSizeMB = opts.MaxSizeMB
	}

	if choice, ok := model.AsChoice(f); ok {
		plan.Options = projectOptions(choice, plan.Value, locale, def)
	}
	plan.Missing = plan.Required && IsEmpty(f, plan.Value)
	return plan
}

func projectOptions(f model.ChoiceField, value any, locale, def string) []OptionPlan {
	items := f.Items()
	out := make([]OptionPlan, 0, len(items))
	for _, item := range items {
		out = append(out, OptionPlan{
			ID:       item.ID,
			Value:    item.Value,
			Label:    i18n.ResolveOption(f, item, locale, def),
			Images:   append([]model.Asset(nil), item.Images...),
			Selected: selected(value, item.Value),
		})
	}
	return out
}

func selected(value any, candidate string) bool {
	switch v := value.(type) {
	case string:
		return v != "" && v == candidate
	case []string:
		for _, s := range v {
			if s == candidate {
				return true
			}
		}
	}
	return false
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
