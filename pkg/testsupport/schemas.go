package testsupport

import "github.com/goliatone/go-formbuilder/pkg/model"

// Required returns a validation block marking a field as required.
func Required() *model.Validation {
	return &model.Validation{Required: true}
}

// TextField builds a text field with a fixed id.
func TextField(id, label string) model.TextField {
	return model.TextField{FieldBase: model.FieldBase{
		ID:    id,
		Type:  model.FieldTypeText,
		Label: label,
	}}
}

// Options builds options whose ids are "<value>-id" and labels are the
// humanized values.
func Options(values ...string) []model.Option {
	out := make([]model.Option, len(values))
	for i, v := range values {
		out[i] = model.Option{ID: v + "-id", Value: v, Label: model.Humanize(v)}
	}
	return out
}

// SelectField builds a select field with the given options.
func SelectField(id, label string, items []model.Option) model.SelectField {
	return model.SelectField{
		FieldBase: model.FieldBase{
			ID:    id,
			Type:  model.FieldTypeSelect,
			Label: label,
		},
		SelectOptions: model.SelectOptions{Items: items},
	}
}

// Group builds a group with fixed id and children.
func Group(id, title string, children ...model.LeafField) model.GroupField {
	if children == nil {
		children = model.LeafFields{}
	}
	return model.GroupField{
		FieldBase: model.FieldBase{
			ID:    id,
			Type:  model.FieldTypeGroup,
			Label: title,
		},
		Title:     title,
		ShowTitle: true,
		Fields:    children,
	}
}

// FlatSchema is a two-field, single-page schema supporting en and es.
func FlatSchema() model.FormSchema {
	name := TextField("f1", "Name")
	name.Validation = Required()
	return model.FormSchema{
		Title:            "Contact",
		Fields:           model.Fields{name, SelectField("f2", "Color", Options("red", "blue"))},
		SubmitButtonText: model.DefaultSubmitButtonText,
		SupportedLocales: []string{"en", "es"},
		DefaultLocale:    "en",
	}
}

// StepSchema is a three-step schema with a response summary. The last step
// holds a toggle and a file upload.
func StepSchema() model.FormSchema {
	name := TextField("name", "Name")
	name.Validation = Required()

	email := model.TextField{FieldBase: model.FieldBase{ID: "email", Type: model.FieldTypeEmail, Label: "Email"}}

	plan := SelectField("plan", "Plan", Options("basic", "pro"))
	plan.SelectOptions.DefaultValue = "basic"

	extras := model.MultiSelectField{
		FieldBase: model.FieldBase{ID: "extras", Type: model.FieldTypeMultiSelect, Label: "Extras"},
		MultiSelectOptions: model.MultiSelectOptions{
			Items:        Options("support", "backup"),
			DefaultValue: []string{"backup"},
		},
	}

	news := model.ToggleField{
		FieldBase: model.FieldBase{ID: "news", Type: model.FieldTypeToggle, Label: "Newsletter"},
		ToggleOptions: model.ToggleOptions{
			CheckedValue:   "yes",
			UncheckedValue: "no",
		},
	}

	docs := model.FileUploadField{
		FieldBase: model.FieldBase{ID: "docs", Type: model.FieldTypeFileUpload, Label: "Documents"},
	}

	return model.FormSchema{
		Title: "Signup",
		Fields: model.Fields{
			Group("g1", "About you", name, email),
			Group("g2", "Plan", plan, extras),
			Group("g3", "Finish", news, docs),
		},
		SubmitButtonText:    "Send",
		SupportedLocales:    []string{"en", "es"},
		DefaultLocale:       "en",
		ShowStepNumbers:     true,
		ShowResponseSummary: true,
	}
}
