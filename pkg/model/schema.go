package model

// Default form-level values merged into imported or new schemas.
const (
	DefaultLocale           = "en"
	DefaultSubmitButtonText = "Submit"
)

// FormTranslation is the per-locale partial override of form-level text.
type FormTranslation struct {
	Title            string `json:"title,omitempty" yaml:"title,omitempty"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	SubmitButtonText string `json:"submitButtonText,omitempty" yaml:"submitButtonText,omitempty"`
}

// Empty reports whether the overlay carries no text.
func (t FormTranslation) Empty() bool {
	return t.Title == "" && t.Description == "" && t.SubmitButtonText == ""
}

// FormSchema is the ordered field list plus form-level metadata. It is owned
// by a single editing session; callers replace it wholesale rather than
// sharing it.
type FormSchema struct {
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	Fields              Fields                     `json:"fields"`
	SubmitButtonText    string                     `json:"submitButtonText"`
	SupportedLocales    []string                   `json:"supportedLocales"`
	DefaultLocale       string                     `json:"defaultLocale"`
	ShowStepNumbers     bool                       `json:"showStepNumbers"`
	ShowResponseSummary bool                       `json:"showResponseSummary"`
	I18n                map[string]FormTranslation `json:"i18n,omitempty"`
}

// NewSchema returns an empty, valid schema in the default locale.
func NewSchema(title string) FormSchema {
	return FormSchema{
		Title:            title,
		Fields:           Fields{},
		SubmitButtonText: DefaultSubmitButtonText,
		SupportedLocales: []string{DefaultLocale},
		DefaultLocale:    DefaultLocale,
	}
}

// Clone deep-copies the schema.
func (s FormSchema) Clone() FormSchema {
	out := s
	out.Fields = s.Fields.Clone()
	if s.SupportedLocales != nil {
		out.SupportedLocales = append([]string(nil), s.SupportedLocales...)
	}
	if s.I18n != nil {
		out.I18n = make(map[string]FormTranslation, len(s.I18n))
		for locale, tr := range s.I18n {
			out.I18n[locale] = tr
		}
	}
	return out
}

// StepMode reports whether every top-level field is a group. An empty schema
// is not in step mode.
func (s FormSchema) StepMode() bool {
	if len(s.Fields) == 0 {
		return false
	}
	for _, f := range s.Fields {
		if _, ok := f.(GroupField); !ok {
			return false
		}
	}
	return true
}

// Groups returns the top-level groups in order.
func (s FormSchema) Groups() []GroupField {
	var out []GroupField
	for _, f := range s.Fields {
		if group, ok := f.(GroupField); ok {
			out = append(out, group)
		}
	}
	return out
}

// Supports reports whether locale is in SupportedLocales.
func (s FormSchema) Supports(locale string) bool {
	for _, l := range s.SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Placement locates a field inside a schema. GroupID is empty for top-level
// fields; Index is the position within its container.
type Placement struct {
	GroupID string
	Index   int
}

// Find returns the field with the given id, searching group children too.
func (s FormSchema) Find(id string) (Field, Placement, bool) {
	for i, f := range s.Fields {
		if ID(f) == id {
			return f, Placement{Index: i}, true
		}
		group, ok := f.(GroupField)
		if !ok {
			continue
		}
		for j, child := range group.Fields {
			if ID(child) == id {
				return child, Placement{GroupID: group.ID, Index: j}, true
			}
		}
	}
	return nil, Placement{}, false
}

// Leaves visits every leaf field in render order along with its group id.
func (s FormSchema) Leaves(visit func(groupID string, f LeafField)) {
	for _, f := range s.Fields {
		switch typed := f.(type) {
		case GroupField:
			for _, child := range typed.Fields {
				visit(typed.ID, child)
			}
		case LeafField:
			visit("", typed)
		}
	}
}
