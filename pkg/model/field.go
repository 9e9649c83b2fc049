package model

// FieldBase holds the attributes shared by every field arm.
type FieldBase struct {
	ID              string                 `json:"id"`
	Type            FieldType              `json:"type"`
	Label           string                 `json:"label"`
	Description     string                 `json:"description,omitempty"`
	ShowDescription bool                   `json:"showDescription,omitempty"`
	Placeholder     string                 `json:"placeholder,omitempty"`
	Validation      *Validation            `json:"validation,omitempty"`
	I18n            map[string]Translation `json:"i18n,omitempty"`
}

// Required reports whether the field must carry a value on submit.
func (b FieldBase) Required() bool {
	return b.Validation != nil && b.Validation.Required
}

func (b FieldBase) clone() FieldBase {
	out := b
	if b.Validation != nil {
		v := *b.Validation
		out.Validation = &v
	}
	if b.I18n != nil {
		out.I18n = make(map[string]Translation, len(b.I18n))
		for locale, tr := range b.I18n {
			if tr.Options != nil {
				opts := make(map[string]string, len(tr.Options))
				for id, label := range tr.Options {
					opts[id] = label
				}
				tr.Options = opts
			}
			out.I18n[locale] = tr
		}
	}
	return out
}

// Field is the sealed union over every field arm. Consumers switch on the
// concrete type; adding an arm must be reflected in every such switch.
//
//sumtype:decl
type Field interface {
	// Base returns a copy of the shared attributes.
	Base() FieldBase
	// WithBase returns a copy of the field carrying b. The concrete arm is
	// preserved, so leaf fields stay leaf fields.
	WithBase(b FieldBase) Field
	// Clone deep-copies the field.
	Clone() Field
	sealed()
}

// LeafField is every arm that may live inside a group. GroupField does not
// implement it, so a group can never contain another group.
type LeafField interface {
	Field
	leaf()
}

// ChoiceField is a leaf field owning an option list.
type ChoiceField interface {
	LeafField
	Items() []Option
	WithItems(items []Option) ChoiceField
}

// TextField covers text, textarea, email and phone.
type TextField struct {
	FieldBase
	TextOptions *TextOptions `json:"textOptions,omitempty"`
}

func (f TextField) Base() FieldBase { return f.FieldBase }
func (f TextField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f TextField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	if f.TextOptions != nil {
		opts := *f.TextOptions
		f.TextOptions = &opts
	}
	return f
}
func (TextField) sealed() {}
func (TextField) leaf()   {}

// NumberField covers number.
type NumberField struct {
	FieldBase
	NumberOptions *NumberOptions `json:"numberOptions,omitempty"`
}

func (f NumberField) Base() FieldBase { return f.FieldBase }
func (f NumberField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f NumberField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	if f.NumberOptions != nil {
		opts := NumberOptions{
			Min:          cloneFloat(f.NumberOptions.Min),
			Max:          cloneFloat(f.NumberOptions.Max),
			Step:         f.NumberOptions.Step,
			DefaultValue: cloneFloat(f.NumberOptions.DefaultValue),
		}
		f.NumberOptions = &opts
	}
	return f
}
func (NumberField) sealed() {}
func (NumberField) leaf()   {}

// DateField covers date, time and datetime.
type DateField struct {
	FieldBase
	DateOptions *DateOptions `json:"dateOptions,omitempty"`
}

func (f DateField) Base() FieldBase { return f.FieldBase }
func (f DateField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f DateField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	if f.DateOptions != nil {
		opts := *f.DateOptions
		f.DateOptions = &opts
	}
	return f
}
func (DateField) sealed() {}
func (DateField) leaf()   {}

// SelectField covers select and radio.
type SelectField struct {
	FieldBase
	SelectOptions SelectOptions `json:"selectOptions"`
}

func (f SelectField) Base() FieldBase { return f.FieldBase }
func (f SelectField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f SelectField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	f.SelectOptions.Items = CloneOptions(f.SelectOptions.Items)
	return f
}
func (f SelectField) Items() []Option { return f.SelectOptions.Items }
func (f SelectField) WithItems(items []Option) ChoiceField {
	f.SelectOptions.Items = items
	return f
}
func (SelectField) sealed() {}
func (SelectField) leaf()   {}

// MultiSelectField covers multiselect.
type MultiSelectField struct {
	FieldBase
	MultiSelectOptions MultiSelectOptions `json:"multiSelectOptions"`
}

func (f MultiSelectField) Base() FieldBase { return f.FieldBase }
func (f MultiSelectField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f MultiSelectField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	f.MultiSelectOptions.Items = CloneOptions(f.MultiSelectOptions.Items)
	f.MultiSelectOptions.DefaultValue = cloneStrings(f.MultiSelectOptions.DefaultValue)
	return f
}
func (f MultiSelectField) Items() []Option { return f.MultiSelectOptions.Items }
func (f MultiSelectField) WithItems(items []Option) ChoiceField {
	f.MultiSelectOptions.Items = items
	return f
}
func (MultiSelectField) sealed() {}
func (MultiSelectField) leaf()   {}

// ToggleField covers toggle.
type ToggleField struct {
	FieldBase
	ToggleOptions ToggleOptions `json:"toggleOptions"`
}

func (f ToggleField) Base() FieldBase { return f.FieldBase }
func (f ToggleField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f ToggleField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	return f
}
func (ToggleField) sealed() {}
func (ToggleField) leaf()   {}

// ImageSelectField covers imageSelect and imageSelectMulti.
type ImageSelectField struct {
	FieldBase
	ImageSelectOptions ImageSelectOptions `json:"imageSelectOptions"`
}

func (f ImageSelectField) Base() FieldBase { return f.FieldBase }
func (f ImageSelectField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f ImageSelectField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	f.ImageSelectOptions.Items = CloneOptions(f.ImageSelectOptions.Items)
	return f
}
func (f ImageSelectField) Items() []Option { return f.ImageSelectOptions.Items }
func (f ImageSelectField) WithItems(items []Option) ChoiceField {
	f.ImageSelectOptions.Items = items
	return f
}

// Multiple reports whether more than one image may be picked.
func (f ImageSelectField) Multiple() bool { return f.Type == FieldTypeImageSelectMulti }
func (ImageSelectField) sealed()          {}
func (ImageSelectField) leaf()            {}

// FileUploadField covers fileUpload. Values are []FileRef.
type FileUploadField struct {
	FieldBase
	FileUploadOptions FileUploadOptions `json:"fileUploadOptions"`
}

func (f FileUploadField) Base() FieldBase { return f.FieldBase }
func (f FileUploadField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f FileUploadField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	f.FileUploadOptions.Accept = cloneStrings(f.FileUploadOptions.Accept)
	return f
}
func (FileUploadField) sealed() {}
func (FileUploadField) leaf()   {}

// GroupField is one step/section. Its children are leaf fields only.
type GroupField struct {
	FieldBase
	Title     string     `json:"title"`
	ShowTitle bool       `json:"showTitle"`
	Fields    LeafFields `json:"fields"`
}

func (f GroupField) Base() FieldBase { return f.FieldBase }
func (f GroupField) WithBase(b FieldBase) Field {
	f.FieldBase = b
	return f
}
func (f GroupField) Clone() Field {
	f.FieldBase = f.FieldBase.clone()
	f.Fields = f.Fields.Clone()
	return f
}
func (GroupField) sealed() {}

// Fields is the ordered top-level field list of a schema.
type Fields []Field

// Clone deep-copies every field. A nil list clones to an empty one.
func (fs Fields) Clone() Fields {
	out := make(Fields, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}
	return out
}

// LeafFields is the child list of a group.
type LeafFields []LeafField

// Clone deep-copies every field. A nil list clones to an empty one.
func (fs LeafFields) Clone() LeafFields {
	out := make(LeafFields, len(fs))
	for i, f := range fs {
		out[i] = f.Clone().(LeafField)
	}
	return out
}

// ID returns the id of any field.
func ID(f Field) string {
	if f == nil {
		return ""
	}
	return f.Base().ID
}

// AsLeaf narrows f to a LeafField.
func AsLeaf(f Field) (LeafField, bool) {
	leaf, ok := f.(LeafField)
	return leaf, ok
}

// AsChoice narrows f to a ChoiceField.
func AsChoice(f Field) (ChoiceField, bool) {
	choice, ok := f.(ChoiceField)
	return choice, ok
}
