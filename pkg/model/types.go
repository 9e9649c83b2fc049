package model

// FieldType is the discriminator of the field union.
type FieldType string

const (
	FieldTypeText             FieldType = "text"
	FieldTypeTextarea         FieldType = "textarea"
	FieldTypeNumber           FieldType = "number"
	FieldTypeEmail            FieldType = "email"
	FieldTypePhone            FieldType = "phone"
	FieldTypeSelect           FieldType = "select"
	FieldTypeMultiSelect      FieldType = "multiselect"
	FieldTypeRadio            FieldType = "radio"
	FieldTypeToggle           FieldType = "toggle"
	FieldTypeDate             FieldType = "date"
	FieldTypeTime             FieldType = "time"
	FieldTypeDateTime         FieldType = "datetime"
	FieldTypeGroup            FieldType = "group"
	FieldTypeImageSelect      FieldType = "imageSelect"
	FieldTypeImageSelectMulti FieldType = "imageSelectMulti"
	FieldTypeFileUpload       FieldType = "fileUpload"
)

// FieldTypes lists every supported type in palette order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeNumber,
		FieldTypeEmail,
		FieldTypePhone,
		FieldTypeSelect,
		FieldTypeMultiSelect,
		FieldTypeRadio,
		FieldTypeToggle,
		FieldTypeDate,
		FieldTypeTime,
		FieldTypeDateTime,
		FieldTypeGroup,
		FieldTypeImageSelect,
		FieldTypeImageSelectMulti,
		FieldTypeFileUpload,
	}
}

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	for _, known := range FieldTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// IsChoice reports whether fields of this type own an option list.
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeMultiSelect,
		FieldTypeImageSelect, FieldTypeImageSelectMulti:
		return true
	default:
		return false
	}
}

// IsMultiValue reports whether the field collects a list of values.
func (t FieldType) IsMultiValue() bool {
	switch t {
	case FieldTypeMultiSelect, FieldTypeImageSelectMulti, FieldTypeFileUpload:
		return true
	default:
		return false
	}
}

// Validation carries the client-side constraints attached to a field.
type Validation struct {
	Required bool `json:"required"`
}

// Translation is the per-locale partial override of a field's text. Empty
// strings are treated as absent and fall back to the base field.
type Translation struct {
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Options     map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Empty reports whether the overlay carries no text at all.
func (t Translation) Empty() bool {
	return t.Label == "" && t.Placeholder == "" && t.Description == "" &&
		t.Title == "" && len(t.Options) == 0
}

// Asset references an already-hosted image. The engine never uploads.
type Asset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

// FileRef references an uploaded file held by the blob collaborator.
type FileRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Option is a selectable entry of a choice-bearing field. Translations of the
// label are keyed by ID, never by Value.
type Option struct {
	ID     string  `json:"id"`
	Value  string  `json:"value"`
	Label  string  `json:"label"`
	Images []Asset `json:"images,omitempty"`
}

// CloneOptions deep-copies an option list. A nil input yields an empty list.
func CloneOptions(items []Option) []Option {
	out := make([]Option, len(items))
	for i, item := range items {
		out[i] = item
		if item.Images != nil {
			out[i].Images = append([]Asset(nil), item.Images...)
		}
	}
	return out
}
