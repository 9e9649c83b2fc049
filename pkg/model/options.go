package model

// Layout controls how choice lists are arranged by the presentation layer.
type Layout string

const (
	LayoutVertical   Layout = "vertical"
	LayoutHorizontal Layout = "horizontal"
	LayoutGrid       Layout = "grid"
)

// TextOptions bounds free-text inputs (text, textarea, email, phone).
type TextOptions struct {
	MinLength int `json:"minLength,omitempty"`
	MaxLength int `json:"maxLength,omitempty"`
	Rows      int `json:"rows,omitempty"`
}

// NumberOptions bounds numeric inputs. Nil bounds are unbounded.
type NumberOptions struct {
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Step         float64  `json:"step,omitempty"`
	DefaultValue *float64 `json:"defaultValue,omitempty"`
}

// DateOptions bounds date/time inputs using the wire format of the field type
// (2006-01-02, 15:04 or 2006-01-02T15:04).
type DateOptions struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// SelectOptions is the payload of select and radio fields.
type SelectOptions struct {
	Items        []Option `json:"items"`
	Placeholder  string   `json:"placeholder,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	AllowClear   bool     `json:"allowClear,omitempty"`
	Layout       Layout   `json:"layout,omitempty"`
	Columns      int      `json:"columns,omitempty"`
}

// MultiSelectOptions is the payload of multiselect fields.
type MultiSelectOptions struct {
	Items         []Option `json:"items"`
	Placeholder   string   `json:"placeholder,omitempty"`
	DefaultValue  []string `json:"defaultValue,omitempty"`
	MaxSelections int      `json:"maxSelections,omitempty"`
	Layout        Layout   `json:"layout,omitempty"`
	Columns       int      `json:"columns,omitempty"`
}

// ToggleOptions maps the two toggle states onto submitted values.
type ToggleOptions struct {
	CheckedValue   string `json:"checkedValue"`
	UncheckedValue string `json:"uncheckedValue"`
}

// ImageSelectOptions is the payload of imageSelect and imageSelectMulti.
type ImageSelectOptions struct {
	Items         []Option `json:"items"`
	Columns       int      `json:"columns,omitempty"`
	MaxSelections int      `json:"maxSelections,omitempty"`
}

// FileUploadOptions constrains accepted uploads. Accept holds MIME types or
// extensions (".pdf").
type FileUploadOptions struct {
	Accept    []string `json:"accept,omitempty"`
	MaxFiles  int      `json:"maxFiles,omitempty"`
	MaxSizeMB int      `json:"maxSizeMB,omitempty"`
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
