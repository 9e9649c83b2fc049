package render

import "github.com/goliatone/go-formbuilder/pkg/model"

// Values holds the live answers keyed by field id. Expected shapes: string for
// text, date, select, radio, imageSelect and toggle; []string for multiselect
// and imageSelectMulti; float64 for number; []model.FileRef for fileUpload.
// Loosely typed input (decoded JSON) is normalised when projected.
type Values map[string]any

// Plan is everything a presentation layer needs to draw one screen of a form.
// The live preview and the real form consume the same Plan.
type Plan struct {
	Locale          string            `json:"locale"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	SubmitText      string            `json:"submitText"`
	StepMode        bool              `json:"stepMode"`
	ShowStepNumbers bool              `json:"showStepNumbers"`
	Step            StepInfo          `json:"step"`
	Groups          []GroupHeader     `json:"groups,omitempty"`
	Fields          []FieldPlan       `json:"fields"`
	Summary         []SummarySection  `json:"summary,omitempty"`
	StepComplete    bool              `json:"stepComplete"`
	Chrome          map[string]string `json:"chrome"`
}

// StepInfo is the navigation state of the plan.
type StepInfo struct {
	Index       int  `json:"index"`
	Total       int  `json:"total"`
	IsSummary   bool `json:"isSummary"`
	IsFirst     bool `json:"isFirst"`
	IsLast      bool `json:"isLast"`
	CanNext     bool `json:"canNext"`
	CanPrevious bool `json:"canPrevious"`
	CanSubmit   bool `json:"canSubmit"`
}

// GroupHeader is a resolved group title. In step mode there is one header per
// step and Active marks the current one.
type GroupHeader struct {
	ID              string `json:"id"`
	Index           int    `json:"index"`
	Title           string `json:"title"`
	ShowTitle       bool   `json:"showTitle"`
	Description     string `json:"description,omitempty"`
	ShowDescription bool   `json:"showDescription,omitempty"`
	Active          bool   `json:"active,omitempty"`
}

// FieldPlan is one resolved leaf field. GroupID is empty for top-level fields.
type FieldPlan struct {
	GroupID         string          `json:"groupId,omitempty"`
	ID              string          `json:"id"`
	Type            model.FieldType `json:"type"`
	Label           string          `json:"label"`
	Placeholder     string          `json:"placeholder,omitempty"`
	Description     string          `json:"description,omitempty"`
	ShowDescription bool            `json:"showDescription,omitempty"`
	Required        bool            `json:"required"`
	Missing         bool            `json:"missing"`
	Value           any             `json:"value"`
	Options         []OptionPlan    `json:"options,omitempty"`
	Multiple        bool            `json:"multiple,omitempty"`

	MinLength      int          `json:"minLength,omitempty"`
	MaxLength      int          `json:"maxLength,omitempty"`
	Rows           int          `json:"rows,omitempty"`
	Min            *float64     `json:"min,omitempty"`
	Max            *float64     `json:"max,omitempty"`
	Step           float64      `json:"step,omitempty"`
	MinDate        string       `json:"minDate,omitempty"`
	MaxDate        string       `json:"maxDate,omitempty"`
	Layout         model.Layout `json:"layout,omitempty"`
	Columns        int          `json:"columns,omitempty"`
	MaxSelections  int          `json:"maxSelections,omitempty"`
	AllowClear     bool         `json:"allowClear,omitempty"`
	CheckedValue   string       `json:"checkedValue,omitempty"`
	UncheckedValue string       `json:"uncheckedValue,omitempty"`
	Accept         []string     `json:"accept,omitempty"`
	MaxFiles       int          `json:"maxFiles,omitempty"`
	MaxSizeMB      int          `json:"maxSizeMB,omitempty"`
}

// OptionPlan is a choice with its label resolved for the plan locale.
type OptionPlan struct {
	ID       string        `json:"id"`
	Value    string        `json:"value"`
	Label    string        `json:"label"`
	Images   []model.Asset `json:"images,omitempty"`
	Selected bool          `json:"selected"`
}

// SummarySection lists the answers of one group.
type SummarySection struct {
	GroupID string        `json:"groupId,omitempty"`
	Title   string        `json:"title"`
	Items   []SummaryItem `json:"items"`
}

// SummaryItem is a label and its displayable answers. Answers is empty when
// the field has no value.
type SummaryItem struct {
	FieldID string          `json:"fieldId"`
	Label   string          `json:"label"`
	Type    model.FieldType `json:"type"`
	Answers []string        `json:"answers,omitempty"`
}

// Field returns the plan entry for id.
func (p Plan) Field(id string) (FieldPlan, bool) {
	for _, f := range p.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldPlan{}, false
}

// MissingFields lists the ids of required fields without a value.
func (p Plan) MissingFields() []string {
	var out []string
	for _, f := range p.Fields {
		if f.Missing {
			out = append(out, f.ID)
		}
	}
	return out
}
