package html

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// StepInputName is the hidden input carrying the current step index in step
// mode.
const StepInputName = "__step"

// ActionInputName is the name of the navigation buttons. The posted value is
// one of "previous", "next" or "submit".
const ActionInputName = "__action"

const idPrefix = "fb-"

type formView struct {
	Locale          string               `json:"locale"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	Action          string               `json:"action,omitempty"`
	Method          string               `json:"method"`
	SubmitText      string               `json:"submitText"`
	StepMode        bool                 `json:"stepMode"`
	ShowStepNumbers bool                 `json:"showStepNumbers"`
	StepLabel       string               `json:"stepLabel,omitempty"`
	Steps           []stepView           `json:"steps,omitempty"`
	Fields          []fieldView          `json:"fields"`
	Summary         []summaryView        `json:"summary,omitempty"`
	SummaryTitle    string               `json:"summaryTitle,omitempty"`
	Hidden          []render.HiddenField `json:"hidden,omitempty"`
	RequiredLabel   string               `json:"requiredLabel"`
	Previous        string               `json:"previous,omitempty"`
	Next            string               `json:"next,omitempty"`
	Submit          bool                 `json:"submit"`
}

type stepView struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

type attrView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type optionView struct {
	ElementID string `json:"elementId"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	Image     string `json:"image,omitempty"`
	Selected  bool   `json:"selected"`
}

type fieldView struct {
	ElementID    string       `json:"elementId"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Control      string       `json:"control"`
	InputType    string       `json:"inputType,omitempty"`
	Heading      string       `json:"heading,omitempty"`
	Label        string       `json:"label"`
	Description  string       `json:"description,omitempty"`
	Required     bool         `json:"required"`
	Missing      bool         `json:"missing"`
	Value        string       `json:"value,omitempty"`
	Checked      bool         `json:"checked,omitempty"`
	Unchecked    string       `json:"unchecked,omitempty"`
	Multiple     bool         `json:"multiple,omitempty"`
	Layout       string       `json:"layout,omitempty"`
	Attrs        []attrView   `json:"attrs,omitempty"`
	Options      []optionView `json:"options,omitempty"`
	AllowClear   bool         `json:"allowClear,omitempty"`
	CurrentFiles []string     `json:"currentFiles,omitempty"`
}

type summaryView struct {
	Title string            `json:"title"`
	Items []summaryItemView `json:"items"`
}

type summaryItemView struct {
	Label  string `json:"label"`
	Answer string `json:"answer"`
	Empty  bool   `json:"empty"`
}

func buildView(plan render.Plan, opts render.RenderOptions) formView {
	view := formView{
		Locale:          plan.Locale,
		Title:           plan.Title,
		Description:     sanitizeText(plan.Description),
		Action:          strings.TrimSpace(opts.Action),
		Method:          opts.MethodOrDefault(),
		SubmitText:      plan.SubmitText,
		StepMode:        plan.StepMode,
		ShowStepNumbers: plan.ShowStepNumbers,
		Fields:          make([]fieldView, 0, len(plan.Fields)),
		RequiredLabel:   plan.Chrome[render.ChromeRequired],
		Submit:          plan.Step.CanSubmit,
	}

	hidden := append([]render.HiddenField{}, opts.Hidden...)
	if plan.StepMode {
		view.StepLabel = plan.Chrome[render.ChromeStepOf]
		for _, group := range plan.Groups {
			view.Steps = append(view.Steps, stepView{Number: strconv.Itoa(group.Index + 1), Title: group.Title, Active: group.Active})
		}
		if plan.Step.CanPrevious {
			view.Previous = plan.Chrome[render.ChromePrevious]
		}
		if plan.Step.CanNext {
			view.Next = plan.Chrome[render.ChromeNext]
		}
		hidden = append(hidden, render.Hidden(StepInputName, plan.Step.Index))
	}
	view.Hidden = render.SortedHidden(hidden)

	titles := make(map[string]string, len(plan.Groups))
	for _, group := range plan.Groups {
		if group.ShowTitle {
			titles[group.ID] = group.Title
		}
	}
	lastGroup := ""
	for _, f := range plan.Fields {
		fv := buildField(f)
		if !plan.StepMode && f.GroupID != "" && f.GroupID != lastGroup {
			fv.Heading = titles[f.GroupID]
		}
		lastGroup = f.GroupID
		view.Fields = append(view.Fields, fv)
	}

	if plan.Step.IsSummary {
		view.SummaryTitle = plan.Chrome[render.ChromeSummary]
		noAnswer := plan.Chrome[render.ChromeNoAnswer]
		for _, section := range plan.Summary {
			sv := summaryView{Title: section.Title, Items: make([]summaryItemView, 0, len(section.Items))}
			for _, item := range section.Items {
				answer := strings.Join(item.Answers, ", ")
				if answer == "" {
					answer = noAnswer
				}
				sv.Items = append(sv.Items, summaryItemView{Label: item.Label, Answer: answer, Empty: len(item.Answers) == 0})
			}
			view.Summary = append(view.Summary, sv)
		}
	}
	return view
}

func buildField(f render.FieldPlan) fieldView {
	fv := fieldView{
		ElementID:  elementID(f.ID),
		Name:       f.ID,
		Type:       string(f.Type),
		Label:      f.Label,
		Required:   f.Required,
		Missing:    f.Missing,
		Multiple:   f.Multiple,
		Layout:     string(f.Layout),
		AllowClear: f.AllowClear,
	}
	if f.ShowDescription {
		fv.Description = sanitizeText(f.Description)
	}
	attr := func(name, value string) {
		if value != "" {
			fv.Attrs = append(fv.Attrs, attrView{Name: name, Value: value})
		}
	}
	attr("placeholder", f.Placeholder)

	switch f.Type {
	case model.FieldTypeTextarea:
		fv.Control = "textarea"
		fv.Value = stringValue(f.Value)
		attr("rows", positive(f.Rows))
		attr("minlength", positive(f.MinLength))
		attr("maxlength", positive(f.MaxLength))
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypePhone:
		fv.Control = "input"
		fv.InputType = inputType(f.Type)
		fv.Value = stringValue(f.Value)
		attr("minlength", positive(f.MinLength))
		attr("maxlength", positive(f.MaxLength))
	case model.FieldTypeNumber:
		fv.Control = "input"
		fv.InputType = "number"
		fv.Value = stringValue(f.Value)
		if f.Min != nil {
			attr("min", formatFloat(*f.Min))
		}
		if f.Max != nil {
			attr("max", formatFloat(*f.Max))
		}
		if f.Step > 0 {
			attr("step", formatFloat(f.Step))
		}
	case model.FieldTypeDate, model.FieldTypeTime, model.FieldTypeDateTime:
		fv.Control = "input"
		fv.InputType = inputType(f.Type)
		fv.Value = stringValue(f.Value)
		attr("min", f.MinDate)
		attr("max", f.MaxDate)
	case model.FieldTypeSelect:
		fv.Control = "select"
		fv.Options = buildOptions(f)
	case model.FieldTypeRadio:
		fv.Control = "choices"
		fv.InputType = "radio"
		fv.Options = buildOptions(f)
	case model.FieldTypeMultiSelect:
		fv.Control = "choices"
		fv.InputType = "checkbox"
		fv.Options = buildOptions(f)
		attr("data-max-selections", positive(f.MaxSelections))
	case model.FieldTypeImageSelect, model.FieldTypeImageSelectMulti:
		fv.Control = "images"
		fv.InputType = "radio"
		if f.Multiple {
			fv.InputType = "checkbox"
		}
		fv.Options = buildOptions(f)
		attr("data-columns", positive(f.Columns))
	case model.FieldTypeToggle:
		fv.Control = "toggle"
		fv.Value = f.CheckedValue
		fv.Unchecked = f.UncheckedValue
		fv.Checked = stringValue(f.Value) == f.CheckedValue
	case model.FieldTypeFileUpload:
		fv.Control = "file"
		fv.Multiple = f.MaxFiles != 1
		attr("accept", strings.Join(f.Accept, ","))
		attr("data-max-files", positive(f.MaxFiles))
		attr("data-max-size-mb", positive(f.MaxSizeMB))
		if refs, ok := f.Value.([]model.FileRef); ok {
			for _, ref := range refs {
				fv.CurrentFiles = append(fv.CurrentFiles, ref.Name)
			}
		}
	default:
		fv.Control = "input"
		fv.InputType = "text"
		fv.Value = stringValue(f.Value)
	}
	return fv
}

func buildOptions(f render.FieldPlan) []optionView {
	out := make([]optionView, 0, len(f.Options))
	for i, opt := range f.Options {
		ov := optionView{
			ElementID: elementID(f.ID) + "-" + strconv.Itoa(i),
			Value:     opt.Value,
			Label:     opt.Label,
			Selected:  opt.Selected,
		}
		if len(opt.Images) > 0 {
			ov.Image = opt.Images[0].URL
		}
		out = append(out, ov)
	}
	return out
}

// elementID keeps the schema id verbatim; the template escapes it.
func elementID(id string) string {
	return idPrefix + id
}

func inputType(t model.FieldType) string {
	switch t {
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypePhone:
		return "tel"
	case model.FieldTypeDate:
		return "date"
	case model.FieldTypeTime:
		return "time"
	case model.FieldTypeDateTime:
		return "datetime-local"
	default:
		return "text"
	}
}

func stringValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return formatFloat(typed)
	default:
		return ""
	}
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
