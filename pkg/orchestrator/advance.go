package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/steps"
)

// ErrUnknownAction is returned by Advance for navigation values other than
// the Action constants.
var ErrUnknownAction = errors.New("orchestrator: unknown navigation action")

// Action is the navigation button a step was posted with.
type Action string

const (
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
	ActionSubmit   Action = "submit"
)

// Outcome is the result of handling one posted step.
type Outcome struct {
	// Step is the step to show next.
	Step int
	// Values are the merged answers; callers persist them between requests.
	Values render.Values
	// Missing lists required fields that blocked moving forward.
	Missing []string
	// Plan is the projection of Step. Zero when Submitted.
	Plan render.Plan
	// Submitted is set once the form was completed.
	Submitted  bool
	Submission render.Submission
}

// Advance applies a posted step. Answers for the fields of the posted step are
// decoded from form and merged over req.Values, then the navigation button is
// honoured: Previous never validates, Next stays put while required answers
// are missing, and Submit checks every step, returning to the first incomplete
// one. The step index is read from the html.StepInputName input and falls back
// to req.Step.
func (o *Orchestrator) Advance(ctx context.Context, req Request, form url.Values) (Outcome, error) {
	schema, err := o.prepare(ctx, req)
	if err != nil {
		return Outcome{}, err
	}

	step := req.Step
	if raw := strings.TrimSpace(form.Get(html.StepInputName)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			step = n
		}
	}
	state := steps.At(schema, step)
	step = state.Index

	values := Decode(o.project(schema, req.Locale, req.Values, step), form, req.Values)
	out := Outcome{Step: step, Values: values}

	action := Action(strings.TrimSpace(form.Get(html.ActionInputName)))
	if action == "" {
		action = ActionNext
		if state.CanSubmit {
			action = ActionSubmit
		}
	}

	switch action {
	case ActionPrevious:
		if state.CanPrevious {
			out.Step = step - 1
		}
	case ActionNext, ActionSubmit:
		current := o.project(schema, req.Locale, values, step)
		if !current.StepComplete {
			out.Missing = current.MissingFields()
			break
		}
		if action == ActionSubmit && state.CanSubmit {
			if first, missing := o.firstIncomplete(schema, req.Locale, values); missing != nil {
				out.Step, out.Missing = first, missing
				break
			}
			out.Submitted = true
			out.Submission = render.BuildSubmission(schema, values)
			o.logger.Debug().Int("fields", len(out.Submission.Values)).Msg("form submitted")
			return out, nil
		}
		if state.CanNext {
			out.Step = step + 1
		}
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	o.logger.Debug().Int("from", step).Int("to", out.Step).Str("action", string(action)).Msg("step posted")
	out.Plan = o.project(schema, req.Locale, values, out.Step)
	return out, nil
}

func (o *Orchestrator) firstIncomplete(schema model.FormSchema, locale string, values render.Values) (int, []string) {
	for i := 0; i < steps.Total(schema); i++ {
		plan := o.project(schema, locale, values, i)
		if !plan.StepComplete {
			return i, plan.MissingFields()
		}
	}
	return 0, nil
}

// Decode reads the answers for the fields of plan from posted form data and
// returns them merged over previous. Keys absent from the form keep their
// previous answer, except list fields (an empty checkbox group posts nothing)
// and toggles posted without their hidden fallback. File uploads are left to
// the caller, which owns the multipart parts.
func Decode(plan render.Plan, form url.Values, previous render.Values) render.Values {
	values := render.Values{}
	maps.Copy(values, previous)

	for _, f := range plan.Fields {
		raw, posted := form[f.ID]
		switch f.Type {
		case model.FieldTypeFileUpload:
			continue
		case model.FieldTypeMultiSelect, model.FieldTypeImageSelectMulti:
			picked := make([]string, 0, len(raw))
			for _, v := range raw {
				if v = strings.TrimSpace(v); v != "" {
					picked = append(picked, v)
				}
			}
			values[f.ID] = picked
		case model.FieldTypeToggle:
			if !posted || len(raw) == 0 {
				values[f.ID] = f.UncheckedValue
				continue
			}
			values[f.ID] = raw[len(raw)-1]
		default:
			if !posted || len(raw) == 0 {
				continue
			}
			values[f.ID] = strings.TrimSpace(raw[len(raw)-1])
		}
	}
	return values
}
