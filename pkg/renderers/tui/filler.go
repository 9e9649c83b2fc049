package tui

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/steps"
)

type action int

const (
	actionPrevious action = iota
	actionNext
	actionSubmit
)

// Filler walks a form in the terminal one step at a time and collects the
// answers into a submission.
type Filler struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	translator        render.Translator
	logger            zerolog.Logger
}

// New constructs a Filler with defaults (survey driver, JSON output).
func New(options ...Option) *Filler {
	f := &Filler{
		outputFormat: OutputFormatJSON,
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	if f.driver == nil {
		f.driver = newSurveyDriver()
	}
	return f
}

// ContentType reports the serialization format used by Run.
func (f *Filler) ContentType() string {
	switch f.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Run fills the form and serializes the submission.
func (f *Filler) Run(ctx context.Context, schema model.FormSchema, locale string, prefill render.Values) ([]byte, error) {
	sub, err := f.Fill(ctx, schema, locale, prefill)
	if err != nil {
		return nil, err
	}
	if f.submitTransformer != nil {
		sub, err = f.submitTransformer(sub)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return f.serialize(sub)
}

// Fill prompts for the fields of the active step, then offers the navigation
// the step allows. Prefilled values become prompt defaults. Going back keeps
// the answers given so far.
func (f *Filler) Fill(ctx context.Context, schema model.FormSchema, locale string, prefill render.Values) (render.Submission, error) {
	if ctx == nil {
		return render.Submission{}, fmt.Errorf("tui: context is required")
	}
	if err := schema.Validate(); err != nil {
		return render.Submission{}, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	values := render.Values{}
	maps.Copy(values, prefill)
	machine := steps.New()
	announced := false

	for {
		if err := ctx.Err(); err != nil {
			return render.Submission{}, err
		}
		plan := render.Project(schema, locale, values,
			render.WithMachine(machine),
			render.WithTranslator(f.translator),
		)
		if !announced {
			if err := f.info(ctx, plan.Title); err != nil {
				return render.Submission{}, err
			}
			announced = true
		}
		if err := f.announceStep(ctx, plan); err != nil {
			return render.Submission{}, err
		}

		for _, field := range plan.Fields {
			answer, err := f.prompt(ctx, field, plan.Chrome)
			if err != nil {
				return render.Submission{}, err
			}
			values = render.Apply(values, field.ID, answer)
		}

		next, err := f.navigate(ctx, plan)
		if err != nil {
			return render.Submission{}, err
		}
		switch next {
		case actionPrevious:
			machine.Previous(schema)
		case actionNext:
			machine.Next(schema)
		case actionSubmit:
			f.logger.Debug().Int("step", plan.Step.Index).Msg("form submitted")
			return render.BuildSubmission(schema, values), nil
		}
		f.logger.Debug().Int("from", plan.Step.Index).Int("to", machine.Index()).Msg("step changed")
	}
}

func (f *Filler) announceStep(ctx context.Context, plan render.Plan) error {
	if !plan.StepMode {
		return nil
	}
	if plan.Step.IsSummary {
		if err := f.info(ctx, plan.Chrome[render.ChromeSummary]); err != nil {
			return err
		}
		return f.printSummary(ctx, plan)
	}
	title := ""
	for _, group := range plan.Groups {
		if group.Active {
			title = group.Title
		}
	}
	line := plan.Chrome[render.ChromeStepOf]
	if title != "" {
		line += ": " + title
	}
	return f.info(ctx, line)
}

func (f *Filler) printSummary(ctx context.Context, plan render.Plan) error {
	for _, section := range plan.Summary {
		if err := f.info(ctx, section.Title); err != nil {
			return err
		}
		for _, item := range section.Items {
			answer := strings.Join(item.Answers, ", ")
			if answer == "" {
				answer = plan.Chrome[render.ChromeNoAnswer]
			}
			if err := f.info(ctx, fmt.Sprintf("  %s: %s", item.Label, answer)); err != nil {
				return err
			}
		}
	}
	return nil
}

// navigate asks where to go next. A step offering a single forward action
// takes it without asking.
func (f *Filler) navigate(ctx context.Context, plan render.Plan) (action, error) {
	var (
		actions []action
		labels  []string
	)
	if plan.Step.CanPrevious {
		actions = append(actions, actionPrevious)
		labels = append(labels, plan.Chrome[render.ChromePrevious])
	}
	if plan.Step.CanNext {
		actions = append(actions, actionNext)
		labels = append(labels, plan.Chrome[render.ChromeNext])
	}
	if plan.Step.CanSubmit {
		actions = append(actions, actionSubmit)
		labels = append(labels, plan.SubmitText)
	}
	if len(actions) == 1 && actions[0] != actionPrevious {
		return actions[0], nil
	}

	message := plan.Title
	if plan.StepMode {
		message = plan.Chrome[render.ChromeStepOf]
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: len(labels) - 1,
	})
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(actions) {
		return 0, fmt.Errorf("tui: navigation choice %d out of range", idx)
	}
	return actions[idx], nil
}

func (f *Filler) info(ctx context.Context, msg string) error {
	if msg == "" {
		return nil
	}
	return f.driver.Info(ctx, f.theme.InfoPrefix+msg)
}

func (f *Filler) invalid(ctx context.Context, field render.FieldPlan, err error) error {
	return f.driver.Info(ctx, fmt.Sprintf("%s%s: %v", f.theme.ErrorPrefix, field.Label, err))
}
