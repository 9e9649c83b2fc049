package render_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/steps"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestProject_IsIdempotentAndPure(t *testing.T) {
	schema := testsupport.StepSchema()
	before := schema.Clone()
	values := render.Values{"name": "Ada", "extras": []string{"support"}}

	for step := 0; step < steps.Total(schema); step++ {
		first := render.Project(schema, "es", values, render.WithStep(step))
		second := render.Project(schema, "es", values, render.WithStep(step))
		if diff := testsupport.CompareGolden(first, second); diff != "" {
			t.Fatalf("step %d: projection not idempotent (-first +second):\n%s", step, diff)
		}
	}

	if diff := testsupport.CompareGolden(before, schema); diff != "" {
		t.Fatalf("schema mutated (-want +got):\n%s", diff)
	}
	if diff := testsupport.CompareGolden(render.Values{"name": "Ada", "extras": []string{"support"}}, values); diff != "" {
		t.Fatalf("values mutated (-want +got):\n%s", diff)
	}
}

func TestProject_FlatResolvesOverlay(t *testing.T) {
	schema := testsupport.FlatSchema()
	schema.Fields[0] = i18n.SetText(schema.Fields[0], i18n.KeyLabel, "es", "en", "Nombre")
	colored, err := i18n.SetOptionLabel(schema.Fields[1], "red-id", "es", "en", "Rojo")
	if err != nil {
		t.Fatalf("set option label: %v", err)
	}
	schema.Fields[1] = colored

	plan := render.Project(schema, "es", nil)

	if plan.StepMode || len(plan.Fields) != 2 {
		t.Fatalf("expected two flat fields, got %#v", plan.Fields)
	}
	if plan.Fields[0].Label != "Nombre" {
		t.Fatalf("expected translated label, got %q", plan.Fields[0].Label)
	}
	if plan.Fields[1].Label != "Color" {
		t.Fatalf("expected fallback label, got %q", plan.Fields[1].Label)
	}
	if plan.Fields[1].Options[0].Label != "Rojo" || plan.Fields[1].Options[1].Label != "Blue" {
		t.Fatalf("unexpected option labels %#v", plan.Fields[1].Options)
	}
	if !plan.Fields[0].Missing || plan.StepComplete {
		t.Fatalf("expected required name to be missing")
	}
	if !plan.Step.CanSubmit || plan.Step.Total != 1 {
		t.Fatalf("flat plan must be a single submittable step: %#v", plan.Step)
	}
}

func TestProject_UnknownLocaleFallsBackToDefault(t *testing.T) {
	plan := render.Project(testsupport.FlatSchema(), "fr", nil)
	if plan.Locale != "en" {
		t.Fatalf("expected en, got %q", plan.Locale)
	}
}

func TestProject_Defaults(t *testing.T) {
	schema := testsupport.StepSchema()

	plan := render.Project(schema, "en", nil, render.WithStep(1))
	plan2, ok := plan.Field("plan")
	if !ok || plan2.Value != "basic" {
		t.Fatalf("expected select default basic, got %#v", plan2.Value)
	}
	if !plan2.Options[0].Selected || plan2.Options[1].Selected {
		t.Fatalf("unexpected selection %#v", plan2.Options)
	}
	extras, _ := plan.Field("extras")
	if diff := testsupport.CompareGolden([]string{"backup"}, extras.Value); diff != "" {
		t.Fatalf("multiselect default mismatch (-want +got):\n%s", diff)
	}

	plan = render.Project(schema, "en", nil, render.WithStep(2))
	news, _ := plan.Field("news")
	if news.Value != "no" {
		t.Fatalf("expected toggle unchecked value, got %#v", news.Value)
	}
	docs, _ := plan.Field("docs")
	if refs, ok := docs.Value.([]model.FileRef); !ok || len(refs) != 0 {
		t.Fatalf("expected empty file list, got %#v", docs.Value)
	}
}

func TestProject_ScopesToActiveStep(t *testing.T) {
	schema := testsupport.StepSchema()
	m := steps.New()
	m.Next(schema)

	plan := render.Project(schema, "en", nil, render.WithMachine(m))
	if len(plan.Fields) != 2 || plan.Fields[0].ID != "plan" || plan.Fields[0].GroupID != "g2" {
		t.Fatalf("expected step two fields, got %#v", plan.Fields)
	}
	if len(plan.Groups) != 3 || !plan.Groups[1].Active || plan.Groups[0].Active {
		t.Fatalf("unexpected headers %#v", plan.Groups)
	}
	if plan.Chrome[render.ChromeStepOf] != "Step 2 of 4" {
		t.Fatalf("unexpected step label %q", plan.Chrome[render.ChromeStepOf])
	}
}

func TestProject_SummaryStep(t *testing.T) {
	schema := testsupport.StepSchema()
	values := render.Values{
		"name":   "Ada",
		"plan":   "pro",
		"extras": []any{"support", "backup"},
		"news":   true,
		"docs": []any{
			map[string]any{"name": "cv.pdf", "url": "https://files/cv.pdf", "size": 1024.0, "mimeType": "application/pdf"},
		},
	}

	plan := render.Project(schema, "en", values, render.WithStep(3))
	if !plan.Step.IsSummary || len(plan.Fields) != 0 {
		t.Fatalf("expected summary step without fields, got %#v", plan.Step)
	}

	want := []render.SummarySection{
		{GroupID: "g1", Title: "About you", Items: []render.SummaryItem{
			{FieldID: "name", Label: "Name", Type: model.FieldTypeText, Answers: []string{"Ada"}},
			{FieldID: "email", Label: "Email", Type: model.FieldTypeEmail},
		}},
		{GroupID: "g2", Title: "Plan", Items: []render.SummaryItem{
			{FieldID: "plan", Label: "Plan", Type: model.FieldTypeSelect, Answers: []string{"Pro"}},
			{FieldID: "extras", Label: "Extras", Type: model.FieldTypeMultiSelect, Answers: []string{"Support", "Backup"}},
		}},
		{GroupID: "g3", Title: "Finish", Items: []render.SummaryItem{
			{FieldID: "news", Label: "Newsletter", Type: model.FieldTypeToggle, Answers: []string{"yes"}},
			{FieldID: "docs", Label: "Documents", Type: model.FieldTypeFileUpload, Answers: []string{"cv.pdf"}},
		}},
	}
	if diff := testsupport.CompareGolden(want, plan.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_Translator(t *testing.T) {
	translator := render.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		if locale == "es" && key == render.ChromeNext {
			return "Siguiente", nil
		}
		return "", nil
	})

	plan := render.Project(testsupport.StepSchema(), "es", nil, render.WithTranslator(translator))
	if plan.Chrome[render.ChromeNext] != "Siguiente" {
		t.Fatalf("expected translated chrome, got %q", plan.Chrome[render.ChromeNext])
	}
	if plan.Chrome[render.ChromePrevious] != "Previous" {
		t.Fatalf("expected fallback chrome, got %q", plan.Chrome[render.ChromePrevious])
	}
}

func TestApply_ReturnsFreshMap(t *testing.T) {
	values := render.Values{"a": "1"}

	next := render.Apply(values, "b", "2")
	if len(values) != 1 || next["b"] != "2" || next["a"] != "1" {
		t.Fatalf("unexpected apply result: values=%v next=%v", values, next)
	}

	cleared := render.Apply(next, "a", nil)
	if _, ok := cleared["a"]; ok {
		t.Fatalf("expected nil to clear the answer")
	}
	if next["a"] != "1" {
		t.Fatalf("apply mutated its input")
	}
}
