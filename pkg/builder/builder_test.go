package builder_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/choices"
	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func newBuilder(t *testing.T, schema model.FormSchema) *builder.Builder {
	t.Helper()
	b, err := builder.New(schema, builder.WithIDGenerator(model.NewSequence()))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return b
}

func ids(fields model.Fields) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = model.ID(f)
	}
	return out
}

func TestAddGroup_ConvertsFlatFormToSteps(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())

	added, err := b.AddField(model.FieldTypeGroup, "")
	if err != nil {
		t.Fatalf("add group: %v", err)
	}

	schema := b.Schema()
	if len(schema.Fields) != 2 {
		t.Fatalf("expected 2 top-level fields, got %d", len(schema.Fields))
	}
	for i, f := range schema.Fields {
		if f.Base().Type != model.FieldTypeGroup {
			t.Fatalf("fields[%d] is %s, want group", i, f.Base().Type)
		}
	}
	first := schema.Fields[0].(model.GroupField)
	second := schema.Fields[1].(model.GroupField)
	if first.Title != "Step 1" || second.Title != "Step 2" {
		t.Fatalf("unexpected titles %q, %q", first.Title, second.Title)
	}
	if len(first.Fields) != 2 || model.ID(first.Fields[0]) != "f1" || model.ID(first.Fields[1]) != "f2" {
		t.Fatalf("expected both flat fields in step 1, got %#v", first.Fields)
	}
	if len(second.Fields) != 0 {
		t.Fatalf("expected empty step 2")
	}
	if model.ID(added) != second.ID {
		t.Fatalf("expected the returned group to be step 2")
	}
	if !schema.StepMode() {
		t.Fatalf("expected step mode")
	}
}

func TestAddField_InStepModeTargetsLastGroup(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())

	field, err := b.AddField(model.FieldTypeNumber, "")
	if err != nil {
		t.Fatalf("add field: %v", err)
	}
	schema := b.Schema()
	if !schema.StepMode() {
		t.Fatalf("schema left step mode")
	}
	_, place, ok := schema.Find(model.ID(field))
	if !ok || place.GroupID != "g3" {
		t.Fatalf("expected field in g3, got %#v", place)
	}

	group, err := b.AddField(model.FieldTypeGroup, "")
	if err != nil {
		t.Fatalf("add group: %v", err)
	}
	if group.(model.GroupField).Title != "Step 4" {
		t.Fatalf("unexpected title %q", group.(model.GroupField).Title)
	}

	if _, err := b.AddField(model.FieldTypeText, "missing"); !errors.Is(err, builder.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestDisableStepMode_Flattens(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())
	if err := b.DisableStepMode(); err != nil {
		t.Fatalf("disable: %v", err)
	}
	want := []string{"name", "email", "plan", "extras", "news", "docs"}
	if diff := testsupport.CompareGolden(want, ids(b.Schema().Fields)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateField_FreshIDs(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())

	dup, err := b.DuplicateField("f2")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	schema := b.Schema()
	if diff := testsupport.CompareGolden([]string{"f1", "f2", "field-1"}, ids(schema.Fields)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	sel := dup.(model.SelectField)
	if sel.Label != "Color (copy)" {
		t.Fatalf("unexpected label %q", sel.Label)
	}
	if sel.SelectOptions.Items[0].ID != "opt-2" || sel.SelectOptions.Items[1].ID != "opt-3" {
		t.Fatalf("expected fresh option ids, got %#v", sel.SelectOptions.Items)
	}
}

func TestDuplicateField_GroupChildren(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())

	dup, err := b.DuplicateField("g1")
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	group := dup.(model.GroupField)
	if group.Title != "About you (copy)" || len(group.Fields) != 2 {
		t.Fatalf("unexpected copy %#v", group)
	}
	if err := b.Schema().Validate(); err != nil {
		t.Fatalf("duplicate broke invariants: %v", err)
	}
	if diff := testsupport.CompareGolden([]string{"g1", "group-1", "g2", "g3"}, ids(b.Schema().Fields)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveField(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())

	if err := b.MoveField("g3", "g1"); err != nil {
		t.Fatalf("move groups: %v", err)
	}
	if diff := testsupport.CompareGolden([]string{"g3", "g1", "g2"}, ids(b.Schema().Fields)); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}

	if err := b.MoveField("extras", "plan"); err != nil {
		t.Fatalf("move within group: %v", err)
	}
	f, place, _ := b.Schema().Find("extras")
	if place.Index != 0 || f == nil {
		t.Fatalf("expected extras first, got %#v", place)
	}

	if err := b.MoveField("name", "plan"); !errors.Is(err, builder.ErrDifferentContainer) {
		t.Fatalf("expected ErrDifferentContainer, got %v", err)
	}
}

func TestMoveToGroup(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())

	if err := b.MoveToGroup("name", "g3"); err != nil {
		t.Fatalf("move: %v", err)
	}
	_, place, _ := b.Schema().Find("name")
	if place.GroupID != "g3" || place.Index != 2 {
		t.Fatalf("unexpected placement %#v", place)
	}

	if err := b.MoveToGroup("g2", "g3"); !errors.Is(err, model.ErrNestedGroup) {
		t.Fatalf("expected ErrNestedGroup, got %v", err)
	}
}

func TestRemoveField(t *testing.T) {
	b := newBuilder(t, testsupport.StepSchema())

	if err := b.RemoveField("email"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := b.Field("email"); ok {
		t.Fatalf("expected email removed")
	}
	if err := b.RemoveField("g2"); err != nil {
		t.Fatalf("remove group: %v", err)
	}
	if _, ok := b.Field("plan"); ok {
		t.Fatalf("expected group children removed")
	}
	if err := b.RemoveField("nope"); !errors.Is(err, builder.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestReplaceField_RejectsInvalidEdit(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())
	before := b.Schema()

	f, _ := b.Field("f2")
	sel := f.(model.SelectField)
	sel.SelectOptions.DefaultValue = "green"

	if err := b.ReplaceField(sel); !errors.Is(err, model.ErrInvalidDefault) {
		t.Fatalf("expected ErrInvalidDefault, got %v", err)
	}
	if diff := testsupport.CompareGolden(before, b.Schema()); diff != "" {
		t.Fatalf("schema changed after rejected edit (-want +got):\n%s", diff)
	}
}

func TestChangeType(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())

	radio, err := b.ChangeType("f2", model.FieldTypeRadio)
	if err != nil {
		t.Fatalf("change to radio: %v", err)
	}
	if radio.Base().Type != model.FieldTypeRadio || len(radio.(model.SelectField).SelectOptions.Items) != 2 {
		t.Fatalf("expected options to carry over, got %#v", radio)
	}

	text, err := b.ChangeType("f2", model.FieldTypeTextarea)
	if err != nil {
		t.Fatalf("change to textarea: %v", err)
	}
	if text.Base().ID != "f2" || text.Base().Label != "Color" {
		t.Fatalf("expected identity and label kept, got %#v", text.Base())
	}

	if _, err := b.ChangeType("f1", model.FieldTypeGroup); !errors.Is(err, builder.ErrTypeChange) {
		t.Fatalf("expected ErrTypeChange, got %v", err)
	}
}

func TestEditOptions(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())

	err := b.EditOptions("f2", func(e *choices.Editor, f model.ChoiceField) (model.ChoiceField, error) {
		return e.AddTo(f)
	})
	if err != nil {
		t.Fatalf("edit options: %v", err)
	}
	f, _ := b.Field("f2")
	items := f.(model.SelectField).SelectOptions.Items
	if len(items) != 3 || items[2].Label != "Option 3" {
		t.Fatalf("unexpected items %#v", items)
	}

	if err := b.SetEditingLocale("es"); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	err = b.EditOptions("f2", func(e *choices.Editor, f model.ChoiceField) (model.ChoiceField, error) {
		return e.AddTo(f)
	})
	if !errors.Is(err, choices.ErrTranslationMode) {
		t.Fatalf("expected ErrTranslationMode, got %v", err)
	}
}

func TestLocales(t *testing.T) {
	b := newBuilder(t, testsupport.FlatSchema())

	if err := b.SetEditingLocale("es"); err != nil {
		t.Fatalf("set locale: %v", err)
	}
	if err := b.SetText("f1", i18n.KeyLabel, "Nombre"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	if err := b.SetFormText(i18n.FormTitle, "Contacto"); err != nil {
		t.Fatalf("set form text: %v", err)
	}
	f, _ := b.Field("f1")
	if f.Base().Label != "Name" || f.Base().I18n["es"].Label != "Nombre" {
		t.Fatalf("unexpected field %#v", f.Base())
	}

	progress := b.Progress()
	if len(progress) != 1 || progress[0].Translated != 2 {
		t.Fatalf("unexpected progress %#v", progress)
	}

	if err := b.RemoveLocale("en"); !errors.Is(err, builder.ErrDefaultLocale) {
		t.Fatalf("expected ErrDefaultLocale, got %v", err)
	}
	if err := b.RemoveLocale("es"); err != nil {
		t.Fatalf("remove locale: %v", err)
	}
	schema := b.Schema()
	if schema.Supports("es") || schema.I18n != nil {
		t.Fatalf("expected es to be gone, got %#v", schema.SupportedLocales)
	}
	if f, _ := b.Field("f1"); f.Base().I18n != nil {
		t.Fatalf("expected field overlays pruned")
	}
	if b.Locale() != "en" {
		t.Fatalf("expected editing locale to fall back to en, got %q", b.Locale())
	}

	if err := b.SetEditingLocale("de"); !errors.Is(err, builder.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if err := b.AddLocale("de"); err != nil {
		t.Fatalf("add locale: %v", err)
	}
	if err := b.SetDefaultLocale("de"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if b.Schema().DefaultLocale != "de" {
		t.Fatalf("expected default de")
	}
}
