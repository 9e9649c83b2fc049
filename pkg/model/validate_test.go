package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestValidate_Fixtures(t *testing.T) {
	if err := testsupport.FlatSchema().Validate(); err != nil {
		t.Fatalf("flat schema: %v", err)
	}
	if err := testsupport.StepSchema().Validate(); err != nil {
		t.Fatalf("step schema: %v", err)
	}
}

func TestValidate_ReportsEveryIssue(t *testing.T) {
	dupOpts := testsupport.SelectField("s", "S", []model.Option{
		{ID: "o1", Value: "a"},
		{ID: "o1", Value: "b"},
	})
	dupOpts.SelectOptions.DefaultValue = "zzz"

	other := testsupport.TextField("s", "Dup")
	other.I18n = map[string]model.Translation{"fr": {Label: "Same as default"}}

	schema := model.FormSchema{
		Fields:           model.Fields{dupOpts, other},
		SupportedLocales: []string{"en"},
		DefaultLocale:    "fr",
		I18n:             map[string]model.FormTranslation{"de": {Title: "Titel"}},
	}

	err := schema.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	for _, sentinel := range []error{
		model.ErrLocaleClosure,
		model.ErrDuplicateID,
		model.ErrDuplicateOptionID,
		model.ErrInvalidDefault,
	} {
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected %v in %v", sentinel, err)
		}
	}
	if len(verr.Issues) != 6 {
		t.Fatalf("expected 6 issues, got %d: %v", len(verr.Issues), err)
	}
}

func TestValidate_DefaultMustReferenceNonEmptyValue(t *testing.T) {
	field := testsupport.SelectField("s", "S", []model.Option{{ID: "o1", Value: "  "}})
	field.SelectOptions.DefaultValue = "  "

	schema := model.NewSchema("t")
	schema.Fields = model.Fields{field}

	if err := schema.Validate(); !errors.Is(err, model.ErrInvalidDefault) {
		t.Fatalf("expected ErrInvalidDefault, got %v", err)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	field := testsupport.TextField("a", "A")
	field.Type = model.FieldTypeSelect

	schema := model.NewSchema("t")
	schema.Fields = model.Fields{field}

	if err := schema.Validate(); !errors.Is(err, model.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
}

func TestDecode_RoundTripsEveryArm(t *testing.T) {
	schema := testsupport.StepSchema()

	payload, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded model.FormSchema
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := testsupport.CompareGolden(schema, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_RejectsNestedGroup(t *testing.T) {
	raw := `{"fields":[{"id":"g1","type":"group","title":"Outer","fields":[{"id":"g2","type":"group","title":"Inner","fields":[]}]}]}`

	var schema model.FormSchema
	err := json.Unmarshal([]byte(raw), &schema)
	if !errors.Is(err, model.ErrNestedGroup) {
		t.Fatalf("expected ErrNestedGroup, got %v", err)
	}
}

func TestDecode_RejectsUnknownType(t *testing.T) {
	var schema model.FormSchema
	err := json.Unmarshal([]byte(`{"fields":[{"id":"x","type":"signature"}]}`), &schema)
	if !errors.Is(err, model.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	if !strings.Contains(err.Error(), "fields[0]") {
		t.Fatalf("expected error to name the field index, got %v", err)
	}
}

func TestEncode_EmptyListsAreArrays(t *testing.T) {
	payload, err := json.Marshal(model.FormSchema{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(payload), `"fields":[]`) {
		t.Fatalf("expected fields to encode as [], got %s", payload)
	}
}
