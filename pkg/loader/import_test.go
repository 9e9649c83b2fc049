package loader_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/loader"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestImport_MergesStructuralDefaults(t *testing.T) {
	cases := map[string]struct {
		doc    string
		locale string
	}{
		"json":           {doc: `{"fields": []}`, locale: "en"},
		"yaml":           {doc: `{fields: []}`, locale: "en"},
		"default locale": {doc: `{"fields": [], "defaultLocale": "es"}`, locale: "es"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			schema, report, err := loader.Import([]byte(tc.doc))
			if err != nil {
				t.Fatalf("import: %v", err)
			}
			if diff := testsupport.CompareGolden([]string{tc.locale}, schema.SupportedLocales); diff != "" {
				t.Fatalf("supportedLocales mismatch (-want +got):\n%s", diff)
			}
			if schema.DefaultLocale != tc.locale {
				t.Fatalf("expected default locale %s, got %q", tc.locale, schema.DefaultLocale)
			}
			if schema.Fields == nil || len(schema.Fields) != 0 {
				t.Fatalf("expected empty fields, got %#v", schema.Fields)
			}
			if schema.SubmitButtonText != model.DefaultSubmitButtonText {
				t.Fatalf("expected default submit text, got %q", schema.SubmitButtonText)
			}
			if !hasRepair(report, "supportedLocales") {
				t.Fatalf("expected supportedLocales repair, got %#v", report.Repairs)
			}
		})
	}
}

func hasRepair(report loader.Report, path string) bool {
	for _, repair := range report.Repairs {
		if repair.Path == path {
			return true
		}
	}
	return false
}

func TestImport_DefaultLocaleIsFirstSupported(t *testing.T) {
	schema, _, err := loader.Import([]byte(`{"fields": [], "supportedLocales": ["es", "en"]}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if schema.DefaultLocale != "es" {
		t.Fatalf("expected es, got %q", schema.DefaultLocale)
	}
}

func TestImport_Rejections(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty":            {doc: "  ", want: loader.ErrImport},
		"malformed":        {doc: `{"fields": [`, want: loader.ErrImport},
		"missing fields":   {doc: `{"title": "x"}`, want: loader.ErrImport},
		"fields not array": {doc: `{"fields": {"a": 1}}`, want: loader.ErrImport},
		"nested group": {
			doc:  `{"fields":[{"id":"g","type":"group","fields":[{"id":"h","type":"group","fields":[]}]}]}`,
			want: model.ErrNestedGroup,
		},
		"unknown type": {doc: `{"fields":[{"id":"a","type":"signature"}]}`, want: model.ErrUnknownFieldType},
		"default locale unsupported": {
			doc:  `{"fields":[],"supportedLocales":["en"],"defaultLocale":"de"}`,
			want: model.ErrLocaleClosure,
		},
		"invalid default": {
			doc:  `{"fields":[{"id":"s","type":"select","selectOptions":{"defaultValue":"x","items":[{"id":"o","value":"y","label":"Y"}]}}]}`,
			want: model.ErrInvalidDefault,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := loader.Import([]byte(tc.doc))
			if !errors.Is(err, loader.ErrImport) {
				t.Fatalf("expected ErrImport, got %v", err)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFS_RepairsYAML(t *testing.T) {
	schema, report, err := loader.LoadFS(os.DirFS("testdata"), "signup.yaml", loader.WithIDGenerator(model.NewSequence()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []loader.Repair{
		{Path: "submitButtonText", Message: `defaulted to "Submit"`},
		{Path: "i18n.fr", Message: `dropped overlay for locale "fr"`},
		{Path: "fields[1].fields[0].items[1].id", Message: `replaced duplicate option id "basic-id" with "opt-1"`},
		{Path: "fields[1].fields[1].id", Message: `replaced duplicate id "name" with "field-2"`},
		{Path: "fields[1].fields[1].items", Message: "replaced missing option list with an empty one"},
	}
	if diff := testsupport.CompareGolden(want, report.Repairs); diff != "" {
		t.Fatalf("repairs mismatch (-want +got):\n%s", diff)
	}

	if !schema.StepMode() || !schema.ShowResponseSummary {
		t.Fatalf("expected a step-mode schema with summary")
	}
	if _, ok := schema.I18n["fr"]; ok {
		t.Fatalf("expected fr overlay to be dropped")
	}
	extras, _, ok := schema.Find("field-2")
	if !ok {
		t.Fatalf("expected regenerated id field-2")
	}
	if items := extras.(model.MultiSelectField).MultiSelectOptions.Items; items == nil {
		t.Fatalf("expected non-nil item list")
	}
	if err := schema.Validate(); err != nil {
		t.Fatalf("imported schema invalid: %v", err)
	}
}

func TestExport_RoundTrip(t *testing.T) {
	schema := testsupport.StepSchema()

	payload, err := loader.Export(schema)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	imported, report, err := loader.Import(payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Repaired() {
		t.Fatalf("expected a clean import, got %#v", report.Repairs)
	}
	if diff := testsupport.CompareGolden(schema, imported); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportYAML_ImportsBack(t *testing.T) {
	schema := testsupport.FlatSchema()

	payload, err := loader.ExportYAML(schema)
	if err != nil {
		t.Fatalf("export yaml: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(string(payload)), "{") {
		t.Fatalf("expected block style yaml, got:\n%s", payload)
	}
	if !strings.Contains(string(payload), "title: Contact\n") {
		t.Fatalf("expected plain scalars, got:\n%s", payload)
	}
	imported, _, err := loader.Import(payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diff := testsupport.CompareGolden(schema, imported); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
