package html

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestBuildField_Attributes(t *testing.T) {
	min, max := 1.0, 10.5
	cases := []struct {
		name string
		in   render.FieldPlan
		want fieldView
	}{
		{
			name: "textarea",
			in:   render.FieldPlan{ID: "bio", Type: model.FieldTypeTextarea, Label: "Bio", Rows: 4, MaxLength: 200, Value: "hi"},
			want: fieldView{
				ElementID: "fb-bio", Name: "bio", Type: "textarea", Control: "textarea", Label: "Bio", Value: "hi",
				Attrs: []attrView{{Name: "rows", Value: "4"}, {Name: "maxlength", Value: "200"}},
			},
		},
		{
			name: "number",
			in:   render.FieldPlan{ID: "age", Type: model.FieldTypeNumber, Label: "Age", Min: &min, Max: &max, Step: 0.5, Value: 3.0},
			want: fieldView{
				ElementID: "fb-age", Name: "age", Type: "number", Control: "input", InputType: "number", Label: "Age", Value: "3",
				Attrs: []attrView{{Name: "min", Value: "1"}, {Name: "max", Value: "10.5"}, {Name: "step", Value: "0.5"}},
			},
		},
		{
			name: "datetime",
			in:   render.FieldPlan{ID: "at", Type: model.FieldTypeDateTime, Label: "At", MinDate: "2024-01-01T00:00"},
			want: fieldView{
				ElementID: "fb-at", Name: "at", Type: "datetime", Control: "input", InputType: "datetime-local", Label: "At",
				Attrs: []attrView{{Name: "min", Value: "2024-01-01T00:00"}},
			},
		},
		{
			name: "toggle",
			in:   render.FieldPlan{ID: "news", Type: model.FieldTypeToggle, Label: "News", CheckedValue: "yes", UncheckedValue: "no", Value: "yes"},
			want: fieldView{
				ElementID: "fb-news", Name: "news", Type: "toggle", Control: "toggle", Label: "News",
				Value: "yes", Unchecked: "no", Checked: true,
			},
		},
		{
			name: "file",
			in: render.FieldPlan{
				ID: "docs", Type: model.FieldTypeFileUpload, Label: "Docs", Multiple: true, Accept: []string{".pdf", "image/*"}, MaxFiles: 1,
				Value: []model.FileRef{{Name: "cv.pdf"}},
			},
			want: fieldView{
				ElementID: "fb-docs", Name: "docs", Type: "fileUpload", Control: "file", Label: "Docs",
				Attrs:        []attrView{{Name: "accept", Value: ".pdf,image/*"}, {Name: "data-max-files", Value: "1"}},
				CurrentFiles: []string{"cv.pdf"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := testsupport.CompareGolden(tc.want, buildField(tc.in)); diff != "" {
				t.Fatalf("field view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildView_FlatGroupsGetHeadings(t *testing.T) {
	schema := testsupport.StepSchema()
	schema.Fields = append(schema.Fields, testsupport.TextField("extra", "Extra"))

	view := buildView(render.Project(schema, "en", nil), render.RenderOptions{})

	headings := map[string]string{}
	for _, f := range view.Fields {
		if f.Heading != "" {
			headings[f.Name] = f.Heading
		}
	}
	want := map[string]string{"name": "About you", "plan": "Plan", "news": "Finish"}
	if diff := testsupport.CompareGolden(want, headings); diff != "" {
		t.Fatalf("headings mismatch (-want +got):\n%s", diff)
	}
	if view.StepMode || len(view.Steps) != 0 {
		t.Fatalf("expected a flat view")
	}
}

func TestSanitizeText(t *testing.T) {
	got := sanitizeText(`<a href="https://example.com" onclick="x()">docs</a><iframe src="x"></iframe>`)
	for _, want := range []string{`href="https://example.com"`, "nofollow", ">docs</a>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	for _, unwanted := range []string{"onclick", "iframe"} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("expected %q stripped from %q", unwanted, got)
		}
	}
	if sanitizeText("   ") != "" {
		t.Fatalf("expected blank input to stay blank")
	}
}

func TestBuildField_ElementIDsStayDistinct(t *testing.T) {
	ids := map[string]string{}
	for _, id := range []string{"field_1", "field-1", "fieldA", "field-a"} {
		f := buildField(render.FieldPlan{
			ID: id, Type: model.FieldTypeRadio, Label: id,
			Options: []render.OptionPlan{{ID: "o1", Value: "a"}, {ID: "o2", Value: "b"}},
		})
		for _, elementID := range append([]string{f.ElementID}, f.Options[0].ElementID, f.Options[1].ElementID) {
			if prev, ok := ids[elementID]; ok {
				t.Fatalf("element id %q of %q collides with %q", elementID, id, prev)
			}
			ids[elementID] = id
		}
	}
	if ids["fb-field_1"] != "field_1" {
		t.Fatalf("expected verbatim element id, got %v", ids)
	}
}
