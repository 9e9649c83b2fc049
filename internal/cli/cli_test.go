package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/loader"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func executeCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSchema(t *testing.T, schema model.FormSchema) string {
	t.Helper()
	data, err := loader.Export(schema)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "form.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestValidate_ReportsRepairs(t *testing.T) {
	out, err := executeCommand(t, NewRootCmd(), "validate", "testdata/signup.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, `repaired i18n.fr: dropped overlay for locale "fr"`)
	assert.Contains(t, out, `repaired submitButtonText: defaulted to "Submit"`)
	assert.Contains(t, out, "testdata/signup.yaml: valid (2 steps, locales [en es])")
}

func TestValidate_JSONReportAndFix(t *testing.T) {
	fixed := filepath.Join(t.TempDir(), "fixed.json")
	out, err := executeCommand(t, NewRootCmd(), "validate", "--json", "--fix", fixed, "testdata/signup.yaml")
	require.NoError(t, err)

	var report loader.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Repairs, 5)

	out, err = executeCommand(t, NewRootCmd(), "validate", fixed)
	require.NoError(t, err)
	assert.NotContains(t, out, "repaired")
	assert.Contains(t, out, "valid (2 steps")
}

func TestValidate_RejectsBrokenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: X\nsupportedLocales: [en]\ndefaultLocale: de\nfields: []\n"), 0o644))

	_, err := executeCommand(t, NewRootCmd(), "validate", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrImport), "got %v", err)
	assert.True(t, errors.Is(err, model.ErrLocaleClosure), "got %v", err)

	_, err = executeCommand(t, NewRootCmd(), "validate")
	assert.Error(t, err)
}

func TestPreview_HTML(t *testing.T) {
	out, err := executeCommand(t, NewRootCmd(), "preview", "--locale", "es", "--action", "/signup", "testdata/signup.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, `lang="es"`)
	assert.Contains(t, out, "Nombre")
	assert.Contains(t, out, `action="/signup"`)
}

func TestPreview_JSONPlanWithValues(t *testing.T) {
	values := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(values, []byte("plan: pro\n"), 0o644))

	out, err := executeCommand(t, NewRootCmd(), "preview", "--renderer", "json", "--step", "1", "--values", values, "testdata/signup.yaml")
	require.NoError(t, err)

	var plan render.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.True(t, plan.StepMode)
	assert.Equal(t, 1, plan.Step.Index)
	field, ok := plan.Field("plan")
	require.True(t, ok)
	assert.Equal(t, "pro", field.Value)
}

func TestPreview_ConfigAndEnvironment(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("renderer: json\nlocale: es\n"), 0o644))

	out, err := executeCommand(t, NewRootCmd(), "--config", cfg, "preview", "testdata/signup.yaml")
	require.NoError(t, err)
	var plan render.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "es", plan.Locale)
	assert.Equal(t, "Registro", plan.Title)

	t.Setenv("FORMBUILDER_RENDERER", "json")
	out, err = executeCommand(t, NewRootCmd(), "preview", "--locale", "en", "testdata/signup.yaml")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "Signup", plan.Title)

	_, err = executeCommand(t, NewRootCmd(), "--config", filepath.Join(t.TempDir(), "missing.yaml"), "schema")
	assert.Error(t, err)
}

func TestPreview_TemplatesOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "form.tpl"), []byte("<main>{{ form.title }}</main>"), 0o644))

	out, err := executeCommand(t, NewRootCmd(), "preview", "--templates", dir, "testdata/signup.yaml")
	require.NoError(t, err)
	assert.Equal(t, "<main>Signup</main>\n", out)
}

func TestPreview_UnknownRenderer(t *testing.T) {
	_, err := executeCommand(t, NewRootCmd(), "preview", "--renderer", "pdf", "testdata/signup.yaml")
	assert.True(t, errors.Is(err, render.ErrRendererNotFound), "got %v", err)
}

func TestSchema_PrintsDocumentSchema(t *testing.T) {
	out, err := executeCommand(t, NewRootCmd(), "schema")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "$defs")
	assert.Contains(t, doc, "properties")
}

func TestNew_ScaffoldsImportableSchema(t *testing.T) {
	out, err := executeCommand(t, NewRootCmd(), "new", "--title", "Survey", "--steps", "3", "--locale", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Survey")

	schema, report, err := loader.Import([]byte(out))
	require.NoError(t, err)
	assert.False(t, report.Repaired())
	assert.True(t, schema.StepMode())
	assert.Len(t, schema.Groups(), 3)
	assert.True(t, schema.Supports("es"))
	assert.Len(t, schema.Groups()[0].Fields, 1)

	out, err = executeCommand(t, NewRootCmd(), "new", "--format", "json")
	require.NoError(t, err)
	schema, _, err = loader.Import([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "Untitled form", schema.Title)
	assert.False(t, schema.StepMode())

	_, err = executeCommand(t, NewRootCmd(), "new", "--format", "toml")
	assert.Error(t, err)
}

type scriptedPrompts struct {
	inputs  []string
	selects []int
}

func (s *scriptedPrompts) Input(context.Context, tui.InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	return v, nil
}

func (s *scriptedPrompts) Select(context.Context, tui.SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func (s *scriptedPrompts) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return false, errors.New("no confirm scripted")
}

func (s *scriptedPrompts) MultiSelect(context.Context, tui.SelectConfig) ([]int, error) {
	return nil, errors.New("no multiselect scripted")
}

func (s *scriptedPrompts) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	return "", errors.New("no textarea scripted")
}

func (s *scriptedPrompts) Info(context.Context, string) error {
	return nil
}

func TestFill_PrintsSubmission(t *testing.T) {
	path := writeSchema(t, testsupport.FlatSchema())
	a := &app{
		v:       viper.New(),
		logger:  zerolog.Nop(),
		prompts: &scriptedPrompts{inputs: []string{"Ada"}, selects: []int{2}},
	}

	out, err := executeCommand(t, newRootCmd(a), "fill", "--format", "pretty", path)
	require.NoError(t, err)
	assert.Equal(t, "f1=Ada\nf2=blue\n\n", out)
}

func TestFill_UnknownFormat(t *testing.T) {
	path := writeSchema(t, testsupport.FlatSchema())
	_, err := executeCommand(t, NewRootCmd(), "fill", "--format", "xml", path)
	assert.Error(t, err)
}
