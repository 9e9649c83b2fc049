package i18n_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/i18n"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestResolve_ScenarioA(t *testing.T) {
	schema := testsupport.FlatSchema()
	f1 := schema.Fields[0]

	f1 = i18n.SetText(f1, i18n.KeyLabel, "es", schema.DefaultLocale, "Nombre")

	if got := i18n.Resolve(f1, i18n.KeyLabel, "es", "en"); got != "Nombre" {
		t.Fatalf("es label = %q, want Nombre", got)
	}
	if got := i18n.Resolve(f1, i18n.KeyLabel, "en", "en"); got != "Name" {
		t.Fatalf("en label = %q, want Name", got)
	}
}

func TestResolve_IdentityInDefaultLocale(t *testing.T) {
	field := testsupport.TextField("a", "Base")
	field.I18n = map[string]model.Translation{"en": {Label: "ignored"}}

	if got := i18n.Resolve(field, i18n.KeyLabel, "en", "en"); got != field.Label {
		t.Fatalf("expected base label, got %q", got)
	}
}

func TestResolve_FallsBackToBase(t *testing.T) {
	field := testsupport.TextField("a", "Base")
	field.Placeholder = "Type here"
	field.I18n = map[string]model.Translation{"es": {Label: "Base ES"}}

	if got := i18n.Resolve(field, i18n.KeyPlaceholder, "es", "en"); got != "Type here" {
		t.Fatalf("expected placeholder fallback, got %q", got)
	}
	if got := i18n.Resolve(field, i18n.KeyLabel, "fr", "en"); got != "Base" {
		t.Fatalf("expected label fallback for missing locale, got %q", got)
	}
	if got := i18n.Resolve(field, i18n.KeyDescription, "es", "en"); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}

func TestSetText_NonDefaultLocaleLeavesBaseUntouched(t *testing.T) {
	original := testsupport.TextField("a", "Name")
	locales := []string{"es", "fr", "de"}

	for _, locale := range locales {
		for _, key := range []i18n.Key{i18n.KeyLabel, i18n.KeyPlaceholder, i18n.KeyDescription} {
			updated := i18n.SetText(original, key, locale, "en", "translated")

			if diff := testsupport.CompareGolden(original.Base().Label, updated.Base().Label); diff != "" {
				t.Fatalf("base label changed (-want +got):\n%s", diff)
			}
			if updated.Base().Placeholder != "" || updated.Base().Description != "" {
				t.Fatalf("base text changed for %s/%s", locale, key)
			}
			if got := i18n.Resolve(updated, key, locale, "en"); got != "translated" {
				t.Fatalf("%s/%s resolved to %q", locale, key, got)
			}
			if original.I18n != nil {
				t.Fatalf("input field mutated")
			}
		}
	}
}

func TestSetText_DefaultLocaleWritesBase(t *testing.T) {
	field := testsupport.TextField("a", "Name")
	updated := i18n.SetText(field, i18n.KeyLabel, "en", "en", "Full name")

	if updated.Base().Label != "Full name" {
		t.Fatalf("expected base label update, got %q", updated.Base().Label)
	}
	if updated.Base().I18n != nil {
		t.Fatalf("expected no overlay, got %#v", updated.Base().I18n)
	}
}

func TestSetText_ClearingDropsEmptyOverlay(t *testing.T) {
	field := i18n.SetText(testsupport.TextField("a", "Name"), i18n.KeyLabel, "es", "en", "Nombre")
	field = i18n.SetText(field, i18n.KeyLabel, "es", "en", "")

	if field.Base().I18n != nil {
		t.Fatalf("expected overlay to be dropped, got %#v", field.Base().I18n)
	}
}

func TestSetText_GroupTitle(t *testing.T) {
	group := testsupport.Group("g", "Step 1")

	translated := i18n.SetText(group, i18n.KeyTitle, "es", "en", "Paso 1")
	if got := i18n.Resolve(translated, i18n.KeyTitle, "es", "en"); got != "Paso 1" {
		t.Fatalf("unexpected title %q", got)
	}
	if translated.(model.GroupField).Title != "Step 1" {
		t.Fatalf("base title changed")
	}

	renamed := i18n.SetText(group, i18n.KeyTitle, "en", "en", "Intro")
	if renamed.(model.GroupField).Title != "Intro" {
		t.Fatalf("expected base title update")
	}
}

func TestSetOptionLabel(t *testing.T) {
	field := testsupport.SelectField("s", "Color", testsupport.Options("red", "blue"))

	es, err := i18n.SetOptionLabel(field, "red-id", "es", "en", "Rojo")
	if err != nil {
		t.Fatalf("set option label: %v", err)
	}
	red := field.SelectOptions.Items[0]
	if got := i18n.ResolveOption(es, red, "es", "en"); got != "Rojo" {
		t.Fatalf("es option label = %q", got)
	}
	if got := i18n.ResolveOption(es, red, "en", "en"); got != "Red" {
		t.Fatalf("en option label = %q", got)
	}
	if es.(model.SelectField).SelectOptions.Items[0].Label != "Red" {
		t.Fatalf("base option label changed")
	}

	en, err := i18n.SetOptionLabel(field, "blue-id", "en", "en", "Navy")
	if err != nil {
		t.Fatalf("set option label: %v", err)
	}
	if en.(model.SelectField).SelectOptions.Items[1].Label != "Navy" {
		t.Fatalf("expected base option label update")
	}
	if field.SelectOptions.Items[1].Label != "Blue" {
		t.Fatalf("input field mutated")
	}

	if _, err := i18n.SetOptionLabel(field, "nope", "es", "en", "x"); !errors.Is(err, i18n.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if _, err := i18n.SetOptionLabel(testsupport.TextField("t", "T"), "x", "es", "en", "x"); !errors.Is(err, i18n.ErrNotChoice) {
		t.Fatalf("expected ErrNotChoice, got %v", err)
	}
}
