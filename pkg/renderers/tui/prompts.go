package tui

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

var dateLayouts = map[model.FieldType]string{
	model.FieldTypeDate:     "2006-01-02",
	model.FieldTypeTime:     "15:04",
	model.FieldTypeDateTime: "2006-01-02T15:04",
}

// prompt asks for one field until the answer is acceptable. The returned value
// has the canonical shape for the field type; nil clears the answer.
func (f *Filler) prompt(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	switch field.Type {
	case model.FieldTypeSelect, model.FieldTypeRadio, model.FieldTypeImageSelect:
		return f.promptSelect(ctx, field, chrome)
	case model.FieldTypeMultiSelect, model.FieldTypeImageSelectMulti:
		return f.promptMultiSelect(ctx, field, chrome)
	case model.FieldTypeToggle:
		return f.promptToggle(ctx, field, chrome)
	case model.FieldTypeNumber:
		return f.promptNumber(ctx, field, chrome)
	case model.FieldTypeFileUpload:
		return f.promptFiles(ctx, field, chrome)
	default:
		return f.promptText(ctx, field, chrome)
	}
}

func (f *Filler) promptText(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	current, _ := field.Value.(string)
	for {
		var (
			answer string
			err    error
		)
		if field.Type == model.FieldTypeTextarea {
			answer, err = f.driver.TextArea(ctx, TextAreaConfig{Message: message(field), Default: current, Help: field.Description})
		} else {
			answer, err = f.driver.Input(ctx, InputConfig{Message: message(field), Default: current, Help: field.Description})
		}
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		if err := validateText(field, answer, chrome); err != nil {
			if err := f.invalid(ctx, field, err); err != nil {
				return nil, err
			}
			continue
		}
		return answer, nil
	}
}

func validateText(field render.FieldPlan, answer string, chrome map[string]string) error {
	if answer == "" {
		if field.Required {
			return errors.New(chrome[render.ChromeRequired])
		}
		return nil
	}
	length := utf8.RuneCountInString(answer)
	if field.MinLength > 0 && length < field.MinLength {
		return fmt.Errorf("at least %d characters", field.MinLength)
	}
	if field.MaxLength > 0 && length > field.MaxLength {
		return fmt.Errorf("at most %d characters", field.MaxLength)
	}

	switch field.Type {
	case model.FieldTypeEmail:
		if _, err := mail.ParseAddress(answer); err != nil {
			return errors.New("not a valid email address")
		}
	case model.FieldTypeDate, model.FieldTypeTime, model.FieldTypeDateTime:
		layout := dateLayouts[field.Type]
		if _, err := time.Parse(layout, answer); err != nil {
			return fmt.Errorf("expected the format %s", layout)
		}
		// ISO layouts order lexically.
		if field.MinDate != "" && answer < field.MinDate {
			return fmt.Errorf("must not be before %s", field.MinDate)
		}
		if field.MaxDate != "" && answer > field.MaxDate {
			return fmt.Errorf("must not be after %s", field.MaxDate)
		}
	}
	return nil
}

func (f *Filler) promptNumber(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	current := ""
	if v, ok := field.Value.(float64); ok {
		current = strconv.FormatFloat(v, 'f', -1, 64)
	}
	for {
		answer, err := f.driver.Input(ctx, InputConfig{Message: message(field), Default: current, Help: field.Description})
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && !field.Required {
			return nil, nil
		}

		value, verr := parseNumber(field, answer, chrome)
		if verr != nil {
			if err := f.invalid(ctx, field, verr); err != nil {
				return nil, err
			}
			continue
		}
		return value, nil
	}
}

func parseNumber(field render.FieldPlan, answer string, chrome map[string]string) (float64, error) {
	if answer == "" {
		return 0, errors.New(chrome[render.ChromeRequired])
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if field.Min != nil && value < *field.Min {
		return 0, fmt.Errorf("must be at least %v", *field.Min)
	}
	if field.Max != nil && value > *field.Max {
		return 0, fmt.Errorf("must be at most %v", *field.Max)
	}
	return value, nil
}

// promptSelect offers the options in order. Optional fields get a leading
// entry that clears the answer.
func (f *Filler) promptSelect(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	offset := 0
	var labels []string
	if !field.Required {
		labels = append(labels, chrome[render.ChromeNoAnswer])
		offset = 1
	}
	defaultIndex := 0
	for i, opt := range field.Options {
		labels = append(labels, opt.Label)
		if opt.Selected {
			defaultIndex = i + offset
		}
	}
	if len(field.Options) == 0 {
		return nil, nil
	}

	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      message(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Description,
	})
	if err != nil {
		return nil, err
	}
	idx -= offset
	if idx < 0 || idx >= len(field.Options) {
		return "", nil
	}
	return field.Options[idx].Value, nil
}

func (f *Filler) promptMultiSelect(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	labels := make([]string, 0, len(field.Options))
	var defaults []int
	for i, opt := range field.Options {
		labels = append(labels, opt.Label)
		if opt.Selected {
			defaults = append(defaults, i)
		}
	}
	if len(labels) == 0 {
		return []string{}, nil
	}

	for {
		picked, err := f.driver.MultiSelect(ctx, SelectConfig{
			Message:  message(field),
			Options:  labels,
			Defaults: defaults,
			Help:     field.Description,
		})
		if err != nil {
			return nil, err
		}
		answer := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx >= 0 && idx < len(field.Options) {
				answer = append(answer, field.Options[idx].Value)
			}
		}

		var verr error
		switch {
		case field.Required && len(answer) == 0:
			verr = errors.New(chrome[render.ChromeRequired])
		case field.MaxSelections > 0 && len(answer) > field.MaxSelections:
			verr = fmt.Errorf("choose at most %d", field.MaxSelections)
		}
		if verr != nil {
			if err := f.invalid(ctx, field, verr); err != nil {
				return nil, err
			}
			continue
		}
		return answer, nil
	}
}

// promptToggle maps yes/no onto the checked and unchecked values. A required
// toggle must be switched on.
func (f *Filler) promptToggle(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	current, _ := field.Value.(string)
	for {
		on, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: message(field),
			Default: current == field.CheckedValue,
			Help:    field.Description,
		})
		if err != nil {
			return nil, err
		}
		if on {
			return field.CheckedValue, nil
		}
		if field.Required {
			if err := f.invalid(ctx, field, errors.New(chrome[render.ChromeRequired])); err != nil {
				return nil, err
			}
			continue
		}
		return field.UncheckedValue, nil
	}
}

// promptFiles reads a comma separated list of local paths or URLs.
func (f *Filler) promptFiles(ctx context.Context, field render.FieldPlan, chrome map[string]string) (any, error) {
	var current []string
	if refs, ok := field.Value.([]model.FileRef); ok {
		for _, ref := range refs {
			current = append(current, ref.URL)
		}
	}
	for {
		answer, err := f.driver.Input(ctx, InputConfig{
			Message: message(field),
			Default: strings.Join(current, ", "),
			Help:    field.Description,
		})
		if err != nil {
			return nil, err
		}
		refs := parseFileRefs(answer)

		var verr error
		switch {
		case field.Required && len(refs) == 0:
			verr = errors.New(chrome[render.ChromeRequired])
		case field.MaxFiles > 0 && len(refs) > field.MaxFiles:
			verr = fmt.Errorf("at most %d files", field.MaxFiles)
		case field.MaxSizeMB > 0:
			limit := int64(field.MaxSizeMB) * 1024 * 1024
			for _, ref := range refs {
				if ref.Size > limit {
					verr = fmt.Errorf("%s is larger than %d MB", ref.Name, field.MaxSizeMB)
					break
				}
			}
		}
		if verr != nil {
			if err := f.invalid(ctx, field, verr); err != nil {
				return nil, err
			}
			continue
		}
		return refs, nil
	}
}

func parseFileRefs(answer string) []model.FileRef {
	refs := []model.FileRef{}
	for _, entry := range strings.Split(answer, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		ref := model.FileRef{
			ID:       entry,
			Name:     path.Base(filepath.ToSlash(entry)),
			URL:      entry,
			MimeType: mime.TypeByExtension(filepath.Ext(entry)),
		}
		if !strings.Contains(entry, "://") {
			if info, err := os.Stat(entry); err == nil && !info.IsDir() {
				ref.Size = info.Size()
			}
		}
		refs = append(refs, ref)
	}
	return refs
}

func message(field render.FieldPlan) string {
	if field.Required {
		return field.Label + " *"
	}
	return field.Label
}
