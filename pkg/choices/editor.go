package choices

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrLastOption is returned when removing the only remaining option.
	ErrLastOption = errors.New("choices: cannot remove the last option")
	// ErrIndex is returned for indices outside the option list.
	ErrIndex = errors.New("choices: option index out of range")
	// ErrTranslationMode is returned for structural edits while editing a
	// non-default locale. Only label translations are allowed there.
	ErrTranslationMode = errors.New("choices: options are read-only while translating")
)

const (
	copyLabelSuffix = " (copy)"
	copyValueSuffix = "-copy"
)

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithIDGenerator sets the generator used for new option ids.
func WithIDGenerator(ids model.IDGenerator) EditorOption {
	return func(e *Editor) {
		if ids != nil {
			e.ids = ids
		}
	}
}

// WithLocale sets the locale being edited. When locale differs from
// defaultLocale the editor is in translation mode.
func WithLocale(locale, defaultLocale string) EditorOption {
	return func(e *Editor) {
		e.locale = strings.TrimSpace(locale)
		e.defaultLocale = strings.TrimSpace(defaultLocale)
	}
}

// Editor edits the option list of a choice field. Every operation returns a
// new slice; inputs are never modified.
type Editor struct {
	ids           model.IDGenerator
	locale        string
	defaultLocale string
}

// New constructs an Editor in default-locale mode with uuid ids.
func New(options ...EditorOption) *Editor {
	e := &Editor{ids: model.UUIDGenerator()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Translating reports whether structural edits are disabled.
func (e *Editor) Translating() bool {
	return e.locale != "" && e.locale != e.defaultLocale
}

// Patch replaces the label and/or value of an option. Nil members are kept.
type Patch struct {
	Label *string
	Value *string
}

// State is what an options panel needs to draw itself.
type State struct {
	Items      []model.Option
	Duplicates []bool
	Warn       bool
	CanAdd     bool
	CanRemove  bool
	Structural bool
}

// State reports the items together with advisory duplicate flags and which
// actions are enabled. Warn is set when any value repeats.
func (e *Editor) State(items []model.Option) State {
	return State{
		Items:      model.CloneOptions(items),
		Duplicates: DuplicateFlags(items),
		Warn:       HasDuplicates(items),
		CanAdd:     !e.Translating(),
		CanRemove:  e.CanRemove(items),
		Structural: !e.Translating(),
	}
}

// CanRemove reports whether Remove would succeed for any index.
func (e *Editor) CanRemove(items []model.Option) bool {
	return !e.Translating() && len(items) > 1
}

// Add appends "Option n" / "option-n", bumping n until neither collides.
func (e *Editor) Add(items []model.Option) ([]model.Option, error) {
	if e.Translating() {
		return model.CloneOptions(items), ErrTranslationMode
	}
	labels := make(map[string]struct{}, len(items))
	values := make(map[string]struct{}, len(items))
	for _, item := range items {
		labels[item.Label] = struct{}{}
		values[item.Value] = struct{}{}
	}

	n := len(items) + 1
	for {
		_, labelTaken := labels["Option "+strconv.Itoa(n)]
		_, valueTaken := values["option-"+strconv.Itoa(n)]
		if !labelTaken && !valueTaken {
			break
		}
		n++
	}

	out := model.CloneOptions(items)
	out = append(out, model.Option{
		ID:    e.ids.NewID(model.PrefixOption),
		Label: "Option " + strconv.Itoa(n),
		Value: "option-" + strconv.Itoa(n),
	})
	return out, nil
}

// Remove deletes the option at index. Removing the last option is refused
// and the items are returned unchanged.
func (e *Editor) Remove(items []model.Option, index int) ([]model.Option, error) {
	out := model.CloneOptions(items)
	if e.Translating() {
		return out, ErrTranslationMode
	}
	if index < 0 || index >= len(items) {
		return out, fmt.Errorf("%w: %d", ErrIndex, index)
	}
	if len(items) == 1 {
		return out, ErrLastOption
	}
	return append(out[:index], out[index+1:]...), nil
}

// Duplicate inserts a copy of the option at index right after it. The copy
// gets a fresh id, " (copy)" appended to its label and "-copy" appended to its
// value; the value is further suffixed when that would collide.
func (e *Editor) Duplicate(items []model.Option, index int) ([]model.Option, error) {
	out := model.CloneOptions(items)
	if e.Translating() {
		return out, ErrTranslationMode
	}
	if index < 0 || index >= len(items) {
		return out, fmt.Errorf("%w: %d", ErrIndex, index)
	}

	source := out[index]
	dup := model.CloneOptions([]model.Option{source})[0]
	dup.ID = e.ids.NewID(model.PrefixOption)
	dup.Label = source.Label + copyLabelSuffix
	dup.Value = uniqueValue(out, source.Value+copyValueSuffix)

	result := make([]model.Option, 0, len(out)+1)
	result = append(result, out[:index+1]...)
	result = append(result, dup)
	result = append(result, out[index+1:]...)
	return result, nil
}

// Update applies patch to the option at index.
func (e *Editor) Update(items []model.Option, index int, patch Patch) ([]model.Option, error) {
	out := model.CloneOptions(items)
	if e.Translating() {
		return out, ErrTranslationMode
	}
	if index < 0 || index >= len(items) {
		return out, fmt.Errorf("%w: %d", ErrIndex, index)
	}
	next := out[index]
	if patch.Label != nil {
		next.Label = *patch.Label
	}
	if patch.Value != nil {
		next.Value = *patch.Value
	}
	out[index] = next
	return out, nil
}

// DuplicateFlags marks every option whose value appears more than once.
// Empty values are never flagged. The flags are advisory.
func DuplicateFlags(items []model.Option) []bool {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		if item.Value == "" {
			continue
		}
		counts[item.Value]++
	}
	flags := make([]bool, len(items))
	for i, item := range items {
		flags[i] = item.Value != "" && counts[item.Value] > 1
	}
	return flags
}

// HasDuplicates reports whether any value is repeated.
func HasDuplicates(items []model.Option) bool {
	for _, flagged := range DuplicateFlags(items) {
		if flagged {
			return true
		}
	}
	return false
}

func uniqueValue(items []model.Option, candidate string) string {
	taken := make(map[string]struct{}, len(items))
	for _, item := range items {
		taken[item.Value] = struct{}{}
	}
	if _, ok := taken[candidate]; !ok {
		return candidate
	}
	for n := 2; ; n++ {
		next := candidate + "-" + strconv.Itoa(n)
		if _, ok := taken[next]; !ok {
			return next
		}
	}
}
