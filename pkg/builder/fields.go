package builder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/choices"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/reorder"
)

const copySuffix = " (copy)"

// AddField appends a default field of type t and returns it.
//
// Adding a group to a flat schema switches to step mode first (see
// EnableStepMode); the returned group is the one appended last. Leaf fields
// go into groupID; in step mode an empty groupID targets the last group so
// the schema stays in step mode.
func (b *Builder) AddField(t model.FieldType, groupID string) (model.Field, error) {
	if t == model.FieldTypeGroup {
		return b.addGroup()
	}

	leaf, err := model.NewLeafField(t, b.ids)
	if err != nil {
		return nil, err
	}
	err = b.update("add field", func(s *model.FormSchema) error {
		target := groupID
		if target == "" && s.StepMode() {
			target = model.ID(s.Fields[len(s.Fields)-1])
		}
		if target == "" {
			s.Fields = append(s.Fields, leaf)
			return nil
		}
		gi, group, ok := groupAt(*s, target)
		if !ok {
			return fmt.Errorf("%w: %q", ErrGroupNotFound, target)
		}
		group.Fields = append(group.Fields, leaf)
		s.Fields[gi] = group
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leaf.Clone(), nil
}

func (b *Builder) addGroup() (model.Field, error) {
	if len(b.schema.Fields) > 0 && len(b.schema.Groups()) == 0 {
		if err := b.EnableStepMode(); err != nil {
			return nil, err
		}
		return b.schema.Fields[len(b.schema.Fields)-1].Clone(), nil
	}

	group := model.NewGroup(b.ids, stepTitle(len(b.schema.Groups())+1))
	if err := b.update("add group", func(s *model.FormSchema) error {
		s.Fields = append(s.Fields, group)
		return nil
	}); err != nil {
		return nil, err
	}
	return group.Clone(), nil
}

// EnableStepMode moves every top-level leaf field into a new "Step 1" group
// placed first. A schema that had no groups also gets an empty "Step 2".
// It is a no-op in step mode.
func (b *Builder) EnableStepMode() error {
	if b.schema.StepMode() {
		return nil
	}
	return b.update("enable step mode", func(s *model.FormSchema) error {
		first := model.NewGroup(b.ids, stepTitle(1))
		var rest model.Fields
		for _, f := range s.Fields {
			if leaf, ok := model.AsLeaf(f); ok {
				first.Fields = append(first.Fields, leaf)
				continue
			}
			rest = append(rest, f)
		}

		fields := model.Fields{first}
		if len(rest) == 0 {
			fields = append(fields, model.NewGroup(b.ids, stepTitle(2)))
		}
		s.Fields = append(fields, rest...)
		return nil
	})
}

// DisableStepMode replaces every group with its children, in order.
func (b *Builder) DisableStepMode() error {
	return b.update("disable step mode", func(s *model.FormSchema) error {
		flat := make(model.Fields, 0, len(s.Fields))
		for _, f := range s.Fields {
			group, ok := f.(model.GroupField)
			if !ok {
				flat = append(flat, f)
				continue
			}
			for _, child := range group.Fields {
				flat = append(flat, child)
			}
		}
		s.Fields = flat
		return nil
	})
}

// RemoveField deletes the field with the given id. Removing a group removes
// its children.
func (b *Builder) RemoveField(id string) error {
	return b.update("remove field", func(s *model.FormSchema) error {
		_, place, ok := s.Find(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
		}
		if place.GroupID == "" {
			s.Fields = removeAt(s.Fields, place.Index)
			return nil
		}
		gi, group, _ := groupAt(*s, place.GroupID)
		group.Fields = removeAt(group.Fields, place.Index)
		s.Fields[gi] = group
		return nil
	})
}

// DuplicateField inserts a copy right after the field. The copy and all of
// its options and children get fresh ids, and its label or title is suffixed
// with " (copy)".
func (b *Builder) DuplicateField(id string) (model.Field, error) {
	var dup model.Field
	err := b.update("duplicate field", func(s *model.FormSchema) error {
		f, place, ok := s.Find(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
		}
		dup = model.WithFreshIDs(f, b.ids)
		base := dup.Base()
		base.Label += copySuffix
		dup = dup.WithBase(base)
		if group, ok := dup.(model.GroupField); ok {
			group.Title += copySuffix
			dup = group
		}

		if place.GroupID == "" {
			s.Fields = insertAt(s.Fields, place.Index+1, dup)
			return nil
		}
		gi, group, _ := groupAt(*s, place.GroupID)
		group.Fields = insertAt(group.Fields, place.Index+1, dup.(model.LeafField))
		s.Fields[gi] = group
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dup.Clone(), nil
}

// ReplaceField swaps the field sharing f's id for f. The result must keep the
// schema valid; a group can only replace a top-level field.
func (b *Builder) ReplaceField(f model.Field) error {
	if f == nil {
		return fmt.Errorf("%w: nil field", ErrFieldNotFound)
	}
	next := f.Clone()
	return b.update("replace field", func(s *model.FormSchema) error {
		_, place, ok := s.Find(model.ID(next))
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, model.ID(next))
		}
		if place.GroupID == "" {
			s.Fields[place.Index] = next
			return nil
		}
		leaf, ok := model.AsLeaf(next)
		if !ok {
			return fmt.Errorf("%w: %q", model.ErrNestedGroup, model.ID(next))
		}
		gi, group, _ := groupAt(*s, place.GroupID)
		group.Fields[place.Index] = leaf
		s.Fields[gi] = group
		return nil
	})
}

// ChangeType replaces a leaf field with a default field of type t that keeps
// the id, text, required flag and translations. Option lists carry over
// between choice types; defaults do not.
func (b *Builder) ChangeType(id string, t model.FieldType) (model.Field, error) {
	current, _, ok := b.schema.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	if _, isLeaf := model.AsLeaf(current); !isLeaf || t == model.FieldTypeGroup {
		return nil, fmt.Errorf("%w: %q to %s", ErrTypeChange, id, t)
	}

	next, err := model.NewLeafField(t, b.ids)
	if err != nil {
		return nil, err
	}
	base := current.Clone().Base()
	base.Type = t

	var replaced model.Field = next.WithBase(base)
	fromChoice, wasChoice := model.AsChoice(current)
	toChoice, isChoice := model.AsChoice(replaced)
	switch {
	case wasChoice && isChoice:
		replaced = toChoice.WithItems(model.CloneOptions(fromChoice.Items()))
	case !isChoice:
		replaced = replaced.WithBase(withoutOptionTranslations(replaced.Base()))
	}

	if err := b.ReplaceField(replaced); err != nil {
		return nil, err
	}
	return replaced.Clone(), nil
}

// MoveField moves activeID into the slot held by overID. Both must live in
// the same container.
func (b *Builder) MoveField(activeID, overID string) error {
	return b.update("move field", func(s *model.FormSchema) error {
		_, from, ok := s.Find(activeID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, activeID)
		}
		_, to, ok := s.Find(overID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, overID)
		}
		if from.GroupID != to.GroupID {
			return fmt.Errorf("%w: %q and %q", ErrDifferentContainer, activeID, overID)
		}
		if from.GroupID == "" {
			s.Fields = reorder.MoveByID(s.Fields, model.ID, activeID, overID)
			return nil
		}
		gi, group, _ := groupAt(*s, from.GroupID)
		group.Fields = reorder.MoveByID(group.Fields, leafID, activeID, overID)
		s.Fields[gi] = group
		return nil
	})
}

// MoveToGroup moves a leaf field to the end of groupID. An empty groupID
// moves it to the top level.
func (b *Builder) MoveToGroup(fieldID, groupID string) error {
	return b.update("move to group", func(s *model.FormSchema) error {
		f, place, ok := s.Find(fieldID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
		}
		leaf, ok := model.AsLeaf(f)
		if !ok {
			return fmt.Errorf("%w: %q", model.ErrNestedGroup, fieldID)
		}
		if place.GroupID == groupID {
			return nil
		}

		if place.GroupID == "" {
			s.Fields = removeAt(s.Fields, place.Index)
		} else {
			gi, from, _ := groupAt(*s, place.GroupID)
			from.Fields = removeAt(from.Fields, place.Index)
			s.Fields[gi] = from
		}

		if groupID == "" {
			s.Fields = append(s.Fields, leaf)
			return nil
		}
		gi, to, ok := groupAt(*s, groupID)
		if !ok {
			return fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
		}
		to.Fields = append(to.Fields, leaf)
		s.Fields[gi] = to
		return nil
	})
}

// SetRequired toggles the required flag of a leaf field.
func (b *Builder) SetRequired(id string, required bool) error {
	f, _, ok := b.schema.Find(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	base := f.Clone().Base()
	base.Validation = &model.Validation{Required: required}
	return b.ReplaceField(f.WithBase(base))
}

// Options returns an options editor bound to the session's id generator and
// editing locale.
func (b *Builder) Options() *choices.Editor {
	return choices.New(
		choices.WithIDGenerator(b.ids),
		choices.WithLocale(b.locale, b.schema.DefaultLocale),
	)
}

// EditOptions applies edit to the choice field with the given id.
func (b *Builder) EditOptions(id string, edit func(*choices.Editor, model.ChoiceField) (model.ChoiceField, error)) error {
	f, _, ok := b.schema.Find(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	choice, ok := model.AsChoice(f)
	if !ok {
		return fmt.Errorf("builder: field %q has no options", id)
	}
	next, err := edit(b.Options(), choice.Clone().(model.ChoiceField))
	if err != nil {
		return err
	}
	return b.ReplaceField(next)
}

func stepTitle(n int) string {
	return fmt.Sprintf("Step %d", n)
}

func leafID(f model.LeafField) string {
	return model.ID(f)
}

func groupAt(s model.FormSchema, id string) (int, model.GroupField, bool) {
	for i, f := range s.Fields {
		if group, ok := f.(model.GroupField); ok && group.ID == id {
			return i, group, true
		}
	}
	return -1, model.GroupField{}, false
}

func withoutOptionTranslations(base model.FieldBase) model.FieldBase {
	for locale, tr := range base.I18n {
		tr.Options = nil
		if tr.Empty() {
			delete(base.I18n, locale)
			continue
		}
		base.I18n[locale] = tr
	}
	if len(base.I18n) == 0 {
		base.I18n = nil
	}
	return base
}

func insertAt[T any](list []T, i int, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, v)
	return append(out, list[i:]...)
}

func removeAt[T any](list []T, i int) []T {
	out := make([]T, 0, len(list))
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}
