package model

import "fmt"

// Toggle values used when a toggle field is created.
const (
	DefaultCheckedValue   = "true"
	DefaultUncheckedValue = "false"
)

// NewField builds a default field of type t with a fresh id. The result
// satisfies every schema invariant: option lists are empty but non-nil and no
// default value is set.
func NewField(t FieldType, ids IDGenerator) (Field, error) {
	if ids == nil {
		ids = UUIDGenerator()
	}
	if t == FieldTypeGroup {
		return NewGroup(ids, DefaultLabel(t)), nil
	}
	return NewLeafField(t, ids)
}

// NewLeafField is NewField restricted to types allowed inside a group.
func NewLeafField(t FieldType, ids IDGenerator) (LeafField, error) {
	if ids == nil {
		ids = UUIDGenerator()
	}
	base := FieldBase{
		ID:         ids.NewID(PrefixField),
		Type:       t,
		Label:      DefaultLabel(t),
		Validation: &Validation{},
	}

	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone:
		return TextField{FieldBase: base}, nil
	case FieldTypeNumber:
		return NumberField{FieldBase: base}, nil
	case FieldTypeDate, FieldTypeTime, FieldTypeDateTime:
		return DateField{FieldBase: base}, nil
	case FieldTypeSelect, FieldTypeRadio:
		return SelectField{FieldBase: base, SelectOptions: SelectOptions{Items: []Option{}}}, nil
	case FieldTypeMultiSelect:
		return MultiSelectField{FieldBase: base, MultiSelectOptions: MultiSelectOptions{Items: []Option{}}}, nil
	case FieldTypeToggle:
		return ToggleField{FieldBase: base, ToggleOptions: ToggleOptions{
			CheckedValue:   DefaultCheckedValue,
			UncheckedValue: DefaultUncheckedValue,
		}}, nil
	case FieldTypeImageSelect, FieldTypeImageSelectMulti:
		return ImageSelectField{FieldBase: base, ImageSelectOptions: ImageSelectOptions{Items: []Option{}}}, nil
	case FieldTypeFileUpload:
		return FileUploadField{FieldBase: base}, nil
	case FieldTypeGroup:
		return nil, ErrNestedGroup
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
	}
}

// NewGroup builds an empty group titled title.
func NewGroup(ids IDGenerator, title string) GroupField {
	if ids == nil {
		ids = UUIDGenerator()
	}
	return GroupField{
		FieldBase: FieldBase{
			ID:    ids.NewID(PrefixGroup),
			Type:  FieldTypeGroup,
			Label: title,
		},
		Title:     title,
		ShowTitle: true,
		Fields:    LeafFields{},
	}
}

// WithFreshIDs clones f and assigns new ids to the field, its options and, for
// groups, every child. Option translations are re-keyed to the new option ids.
func WithFreshIDs(f Field, ids IDGenerator) Field {
	if ids == nil {
		ids = UUIDGenerator()
	}
	clone := f.Clone()

	if group, ok := clone.(GroupField); ok {
		group.ID = ids.NewID(PrefixGroup)
		for i, child := range group.Fields {
			group.Fields[i] = WithFreshIDs(child, ids).(LeafField)
		}
		return group
	}

	base := clone.Base()
	base.ID = ids.NewID(PrefixField)
	clone = clone.WithBase(base)

	choice, ok := AsChoice(clone)
	if !ok {
		return clone
	}
	items := choice.Items()
	renamed := make(map[string]string, len(items))
	for i := range items {
		next := ids.NewID(PrefixOption)
		renamed[items[i].ID] = next
		items[i].ID = next
	}
	base = choice.Base()
	for locale, tr := range base.I18n {
		if len(tr.Options) == 0 {
			continue
		}
		rekeyed := make(map[string]string, len(tr.Options))
		for oldID, label := range tr.Options {
			if newID, ok := renamed[oldID]; ok {
				rekeyed[newID] = label
			}
		}
		tr.Options = rekeyed
		base.I18n[locale] = tr
	}
	return choice.WithItems(items).WithBase(base)
}
