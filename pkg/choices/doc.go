// Package choices edits the option lists of select, radio, multiselect and
// image select fields.
//
// The Editor works on []model.Option and returns new slices. The field-level
// helpers (AddTo, RemoveFrom, DuplicateIn, UpdateIn, Translate) wrap it for a
// model.ChoiceField and keep translations and defaults consistent with the
// edited list. Duplicate values are flagged, never rejected.
package choices
