// Package builder is the editing session behind the form designer: it adds,
// removes, duplicates, retypes and reorders fields, switches between flat and
// step mode, and manages locales and translated text.
//
// Edits are whole-object replacements validated before they are committed.
// Ids come from an injected model.IDGenerator so sessions can be replayed
// deterministically in tests.
package builder
