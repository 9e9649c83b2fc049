// Package i18n resolves and edits the per-locale overlays of a form schema.
//
// The base field is the only structural source of truth. Overlays hold text
// for non-default locales and are consulted first; anything they do not
// carry falls back to the base. Writes in a non-default locale touch only the
// overlay, creating it on demand.
package i18n
