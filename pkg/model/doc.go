// Package model defines the form schema: the sealed Field union, per-type
// option payloads, locale overlays and the FormSchema that composes them.
//
// Fields are value types. Every edit produces a new value (see Clone and
// WithBase) so a schema handed to a renderer is never mutated behind its back.
// Groups hold LeafFields, which GroupField does not implement, so nesting is
// bounded to one level by the type system rather than by runtime checks.
// Validate reports the remaining invariants (id uniqueness, locale closure,
// default values) as a *ValidationError.
package model
