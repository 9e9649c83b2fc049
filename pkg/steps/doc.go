// Package steps implements linear navigation over the groups of a step-mode
// schema, with an optional terminal response summary. Navigation past either
// end is a no-op and never an error.
package steps
