// Package render projects a form schema, a locale and live answers into a
// Plan that every presentation layer draws from. The live preview and the
// real form use the same projection, so field order, localisation fallback
// and the step/summary flow cannot drift apart.
//
// Project never mutates its inputs. Apply folds a UI edit into a fresh Values
// map and BuildSubmission produces the payload handed to the submission sink.
package render
