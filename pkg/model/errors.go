package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFieldType is returned when a field's type is missing or unknown.
	ErrUnknownFieldType = errors.New("model: unknown field type")
	// ErrNestedGroup is returned when a group appears inside another group.
	ErrNestedGroup = errors.New("model: groups cannot contain groups")
	// ErrMissingID is returned for fields or options without an id.
	ErrMissingID = errors.New("model: id is required")
	// ErrDuplicateID is returned when two fields share an id.
	ErrDuplicateID = errors.New("model: duplicate field id")
	// ErrDuplicateOptionID is returned when two options of one field share an id.
	ErrDuplicateOptionID = errors.New("model: duplicate option id")
	// ErrInvalidDefault is returned when a default value does not reference a
	// non-empty option value.
	ErrInvalidDefault = errors.New("model: default value does not reference an option")
	// ErrLocaleClosure is returned when locales break the supported set.
	ErrLocaleClosure = errors.New("model: locale is not supported")
)

// Issue is one invariant violation found by Validate.
type Issue struct {
	Path    string
	Err     error
	Message string
}

func (i Issue) Error() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func (i Issue) Unwrap() error { return i.Err }

// ValidationError aggregates every issue found in a schema.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "model: invalid schema"
	}
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Error()
	}
	return fmt.Sprintf("model: invalid schema: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes every issue to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		out[i] = issue
	}
	return out
}

func (e *ValidationError) add(path string, err error, format string, args ...any) {
	e.Issues = append(e.Issues, Issue{
		Path:    path,
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	})
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}
