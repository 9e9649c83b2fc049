package orchestrator

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Transformer mutates a schema before it is projected. Implementations can
// relabel fields, inject overlays or hide options per request. The result must
// still validate.
type Transformer interface {
	Transform(ctx context.Context, schema *model.FormSchema) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, schema *model.FormSchema) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, schema *model.FormSchema) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, schema)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, schema *model.FormSchema) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, schema); err != nil {
				return err
			}
		}
		return nil
	})
}
