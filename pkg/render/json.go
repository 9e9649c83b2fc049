package render

import (
	"context"
	"encoding/json"
)

// JSONRenderer emits the plan itself, indented. Useful for client-side
// presentation layers and for debugging projections.
type JSONRenderer struct{}

// NewJSONRenderer returns the plan JSON renderer.
func NewJSONRenderer() JSONRenderer {
	return JSONRenderer{}
}

func (JSONRenderer) Name() string        { return "json" }
func (JSONRenderer) ContentType() string { return "application/json" }

// Render ignores options; hidden fields and actions belong to markup renderers.
func (JSONRenderer) Render(ctx context.Context, plan Plan, _ RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(plan, "", "  ")
}
