package render

import (
	"context"
)

// Renderer converts a Plan into a byte representation (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, plan Plan, options RenderOptions) ([]byte, error)
}
