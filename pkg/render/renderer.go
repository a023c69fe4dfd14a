package render

import (
	"context"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

// Renderer converts a field registry into an output document.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, registry *fields.Registry, options fields.RenderOptions) ([]byte, error)
}
