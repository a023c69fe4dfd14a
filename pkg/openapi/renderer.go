package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/render"
)

// RendererName identifies the OpenAPI renderer in a render.Registry.
const RendererName = "openapi"

// Renderer writes the exported schema as indented JSON.
type Renderer struct{}

var _ render.Renderer = Renderer{}

// NewRenderer returns the OpenAPI schema renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Name() string { return RendererName }

func (Renderer) ContentType() string { return "application/json" }

func (Renderer) Render(ctx context.Context, registry *fields.Registry, _ fields.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	schema, err := Export(registry)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi export: marshal: %w", err)
	}
	return append(payload, '\n'), nil
}
