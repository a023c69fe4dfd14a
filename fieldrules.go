package fieldrules

import (
	"context"
	"fmt"

	internalLoader "github.com/goliatone/go-fieldrules/internal/schema/loader"
	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/manager"
	"github.com/goliatone/go-fieldrules/pkg/openapi"
	"github.com/goliatone/go-fieldrules/pkg/render"
	"github.com/goliatone/go-fieldrules/pkg/schema"
)

// RenderOptions aliases fields.RenderOptions for callers that only import the
// root package.
type RenderOptions = fields.RenderOptions

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...schema.LoaderOption) schema.Loader {
	return internalLoader.New(schema.NewLoaderOptions(options...))
}

// NewManager exposes the manager constructor from the top-level module.
func NewManager(ctx context.Context, src schema.Source, options ...manager.Option) (*manager.Manager, error) {
	return manager.New(ctx, src, options...)
}

// NewRendererRegistry returns a registry with the built-in report, defaults,
// validators and openapi renderers plus any extra renderers supplied.
func NewRendererRegistry(extra ...render.Renderer) (*render.Registry, error) {
	registry := render.NewDefaultRegistry()
	if err := registry.Register(openapi.NewRenderer()); err != nil {
		return nil, err
	}
	for _, renderer := range extra {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Generate loads the schema at src and renders it with the named renderer.
// It is the simplest entry point for callers that just want the report.
func Generate(ctx context.Context, src schema.Source, rendererName string, options ...manager.Option) ([]byte, error) {
	m, err := manager.New(ctx, src, options...)
	if err != nil {
		return nil, err
	}
	registry, err := NewRendererRegistry()
	if err != nil {
		return nil, err
	}
	if rendererName == "" {
		rendererName = render.ReportName
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, m.Registry(), m.RenderOptions())
	if err != nil {
		return nil, fmt.Errorf("fieldrules: %s: %w", rendererName, err)
	}
	return out, nil
}
