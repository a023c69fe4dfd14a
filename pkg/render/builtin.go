package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

// Names of the renderers registered by NewDefaultRegistry.
const (
	ReportName     = "report"
	DefaultsName   = "defaults"
	ValidatorsName = "validators"
)

const yamlContentType = "application/yaml"

type blockRenderer struct {
	name        string
	contentType string
	render      func(*fields.Registry, fields.RenderOptions) (string, error)
}

func (r blockRenderer) Name() string        { return r.name }
func (r blockRenderer) ContentType() string { return r.contentType }

func (r blockRenderer) Render(ctx context.Context, registry *fields.Registry, options fields.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, fmt.Errorf("render: %s: registry is required", r.name)
	}
	out, err := r.render(registry, options)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Report renders the four section defaults and validators document.
func Report() Renderer {
	return blockRenderer{
		name:        ReportName,
		contentType: "text/plain",
		render:      (*fields.Registry).Render,
	}
}

// Defaults renders only the defaults mapping.
func Defaults() Renderer {
	return blockRenderer{
		name:        DefaultsName,
		contentType: yamlContentType,
		render:      (*fields.Registry).RenderDefaults,
	}
}

// Validators renders only the validator task list.
func Validators() Renderer {
	return blockRenderer{
		name:        ValidatorsName,
		contentType: yamlContentType,
		render:      (*fields.Registry).RenderValidators,
	}
}

// NewDefaultRegistry returns a registry holding the report, defaults and
// validators renderers.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(Report())
	registry.MustRegister(Defaults())
	registry.MustRegister(Validators())
	return registry
}
