package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	internalLoader "github.com/goliatone/go-fieldrules/internal/schema/loader"
	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/schema"
)

// Option customises the manager configuration.
type Option func(*Manager)

// WithLoader injects a custom schema loader.
func WithLoader(loader schema.Loader) Option {
	return func(m *Manager) {
		m.loader = loader
	}
}

// WithFS supplies the fs.FS used by the default loader for schema.SourceFromFS
// sources. Ignored when WithLoader is set.
func WithFS(fsys fs.FS) Option {
	return func(m *Manager) {
		m.fsys = fsys
	}
}

// WithRenderOptions overrides the serialization options used by Render.
func WithRenderOptions(opts fields.RenderOptions) Option {
	return func(m *Manager) {
		m.renderOptions = opts
	}
}

// WithLogger routes build diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager owns the field registry built from one schema source. It is
// read-only once constructed, so repeated renders return identical output.
type Manager struct {
	loader        schema.Loader
	fsys          fs.FS
	renderOptions fields.RenderOptions
	logger        *slog.Logger

	location string
	registry *fields.Registry
}

// New loads src, parses it and builds the registry. Every check is resolved
// once up front so unknown check kinds fail here rather than at render time.
func New(ctx context.Context, src schema.Source, options ...Option) (*Manager, error) {
	m := newManager(options...)
	if src == nil {
		return nil, &fields.SchemaLoadError{Err: errors.New("source is required")}
	}

	doc, err := m.loader.Load(ctx, src)
	if err != nil {
		var loadErr *fields.SchemaLoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &fields.SchemaLoadError{Source: src.Location(), Err: err}
	}
	if err := m.build(doc); err != nil {
		return nil, err
	}
	return m, nil
}

// FromDocument builds a Manager from an already loaded document.
func FromDocument(_ context.Context, doc schema.Document, options ...Option) (*Manager, error) {
	m := newManager(options...)
	if err := m.build(doc); err != nil {
		return nil, err
	}
	return m, nil
}

func newManager(options ...Option) *Manager {
	m := &Manager{renderOptions: fields.DefaultRenderOptions()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.loader == nil {
		m.loader = internalLoader.New(schema.NewLoaderOptions(schema.WithFileSystem(m.fsys)))
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

func (m *Manager) build(doc schema.Document) error {
	m.location = doc.Location()
	parsed, err := schema.Parse(doc)
	if err != nil {
		return err
	}

	registry := fields.NewRegistry()
	for _, field := range parsed {
		validators, err := field.Validators()
		if err != nil {
			return err
		}
		m.logger.Debug("field compiled",
			"source", m.location,
			"field", field.Name,
			"default_kind", field.Default.Kind().String(),
			"validators", len(validators),
		)
		registry.Append(field)
	}

	m.registry = registry
	m.logger.Info("schema compiled", "source", m.location, "fields", registry.Len())
	return nil
}

// Location returns the identifier of the schema source.
func (m *Manager) Location() string {
	return m.location
}

// Len returns the number of fields in the registry.
func (m *Manager) Len() int {
	return m.registry.Len()
}

// Registry returns a copy of the field registry.
func (m *Manager) Registry() *fields.Registry {
	return fields.NewRegistry(m.registry.Fields()...)
}

// RenderOptions returns the serialization options in effect.
func (m *Manager) RenderOptions() fields.RenderOptions {
	return m.renderOptions
}

// Render produces the full defaults and validators document.
func (m *Manager) Render() (string, error) {
	out, err := m.registry.Render(m.renderOptions)
	if err != nil {
		return "", fmt.Errorf("manager: render %s: %w", m.location, err)
	}
	return out, nil
}

// GetValidation is a synonym for Render.
func (m *Manager) GetValidation() (string, error) {
	return m.Render()
}

// RenderDefaults produces only the defaults block.
func (m *Manager) RenderDefaults() (string, error) {
	return m.registry.RenderDefaults(m.renderOptions)
}

// RenderValidators produces only the validators block.
func (m *Manager) RenderValidators() (string, error) {
	return m.registry.RenderValidators(m.renderOptions)
}
