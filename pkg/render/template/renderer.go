package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/render"
)

// RendererName is the default registry name of a template renderer.
const RendererName = "template"

// Option configures the template renderer before construction.
type Option func(*config)

type config struct {
	name      string
	baseDir   string
	templates fs.FS
}

// WithName overrides the registry name, so several templates can be
// registered side by side.
func WithName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithBaseDir loads templates and includes from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates and includes from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// Renderer satisfies render.Renderer using a compiled pongo2 template.
type Renderer struct {
	name string
	tpl  *pongo2.Template
}

var _ render.Renderer = (*Renderer)(nil)

// New compiles source as a pongo2 template.
func New(source string, options ...Option) (*Renderer, error) {
	cfg := newConfig(options...)
	set, err := newSet(cfg)
	if err != nil {
		return nil, err
	}
	tpl, err := set.FromString("{% autoescape off %}" + source + "{% endautoescape %}")
	if err != nil {
		return nil, fmt.Errorf("template: compile: %w", err)
	}
	return &Renderer{name: cfg.name, tpl: tpl}, nil
}

// Load reads the template called name from the configured fs.FS, or from the
// base directory when no fs.FS is set, and compiles it.
func Load(name string, options ...Option) (*Renderer, error) {
	cfg := newConfig(options...)
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("template: name is required")
	}

	var (
		data []byte
		err  error
	)
	if cfg.templates != nil {
		data, err = fs.ReadFile(cfg.templates, name)
	} else {
		data, err = os.ReadFile(filepath.Join(cfg.baseDir, name))
	}
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", name, err)
	}
	return New(string(data), options...)
}

func newConfig(options ...Option) *config {
	cfg := &config{name: RendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

func newSet(cfg *config) (*pongo2.TemplateSet, error) {
	var loaders []pongo2.TemplateLoader
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if cfg.baseDir != "" || len(loaders) == 0 {
		dir := cfg.baseDir
		if dir == "" {
			dir = "."
		}
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return nil, fmt.Errorf("template: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	return pongo2.NewSet("fieldrules", loaders...), nil
}

func (r *Renderer) Name() string { return r.name }

func (r *Renderer) ContentType() string { return "text/plain" }

// Render executes the template. The context exposes `fields` (name,
// description, default, validators with message and when), and the rendered
// `defaults`, `validators` and `report` blocks.
func (r *Renderer) Render(ctx context.Context, registry *fields.Registry, options fields.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, errors.New("template: registry is required")
	}

	data, err := buildContext(registry, options)
	if err != nil {
		return nil, err
	}
	out, err := r.tpl.Execute(data)
	if err != nil {
		return nil, fmt.Errorf("template: execute %s: %w", r.name, err)
	}
	return []byte(out), nil
}

func buildContext(registry *fields.Registry, options fields.RenderOptions) (pongo2.Context, error) {
	defaults, err := registry.RenderDefaults(options)
	if err != nil {
		return nil, err
	}
	validators, err := registry.RenderValidators(options)
	if err != nil {
		return nil, err
	}
	report, err := registry.Render(options)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]any, 0, registry.Len())
	for _, field := range registry.Fields() {
		resolved, err := field.Validators()
		if err != nil {
			return nil, err
		}
		rules := make([]map[string]any, 0, len(resolved))
		for _, validator := range resolved {
			rules = append(rules, map[string]any{
				"message": validator.Message(),
				"when":    validator.FailureCondition(field),
			})
		}
		items = append(items, map[string]any{
			"name":        field.Name,
			"description": field.Description,
			"default":     field.Default.Interface(),
			"validators":  rules,
		})
	}

	return pongo2.Context{
		"fields":     items,
		"defaults":   defaults,
		"validators": validators,
		"report":     report,
	}, nil
}
