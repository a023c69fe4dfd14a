package fields

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section headings of the rendered document.
const (
	DefaultsHeading   = "Defaults:"
	ValidatorsHeading = "Validators:"
	SectionSeparator  = "---"
)

// Registry is the ordered collection of fields built from one schema.
// Iteration order is insertion order. Names are not deduplicated here.
type Registry struct {
	fields []Field
}

// NewRegistry returns a registry holding fields in the given order.
func NewRegistry(fields ...Field) *Registry {
	r := &Registry{}
	for _, field := range fields {
		r.Append(field)
	}
	return r
}

// Append adds field to the end of the registry.
func (r *Registry) Append(field Field) {
	r.fields = append(r.fields, field)
}

// Len returns the number of fields.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns a copy of the fields in registry order.
func (r *Registry) Fields() []Field {
	if r == nil {
		return nil
	}
	return append([]Field(nil), r.fields...)
}

// Field returns the first field called name.
func (r *Registry) Field(name string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	for _, field := range r.fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// DefaultsNode builds the defaults mapping as a YAML node, keyed in registry
// order. Fields without a default map to null.
func (r *Registry) DefaultsNode(opts RenderOptions) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range r.Fields() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name}
		if opts.Descriptions && field.Description != "" {
			key.HeadComment = commentText(field.Description)
		}
		value, err := field.Default.Node()
		if err != nil {
			return nil, fmt.Errorf("fields: encode default for %q: %w", field.Name, err)
		}
		root.Content = append(root.Content, key, value)
	}
	return root, nil
}

// RenderDefaults serializes the name to default mapping.
func (r *Registry) RenderDefaults(opts RenderOptions) (string, error) {
	node, err := r.DefaultsNode(opts)
	if err != nil {
		return "", err
	}
	out, err := EncodeYAML(node, opts)
	if err != nil {
		return "", fmt.Errorf("fields: render defaults: %w", err)
	}
	return out, nil
}

// RenderValidators newline-joins every field's rendered validators in
// registry order. Checkless fields contribute an empty entry unless
// opts.SkipEmpty is set.
func (r *Registry) RenderValidators(opts RenderOptions) (string, error) {
	blocks := make([]string, 0, r.Len())
	for _, field := range r.Fields() {
		rendered, err := field.RenderValidators(opts)
		if err != nil {
			return "", err
		}
		if rendered == "" && opts.SkipEmpty {
			continue
		}
		blocks = append(blocks, rendered)
	}
	return strings.Join(blocks, "\n"), nil
}

// Render produces the complete defaults and validators document.
func (r *Registry) Render(opts RenderOptions) (string, error) {
	defaults, err := r.RenderDefaults(opts)
	if err != nil {
		return "", err
	}
	validators, err := r.RenderValidators(opts)
	if err != nil {
		return "", err
	}
	lines := []string{
		DefaultsHeading,
		SectionSeparator,
		defaults,
		ValidatorsHeading,
		SectionSeparator,
		validators,
	}
	return strings.Join(lines, "\n"), nil
}

func commentText(description string) string {
	lines := strings.Split(strings.TrimSpace(description), "\n")
	for idx, line := range lines {
		lines[idx] = "# " + strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
