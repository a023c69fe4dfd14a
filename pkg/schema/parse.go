package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

// Keys accepted inside a field entry.
const (
	KeyDescription = "description"
	KeyDefault     = "default"
	KeyChecks      = "checks"
)

// Parse decodes a schema document into fields, in document order. The
// document must be a mapping of field name to entry; each entry may only
// carry description, default and checks.
func Parse(doc Document) ([]fields.Field, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc.Raw(), &root); err != nil {
		return nil, &fields.SchemaLoadError{Source: doc.Location(), Err: err}
	}
	if len(root.Content) == 0 {
		return nil, &fields.SchemaLoadError{Source: doc.Location(), Err: errors.New("document is empty")}
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &fields.SchemaLoadError{
			Source: doc.Location(),
			Err:    fmt.Errorf("expected a mapping of fields, got %s (line %d)", nodeKindName(top.Kind), top.Line),
		}
	}

	if len(top.Content) == 0 {
		return nil, &fields.SchemaLoadError{Source: doc.Location(), Err: errors.New("schema declares no fields")}
	}

	out := make([]fields.Field, 0, len(top.Content)/2)
	seen := make(map[string]int, len(top.Content)/2)
	for idx := 0; idx+1 < len(top.Content); idx += 2 {
		keyNode, valueNode := top.Content[idx], top.Content[idx+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &fields.SchemaEntryError{
				Field:  fmt.Sprintf("line %d", keyNode.Line),
				Reason: "field name must be a scalar",
			}
		}
		name := keyNode.Value
		if name == "" {
			return nil, &fields.SchemaEntryError{
				Field:  fmt.Sprintf("line %d", keyNode.Line),
				Reason: "field name is empty",
			}
		}
		if line, exists := seen[name]; exists {
			return nil, &fields.SchemaEntryError{
				Field:  name,
				Reason: fmt.Sprintf("duplicate field name (first defined on line %d)", line),
			}
		}
		seen[name] = keyNode.Line

		field, err := parseEntry(name, valueNode)
		if err != nil {
			return nil, err
		}
		out = append(out, field)
	}

	return out, nil
}

func parseEntry(name string, node *yaml.Node) (fields.Field, error) {
	field := fields.Field{Name: name}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if isNull(node) {
		return field, nil
	}
	if node.Kind != yaml.MappingNode {
		return fields.Field{}, &fields.SchemaEntryError{
			Field:  name,
			Reason: fmt.Sprintf("entry must be a mapping, got %s (line %d)", nodeKindName(node.Kind), node.Line),
		}
	}

	seen := make(map[string]struct{}, 3)
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		keyNode, valueNode := node.Content[idx], node.Content[idx+1]
		key := keyNode.Value
		if _, dup := seen[key]; dup {
			return fields.Field{}, &fields.SchemaEntryError{Field: name, Reason: fmt.Sprintf("key %q repeated (line %d)", key, keyNode.Line)}
		}
		seen[key] = struct{}{}

		switch key {
		case KeyDescription:
			if isNull(valueNode) {
				continue
			}
			if valueNode.Kind != yaml.ScalarNode {
				return fields.Field{}, &fields.SchemaEntryError{Field: name, Reason: fmt.Sprintf("description must be a string (line %d)", valueNode.Line)}
			}
			field.Description = valueNode.Value
		case KeyDefault:
			value, err := fields.ValueFromNode(valueNode)
			if err != nil {
				return fields.Field{}, &fields.SchemaEntryError{Field: name, Reason: "invalid default", Err: err}
			}
			field.Default = value
		case KeyChecks:
			checks, err := parseChecks(valueNode)
			if err != nil {
				return fields.Field{}, &fields.SchemaEntryError{Field: name, Reason: "invalid checks", Err: err}
			}
			field.Checks = checks
		default:
			return fields.Field{}, &fields.SchemaEntryError{Field: name, Reason: fmt.Sprintf("unknown key %q (line %d)", key, keyNode.Line)}
		}
	}
	return field, nil
}

func parseChecks(node *yaml.Node) ([]fields.CheckDescriptor, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("checks must be a sequence, got %s (line %d)", nodeKindName(node.Kind), node.Line)
	}
	checks := make([]fields.CheckDescriptor, 0, len(node.Content))
	for idx, item := range node.Content {
		check, err := fields.CheckFromNode(item)
		if err != nil {
			return nil, fmt.Errorf("check %d: %w", idx, err)
		}
		checks = append(checks, check)
	}
	return checks, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
