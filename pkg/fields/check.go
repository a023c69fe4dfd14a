package fields

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// UnixPathTag is the scalar check descriptor for UnixPathValidator.
	UnixPathTag = "unix_path"
	// ChoicesKey is the mapping key selecting ChoicesValidator.
	ChoicesKey = "choices"
)

// CheckDescriptor is the declarative form of a check as it appears in the
// schema: either a bare tag (`unix_path`) or a mapping (`{choices: [...]}`).
type CheckDescriptor struct {
	Tag    string
	Params map[string]any
}

// UnixPathCheck returns the descriptor for the unix path check.
func UnixPathCheck() CheckDescriptor {
	return CheckDescriptor{Tag: UnixPathTag}
}

// ChoicesCheck returns the descriptor for a choices check.
func ChoicesCheck(choices ...string) CheckDescriptor {
	list := make([]any, len(choices))
	for idx, choice := range choices {
		list[idx] = choice
	}
	return CheckDescriptor{Params: map[string]any{ChoicesKey: list}}
}

// IsMapping reports whether the descriptor uses the mapping form.
func (d CheckDescriptor) IsMapping() bool {
	return d.Params != nil
}

// String formats the descriptor for error messages.
func (d CheckDescriptor) String() string {
	if !d.IsMapping() {
		return fmt.Sprintf("%q", d.Tag)
	}
	keys := make([]string, 0, len(d.Params))
	for key := range d.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for idx, key := range keys {
		parts[idx] = fmt.Sprintf("%s: %v", key, d.Params[key])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// CheckFromNode decodes one item of a field's `checks` sequence.
func CheckFromNode(node *yaml.Node) (CheckDescriptor, error) {
	if node == nil {
		return CheckDescriptor{}, fmt.Errorf("check is empty")
	}
	switch node.Kind {
	case yaml.AliasNode:
		return CheckFromNode(node.Alias)
	case yaml.ScalarNode:
		return CheckDescriptor{Tag: node.Value}, nil
	case yaml.MappingNode:
		params := make(map[string]any, len(node.Content)/2)
		if err := node.Decode(&params); err != nil {
			return CheckDescriptor{}, fmt.Errorf("decode check (line %d): %w", node.Line, err)
		}
		return CheckDescriptor{Params: params}, nil
	default:
		return CheckDescriptor{}, fmt.Errorf("check must be a tag or a mapping (line %d)", node.Line)
	}
}

// Resolve maps a descriptor to its validator. A mapping carrying `choices`
// wins over the `unix_path` tag; anything else is rejected.
func Resolve(d CheckDescriptor) (Validator, error) {
	if raw, ok := d.Params[ChoicesKey]; ok {
		choices, err := stringList(raw)
		if err != nil {
			return nil, &SchemaEntryError{Reason: "invalid choices", Err: err}
		}
		return ChoicesValidator{Choices: choices}, nil
	}
	if !d.IsMapping() && d.Tag == UnixPathTag {
		return UnixPathValidator{}, nil
	}
	return nil, &UnrecognizedCheckKindError{Descriptor: d.String()}
}

func stringList(raw any) ([]string, error) {
	var out []string
	switch list := raw.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		out = make([]string, 0, len(list))
		for idx, item := range list {
			value, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, want string", idx, item)
			}
			out = append(out, value)
		}
	default:
		return nil, fmt.Errorf("got %T, want a sequence of strings", raw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one choice is required")
	}
	return out, nil
}
