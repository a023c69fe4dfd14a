package fields

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind enumerates the default value shapes the rendered document can carry.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a field default. The zero Value is null, which is what a field
// without a `default` key carries.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean default.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer default.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating point default.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string default.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence wraps a list of values.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: append([]Value(nil), items...)}
}

// Kind reports the value shape.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Items returns a copy of the sequence elements; nil for scalars.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// Interface returns the plain Go representation: nil, bool, int64, float64,
// string or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.items))
		for idx, item := range v.items {
			out[idx] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Node()
}

// Node builds the YAML node for the value. Floats always carry a fraction,
// exponent or special form so they read back as floats.
func (v Value) Node() (*yaml.Node, error) {
	switch v.kind {
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: floatText(v.f)}, nil
	case KindSequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for idx, item := range v.items {
			child, err := item.Node()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", idx, err)
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v.Interface()); err != nil {
			return nil, err
		}
		return node, nil
	}
}

func floatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}

// String renders the value for diagnostics and prompt defaults.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindSequence:
		parts := make([]string, len(v.items))
		for idx, item := range v.items {
			parts[idx] = item.String()
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// ValueFromNode converts a decoded YAML node into a Value. Mappings are
// rejected since fields carry only scalar or sequence defaults.
func ValueFromNode(node *yaml.Node) (Value, error) {
	if node == nil {
		return Null(), nil
	}
	switch node.Kind {
	case yaml.AliasNode:
		return ValueFromNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for idx, child := range node.Content {
			item, err := ValueFromNode(child)
			if err != nil {
				return Value{}, fmt.Errorf("item %d: %w", idx, err)
			}
			items = append(items, item)
		}
		return Value{kind: KindSequence, items: items}, nil
	case yaml.MappingNode:
		return Value{}, fmt.Errorf("mapping values are not supported (line %d)", node.Line)
	case yaml.ScalarNode:
		return scalarValue(node)
	default:
		return Value{}, fmt.Errorf("unsupported node kind %d (line %d)", node.Kind, node.Line)
	}
}

func scalarValue(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!str", "!!timestamp":
		return String(node.Value), nil
	default:
		return Value{}, fmt.Errorf("unsupported scalar tag %s (line %d)", node.ShortTag(), node.Line)
	}
}
