package fields

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// DefaultIndent is the block indentation used when RenderOptions.Indent is unset.
const DefaultIndent = 2

// RenderOptions configures serialization of the defaults and validators
// blocks. Output is always block style without a document start marker.
type RenderOptions struct {
	// Indent sets the YAML block indentation. Zero selects DefaultIndent.
	Indent int
	// SkipEmpty drops the blank entries that checkless fields contribute to
	// the validators block.
	SkipEmpty bool
	// Descriptions emits each field description as a comment above its key
	// in the defaults block.
	Descriptions bool
}

// DefaultRenderOptions returns the options matching the historical output.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Indent: DefaultIndent}
}

func (o RenderOptions) indent() int {
	if o.Indent <= 0 {
		return DefaultIndent
	}
	return o.Indent
}

// EncodeYAML serializes value in block style with the configured indent.
func EncodeYAML(value any, opts RenderOptions) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(opts.indent())
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
