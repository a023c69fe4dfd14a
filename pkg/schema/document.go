package schema

import (
	"errors"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

// Document is a field schema payload paired with where it was read from.
// Parse consumes it; the location shows up in load errors.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument copies raw so later edits by the caller do not leak into a
// compiled schema. A missing source or empty payload is a SchemaLoadError.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, &fields.SchemaLoadError{Err: errors.New("schema source is required")}
	}
	if len(raw) == 0 {
		return Document{}, &fields.SchemaLoadError{Source: src.Location(), Err: errors.New("schema file is empty")}
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument is NewDocument for schemas embedded in code; it panics on
// a missing source or empty payload.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the schema bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location names the schema origin, or "" for a zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
