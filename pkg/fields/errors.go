package fields

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrSchemaLoad            = errors.New("schema load failed")
	ErrSchemaEntry           = errors.New("invalid schema entry")
	ErrUnrecognizedCheckKind = errors.New("unrecognized check kind")
)

// SchemaLoadError reports a schema source that is missing, unreadable, or not a
// mapping of field entries.
type SchemaLoadError struct {
	Source string
	Err    error
}

func (e *SchemaLoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("fields: load schema: %v", e.Err)
	}
	return fmt.Sprintf("fields: load schema %s: %v", e.Source, e.Err)
}

func (e *SchemaLoadError) Unwrap() error { return e.Err }

func (e *SchemaLoadError) Is(target error) bool { return target == ErrSchemaLoad }

// SchemaEntryError reports a malformed field entry: wrong shape, unknown keys,
// a duplicate name or an invalid check payload.
type SchemaEntryError struct {
	Field  string
	Reason string
	Err    error
}

func (e *SchemaEntryError) Error() string {
	msg := fmt.Sprintf("fields: field %q: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaEntryError) Unwrap() error { return e.Err }

func (e *SchemaEntryError) Is(target error) bool { return target == ErrSchemaEntry }

// UnrecognizedCheckKindError reports a check descriptor that matches no
// validator variant. Index is the position of the check within the field.
type UnrecognizedCheckKindError struct {
	Field      string
	Index      int
	Descriptor string
}

func (e *UnrecognizedCheckKindError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("fields: unrecognized check %s", e.Descriptor)
	}
	return fmt.Sprintf("fields: field %q check %d: unrecognized check %s", e.Field, e.Index, e.Descriptor)
}

func (e *UnrecognizedCheckKindError) Is(target error) bool {
	return target == ErrUnrecognizedCheckKind
}
