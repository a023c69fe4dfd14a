package fields

import (
	"errors"
	"strings"
)

// Field is one named configuration entry.
type Field struct {
	Name        string
	Description string
	Default     Value
	Checks      []CheckDescriptor
}

// NewField constructs a Field with the given checks and a null default.
func NewField(name string, checks ...CheckDescriptor) Field {
	return Field{Name: name, Checks: checks}
}

// Validators resolves every check in order. A new set of validators is
// returned on each call.
func (f Field) Validators() ([]Validator, error) {
	out := make([]Validator, 0, len(f.Checks))
	for idx, check := range f.Checks {
		validator, err := Resolve(check)
		if err != nil {
			return nil, f.annotate(err, idx)
		}
		out = append(out, validator)
	}
	return out, nil
}

// RenderValidators joins the rendered rule of each check with newlines. A
// field without checks renders as an empty string.
func (f Field) RenderValidators(opts RenderOptions) (string, error) {
	validators, err := f.Validators()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(validators))
	for _, validator := range validators {
		rendered, err := RenderValidator(validator, f, opts)
		if err != nil {
			return "", err
		}
		lines = append(lines, rendered)
	}
	return strings.Join(lines, "\n"), nil
}

func (f Field) annotate(err error, idx int) error {
	var unknown *UnrecognizedCheckKindError
	if errors.As(err, &unknown) {
		unknown.Field = f.Name
		unknown.Index = idx
		return unknown
	}
	var entry *SchemaEntryError
	if errors.As(err, &entry) {
		entry.Field = f.Name
		return entry
	}
	return err
}
