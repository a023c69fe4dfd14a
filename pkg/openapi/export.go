package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

const (
	// FieldOrderExtension lists the property names in registry order, since
	// JSON object keys carry no order.
	FieldOrderExtension = "x-field-order"
	// UnixPathFormat is the string format assigned to fields with a unix
	// path check.
	UnixPathFormat = "unix-path"
)

// Export describes the registry as an OpenAPI object schema with one property
// per field. Types come from the default value; choices become an enum.
func Export(registry *fields.Registry) (*openapi3.Schema, error) {
	if registry == nil {
		return nil, errors.New("openapi export: registry is required")
	}

	root := openapi3.NewObjectSchema()
	order := make([]any, 0, registry.Len())
	for _, field := range registry.Fields() {
		property, err := fieldSchema(field)
		if err != nil {
			return nil, err
		}
		root.Properties[field.Name] = openapi3.NewSchemaRef("", property)
		order = append(order, field.Name)
	}
	root.Extensions = map[string]any{FieldOrderExtension: order}
	return root, nil
}

func fieldSchema(field fields.Field) (*openapi3.Schema, error) {
	validators, err := field.Validators()
	if err != nil {
		return nil, fmt.Errorf("openapi export: %w", err)
	}

	property := valueSchema(field.Default)
	property.Description = field.Description
	if !field.Default.IsNull() {
		property.Default = field.Default.Interface()
	}

	for _, validator := range validators {
		switch v := validator.(type) {
		case fields.ChoicesValidator:
			if property.Type == nil {
				property.Type = &openapi3.Types{openapi3.TypeString}
			}
			property.Enum = make([]any, len(v.Choices))
			for idx, choice := range v.Choices {
				property.Enum[idx] = choice
			}
		case fields.UnixPathValidator:
			if property.Type == nil {
				property.Type = &openapi3.Types{openapi3.TypeString}
			}
			property.Format = UnixPathFormat
		default:
			return nil, fmt.Errorf("openapi export: field %q: no mapping for %T", field.Name, validator)
		}
	}
	return property, nil
}

func valueSchema(value fields.Value) *openapi3.Schema {
	switch value.Kind() {
	case fields.KindBool:
		return openapi3.NewBoolSchema()
	case fields.KindInt:
		return openapi3.NewIntegerSchema()
	case fields.KindFloat:
		return openapi3.NewFloat64Schema()
	case fields.KindString:
		return openapi3.NewStringSchema()
	case fields.KindSequence:
		array := openapi3.NewArraySchema()
		if item, ok := itemSchema(value.Items()); ok {
			array.Items = openapi3.NewSchemaRef("", item)
		} else {
			array.Items = openapi3.NewSchemaRef("", &openapi3.Schema{})
		}
		return array
	default:
		return &openapi3.Schema{Nullable: true}
	}
}

// itemSchema returns a schema for the items when they all share one kind.
func itemSchema(items []fields.Value) (*openapi3.Schema, bool) {
	if len(items) == 0 {
		return nil, false
	}
	kind := items[0].Kind()
	for _, item := range items[1:] {
		if item.Kind() != kind {
			return nil, false
		}
	}
	if kind == fields.KindNull {
		return nil, false
	}
	return valueSchema(items[0]), true
}
