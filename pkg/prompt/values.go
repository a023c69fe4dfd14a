package prompt

import (
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// Answer is the value chosen for one field.
type Answer struct {
	Name        string
	Description string
	Value       fields.Value
}

// Values holds answers in registry order.
type Values struct {
	Answers []Answer
}

// Get returns the answer for name.
func (v Values) Get(name string) (fields.Value, bool) {
	for _, answer := range v.Answers {
		if answer.Name == name {
			return answer.Value, true
		}
	}
	return fields.Value{}, false
}

// Render serializes the answers as a YAML mapping in registry order, with
// descriptions as comments when opts.Descriptions is set.
func (v Values) Render(opts fields.RenderOptions) (string, error) {
	registry := fields.NewRegistry()
	for _, answer := range v.Answers {
		registry.Append(fields.Field{Name: answer.Name, Description: answer.Description, Default: answer.Value})
	}
	out, err := registry.RenderDefaults(opts)
	if err != nil {
		return "", fmt.Errorf("prompt: render values: %w", err)
	}
	return out, nil
}

// Collect asks for a value for every field, offering its default. Fields with
// a choices check use a select prompt, boolean defaults a confirm prompt and
// everything else a text input parsed back into the default's kind.
func Collect(ctx context.Context, registry *fields.Registry, driver Driver) (Values, error) {
	if driver == nil {
		return Values{}, fmt.Errorf("prompt: driver is required")
	}
	var out Values
	for _, field := range registry.Fields() {
		value, err := ask(ctx, field, driver)
		if err != nil {
			return Values{}, err
		}
		out.Answers = append(out.Answers, Answer{Name: field.Name, Description: field.Description, Value: value})
	}
	return out, nil
}

func ask(ctx context.Context, field fields.Field, driver Driver) (fields.Value, error) {
	validators, err := field.Validators()
	if err != nil {
		return fields.Value{}, err
	}
	help := helpText(field.Description)

	for _, validator := range validators {
		choices, ok := validator.(fields.ChoicesValidator)
		if !ok {
			continue
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      field.Name,
			Options:      choices.Choices,
			DefaultIndex: indexOf(choices.Choices, field.Default.String()),
			Help:         help,
		})
		if err != nil {
			return fields.Value{}, err
		}
		if idx < 0 || idx >= len(choices.Choices) {
			return fields.Value{}, fmt.Errorf("prompt: field %q: selection out of range", field.Name)
		}
		return fields.String(choices.Choices[idx]), nil
	}

	if field.Default.Kind() == fields.KindBool {
		answer, err := driver.Confirm(ctx, ConfirmConfig{
			Message: field.Name,
			Default: field.Default.Interface().(bool),
			Help:    help,
		})
		if err != nil {
			return fields.Value{}, err
		}
		return fields.Bool(answer), nil
	}

	raw, err := driver.Input(ctx, InputConfig{
		Message: field.Name,
		Default: field.Default.String(),
		Help:    help,
		Validator: func(input string) error {
			_, err := parseAs(field.Default, input)
			return err
		},
	})
	if err != nil {
		return fields.Value{}, err
	}
	value, err := parseAs(field.Default, raw)
	if err != nil {
		return fields.Value{}, fmt.Errorf("prompt: field %q: %w", field.Name, err)
	}
	return value, nil
}

// parseAs converts raw into the kind of like. Null defaults accept any text;
// an empty answer for them stays null.
func parseAs(like fields.Value, raw string) (fields.Value, error) {
	trimmed := strings.TrimSpace(raw)
	switch like.Kind() {
	case fields.KindNull:
		if trimmed == "" {
			return fields.Null(), nil
		}
		return fields.String(raw), nil
	case fields.KindBool:
		b, err := strconv.ParseBool(trimmed)
		if err != nil {
			return fields.Value{}, fmt.Errorf("%q is not a boolean", raw)
		}
		return fields.Bool(b), nil
	case fields.KindInt:
		i, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return fields.Value{}, fmt.Errorf("%q is not an integer", raw)
		}
		return fields.Int(i), nil
	case fields.KindFloat:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fields.Value{}, fmt.Errorf("%q is not a number", raw)
		}
		return fields.Float(f), nil
	case fields.KindSequence:
		if trimmed == "" {
			return fields.Sequence(), nil
		}
		var item fields.Value
		if items := like.Items(); len(items) > 0 {
			item = items[0]
		}
		if item.IsNull() || item.Kind() == fields.KindSequence {
			item = fields.String("")
		}
		parts := strings.Split(trimmed, ",")
		values := make([]fields.Value, 0, len(parts))
		for _, part := range parts {
			value, err := parseAs(item, strings.TrimSpace(part))
			if err != nil {
				return fields.Value{}, err
			}
			values = append(values, value)
		}
		return fields.Sequence(values...), nil
	default:
		return fields.String(raw), nil
	}
}

func helpText(description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ""
	}
	helpPolicyOnce.Do(func() {
		helpPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(helpPolicy.Sanitize(trimmed)))
}
