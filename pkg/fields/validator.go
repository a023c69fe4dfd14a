package fields

import (
	"fmt"
	"strings"
)

// Validator is one failure condition attached to a field.
type Validator interface {
	// Message is the human readable failure description.
	Message() string
	// FailureCondition is a rule-engine expression that evaluates to true
	// when the field value is invalid.
	FailureCondition(field Field) string
}

// UnixPathValidator fails when the value cannot be treated as a path.
type UnixPathValidator struct{}

func (UnixPathValidator) Message() string {
	return "Value is not an unix path"
}

func (UnixPathValidator) FailureCondition(field Field) string {
	return fmt.Sprintf("not %s | dirname", field.Name)
}

// ChoicesValidator fails when the value is not one of Choices.
type ChoicesValidator struct {
	Choices []string
}

func (v ChoicesValidator) Message() string {
	return `Value should be one of "` + strings.Join(v.Choices, ", ") + `"`
}

func (v ChoicesValidator) FailureCondition(field Field) string {
	return fmt.Sprintf(`%s not in ["%s"]`, field.Name, strings.Join(v.Choices, `", "`))
}

type failAction struct {
	Msg string `yaml:"msg"`
}

type ruleTask struct {
	Fail failAction `yaml:"fail"`
	When string     `yaml:"when"`
}

// RenderValidator serializes v as a single-task rule list for field.
func RenderValidator(v Validator, field Field, opts RenderOptions) (string, error) {
	tasks := []ruleTask{{
		Fail: failAction{Msg: v.Message()},
		When: v.FailureCondition(field),
	}}
	out, err := EncodeYAML(tasks, opts)
	if err != nil {
		return "", fmt.Errorf("fields: render validator for %q: %w", field.Name, err)
	}
	return out, nil
}
