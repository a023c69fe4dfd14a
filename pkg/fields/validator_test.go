package fields_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldrules/pkg/fields"
)

func TestChoicesValidator_Message(t *testing.T) {
	v := fields.ChoicesValidator{Choices: []string{"a", "b"}}
	if got, want := v.Message(), `Value should be one of "a, b"`; got != want {
		t.Fatalf("message mismatch: got %q want %q", got, want)
	}
}

func TestChoicesValidator_FailureCondition(t *testing.T) {
	v := fields.ChoicesValidator{Choices: []string{"x", "y"}}
	got := v.FailureCondition(fields.NewField("mode"))
	if want := `mode not in ["x", "y"]`; got != want {
		t.Fatalf("condition mismatch: got %q want %q", got, want)
	}
}

func TestUnixPathValidator(t *testing.T) {
	v := fields.UnixPathValidator{}
	if got, want := v.Message(), "Value is not an unix path"; got != want {
		t.Fatalf("message mismatch: got %q want %q", got, want)
	}
	if got, want := v.FailureCondition(fields.NewField("path")), "not path | dirname"; got != want {
		t.Fatalf("condition mismatch: got %q want %q", got, want)
	}
}

func TestRenderValidator_Structure(t *testing.T) {
	field := fields.NewField("env")
	out, err := fields.RenderValidator(fields.ChoicesValidator{Choices: []string{"prod", "dev"}}, field, fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.HasPrefix(out, "---") {
		t.Fatalf("unexpected document marker in %q", out)
	}
	if strings.Contains(out, "{") {
		t.Fatalf("expected block style output, got %q", out)
	}

	var got []map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal rendered rule: %v", err)
	}
	want := []map[string]any{{
		"fail": map[string]any{"msg": `Value should be one of "prod, dev"`},
		"when": `env not in ["prod", "dev"]`,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderValidator_KeyOrder(t *testing.T) {
	out, err := fields.RenderValidator(fields.UnixPathValidator{}, fields.NewField("home"), fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	failIdx := strings.Index(out, "fail:")
	whenIdx := strings.Index(out, "when:")
	if failIdx < 0 || whenIdx < 0 || failIdx > whenIdx {
		t.Fatalf("expected fail before when, got %q", out)
	}
	if !strings.Contains(out, "when: not home | dirname") {
		t.Fatalf("expected plain when condition, got %q", out)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		check   fields.CheckDescriptor
		want    fields.Validator
		wantErr error
	}{
		{
			name:  "unix path tag",
			check: fields.UnixPathCheck(),
			want:  fields.UnixPathValidator{},
		},
		{
			name:  "choices mapping",
			check: fields.ChoicesCheck("a", "b"),
			want:  fields.ChoicesValidator{Choices: []string{"a", "b"}},
		},
		{
			name: "choices wins over other keys",
			check: fields.CheckDescriptor{
				Tag:    fields.UnixPathTag,
				Params: map[string]any{"choices": []any{"x"}, "other": true},
			},
			want: fields.ChoicesValidator{Choices: []string{"x"}},
		},
		{
			name:    "unknown tag",
			check:   fields.CheckDescriptor{Tag: "email"},
			wantErr: fields.ErrUnrecognizedCheckKind,
		},
		{
			name:    "mapping without choices",
			check:   fields.CheckDescriptor{Params: map[string]any{"regex": "^a"}},
			wantErr: fields.ErrUnrecognizedCheckKind,
		},
		{
			name:    "empty choices",
			check:   fields.CheckDescriptor{Params: map[string]any{"choices": []any{}}},
			wantErr: fields.ErrSchemaEntry,
		},
		{
			name:    "non string choices",
			check:   fields.CheckDescriptor{Params: map[string]any{"choices": []any{"a", 2}}},
			wantErr: fields.ErrSchemaEntry,
		},
		{
			name:    "choices not a list",
			check:   fields.CheckDescriptor{Params: map[string]any{"choices": "a"}},
			wantErr: fields.ErrSchemaEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fields.Resolve(tt.check)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("validator mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckFromNode(t *testing.T) {
	var doc yaml.Node
	src := "- unix_path\n- choices:\n    - a\n    - b\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	seq := doc.Content[0]

	first, err := fields.CheckFromNode(seq.Content[0])
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	if first.IsMapping() || first.Tag != fields.UnixPathTag {
		t.Fatalf("expected unix_path tag, got %+v", first)
	}

	second, err := fields.CheckFromNode(seq.Content[1])
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	validator, err := fields.Resolve(second)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff(fields.ChoicesValidator{Choices: []string{"a", "b"}}, validator); diff != "" {
		t.Fatalf("validator mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckFromNode_RejectsSequence(t *testing.T) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte("- [a, b]\n"), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := fields.CheckFromNode(doc.Content[0].Content[0]); err == nil {
		t.Fatalf("expected error for sequence check")
	}
}
