package openapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/openapi"
)

func sampleRegistry() *fields.Registry {
	return fields.NewRegistry(
		fields.Field{
			Name:        "env",
			Description: "Target environment",
			Default:     fields.String("prod"),
			Checks:      []fields.CheckDescriptor{fields.ChoicesCheck("prod", "dev")},
		},
		fields.Field{
			Name:    "home",
			Default: fields.String("/tmp"),
			Checks:  []fields.CheckDescriptor{fields.UnixPathCheck()},
		},
		fields.Field{Name: "workers", Default: fields.Int(4)},
		fields.Field{Name: "tags", Default: fields.Sequence(fields.String("a"), fields.String("b"))},
		fields.Field{Name: "mode", Checks: []fields.CheckDescriptor{fields.ChoicesCheck("fast", "safe")}},
		fields.Field{Name: "token"},
	)
}

func TestExport(t *testing.T) {
	schema, err := openapi.Export(sampleRegistry())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if diff := cmp.Diff(&openapi3.Types{openapi3.TypeObject}, schema.Type); diff != "" {
		t.Fatalf("root type mismatch (-want +got):\n%s", diff)
	}
	wantOrder := []any{"env", "home", "workers", "tags", "mode", "token"}
	if diff := cmp.Diff(wantOrder, schema.Extensions[openapi.FieldOrderExtension]); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	env := schema.Properties["env"].Value
	if diff := cmp.Diff([]any{"prod", "dev"}, env.Enum); diff != "" {
		t.Fatalf("env enum mismatch (-want +got):\n%s", diff)
	}
	if env.Default != "prod" || env.Description != "Target environment" {
		t.Fatalf("unexpected env schema: default=%v description=%q", env.Default, env.Description)
	}

	if got := schema.Properties["home"].Value.Format; got != openapi.UnixPathFormat {
		t.Fatalf("expected unix-path format, got %q", got)
	}
	if diff := cmp.Diff(&openapi3.Types{openapi3.TypeInteger}, schema.Properties["workers"].Value.Type); diff != "" {
		t.Fatalf("workers type mismatch (-want +got):\n%s", diff)
	}

	tags := schema.Properties["tags"].Value
	if diff := cmp.Diff(&openapi3.Types{openapi3.TypeString}, tags.Items.Value.Type); diff != "" {
		t.Fatalf("tags item type mismatch (-want +got):\n%s", diff)
	}

	mode := schema.Properties["mode"].Value
	if diff := cmp.Diff(&openapi3.Types{openapi3.TypeString}, mode.Type); diff != "" {
		t.Fatalf("mode type mismatch (-want +got):\n%s", diff)
	}
	if mode.Default != nil {
		t.Fatalf("expected no default for mode, got %v", mode.Default)
	}

	if !schema.Properties["token"].Value.Nullable {
		t.Fatalf("expected token to be nullable")
	}
}

func TestExport_UnrecognizedCheck(t *testing.T) {
	registry := fields.NewRegistry(fields.NewField("email", fields.CheckDescriptor{Tag: "email"}))
	if _, err := openapi.Export(registry); !errors.Is(err, fields.ErrUnrecognizedCheckKind) {
		t.Fatalf("expected unrecognized check error, got %v", err)
	}
	if _, err := openapi.Export(nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestRenderer_JSON(t *testing.T) {
	out, err := openapi.NewRenderer().Render(context.Background(), sampleRegistry(), fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		Type       string                    `json:"type"`
		Properties map[string]map[string]any `json:"properties"`
		Order      []string                  `json:"x-field-order"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if doc.Type != "object" {
		t.Fatalf("expected object type, got %q", doc.Type)
	}
	if diff := cmp.Diff([]string{"env", "home", "workers", "tags", "mode", "token"}, doc.Order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"prod", "dev"}, doc.Properties["env"]["enum"]); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}
