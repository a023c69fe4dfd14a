package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/render"
	"github.com/goliatone/go-fieldrules/pkg/testsupport"
)

func sampleRegistry() *fields.Registry {
	return fields.NewRegistry(
		fields.Field{Name: "env", Default: fields.String("prod"), Checks: []fields.CheckDescriptor{fields.ChoicesCheck("prod", "dev")}},
		fields.Field{Name: "home", Default: fields.String("/tmp"), Checks: []fields.CheckDescriptor{fields.UnixPathCheck()}},
	)
}

func TestRegistry_DefaultRenderers(t *testing.T) {
	registry := render.NewDefaultRegistry()
	want := []string{"defaults", "report", "validators"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}

	if err := registry.Register(render.Report()); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}

	_, err := registry.Get("html")
	if err == nil || !strings.Contains(err.Error(), "available: defaults, report, validators") {
		t.Fatalf("expected lookup error listing renderers, got %v", err)
	}
}

func TestBuiltinRenderers(t *testing.T) {
	ctx := context.Background()
	registry := sampleRegistry()
	opts := fields.DefaultRenderOptions()

	report, err := render.Report().Render(ctx, registry, opts)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	defaults, err := render.Defaults().Render(ctx, registry, opts)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	validators, err := render.Validators().Render(ctx, registry, opts)
	if err != nil {
		t.Fatalf("validators: %v", err)
	}

	gotDefaults, gotValidators := testsupport.SplitReport(t, string(report))
	if gotDefaults != string(defaults) {
		t.Fatalf("defaults block mismatch:\n got: %q\nwant: %q", gotDefaults, defaults)
	}
	if gotValidators != string(validators) {
		t.Fatalf("validators block mismatch:\n got: %q\nwant: %q", gotValidators, validators)
	}
	if diff := testsupport.CompareYAML(t, "env: prod\nhome: /tmp\n", string(defaults)); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinRenderers_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := render.Report().Render(ctx, sampleRegistry(), fields.DefaultRenderOptions()); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}
