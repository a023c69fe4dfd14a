package template_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/render/template"
)

func sampleRegistry() *fields.Registry {
	return fields.NewRegistry(
		fields.Field{Name: "env", Default: fields.String("prod"), Checks: []fields.CheckDescriptor{fields.ChoicesCheck("prod", "dev")}},
		fields.Field{Name: "home", Default: fields.String("/tmp"), Checks: []fields.CheckDescriptor{fields.UnixPathCheck()}},
	)
}

func TestRenderer_Fields(t *testing.T) {
	src := `{% for f in fields %}{{ f.name }}={{ f.default }};{% for v in f.validators %}{{ v.when }}|{% endfor %}
{% endfor %}`
	r, err := template.New(src)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if r.Name() != template.RendererName {
		t.Fatalf("unexpected name %q", r.Name())
	}

	out, err := r.Render(context.Background(), sampleRegistry(), fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "env=prod;env not in [\"prod\", \"dev\"]|\nhome=/tmp;not home | dirname|\n"
	if string(out) != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestRenderer_Blocks(t *testing.T) {
	r, err := template.New("{{ report }}", template.WithName("raw"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	registry := sampleRegistry()
	out, err := r.Render(context.Background(), registry, fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	report, err := registry.Render(fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if string(out) != report {
		t.Fatalf("report mismatch:\n got: %q\nwant: %q", out, report)
	}
	if r.Name() != "raw" {
		t.Fatalf("expected custom name, got %q", r.Name())
	}
}

func TestLoad_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"vars.tpl": {Data: []byte("{% for f in fields %}{{ f.name }} {% endfor %}")},
	}
	r, err := template.Load("vars.tpl", template.WithFS(files))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := r.Render(context.Background(), sampleRegistry(), fields.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "env home " {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := template.Load("missing.tpl", template.WithFS(files)); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestNew_SyntaxError(t *testing.T) {
	if _, err := template.New("{% for %}"); err == nil {
		t.Fatalf("expected compile error")
	}
}
