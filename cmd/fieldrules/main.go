package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	fieldrules "github.com/goliatone/go-fieldrules"
	"github.com/goliatone/go-fieldrules/pkg/fields"
	"github.com/goliatone/go-fieldrules/pkg/manager"
	"github.com/goliatone/go-fieldrules/pkg/prompt"
	"github.com/goliatone/go-fieldrules/pkg/render"
	"github.com/goliatone/go-fieldrules/pkg/render/template"
	"github.com/goliatone/go-fieldrules/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "field schema document (YAML or JSON)")
	rendererName := flag.String("renderer", render.ReportName, "renderer to use")
	templatePath := flag.String("template", "", "pongo2 template file; selects the template renderer")
	output := flag.String("output", "", "output file (stdout if empty)")
	descriptions := flag.Bool("descriptions", false, "emit field descriptions as comments in the defaults block")
	skipEmpty := flag.Bool("skip-empty", false, "omit blank validator entries for fields without checks")
	indent := flag.Int("indent", fields.DefaultIndent, "YAML indentation")
	interactive := flag.Bool("prompt", false, "prompt for each field value and write the answers instead")
	listRenderers := flag.Bool("list-renderers", false, "list available renderers and exit")
	verbose := flag.Bool("verbose", false, "log compilation details to stderr")
	flag.Parse()

	ctx := context.Background()

	renderers, err := fieldrules.NewRendererRegistry()
	if err != nil {
		log.Fatalf("Failed to build renderers: %v", err)
	}
	if *templatePath != "" {
		tpl, err := template.Load(filepath.Base(*templatePath), template.WithBaseDir(filepath.Dir(*templatePath)))
		if err != nil {
			log.Fatalf("Failed to load template: %v", err)
		}
		if err := renderers.Register(tpl); err != nil {
			log.Fatalf("Failed to register template: %v", err)
		}
		*rendererName = tpl.Name()
	}
	if *listRenderers {
		fmt.Println(strings.Join(renderers.List(), "\n"))
		return
	}

	if strings.TrimSpace(*schemaPath) == "" {
		log.Fatalf("missing -schema")
	}

	opts := fields.RenderOptions{
		Indent:       *indent,
		SkipEmpty:    *skipEmpty,
		Descriptions: *descriptions,
	}
	m, err := manager.New(ctx, schema.SourceFromFile(*schemaPath),
		manager.WithLoader(fieldrules.NewLoader()),
		manager.WithRenderOptions(opts),
		manager.WithLogger(newLogger(*verbose)),
	)
	if err != nil {
		log.Fatalf("Failed to compile schema: %v", err)
	}

	var out []byte
	if *interactive {
		values, err := prompt.Collect(ctx, m.Registry(), prompt.NewSurveyDriver())
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		rendered, err := values.Render(opts)
		if err != nil {
			log.Fatalf("Failed to render values: %v", err)
		}
		out = []byte(rendered)
	} else {
		renderer, err := renderers.Get(*rendererName)
		if err != nil {
			log.Fatalf("Failed to select renderer: %v", err)
		}
		out, err = renderer.Render(ctx, m.Registry(), m.RenderOptions())
		if err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
