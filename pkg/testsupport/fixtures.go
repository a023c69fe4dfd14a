package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const (
	reportPrefix     = "Defaults:\n---\n"
	validatorsMarker = "\nValidators:\n---\n"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGolden reads a fixture or golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CompareYAML decodes both documents and diffs the resulting values, so
// formatting differences (indentation, quoting) do not register.
func CompareYAML(t *testing.T, want, got string) string {
	t.Helper()
	return cmp.Diff(MustUnmarshalYAML(t, want), MustUnmarshalYAML(t, got))
}

// MustUnmarshalYAML decodes a YAML document into plain Go values.
func MustUnmarshalYAML(t *testing.T, doc string) any {
	t.Helper()
	var out any
	if err := yaml.Unmarshal([]byte(doc), &out); err != nil {
		t.Fatalf("unmarshal yaml: %v\n%s", err, doc)
	}
	return out
}

// SplitReport separates a rendered report into its defaults and validators
// blocks, failing the test when the section headings are missing.
func SplitReport(t *testing.T, report string) (string, string) {
	t.Helper()
	if !strings.HasPrefix(report, reportPrefix) {
		t.Fatalf("report does not start with the defaults heading:\n%s", report)
	}
	body := strings.TrimPrefix(report, reportPrefix)
	idx := strings.Index(body, validatorsMarker)
	if idx < 0 {
		t.Fatalf("report has no validators heading:\n%s", report)
	}
	return body[:idx], body[idx+len(validatorsMarker):]
}
