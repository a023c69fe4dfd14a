package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// readSchemaFile reads a field schema from disk. Relative paths resolve
// against the working directory, and directories are rejected up front so
// the error names the schema path rather than a read failure.
func readSchemaFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("fields loader: schema path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("fields loader: resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("fields loader: schema %s: %w", abs, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("fields loader: schema %s is a directory", abs)
	}
	return os.ReadFile(abs)
}
