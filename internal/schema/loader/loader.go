package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-fieldrules/pkg/schema"
)

// Loader implements schema.Loader by delegating to file, fs.FS, or in-memory
// strategies.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schema.LoaderOptions) schema.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schema loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = readSchemaFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindMemory:
		data, err = loadMemory(ctx, src)
	default:
		err = errors.New("schema loader: unsupported source kind")
	}
	if err != nil {
		return schema.Document{}, err
	}

	return schema.NewDocument(src, data)
}

func loadMemory(ctx context.Context, src schema.Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mem, ok := src.(schema.MemorySource)
	if !ok {
		return nil, errors.New("schema loader: memory source has no payload")
	}
	return mem.Bytes(), nil
}
