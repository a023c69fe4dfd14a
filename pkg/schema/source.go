package schema

import (
	"path/filepath"
)

// Source identifies where a field schema originated so loaders can read
// files, fs.FS entries, or in-memory payloads behind one interface.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindMemory SourceKind = "memory"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// MemorySource carries its payload with it. Loaders return Bytes as-is.
type MemorySource struct {
	name string
	raw  []byte
}

func (s MemorySource) Location() string {
	return s.name
}

func (s MemorySource) Kind() SourceKind {
	return SourceKindMemory
}

// Bytes returns a copy of the payload.
func (s MemorySource) Bytes() []byte {
	return append([]byte(nil), s.raw...)
}

// SourceFromBytes wraps an in-memory schema. name is only used in messages.
func SourceFromBytes(name string, raw []byte) Source {
	if name == "" {
		name = "inline"
	}
	return MemorySource{name: name, raw: append([]byte(nil), raw...)}
}
