// Package render exposes the output formats a compiled field registry can be
// written in, and a name-keyed Registry used by the CLI to pick one.
package render
