// Package prompt fills in configuration values interactively, offering each
// field's default and restricting choice fields to their allowed values. The
// collected answers render as a YAML mapping in schema order.
package prompt
