// Package template renders a compiled field registry through a pongo2
// template, for callers that need the defaults and rules laid out in a format
// other than the built-in report (an inventory vars file, a role skeleton).
// Templates are rendered with autoescaping disabled; {% include %} resolves
// against the configured base directory or fs.FS.
package template
