// Package manager wires schema loading, parsing and registry construction
// into a single entry point. A Manager is built once from a schema source and
// exposes the rendered defaults and validators document.
package manager
