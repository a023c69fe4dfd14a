// Package fields compiles declarative field definitions into two derived
// artifacts: a YAML mapping of default values and a list of rule-engine tasks
// (`fail` with a `msg`, guarded by a `when` condition) that reject invalid
// values before they reach a deployment pipeline. Check descriptors from the
// schema resolve to Validator variants through Resolve; unknown descriptors
// are reported as UnrecognizedCheckKindError instead of being dropped.
// Serialization is configured explicitly through RenderOptions.
package fields
