// Package surveydef loads survey definition documents (JSON or YAML) from a
// filesystem into the typed model the engine consumes. Loading sanitises
// operator-authored copy and enforces the structural invariants the engine
// assumes already hold (unique field ids per section tree, a single option
// source per field) so malformed documents fail at load time with a
// positioned error instead of surfacing mid-session.
package surveydef
