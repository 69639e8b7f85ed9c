// Package engine implements the survey validation engine and the
// section-pagination state machine: per-field emptiness classification and
// value validation against externally-resolved option catalogs, section and
// whole-form aggregation, idempotent default assignment, guarded pagination,
// the progressive-disclosure controller that decides when errors surface,
// and the answer-restoration adapter for resumable sessions. Everything runs
// synchronously on the caller's goroutine; persistence, rendering, and
// session storage stay behind the small collaborator interfaces in
// options.go.
package engine
