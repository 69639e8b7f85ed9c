// Package survey defines the typed survey data model shared by the engine,
// the definition loader, and the interactive runner: field definitions as a
// closed FieldType enum, declarative validation rules, externally-managed
// option catalogs supplied as id-keyed lookup maps, and the section tree that
// makes up one paginated survey. The package holds no behaviour beyond
// lookups and flattening helpers; validation and pagination policy live in
// pkg/engine so the model stays serialisable and side-effect free.
package survey
