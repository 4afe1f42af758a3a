// Package catalog persists an index of the library's documents in
// SQLite: every imported base libretto, timing overlay, and merged
// interchange document, keyed by its path relative to the library
// root.
//
// The catalog is derived state. Deleting catalog.db and re-importing
// rebuilds it; the JSON documents on disk remain the source of truth.
// Schema changes bump the version in schema.go; a mismatched database
// must be deleted and re-imported.
package catalog
