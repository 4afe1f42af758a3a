// Package logging builds the process-wide slog logger. Console output
// uses a compact single-line format for interactive use; the json
// format emits one object per line for ingestion.
package logging
