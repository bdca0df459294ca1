// Package logging defines the structured-logging interface used by the
// certkeeper server and its slog-backed implementation.
package logging
