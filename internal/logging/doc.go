// Package logging assembles structured slog loggers and formatting helpers used
// across the setdex CLI and its packages.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so conversion code can tag log
// lines with the run ID, generation, tier and subject being processed. The
// package also provides a no-op logger for tests and library callers that do
// not supply one.
package logging
