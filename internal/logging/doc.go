// Package logging builds slog loggers for the holreg pipeline.
//
// Two handler formats are supported: a pretty console handler for humans
// running pipeline stages interactively (with color when stdout is a
// terminal) and a JSON handler for captured runs. Attr helpers keep call
// sites terse and consistent.
package logging
