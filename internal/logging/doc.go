// Package logging builds the slog loggers used by every command.
//
// Two formats are supported: a compact colorized console handler for
// humans, and JSON for machine consumption. Color is disabled automatically
// when the output is not a terminal.
package logging
