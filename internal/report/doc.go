// Package report aggregates the non-fatal conditions of one pipeline run
// into a single summary the CLI prints and persists at end of run.
package report
