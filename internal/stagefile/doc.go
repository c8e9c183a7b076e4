// Package stagefile reads and writes the flat JSON artifacts exchanged at
// stage boundaries.
//
// Writes are atomic (temp file plus rename) so a failed stage never leaves
// a partial output behind, and an advisory lock on the output directory
// keeps two concurrent invocations from interleaving writes.
package stagefile
