// Package gapfill detects sprite variants that the resolved name table
// lacks and fills them from a second, independently sourced sheet archive.
//
// It reuses the resolver's key-to-suffix vocabulary to predict the name an
// archive sheet would carry, but not the resolution algorithm itself: no
// canonical election happens here. Sheets whose predicted name is already
// present in the resolved table are skipped.
package gapfill
