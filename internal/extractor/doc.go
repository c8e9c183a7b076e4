// Package extractor derives (creature id, form key) pairs from sprite
// filenames and groups them by creature.
//
// The creature id is read from a fixed-width numeric prefix: four digits
// first, falling back to three. The remainder of the basename is the raw
// form key, defaulting to the literal "base" when empty. Filenames that
// yield no id are rejected with a warning; rejection never aborts a scan.
package extractor
