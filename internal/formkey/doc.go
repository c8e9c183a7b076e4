// Package formkey parses the filename-derived tokens that identify one
// sprite variant of a creature.
//
// A key has up to three parts: an optional parenthesized prefix naming a
// variant family, free-form middle content, and a trailing numeric version.
// Parsing is right-anchored: the version is trimmed from the right first,
// then the prefix from the left, and whatever remains is the middle.
package formkey
