package formkey

import (
	"regexp"
	"strconv"
	"strings"
)

// Key is the structured form of one raw form-key token.
type Key struct {
	// Raw is the token exactly as it appeared in the filename tail.
	Raw string
	// Prefix is the parenthesized variant-family code, without parentheses.
	// Empty when the key carries no parenthesized group.
	Prefix string
	// Middle is the residual text between prefix and version. Often empty
	// or the literal "base".
	Middle string
	// Version is the trailing numeric suffix. Meaningless unless HasVersion.
	Version int
	// HasVersion reports whether the key ended in one or more digits.
	HasVersion bool
}

var (
	reVersion = regexp.MustCompile(`-?([0-9]+)$`)
	rePrefix  = regexp.MustCompile(`^\(([^)]*)\)`)
)

// Parse splits raw into prefix, middle, and version. The version is trimmed
// from the right first, the prefix from the left second; the middle is
// whatever remains between them.
func Parse(raw string) Key {
	key := Key{Raw: raw}
	rest := raw

	if m := reVersion.FindStringSubmatch(rest); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			key.Version = n
			key.HasVersion = true
			rest = rest[:len(rest)-len(m[0])]
		}
	}

	if m := rePrefix.FindStringSubmatch(rest); m != nil {
		key.Prefix = m[1]
		rest = rest[len(m[0]):]
	}

	key.Middle = rest
	return key
}

// VersionOr returns the parsed version, or def when the key has none.
func (k Key) VersionOr(def int) int {
	if k.HasVersion {
		return k.Version
	}
	return def
}

// PlainMiddle reports whether the middle carries no content: empty or a
// bare separator dash.
func (k Key) PlainMiddle() bool {
	return k.Middle == "" || k.Middle == "-"
}

// BaseLabeled reports whether the middle begins with the literal "base"
// token, case-insensitively.
func (k Key) BaseLabeled() bool {
	return len(k.Middle) >= 4 && strings.EqualFold(k.Middle[:4], "base")
}

// CleanMiddle returns the middle content with leading dashes and
// underscores stripped, for use as a name suffix segment.
func (k Key) CleanMiddle() string {
	return strings.TrimLeft(k.Middle, "-_")
}
