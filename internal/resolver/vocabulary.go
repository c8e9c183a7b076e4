package resolver

import (
	"strings"

	"spritedex/internal/formkey"
)

// MainCanonicalName returns the base display name of a resolved group: the
// name of its canonical form that carries no mega suffix. ok is false when
// the group has no main canonical.
func MainCanonicalName(forms []ResolvedForm) (string, bool) {
	for _, f := range forms {
		if !f.Canonical {
			continue
		}
		if !hasMegaSuffixName(f.Name) {
			return f.Name, true
		}
	}
	return "", false
}

func hasMegaSuffixName(name string) bool {
	for _, suffix := range megaSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Suffix maps one raw form key to the name suffix it denotes, using only
// the fixed key-to-suffix vocabulary. The gap filler builds candidate asset
// names with it; unlike Resolve there is no canonical election and no
// versioned-sibling numbering. Plain and base-labeled keys map to the empty
// suffix, meaning the creature's base name.
func Suffix(creatureID, rawKey string, regionalCodes map[string]bool) string {
	key := formkey.Parse(rawKey)

	switch {
	case key.Prefix == "" && (key.PlainMiddle() || key.BaseLabeled()):
		return ""
	case key.Prefix == femalePrefix:
		return "-Female"
	case key.Prefix == malePrefix:
		return "-Male"
	}

	if suffix, ok := megaSuffixes[key.Prefix]; ok && !megaExclusions[creatureID] {
		return suffix
	}
	if suffix, ok := specialSuffix(creatureID, key.Prefix); ok {
		return suffix
	}
	if suffix, ok := regionPrefixSuffixes[key.Prefix]; ok {
		return suffix
	}
	if key.Prefix == genericRegionalPrefix {
		if suffix, ok := singleRegion(regionalCodes); ok {
			return suffix
		}
	}

	return genericSuffix(key)
}
