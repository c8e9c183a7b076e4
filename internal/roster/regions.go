package roster

import "strings"

// regionTokens are the region names recognized inside roster keys and
// canonical names, lowercased. Adjective forms (Alolan, Galarian, ...)
// contain the plain token, so substring matching covers both.
var regionTokens = []string{"alola", "galar", "hisui", "paldea", "sevii"}

// RegionalCodes derives the set of regional-variant codes present among the
// reference entries of one creature, by substring match against the fixed
// region tokens. The resolver consults this side table when a generic
// regional form key does not name its target region.
func RegionalCodes(entries []ReferenceEntry) map[string]bool {
	codes := make(map[string]bool)
	for _, entry := range entries {
		key := strings.ToLower(entry.Key)
		name := strings.ToLower(entry.CanonicalName)
		for _, token := range regionTokens {
			if strings.Contains(key, token) || strings.Contains(name, token) {
				codes[token] = true
			}
		}
	}
	return codes
}
