package roster

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ReferenceEntry is one roster entry, re-keyed by creature identifier.
type ReferenceEntry struct {
	StableID      string  `json:"stable_id"`
	Key           string  `json:"key"`
	DisplayOrder  *int    `json:"display_order"`
	AncestorID    *string `json:"ancestor_id"`
	CanonicalName string  `json:"canonical_name"`
}

type rawEntry struct {
	DexNumber    any     `yaml:"dex_number"`
	Key          string  `yaml:"key"`
	DisplayOrder *int    `yaml:"display_order"`
	EvolvesFrom  *string `yaml:"evolves_from"`
	Name         string  `yaml:"name"`
}

// Load reads and decodes the roster document at path. The format is YAML,
// which also accepts the JSON renderings the description is sometimes
// exported as.
func Load(path string) (map[string][]ReferenceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return entries, nil
}

// Decode parses the roster document and groups its entries by creature id.
// Within each group entries are sorted by display order ascending with null
// orders first; ties keep document order.
func Decode(data []byte) (map[string][]ReferenceEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return map[string][]ReferenceEntry{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("roster root is %v, expected a mapping", root.Kind)
	}

	groups := make(map[string][]ReferenceEntry)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valueNode := root.Content[i+1]

		var raw rawEntry
		if err := valueNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", keyNode.Value, err)
		}

		id, err := creatureID(raw.DexNumber)
		if err != nil {
			return nil, fmt.Errorf("roster entry %q: %w", keyNode.Value, err)
		}

		groups[id] = append(groups[id], ReferenceEntry{
			StableID:      keyNode.Value,
			Key:           raw.Key,
			DisplayOrder:  raw.DisplayOrder,
			AncestorID:    raw.EvolvesFrom,
			CanonicalName: raw.Name,
		})
	}

	for id := range groups {
		entries := groups[id]
		sort.SliceStable(entries, func(i, j int) bool {
			return lessOrder(entries[i].DisplayOrder, entries[j].DisplayOrder)
		})
	}

	return groups, nil
}

// CanonicalName returns the name of the first entry for id, or "" when the
// roster has none. The first entry is "the" reference entry because of the
// nulls-first stable sort applied by Decode.
func CanonicalName(groups map[string][]ReferenceEntry, id string) string {
	entries := groups[id]
	if len(entries) == 0 {
		return ""
	}
	return entries[0].CanonicalName
}

// lessOrder sorts null display orders before any numeric order.
func lessOrder(a, b *int) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

// creatureID normalizes the dex_number field, which shows up as an int, a
// float, or a string depending on how the document was produced.
func creatureID(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		return strconv.Itoa(int(n)), nil
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return "", fmt.Errorf("dex_number %q is not numeric", n)
		}
		return strconv.Itoa(parsed), nil
	case nil:
		return "", fmt.Errorf("missing dex_number")
	default:
		return "", fmt.Errorf("dex_number has unsupported type %T", v)
	}
}
