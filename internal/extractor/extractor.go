package extractor

import (
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FormRecord is one concrete sprite variant for one creature identifier.
// Records are immutable once produced.
type FormRecord struct {
	Filename   string `json:"filename"`
	Key        string `json:"key"`
	CreatureID string `json:"creature_id"`
}

// Rejection describes a filename the scan could not derive an id from.
type Rejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Result holds the grouped records and the rejected filenames of one scan.
type Result struct {
	Groups   map[string][]FormRecord
	Rejected []Rejection
}

var keyCollator = collate.New(language.Und, collate.IgnoreCase)

// Scan derives a FormRecord from every filename and groups the records by
// creature id. Within each group records are sorted by form key,
// case-insensitively. Filenames without a readable id land in Rejected.
func Scan(filenames []string) Result {
	result := Result{Groups: make(map[string][]FormRecord)}

	for _, name := range filenames {
		base := name[:len(name)-len(filepath.Ext(name))]

		id, key, ok := splitIDKey(base)
		if !ok {
			result.Rejected = append(result.Rejected, Rejection{
				Filename: name,
				Reason:   "no 4- or 3-digit identifier prefix",
			})
			continue
		}

		result.Groups[id] = append(result.Groups[id], FormRecord{
			Filename:   name,
			Key:        key,
			CreatureID: id,
		})
	}

	for id := range result.Groups {
		group := result.Groups[id]
		sort.SliceStable(group, func(i, j int) bool {
			return keyCollator.CompareString(group[i].Key, group[j].Key) < 0
		})
	}

	return result
}

// splitIDKey reads a zero-padded decimal id of width 4, then width 3, from
// the front of base. The remainder is the raw form key.
func splitIDKey(base string) (id, key string, ok bool) {
	for _, width := range []int{4, 3} {
		if len(base) < width || !allDigits(base[:width]) {
			continue
		}
		n, err := strconv.Atoi(base[:width])
		if err != nil {
			continue
		}
		key = base[width:]
		if key == "" {
			key = "base"
		}
		return strconv.Itoa(n), key, true
	}
	return "", "", false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
