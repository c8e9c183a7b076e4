package resolver

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"spritedex/internal/extractor"
	"spritedex/internal/formkey"
)

// ResolvedForm is one named sprite variant. A group carries at most one
// main canonical plus up to three mega sub-canonicals, all flagged
// Canonical but with distinct names.
type ResolvedForm struct {
	Filename   string `json:"filename"`
	Key        string `json:"key"`
	CreatureID string `json:"creature_id"`
	Name       string `json:"assigned_name"`
	Canonical  bool   `json:"is_canonical"`
}

// Collision records two or more forms of one group that were assigned the
// same name. Known to occur when a plain form and a non-canonical gendered
// form both collapse to "-v1"; surfaced rather than silently renamed.
type Collision struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

// GroupDiagnostics collects the reportable, non-fatal conditions of one
// group resolution.
type GroupDiagnostics struct {
	MissingCanonical  bool
	AmbiguousRegional []string
	Collisions        []Collision
}

type bucket int

const (
	bucketGendered bucket = iota
	bucketBaseLabeled
	bucketPlain
	bucketCustom // non-empty middle, no prefix; never canonical-eligible
	bucketMega
	bucketMegaX
	bucketMegaY
	bucketOther
)

type form struct {
	rec  extractor.FormRecord
	key  formkey.Key
	bkt  bucket
	name string

	canonical bool
	main      bool
}

var (
	nameCollator = collate.New(language.Und, collate.IgnoreCase)
	prefixCaser  = cases.Title(language.Und, cases.NoLower)
)

// Resolve names every form of one creature group. canonicalName is the
// roster display name, empty when the roster has no entry; regionalCodes is
// the side table of known regional variants for this creature. Resolve is
// pure and deterministic: it never mutates its inputs and never fails, at
// worst it reports a group without a canonical form.
func Resolve(creatureID string, records []extractor.FormRecord, canonicalName string, regionalCodes map[string]bool) ([]ResolvedForm, GroupDiagnostics) {
	var diag GroupDiagnostics

	baseName := canonicalName
	if baseName == "" {
		baseName = "Dex-" + creatureID
	}

	forms := prepare(creatureID, records)
	if len(forms) == 0 {
		return nil, diag
	}

	chosen := selectCanonical(creatureID, forms, baseName)
	canonicalGendered := chosen != nil && chosen.key.Prefix == femalePrefix
	if chosen == nil {
		diag.MissingCanonical = true
	}
	selectMegaCanonicals(creatureID, forms, baseName)

	for _, f := range forms {
		if f.canonical {
			continue
		}
		f.name = assignName(creatureID, f, baseName, canonicalGendered, regionalCodes, &diag)
	}

	ordered := orderForms(forms)

	out := make([]ResolvedForm, 0, len(ordered))
	for _, f := range ordered {
		out = append(out, ResolvedForm{
			Filename:   f.rec.Filename,
			Key:        f.rec.Key,
			CreatureID: creatureID,
			Name:       f.name,
			Canonical:  f.canonical,
		})
	}

	diag.Collisions = findCollisions(out)
	return out, diag
}

// prepare filters duplicate renders, parses the surviving keys, classifies
// them, and fixes a deterministic working order.
func prepare(creatureID string, records []extractor.FormRecord) []*form {
	forms := make([]*form, 0, len(records))
	for _, rec := range records {
		if isDuplicateRender(creatureID, rec.Key) {
			continue
		}
		key := formkey.Parse(rec.Key)
		forms = append(forms, &form{
			rec: rec,
			key: key,
			bkt: classify(creatureID, key),
		})
	}
	sort.SliceStable(forms, func(i, j int) bool {
		return nameCollator.CompareString(forms[i].rec.Key, forms[j].rec.Key) < 0
	})
	return forms
}

func classify(creatureID string, key formkey.Key) bucket {
	switch {
	case key.Prefix == femalePrefix:
		return bucketGendered
	case key.Prefix == "" && key.BaseLabeled():
		return bucketBaseLabeled
	case key.Prefix == "" && key.PlainMiddle():
		return bucketPlain
	case key.Prefix == "":
		return bucketCustom
	case key.Prefix == megaPrefix && !megaExclusions[creatureID]:
		return bucketMega
	case key.Prefix == megaXPrefix && !megaExclusions[creatureID]:
		return bucketMegaX
	case key.Prefix == megaYPrefix && !megaExclusions[creatureID]:
		return bucketMegaY
	default:
		return bucketOther
	}
}

// selectCanonical picks the group's main canonical form: the override table
// first, then gendered over base-labeled over plain, highest version within
// the winning bucket. Returns nil when no rule selects a form, which the
// caller reports as a missing canonical.
func selectCanonical(creatureID string, forms []*form, baseName string) *form {
	var chosen *form

	if prefix, ok := canonicalOverrides[creatureID]; ok {
		chosen = highestVersion(forms, func(f *form) bool { return f.key.Prefix == prefix })
	}
	if chosen == nil {
		chosen = highestVersion(forms, func(f *form) bool { return f.bkt == bucketGendered })
	}
	if chosen == nil {
		chosen = highestVersion(forms, func(f *form) bool { return f.bkt == bucketBaseLabeled })
	}
	if chosen == nil {
		chosen = highestVersion(forms, func(f *form) bool { return f.bkt == bucketPlain })
	}
	if chosen == nil {
		return nil
	}

	chosen.canonical = true
	chosen.main = true
	chosen.name = baseName
	return chosen
}

// selectMegaCanonicals elects the highest-version entry of each mega bucket
// as that bucket's canonical representative. These carry the Canonical flag
// with the bucket suffix appended but never take the main slot.
func selectMegaCanonicals(creatureID string, forms []*form, baseName string) {
	if megaExclusions[creatureID] {
		return
	}
	megaBuckets := []struct {
		bkt    bucket
		prefix string
	}{
		{bucketMega, megaPrefix},
		{bucketMegaX, megaXPrefix},
		{bucketMegaY, megaYPrefix},
	}
	for _, mb := range megaBuckets {
		bkt := mb.bkt
		winner := highestVersion(forms, func(f *form) bool { return f.bkt == bkt && !f.canonical })
		if winner == nil {
			continue
		}
		winner.canonical = true
		winner.name = baseName + megaSuffixes[mb.prefix]
	}
}

// highestVersion returns the matching form with the greatest version, null
// versions counting as zero. Ties keep the earliest form in working order.
func highestVersion(forms []*form, match func(*form) bool) *form {
	var best *form
	for _, f := range forms {
		if !match(f) {
			continue
		}
		if best == nil || f.key.VersionOr(0) > best.key.VersionOr(0) {
			best = f
		}
	}
	return best
}

// assignName runs the suffix branch chain for one non-canonical form.
// First match wins; the final branch never fails.
func assignName(creatureID string, f *form, baseName string, canonicalGendered bool, regionalCodes map[string]bool, diag *GroupDiagnostics) string {
	key := f.key

	// Versioned siblings of the plain canonical. A bare key with no digits
	// is version 1 here, not version 0.
	if key.Prefix == "" && key.PlainMiddle() {
		return baseName + versionSuffix(key.VersionOr(1))
	}
	if key.Prefix == "" && key.BaseLabeled() {
		return baseName + versionSuffix(key.VersionOr(1))
	}

	if key.Prefix == malePrefix {
		return baseName + "-Male"
	}

	// Mega forms that lost the within-bucket canonical race.
	if suffix, ok := megaSuffixes[key.Prefix]; ok && !megaExclusions[creatureID] {
		return baseName + suffix + versionSuffix(key.VersionOr(0))
	}

	if key.Prefix == femalePrefix {
		if !canonicalGendered {
			return baseName + "-Female"
		}
		return baseName + versionSuffix(key.VersionOr(0))
	}

	if suffix, ok := specialSuffix(creatureID, key.Prefix); ok {
		return baseName + suffix
	}

	if suffix, ok := regionPrefixSuffixes[key.Prefix]; ok {
		return baseName + suffix
	}
	if key.Prefix == genericRegionalPrefix {
		if suffix, ok := singleRegion(regionalCodes); ok {
			return baseName + suffix
		}
		diag.AmbiguousRegional = append(diag.AmbiguousRegional, key.Raw)
	}

	return baseName + genericSuffix(key)
}

// singleRegion resolves the generic regional prefix when exactly one
// regional variant is known for the creature.
func singleRegion(regionalCodes map[string]bool) (string, bool) {
	if len(regionalCodes) != 1 {
		return "", false
	}
	for code := range regionalCodes {
		if suffix, ok := regionCodeSuffixes[code]; ok {
			return suffix, true
		}
	}
	return "", false
}

// genericSuffix is the catch-all: the capitalized prefix, then any cleaned
// middle content, each as its own dash segment.
func genericSuffix(key formkey.Key) string {
	var sb strings.Builder
	if key.Prefix != "" {
		sb.WriteString("-")
		sb.WriteString(prefixCaser.String(key.Prefix))
	}
	if middle := key.CleanMiddle(); middle != "" {
		sb.WriteString("-")
		sb.WriteString(prefixCaser.String(middle))
	}
	if sb.Len() == 0 {
		sb.WriteString("-v" + strconv.Itoa(key.VersionOr(1)))
	}
	return sb.String()
}

func versionSuffix(v int) string {
	return "-v" + strconv.Itoa(v)
}

// orderForms puts the main canonical first, the mega canonicals next by
// name, and everything else after in case-insensitive name order.
func orderForms(forms []*form) []*form {
	ordered := make([]*form, len(forms))
	copy(ordered, forms)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.main != b.main {
			return a.main
		}
		if a.canonical != b.canonical {
			return a.canonical
		}
		return nameCollator.CompareString(a.name, b.name) < 0
	})
	return ordered
}

func findCollisions(out []ResolvedForm) []Collision {
	byName := make(map[string][]string)
	names := make([]string, 0, len(out))
	for _, f := range out {
		if _, seen := byName[f.Name]; !seen {
			names = append(names, f.Name)
		}
		byName[f.Name] = append(byName[f.Name], f.Key)
	}

	var collisions []Collision
	for _, name := range names {
		if keys := byName[name]; len(keys) > 1 {
			collisions = append(collisions, Collision{Name: name, Keys: keys})
		}
	}
	return collisions
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
