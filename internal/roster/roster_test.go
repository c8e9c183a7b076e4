package roster

import "testing"

const sampleRoster = `
VULPIX_ALOLAN:
  dex_number: 37
  key: vulpix-alolan
  display_order: 2
  evolves_from: null
  name: Alolan Vulpix
VULPIX:
  dex_number: 37
  key: vulpix
  display_order: 1
  evolves_from: null
  name: Vulpix
EEVEE:
  dex_number: "133"
  key: eevee
  display_order: null
  evolves_from: null
  name: Eevee
FLAREON:
  dex_number: 136
  key: flareon
  display_order: null
  evolves_from: EEVEE
  name: Flareon
`

func TestDecodeReKeysByCreatureID(t *testing.T) {
	groups, err := Decode([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(groups) != 3 {
		t.Fatalf("expected 3 creature groups, got %d", len(groups))
	}
	if len(groups["37"]) != 2 {
		t.Fatalf("expected 2 entries for 37, got %+v", groups["37"])
	}
	if groups["136"][0].AncestorID == nil || *groups["136"][0].AncestorID != "EEVEE" {
		t.Fatalf("ancestor link not preserved: %+v", groups["136"][0])
	}
}

func TestDecodeSortsByDisplayOrder(t *testing.T) {
	groups, err := Decode([]byte(sampleRoster))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	entries := groups["37"]
	if entries[0].Key != "vulpix" || entries[1].Key != "vulpix-alolan" {
		t.Fatalf("unexpected order for 37: %+v", entries)
	}
	if got := CanonicalName(groups, "37"); got != "Vulpix" {
		t.Fatalf("CanonicalName(37) = %q, want Vulpix", got)
	}
}

func TestDecodeNullOrderSortsFirst(t *testing.T) {
	doc := `
B:
  dex_number: 9
  key: b
  display_order: 1
  name: Second
A:
  dex_number: 9
  key: a
  display_order: null
  name: First
`
	groups, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	entries := groups["9"]
	if entries[0].Key != "a" {
		t.Fatalf("null display order should sort first, got %+v", entries)
	}
}

func TestDecodeTiesKeepDocumentOrder(t *testing.T) {
	doc := `
LATER:
  dex_number: 7
  key: later
  display_order: null
  name: Later
EARLIER:
  dex_number: 7
  key: earlier
  display_order: null
  name: Earlier
`
	groups, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	entries := groups["7"]
	if entries[0].StableID != "LATER" || entries[1].StableID != "EARLIER" {
		t.Fatalf("stable sort must keep document order on ties, got %+v", entries)
	}
}

func TestDecodeRejectsMissingDexNumber(t *testing.T) {
	if _, err := Decode([]byte("X:\n  key: x\n  name: X\n")); err == nil {
		t.Fatal("expected an error for an entry with no dex_number")
	}
}

func TestRegionalCodes(t *testing.T) {
	entries := []ReferenceEntry{
		{Key: "vulpix", CanonicalName: "Vulpix"},
		{Key: "vulpix-alolan", CanonicalName: "Alolan Vulpix"},
	}
	codes := RegionalCodes(entries)
	if len(codes) != 1 || !codes["alola"] {
		t.Fatalf("codes = %v, want {alola}", codes)
	}

	if got := RegionalCodes([]ReferenceEntry{{Key: "eevee", CanonicalName: "Eevee"}}); len(got) != 0 {
		t.Fatalf("expected no regional codes, got %v", got)
	}
}
