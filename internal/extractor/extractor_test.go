package extractor

import (
	"reflect"
	"testing"
)

func TestScanGroupsByIdentifier(t *testing.T) {
	result := Scan([]string{
		"0001.png",
		"0001(fem).png",
		"0025-2.png",
		"0025.png",
	})

	if len(result.Rejected) != 0 {
		t.Fatalf("unexpected rejections: %+v", result.Rejected)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(result.Groups))
	}

	got := result.Groups["1"]
	want := []FormRecord{
		{Filename: "0001(fem).png", Key: "(fem)", CreatureID: "1"},
		{Filename: "0001.png", Key: "base", CreatureID: "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("group 1 = %+v, want %+v", got, want)
	}
}

func TestScanThreeDigitFallback(t *testing.T) {
	result := Scan([]string{"201a.png"})
	group := result.Groups["201"]
	if len(group) != 1 {
		t.Fatalf("expected one record, got %+v", result.Groups)
	}
	if group[0].Key != "a" {
		t.Fatalf("key = %q, want %q", group[0].Key, "a")
	}
}

func TestScanEmptyKeyDefaultsToBase(t *testing.T) {
	result := Scan([]string{"0150.png"})
	if got := result.Groups["150"][0].Key; got != "base" {
		t.Fatalf("key = %q, want base", got)
	}
}

func TestScanRejectsUnparseableNames(t *testing.T) {
	result := Scan([]string{"egg.png", "ab12.png"})
	if len(result.Groups) != 0 {
		t.Fatalf("expected no groups, got %+v", result.Groups)
	}
	if len(result.Rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %+v", result.Rejected)
	}
	for _, rej := range result.Rejected {
		if rej.Reason == "" {
			t.Fatalf("rejection for %s has no reason", rej.Filename)
		}
	}
}

func TestScanKeyOrderIsCaseInsensitive(t *testing.T) {
	result := Scan([]string{"0001Zeta.png", "0001alpha.png"})
	group := result.Groups["1"]
	if group[0].Key != "alpha" || group[1].Key != "Zeta" {
		t.Fatalf("unexpected key order: %+v", group)
	}
}
