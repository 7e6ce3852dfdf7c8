package ogcard

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

func TestFingerprintDeterminism(t *testing.T) {
	m := Metadata{Title: "Hello", Description: "World"}
	first := Fingerprint(m)
	second := Fingerprint(m)
	if first != second {
		t.Fatalf("fingerprint not stable: %q vs %q", first, second)
	}
}

func TestFingerprintFormat(t *testing.T) {
	cases := []Metadata{
		{},
		{Title: "Hello"},
		{Title: "Hello", Description: "World", AccentColor: "#fff", HideFooter: true},
	}
	for _, m := range cases {
		fp := Fingerprint(m)
		if !hexPattern.MatchString(fp) {
			t.Errorf("Fingerprint(%+v) = %q, want 8 lowercase hex digits", m, fp)
		}
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := Metadata{Title: "Hello", Description: "World"}
	baseFP := Fingerprint(base)

	variants := map[string]Metadata{
		"title":       {Title: "Hello!", Description: "World"},
		"description": {Title: "Hello", Description: "Worlds"},
		"accent":      {Title: "Hello", Description: "World", AccentColor: "#fff"},
		"secondary":   {Title: "Hello", Description: "World", SecondaryAccentColor: "#000"},
		"text color":  {Title: "Hello", Description: "World", TextColor: "white"},
		"background":  {Title: "Hello", Description: "World", BackgroundColor: "#111"},
		"hide footer": {Title: "Hello", Description: "World", HideFooter: true},
	}
	for name, m := range variants {
		if fp := Fingerprint(m); fp == baseFP {
			t.Errorf("changing %s did not change the fingerprint (%q)", name, fp)
		}
	}
}

func TestFingerprintFieldBoundaries(t *testing.T) {
	// The separator keeps characters from drifting between adjacent fields.
	a := Fingerprint(Metadata{Title: "ab", Description: ""})
	b := Fingerprint(Metadata{Title: "a", Description: "b"})
	if a == b {
		t.Fatalf("field boundary shift collided: %q", a)
	}
}
