package types

import (
	"errors"
	"testing"
)

func TestParseOrientation_Codes(t *testing.T) {
	// The code space is non-contiguous; 1 is unused in the Dock's format.
	cases := map[string]Orientation{
		"full":    0,
		"tile":    2,
		"center":  3,
		"stretch": 4,
		"fit":     5,
	}
	for name, want := range cases {
		got, err := ParseOrientation(name)
		if err != nil {
			t.Fatalf("ParseOrientation(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseOrientation(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestParseOrientation_Unknown(t *testing.T) {
	_, err := ParseOrientation("sideways")
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("expected ErrInvalidOrientation, got %v", err)
	}
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("orientation errors should match ErrEncoding, got %v", err)
	}
}

func TestOrientation_ValidRejectsGap(t *testing.T) {
	if Orientation(1).Valid() {
		t.Error("orientation code 1 must be invalid")
	}
	if !Orientation(5).Valid() {
		t.Error("orientation code 5 must be valid")
	}
}

func TestParseDynamicMode_Codes(t *testing.T) {
	cases := map[string]DynamicMode{
		"none":    0,
		"dynamic": 1,
		"light":   2,
		"dark":    3,
	}
	for name, want := range cases {
		got, err := ParseDynamicMode(name)
		if err != nil {
			t.Fatalf("ParseDynamicMode(%q) failed: %v", name, err)
		}
		if got != want {
			t.Errorf("ParseDynamicMode(%q) = %d, want %d", name, got, want)
		}
	}

	if _, err := ParseDynamicMode("dusk"); !errors.Is(err, ErrInvalidDynamicMode) {
		t.Errorf("expected ErrInvalidDynamicMode, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("FF8000")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != (Color{R: 0xFF, G: 0x80, B: 0x00}) {
		t.Errorf("ParseColor(FF8000) = %+v", c)
	}

	// Leading '#' is accepted.
	c, err = ParseColor("#0080ff")
	if err != nil {
		t.Fatalf("ParseColor with # failed: %v", err)
	}
	if c != (Color{R: 0x00, G: 0x80, B: 0xFF}) {
		t.Errorf("ParseColor(#0080ff) = %+v", c)
	}

	for _, bad := range []string{"", "FFF", "FF80001", "GG0000", "#12345"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", bad, err)
		}
	}
}

func TestDisplay_Validate(t *testing.T) {
	d := Display{
		UUID: "A45EF71A-A253-4D28-911F-0EC0CB07E7E6",
		Workspaces: []Workspace{
			{UUID: "DD6D9B8D-9C3B-4A09-A4F5-6E2E8B302E2B"},
		},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate failed for valid display: %v", err)
	}

	d.Workspaces[0].UUID = "not-a-uuid"
	if err := d.Validate(); !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("expected ErrInvalidUUID, got %v", err)
	}
}
