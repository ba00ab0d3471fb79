package data

import (
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	if math.Abs(c.R-1.0) > 1e-9 {
		t.Errorf("R = %v, want 1.0", c.R)
	}
	if math.Abs(c.G-128.0/255) > 1e-9 {
		t.Errorf("G = %v, want %v", c.G, 128.0/255)
	}
	if c.B != 0 {
		t.Errorf("B = %v, want 0", c.B)
	}

	// Leading # is optional
	bare, err := ParseHexColor("FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor without # failed: %v", err)
	}
	if bare != c {
		t.Error("Parsing with and without # should agree")
	}
}

func TestParseHexColorErrors(t *testing.T) {
	for _, hex := range []string{"", "#FFF", "#GGGGGG", "#FF80001"} {
		if _, err := ParseHexColor(hex); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", hex)
		}
	}
}

func TestEmbeddedPalettesParse(t *testing.T) {
	maps, err := LoadMaps()
	if err != nil {
		t.Fatalf("Failed to load maps: %v", err)
	}

	for _, m := range maps {
		if m.Palette == nil {
			continue
		}
		for _, hex := range []string{
			m.Palette.WallNear, m.Palette.WallFar,
			m.Palette.CeilingNear, m.Palette.CeilingFar,
			m.Palette.FloorNear, m.Palette.FloorFar,
		} {
			if _, err := ParseHexColor(hex); err != nil {
				t.Errorf("Map %q has invalid palette color %q: %v", m.ID, hex, err)
			}
		}
	}
}
