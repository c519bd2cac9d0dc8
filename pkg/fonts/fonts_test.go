package fonts

import "testing"

func TestParsedFontsAreCached(t *testing.T) {
	a, err := Regular()
	if err != nil {
		t.Fatalf("Regular() error: %v", err)
	}
	b, _ := Regular()
	if a != b {
		t.Error("Regular() should return the cached font")
	}
}

func TestForFamily(t *testing.T) {
	reg, _ := Regular()
	bold, err := Bold()
	if err != nil {
		t.Fatalf("Bold() error: %v", err)
	}

	tests := []struct {
		family string
		want   any
	}{
		{"sans-serif", reg},
		{"", reg},
		{"Inter Bold", bold},
	}
	for _, tt := range tests {
		got, err := ForFamily(tt.family)
		if err != nil {
			t.Fatalf("ForFamily(%q) error: %v", tt.family, err)
		}
		if any(got) != tt.want {
			t.Errorf("ForFamily(%q) picked the wrong font", tt.family)
		}
	}
}

func TestTTFData(t *testing.T) {
	if len(RegularTTF()) == 0 || len(BoldTTF()) == 0 {
		t.Error("embedded font data is empty")
	}
}
