package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF4081", Color(0xFFFF4081)},
		{"#757575", Color(0xFF757575)},
		{"80FFFFFF", Color(0x80FFFFFF)},
		{" #00000000 ", ColorTransparent},
		{"#ff4081", Color(0xFFFF4081)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GG0000", "#XX112233", "red"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA8(1, 2, 3, 4).NRGBA()
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Errorf("NRGBA() = %+v", c)
	}
	if back := FromColor(c); back != RGBA8(1, 2, 3, 4) {
		t.Errorf("FromColor round trip = %s", back)
	}
}
