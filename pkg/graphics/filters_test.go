package graphics

import (
	"image/color"
	"testing"
)

func TestColorFilterSrcATop_PreservesAlpha(t *testing.T) {
	tint := ColorFilterTint(ColorWhite, BlendModeSrcATop)

	opaque := tint.Apply(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	if opaque != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("opaque pixel = %+v, want white", opaque)
	}

	clear := tint.Apply(color.RGBA{})
	if clear != (color.RGBA{}) {
		t.Errorf("transparent pixel = %+v, want transparent", clear)
	}

	half := tint.Apply(color.RGBA{R: 0, G: 0, B: 128, A: 128})
	if half.A != 128 {
		t.Errorf("alpha = %d, want 128", half.A)
	}
	if half.R != 128 || half.G != 128 || half.B != 128 {
		t.Errorf("half pixel = %+v, want premultiplied white at 128", half)
	}
}

func TestColorFilterSrcATop_TranslucentTint(t *testing.T) {
	tint := ColorFilterTint(RGBA8(255, 0, 0, 128), BlendModeSrcATop)
	got := tint.Apply(color.RGBA{R: 0, G: 0, B: 255, A: 255})
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R < 126 || got.R > 130 || got.B < 125 || got.B > 129 {
		t.Errorf("blend = %+v, want roughly half red half blue", got)
	}
}

func TestColorFilterSrcIn(t *testing.T) {
	tint := ColorFilterTint(ColorRed, BlendModeSrcIn)
	got := tint.Apply(color.RGBA{R: 0, G: 255, B: 0, A: 255})
	if got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("SrcIn = %+v, want opaque red", got)
	}
}

func TestBlendModeString(t *testing.T) {
	if got := BlendModeSrcATop.String(); got != "src_atop" {
		t.Errorf("String() = %q", got)
	}
	if got := BlendMode(99).String(); got != "BlendMode(99)" {
		t.Errorf("String() = %q", got)
	}
}
