package resources

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestRegistry_HandlesArePositiveAndDistinct(t *testing.T) {
	r := NewRegistry()
	a := r.RegisterImage(solidImage(1, 1, color.White))
	b := r.RegisterImage(solidImage(1, 1, color.Black))
	if a <= 0 || b <= 0 || a == b {
		t.Errorf("handles %d, %d: want distinct positive", a, b)
	}
}

func TestRegistry_UnknownHandle(t *testing.T) {
	r := NewRegistry()
	for _, h := range []int{-1, 0, 42} {
		if _, err := r.Resolve(h); !errors.Is(err, ErrUnknownHandle) {
			t.Errorf("Resolve(%d) error = %v, want ErrUnknownHandle", h, err)
		}
		if r.Valid(h) {
			t.Errorf("Valid(%d) = true", h)
		}
	}
}

func TestRegistry_RegisterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, encodePNG(t, solidImage(8, 8, color.White)), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	h := r.RegisterFile(path)
	if again := r.RegisterFile(filepath.Join(dir, ".", "logo.png")); again != h {
		t.Errorf("re-registering the same path gave %d, want %d", again, h)
	}
	if _, err := r.Resolve(h); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestRegistry_MissingFileFailsAtResolve(t *testing.T) {
	r := NewRegistry()
	h := r.RegisterFile(filepath.Join(t.TempDir(), "missing.png"))
	if !r.Valid(h) {
		t.Fatal("handle should be registered before resolving")
	}
	if _, err := r.Resolve(h); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Resolve error = %v, want not-exist", err)
	}
}

func TestRegistry_CachesLoads(t *testing.T) {
	r := NewRegistry()
	loads := 0
	h := r.Register(func() (image.Image, error) {
		loads++
		return solidImage(1, 1, color.White), nil
	})
	for range 3 {
		if _, err := r.Resolve(h); err != nil {
			t.Fatal(err)
		}
	}
	if loads != 1 {
		t.Errorf("loader ran %d times, want 1", loads)
	}
}

func TestRegistry_Replace(t *testing.T) {
	r := NewRegistry()
	first := solidImage(1, 1, color.White)
	second := solidImage(2, 2, color.Black)
	h := r.RegisterImage(first)
	if _, err := r.Resolve(h); err != nil {
		t.Fatal(err)
	}

	if err := r.Replace(h, func() (image.Image, error) { return second, nil }); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if img, _ := r.Resolve(h); img != image.Image(second) {
		t.Error("Replace should drop the cached image")
	}

	if err := r.Replace(h+1, nil); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("Replace of unknown handle = %v, want ErrUnknownHandle", err)
	}
}

func TestImageCache_NilCacheLoadsDirectly(t *testing.T) {
	var c *ImageCache
	img, err := c.Get(1, func() (image.Image, error) { return solidImage(1, 1, color.White), nil })
	if err != nil || img == nil {
		t.Errorf("Get on nil cache = %v, %v", img, err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}
