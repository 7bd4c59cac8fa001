package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/go-drift/circleprogress/cmd/circleprogress/internal/config"
	"github.com/go-drift/circleprogress/pkg/progress"
)

// setup isolates viper and the working directory for one test.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	viper.Reset()
	config.SetDefaults()
	t.Cleanup(viper.Reset)
	return dir
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRender_WritesFrame(t *testing.T) {
	dir := setup(t)
	out := filepath.Join(dir, "out", "ring.png")
	viper.Set("render.out", out)
	viper.Set("render.size", 64)

	s, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	if err := runRender(s, renderOptions{progress: 50, width: 10}); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	img := readPNG(t, out)
	if got := img.Bounds().Size(); got != image.Pt(64, 64) {
		t.Fatalf("size = %v, want 64x64", got)
	}
	// Arc box is 5..59. Half progress covers the right side only.
	r, g, _, _ := img.At(58, 32).RGBA()
	if r>>8 < 200 || g>>8 > 120 {
		t.Errorf("right edge = (%d, %d), want progress color", r>>8, g>>8)
	}
	r, g, _, _ = img.At(6, 32).RGBA()
	if r != g {
		t.Errorf("left edge = (%d, %d), want background gray", r>>8, g>>8)
	}
}

func TestRender_HiddenProgressLeavesRingEmpty(t *testing.T) {
	dir := setup(t)
	out := filepath.Join(dir, "ring.png")
	viper.Set("render.out", out)
	viper.Set("render.size", 64)
	viper.Set("background", "#000000")

	s, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	if err := runRender(s, renderOptions{progress: -1, hideProgress: true}); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	r, g, b, _ := readPNG(t, out).At(58, 32).RGBA()
	if r|g|b != 0 {
		t.Errorf("ring pixel = (%d, %d, %d), want background", r>>8, g>>8, b>>8)
	}
}

func TestRender_BadAttributes(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("max: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.Set("attributes", path)
	if _, err := loadSession(); err == nil {
		t.Fatal("expected error for max 0")
	}
}

func TestFrames_OnePerTick(t *testing.T) {
	dir := setup(t)
	attrs := filepath.Join(dir, "ring.yaml")
	if err := os.WriteFile(attrs, []byte("max: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.Set("attributes", attrs)
	viper.Set("frames.dir", filepath.Join(dir, "frames"))
	viper.Set("render.size", 32)

	s, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	n, err := runFrames(s)
	if err != nil {
		t.Fatalf("runFrames: %v", err)
	}
	// Frame 0 plus one per increment.
	if n != 5 {
		t.Errorf("frames = %d, want 5", n)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "frames"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 || entries[4].Name() != "frame_0004.png" {
		t.Errorf("entries = %v", entries)
	}
}

func TestDemoConfig(t *testing.T) {
	setup(t)
	viper.Set("image.path", "avatar.png")
	viper.Set("image.size", 48)
	viper.Set("image.tint", "#80FFFFFF")
	viper.Set("log_file", "demo.log")

	s, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	cfg := demoConfig(s)
	if cfg.ImagePath != "avatar.png" || cfg.ImageSize != 48 {
		t.Errorf("image = %q %d", cfg.ImagePath, cfg.ImageSize)
	}
	if cfg.Tint.Alpha() > 0.51 || cfg.Tint.Alpha() < 0.49 {
		t.Errorf("tint alpha = %v", cfg.Tint.Alpha())
	}
	if cfg.LogFile != "demo.log" {
		t.Errorf("LogFile = %q, want demo.log", cfg.LogFile)
	}
	if cfg.Registry != s.reg {
		t.Error("demo should share the session registry")
	}
	// The demo loads the path itself.
	if cfg.Attributes.Image != progress.NoImage {
		t.Errorf("Attributes.Image = %d, want NoImage", cfg.Attributes.Image)
	}
}

func TestVersionCommand(t *testing.T) {
	setup(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "circleprogress "+Version) {
		t.Errorf("output = %q", out.String())
	}
}
