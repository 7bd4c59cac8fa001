package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
	"github.com/go-drift/circleprogress/pkg/progress"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	reset(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Image.Size != 100 {
		t.Errorf("Image.Size = %d, want 100", cfg.Image.Size)
	}
	if cfg.Render.Size != 200 || cfg.Render.Out != "circleprogress.png" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Frames.Interval != 40*time.Millisecond {
		t.Errorf("Frames.Interval = %v, want 40ms", cfg.Frames.Interval)
	}
	if !cfg.Frames.Grow {
		t.Error("Frames.Grow should default to true")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.ScreenDensity() != layout.DefaultDensity {
		t.Errorf("ScreenDensity = %v", cfg.ScreenDensity())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	reset(t)
	t.Setenv("CIRCLEPROGRESS_RENDER_SIZE", "320")
	t.Setenv("CIRCLEPROGRESS_FRAMES_INTERVAL", "10ms")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.Size != 320 {
		t.Errorf("Render.Size = %d, want 320", cfg.Render.Size)
	}
	if cfg.Frames.Interval != 10*time.Millisecond {
		t.Errorf("Frames.Interval = %v, want 10ms", cfg.Frames.Interval)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "circleprogress.config.yaml")
	data := "background: \"#202020\"\nimage:\n  size: 64\nrender:\n  padding: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Image.Size != 64 || cfg.Render.Padding != 4 {
		t.Errorf("got image size %d padding %d", cfg.Image.Size, cfg.Render.Padding)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Render.Size != 200 {
		t.Errorf("Render.Size = %d, want 200", cfg.Render.Size)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil || bg != graphics.RGB(0x20, 0x20, 0x20) {
		t.Errorf("BackgroundColor = %v, %v", bg, err)
	}
}

func TestColors_Invalid(t *testing.T) {
	cfg := &Config{Background: "nope", Image: ImageConfig{Tint: "#12"}}
	if _, err := cfg.BackgroundColor(); err == nil {
		t.Error("expected background error")
	}
	if _, err := cfg.TintColor(); err == nil {
		t.Error("expected tint error")
	}
}

func TestViewAttributes_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())
	a, err := (&Config{}).ViewAttributes(nil)
	if err != nil {
		t.Fatalf("ViewAttributes: %v", err)
	}
	if a != progress.DefaultAttributes() {
		t.Errorf("got %+v, want defaults", a)
	}
}

func TestViewAttributes_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	if err := os.WriteFile(path, []byte("progress: 30\nmax: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := (&Config{Attributes: path}).ViewAttributes(nil)
	if err != nil {
		t.Fatalf("ViewAttributes: %v", err)
	}
	if a.Progress != 30 || a.Max != 60 {
		t.Errorf("got progress %d max %d", a.Progress, a.Max)
	}

	if _, err := (&Config{Attributes: path + ".missing"}).ViewAttributes(nil); err == nil {
		t.Error("expected error for a missing explicit file")
	}
}
