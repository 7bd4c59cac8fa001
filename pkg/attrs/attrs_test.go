package attrs

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/circleprogress/pkg/errors"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/progress"
)

type fakeRegistry struct {
	paths []string
}

func (r *fakeRegistry) RegisterFile(path string) int {
	r.paths = append(r.paths, path)
	return 100 + len(r.paths)
}

func TestParse_AllKeys(t *testing.T) {
	f, err := Parse([]byte(`
schema: v1.2.0
progress_width: 12
progress: 40
max: 80
image: 7
progress_color: "#00FF00"
progress_background_color: "#80112233"
image_tint: "#FFFFFF"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := f.Attributes(nil)
	if err != nil {
		t.Fatalf("Attributes: %v", err)
	}

	if a.ProgressWidth != 12 || a.Progress != 40 || a.Max != 80 || a.Image != 7 {
		t.Errorf("attrs = %+v", a)
	}
	if a.ProgressColor != graphics.ColorGreen {
		t.Errorf("ProgressColor = %v, want %v", a.ProgressColor, graphics.ColorGreen)
	}
	if a.ProgressBackgroundColor != graphics.Color(0x80112233) {
		t.Errorf("ProgressBackgroundColor = %v, want #80112233", a.ProgressBackgroundColor)
	}
	if a.ImageTint == nil || *a.ImageTint != graphics.ColorWhite {
		t.Errorf("ImageTint = %v, want white", a.ImageTint)
	}
}

func TestParse_EmptyKeepsDefaults(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a, err := f.Attributes(nil)
	if err != nil {
		t.Fatalf("Attributes: %v", err)
	}
	if a != progress.DefaultAttributes() {
		t.Errorf("attrs = %+v, want defaults", a)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "progres: 4\n"},
		{"bad schema", "schema: latest\n"},
		{"future schema", "schema: v2.0.0\n"},
		{"image list", "image: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParse_SchemaWithoutPrefix(t *testing.T) {
	if _, err := Parse([]byte("schema: \"1.0\"\n")); err != nil {
		t.Errorf("schema 1.0: %v", err)
	}
}

func TestAttributes_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		key  string
	}{
		{"color", "progress_color: pink\n", "progress_color"},
		{"tint", "image_tint: \"#12345\"\n", "image_tint"},
		{"max", "max: 0\n", "max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = f.Attributes(nil)

			var de *errors.Error
			if !stderrors.As(err, &de) || de.Kind != errors.KindConfig {
				t.Fatalf("error = %v, want config error", err)
			}
			var ce *errors.ConfigError
			if !stderrors.As(err, &ce) || ce.Key != tt.key {
				t.Errorf("config key = %v, want %s", ce, tt.key)
			}
		})
	}
}

func TestLoad_ImagePathRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.yaml")
	if err := os.WriteFile(path, []byte("image: art/logo.png\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := &fakeRegistry{}
	a, err := f.Attributes(reg)
	if err != nil {
		t.Fatalf("Attributes: %v", err)
	}
	if a.Image != 101 {
		t.Errorf("Image = %d, want 101", a.Image)
	}
	if want := filepath.Join(dir, "art", "logo.png"); len(reg.paths) != 1 || reg.paths[0] != want {
		t.Errorf("registered %v, want [%s]", reg.paths, want)
	}
}

func TestAttributes_ImagePathNeedsRegistry(t *testing.T) {
	f, err := Parse([]byte("image: logo.png\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Attributes(nil); err == nil {
		t.Error("expected error without registry")
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	f, err := LoadOptional(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if f == nil || f.Image != nil || f.Max != nil {
		t.Errorf("expected empty file, got %+v", f)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want not-exist", err)
	}
}
