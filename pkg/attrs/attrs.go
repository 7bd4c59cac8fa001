// Package attrs loads progress view attributes from YAML.
//
// A file looks like:
//
//	schema: v1
//	progress_width: 12
//	progress: 40
//	max: 100
//	image: logo.png        # or an integer resource handle
//	progress_color: "#FF4081"
//	progress_background_color: "#757575"
//	image_tint: "#80FFFFFF"
//
// Every key is optional; missing keys keep the view defaults.
package attrs

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/circleprogress/pkg/errors"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/progress"
)

// SchemaVersion is the newest attribute schema this package understands.
// Files declaring another v1 minor or patch are accepted.
const SchemaVersion = "v1.0.0"

// File is a parsed attributes file.
type File struct {
	Schema                  string    `yaml:"schema,omitempty"`
	ProgressWidth           *int      `yaml:"progress_width,omitempty"`
	Progress                *int      `yaml:"progress,omitempty"`
	Image                   *ImageRef `yaml:"image,omitempty"`
	ProgressColor           string    `yaml:"progress_color,omitempty"`
	ProgressBackgroundColor string    `yaml:"progress_background_color,omitempty"`
	Max                     *int      `yaml:"max,omitempty"`
	ImageTint               string    `yaml:"image_tint,omitempty"`

	// dir resolves relative image paths; empty means the working directory.
	dir string
}

// ImageRef is either a resource handle or an image file path.
type ImageRef struct {
	Handle int
	Path   string
}

// UnmarshalYAML accepts an integer handle or a path string.
func (r *ImageRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: image must be a handle or a path", value.Line)
	}
	if value.ShortTag() == "!!int" {
		r.Path = ""
		return value.Decode(&r.Handle)
	}
	r.Handle = progress.NoImage
	r.Path = value.Value
	return nil
}

// FileRegistry hands out image handles for file paths.
type FileRegistry interface {
	RegisterFile(path string) int
}

// Load reads and parses the attributes file at path. Relative image paths
// are resolved against the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// LoadOptional is like Load but returns an empty File when path does not
// exist.
func LoadOptional(path string) (*File, error) {
	f, err := Load(path)
	if stderrors.Is(err, os.ErrNotExist) {
		return &File{}, nil
	}
	return f, err
}

// Parse decodes YAML attributes. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError("schema", nil, err)
	}
	if err := checkSchema(f.Schema); err != nil {
		return nil, err
	}
	return &f, nil
}

func checkSchema(schema string) error {
	if schema == "" {
		return nil
	}
	v := schema
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return configError("schema", schema, stderrors.New("not a semantic version"))
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return configError("schema", schema, fmt.Errorf("unsupported major version, want %s", semver.Major(SchemaVersion)))
	}
	return nil
}

// Attributes converts the file into view attributes on top of
// progress.DefaultAttributes. Image paths are registered with reg, which may
// be nil when the file only uses handles.
func (f *File) Attributes(reg FileRegistry) (progress.Attributes, error) {
	attrs := progress.DefaultAttributes()
	if f.ProgressWidth != nil {
		attrs.ProgressWidth = *f.ProgressWidth
	}
	if f.Max != nil {
		if *f.Max <= 0 {
			return attrs, configError("max", *f.Max, stderrors.New("must be positive"))
		}
		attrs.Max = *f.Max
	}
	if f.Progress != nil {
		attrs.Progress = *f.Progress
	}

	var err error
	if attrs.ProgressColor, err = parseColor("progress_color", f.ProgressColor, attrs.ProgressColor); err != nil {
		return attrs, err
	}
	if attrs.ProgressBackgroundColor, err = parseColor("progress_background_color", f.ProgressBackgroundColor, attrs.ProgressBackgroundColor); err != nil {
		return attrs, err
	}
	if f.ImageTint != "" {
		tint, err := parseColor("image_tint", f.ImageTint, 0)
		if err != nil {
			return attrs, err
		}
		attrs.ImageTint = &tint
	}

	if f.Image != nil {
		switch {
		case f.Image.Path != "":
			if reg == nil {
				return attrs, configError("image", f.Image.Path, stderrors.New("no registry for image paths"))
			}
			path := f.Image.Path
			if !filepath.IsAbs(path) && f.dir != "" {
				path = filepath.Join(f.dir, path)
			}
			attrs.Image = reg.RegisterFile(path)
		default:
			attrs.Image = f.Image.Handle
		}
	}
	return attrs, nil
}

func parseColor(key, value string, fallback graphics.Color) (graphics.Color, error) {
	if value == "" {
		return fallback, nil
	}
	c, err := graphics.ParseColor(value)
	if err != nil {
		return fallback, configError(key, value, err)
	}
	return c, nil
}

func configError(key string, value any, err error) error {
	return &errors.Error{
		Op:   "attrs." + key,
		Kind: errors.KindConfig,
		Err:  &errors.ConfigError{Key: key, Value: value, Err: err},
	}
}
