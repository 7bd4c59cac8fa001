// Package config holds the CLI settings read through viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/go-drift/circleprogress/pkg/animation"
	"github.com/go-drift/circleprogress/pkg/attrs"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
	"github.com/go-drift/circleprogress/pkg/progress"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "CIRCLEPROGRESS"

// DefaultAttributesFile is read from the working directory when no
// attributes file is configured. It may be absent.
const DefaultAttributesFile = "circleprogress.yaml"

// ImageConfig describes the center image.
type ImageConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
	Size int    `yaml:"size" mapstructure:"size"`
	Tint string `yaml:"tint" mapstructure:"tint"`
}

// RenderConfig controls single frame output.
type RenderConfig struct {
	Size    int    `yaml:"size" mapstructure:"size"`
	Padding int    `yaml:"padding" mapstructure:"padding"`
	Out     string `yaml:"out" mapstructure:"out"`
}

// FramesConfig controls animation frame output.
type FramesConfig struct {
	Dir      string        `yaml:"dir" mapstructure:"dir"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
	Grow     bool          `yaml:"grow" mapstructure:"grow"`
}

// Config is the top-level configuration structure.
type Config struct {
	Attributes string       `yaml:"attributes" mapstructure:"attributes"`
	Background string       `yaml:"background" mapstructure:"background"`
	Density    float64      `yaml:"density" mapstructure:"density"`
	Verbose    bool         `yaml:"verbose" mapstructure:"verbose"`
	LogFile    string       `yaml:"log_file" mapstructure:"log_file"`
	Image      ImageConfig  `yaml:"image" mapstructure:"image"`
	Render     RenderConfig `yaml:"render" mapstructure:"render"`
	Frames     FramesConfig `yaml:"frames" mapstructure:"frames"`
}

// SetDefaults registers the default configuration values in viper.
// Must be called before viper.ReadInConfig so that defaults are applied
// when a key is absent from the config file.
func SetDefaults() {
	viper.SetDefault("attributes", "")
	viper.SetDefault("background", "#000000")
	viper.SetDefault("density", float64(layout.DefaultDensity))
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("image.path", "")
	viper.SetDefault("image.size", 100)
	viper.SetDefault("image.tint", "#FFFFFF")
	viper.SetDefault("render.size", 200)
	viper.SetDefault("render.padding", 0)
	viper.SetDefault("render.out", "circleprogress.png")
	viper.SetDefault("frames.dir", "frames")
	viper.SetDefault("frames.interval", animation.DefaultPlayInterval)
	viper.SetDefault("frames.grow", true)
}

// Load reads the active viper configuration and returns a Config struct.
// SetDefaults must have been called before this function.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// ViewAttributes loads the attributes file and converts it. Image paths in
// the file are registered with reg. An unset path falls back to
// DefaultAttributesFile, which may be missing.
func (c *Config) ViewAttributes(reg attrs.FileRegistry) (progress.Attributes, error) {
	var (
		f   *attrs.File
		err error
	)
	if c.Attributes == "" {
		f, err = attrs.LoadOptional(DefaultAttributesFile)
	} else {
		f, err = attrs.Load(c.Attributes)
	}
	if err != nil {
		return progress.Attributes{}, err
	}
	return f.Attributes(reg)
}

// BackgroundColor parses the background setting.
func (c *Config) BackgroundColor() (graphics.Color, error) {
	bg, err := graphics.ParseColor(c.Background)
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}

// TintColor parses the image tint setting.
func (c *Config) TintColor() (graphics.Color, error) {
	tint, err := graphics.ParseColor(c.Image.Tint)
	if err != nil {
		return 0, fmt.Errorf("image tint: %w", err)
	}
	return tint, nil
}

// ScreenDensity returns the configured density, falling back to the
// default for non-positive values.
func (c *Config) ScreenDensity() layout.Density {
	if c.Density <= 0 {
		return layout.DefaultDensity
	}
	return layout.Density(c.Density)
}
