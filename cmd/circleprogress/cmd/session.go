package cmd

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/go-drift/circleprogress/cmd/circleprogress/internal/config"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
	"github.com/go-drift/circleprogress/pkg/progress"
	"github.com/go-drift/circleprogress/pkg/resources"
)

// session is the resolved state shared by the output commands.
type session struct {
	cfg   *config.Config
	reg   *resources.Registry
	attrs progress.Attributes
	bg    graphics.Color
	tint  graphics.Color
}

func loadSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	reg := resources.NewRegistry()
	attrs, err := cfg.ViewAttributes(reg)
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	tint, err := cfg.TintColor()
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, reg: reg, attrs: attrs, bg: bg, tint: tint}, nil
}

// imageSize returns the configured crop size, at least one pixel.
func (s *session) imageSize() int {
	return max(s.cfg.Image.Size, 1)
}

// attach gives attrs a center image for offline rendering: the configured
// image path cropped to a circle, or the placeholder when nothing else is
// set.
func (s *session) attach() {
	size := s.imageSize()
	switch {
	case s.cfg.Image.Path != "":
		path := s.cfg.Image.Path
		s.attrs.Image = s.reg.Register(func() (image.Image, error) {
			img, err := resources.DecodeFile(path)
			if err != nil {
				return nil, err
			}
			return resources.CropCircle(img, size), nil
		})
	case s.attrs.Image == progress.NoImage:
		s.attrs.Image = s.reg.RegisterImage(resources.Placeholder(size, resources.PlaceholderColor))
	}
}

func (s *session) newView(opts ...progress.Option) *progress.View {
	opts = append([]progress.Option{
		progress.WithResolver(s.reg),
		progress.WithDensity(s.cfg.ScreenDensity()),
	}, opts...)
	return progress.New(s.attrs, opts...)
}

// rasterize lays the view out in a size x size square and paints it over
// the background.
func (s *session) rasterize(v *progress.View, size, padding int) *image.RGBA {
	spec := layout.ExactlySpec(size)
	v.Measure(spec, spec, layout.EdgeInsetsAll(padding))
	c := graphics.NewRasterCanvas(size, size)
	c.Clear(s.bg)
	v.Paint(c)
	return c.Image()
}

// writePNG encodes img to path, creating parent directories.
func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
