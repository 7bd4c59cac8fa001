// Package terminal draws raster frames as colored half-block text.
//
// Each text cell shows two vertically stacked pixels: the upper pixel is the
// foreground of a '▀' glyph and the lower pixel its background. Transparent
// pixels are blended over a fixed background color.
package terminal

import (
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

const halfBlock = "▀"

// Renderer converts images to styled text.
type Renderer struct {
	background graphics.Color
	lg         *lipgloss.Renderer
	trueColor  bool
	styles     map[[2]graphics.Color]lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOutput detects the color profile from w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) { r.lg = lipgloss.NewRenderer(w) }
}

// WithTrueColor forces 24-bit color output regardless of the terminal.
func WithTrueColor() Option {
	return func(r *Renderer) { r.trueColor = true }
}

// NewRenderer creates a renderer blending transparency over background.
func NewRenderer(background graphics.Color, opts ...Option) *Renderer {
	r := &Renderer{
		background: background.WithAlpha8(0xFF),
		lg:         lipgloss.NewRenderer(os.Stdout),
		styles:     make(map[[2]graphics.Color]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.trueColor {
		r.lg.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Background returns the opaque background color.
func (r *Renderer) Background() graphics.Color { return r.background }

// Render returns one line per pair of pixel rows. An odd last row is paired
// with the background.
func (r *Renderer) Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := Blend(img.At(x, y), r.background)
			bottom := r.background
			if y+1 < b.Max.Y {
				bottom = Blend(img.At(x, y+1), r.background)
			}
			sb.WriteString(r.style(top, bottom).Render(halfBlock))
		}
	}
	return sb.String()
}

func (r *Renderer) style(fg, bg graphics.Color) lipgloss.Style {
	key := [2]graphics.Color{fg, bg}
	if s, ok := r.styles[key]; ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(hexRGB(fg))).
		Background(lipgloss.Color(hexRGB(bg)))
	r.styles[key] = s
	return s
}

// Blend composites c over an opaque background and returns an opaque color.
func Blend(c color.Color, background graphics.Color) graphics.Color {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return background
	}
	// colorful.MakeColor un-premultiplies.
	fg, _ := colorful.MakeColor(c)
	bg, _ := colorful.MakeColor(background.NRGBA())
	out := fg
	if a < 0xffff {
		out = bg.BlendRgb(fg, float64(a)/0xffff)
	}
	r, g, b := out.Clamped().RGB255()
	return graphics.RGB(r, g, b)
}

func hexRGB(c graphics.Color) string {
	return colorful.Color{
		R: float64(c>>16&0xff) / 255,
		G: float64(c>>8&0xff) / 255,
		B: float64(c&0xff) / 255,
	}.Hex()
}
