package resources

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

// CropCircle center-crops img to a square, scales it to size×size and masks
// everything outside the inscribed circle to transparent. The circle edge is
// anti-aliased.
func CropCircle(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if img == nil || size <= 0 {
		return dst
	}
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	if side <= 0 {
		return dst
	}
	src := image.Rect(0, 0, side, side).Add(image.Pt(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
	))

	scaled := image.NewRGBA(dst.Bounds())
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, src, xdraw.Src, nil)
	xdraw.DrawMask(dst, dst.Bounds(), scaled, image.Point{}, circleMask{size: size}, image.Point{}, xdraw.Over)
	return dst
}

// circleMask is an alpha mask covering the circle inscribed in a
// size×size square.
type circleMask struct {
	size int
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, m.size, m.size) }

func (m circleMask) At(x, y int) color.Color {
	r := float64(m.size) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	// Coverage falls off linearly across the one-pixel edge band.
	cover := r - math.Hypot(dx, dy) + 0.5
	switch {
	case cover >= 1:
		return color.Alpha{A: 0xff}
	case cover <= 0:
		return color.Alpha{}
	default:
		return color.Alpha{A: uint8(cover*0xff + 0.5)}
	}
}

// PlaceholderColor is the default disc color for Placeholder.
var PlaceholderColor = graphics.RGB(0x3D, 0xDC, 0x84)

// Placeholder draws a launcher-style icon shown while a real image loads:
// a filled disc with a ring and a center dot.
func Placeholder(size int, fill graphics.Color) *image.RGBA {
	c := graphics.NewRasterCanvas(size, size)
	if size <= 0 {
		return c.Image()
	}
	s := float64(size)
	center := graphics.Offset{X: s / 2, Y: s / 2}

	disc := graphics.DefaultPaint()
	disc.Color = fill
	c.DrawCircle(center, s/2, disc)

	ring := graphics.StrokePaint(graphics.ColorWhite.WithAlpha(0.8), math.Max(1, s/16))
	graphics.DrawArc(c, graphics.RectFromLTWH(s/4, s/4, s/2, s/2), 0, 360, ring)

	dot := graphics.DefaultPaint()
	dot.Color = graphics.ColorWhite
	c.DrawCircle(center, s/12, dot)
	return c.Image()
}
