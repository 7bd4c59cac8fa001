package layout

import (
	"math"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

// MinSizeDp is the size used for both dimensions when neither is fixed.
const MinSizeDp = 120

// imagePaddingScale divides the arc diameter to get the inset of the
// center image from the arc bounds.
const imagePaddingScale = 4.66

// ArcGeometry is the outcome of a measure pass for a circular indicator.
type ArcGeometry struct {
	// Size is the measured size of the whole widget.
	Size graphics.Size
	// ArcRect is the square bounding the arc's stroke centerline.
	ArcRect graphics.Rect
	// ImageRect is the square the center image is scaled into.
	ImageRect graphics.Rect
	// Diameter is the side of ArcRect.
	Diameter float64
	// ImageInset is the distance between ArcRect and ImageRect.
	ImageInset float64
}

// MeasureArc lays out a square arc box inside the given constraints.
//
// When neither dimension is Exactly constrained both collapse to the minimum
// size (MinSizeDp converted with density). Otherwise the smaller resolved
// dimension bounds the square, which is centered along the longer axis. The
// diameter is reduced by the largest single padding and by the stroke width,
// so the full stroke stays inside the widget.
func MeasureArc(width, height MeasureSpec, padding EdgeInsets, strokeWidth int, density Density) ArcGeometry {
	minSize := density.DpToPx(MinSizeDp)

	w := DefaultSize(minSize, width)
	h := DefaultSize(minSize, height)
	dimMin, dimMax := minSize, minSize
	if width.Mode == Exactly || height.Mode == Exactly {
		dimMin = min(w, h)
		dimMax = max(w, h)
	} else {
		w, h = minSize, minSize
	}

	d := max(dimMin-padding.Max()-strokeWidth, 0)
	// Halves are taken in whole pixels before subtracting.
	short := float64(dimMin/2 - d/2)
	long := float64(dimMax/2 - d/2)
	diameter := float64(d)

	var left, top float64
	if h < w {
		left, top = long, short
	} else {
		left, top = short, long
	}

	arc := graphics.RectFromLTWH(left, top, diameter, diameter)
	inset := math.Trunc(diameter / imagePaddingScale)
	img := arc.Deflate(inset)
	if img.IsEmpty() {
		img = graphics.Rect{Left: arc.Center().X, Top: arc.Center().Y, Right: arc.Center().X, Bottom: arc.Center().Y}
	}

	return ArcGeometry{
		Size:       graphics.Size{Width: float64(w), Height: float64(h)},
		ArcRect:    arc,
		ImageRect:  img,
		Diameter:   diameter,
		ImageInset: inset,
	}
}
