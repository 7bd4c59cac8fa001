package progress

import (
	"image"

	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
)

// ArcStart is 12 o'clock in graphics.ArcPath angles.
const ArcStart = 270.0

// State is a snapshot of the progress values.
type State struct {
	Progress int
	Max      int
	// Percent is Progress rescaled to 0..100.
	Percent int
}

// Sweep returns the progress arc's sweep in degrees.
func (s State) Sweep() float64 {
	return 360 * float64(s.Percent) / 100
}

// Frame is everything Render needs to draw one frame.
type Frame struct {
	State      State
	Arcs       ArcPaints
	Image      image.Image
	ImagePaint ImagePaint
	Geometry   layout.ArcGeometry

	ProgressHidden bool
	ImageHidden    bool
}

// Render draws f onto canvas: the full background ring, the progress arc
// clockwise from 12 o'clock, then the center image.
func Render(canvas graphics.Canvas, f Frame) {
	if !f.ProgressHidden {
		arc := f.Geometry.ArcRect
		graphics.DrawArc(canvas, arc, ArcStart, 360, f.Arcs.Background)
		graphics.DrawArc(canvas, arc, ArcStart, f.State.Sweep(), f.Arcs.Progress)
	}

	if f.ImageHidden || f.Image == nil || f.Geometry.ImageRect.IsEmpty() {
		return
	}
	dst := f.Geometry.ImageRect
	if layer := f.ImagePaint.LayerPaint(); layer != nil {
		canvas.SaveLayer(dst, layer)
		defer canvas.Restore()
	}
	canvas.DrawImageRect(f.Image, graphics.Rect{}, dst, graphics.FilterQualityMedium)
}
