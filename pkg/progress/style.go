package progress

import (
	"github.com/go-drift/circleprogress/pkg/graphics"
)

// ArcStyle is the visual configuration of the two arcs.
type ArcStyle struct {
	StrokeWidth     int
	ProgressColor   graphics.Color
	BackgroundColor graphics.Color
}

// ArcPaints are the paints for the background ring and the progress arc.
type ArcPaints struct {
	Background graphics.Paint
	Progress   graphics.Paint
}

// Paints builds butt-capped, bevel-joined stroke paints for the style.
func (s ArcStyle) Paints() ArcPaints {
	return ArcPaints{
		Background: arcPaint(s.BackgroundColor, s.StrokeWidth),
		Progress:   arcPaint(s.ProgressColor, s.StrokeWidth),
	}
}

func arcPaint(c graphics.Color, width int) graphics.Paint {
	p := graphics.StrokePaint(c, float64(width))
	p.StrokeCap = graphics.CapButt
	p.StrokeJoin = graphics.JoinBevel
	return p
}

// ImagePaint describes how the center image is composited.
type ImagePaint struct {
	// Tint is nil when the image is drawn untinted.
	Tint *graphics.ColorFilter
}

// NewImagePaint returns the image paint for an optional tint color. The tint
// is applied with source-atop blending so transparent pixels stay transparent.
func NewImagePaint(tint *graphics.Color) ImagePaint {
	if tint == nil {
		return ImagePaint{}
	}
	cf := graphics.ColorFilterTint(*tint, graphics.BlendModeSrcATop)
	return ImagePaint{Tint: &cf}
}

// LayerPaint returns the paint for the layer the image is drawn in, or nil
// when no layer is needed.
func (p ImagePaint) LayerPaint() *graphics.Paint {
	if p.Tint == nil {
		return nil
	}
	paint := graphics.DefaultPaint()
	paint.ColorFilter = p.Tint
	return &paint
}
