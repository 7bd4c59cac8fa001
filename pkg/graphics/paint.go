package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// BlendMode controls how source and destination colors are composited.
type BlendMode int

const (
	BlendModeClear    BlendMode = iota // clear
	BlendModeSrc                       // src
	BlendModeDst                       // dst
	BlendModeSrcOver                   // src_over
	BlendModeSrcIn                     // src_in
	BlendModeSrcATop                   // src_atop
	BlendModeModulate                  // modulate
	BlendModeMultiply                  // multiply
)

var blendModeNames = []string{
	"clear", "src", "dst", "src_over", "src_in", "src_atop", "modulate", "multiply",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(blendModeNames) {
		return blendModeNames[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (BlendModeClear with Alpha 0).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels

	StrokeCap  StrokeCap  // How endpoints are drawn; 0 = CapButt
	StrokeJoin StrokeJoin // How corners are drawn; 0 = JoinMiter

	BlendMode BlendMode // Compositing mode
	Alpha     float64   // Overall opacity 0.0-1.0

	// AntiAlias smooths edges when rasterizing.
	AntiAlias bool

	// ColorFilter transforms colors when a layer is composited. It is only
	// honored by SaveLayer, not by individual draw calls.
	ColorFilter *ColorFilter
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		BlendMode:   BlendModeSrcOver,
		Alpha:       1.0,
		AntiAlias:   true,
	}
}

// StrokePaint returns an anti-aliased stroke paint of the given color and width.
func StrokePaint(c Color, width float64) Paint {
	p := DefaultPaint()
	p.Style = PaintStyleStroke
	p.Color = c
	p.StrokeWidth = width
	return p
}
