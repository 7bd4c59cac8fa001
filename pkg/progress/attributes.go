package progress

import "github.com/go-drift/circleprogress/pkg/graphics"

// Stroke width bounds in device pixels.
const (
	MinCircleWidth     = 5
	MaxCircleWidth     = 75
	DefaultCircleWidth = 15
)

// DefaultMax is the progress ceiling used when none is configured.
const DefaultMax = 100

// NoImage is the image handle meaning "no center image".
const NoImage = -1

// Default arc colors.
var (
	DefaultProgressColor   = graphics.Color(0xFFFF4081)
	DefaultBackgroundColor = graphics.Color(0xFF757575)
)

// Attributes holds construction-time configuration for a View.
//
// Start from DefaultAttributes and override fields; a zero Attributes has
// transparent arcs and refers to image handle 0.
type Attributes struct {
	// ProgressWidth is the arc stroke width, clamped to
	// [MinCircleWidth, MaxCircleWidth].
	ProgressWidth int

	// Progress is the initial progress. Values outside [0, Max] are ignored.
	Progress int

	// Image is the initial image resource handle, or NoImage.
	Image int

	ProgressColor           graphics.Color
	ProgressBackgroundColor graphics.Color

	// Max is the progress ceiling. Values <= 0 fall back to DefaultMax.
	Max int

	// ImageTint, when set, tints the center image with source-atop blending.
	ImageTint *graphics.Color
}

// DefaultAttributes returns the attributes of an unconfigured View.
func DefaultAttributes() Attributes {
	return Attributes{
		ProgressWidth:           DefaultCircleWidth,
		Image:                   NoImage,
		ProgressColor:           DefaultProgressColor,
		ProgressBackgroundColor: DefaultBackgroundColor,
		Max:                     DefaultMax,
	}
}

// ClampCircleWidth snaps w into [MinCircleWidth, MaxCircleWidth].
func ClampCircleWidth(w int) int {
	return min(max(w, MinCircleWidth), MaxCircleWidth)
}
