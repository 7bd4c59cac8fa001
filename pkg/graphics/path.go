package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

// ArcPath builds the outline of an elliptical arc inscribed in oval.
//
// Angles are in degrees. 0° points at 3 o'clock and positive sweeps run
// clockwise on screen, so a start of 270° is 12 o'clock. Sweeps beyond a full
// turn are clamped to ±360°. A zero sweep yields an empty path.
func ArcPath(oval Rect, startDeg, sweepDeg float64) *Path {
	path := NewPath()
	if floatEqual(sweepDeg, 0) || oval.IsEmpty() {
		return path
	}
	sweepDeg = math.Max(-360, math.Min(360, sweepDeg))

	center := oval.Center()
	rx := oval.Width() / 2
	ry := oval.Height() / 2
	startAngle := startDeg * math.Pi / 180
	sweepAngle := sweepDeg * math.Pi / 180

	path.MoveTo(center.X+rx*math.Cos(startAngle), center.Y+ry*math.Sin(startAngle))

	// Split into segments of at most 90 degrees for a tight bezier fit.
	const maxSegmentAngle = math.Pi / 2
	remaining := sweepAngle
	current := startAngle
	for math.Abs(remaining) > epsilon {
		segment := remaining
		if math.Abs(segment) > maxSegmentAngle {
			segment = math.Copysign(maxSegmentAngle, segment)
		}
		// k = 4/3 * tan(angle/4)
		k := (4.0 / 3.0) * math.Tan(segment/4)
		end := current + segment

		x0 := center.X + rx*math.Cos(current)
		y0 := center.Y + ry*math.Sin(current)
		x3 := center.X + rx*math.Cos(end)
		y3 := center.Y + ry*math.Sin(end)

		path.CubicTo(
			x0-k*rx*math.Sin(current), y0+k*ry*math.Cos(current),
			x3+k*rx*math.Sin(end), y3-k*ry*math.Cos(end),
			x3, y3,
		)

		current = end
		remaining -= segment
	}
	return path
}
