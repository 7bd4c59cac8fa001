package layout

import "fmt"

// MeasureMode says how a parent constrains one dimension of a child.
type MeasureMode int

const (
	// Unspecified places no constraint; the child picks its own size.
	Unspecified MeasureMode = iota
	// AtMost lets the child be as large as Size but no larger.
	AtMost
	// Exactly forces the child to Size.
	Exactly
)

// String returns a human-readable representation of the measure mode.
func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case AtMost:
		return "at_most"
	case Exactly:
		return "exactly"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is the constraint for one dimension in device pixels.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// ExactlySpec returns a spec forcing size.
func ExactlySpec(size int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

// AtMostSpec returns a spec capping size.
func AtMostSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

// UnspecifiedSpec returns an unconstrained spec.
func UnspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

// DefaultSize returns preferred when the spec is unconstrained and the
// spec's size otherwise.
func DefaultSize(preferred int, spec MeasureSpec) int {
	if spec.Mode == Unspecified {
		return preferred
	}
	return spec.Size
}
