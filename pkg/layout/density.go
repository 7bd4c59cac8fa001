package layout

// Density is the ratio of device pixels to density-independent pixels.
// 1 corresponds to a 160dpi screen.
type Density float64

// DefaultDensity is used when a host does not report its screen density.
const DefaultDensity Density = 1

// DpToPx converts density-independent units to whole device pixels,
// truncating toward zero.
func (d Density) DpToPx(dp float64) int {
	if d <= 0 {
		d = DefaultDensity
	}
	return int(dp * float64(d))
}
