package layout

// EdgeInsets represents padding on each side of a box, in device pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom int
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v int) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsOnly returns insets with explicit left, top, right, bottom values.
func EdgeInsetsOnly(left, top, right, bottom int) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Max returns the largest of the four insets.
func (e EdgeInsets) Max() int {
	return max(e.Left, e.Top, e.Right, e.Bottom)
}
