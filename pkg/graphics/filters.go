package graphics

import "image/color"

// ColorFilterType specifies the algorithm used by a ColorFilter.
type ColorFilterType int

const (
	// ColorFilterBlend blends a constant color with the input using a blend mode.
	// Requires Color and BlendMode fields to be set.
	ColorFilterBlend ColorFilterType = iota
)

// ColorFilter transforms colors during compositing.
//
// To apply a ColorFilter, set it on a Paint and pass that Paint to SaveLayer.
// The filter is applied when the layer is composited back to the parent.
type ColorFilter struct {
	// Type specifies the filter algorithm.
	Type ColorFilterType

	// Color is the constant color for ColorFilterBlend.
	Color Color

	// BlendMode controls how Color is blended for ColorFilterBlend.
	BlendMode BlendMode
}

// ColorFilterTint creates a color filter that blends a constant color
// with the input using the specified blend mode.
//
// Common blend modes for tinting:
//   - BlendModeSrcIn: replaces color in opaque areas, useful for icons
//   - BlendModeSrcATop: tints while preserving original transparency
//   - BlendModeMultiply: multiplies colors, darkening the result
func ColorFilterTint(c Color, mode BlendMode) ColorFilter {
	return ColorFilter{
		Type:      ColorFilterBlend,
		Color:     c,
		BlendMode: mode,
	}
}

// Apply filters a single premultiplied pixel. The filter color is the
// source and the pixel is the destination of the blend.
func (cf ColorFilter) Apply(dst color.RGBA) color.RGBA {
	sr, sg, sb, sa := cf.Color.RGBAF()
	// premultiply source
	sr, sg, sb = sr*sa, sg*sa, sb*sa

	dr := float64(dst.R) / maxByte
	dg := float64(dst.G) / maxByte
	db := float64(dst.B) / maxByte
	da := float64(dst.A) / maxByte

	var r, g, b, a float64
	switch cf.BlendMode {
	case BlendModeClear:
	case BlendModeSrc:
		r, g, b, a = sr, sg, sb, sa
	case BlendModeDst:
		return dst
	case BlendModeSrcOver:
		r, g, b = sr+dr*(1-sa), sg+dg*(1-sa), sb+db*(1-sa)
		a = sa + da*(1-sa)
	case BlendModeSrcIn:
		r, g, b, a = sr*da, sg*da, sb*da, sa*da
	case BlendModeSrcATop:
		r, g, b = sr*da+dr*(1-sa), sg*da+dg*(1-sa), sb*da+db*(1-sa)
		a = da
	case BlendModeModulate:
		r, g, b, a = sr*dr, sg*dg, sb*db, sa*da
	case BlendModeMultiply:
		r = sr*(1-da) + dr*(1-sa) + sr*dr
		g = sg*(1-da) + dg*(1-sa) + sg*dg
		b = sb*(1-da) + db*(1-sa) + sb*db
		a = sa + da - sa*da
	default:
		return dst
	}
	return color.RGBA{
		R: toByte(min(r, a)),
		G: toByte(min(g, a)),
		B: toByte(min(b, a)),
		A: toByte(a),
	}
}

func toByte(v float64) uint8 {
	return uint8(clamp01(v)*maxByte + 0.5)
}
