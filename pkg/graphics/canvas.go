package graphics

import "image"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Approximate bilinear
	FilterQualityMedium                      // Bilinear
	FilterQualityHigh                        // Catmull-Rom
)

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// SaveLayer saves a new offscreen layer. When the matching Restore is
	// called the layer is composited using paint's Alpha and ColorFilter.
	// A nil paint composites the layer unchanged.
	SaveLayer(bounds Rect, paint *Paint)

	// Restore pops the most recent Save or SaveLayer.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws an image from srcRect to dstRect with sampling quality.
	// srcRect selects the source region (zero rect = entire image).
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

// DrawArc strokes or fills an arc of the oval using paint. See ArcPath for
// the angle convention.
func DrawArc(canvas Canvas, oval Rect, startDeg, sweepDeg float64, paint Paint) {
	path := ArcPath(oval, startDeg, sweepDeg)
	if path.IsEmpty() {
		return
	}
	canvas.DrawPath(path, paint)
}
