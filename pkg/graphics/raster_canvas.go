package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// closeTolerance is how near the last point of a subpath must be to its
// first point for a stroke to be joined into a closed loop.
const closeTolerance = 0.001

// RasterCanvas is a Canvas that renders directly into an *image.RGBA.
//
// Fills and strokes are rasterized with golang.org/x/image/vector. Strokes are
// outlined by offsetting the flattened path along its vertex normals, which
// produces butt caps and is accurate for smooth paths such as arcs; sharp
// corners are approximated with a clamped miter.
type RasterCanvas struct {
	base   *image.RGBA
	layers []*rasterLayer
	states []rasterState
	origin Offset
}

type rasterLayer struct {
	img    *image.RGBA
	bounds image.Rectangle
	paint  *Paint
}

type rasterState struct {
	origin Offset
	layer  bool
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewRasterCanvasFor wraps an existing image. Drawing mutates dst.
func NewRasterCanvasFor(dst *image.RGBA) *RasterCanvas {
	return &RasterCanvas{base: dst}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.base
}

func (c *RasterCanvas) target() *image.RGBA {
	if n := len(c.layers); n > 0 {
		return c.layers[n-1].img
	}
	return c.base
}

// Save pushes the current transform state.
func (c *RasterCanvas) Save() {
	c.states = append(c.states, rasterState{origin: c.origin})
}

// SaveLayer redirects drawing into an offscreen layer until Restore.
func (c *RasterCanvas) SaveLayer(bounds Rect, paint *Paint) {
	c.states = append(c.states, rasterState{origin: c.origin, layer: true})
	device := bounds.Translate(c.origin.X, c.origin.Y)
	r := image.Rect(
		int(math.Floor(device.Left)), int(math.Floor(device.Top)),
		int(math.Ceil(device.Right)), int(math.Ceil(device.Bottom)),
	).Intersect(c.base.Bounds())
	c.layers = append(c.layers, &rasterLayer{
		img:    image.NewRGBA(c.base.Bounds()),
		bounds: r,
		paint:  paint,
	})
}

// Restore pops the most recent Save or SaveLayer. Unbalanced calls are ignored.
func (c *RasterCanvas) Restore() {
	n := len(c.states)
	if n == 0 {
		return
	}
	state := c.states[n-1]
	c.states = c.states[:n-1]
	c.origin = state.origin
	if !state.layer {
		return
	}
	layer := c.layers[len(c.layers)-1]
	c.layers = c.layers[:len(c.layers)-1]
	compositeLayer(c.target(), layer)
}

// Translate moves the origin by the given offset.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.origin.X += dx
	c.origin.Y += dy
}

// Clear fills the entire canvas with the given color.
func (c *RasterCanvas) Clear(col Color) {
	dst := c.target()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.MoveTo(rect.Left, rect.Top)
	path.LineTo(rect.Right, rect.Top)
	path.LineTo(rect.Right, rect.Bottom)
	path.LineTo(rect.Left, rect.Bottom)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawCircle draws a circle with the provided paint.
func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	oval := Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
	path := ArcPath(oval, 0, 360)
	path.Close()
	c.DrawPath(path, paint)
}

// DrawPath fills or strokes path with paint.
func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	subpaths := flatten(path, c.origin)
	dst := c.target()
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	switch paint.Style {
	case PaintStyleStroke:
		if paint.StrokeWidth <= 0 {
			return
		}
		for _, sp := range subpaths {
			addStroke(z, sp, paint.StrokeWidth/2)
		}
	default:
		for _, sp := range subpaths {
			addPolygon(z, sp.points)
		}
	}

	col := paint.Color.NRGBA()
	alpha := paint.Alpha
	if alpha < 0 {
		alpha = 1
	}
	if alpha == 0 {
		return
	}
	col.A = uint8(float64(col.A)*clamp01(alpha) + 0.5)

	mask := image.NewAlpha(b)
	z.DrawOp = draw.Src
	z.Draw(mask, b, image.Opaque, image.Point{})
	if !paint.AntiAlias {
		hardenMask(mask)
	}
	blendMask(dst, mask, col, paint.BlendMode)
}

// hardenMask snaps coverage to fully in or fully out.
func hardenMask(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}

// blendMask composites the constant color src onto dst through mask using
// mode. Pixels are blended in proportion to their coverage; uncovered pixels
// keep their value whatever the mode.
func blendMask(dst *image.RGBA, mask *image.Alpha, src color.NRGBA, mode BlendMode) {
	if mode == BlendModeSrcOver {
		if src.A == 0 {
			return
		}
		draw.DrawMask(dst, mask.Bounds(), image.NewUniform(src), image.Point{}, mask, mask.Bounds().Min, draw.Over)
		return
	}
	filter := ColorFilterTint(RGBA8(src.R, src.G, src.B, src.A), mode)
	r := dst.Bounds().Intersect(mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			d := dst.RGBAAt(x, y)
			s := filter.Apply(d)
			dst.SetRGBA(x, y, color.RGBA{
				R: lerp8(d.R, s.R, m),
				G: lerp8(d.G, s.G, m),
				B: lerp8(d.B, s.B, m),
				A: lerp8(d.A, s.A, m),
			})
		}
	}
}

func lerp8(a, b uint8, t uint32) uint8 {
	return uint8((uint32(a)*(0xff-t) + uint32(b)*t + 0x7f) / 0xff)
}

// DrawImageRect scales the src region of img into dstRect.
func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	if img == nil {
		return
	}
	ib := img.Bounds()
	src := ib
	if srcRect != (Rect{}) {
		src = image.Rect(
			ib.Min.X+int(srcRect.Left), ib.Min.Y+int(srcRect.Top),
			ib.Min.X+int(srcRect.Right), ib.Min.Y+int(srcRect.Bottom),
		).Intersect(ib)
	}
	device := dstRect.Translate(c.origin.X, c.origin.Y)
	dst := image.Rect(
		int(math.Round(device.Left)), int(math.Round(device.Top)),
		int(math.Round(device.Right)), int(math.Round(device.Bottom)),
	)
	if src.Empty() || dst.Empty() {
		return
	}
	scalerFor(quality).Scale(c.target(), dst, img, src, xdraw.Over, nil)
}

// Size returns the size of the canvas in pixels.
func (c *RasterCanvas) Size() Size {
	b := c.base.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func scalerFor(q FilterQuality) xdraw.Scaler {
	switch q {
	case FilterQualityNone:
		return xdraw.NearestNeighbor
	case FilterQualityLow:
		return xdraw.ApproxBiLinear
	case FilterQualityMedium:
		return xdraw.BiLinear
	default:
		return xdraw.CatmullRom
	}
}

// compositeLayer applies the layer paint and draws it source-over onto dst.
func compositeLayer(dst *image.RGBA, layer *rasterLayer) {
	alpha := 1.0
	var filter *ColorFilter
	if layer.paint != nil {
		alpha = clamp01(layer.paint.Alpha)
		filter = layer.paint.ColorFilter
	}
	for y := layer.bounds.Min.Y; y < layer.bounds.Max.Y; y++ {
		for x := layer.bounds.Min.X; x < layer.bounds.Max.X; x++ {
			s := layer.img.RGBAAt(x, y)
			if filter != nil {
				s = filter.Apply(s)
			}
			if alpha < 1 {
				s = color.RGBA{
					R: uint8(float64(s.R)*alpha + 0.5),
					G: uint8(float64(s.G)*alpha + 0.5),
					B: uint8(float64(s.B)*alpha + 0.5),
					A: uint8(float64(s.A)*alpha + 0.5),
				}
			}
			if s.A == 0 {
				continue
			}
			d := dst.RGBAAt(x, y)
			inv := 255 - uint32(s.A)
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(s.R) + uint32(d.R)*inv/255),
				G: uint8(uint32(s.G) + uint32(d.G)*inv/255),
				B: uint8(uint32(s.B) + uint32(d.B)*inv/255),
				A: uint8(uint32(s.A) + uint32(d.A)*inv/255),
			})
		}
	}
}

type subpath struct {
	points []Offset
	closed bool
}

// flatten converts path commands into polylines in device space.
func flatten(path *Path, origin Offset) []subpath {
	var out []subpath
	var cur *subpath
	var pen Offset
	start := func(p Offset) {
		out = append(out, subpath{points: []Offset{p}})
		cur = &out[len(out)-1]
	}
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			pen = Offset{X: cmd.Args[0] + origin.X, Y: cmd.Args[1] + origin.Y}
			start(pen)
		case PathOpLineTo:
			if cur == nil {
				start(pen)
			}
			pen = Offset{X: cmd.Args[0] + origin.X, Y: cmd.Args[1] + origin.Y}
			cur.points = append(cur.points, pen)
		case PathOpCubicTo:
			if cur == nil {
				start(pen)
			}
			p1 := Offset{X: cmd.Args[0] + origin.X, Y: cmd.Args[1] + origin.Y}
			p2 := Offset{X: cmd.Args[2] + origin.X, Y: cmd.Args[3] + origin.Y}
			p3 := Offset{X: cmd.Args[4] + origin.X, Y: cmd.Args[5] + origin.Y}
			cur.points = appendCubic(cur.points, pen, p1, p2, p3)
			pen = p3
		case PathOpClose:
			if cur != nil {
				cur.closed = true
				pen = cur.points[0]
				cur = nil
			}
		}
	}
	for i := range out {
		sp := &out[i]
		n := len(sp.points)
		if n > 2 && distance(sp.points[0], sp.points[n-1]) < closeTolerance {
			sp.points = sp.points[:n-1]
			sp.closed = true
		}
	}
	return out
}

// appendCubic subdivides a cubic bezier into line segments.
func appendCubic(pts []Offset, p0, p1, p2, p3 Offset) []Offset {
	net := distance(p0, p1) + distance(p1, p2) + distance(p2, p3)
	steps := int(math.Ceil(net / 3))
	steps = max(8, min(steps, 256))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		cc := 3 * mt * t * t
		d := t * t * t
		pts = append(pts, Offset{
			X: a*p0.X + b*p1.X + cc*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + cc*p2.Y + d*p3.Y,
		})
	}
	return pts
}

func distance(a, b Offset) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func addPolygon(z *vector.Rasterizer, pts []Offset) {
	if len(pts) < 3 {
		return
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// addStroke adds the outline of a stroked polyline. Closed subpaths become an
// outer loop plus a reversed inner loop so the interior cancels out.
func addStroke(z *vector.Rasterizer, sp subpath, half float64) {
	pts := dedupe(sp.points)
	n := len(pts)
	if n < 2 {
		return
	}
	left := make([]Offset, n)
	right := make([]Offset, n)
	for i := range pts {
		nx, ny := vertexNormal(pts, i, sp.closed)
		left[i] = Offset{X: pts[i].X + nx*half, Y: pts[i].Y + ny*half}
		right[i] = Offset{X: pts[i].X - nx*half, Y: pts[i].Y - ny*half}
	}
	if sp.closed {
		outer, inner := left, right
		if math.Abs(signedArea(right)) > math.Abs(signedArea(left)) {
			outer, inner = right, left
		}
		addPolygon(z, outer)
		// A stroke wider than the loop's radius covers its center: the
		// inner offset has crossed over and must not be cut out.
		if half >= inradius(pts) {
			return
		}
		reversed := make([]Offset, n)
		for i := range inner {
			reversed[n-1-i] = inner[i]
		}
		addPolygon(z, reversed)
		return
	}
	outline := make([]Offset, 0, 2*n)
	outline = append(outline, left...)
	for i := n - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	addPolygon(z, outline)
}

// signedArea is the shoelace area of a closed polygon.
func signedArea(pts []Offset) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// inradius is the distance from the vertex centroid to the nearest vertex.
func inradius(pts []Offset) float64 {
	var c Offset
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	r := math.Inf(1)
	for _, p := range pts {
		r = math.Min(r, distance(c, p))
	}
	return r
}

func dedupe(pts []Offset) []Offset {
	out := make([]Offset, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && distance(out[len(out)-1], p) < epsilon {
			continue
		}
		out = append(out, p)
	}
	return out
}

// vertexNormal returns the miter direction at vertex i scaled so the offset
// keeps a constant stroke width, clamped to avoid spikes at sharp corners.
func vertexNormal(pts []Offset, i int, closed bool) (float64, float64) {
	n := len(pts)
	var prev, next Offset
	hasPrev, hasNext := i > 0, i < n-1
	if hasPrev {
		prev = pts[i-1]
	} else if closed {
		prev, hasPrev = pts[n-1], true
	}
	if hasNext {
		next = pts[i+1]
	} else if closed {
		next, hasNext = pts[0], true
	}

	var n1x, n1y, n2x, n2y float64
	if hasPrev {
		n1x, n1y = segmentNormal(prev, pts[i])
	}
	if hasNext {
		n2x, n2y = segmentNormal(pts[i], next)
	}
	switch {
	case !hasPrev:
		return n2x, n2y
	case !hasNext:
		return n1x, n1y
	}
	mx, my := n1x+n2x, n1y+n2y
	l := math.Hypot(mx, my)
	if l < epsilon {
		return n1x, n1y
	}
	mx, my = mx/l, my/l
	cos := mx*n1x + my*n1y
	const miterLimit = 4.0
	scale := 1 / math.Max(cos, 1/miterLimit)
	return mx * scale, my * scale
}

func segmentNormal(a, b Offset) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l < epsilon {
		return 0, 0
	}
	return -dy / l, dx / l
}
