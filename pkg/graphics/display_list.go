package graphics

import "image"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) SaveLayer(bounds Rect, paint *Paint) {
	var p *Paint
	if paint != nil {
		cp := *paint
		if paint.ColorFilter != nil {
			cf := *paint.ColorFilter
			cp.ColorFilter = &cf
		}
		p = &cp
	}
	c.recorder.append(opSaveLayer{bounds: bounds, paint: p})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(opCircle{center: center, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	// Copy so later mutation by the caller doesn't alter the recording.
	c.recorder.append(opPath{path: path.Clone(), paint: paint})
}

func (c *recordingCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	c.recorder.append(opImageRect{img: img, src: srcRect, dst: dstRect, quality: quality})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	canvas.Save()
}

type opSaveLayer struct {
	bounds Rect
	paint  *Paint
}

func (op opSaveLayer) execute(canvas Canvas) {
	canvas.SaveLayer(op.bounds, op.paint)
}

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opCircle struct {
	center Offset
	radius float64
	paint  Paint
}

func (op opCircle) execute(canvas Canvas) {
	canvas.DrawCircle(op.center, op.radius, op.paint)
}

type opPath struct {
	path  *Path
	paint Paint
}

func (op opPath) execute(canvas Canvas) {
	canvas.DrawPath(op.path, op.paint)
}

type opImageRect struct {
	img      image.Image
	src, dst Rect
	quality  FilterQuality
}

func (op opImageRect) execute(canvas Canvas) {
	canvas.DrawImageRect(op.img, op.src, op.dst, op.quality)
}
