package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/circleprogress/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Param returns the named parameter, or nil.
func (o DisplayOp) Param(name string) any {
	if o.Params == nil {
		return nil
	}
	return o.Params[name]
}

// RecordOps runs paint against a serializing canvas of the given size and
// returns the operations it issued.
func RecordOps(size graphics.Size, paint func(graphics.Canvas)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	paint(canvas)
	return canvas.ops
}

// FilterOps returns the operations named op, in order.
func FilterOps(ops []DisplayOp, op string) []DisplayOp {
	var out []DisplayOp
	for _, o := range ops {
		if o.Op == op {
			out = append(out, o)
		}
	}
	return out
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayer(bounds graphics.Rect, paint *graphics.Paint) {
	params := sortedMap("bounds", serializeRect(bounds))
	if paint != nil {
		params["alpha"] = round2(paint.Alpha)
		if cf := paint.ColorFilter; cf != nil {
			params["filterColor"] = serializeColor(cf.Color)
			params["filterMode"] = cf.BlendMode.String()
		}
	}
	c.ops = append(c.ops, DisplayOp{Op: "saveLayer", Params: params})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: serializePaint(paint, "rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: serializePaint(paint,
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint, "segments", pathSegments(path))
	if start, ok := pathStart(path); ok {
		params["startX"] = round2(start.X)
		params["startY"] = round2(start.Y)
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawImageRect(img image.Image, _, dstRect graphics.Rect, quality graphics.FilterQuality) {
	params := sortedMap("dst", serializeRect(dstRect), "quality", int(quality))
	if img != nil {
		b := img.Bounds()
		params["imageWidth"] = b.Dx()
		params["imageHeight"] = b.Dy()
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint, kvs ...any) map[string]any {
	m := sortedMap(kvs...)
	m["color"] = serializeColor(p.Color)
	m["style"] = p.Style.String()
	if p.Style == graphics.PaintStyleStroke {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	return m
}

func pathSegments(p *graphics.Path) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, cmd := range p.Commands {
		if cmd.Op != graphics.PathOpMoveTo {
			n++
		}
	}
	return n
}

func pathStart(p *graphics.Path) (graphics.Offset, bool) {
	if p == nil || len(p.Commands) == 0 || p.Commands[0].Op != graphics.PathOpMoveTo {
		return graphics.Offset{}, false
	}
	args := p.Commands[0].Args
	return graphics.Offset{X: args[0], Y: args[1]}, true
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Keys come out sorted when the snapshot encoder marshals the map.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
