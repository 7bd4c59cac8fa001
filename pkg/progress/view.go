// Package progress implements a circular progress indicator with an
// optional centered image.
//
// A [View] is a plain state holder: setters validate and store values and
// notify an [Invalidator], and [View.Frame] snapshots everything needed to
// draw. [Render] is a pure function of that snapshot, so hosts can paint on
// any [graphics.Canvas] (a raster canvas, a recorder, a test double).
//
// All methods must be called from the host's UI goroutine.
package progress

import (
	"fmt"
	"image"
	"math/bits"

	"github.com/go-drift/circleprogress/pkg/errors"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
)

// Invalidator receives change notifications from a View.
type Invalidator interface {
	// Invalidate requests a redraw.
	Invalidate()
	// RequestLayout requests a new measure pass followed by a redraw.
	RequestLayout()
}

// ImageResolver turns image resource handles into images.
type ImageResolver interface {
	Resolve(handle int) (image.Image, error)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate()    {}
func (noopInvalidator) RequestLayout() {}

// imageSource records which setter provided the center image.
type imageSource int

const (
	imageNone imageSource = iota
	imageBitmap
	imageHandle
)

// Option configures a View.
type Option func(*View)

// WithResolver sets the resolver used for image resource handles.
func WithResolver(r ImageResolver) Option {
	return func(v *View) { v.resolver = r }
}

// WithDensity sets the screen density used for the minimum size.
func WithDensity(d layout.Density) Option {
	return func(v *View) { v.density = d }
}

// WithInvalidator sets the receiver of redraw and re-layout requests.
func WithInvalidator(inv Invalidator) Option {
	return func(v *View) {
		if inv != nil {
			v.invalidator = inv
		}
	}
}

// View is a circular progress indicator.
type View struct {
	progress int
	max      int
	percent  int

	style ArcStyle
	tint  *graphics.Color

	source image.Image
	handle int
	from   imageSource
	// set once a failed resolve of handle was reported
	unresolved bool

	progressHidden bool
	imageHidden    bool

	widthSpec, heightSpec layout.MeasureSpec
	padding               layout.EdgeInsets
	measured              bool
	geometry              layout.ArcGeometry

	resolver    ImageResolver
	density     layout.Density
	invalidator Invalidator
}

// New creates a View from attrs.
func New(attrs Attributes, opts ...Option) *View {
	v := &View{
		max:         attrs.Max,
		handle:      NoImage,
		density:     layout.DefaultDensity,
		invalidator: noopInvalidator{},
		style: ArcStyle{
			StrokeWidth:     ClampCircleWidth(attrs.ProgressWidth),
			ProgressColor:   attrs.ProgressColor,
			BackgroundColor: attrs.ProgressBackgroundColor,
		},
	}
	if v.max <= 0 {
		v.max = DefaultMax
	}
	for _, opt := range opts {
		opt(v)
	}
	if attrs.ImageTint != nil {
		tint := *attrs.ImageTint
		v.tint = &tint
	}
	if attrs.Image != NoImage {
		v.handle = attrs.Image
		v.from = imageHandle
	}
	v.SetProgress(attrs.Progress)
	return v
}

// SetProgress sets the current progress. It does nothing while the progress
// is hidden or when progress is outside [0, Max].
func (v *View) SetProgress(progress int) {
	if v.progressHidden || progress < 0 || progress > v.max {
		return
	}
	v.progress = progress
	v.percent = percentOf(progress, v.max)
	v.invalidator.Invalidate()
}

// percentOf rescales progress to 0..100, truncating. The product is taken
// in 128 bits so a max near math.MaxInt cannot overflow it; 0 <= progress <=
// max keeps the quotient within range.
func percentOf(progress, max int) int {
	if max == 100 {
		return progress
	}
	hi, lo := bits.Mul64(uint64(progress), 100)
	q, _ := bits.Div64(hi, lo, uint64(max))
	return int(q)
}

// Progress returns the current progress.
func (v *View) Progress() int { return v.progress }

// Percent returns the progress rescaled to 0..100.
func (v *View) Percent() int { return v.percent }

// SetMax sets the progress ceiling. Values <= 0 are ignored. The current
// progress is clamped to the new ceiling.
func (v *View) SetMax(max int) {
	if max <= 0 {
		return
	}
	v.max = max
	if v.progress > max {
		v.progress = max
	}
	v.percent = percentOf(v.progress, max)
	v.invalidator.Invalidate()
}

// Max returns the progress ceiling.
func (v *View) Max() int { return v.max }

// SetCircleWidth sets the arc stroke width, snapping it into
// [MinCircleWidth, MaxCircleWidth]. The arc diameter depends on the stroke,
// so this requests a new layout.
func (v *View) SetCircleWidth(width int) {
	v.style.StrokeWidth = ClampCircleWidth(width)
	if v.measured {
		v.remeasure()
	}
	v.invalidator.RequestLayout()
}

// CircleWidth returns the arc stroke width.
func (v *View) CircleWidth() int { return v.style.StrokeWidth }

// SetProgressColor sets the color of the progress arc.
func (v *View) SetProgressColor(c graphics.Color) {
	v.style.ProgressColor = c
	v.invalidator.Invalidate()
}

// SetProgressBackgroundColor sets the color of the background ring.
func (v *View) SetProgressBackgroundColor(c graphics.Color) {
	v.style.BackgroundColor = c
	v.invalidator.Invalidate()
}

// Style returns the current arc style.
func (v *View) Style() ArcStyle { return v.style }

// SetImage replaces the center image with img. A nil img removes it.
func (v *View) SetImage(img image.Image) {
	v.source = img
	v.handle = NoImage
	v.from = imageBitmap
	v.unresolved = false
	if img == nil {
		v.from = imageNone
	}
	v.invalidator.Invalidate()
}

// SetImageResource replaces the center image with the resource handle. The
// handle is resolved when drawing; a handle that cannot be resolved draws no
// image.
func (v *View) SetImageResource(handle int) {
	v.source = nil
	v.handle = handle
	v.from = imageHandle
	v.unresolved = false
	if handle == NoImage {
		v.from = imageNone
	}
	v.invalidator.Invalidate()
}

// ImageResource returns the current image handle, or NoImage when the image
// was set as a bitmap or not at all.
func (v *View) ImageResource() int { return v.handle }

// SetImageTint tints the center image with c.
func (v *View) SetImageTint(c graphics.Color) {
	v.tint = &c
	v.invalidator.Invalidate()
}

// ClearImageTint removes the image tint.
func (v *View) ClearImageTint() {
	v.tint = nil
	v.invalidator.Invalidate()
}

// ImageTint returns the tint color and whether one is set.
func (v *View) ImageTint() (graphics.Color, bool) {
	if v.tint == nil {
		return 0, false
	}
	return *v.tint, true
}

// HideProgress hides both arcs. While hidden, SetProgress is ignored.
func (v *View) HideProgress() {
	v.progressHidden = true
	v.invalidator.Invalidate()
}

// ShowProgress makes the arcs visible again.
func (v *View) ShowProgress() {
	v.progressHidden = false
	v.invalidator.Invalidate()
}

// HideImage hides the center image.
func (v *View) HideImage() {
	v.imageHidden = true
	v.invalidator.Invalidate()
}

// ShowImage makes the center image visible again.
func (v *View) ShowImage() {
	v.imageHidden = false
	v.invalidator.Invalidate()
}

// ProgressHidden reports whether the arcs are hidden.
func (v *View) ProgressHidden() bool { return v.progressHidden }

// ImageHidden reports whether the center image is hidden.
func (v *View) ImageHidden() bool { return v.imageHidden }

// Measure lays the view out for the given constraints and returns the
// measured size. The constraints are remembered so stroke changes can
// re-measure without the host.
func (v *View) Measure(width, height layout.MeasureSpec, padding layout.EdgeInsets) graphics.Size {
	v.widthSpec, v.heightSpec, v.padding = width, height, padding
	v.measured = true
	v.remeasure()
	return v.geometry.Size
}

func (v *View) remeasure() {
	v.geometry = layout.MeasureArc(v.widthSpec, v.heightSpec, v.padding, v.style.StrokeWidth, v.density)
}

// Geometry returns the result of the last measure pass.
func (v *View) Geometry() layout.ArcGeometry { return v.geometry }

// Frame snapshots the view for rendering. If the view has never been
// measured it is measured with unconstrained specs first.
func (v *View) Frame() Frame {
	if !v.measured {
		v.Measure(layout.UnspecifiedSpec(), layout.UnspecifiedSpec(), layout.EdgeInsets{})
	}
	return Frame{
		State: State{
			Progress: v.progress,
			Max:      v.max,
			Percent:  v.percent,
		},
		Arcs:           v.style.Paints(),
		Image:          v.resolveImage(),
		ImagePaint:     NewImagePaint(v.tint),
		Geometry:       v.geometry,
		ProgressHidden: v.progressHidden,
		ImageHidden:    v.imageHidden,
	}
}

// Paint draws the view onto canvas. A panic while drawing is reported and
// the rest of the frame is dropped.
func (v *View) Paint(canvas graphics.Canvas) {
	defer errors.Recover("progress.View.Paint")
	Render(canvas, v.Frame())
}

// resolveImage returns the image to draw, validating resource handles now.
func (v *View) resolveImage() image.Image {
	switch v.from {
	case imageBitmap:
		return v.source
	case imageHandle:
		if v.resolver == nil {
			v.reportUnresolved("no resolver configured", nil)
			return nil
		}
		img, err := v.resolver.Resolve(v.handle)
		if err != nil || img == nil {
			v.reportUnresolved("unresolved", err)
			return nil
		}
		v.unresolved = false
		return img
	default:
		return nil
	}
}

// reportUnresolved reports a failed resolve once per handle assignment;
// repainting the same broken handle stays quiet.
func (v *View) reportUnresolved(reason string, err error) {
	if v.unresolved {
		return
	}
	v.unresolved = true
	errors.Report(&errors.Error{
		Op:   "progress.resolveImage",
		Kind: errors.KindResource,
		Err:  &errors.ResourceError{Handle: v.handle, Reason: reason, Err: err},
	})
}

// String describes the view state for logs.
func (v *View) String() string {
	return fmt.Sprintf("progress.View{progress: %d/%d (%d%%), width: %d}", v.progress, v.max, v.percent, v.style.StrokeWidth)
}
