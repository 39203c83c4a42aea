package layout

import "math"

// ManualCanvas is an in-memory Canvas whose size changes only through
// Resize. Handlers run synchronously, in subscription order.
type ManualCanvas struct {
	width, height float64
	handlers      []func()
}

var _ Canvas = (*ManualCanvas)(nil)

// NewManualCanvas returns a canvas of the given logical size.
func NewManualCanvas(width, height float64) *ManualCanvas {
	c := &ManualCanvas{}
	c.width, c.height = nonNegative(width), nonNegative(height)
	return c
}

func (c *ManualCanvas) LogicalSize() (float64, float64) { return c.width, c.height }

func (c *ManualCanvas) OnResize(handler func()) {
	if handler != nil {
		c.handlers = append(c.handlers, handler)
	}
}

// Resize sets the logical size and notifies every subscriber. Negative or
// non-finite sizes are treated as 0.
func (c *ManualCanvas) Resize(width, height float64) {
	c.width, c.height = nonNegative(width), nonNegative(height)
	c.Notify()
}

// Notify delivers a resize notification without changing the size.
func (c *ManualCanvas) Notify() {
	for _, h := range c.handlers {
		h()
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RecordingViewport keeps every rect it is handed.
type RecordingViewport struct {
	Rects []PixelRect
}

var _ Viewport = (*RecordingViewport)(nil)

func (v *RecordingViewport) SetRect(rect PixelRect) { v.Rects = append(v.Rects, rect) }

// Last returns the most recent rect.
func (v *RecordingViewport) Last() (PixelRect, bool) {
	if len(v.Rects) == 0 {
		return PixelRect{}, false
	}
	return v.Rects[len(v.Rects)-1], true
}
