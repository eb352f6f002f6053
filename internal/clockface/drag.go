package clockface

// DragState is either Idle or Dragging.
type DragState interface {
	isDragState()
}

type Idle struct{}

// Dragging carries the pointer and window positions captured at pointer-down.
type Dragging struct {
	PointerAnchor Point
	WindowAnchor  Point
}

func (Idle) isDragState()     {}
func (Dragging) isDragState() {}

// DragTracker turns pointer events into window move requests. Pointer positions are
// screen coordinates; the face center is in window coordinates.
type DragTracker struct {
	center Point
	radius float64
	hit    HitTest
	state  DragState
}

func NewDragTracker(center Point, radius float64, hit HitTest) *DragTracker {
	if hit == nil {
		hit = Euclidean
	}
	return &DragTracker{
		center: center,
		radius: radius,
		hit:    hit,
		state:  Idle{},
	}
}

func (t *DragTracker) State() DragState { return t.state }

func (t *DragTracker) Dragging() bool {
	_, ok := t.state.(Dragging)
	return ok
}

// SetCenter moves the face center, e.g. after the window was resized.
func (t *DragTracker) SetCenter(center Point) { t.center = center }

// PointerDown starts a drag if p lands on the face of a window whose top-left is at window.
// It reports whether a drag started.
func (t *DragTracker) PointerDown(p, window Point) bool {
	if t.Dragging() {
		return true
	}
	local := p.Sub(window)
	if !t.hit(local.Sub(t.center), t.radius) {
		return false
	}
	t.state = Dragging{PointerAnchor: p, WindowAnchor: window}
	return true
}

// PointerMove returns the new window top-left while dragging.
func (t *DragTracker) PointerMove(p Point) (Point, bool) {
	d, ok := t.state.(Dragging)
	if !ok {
		return Point{}, false
	}
	return d.WindowAnchor.Add(p.Sub(d.PointerAnchor)), true
}

func (t *DragTracker) PointerUp() {
	t.state = Idle{}
}
