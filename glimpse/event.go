package glimpse

// Event is one notification delivered by the window system. The set of
// events is closed, handlers switch over the concrete types below.
type Event interface {
	isEvent()
}

// Resize reports a new physical framebuffer size. It is also emitted when
// the pixel density of the window changes, in which case ScaleChanged is set.
type Resize struct {
	Width, Height uint32
	ScaleChanged  bool
}

// PointerMove reports the cursor position in physical pixels, relative
// to the top left corner of the framebuffer.
type PointerMove struct {
	X, Y float64
}

type Action uint8

const (
	Press Action = iota
	Release
	Repeat
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

type KeyInput struct {
	Key    Key
	Action Action
}

// Pressed is true for both the initial press and key repeats.
func (k KeyInput) Pressed() bool {
	return k.Action == Press || k.Action == Repeat
}

type CloseRequest struct{}

// Idle is delivered once all pending events of a cycle have been delivered.
type Idle struct{}

// RedrawRequest is delivered at most once per cycle, after Idle, if a
// redraw was requested during the cycle.
type RedrawRequest struct{}

func (Resize) isEvent()        {}
func (PointerMove) isEvent()   {}
func (KeyInput) isEvent()      {}
func (CloseRequest) isEvent()  {}
func (Idle) isEvent()          {}
func (RedrawRequest) isEvent() {}
