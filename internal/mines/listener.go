package mines

// Button is a bitmask of pointer buttons held down.
type Button uint8

const (
	Left  Button = 1
	Right Button = 2
	Both         = Left | Right
)

func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	default:
		return "none"
	}
}

// Event is the kind of raw pointer event.
type Event uint8

const (
	MouseDown Event = iota
	MouseUp
	MouseOver
	MouseOut
	eventCount
)

func (e Event) String() string {
	switch e {
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	case MouseOver:
		return "over"
	case MouseOut:
		return "out"
	default:
		return "unknown"
	}
}

// PointerHandler receives raw pointer events for the cell at row i, column j.
type PointerHandler interface {
	MouseDown(b Button, i, j int)
	MouseUp(i, j int)
	MouseOver(i, j int)
	MouseOut(i, j int)
}

// Gesture is a callback bound to a cell position.
type Gesture func(i, j int)

// Gestures lists the callbacks a [Listener] dispatches to. Nil entries are
// no-ops.
type Gestures struct {
	LeftDown, LeftUp, LeftOver, LeftOut     Gesture
	RightDown, RightUp, RightOver, RightOut Gesture
	BothDown, BothUp, BothOver, BothOut     Gesture
}

// Listener turns raw pointer events into gestures. It tracks which buttons
// are held so that pressing the second button turns a single-button gesture
// into a chord.
type Listener struct {
	pressed   Button
	callbacks [eventCount][Both]Gesture
}

func NewListener(g Gestures) *Listener {
	return &Listener{
		callbacks: [eventCount][Both]Gesture{
			MouseDown: {g.LeftDown, g.RightDown, g.BothDown},
			MouseUp:   {g.LeftUp, g.RightUp, g.BothUp},
			MouseOver: {g.LeftOver, g.RightOver, g.BothOver},
			MouseOut:  {g.LeftOut, g.RightOut, g.BothOut},
		},
	}
}

// Pressed returns the buttons currently tracked as held.
func (l *Listener) Pressed() Button {
	return l.pressed
}

func (l *Listener) MouseDown(b Button, i, j int) {
	if b != Left && b != Right {
		return
	}
	l.pressed |= b
	l.trigger(MouseDown, l.pressed, i, j)
}

func (l *Listener) MouseUp(i, j int) {
	if l.pressed == 0 {
		return
	}
	pressed := l.pressed
	l.pressed = 0
	l.trigger(MouseUp, pressed, i, j)
}

func (l *Listener) MouseOver(i, j int) {
	if l.pressed == 0 {
		return
	}
	l.trigger(MouseOver, l.pressed, i, j)
}

func (l *Listener) MouseOut(i, j int) {
	if l.pressed == 0 {
		return
	}
	l.trigger(MouseOut, l.pressed, i, j)
}

func (l *Listener) trigger(e Event, b Button, i, j int) {
	if cb := l.callbacks[e][b-1]; cb != nil {
		cb(i, j)
	}
}

type noopListener struct{}

func (noopListener) MouseDown(Button, int, int) {}
func (noopListener) MouseUp(int, int)           {}
func (noopListener) MouseOver(int, int)         {}
func (noopListener) MouseOut(int, int)          {}

// Disarmed ignores every pointer event. Boards switch to it once the game
// is over.
var Disarmed PointerHandler = noopListener{}
