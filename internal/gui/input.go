package gui

// TouchPhase is the phase of a touch event.
type TouchPhase uint8

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// PointerButton identifies a pointer button.
type PointerButton uint8

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

// Event is one semantic input event of a frame.
type Event interface {
	event()
}

// TouchEvent reports a touch point. Only a single synthesized touch
// (device 0, id 0) is produced by the device backends.
type TouchEvent struct {
	DeviceID uint64
	ID       uint64
	Phase    TouchPhase
	Pos      Pos2
	Force    float32
}

// PointerButtonEvent reports a button press or release at a position.
type PointerButtonEvent struct {
	Pos     Pos2
	Button  PointerButton
	Pressed bool
}

// PointerMovedEvent reports a new pointer position.
type PointerMovedEvent struct {
	Pos Pos2
}

func (TouchEvent) event()         {}
func (PointerButtonEvent) event() {}
func (PointerMovedEvent) event()  {}

// RawInput is everything the toolkit needs to run one frame.
type RawInput struct {
	// ScreenSize is the screen size in points.
	ScreenSize Vec2
	// ScreenRect is the usable screen area in points.
	ScreenRect Rect
	// PixelsPerPoint is the device pixel scale; 0 keeps the current value.
	PixelsPerPoint float32
	// Time is seconds since an arbitrary start; best effort.
	Time   float64
	Events []Event
}
