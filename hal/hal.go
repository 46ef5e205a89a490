package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrFontNotFound   = errors.New("font not found")
)

// EventKind identifies a native device event.
type EventKind uint8

const (
	EventOther EventKind = iota
	EventShow
	EventRepaint
	EventPointerDown
	EventPointerUp
	EventPointerDrag
	EventKeyPress
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventShow:
		return "show"
	case EventRepaint:
		return "repaint"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerDrag:
		return "pointer-drag"
	case EventKeyPress:
		return "key-press"
	case EventExit:
		return "exit"
	default:
		return "other"
	}
}

// Event is one native event. P1/P2 carry a device pixel position for
// pointer events and the key code in P1 for key events.
type Event struct {
	Kind EventKind
	P1   int32
	P2   int32
}

// EventHandler receives native events one at a time.
type EventHandler interface {
	HandleEvent(ev Event) int32
}

// Ticker is implemented by handlers that want an idle callback from the
// host loop between events.
type Ticker interface {
	Tick()
}

// Color is an opaque device RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns a device color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Align holds text block alignment flags.
type Align uint8

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// PanelMode selects the device's system panel.
type PanelMode uint8

const (
	PanelDisabled PanelMode = iota
	PanelEnabled
)

// Font is a device font handle. The zero value is not a valid font.
type Font int

// Device is the drawing service of an e-ink reader.
//
// Draw calls only touch the device's back buffer; nothing becomes visible
// on the panel until FullRefresh or PartialRefresh.
type Device interface {
	ScreenSize() (w, h int)
	FillRect(x, y, w, h int, c Color)
	FillCircle(x, y, r int, c Color)
	SetFont(f Font, c Color)
	DrawTextBlock(x, y, w, h int, text string, align Align)
	TextSize(f Font, text string) (w, h int)
	OpenFont(name string, size, flags int) (Font, error)
	FullRefresh()
	PartialRefresh(x, y, w, h int)
	SetPanelMode(m PanelMode)
	CloseApp()
}
