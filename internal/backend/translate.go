package backend

import (
	"inkpad/hal"
	"inkpad/internal/gui"
)

// Translate converts a native pointer event into toolkit input events.
// Positions are device pixels divided by ppp. The touch event always
// precedes the matching button event. Other kinds yield no input.
func Translate(ev hal.Event, ppp float32) []gui.Event {
	if ppp <= 0 {
		ppp = 1
	}
	pos := gui.Pos2{X: float32(ev.P1) / ppp, Y: float32(ev.P2) / ppp}

	switch ev.Kind {
	case hal.EventPointerDown:
		return []gui.Event{
			gui.TouchEvent{Phase: gui.TouchStart, Pos: pos},
			gui.PointerButtonEvent{Pos: pos, Button: gui.PointerPrimary, Pressed: true},
		}
	case hal.EventPointerUp:
		return []gui.Event{
			gui.TouchEvent{Phase: gui.TouchEnd, Pos: pos},
			gui.PointerButtonEvent{Pos: pos, Button: gui.PointerPrimary, Pressed: false},
		}
	case hal.EventPointerDrag:
		return []gui.Event{gui.PointerMovedEvent{Pos: pos}}
	default:
		return nil
	}
}
