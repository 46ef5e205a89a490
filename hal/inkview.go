//go:build inkview && cgo

package hal

/*
#cgo LDFLAGS: -linkview
#include <stdlib.h>
#include <inkview.h>

extern int inkpadHandler(int type, int par1, int par2);
extern void inkpadTick(void);

static int inkpad_font_height(ifont *f) { return f ? f->height : 0; }
static void inkpad_main(void) { InkViewMain(inkpadHandler); }
static void inkpad_tick_proc(void) { inkpadTick(); }
static void inkpad_schedule_tick(int ms) { SetHardTimer("inkpad_tick", inkpad_tick_proc, ms); }
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Repaint requests are polled at this period in milliseconds.
const inkviewTickMillis = 100

type inkviewDevice struct {
	fonts []*C.ifont
}

var _ Device = (*inkviewDevice)(nil)

// RunInkView opens the device screen, builds the handler on top of the
// InkView drawing service and enters the InkView main loop.
func RunInkView(newHandler func(Device) (EventHandler, error)) error {
	C.OpenScreen()
	dev := &inkviewDevice{}
	h, err := newHandler(dev)
	if err != nil {
		return err
	}
	inkviewHandler = h
	C.inkpad_main()
	return nil
}

func scheduleTick() { C.inkpad_schedule_tick(inkviewTickMillis) }

func (d *inkviewDevice) ScreenSize() (w, h int) {
	return int(C.ScreenWidth()), int(C.ScreenHeight())
}

func (d *inkviewDevice) FillRect(x, y, w, h int, c Color) {
	C.FillArea(C.int(x), C.int(y), C.int(w), C.int(h), inkviewColor(c))
}

func (d *inkviewDevice) FillCircle(x, y, r int, c Color) {
	C.DrawCircle(C.int(x), C.int(y), C.int(r), inkviewColor(c))
}

func (d *inkviewDevice) SetFont(f Font, c Color) {
	if cf := d.font(f); cf != nil {
		C.SetFont(cf, inkviewColor(c))
	}
}

func (d *inkviewDevice) DrawTextBlock(x, y, w, h int, text string, align Align) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.DrawTextRect(C.int(x), C.int(y), C.int(w), C.int(h), cs, inkviewAlign(align))
}

func (d *inkviewDevice) TextSize(f Font, text string) (w, h int) {
	cf := d.font(f)
	if cf == nil {
		return 0, 0
	}
	C.SetFont(cf, 0)
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	return int(C.StringWidth(cs)), int(C.inkpad_font_height(cf))
}

func (d *inkviewDevice) OpenFont(name string, size, flags int) (Font, error) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	f := C.OpenFont(cs, C.int(size), C.int(flags))
	if f == nil {
		return 0, fmt.Errorf("open font %q: %w", name, ErrFontNotFound)
	}
	d.fonts = append(d.fonts, f)
	return Font(len(d.fonts)), nil
}

func (d *inkviewDevice) FullRefresh() { C.FullUpdate() }

func (d *inkviewDevice) PartialRefresh(x, y, w, h int) {
	C.PartialUpdate(C.int(x), C.int(y), C.int(w), C.int(h))
}

func (d *inkviewDevice) SetPanelMode(m PanelMode) {
	C.SetPanelType(C.int(m))
}

func (d *inkviewDevice) CloseApp() { C.CloseApp() }

func (d *inkviewDevice) font(f Font) *C.ifont {
	i := int(f) - 1
	if i < 0 || i >= len(d.fonts) {
		return nil
	}
	return d.fonts[i]
}

func inkviewColor(c Color) C.int {
	return C.int(int(c.R)<<16 | int(c.G)<<8 | int(c.B))
}

func inkviewAlign(a Align) C.int {
	var flags C.int
	if a&AlignLeft != 0 {
		flags |= C.ALIGN_LEFT
	}
	if a&AlignCenter != 0 {
		flags |= C.ALIGN_CENTER
	}
	if a&AlignRight != 0 {
		flags |= C.ALIGN_RIGHT
	}
	if a&VAlignTop != 0 {
		flags |= C.VALIGN_TOP
	}
	if a&VAlignMiddle != 0 {
		flags |= C.VALIGN_MIDDLE
	}
	if a&VAlignBottom != 0 {
		flags |= C.VALIGN_BOTTOM
	}
	return flags
}

func inkviewEventKind(t C.int) EventKind {
	switch t {
	case C.EVT_SHOW:
		return EventShow
	case C.EVT_POINTERDOWN:
		return EventPointerDown
	case C.EVT_POINTERUP:
		return EventPointerUp
	case C.EVT_POINTERDRAG:
		return EventPointerDrag
	case C.EVT_KEYPRESS:
		return EventKeyPress
	case C.EVT_EXIT:
		return EventExit
	default:
		return EventOther
	}
}
