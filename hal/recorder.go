package hal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Op names a recorded device call.
type Op string

const (
	OpFillRect       Op = "FillRect"
	OpFillCircle     Op = "FillCircle"
	OpSetFont        Op = "SetFont"
	OpDrawTextBlock  Op = "DrawTextBlock"
	OpFullRefresh    Op = "FullRefresh"
	OpPartialRefresh Op = "PartialRefresh"
	OpSetPanelMode   Op = "SetPanelMode"
	OpCloseApp       Op = "CloseApp"
)

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op    Op
	X, Y  int
	W, H  int
	R     int
	Color Color
	Font  Font
	Text  string
	Align Align
	Mode  PanelMode
}

// Recorder is a Device that records draw and refresh calls instead of
// drawing. Text is measured with a fixed cell size.
type Recorder struct {
	Width      int
	Height     int
	CharWidth  int
	LineHeight int

	// Missing lists font names OpenFont fails for.
	Missing map[string]bool

	Calls  []Call
	Fonts  []string
	Closed bool
}

var _ Device = (*Recorder)(nil)

// NewRecorder returns a recorder with the given screen size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 10, LineHeight: 20}
}

func (r *Recorder) ScreenSize() (w, h int) { return r.Width, r.Height }

func (r *Recorder) FillRect(x, y, w, h int, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(x, y, rad int, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) SetFont(f Font, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpSetFont, Font: f, Color: c})
}

func (r *Recorder) DrawTextBlock(x, y, w, h int, text string, align Align) {
	r.Calls = append(r.Calls, Call{Op: OpDrawTextBlock, X: x, Y: y, W: w, H: h, Text: text, Align: align})
}

func (r *Recorder) TextSize(f Font, text string) (w, h int) {
	if f == 0 {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if n := utf8.RuneCountInString(line) * r.CharWidth; n > w {
			w = n
		}
	}
	return w, len(lines) * r.LineHeight
}

func (r *Recorder) OpenFont(name string, size, flags int) (Font, error) {
	if r.Missing[name] {
		return 0, fmt.Errorf("open font %q: %w", name, ErrFontNotFound)
	}
	r.Fonts = append(r.Fonts, fmt.Sprintf("%s/%d/%d", name, size, flags))
	return Font(len(r.Fonts)), nil
}

func (r *Recorder) FullRefresh() {
	r.Calls = append(r.Calls, Call{Op: OpFullRefresh})
}

func (r *Recorder) PartialRefresh(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpPartialRefresh, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) SetPanelMode(m PanelMode) {
	r.Calls = append(r.Calls, Call{Op: OpSetPanelMode, Mode: m})
}

func (r *Recorder) CloseApp() {
	r.Closed = true
	r.Calls = append(r.Calls, Call{Op: OpCloseApp})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of op in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Closed = false
}
