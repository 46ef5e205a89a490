package gui

import (
	"hash/fnv"
	"math"
	"unicode/utf8"
)

// Visuals is the color scheme used by the built-in widgets.
type Visuals struct {
	Background    Color32
	Text          Color32
	WidgetFill    Color32
	WidgetPressed Color32
	PressedText   Color32
	Accent        Color32
	Separator     Color32
}

// LightVisuals is black on white, suited to e-ink panels.
func LightVisuals() Visuals {
	return Visuals{
		Background:    White,
		Text:          Black,
		WidgetFill:    Gray(0xDC),
		WidgetPressed: Gray(0x5A),
		PressedText:   White,
		Accent:        Black,
		Separator:     Gray(0xA0),
	}
}

// DarkVisuals is white on black.
func DarkVisuals() Visuals {
	return Visuals{
		Background:    Black,
		Text:          White,
		WidgetFill:    Gray(0x40),
		WidgetPressed: Gray(0xC0),
		PressedText:   Black,
		Accent:        White,
		Separator:     Gray(0x60),
	}
}

// TextMeasurer lays out text in points.
type TextMeasurer interface {
	Measure(text string, style TextStyle) Vec2
}

// FixedMeasurer measures text with a fixed cell size per style.
type FixedMeasurer struct {
	CharWidth  float32
	LineHeight float32
}

func (m FixedMeasurer) Measure(text string, style TextStyle) Vec2 {
	scale := float32(1)
	switch style {
	case TextHeading:
		scale = 1.5
	case TextSmall:
		scale = 0.75
	}
	return Vec2{
		X: float32(utf8.RuneCountInString(text)) * m.CharWidth * scale,
		Y: m.LineHeight * scale,
	}
}

// CursorIcon is the pointer shape the application asks for.
type CursorIcon uint8

const (
	CursorDefault CursorIcon = iota
	CursorPointingHand
)

// Output is what a frame reports besides its display list.
type Output struct {
	Quit         bool
	Cursor       CursorIcon
	NeedsRepaint bool
	// Changed lists the screen areas whose pixels differ from the
	// previous frame.
	Changed []Rect
}

// ID identifies a widget across frames.
type ID uint64

const (
	itemSpacing = 6
	margin      = 8
)

type pointerState struct {
	pos      Pos2
	hasPos   bool
	down     bool
	pressPos Pos2
	pressed  bool
	released bool
	touching bool
}

// Context holds the toolkit state. It is not safe for concurrent use.
type Context struct {
	visuals  Visuals
	measurer TextMeasurer
	ppp      float32

	input   RawInput
	screen  Rect
	inFrame bool
	shapes  []ClippedShape

	pointer pointerState
	cursor  Pos2
	seq     int

	prevPrint map[ID]uint64
	prevRect  map[ID]Rect
	curPrint  map[ID]uint64
	curRect   map[ID]Rect
	changed   []Rect

	repaint    bool
	quit       bool
	cursorIcon CursorIcon
}

// NewContext returns a context with light visuals and a fixed-cell
// text measurer.
func NewContext() *Context {
	return &Context{
		visuals:   LightVisuals(),
		measurer:  FixedMeasurer{CharWidth: 8, LineHeight: 14},
		ppp:       1,
		prevPrint: map[ID]uint64{},
		prevRect:  map[ID]Rect{},
	}
}

// SetVisuals sets the colors used by widgets from now on.
func (c *Context) SetVisuals(v Visuals) { c.visuals = v }

// Visuals returns the current colors.
func (c *Context) Visuals() Visuals { return c.visuals }

// SetMeasurer sets the text measurer used for layout.
func (c *Context) SetMeasurer(m TextMeasurer) { c.measurer = m }

// PixelsPerPoint returns the device pixels per logical point.
func (c *Context) PixelsPerPoint() float32 { return c.ppp }

// SetPixelsPerPoint sets the device pixels per logical point.
func (c *Context) SetPixelsPerPoint(p float32) { c.ppp = p }

// ScreenRect returns the screen area of the current frame in points.
func (c *Context) ScreenRect() Rect { return c.screen }

// Input returns the input of the current frame.
func (c *Context) Input() RawInput { return c.input }

// RequestRepaint asks the integration to run another frame soon.
func (c *Context) RequestRepaint() { c.repaint = true }

// RequestQuit asks the integration to close the application after this
// frame.
func (c *Context) RequestQuit() { c.quit = true }

// SetCursorIcon sets the cursor reported for this frame.
func (c *Context) SetCursorIcon(icon CursorIcon) { c.cursorIcon = icon }

// Touching reports whether the synthesized touch point is down.
func (c *Context) Touching() bool { return c.pointer.touching }

// PointerPos returns the last known pointer position.
func (c *Context) PointerPos() (Pos2, bool) { return c.pointer.pos, c.pointer.hasPos }

// BeginFrame starts a frame with the given input and paints the
// background.
func (c *Context) BeginFrame(in RawInput) {
	if c.inFrame {
		panic("gui: BeginFrame called twice")
	}
	c.inFrame = true
	c.input = in
	if in.PixelsPerPoint > 0 {
		c.ppp = in.PixelsPerPoint
	}
	c.screen = in.ScreenRect
	if !c.screen.IsPositive() {
		c.screen = RectFromMinSize(Pos2{}, in.ScreenSize)
	}

	c.shapes = c.shapes[:0]
	c.changed = nil
	c.curPrint = make(map[ID]uint64, len(c.prevPrint))
	c.curRect = make(map[ID]Rect, len(c.prevRect))
	c.seq = 0
	c.repaint = false
	c.quit = false
	c.cursorIcon = CursorDefault
	c.cursor = Pos2{X: c.screen.Min.X + margin, Y: c.screen.Min.Y + margin}

	c.pointer.pressed = false
	c.pointer.released = false
	for _, ev := range in.Events {
		c.applyEvent(ev)
	}

	bg := c.visuals.Background
	id := c.makeID("background")
	c.record(id, c.screen, fingerprint(colorKey(bg)))
	c.add(RectShape{Rect: c.screen, Fill: bg})
}

func (c *Context) applyEvent(ev Event) {
	p := &c.pointer
	switch ev := ev.(type) {
	case TouchEvent:
		p.pos, p.hasPos = ev.Pos, true
		switch ev.Phase {
		case TouchStart:
			p.touching = true
		case TouchEnd, TouchCancel:
			p.touching = false
		}
	case PointerButtonEvent:
		p.pos, p.hasPos = ev.Pos, true
		if ev.Button != PointerPrimary {
			return
		}
		if ev.Pressed {
			p.down = true
			p.pressed = true
			p.pressPos = ev.Pos
		} else {
			p.down = false
			p.released = true
		}
	case PointerMovedEvent:
		p.pos, p.hasPos = ev.Pos, true
	}
}

// EndFrame finishes the frame and returns its output and display list.
func (c *Context) EndFrame() (Output, []ClippedShape) {
	if !c.inFrame {
		panic("gui: EndFrame without BeginFrame")
	}
	c.inFrame = false

	for id, r := range c.prevRect {
		if _, ok := c.curRect[id]; !ok {
			c.changed = append(c.changed, r)
		}
	}
	c.prevPrint, c.prevRect = c.curPrint, c.curRect

	out := Output{
		Quit:         c.quit,
		Cursor:       c.cursorIcon,
		NeedsRepaint: c.repaint,
		Changed:      c.changed,
	}
	shapes := make([]ClippedShape, len(c.shapes))
	copy(shapes, c.shapes)
	return out, shapes
}

// Painter returns a painter clipped to the screen.
func (c *Context) Painter() Painter {
	return Painter{ctx: c, clip: c.screen}
}

func (c *Context) add(s Shape) {
	c.shapes = append(c.shapes, ClippedShape{Clip: c.screen, Shape: s})
}

// makeID derives a widget id from its label and call order.
func (c *Context) makeID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	var b [4]byte
	b[0] = byte(c.seq)
	b[1] = byte(c.seq >> 8)
	b[2] = byte(c.seq >> 16)
	b[3] = byte(c.seq >> 24)
	h.Write(b[:])
	c.seq++
	return ID(h.Sum64())
}

// record stores the widget's visual fingerprint and reports whether it
// differs from the previous frame.
func (c *Context) record(id ID, r Rect, print uint64) bool {
	c.curPrint[id] = print
	c.curRect[id] = r
	prev, ok := c.prevPrint[id]
	prevRect := c.prevRect[id]
	if ok && prev == print && prevRect == r {
		return false
	}
	c.changed = append(c.changed, r)
	if ok && prevRect != r {
		c.changed = append(c.changed, prevRect)
	}
	return true
}

func (c *Context) layout(size Vec2) Rect {
	r := RectFromMinSize(c.cursor, size)
	c.cursor.Y = r.Max.Y + itemSpacing
	return r
}

func (c *Context) galley(text string, style TextStyle) *Galley {
	return &Galley{Text: text, Style: style, Size: c.measurer.Measure(text, style)}
}

func fingerprint(parts ...uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for _, p := range parts {
		for i := range b {
			b[i] = byte(p >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}

func colorKey(c Color32) uint64 {
	return uint64(c.R)<<24 | uint64(c.G)<<16 | uint64(c.B)<<8 | uint64(c.A)
}

func stringKey(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func floatKey(f float32) uint64 {
	return uint64(math.Float32bits(f))
}
