package gui

// Response describes the result of laying out a widget this frame.
type Response struct {
	ID      ID
	Rect    Rect
	Hovered bool
	Pressed bool
	Clicked bool
	// Changed is true when the widget looks different from the previous
	// frame.
	Changed bool
}

var (
	buttonPadding = Vec2{X: 10, Y: 5}
	checkboxSize  = float32(16)
)

func (c *Context) interact(r Rect) (hovered, pressed, clicked bool) {
	p := c.pointer
	if !p.hasPos {
		return false, false, false
	}
	hovered = r.Contains(p.pos)
	started := r.Contains(p.pressPos)
	pressed = p.down && started && hovered
	clicked = p.released && started && hovered
	if clicked {
		c.repaint = true
	}
	if hovered {
		c.cursorIcon = CursorPointingHand
	}
	return hovered, pressed, clicked
}

func (c *Context) text(text string, style TextStyle) Response {
	id := c.makeID(text)
	g := c.galley(text, style)
	r := c.layout(g.Size)
	color := c.visuals.Text
	changed := c.record(id, r, fingerprint(stringKey(text), uint64(style), colorKey(color)))
	c.add(TextShape{Pos: r.Min, Galley: g, Color: color})
	return Response{ID: id, Rect: r, Changed: changed}
}

// Label shows body text.
func (c *Context) Label(text string) Response { return c.text(text, TextBody) }

// Heading shows title text.
func (c *Context) Heading(text string) Response { return c.text(text, TextHeading) }

// Small shows caption text.
func (c *Context) Small(text string) Response { return c.text(text, TextSmall) }

// Button shows a clickable button. It is drawn inverted while held down.
func (c *Context) Button(text string) Response {
	id := c.makeID(text)
	g := c.galley(text, TextButton)
	r := c.layout(Vec2{X: g.Size.X + 2*buttonPadding.X, Y: g.Size.Y + 2*buttonPadding.Y})
	hovered, pressed, clicked := c.interact(r)

	fill, fg := c.visuals.WidgetFill, c.visuals.Text
	if pressed {
		fill, fg = c.visuals.WidgetPressed, c.visuals.PressedText
	}
	changed := c.record(id, r, fingerprint(stringKey(text), colorKey(fill), colorKey(fg)))
	c.add(RectShape{Rect: r, CornerRadius: 4, Fill: fill})
	c.add(TextShape{Pos: r.Min.Add(buttonPadding), Galley: g, Color: fg})
	return Response{ID: id, Rect: r, Hovered: hovered, Pressed: pressed, Clicked: clicked, Changed: changed}
}

// Checkbox shows a toggle bound to checked; a click flips it.
func (c *Context) Checkbox(checked *bool, text string) Response {
	id := c.makeID(text)
	g := c.galley(text, TextBody)
	h := max(g.Size.Y, checkboxSize)
	r := c.layout(Vec2{X: checkboxSize + buttonPadding.X + g.Size.X, Y: h})
	hovered, pressed, clicked := c.interact(r)
	if clicked {
		*checked = !*checked
	}

	box := RectFromMinSize(Pos2{X: r.Min.X, Y: r.Min.Y + (h-checkboxSize)/2}, Vec2{X: checkboxSize, Y: checkboxSize})
	var on uint64
	if *checked {
		on = 1
	}
	changed := c.record(id, r, fingerprint(stringKey(text), on, colorKey(c.visuals.Accent)))
	c.add(RectShape{Rect: box, Fill: c.visuals.Accent})
	inner := c.visuals.Background
	if *checked {
		inner = c.visuals.Accent
	}
	c.add(RectShape{Rect: box.Shrink(2), Fill: inner})
	if *checked {
		c.add(RectShape{Rect: box.Shrink(5), Fill: c.visuals.Background})
		c.add(RectShape{Rect: box.Shrink(6), Fill: c.visuals.Accent})
	}
	c.add(TextShape{
		Pos:    Pos2{X: box.Max.X + buttonPadding.X, Y: r.Min.Y + (h-g.Size.Y)/2},
		Galley: g,
		Color:  c.visuals.Text,
	})
	return Response{ID: id, Rect: r, Hovered: hovered, Pressed: pressed, Clicked: clicked, Changed: changed}
}

// Separator draws a thin horizontal rule across the screen.
func (c *Context) Separator() Response {
	id := c.makeID("separator")
	r := c.layout(Vec2{X: c.screen.Width() - 2*margin, Y: 1})
	changed := c.record(id, r, fingerprint(colorKey(c.visuals.Separator)))
	c.add(RectShape{Rect: r, Fill: c.visuals.Separator})
	return Response{ID: id, Rect: r, Changed: changed}
}

// Space advances the layout cursor.
func (c *Context) Space(amount float32) {
	c.cursor.Y += amount
}

// AllocateRect reserves space in the layout for custom painting.
func (c *Context) AllocateRect(size Vec2) Rect {
	return c.layout(size)
}

// Painter adds shapes directly to the display list.
type Painter struct {
	ctx  *Context
	clip Rect
}

// WithClip returns a painter whose shapes are clipped to r.
func (p Painter) WithClip(r Rect) Painter {
	return Painter{ctx: p.ctx, clip: p.clip.Intersect(r)}
}

// Add appends s without change tracking.
func (p Painter) Add(s Shape) {
	p.ctx.shapes = append(p.ctx.shapes, ClippedShape{Clip: p.clip, Shape: s})
}

// Circle paints a filled circle. Its bounding box is change tracked.
func (p Painter) Circle(center Pos2, radius float32, fill Color32) Response {
	id := p.ctx.makeID("circle")
	r := Rect{
		Min: Pos2{X: center.X - radius, Y: center.Y - radius},
		Max: Pos2{X: center.X + radius, Y: center.Y + radius},
	}
	changed := p.ctx.record(id, r, fingerprint(colorKey(fill), floatKey(radius)))
	p.Add(CircleShape{Center: center, Radius: radius, Fill: fill})
	return Response{ID: id, Rect: r, Changed: changed}
}

// Rect paints a filled rectangle. It is change tracked.
func (p Painter) Rect(r Rect, fill Color32) Response {
	id := p.ctx.makeID("rect")
	changed := p.ctx.record(id, r, fingerprint(colorKey(fill)))
	p.Add(RectShape{Rect: r, Fill: fill})
	return Response{ID: id, Rect: r, Changed: changed}
}

// Line paints a line segment.
func (p Painter) Line(a, b Pos2, stroke Stroke) {
	p.Add(LineSegmentShape{Points: [2]Pos2{a, b}, Stroke: stroke})
}
