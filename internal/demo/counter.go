// Package demo is a small application used by the entry points to
// exercise the backend on a simulator or a device.
package demo

import (
	"fmt"
	"strconv"

	"inkpad/app"
	"inkpad/internal/gui"
	"inkpad/internal/storage"
)

const (
	keyCount = "counter.count"
	keyDark  = "counter.dark"
)

// Counter counts button taps and remembers the count between runs.
type Counter struct {
	count int
	dark  bool
	// restyle is set when dark changed; visuals switch after the last
	// widget so one frame never mixes two schemes.
	restyle bool
	store   storage.Store
	info    app.IntegrationInfo
}

// New returns a counter starting at zero.
func New() *Counter { return &Counter{} }

func (c *Counter) Setup(ctx *gui.Context, frame *app.Frame, store storage.Store) {
	c.store = store
	c.info = frame.Info
	if v, ok := store.Get(keyCount); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.count = n
		}
	}
	if v, ok := store.Get(keyDark); ok {
		c.dark = v == "1"
	}
	c.applyVisuals(ctx)
}

func (c *Counter) Update(ctx *gui.Context, frame *app.Frame) {
	ctx.Heading("inkpad")
	ctx.Small(fmt.Sprintf("%s %dx%d", c.info.Backend, c.info.ScreenWidth, c.info.ScreenHeight))
	ctx.Separator()

	if ctx.Button("Increment").Clicked {
		c.setCount(c.count + 1)
	}
	if ctx.Button("Reset").Clicked {
		c.setCount(0)
	}
	ctx.Label(fmt.Sprintf("Count: %d", c.count))

	r := ctx.AllocateRect(gui.Vec2{X: 24, Y: 24})
	fill := ctx.Visuals().Background
	if c.count%2 == 1 {
		fill = ctx.Visuals().Accent
	}
	ctx.Painter().Circle(gui.Pos2{X: r.Min.X + 12, Y: r.Min.Y + 12}, 10, ctx.Visuals().Accent)
	ctx.Painter().Circle(gui.Pos2{X: r.Min.X + 12, Y: r.Min.Y + 12}, 7, fill)

	ctx.Separator()
	if ctx.Checkbox(&c.dark, "Dark mode").Clicked {
		c.store.Set(keyDark, boolString(c.dark))
		c.restyle = true
		frame.RequestRepaint()
	}
	if ctx.Button("Quit").Clicked {
		frame.Quit()
	}

	if c.restyle {
		c.restyle = false
		c.applyVisuals(ctx)
	}
}

func (c *Counter) setCount(n int) {
	c.count = n
	c.store.Set(keyCount, strconv.Itoa(n))
}

// applyVisuals takes effect from the next frame, whose BeginFrame paints
// the background.
func (c *Counter) applyVisuals(ctx *gui.Context) {
	if c.dark {
		ctx.SetVisuals(gui.DarkVisuals())
	} else {
		ctx.SetVisuals(gui.LightVisuals())
	}
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
