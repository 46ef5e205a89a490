//go:build !inkview && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop simulator window.
type WindowConfig struct {
	Title string
	// Scale is the window size relative to the panel size.
	Scale float64
}

// RunWindow presents panel in a desktop window and feeds mouse and keyboard
// input to h as native events. It blocks until the window closes or the
// panel is closed with CloseApp.
func RunWindow(panel *Panel, h EventHandler, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 0.5
	}
	w, hh := panel.ScreenSize()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(w)*cfg.Scale), int(float64(hh)*cfg.Scale))
	ebiten.SetTPS(30)

	g := &hostGame{panel: panel, h: h}
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

type hostGame struct {
	panel *Panel
	h     EventHandler

	img  *ebiten.Image
	pix  []byte
	keys []ebiten.Key

	shown bool
	down  bool
	lastX int
	lastY int
}

func (g *hostGame) Update() error {
	if !g.shown {
		g.shown = true
		g.h.HandleEvent(Event{Kind: EventShow})
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.down = true
		g.pointer(EventPointerDown, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.down = false
		g.pointer(EventPointerUp, x, y)
	case g.down && (x != g.lastX || y != g.lastY):
		g.pointer(EventPointerDrag, x, y)
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.h.HandleEvent(Event{Kind: EventKeyPress, P1: int32(k)})
		if g.panel.Closed() {
			return ebiten.Termination
		}
	}

	if t, ok := g.h.(Ticker); ok {
		t.Tick()
	}
	if g.panel.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) pointer(kind EventKind, x, y int) {
	g.lastX, g.lastY = x, y
	g.h.HandleEvent(Event{Kind: kind, P1: int32(x), P2: int32(y)})
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.panel.ScreenSize()
	if g.img == nil {
		g.img = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}
	g.panel.snapshotRGBA(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.panel.ScreenSize()
}
