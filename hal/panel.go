package hal

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Panel is a software e-ink device. Draw calls write an RGB565 back
// buffer; the visible panel buffer only changes on refresh.
type Panel struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	draw   []byte
	shown  []byte

	fonts   []panelFont
	curFont Font
	fg      color.RGBA

	panelMode PanelMode
	closed    atomic.Bool

	fullRefreshes    atomic.Uint64
	partialRefreshes atomic.Uint64
}

var (
	_ Device            = (*Panel)(nil)
	_ drivers.Displayer = (*Panel)(nil)
)

// NewPanel returns a white panel of the given size in device pixels.
func NewPanel(width, height int) *Panel {
	stride := width * 2
	p := &Panel{
		width:     width,
		height:    height,
		stride:    stride,
		draw:      make([]byte, stride*height),
		shown:     make([]byte, stride*height),
		fg:        color.RGBA{A: 0xFF},
		panelMode: PanelEnabled,
	}
	p.clearRGB(0xFF, 0xFF, 0xFF)
	copy(p.shown, p.draw)
	return p
}

func (p *Panel) ScreenSize() (w, h int) { return p.width, p.height }

// Size implements drivers.Displayer.
func (p *Panel) Size() (x, y int16) { return int16(p.width), int16(p.height) }

// SetPixel implements drivers.Displayer and writes the back buffer.
func (p *Panel) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= p.width || iy < 0 || iy >= p.height {
		return
	}
	off := iy*p.stride + ix*2
	p.draw[off], p.draw[off+1] = pack565(c.R, c.G, c.B)
}

// Display implements drivers.Displayer. Drawing is not presented until a
// refresh, so it is a no-op.
func (p *Panel) Display() error { return nil }

// FillRectangle fills the back buffer, clamped to the panel.
func (p *Panel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, p.width)
	y0 := clampInt(int(y), 0, p.height)
	x1 := clampInt(int(x)+int(width), 0, p.width)
	y1 := clampInt(int(y)+int(height), 0, p.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	lo, hi := pack565(c.R, c.G, c.B)
	for py := y0; py < y1; py++ {
		row := py * p.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			p.draw[off] = lo
			p.draw[off+1] = hi
		}
	}
	return nil
}

func (p *Panel) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = p.FillRectangle(int16(x), int16(y), int16(w), int16(h), rgba(c))
}

func (p *Panel) FillCircle(x, y, r int, c Color) {
	if r < 0 {
		return
	}
	tinydraw.FilledCircle(p, int16(x), int16(y), int16(r), rgba(c))
}

func (p *Panel) SetFont(f Font, c Color) {
	p.curFont = f
	p.fg = rgba(c)
}

func (p *Panel) FullRefresh() {
	p.mu.Lock()
	copy(p.shown, p.draw)
	p.mu.Unlock()
	p.fullRefreshes.Add(1)
}

func (p *Panel) PartialRefresh(x, y, w, h int) {
	x0 := clampInt(x, 0, p.width)
	y0 := clampInt(y, 0, p.height)
	x1 := clampInt(x+w, 0, p.width)
	y1 := clampInt(y+h, 0, p.height)
	p.partialRefreshes.Add(1)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for py := y0; py < y1; py++ {
		start := py*p.stride + x0*2
		end := py*p.stride + x1*2
		copy(p.shown[start:end], p.draw[start:end])
	}
}

func (p *Panel) SetPanelMode(m PanelMode) { p.panelMode = m }

// PanelMode returns the last mode set with SetPanelMode.
func (p *Panel) PanelMode() PanelMode { return p.panelMode }

func (p *Panel) CloseApp() { p.closed.Store(true) }

// Closed reports whether CloseApp was called.
func (p *Panel) Closed() bool { return p.closed.Load() }

// Refreshes returns the number of full and partial refreshes so far.
func (p *Panel) Refreshes() (full, partial uint64) {
	return p.fullRefreshes.Load(), p.partialRefreshes.Load()
}

// ShownRGB returns the visible color at a device pixel.
func (p *Panel) ShownRGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	off := y*p.stride + x*2
	return unpack565(p.shown[off], p.shown[off+1])
}

// snapshotRGBA converts the visible panel buffer into dst (4 bytes/pixel).
func (p *Panel) snapshotRGBA(dst []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	src := p.shown
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := unpack565(src[i], src[i+1])
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Snapshot returns a copy of the visible panel.
func (p *Panel) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.snapshotRGBA(img.Pix)
	return img
}

func (p *Panel) clearRGB(r, g, b uint8) {
	lo, hi := pack565(r, g, b)
	for i := 0; i < len(p.draw); i += 2 {
		p.draw[i] = lo
		p.draw[i+1] = hi
	}
}

// clipDisplayer limits drawing to a rectangle of the underlying panel.
type clipDisplayer struct {
	base *Panel
	x0   int16
	y0   int16
	x1   int16
	y1   int16
}

func (d clipDisplayer) Size() (x, y int16) { return d.base.Size() }

func (d clipDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.base.SetPixel(x, y, c)
}

func (d clipDisplayer) Display() error { return nil }

func rgba(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
