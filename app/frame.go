package app

import (
	"inkpad/internal/gui"
	"inkpad/internal/storage"
)

// Application is the program hosted by the runner.
type Application interface {
	// Setup is called once before the first frame.
	Setup(ctx *gui.Context, frame *Frame, store storage.Store)
	// Update is called once per frame to build the UI.
	Update(ctx *gui.Context, frame *Frame)
}

// RepaintSignal lets code running outside the dispatch path ask for a new
// frame.
type RepaintSignal interface {
	Request()
}

// IntegrationInfo describes the device the application runs on.
type IntegrationInfo struct {
	Backend        string
	ScreenWidth    int
	ScreenHeight   int
	PixelsPerPoint float32
}

// TextureID identifies a texture. Textures are not supported; every
// allocation returns the zero id.
type TextureID uint64

// Frame is the application's handle on the integration during Setup and
// Update.
type Frame struct {
	Info IntegrationInfo

	repaint RepaintSignal
	quit    bool
}

// Quit asks the runner to close the application after this frame.
func (f *Frame) Quit() { f.quit = true }

// RequestRepaint schedules another frame. It is a no-op on a Frame not
// created by a Runner.
func (f *Frame) RequestRepaint() {
	if f.repaint != nil {
		f.repaint.Request()
	}
}

// RepaintSignal returns a signal that may be used from other goroutines.
func (f *Frame) RepaintSignal() RepaintSignal { return f.repaint }

// AllocTexture is a placeholder; images are not drawn on this device.
func (f *Frame) AllocTexture(width, height int, pixels []gui.Color32) TextureID {
	return 0
}
