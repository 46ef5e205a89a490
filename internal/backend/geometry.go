package backend

import (
	"math"

	"inkpad/hal"
	"inkpad/internal/gui"
)

// Fallback geometry when the device reports no screen size.
const (
	DefaultDeviceWidth    = 1404
	DefaultDeviceHeight   = 1872
	DefaultPixelsPerPoint = 3.0
)

// Geometry maps toolkit points to device pixels.
type Geometry struct {
	DeviceWidth    int
	DeviceHeight   int
	PixelsPerPoint float32
}

// QueryGeometry asks the device for its screen size. Zero values in
// override replace the queried or default ones.
func QueryGeometry(dev hal.Device, override Geometry) Geometry {
	w, h := dev.ScreenSize()
	g := Geometry{DeviceWidth: w, DeviceHeight: h, PixelsPerPoint: override.PixelsPerPoint}
	if override.DeviceWidth > 0 {
		g.DeviceWidth = override.DeviceWidth
	}
	if override.DeviceHeight > 0 {
		g.DeviceHeight = override.DeviceHeight
	}
	if g.DeviceWidth <= 0 || g.DeviceHeight <= 0 {
		g.DeviceWidth, g.DeviceHeight = DefaultDeviceWidth, DefaultDeviceHeight
	}
	if g.PixelsPerPoint <= 0 {
		g.PixelsPerPoint = DefaultPixelsPerPoint
	}
	return g
}

// ScreenSize returns the screen size in points.
func (g Geometry) ScreenSize() gui.Vec2 {
	return gui.Vec2{
		X: float32(g.DeviceWidth) / g.PixelsPerPoint,
		Y: float32(g.DeviceHeight) / g.PixelsPerPoint,
	}
}

// Input builds the raw input of one frame.
func (g Geometry) Input(events []gui.Event, t float64) gui.RawInput {
	size := g.ScreenSize()
	return gui.RawInput{
		ScreenSize:     size,
		ScreenRect:     gui.RectFromMinSize(gui.Pos2{}, size),
		PixelsPerPoint: g.PixelsPerPoint,
		Time:           t,
		Events:         events,
	}
}

// Px converts a length or coordinate in points to device pixels,
// truncating toward zero.
func (g Geometry) Px(v float32) int {
	return int(v * g.PixelsPerPoint)
}

// DeviceRect converts r to a device pixel rectangle the way primitives are
// drawn: origin and size are truncated independently.
func (g Geometry) DeviceRect(r gui.Rect) (x, y, w, h int) {
	return g.Px(r.Min.X), g.Px(r.Min.Y), g.Px(r.Width()), g.Px(r.Height())
}

// CoverRect converts r to the smallest device pixel rectangle covering
// it, clamped to the screen.
func (g Geometry) CoverRect(r gui.Rect) (x, y, w, h int) {
	s := float64(g.PixelsPerPoint)
	x0 := clamp(int(math.Floor(float64(r.Min.X)*s)), 0, g.DeviceWidth)
	y0 := clamp(int(math.Floor(float64(r.Min.Y)*s)), 0, g.DeviceHeight)
	x1 := clamp(int(math.Ceil(float64(r.Max.X)*s)), 0, g.DeviceWidth)
	y1 := clamp(int(math.Ceil(float64(r.Max.Y)*s)), 0, g.DeviceHeight)
	return x0, y0, x1 - x0, y1 - y0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
