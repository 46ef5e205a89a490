package backend

import (
	"testing"

	"inkpad/hal"
	"inkpad/internal/gui"
)

func TestRefreshShowIsFull(t *testing.T) {
	rec := hal.NewRecorder(300, 300)
	c := NewRefreshController(rec, Geometry{DeviceWidth: 300, DeviceHeight: 300, PixelsPerPoint: 3})

	got := c.AfterFrame(hal.EventShow, gui.Output{})
	if got.Kind != RefreshFull {
		t.Fatalf("AfterFrame(show) = %v, want full", got)
	}
	if rec.Count(hal.OpFullRefresh) != 1 || rec.Count(hal.OpPartialRefresh) != 0 {
		t.Fatalf("calls = %v, want one full refresh", rec.Calls)
	}
}

func TestRefreshNoChangeIsNone(t *testing.T) {
	rec := hal.NewRecorder(300, 300)
	c := NewRefreshController(rec, Geometry{DeviceWidth: 300, DeviceHeight: 300, PixelsPerPoint: 3})

	got := c.AfterFrame(hal.EventPointerDown, gui.Output{})
	if got.Kind != RefreshNone {
		t.Fatalf("AfterFrame() = %v, want none", got)
	}
	if len(rec.Calls) != 0 {
		t.Fatalf("calls = %v, want none", rec.Calls)
	}
}

func TestRefreshPartialCoversUnion(t *testing.T) {
	rec := hal.NewRecorder(300, 300)
	c := NewRefreshController(rec, Geometry{DeviceWidth: 300, DeviceHeight: 300, PixelsPerPoint: 3})

	out := gui.Output{Changed: []gui.Rect{
		{Min: gui.Pos2{X: 10, Y: 10}, Max: gui.Pos2{X: 20, Y: 20}},
		{Min: gui.Pos2{X: 30, Y: 5}, Max: gui.Pos2{X: 40, Y: 15}},
	}}
	got := c.AfterFrame(hal.EventPointerUp, out)
	want := Refresh{Kind: RefreshPartial, X: 30, Y: 15, W: 90, H: 45}
	if got != want {
		t.Fatalf("AfterFrame() = %v, want %v", got, want)
	}
	calls := rec.Filter(hal.OpPartialRefresh)
	if len(calls) != 1 || rec.Count(hal.OpFullRefresh) != 0 {
		t.Fatalf("calls = %v, want one partial refresh", rec.Calls)
	}
	if p := calls[0]; p.X != 30 || p.Y != 15 || p.W != 90 || p.H != 45 {
		t.Fatalf("PartialRefresh(%d, %d, %d, %d), want (30, 15, 90, 45)", p.X, p.Y, p.W, p.H)
	}
}

func TestRefreshOffscreenChangeIsNone(t *testing.T) {
	rec := hal.NewRecorder(300, 300)
	c := NewRefreshController(rec, Geometry{DeviceWidth: 300, DeviceHeight: 300, PixelsPerPoint: 3})

	out := gui.Output{Changed: []gui.Rect{{Min: gui.Pos2{X: 200, Y: 200}, Max: gui.Pos2{X: 210, Y: 210}}}}
	if got := c.AfterFrame(hal.EventRepaint, out); got.Kind != RefreshNone {
		t.Fatalf("AfterFrame() = %v, want none", got)
	}
	if len(rec.Calls) != 0 {
		t.Fatalf("calls = %v, want none", rec.Calls)
	}
}
