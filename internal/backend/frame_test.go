package backend

import (
	"testing"
	"time"

	"inkpad/internal/gui"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", name)
		}
	}()
	fn()
}

func TestFramesBeginTwicePanics(t *testing.T) {
	f := NewFrames(gui.NewContext(), nil)
	in := Geometry{DeviceWidth: 30, DeviceHeight: 30, PixelsPerPoint: 3}.Input(nil, 0)
	f.BeginFrame(in)
	mustPanic(t, "second BeginFrame", func() { f.BeginFrame(in) })
}

func TestFramesEndWithoutBeginPanics(t *testing.T) {
	f := NewFrames(gui.NewContext(), nil)
	mustPanic(t, "EndFrame", func() { f.EndFrame() })
}

func TestFramesPreviousFrameTime(t *testing.T) {
	now := time.Unix(100, 0)
	clock := func() time.Time { return now }
	f := NewFrames(gui.NewContext(), clock)
	in := Geometry{DeviceWidth: 30, DeviceHeight: 30, PixelsPerPoint: 3}.Input(nil, 0)

	f.BeginFrame(in)
	if !f.Open() {
		t.Fatal("expected open frame")
	}
	now = now.Add(40 * time.Millisecond)
	f.EndFrame()

	if f.Open() {
		t.Fatal("expected closed frame")
	}
	if got := f.PreviousFrameTime(); got != 40*time.Millisecond {
		t.Fatalf("PreviousFrameTime() = %v, want 40ms", got)
	}
	if got := f.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
}

func TestFramesPaintBackground(t *testing.T) {
	f := NewFrames(gui.NewContext(), nil)
	f.BeginFrame(Geometry{DeviceWidth: 300, DeviceHeight: 600, PixelsPerPoint: 3}.Input(nil, 0))
	_, shapes := f.EndFrame()
	if len(shapes) != 1 {
		t.Fatalf("shapes = %d, want 1", len(shapes))
	}
	rect, ok := shapes[0].Shape.(gui.RectShape)
	if !ok {
		t.Fatalf("shape = %T, want gui.RectShape", shapes[0].Shape)
	}
	want := gui.Rect{Max: gui.Pos2{X: 100, Y: 200}}
	if rect.Rect != want {
		t.Fatalf("background = %v, want %v", rect.Rect, want)
	}
}
