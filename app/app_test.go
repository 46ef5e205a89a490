package app

import (
	"errors"
	"testing"

	"inkpad/hal"
	"inkpad/internal/backend"
	"inkpad/internal/gui"
	"inkpad/internal/storage"
)

type testApp struct {
	setups  int
	updates int
	clicks  int
	quit    bool
	store   storage.Store
	info    IntegrationInfo
}

func (a *testApp) Setup(ctx *gui.Context, frame *Frame, store storage.Store) {
	a.setups++
	a.store = store
	a.info = frame.Info
}

func (a *testApp) Update(ctx *gui.Context, frame *Frame) {
	a.updates++
	if ctx.Button("Tap").Clicked {
		a.clicks++
		a.store.Set("clicks", "1")
	}
	ctx.Label("hello")
	if a.quit {
		frame.Quit()
	}
}

type flushCounter struct {
	*storage.Memory
	flushes int
}

func (s *flushCounter) Flush() error {
	s.flushes++
	return nil
}

func newTestRunner(t *testing.T, cfg Config) (*hal.Recorder, *testApp, *Runner) {
	t.Helper()
	rec := hal.NewRecorder(300, 600)
	a := &testApp{}
	r, err := New(rec, a, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return rec, a, r
}

func TestNewCallsSetup(t *testing.T) {
	_, a, r := newTestRunner(t, Config{Backend: "test"})
	if a.setups != 1 || a.updates != 0 {
		t.Fatalf("setups = %d, updates = %d, want 1, 0", a.setups, a.updates)
	}
	want := IntegrationInfo{Backend: "test", ScreenWidth: 300, ScreenHeight: 600, PixelsPerPoint: 3}
	if a.info != want {
		t.Fatalf("info = %+v, want %+v", a.info, want)
	}
	if got := r.Context().PixelsPerPoint(); got != 3 {
		t.Fatalf("PixelsPerPoint() = %v, want 3", got)
	}
}

func TestNewFontFailure(t *testing.T) {
	rec := hal.NewRecorder(300, 600)
	rec.Missing = map[string]bool{"Roboto": true}
	a := &testApp{}
	_, err := New(rec, a, Config{})
	if !errors.Is(err, hal.ErrFontNotFound) {
		t.Fatalf("New() err = %v, want ErrFontNotFound", err)
	}
	if a.setups != 0 {
		t.Fatal("expected no setup after font failure")
	}
}

func TestShowFullRefresh(t *testing.T) {
	rec, a, r := newTestRunner(t, Config{})
	if got := r.HandleEvent(hal.Event{Kind: hal.EventShow}); got != 0 {
		t.Fatalf("HandleEvent() = %d, want 0", got)
	}

	if rec.Calls[0].Op != hal.OpSetPanelMode || rec.Calls[0].Mode != hal.PanelDisabled {
		t.Fatalf("first call = %+v, want SetPanelMode(disabled)", rec.Calls[0])
	}
	if n := rec.Count(hal.OpFullRefresh); n != 1 {
		t.Fatalf("full refreshes = %d, want 1", n)
	}
	if n := rec.Count(hal.OpPartialRefresh); n != 0 {
		t.Fatalf("partial refreshes = %d, want 0", n)
	}
	if last := rec.Calls[len(rec.Calls)-1]; last.Op != hal.OpFullRefresh {
		t.Fatalf("last call = %v, want FullRefresh after drawing", last.Op)
	}
	if rec.Count(hal.OpFillRect) == 0 || rec.Count(hal.OpDrawTextBlock) != 2 {
		t.Fatalf("calls = %v, want background, button and two text blocks", rec.Calls)
	}
	if a.updates != 1 || r.Frames() != 1 {
		t.Fatalf("updates = %d, frames = %d, want 1, 1", a.updates, r.Frames())
	}
	if r.LastRefresh().Kind != backend.RefreshFull {
		t.Fatalf("LastRefresh() = %v, want full", r.LastRefresh())
	}
}

func TestPointerAfterShowIsNotFull(t *testing.T) {
	rec, _, r := newTestRunner(t, Config{})
	r.HandleEvent(hal.Event{Kind: hal.EventShow})
	rec.Reset()

	r.HandleEvent(hal.Event{Kind: hal.EventPointerDown, P1: 290, P2: 590})
	if n := rec.Count(hal.OpFullRefresh); n != 0 {
		t.Fatalf("full refreshes = %d, want 0", n)
	}
	if n := rec.Count(hal.OpPartialRefresh); n != 0 {
		t.Fatalf("partial refreshes = %d, want 0 for an unchanged frame", n)
	}
	if r.Frames() != 2 {
		t.Fatalf("Frames() = %d, want 2", r.Frames())
	}
	if pos, ok := r.Context().PointerPos(); !ok || pos != (gui.Pos2{X: 290.0 / 3, Y: 590.0 / 3}) {
		t.Fatalf("PointerPos() = %v, %v, want device position / 3", pos, ok)
	}
}

func TestButtonTap(t *testing.T) {
	rec, a, r := newTestRunner(t, Config{})
	r.HandleEvent(hal.Event{Kind: hal.EventShow})
	rec.Reset()

	r.HandleEvent(hal.Event{Kind: hal.EventPointerDown, P1: 30, P2: 30})
	parts := rec.Filter(hal.OpPartialRefresh)
	if len(parts) != 1 {
		t.Fatalf("partial refreshes = %v, want 1", parts)
	}
	if p := parts[0]; p.X != 24 || p.Y != 24 || p.W != 90 {
		t.Fatalf("PartialRefresh(%d, %d, %d, %d), want the button at 24,24 90 wide", p.X, p.Y, p.W, p.H)
	}
	if a.clicks != 0 {
		t.Fatal("expected no click on press")
	}

	r.HandleEvent(hal.Event{Kind: hal.EventPointerUp, P1: 30, P2: 30})
	if a.clicks != 1 {
		t.Fatalf("clicks = %d, want 1", a.clicks)
	}
	if rec.Count(hal.OpFullRefresh) != 0 {
		t.Fatal("expected no full refresh for pointer frames")
	}

	frames := r.Frames()
	r.Tick()
	if r.Frames() != frames+1 {
		t.Fatalf("Frames() = %d, want a repaint frame after the click", r.Frames())
	}
	r.Tick()
	if r.Frames() != frames+1 {
		t.Fatalf("Frames() = %d, want no further frame", r.Frames())
	}
}

func TestTickPaintsOnce(t *testing.T) {
	_, a, r := newTestRunner(t, Config{})
	r.Tick()
	r.Tick()
	if a.updates != 1 {
		t.Fatalf("updates = %d, want 1", a.updates)
	}
}

func TestShowClearsPendingRepaint(t *testing.T) {
	_, a, r := newTestRunner(t, Config{})
	r.HandleEvent(hal.Event{Kind: hal.EventShow})
	r.Tick()
	if a.updates != 1 {
		t.Fatalf("updates = %d, want 1", a.updates)
	}
	r.RepaintSignal().Request()
	r.Tick()
	if a.updates != 2 {
		t.Fatalf("updates = %d, want 2 after a request", a.updates)
	}
}

func TestKeyPressQuits(t *testing.T) {
	store := &flushCounter{Memory: storage.NewMemory()}
	rec, a, r := newTestRunner(t, Config{Storage: store})

	if got := r.HandleEvent(hal.Event{Kind: hal.EventKeyPress, P1: 25}); got != 0 {
		t.Fatalf("HandleEvent() = %d, want 0", got)
	}
	if !rec.Closed || !r.Closed() {
		t.Fatal("expected CloseApp")
	}
	if a.updates != 0 || r.Frames() != 0 {
		t.Fatalf("updates = %d, want no frame on key press", a.updates)
	}
	if store.flushes != 1 {
		t.Fatalf("flushes = %d, want 1", store.flushes)
	}

	rec.Reset()
	r.HandleEvent(hal.Event{Kind: hal.EventShow})
	if len(rec.Calls) != 0 {
		t.Fatalf("calls after close = %v, want none", rec.Calls)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := KeyMap{Default: ActionIgnore, Keys: map[int32]KeyAction{28: ActionRefresh}}
	rec, a, r := newTestRunner(t, Config{Keys: &keys})

	r.HandleEvent(hal.Event{Kind: hal.EventKeyPress, P1: 25})
	if rec.Closed || a.updates != 0 {
		t.Fatal("expected ignored key")
	}

	r.HandleEvent(hal.Event{Kind: hal.EventKeyPress, P1: 28})
	if a.updates != 1 || rec.Count(hal.OpFullRefresh) != 1 {
		t.Fatalf("updates = %d, full refreshes = %d, want 1, 1", a.updates, rec.Count(hal.OpFullRefresh))
	}
}

func TestApplicationQuit(t *testing.T) {
	store := &flushCounter{Memory: storage.NewMemory()}
	rec, a, r := newTestRunner(t, Config{Storage: store})
	a.quit = true

	r.HandleEvent(hal.Event{Kind: hal.EventShow})
	if !rec.Closed {
		t.Fatal("expected CloseApp after the frame")
	}
	if rec.Count(hal.OpFullRefresh) != 1 {
		t.Fatal("expected the frame to be shown before closing")
	}
	if last := rec.Calls[len(rec.Calls)-1]; last.Op != hal.OpCloseApp {
		t.Fatalf("last call = %v, want CloseApp", last.Op)
	}
	if store.flushes != 1 {
		t.Fatalf("flushes = %d, want 1", store.flushes)
	}
}

func TestOtherEventsIgnored(t *testing.T) {
	rec, a, r := newTestRunner(t, Config{})
	if got := r.HandleEvent(hal.Event{Kind: hal.EventOther, P1: 7}); got != 0 {
		t.Fatalf("HandleEvent() = %d, want 0", got)
	}
	if len(rec.Calls) != 0 || a.updates != 0 {
		t.Fatalf("calls = %v, updates = %d, want nothing", rec.Calls, a.updates)
	}
}

func TestExitFlushes(t *testing.T) {
	store := &flushCounter{Memory: storage.NewMemory()}
	_, a, r := newTestRunner(t, Config{Storage: store})
	r.HandleEvent(hal.Event{Kind: hal.EventExit})
	if store.flushes != 1 || a.updates != 0 {
		t.Fatalf("flushes = %d, updates = %d, want 1, 0", store.flushes, a.updates)
	}
}

func TestGeometryOverride(t *testing.T) {
	_, _, r := newTestRunner(t, Config{Geometry: backend.Geometry{PixelsPerPoint: 2}})
	r.HandleEvent(hal.Event{Kind: hal.EventPointerDrag, P1: 10, P2: 20})
	if pos, _ := r.Context().PointerPos(); pos != (gui.Pos2{X: 5, Y: 10}) {
		t.Fatalf("PointerPos() = %v, want (5, 10)", pos)
	}
}
