package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"inkpad/hal"
	"inkpad/internal/gui"
	"inkpad/internal/storage"
)

type panicApp struct{}

func (panicApp) Setup(*gui.Context, *Frame, storage.Store) {}
func (panicApp) Update(*gui.Context, *Frame)               { panic("boom") }

func TestPanicGuardShowsPanic(t *testing.T) {
	var buf bytes.Buffer
	rec := hal.NewRecorder(300, 600)
	r, err := New(rec, panicApp{}, Config{Logger: hal.NewLogger(&buf)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g := GuardPanics(r)

	if got := g.HandleEvent(hal.Event{Kind: hal.EventShow}); got != 0 {
		t.Fatalf("HandleEvent() = %d, want 0", got)
	}
	if !rec.Closed || !r.Closed() {
		t.Fatal("expected CloseApp after panic")
	}
	if last := rec.Calls[len(rec.Calls)-1]; last.Op != hal.OpCloseApp {
		t.Fatalf("last call = %v, want CloseApp", last.Op)
	}
	if rec.Count(hal.OpFullRefresh) != 1 {
		t.Fatalf("full refreshes = %d, want 1", rec.Count(hal.OpFullRefresh))
	}

	var shown []string
	for _, c := range rec.Filter(hal.OpDrawTextBlock) {
		shown = append(shown, c.Text)
	}
	if len(shown) < 2 || shown[1] != "panic: boom" {
		t.Fatalf("panel text = %q, want panic message", shown)
	}
	if err := g.Err(); !errors.Is(err, ErrPanicked) || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Err() = %v, want ErrPanicked with boom", err)
	}
	if !strings.Contains(buf.String(), "inkpad panic: boom") {
		t.Fatalf("log = %q, want panic line", buf.String())
	}

	rec.Reset()
	g.Tick()
	g.HandleEvent(hal.Event{Kind: hal.EventShow})
	if len(rec.Calls) != 0 {
		t.Fatalf("calls after panic = %v, want none", rec.Calls)
	}
}

type unbalancedApp struct{}

func (unbalancedApp) Setup(*gui.Context, *Frame, storage.Store) {}
func (unbalancedApp) Update(ctx *gui.Context, _ *Frame) {
	ctx.BeginFrame(ctx.Input())
}

func TestPanicGuardReportsError(t *testing.T) {
	panel := hal.NewPanel(300, 600)
	r, err := New(panel, unbalancedApp{}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g := GuardPanics(r)
	if g.Err() != nil {
		t.Fatalf("Err() = %v before any event, want nil", g.Err())
	}

	script := []hal.Event{{Kind: hal.EventShow}, {Kind: hal.EventRepaint}}
	if err := hal.RunHeadless(context.Background(), panel, g, hal.HeadlessConfig{Hz: 1000, Script: script}); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if !panel.Closed() {
		t.Fatal("expected panel closed after panic")
	}
	if err := g.Err(); !errors.Is(err, ErrPanicked) {
		t.Fatalf("Err() = %v, want ErrPanicked", err)
	}
	if !strings.Contains(g.Err().Error(), "BeginFrame called twice") {
		t.Fatalf("Err() = %v, want the panic value", g.Err())
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"hello", 10, "hello", ""},
		{"hello", 2, "he", "llo"},
		{"äöü", 2, "äö", "ü"},
		{"x", 0, "", "x"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}
