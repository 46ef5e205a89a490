// Package backend drives toolkit frames for an e-ink device: it opens and
// closes frames, translates native events into toolkit input, replays
// display lists as device draw calls and chooses how to refresh the panel.
package backend

import (
	"time"

	"inkpad/internal/gui"
)

// Frames owns the toolkit context and guarantees that at most one frame
// is open at a time. Mismatched calls are programming errors and panic.
type Frames struct {
	ctx *gui.Context
	now func() time.Time

	frameStart        time.Time
	open              bool
	previousFrameTime time.Duration
	frames            uint64
}

// NewFrames wraps ctx. now may be nil to use the wall clock.
func NewFrames(ctx *gui.Context, now func() time.Time) *Frames {
	if now == nil {
		now = time.Now
	}
	return &Frames{ctx: ctx, now: now}
}

// Context returns the toolkit context.
func (f *Frames) Context() *gui.Context { return f.ctx }

// Open reports whether a frame is in progress.
func (f *Frames) Open() bool { return f.open }

// BeginFrame opens a frame with the given input.
func (f *Frames) BeginFrame(in gui.RawInput) {
	if f.open {
		panic("unmatched calls to BeginFrame/EndFrame")
	}
	f.open = true
	f.frameStart = f.now()
	f.ctx.BeginFrame(in)
}

// EndFrame closes the open frame and returns the toolkit output and the
// display list.
func (f *Frames) EndFrame() (gui.Output, []gui.ClippedShape) {
	if !f.open {
		panic("unmatched calls to BeginFrame/EndFrame")
	}
	out, shapes := f.ctx.EndFrame()
	f.open = false
	f.previousFrameTime = f.now().Sub(f.frameStart)
	f.frames++
	return out, shapes
}

// PreviousFrameTime returns how long the last completed frame took,
// best effort.
func (f *Frames) PreviousFrameTime() time.Duration { return f.previousFrameTime }

// Count returns the number of completed frames.
func (f *Frames) Count() uint64 { return f.frames }
