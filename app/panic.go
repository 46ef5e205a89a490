package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"unicode/utf8"

	"inkpad/hal"
	"inkpad/internal/resources"
)

const panicPadding = 16

// ErrPanicked is returned by PanicGuard.Err after a recovered panic.
var ErrPanicked = errors.New("application panicked")

// PanicGuard wraps a Runner so a panic while handling an event is logged
// and painted on the panel instead of unwinding into the device main
// loop. The application is closed afterwards; the message stays on the
// panel and Err reports the failure to the entry point.
type PanicGuard struct {
	r *Runner

	mu  sync.Mutex
	err error
}

var (
	_ hal.EventHandler = (*PanicGuard)(nil)
	_ hal.Ticker       = (*PanicGuard)(nil)
)

// GuardPanics wraps r.
func GuardPanics(r *Runner) *PanicGuard { return &PanicGuard{r: r} }

// Err returns the first recovered panic wrapped in ErrPanicked, or nil.
func (g *PanicGuard) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

func (g *PanicGuard) HandleEvent(ev hal.Event) (ret int32) {
	defer g.catch()
	return g.r.HandleEvent(ev)
}

func (g *PanicGuard) Tick() {
	defer g.catch()
	g.r.Tick()
}

func (g *PanicGuard) catch() {
	v := recover()
	if v == nil {
		return
	}
	g.mu.Lock()
	if g.err == nil {
		g.err = fmt.Errorf("%w: %v", ErrPanicked, v)
	}
	g.mu.Unlock()
	g.r.showPanic(v, debug.Stack())
}

func (r *Runner) showPanic(v any, stack []byte) {
	r.logf("inkpad panic: %v", v)
	lines := []string{
		"inkpad panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			r.log.WriteLineString(line)
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	w, h := r.geo.DeviceWidth, r.geo.DeviceHeight
	font := r.fonts.Font(resources.RoleRegular)
	charW, lineH := r.dev.TextSize(font, "0")
	r.dev.FillRect(0, 0, w, h, hal.RGB(0xFF, 0xFF, 0xFF))
	if charW > 0 && lineH > 0 {
		r.dev.SetFont(font, hal.RGB(0, 0, 0))
		cols := max((w-2*panicPadding)/charW, 1)
		y := panicPadding
	draw:
		for _, line := range lines {
			for len(line) > 0 {
				if y+lineH > h-panicPadding {
					break draw
				}
				chunk, rest := takeRunes(line, cols)
				r.dev.DrawTextBlock(panicPadding, y, w-2*panicPadding, lineH, chunk, hal.VAlignTop|hal.AlignLeft)
				y += lineH
				line = strings.TrimLeft(rest, " ")
			}
		}
	}
	r.dev.FullRefresh()

	r.closed = true
	r.dev.CloseApp()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
