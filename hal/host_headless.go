package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Script []Event
}

// RunHeadless delivers the scripted events to h, one per tick, calling
// Tick between them when h implements Ticker. It returns nil once the
// script is exhausted or the panel has been closed.
func RunHeadless(ctx context.Context, panel *Panel, h EventHandler, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	ticker, _ := h.(Ticker)
	next := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if next < len(cfg.Script) {
				h.HandleEvent(cfg.Script[next])
				next++
			}
			if ticker != nil {
				ticker.Tick()
			}
			if panel != nil && panel.Closed() {
				return nil
			}
			if next >= len(cfg.Script) {
				return nil
			}
		}
	}
}
