//go:build !inkview && !cgo

package hal

import "errors"

// WindowConfig controls the desktop simulator window.
type WindowConfig struct {
	Title string
	Scale float64
}

func RunWindow(_ *Panel, _ EventHandler, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
