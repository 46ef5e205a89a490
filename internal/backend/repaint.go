package backend

import "sync/atomic"

// RepaintFlag is a dirty flag that may be set from any goroutine and is
// consumed by the dispatch path. It starts set so the first opportunity
// paints.
type RepaintFlag struct {
	v atomic.Bool
}

// NewRepaintFlag returns a cleared flag.
func NewRepaintFlag() *RepaintFlag {
	f := &RepaintFlag{}
	f.v.Store(true)
	return f
}

// Request marks a repaint as needed.
func (f *RepaintFlag) Request() { f.v.Store(true) }

// FetchAndClear reports whether a repaint was requested and clears it.
func (f *RepaintFlag) FetchAndClear() bool { return f.v.Swap(false) }
