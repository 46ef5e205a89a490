//go:build inkview && cgo

package hal

import "C"

var (
	inkviewHandler EventHandler
	tickStarted    bool
)

//export inkpadHandler
func inkpadHandler(t, par1, par2 C.int) C.int {
	if inkviewHandler == nil {
		return 0
	}
	ev := Event{Kind: inkviewEventKind(t), P1: int32(par1), P2: int32(par2)}
	ret := inkviewHandler.HandleEvent(ev)
	if !tickStarted {
		if _, ok := inkviewHandler.(Ticker); ok {
			tickStarted = true
			scheduleTick()
		}
	}
	return C.int(ret)
}

// inkpadTick runs on the InkView main thread and re-arms itself.
//
//export inkpadTick
func inkpadTick() {
	t, ok := inkviewHandler.(Ticker)
	if !ok {
		return
	}
	t.Tick()
	scheduleTick()
}
