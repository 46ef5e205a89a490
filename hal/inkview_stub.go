//go:build !(inkview && cgo)

package hal

// RunInkView is only available when built with the inkview tag and cgo.
func RunInkView(_ func(Device) (EventHandler, error)) error {
	return ErrNotImplemented
}
