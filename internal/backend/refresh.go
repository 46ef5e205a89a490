package backend

import (
	"fmt"

	"inkpad/hal"
	"inkpad/internal/gui"
)

// RefreshKind is how the panel was updated after a frame.
type RefreshKind uint8

const (
	RefreshNone RefreshKind = iota
	RefreshFull
	RefreshPartial
)

// Refresh is the decision taken for one frame. The region is only set
// for partial refreshes.
type Refresh struct {
	Kind RefreshKind
	X, Y int
	W, H int
}

func (r Refresh) String() string {
	switch r.Kind {
	case RefreshFull:
		return "full"
	case RefreshPartial:
		return fmt.Sprintf("partial %dx%d+%d+%d", r.W, r.H, r.X, r.Y)
	default:
		return "none"
	}
}

// RefreshController updates the panel after a frame has been drawn.
type RefreshController struct {
	dev hal.Device
	geo Geometry
}

// NewRefreshController returns a controller that issues refreshes on dev.
func NewRefreshController(dev hal.Device, geo Geometry) *RefreshController {
	return &RefreshController{dev: dev, geo: geo}
}

// AfterFrame refreshes the whole panel for Show frames. Other frames
// refresh the bounding box of the changed areas, or nothing when no
// widget changed.
func (c *RefreshController) AfterFrame(trigger hal.EventKind, out gui.Output) Refresh {
	if trigger == hal.EventShow {
		c.dev.FullRefresh()
		return Refresh{Kind: RefreshFull}
	}
	if len(out.Changed) == 0 {
		return Refresh{}
	}

	area := out.Changed[0]
	for _, r := range out.Changed[1:] {
		area = area.Union(r)
	}
	x, y, w, h := c.geo.CoverRect(area)
	if w <= 0 || h <= 0 {
		return Refresh{}
	}
	c.dev.PartialRefresh(x, y, w, h)
	return Refresh{Kind: RefreshPartial, X: x, Y: y, W: w, H: h}
}
