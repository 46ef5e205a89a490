package backend

import (
	"inkpad/hal"
	"inkpad/internal/gui"
	"inkpad/internal/resources"
)

// FontSource resolves a font role to a device font.
type FontSource interface {
	Font(r resources.Role) hal.Font
}

// FontRoleFunc picks the font role a galley is drawn and measured with.
type FontRoleFunc func(g *gui.Galley) resources.Role

// RegularFont always selects the regular text font.
func RegularFont(*gui.Galley) resources.Role { return resources.RoleRegular }

// RenderStats counts what a Draw call did with the display list.
type RenderStats struct {
	Drawn   int
	Clipped int
	Dropped int
}

// Renderer replays display lists as device draw calls.
type Renderer struct {
	dev      hal.Device
	fonts    FontSource
	geo      Geometry
	fontRole FontRoleFunc
}

// NewRenderer returns a renderer. A nil role func selects RegularFont.
func NewRenderer(dev hal.Device, fonts FontSource, geo Geometry, role FontRoleFunc) *Renderer {
	if role == nil {
		role = RegularFont
	}
	return &Renderer{dev: dev, fonts: fonts, geo: geo, fontRole: role}
}

// Draw issues one device call per supported primitive, in list order.
// Entries with a non-positive clip rectangle are skipped. Lines, paths,
// meshes, groups and no-ops are dropped. Corner radius, stroke and alpha
// are not rendered.
func (r *Renderer) Draw(list []gui.ClippedShape) RenderStats {
	var st RenderStats
	for _, cs := range list {
		if !cs.Clip.IsPositive() {
			st.Clipped++
			continue
		}
		if r.drawShape(cs.Shape) {
			st.Drawn++
		} else {
			st.Dropped++
		}
	}
	return st
}

func (r *Renderer) drawShape(s gui.Shape) bool {
	g := r.geo
	switch s := s.(type) {
	case gui.CircleShape:
		r.dev.FillCircle(g.Px(s.Center.X), g.Px(s.Center.Y), g.Px(s.Radius), deviceColor(s.Fill))
	case gui.RectShape:
		x, y, w, h := g.DeviceRect(s.Rect)
		r.dev.FillRect(x, y, w, h, deviceColor(s.Fill))
	case gui.TextShape:
		if s.Galley == nil {
			return false
		}
		r.dev.SetFont(r.fonts.Font(r.fontRole(s.Galley)), deviceColor(s.Color))
		r.dev.DrawTextBlock(
			g.Px(s.Pos.X), g.Px(s.Pos.Y),
			g.Px(s.Galley.Size.X), g.Px(s.Galley.Size.Y),
			s.Galley.Text, hal.VAlignBottom|hal.AlignLeft,
		)
	default:
		return false
	}
	return true
}

func deviceColor(c gui.Color32) hal.Color {
	return hal.RGB(c.R, c.G, c.B)
}

// Measurer lays out text with the device fonts so galley sizes match what
// the renderer draws.
type Measurer struct {
	dev      hal.Device
	fonts    FontSource
	geo      Geometry
	fontRole FontRoleFunc
}

// NewMeasurer returns a measurer backed by the device fonts.
func NewMeasurer(dev hal.Device, fonts FontSource, geo Geometry, role FontRoleFunc) *Measurer {
	if role == nil {
		role = RegularFont
	}
	return &Measurer{dev: dev, fonts: fonts, geo: geo, fontRole: role}
}

// Measure returns the size of text in points.
func (m *Measurer) Measure(text string, style gui.TextStyle) gui.Vec2 {
	role := m.fontRole(&gui.Galley{Text: text, Style: style})
	w, h := m.dev.TextSize(m.fonts.Font(role), text)
	ppp := m.geo.PixelsPerPoint
	return gui.Vec2{X: float32(w) / ppp, Y: float32(h) / ppp}
}
