package hal

import (
	"fmt"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

type panelFont struct {
	name    string
	size    int
	face    tinyfont.Fonter
	ascent  int16
	descent int16
}

type faceSet struct {
	pt   int
	face tinyfont.Fonter
}

// Faces ordered by point size. InkView font names map onto FreeSans.
var panelFaces = map[string][]faceSet{
	"regular": {
		{9, &freesans.Regular9pt7b},
		{12, &freesans.Regular12pt7b},
		{18, &freesans.Regular18pt7b},
		{24, &freesans.Regular24pt7b},
	},
	"bold": {
		{9, &freesans.Bold9pt7b},
		{12, &freesans.Bold12pt7b},
		{18, &freesans.Bold18pt7b},
		{24, &freesans.Bold24pt7b},
	},
	"italic": {
		{9, &freesans.Oblique9pt7b},
		{12, &freesans.Oblique12pt7b},
		{18, &freesans.Oblique18pt7b},
		{24, &freesans.Oblique24pt7b},
	},
	"bolditalic": {
		{9, &freesans.BoldOblique9pt7b},
		{12, &freesans.BoldOblique12pt7b},
		{18, &freesans.BoldOblique18pt7b},
		{24, &freesans.BoldOblique24pt7b},
	},
}

var panelFamilies = map[string]string{
	"roboto":            "regular",
	"roboto-regular":    "regular",
	"roboto-bold":       "bold",
	"roboto-italic":     "italic",
	"roboto-bolditalic": "bolditalic",
	"freesans":          "regular",
}

// OpenFont resolves a font by name and pixel size. flags is accepted for
// InkView compatibility (antialiasing) and ignored.
func (p *Panel) OpenFont(name string, size, flags int) (Font, error) {
	_ = flags
	family, ok := panelFamilies[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("open font %q: %w", name, ErrFontNotFound)
	}
	if size <= 0 {
		return 0, fmt.Errorf("open font %q: invalid size %d", name, size)
	}
	face := pickFace(panelFaces[family], size)
	ascent, descent := faceExtents(face)
	p.fonts = append(p.fonts, panelFont{
		name:    name,
		size:    size,
		face:    face,
		ascent:  ascent,
		descent: descent,
	})
	return Font(len(p.fonts)), nil
}

// pickFace returns the largest face whose nominal pixel height (pt*4/3)
// fits in size, or the smallest face.
func pickFace(faces []faceSet, size int) tinyfont.Fonter {
	best := faces[0].face
	for _, f := range faces {
		if f.pt*4/3 <= size {
			best = f.face
		}
	}
	return best
}

func faceExtents(face tinyfont.Fonter) (ascent, descent int16) {
	for _, r := range "Hgjpqy" {
		g := face.GetGlyph(r)
		if g == nil {
			continue
		}
		info := g.Info()
		if a := -int16(info.YOffset); a > ascent {
			ascent = a
		}
		if d := int16(info.Height) + int16(info.YOffset); d > descent {
			descent = d
		}
	}
	if ascent == 0 {
		ascent = int16(face.GetYAdvance())
	}
	return ascent, descent
}

func (p *Panel) font(f Font) (panelFont, bool) {
	i := int(f) - 1
	if i < 0 || i >= len(p.fonts) {
		return panelFont{}, false
	}
	return p.fonts[i], true
}

func (p *Panel) TextSize(f Font, text string) (w, h int) {
	pf, ok := p.font(f)
	if !ok {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		_, outbox := tinyfont.LineWidth(pf.face, line)
		if int(outbox) > w {
			w = int(outbox)
		}
	}
	return w, len(lines) * lineHeight(pf)
}

// DrawTextBlock draws text inside the block using the current font and
// foreground color. Lines are not wrapped; pixels outside the block are
// clipped.
func (p *Panel) DrawTextBlock(x, y, w, h int, text string, align Align) {
	pf, ok := p.font(p.curFont)
	if !ok || w <= 0 || h <= 0 {
		return
	}
	d := clipDisplayer{
		base: p,
		x0:   int16(x),
		y0:   int16(y),
		x1:   int16(x + w),
		y1:   int16(y + h),
	}

	lines := strings.Split(text, "\n")
	lh := lineHeight(pf)
	total := len(lines) * lh
	top := y
	switch {
	case align&VAlignBottom != 0:
		top = y + h - total
	case align&VAlignMiddle != 0:
		top = y + (h-total)/2
	}

	for i, line := range lines {
		_, outbox := tinyfont.LineWidth(pf.face, line)
		lx := x
		switch {
		case align&AlignRight != 0:
			lx = x + w - int(outbox)
		case align&AlignCenter != 0:
			lx = x + (w-int(outbox))/2
		}
		baseline := top + i*lh + int(pf.ascent)
		tinyfont.WriteLine(d, pf.face, int16(lx), int16(baseline), line, p.fg)
	}
}

func lineHeight(pf panelFont) int {
	h := int(pf.ascent) + int(pf.descent)
	if h <= 0 {
		h = int(pf.face.GetYAdvance())
	}
	return h
}
