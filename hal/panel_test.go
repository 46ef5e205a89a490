package hal

import (
	"errors"
	"testing"
)

var (
	black = RGB(0, 0, 0)
	white = RGB(0xFF, 0xFF, 0xFF)
)

func shownIs(p *Panel, x, y int, c Color) bool {
	r, g, b := p.ShownRGB(x, y)
	return r == c.R && g == c.G && b == c.B
}

func TestPanelDrawingInvisibleUntilRefresh(t *testing.T) {
	p := NewPanel(20, 10)
	p.FillRect(0, 0, 5, 5, black)
	if !shownIs(p, 1, 1, white) {
		t.Fatal("expected panel unchanged before refresh")
	}
	p.FullRefresh()
	if !shownIs(p, 1, 1, black) {
		t.Fatal("expected black after full refresh")
	}
	if !shownIs(p, 6, 6, white) {
		t.Fatal("expected white outside the rectangle")
	}
	if full, partial := p.Refreshes(); full != 1 || partial != 0 {
		t.Fatalf("Refreshes() = %d, %d, want 1, 0", full, partial)
	}
}

func TestPanelPartialRefresh(t *testing.T) {
	p := NewPanel(20, 10)
	p.FillRect(0, 0, 5, 5, black)
	p.PartialRefresh(0, 0, 2, 2)
	if !shownIs(p, 1, 1, black) {
		t.Fatal("expected refreshed region black")
	}
	if !shownIs(p, 3, 3, white) {
		t.Fatal("expected region outside the refresh unchanged")
	}

	p.PartialRefresh(-10, -10, 5, 5)
	if _, partial := p.Refreshes(); partial != 2 {
		t.Fatalf("partial refreshes = %d, want 2", partial)
	}
}

func TestPanelFillClamps(t *testing.T) {
	p := NewPanel(8, 8)
	p.FillRect(-5, -5, 100, 100, black)
	p.FillRect(3, 3, 0, 4, white)
	p.FillCircle(7, 7, 20, black)
	p.FullRefresh()
	if !shownIs(p, 0, 0, black) || !shownIs(p, 7, 7, black) {
		t.Fatal("expected clamped fill to cover the panel")
	}
}

func TestPanelFillCircle(t *testing.T) {
	p := NewPanel(20, 20)
	p.FillCircle(10, 10, 3, black)
	p.FullRefresh()
	if !shownIs(p, 10, 10, black) || !shownIs(p, 12, 10, black) {
		t.Fatal("expected circle filled")
	}
	if !shownIs(p, 0, 0, white) || !shownIs(p, 15, 10, white) {
		t.Fatal("expected outside of circle white")
	}
}

func TestPanelOpenFont(t *testing.T) {
	p := NewPanel(10, 10)
	f, err := p.OpenFont("Roboto-Bold", 40, 1)
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	if f == 0 {
		t.Fatal("expected non-zero font handle")
	}
	if _, err := p.OpenFont("Comic", 40, 0); !errors.Is(err, ErrFontNotFound) {
		t.Fatalf("OpenFont(unknown) err = %v, want ErrFontNotFound", err)
	}
	if _, err := p.OpenFont("Roboto", 0, 0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestPanelOpenFontFamilies(t *testing.T) {
	p := NewPanel(10, 10)
	for name := range panelFamilies {
		for _, size := range []int{8, 12, 24, 32, 60} {
			f, err := p.OpenFont(name, size, 0)
			if err != nil {
				t.Fatalf("OpenFont(%q, %d): %v", name, size, err)
			}
			if w, h := p.TextSize(f, "Hg"); w <= 0 || h <= 0 {
				t.Fatalf("TextSize(%q/%d) = %d, %d, want positive", name, size, w, h)
			}
		}
	}
	for family, faces := range panelFaces {
		if len(faces) != 4 {
			t.Fatalf("family %q has %d faces, want 4", family, len(faces))
		}
	}
}

func TestPanelTextSize(t *testing.T) {
	p := NewPanel(10, 10)
	f, err := p.OpenFont("Roboto", 12, 0)
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	w, h := p.TextSize(f, "Hello")
	if w <= 0 || h <= 0 {
		t.Fatalf("TextSize() = %d, %d, want positive", w, h)
	}
	w2, h2 := p.TextSize(f, "Hello\nHello")
	if w2 != w || h2 != 2*h {
		t.Fatalf("TextSize(two lines) = %d, %d, want %d, %d", w2, h2, w, 2*h)
	}
	if w, h := p.TextSize(0, "Hello"); w != 0 || h != 0 {
		t.Fatalf("TextSize(no font) = %d, %d, want 0, 0", w, h)
	}
}

func TestPanelDrawTextBlockClips(t *testing.T) {
	p := NewPanel(60, 40)
	f, err := p.OpenFont("Roboto", 12, 0)
	if err != nil {
		t.Fatalf("OpenFont: %v", err)
	}
	p.SetFont(f, black)
	p.DrawTextBlock(0, 0, 60, 40, "HHHH", VAlignTop|AlignLeft)
	p.FullRefresh()
	if !anyShown(p, 0, 0, 60, 40, black) {
		t.Fatal("expected text pixels")
	}

	p = NewPanel(60, 40)
	f, _ = p.OpenFont("Roboto", 12, 0)
	p.SetFont(f, black)
	p.DrawTextBlock(0, 0, 6, 40, "HHHH", VAlignTop|AlignLeft)
	p.FullRefresh()
	if anyShown(p, 6, 0, 60, 40, black) {
		t.Fatal("expected text clipped to the block")
	}
}

func anyShown(p *Panel, x0, y0, x1, y1 int, c Color) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if shownIs(p, x, y, c) {
				return true
			}
		}
	}
	return false
}

func TestPanelCloseAndMode(t *testing.T) {
	p := NewPanel(4, 4)
	if p.PanelMode() != PanelEnabled {
		t.Fatalf("PanelMode() = %v, want enabled", p.PanelMode())
	}
	p.SetPanelMode(PanelDisabled)
	if p.PanelMode() != PanelDisabled {
		t.Fatalf("PanelMode() = %v, want disabled", p.PanelMode())
	}
	if p.Closed() {
		t.Fatal("expected open panel")
	}
	p.CloseApp()
	if !p.Closed() {
		t.Fatal("expected closed panel")
	}
}

func TestPanelSnapshotRGBA(t *testing.T) {
	p := NewPanel(2, 1)
	p.FillRect(1, 0, 1, 1, black)
	p.FullRefresh()
	buf := make([]byte, 2*1*4)
	p.snapshotRGBA(buf)
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0xFF}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", buf, want)
		}
	}
}
