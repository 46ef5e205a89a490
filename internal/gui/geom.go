package gui

// Pos2 is a position in points.
type Pos2 struct {
	X, Y float32
}

// Vec2 is a size or offset in points.
type Vec2 struct {
	X, Y float32
}

func (p Pos2) Add(v Vec2) Pos2 { return Pos2{X: p.X + v.X, Y: p.Y + v.Y} }

// Rect is an axis-aligned rectangle; Max is exclusive.
type Rect struct {
	Min, Max Pos2
}

// RectFromMinSize returns the rectangle at min with the given size.
func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{X: r.Width(), Y: r.Height()} }

// IsPositive reports whether the rectangle has a strictly positive area.
func (r Rect) IsPositive() bool {
	return r.Max.X > r.Min.X && r.Max.Y > r.Min.Y
}

func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Pos2{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Pos2{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Intersect returns the overlap of both rectangles. The result is not
// positive when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Pos2{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
}

// Shrink moves every edge inwards by d.
func (r Rect) Shrink(d float32) Rect {
	return Rect{
		Min: Pos2{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Pos2{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}
