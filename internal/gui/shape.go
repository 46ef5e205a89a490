package gui

// Color32 is an sRGBA color.
type Color32 struct {
	R, G, B, A uint8
}

// Gray returns an opaque gray level.
func Gray(l uint8) Color32 { return Color32{R: l, G: l, B: l, A: 0xFF} }

var (
	Black = Gray(0)
	White = Gray(0xFF)
)

// Stroke is an outline description.
type Stroke struct {
	Width float32
	Color Color32
}

// TextStyle is the semantic role of a piece of text.
type TextStyle uint8

const (
	TextBody TextStyle = iota
	TextHeading
	TextSmall
	TextButton
)

// Galley is a laid-out block of text with a known size.
type Galley struct {
	Text  string
	Style TextStyle
	Size  Vec2
}

// Shape is one display-list primitive.
type Shape interface {
	shape()
}

type NoopShape struct{}

// ShapeGroup is a nested list of shapes.
type ShapeGroup []Shape

type CircleShape struct {
	Center Pos2
	Radius float32
	Fill   Color32
	Stroke Stroke
}

type LineSegmentShape struct {
	Points [2]Pos2
	Stroke Stroke
}

type PathShape struct {
	Points []Pos2
	Closed bool
	Fill   Color32
	Stroke Stroke
}

type RectShape struct {
	Rect         Rect
	CornerRadius float32
	Fill         Color32
	Stroke       Stroke
}

// TextShape draws a galley with its top-left corner at Pos.
type TextShape struct {
	Pos         Pos2
	Galley      *Galley
	Color       Color32
	FakeItalics bool
}

type Vertex struct {
	Pos   Pos2
	Color Color32
}

type MeshShape struct {
	Indices  []uint32
	Vertices []Vertex
}

func (NoopShape) shape()        {}
func (ShapeGroup) shape()       {}
func (CircleShape) shape()      {}
func (LineSegmentShape) shape() {}
func (PathShape) shape()        {}
func (RectShape) shape()        {}
func (TextShape) shape()        {}
func (MeshShape) shape()        {}

// ClippedShape pairs a shape with the clip rectangle it is drawn in.
type ClippedShape struct {
	Clip  Rect
	Shape Shape
}
