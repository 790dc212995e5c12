package ordinal

// Point is a position in diagram coordinates (y grows upwards).
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Bounds is an axis-aligned rectangle in diagram coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// SquareAround returns the square centred on c that extends half in every
// direction.
func SquareAround(c Point, half float64) Bounds {
	return Bounds{MinX: c.X - half, MinY: c.Y - half, MaxX: c.X + half, MaxY: c.Y + half}
}

// BorderColor is the outline color of every circle.
const BorderColor = "black"

// Circle is one drawn member. Center, Radius, Fill and Border are what a
// canvas needs; Value, Depth and State describe where the circle came from.
type Circle struct {
	Center Point
	Radius float64
	Fill   string
	Border string

	Value int        // ordinal rendered by this circle
	Depth int        // nesting depth, 0 for the root
	State ColorState // shading state Fill was resolved from
}
