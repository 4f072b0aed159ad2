package core

// Point is a signed cell coordinate
// Negative values are valid intermediates during rasterization and are clipped by CellBuffer
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the componentwise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the componentwise difference
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// AddX offsets the column
func (p Point) AddX(x int) Point {
	return Point{X: p.X + x, Y: p.Y}
}

// AddY offsets the row
func (p Point) AddY(y int) Point {
	return Point{X: p.X, Y: p.Y + y}
}

// IsZero reports whether p is the origin
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Size is a cell extent
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Add returns the componentwise sum
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// AddWidth grows the width
func (s Size) AddWidth(w int) Size {
	return Size{Width: s.Width + w, Height: s.Height}
}

// AddHeight grows the height
func (s Size) AddHeight(h int) Size {
	return Size{Width: s.Width, Height: s.Height + h}
}

// IsEmpty reports whether both extents are zero
func (s Size) IsEmpty() bool {
	return s.Width == 0 && s.Height == 0
}

// Area returns width*height, 0 if either side is non-positive
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}
