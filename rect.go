package easel

// Rect is an axis-aligned rectangle in surface coordinates. It is used for
// an object's nominal bounding box: the box the object model reports,
// including any transparent padding around the visible content.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Left returns the left edge of the rectangle.
func (r Rect) Left() float64 { return r.X }

// Top returns the top edge of the rectangle.
func (r Rect) Top() float64 { return r.Y }

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
