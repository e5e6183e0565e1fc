package replay

import "math"

// Point is a location in device space.
type Point struct {
	X, Y float64
}

// Rect is an integer device-space rectangle.
// The zero value is the empty rectangle.
type Rect struct {
	X, Y, W, H int
}

// Device coordinates this far out are treated as "effectively infinite".
// Keeping the magnitude well below the int range keeps unions and area
// computations safe from overflow.
const (
	rectMin = -(1 << 28)
	rectMax = 1 << 28
)

// EmptyRect is the empty-extents sentinel.
var EmptyRect = Rect{}

// UnboundedRect returns the rectangle covering all representable device
// space. It is used as the extents of unbounded operations and surfaces.
func UnboundedRect() Rect {
	return Rect{X: rectMin, Y: rectMin, W: rectMax - rectMin, H: rectMax - rectMin}
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// IsUnbounded reports whether the rectangle is the all-of-device-space
// sentinel produced by UnboundedRect.
func (r Rect) IsUnbounded() bool {
	return r == UnboundedRect()
}

// Area returns the number of pixels covered by the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the intersection of two rectangles.
// The result is EmptyRect if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return EmptyRect
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether two rectangles share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	return !r.IsEmpty() && !o.IsEmpty() &&
		r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.X+r.W, o.X+o.W)
	y1 := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Box is a float device-space bounding box, used where sub-pixel extents
// matter (ink measurement, path bounds before rounding). Use EmptyBox as
// the accumulation seed; a degenerate single-point box is not empty.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// EmptyBox returns the inverted box that acts as the identity for
// AddPoint and Union.
func EmptyBox() Box {
	return Box{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0
}

// AddPoint grows the box to include p.
func (b Box) AddPoint(p Point) Box {
	return Box{
		X0: math.Min(b.X0, p.X),
		Y0: math.Min(b.Y0, p.Y),
		X1: math.Max(b.X1, p.X),
		Y1: math.Max(b.Y1, p.Y),
	}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// OuterRect returns the smallest integer rectangle containing the box.
func (b Box) OuterRect() Rect {
	if b.IsEmpty() || b.X1 == b.X0 || b.Y1 == b.Y0 {
		return EmptyRect
	}
	x := int(math.Floor(b.X0))
	y := int(math.Floor(b.Y0))
	return Rect{
		X: x,
		Y: y,
		W: int(math.Ceil(b.X1)) - x,
		H: int(math.Ceil(b.Y1)) - y,
	}
}

// BoxFromRect converts an integer rectangle to a float box.
func BoxFromRect(r Rect) Box {
	return Box{
		X0: float64(r.X),
		Y0: float64(r.Y),
		X1: float64(r.X + r.W),
		Y1: float64(r.Y + r.H),
	}
}
