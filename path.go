package replay

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
//
// Paths recorded into a command log are snapshotted with Clone, so the
// recorded copy is independent of later mutation.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{
		Control: Point{X: cx, Y: cy},
		Point:   Point{X: x, Y: y},
	})
	p.current = Point{X: x, Y: y}
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Point{X: c1x, Y: c1y},
		Control2: Point{X: c2x, Y: c2y},
		Point:    Point{X: x, Y: y},
	})
	p.current = Point{X: x, Y: y}
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	offset := r * k

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+offset, cx+offset, cy+r, cx, cy+r)
	p.CubicTo(cx-offset, cy+r, cx-r, cy+offset, cx-r, cy)
	p.CubicTo(cx-r, cy-offset, cx-offset, cy-r, cx, cy-r)
	p.CubicTo(cx+offset, cy-r, cx+r, cy-offset, cx+r, cy)
	p.Close()
}

// Elements returns the path elements. The slice is owned by the path and
// must not be mutated.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	cp := &Path{
		elements: append([]PathElement(nil), p.elements...),
		start:    p.start,
		current:  p.current,
	}
	return cp
}

// Equal reports whether two paths consist of the same elements.
// Both nil and empty paths compare equal to each other.
func (p *Path) Equal(other *Path) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i, elem := range p.elements {
		if elem != other.elements[i] {
			return false
		}
	}
	return true
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Bounds returns the control-point bounding box of the path. It contains
// the path but may overestimate around curves.
func (p *Path) Bounds() Box {
	b := EmptyBox()
	if p == nil {
		return b
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b = b.AddPoint(e.Point)
		case LineTo:
			b = b.AddPoint(e.Point)
		case QuadTo:
			b = b.AddPoint(e.Control)
			b = b.AddPoint(e.Point)
		case CubicTo:
			b = b.AddPoint(e.Control1)
			b = b.AddPoint(e.Control2)
			b = b.AddPoint(e.Point)
		}
	}
	return b
}

// PathWalker receives the flattened form of a path: straight segments only.
type PathWalker interface {
	WalkMoveTo(p Point)
	WalkLineTo(p Point)
	WalkClose()
}

// Flatten walks the path, approximating curves with line segments whose
// maximum deviation from the true curve is at most tolerance.
func (p *Path) Flatten(tolerance float64, w PathWalker) {
	if p == nil {
		return
	}
	if tolerance <= 0 {
		tolerance = 0.25
	}
	cur := Point{}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			w.WalkMoveTo(e.Point)
			cur = e.Point
		case LineTo:
			w.WalkLineTo(e.Point)
			cur = e.Point
		case QuadTo:
			flattenQuad(cur, e.Control, e.Point, tolerance, w)
			cur = e.Point
		case CubicTo:
			flattenCubic(cur, e.Control1, e.Control2, e.Point, tolerance, w)
			cur = e.Point
		case Close:
			w.WalkClose()
		}
	}
}

func flattenQuad(p0, p1, p2 Point, tolerance float64, w PathWalker) {
	// Deviation of a quadratic from its chord is bounded by half the
	// distance from the control point to the chord midpoint.
	dev := math.Hypot(p1.X-(p0.X+p2.X)/2, p1.Y-(p0.Y+p2.Y)/2) / 2
	n := segmentCount(dev, tolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		x := mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X
		y := mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y
		w.WalkLineTo(Point{X: x, Y: y})
	}
}

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, w PathWalker) {
	d1 := math.Hypot(p1.X-(2*p0.X+p3.X)/3, p1.Y-(2*p0.Y+p3.Y)/3)
	d2 := math.Hypot(p2.X-(p0.X+2*p3.X)/3, p2.Y-(p0.Y+2*p3.Y)/3)
	dev := 3 * math.Max(d1, d2) / 4
	n := segmentCount(dev, tolerance)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		x := a*p0.X + b*p1.X + c*p2.X + d*p3.X
		y := a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y
		w.WalkLineTo(Point{X: x, Y: y})
	}
}

func segmentCount(deviation, tolerance float64) int {
	if deviation <= tolerance {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(deviation/tolerance) * 4))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	return n
}
