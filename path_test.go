package replay

import (
	"math"
	"testing"
)

func TestPathBuilder(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Fatal("new path not empty")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)
	p.Close()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("elems[0] = %T, want MoveTo", elems[0])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("elems[4] = %T, want Close", elems[4])
	}
}

func TestPathCloneIndependence(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	cp := p.Clone()
	p.LineTo(100, 100)

	if len(cp.Elements()) == len(p.Elements()) {
		t.Error("clone changed when original was extended")
	}
	if !cp.Equal(cp.Clone()) {
		t.Error("clone of a clone not equal")
	}
}

func TestPathEqual(t *testing.T) {
	rect := func() *Path {
		p := NewPath()
		p.Rectangle(5, 5, 20, 10)
		return p
	}
	other := NewPath()
	other.MoveTo(0, 0)
	other.LineTo(1, 1)

	tests := []struct {
		name string
		a, b *Path
		want bool
	}{
		{"same shape", rect(), rect(), true},
		{"different shape", rect(), other, false},
		{"nil vs nil", nil, nil, true},
		{"nil vs empty", nil, NewPath(), true},
		{"nil vs non-empty", nil, rect(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("reversed Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 30, 40)
	b := p.Bounds()
	want := Box{X0: 10, Y0: 20, X1: 40, Y1: 60}
	if b != want {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}

	if !NewPath().Bounds().IsEmpty() {
		t.Error("empty path bounds not empty")
	}

	// Control-point bounds: the curve's control point extends the box
	// even though the curve itself stays inside it.
	q := NewPath()
	q.MoveTo(0, 0)
	q.QuadraticTo(10, 20, 20, 0)
	qb := q.Bounds()
	if qb.Y1 != 20 {
		t.Errorf("quad control bounds Y1 = %v, want 20", qb.Y1)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	q := p.Transform(Translate(10, 20))

	elems := q.Elements()
	if m, ok := elems[0].(MoveTo); !ok || m.Point != (Point{11, 22}) {
		t.Errorf("transformed MoveTo = %+v, want {11 22}", elems[0])
	}
	// Original untouched.
	if m := p.Elements()[0].(MoveTo); m.Point != (Point{1, 2}) {
		t.Errorf("original mutated: %+v", m)
	}
}

func TestPathCurrentPoint(t *testing.T) {
	p := NewPath()
	p.MoveTo(5, 6)
	p.LineTo(7, 8)
	if got := p.CurrentPoint(); got != (Point{7, 8}) {
		t.Errorf("CurrentPoint() = %v, want {7 8}", got)
	}
}

type walkRecorder struct {
	moves  []Point
	lines  []Point
	closes int
}

func (w *walkRecorder) WalkMoveTo(p Point) { w.moves = append(w.moves, p) }
func (w *walkRecorder) WalkLineTo(p Point) { w.lines = append(w.lines, p) }
func (w *walkRecorder) WalkClose()         { w.closes++ }

func TestPathFlatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.Close()

	var w walkRecorder
	p.Flatten(0.1, &w)

	if len(w.moves) != 1 || w.moves[0] != (Point{0, 0}) {
		t.Fatalf("moves = %v, want one at origin", w.moves)
	}
	if w.closes != 1 {
		t.Errorf("closes = %d, want 1", w.closes)
	}
	if len(w.lines) < 3 {
		t.Fatalf("curve flattened to %d lines, want several", len(w.lines))
	}
	last := w.lines[len(w.lines)-1]
	if math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y-10) > 1e-9 {
		t.Errorf("flattened endpoint = %v, want {10 10}", last)
	}
}

func TestPathFlattenTolerance(t *testing.T) {
	curve := func(tol float64) int {
		p := NewPath()
		p.MoveTo(0, 0)
		p.CubicTo(0, 100, 100, 100, 100, 0)
		var w walkRecorder
		p.Flatten(tol, &w)
		return len(w.lines)
	}
	coarse := curve(5)
	fine := curve(0.01)
	if fine <= coarse {
		t.Errorf("finer tolerance produced %d segments, coarse %d", fine, coarse)
	}
}

func TestPathCircle(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 10)
	b := p.Bounds()
	// Control-point bounds overshoot the circle slightly but must
	// contain it.
	if b.X0 > 40 || b.X1 < 60 || b.Y0 > 40 || b.Y1 < 60 {
		t.Errorf("circle bounds %v do not contain the circle", b)
	}
}
