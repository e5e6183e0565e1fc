package replay

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}},
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 5, 5}, Rect{5, 5, 5, 5}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, EmptyRect},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, EmptyRect},
		{"empty operand", Rect{0, 0, 10, 10}, EmptyRect, EmptyRect},
		{"with unbounded", Rect{3, 4, 5, 6}, UnboundedRect(), Rect{3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("%v.Intersect(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("%v.Intersect(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"touching", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"empty never intersects", EmptyRect, Rect{0, 0, 10, 10}, false},
		{"empty vs empty", EmptyRect, EmptyRect, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Rect{0, 0, 30, 30}},
		{"empty left", EmptyRect, Rect{5, 6, 7, 8}, Rect{5, 6, 7, 8}},
		{"empty right", Rect{5, 6, 7, 8}, EmptyRect, Rect{5, 6, 7, 8}},
		{"contained", Rect{0, 0, 20, 20}, Rect{5, 5, 5, 5}, Rect{0, 0, 20, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("%v.Union(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{0, 0, 20, 20}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"itself", outer, true},
		{"inner", Rect{5, 5, 5, 5}, true},
		{"sticking out", Rect{15, 15, 10, 10}, false},
		{"empty always contained", EmptyRect, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.o); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", outer, tt.o, got, tt.want)
			}
		})
	}
	if !UnboundedRect().Contains(Rect{-1000, -1000, 5000, 5000}) {
		t.Error("unbounded rect should contain any finite rect")
	}
}

func TestRectUnbounded(t *testing.T) {
	u := UnboundedRect()
	if !u.IsUnbounded() {
		t.Error("UnboundedRect().IsUnbounded() = false")
	}
	if u.IsEmpty() {
		t.Error("UnboundedRect().IsEmpty() = true")
	}
	if EmptyRect.IsUnbounded() {
		t.Error("EmptyRect.IsUnbounded() = true")
	}
	if !EmptyRect.IsEmpty() {
		t.Error("EmptyRect.IsEmpty() = false")
	}
}

func TestRectArea(t *testing.T) {
	if got := (Rect{0, 0, 4, 5}).Area(); got != 20 {
		t.Errorf("Area() = %d, want 20", got)
	}
	if got := EmptyRect.Area(); got != 0 {
		t.Errorf("empty Area() = %d, want 0", got)
	}
	if got := (Rect{0, 0, -3, 5}).Area(); got != 0 {
		t.Errorf("negative-width Area() = %d, want 0", got)
	}
}

func TestBoxAddPoint(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox().IsEmpty() = false")
	}
	b = b.AddPoint(Point{X: 3, Y: 7})
	if b.IsEmpty() {
		t.Fatal("box with one point reported empty")
	}
	b = b.AddPoint(Point{X: -1, Y: 10})
	want := Box{X0: -1, Y0: 7, X1: 3, Y1: 10}
	if b != want {
		t.Errorf("box = %v, want %v", b, want)
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{X0: 0, Y0: 0, X1: 5, Y1: 5}
	b := Box{X0: 3, Y0: -2, X1: 9, Y1: 4}
	want := Box{X0: 0, Y0: -2, X1: 9, Y1: 5}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := EmptyBox().Union(a); got != a {
		t.Errorf("empty.Union(a) = %v, want %v", got, a)
	}
	if got := a.Union(EmptyBox()); got != a {
		t.Errorf("a.Union(empty) = %v, want %v", got, a)
	}
}

func TestBoxOuterRect(t *testing.T) {
	tests := []struct {
		name string
		b    Box
		want Rect
	}{
		{"integral", Box{X0: 1, Y0: 2, X1: 4, Y1: 6}, Rect{1, 2, 3, 4}},
		{"fractional rounds out", Box{X0: 0.2, Y0: 0.7, X1: 3.1, Y1: 4.5}, Rect{0, 0, 4, 5}},
		{"negative coords", Box{X0: -2.5, Y0: -1.5, X1: 0.5, Y1: 0.5}, Rect{-3, -2, 4, 3}},
		{"empty", EmptyBox(), EmptyRect},
		{"degenerate vertical line", Box{X0: 2, Y0: 0, X1: 2, Y1: 10}, EmptyRect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.OuterRect(); got != tt.want {
				t.Errorf("OuterRect(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestBoxFromRect(t *testing.T) {
	b := BoxFromRect(Rect{2, 3, 4, 5})
	want := Box{X0: 2, Y0: 3, X1: 6, Y1: 8}
	if b != want {
		t.Errorf("BoxFromRect = %v, want %v", b, want)
	}
	if got := b.OuterRect(); got != (Rect{2, 3, 4, 5}) {
		t.Errorf("round trip = %v, want {2 3 4 5}", got)
	}
}
