package replay

import (
	"math"
	"testing"
)

func TestStrokeStyleClone(t *testing.T) {
	s := StrokeStyle{Width: 3, Dash: []float64{4, 2}, DashOffset: 1}
	cp := s.Clone()
	if !cp.Equal(s) {
		t.Fatal("clone not equal to original")
	}
	cp.Dash[0] = 99
	if s.Dash[0] != 4 {
		t.Error("clone shares dash slice with original")
	}
}

func TestStrokeStyleEqual(t *testing.T) {
	base := DefaultStrokeStyle()
	tests := []struct {
		name string
		mod  func(*StrokeStyle)
		want bool
	}{
		{"identical", func(*StrokeStyle) {}, true},
		{"width", func(s *StrokeStyle) { s.Width = 5 }, false},
		{"cap", func(s *StrokeStyle) { s.Cap = LineCapRound }, false},
		{"join", func(s *StrokeStyle) { s.Join = LineJoinBevel }, false},
		{"miter limit", func(s *StrokeStyle) { s.MiterLimit = 4 }, false},
		{"dash", func(s *StrokeStyle) { s.Dash = []float64{1, 1} }, false},
		{"dash offset", func(s *StrokeStyle) { s.DashOffset = 2 }, false},
		{"hairline", func(s *StrokeStyle) { s.Hairline = true }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Clone()
			tt.mod(&other)
			if got := base.Equal(other); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxDistanceFromPath(t *testing.T) {
	tests := []struct {
		name  string
		style StrokeStyle
		want  float64
	}{
		{"butt cap round join", StrokeStyle{Width: 4, Cap: LineCapButt, Join: LineJoinRound}, 2},
		{"square cap", StrokeStyle{Width: 4, Cap: LineCapSquare, Join: LineJoinRound}, 4 * math.Sqrt2 / 2},
		{"miter join", StrokeStyle{Width: 4, Join: LineJoinMiter, MiterLimit: 10}, 20},
		{"small miter limit ignored", StrokeStyle{Width: 4, Join: LineJoinMiter, MiterLimit: 0.5}, 2},
		{"hairline", StrokeStyle{Width: 100, Hairline: true}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.MaxDistanceFromPath(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MaxDistanceFromPath() = %v, want %v", got, tt.want)
			}
		})
	}
}
