package replay

import "math"

// StrokeStyle describes how a path outline is stroked.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64

	// Hairline strokes draw with the thinnest renderable line,
	// independent of the transform. Width is ignored when set.
	Hairline bool
}

// DefaultStrokeStyle returns the style used when the caller passes none.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      2,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// Clone returns a copy that does not share the dash slice with the
// receiver.
func (s StrokeStyle) Clone() StrokeStyle {
	cp := s
	if len(s.Dash) > 0 {
		cp.Dash = append([]float64(nil), s.Dash...)
	}
	return cp
}

// Equal reports whether two styles stroke identically.
func (s StrokeStyle) Equal(other StrokeStyle) bool {
	if s.Width != other.Width || s.Cap != other.Cap || s.Join != other.Join ||
		s.MiterLimit != other.MiterLimit || s.DashOffset != other.DashOffset ||
		s.Hairline != other.Hairline {
		return false
	}
	if len(s.Dash) != len(other.Dash) {
		return false
	}
	for i, d := range s.Dash {
		if d != other.Dash[i] {
			return false
		}
	}
	return true
}

// MaxDistanceFromPath returns the largest distance the stroked outline can
// reach from the path itself, in user space. Used to pad geometry bounds
// into stroke bounds.
func (s StrokeStyle) MaxDistanceFromPath() float64 {
	if s.Hairline {
		return 0.5
	}
	expansion := 0.5
	if s.Cap == LineCapSquare {
		expansion = math.Sqrt2 / 2
	}
	if s.Join == LineJoinMiter && s.MiterLimit > expansion*2 {
		expansion = s.MiterLimit / 2
	}
	return expansion * s.Width
}
