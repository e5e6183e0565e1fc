package record

import (
	"fmt"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/target"
)

// InkExtents measures the extents actually drawn by the recorded
// commands, by replaying them onto an analysis target. The result is in
// recorded device space; a clear surface reports a zero rectangle.
func (s *Surface) InkExtents() (x, y, w, h float64, err error) {
	if s.finished {
		return 0, 0, 0, 0, replay.ErrSurfaceFinished
	}

	bounds := replay.UnboundedRect()
	if !s.unbounded {
		bounds = s.extents
	}
	t := target.NewAnalysisTargetRect(bounds)

	err = s.ReplayWithOptions(t, ReplayOptions{SurfaceIsUnbounded: s.unbounded})
	if err != nil && replay.IsHardError(err) {
		return 0, 0, 0, 0, err
	}

	ink := t.Ink()
	if ink.IsEmpty() {
		return 0, 0, 0, 0, nil
	}
	return ink.X0, ink.Y0, ink.X1 - ink.X0, ink.Y1 - ink.Y0, nil
}

// BBox returns the surface's bounding box under the given transform.
// Bounded surfaces report their recorded extents; unbounded surfaces
// fall back to measuring ink extents.
func (s *Surface) BBox(transform *replay.Matrix) (replay.Box, error) {
	var b replay.Box
	if s.unbounded {
		x, y, w, h, err := s.InkExtents()
		if err != nil {
			return replay.EmptyBox(), err
		}
		b = replay.Box{X0: x, Y0: y, X1: x + w, Y1: y + h}
	} else {
		b = replay.BoxFromRect(s.extents)
	}

	if transform != nil && !transform.IsIdentity() {
		t := replay.EmptyBox()
		for _, p := range [4]replay.Point{
			{X: b.X0, Y: b.Y0}, {X: b.X1, Y: b.Y0},
			{X: b.X0, Y: b.Y1}, {X: b.X1, Y: b.Y1},
		} {
			t = t.AddPoint(transform.TransformPoint(p))
		}
		b = t
	}
	return b, nil
}

// Path concatenates the outlines of the recorded fill commands into one
// path. Commands with no fillable outline (paint, mask, stroke, glyph
// runs) make the recording inexpressible as a path and report
// ErrUnsupported.
func (s *Surface) Path() (*replay.Path, error) {
	if s.finished {
		return nil, replay.ErrSurfaceFinished
	}

	out := replay.NewPath()
	for _, cmd := range s.commands {
		switch c := cmd.(type) {
		case *FillCommand:
			for _, elem := range c.Path.Elements() {
				switch e := elem.(type) {
				case replay.MoveTo:
					out.MoveTo(e.Point.X, e.Point.Y)
				case replay.LineTo:
					out.LineTo(e.Point.X, e.Point.Y)
				case replay.QuadTo:
					out.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
				case replay.CubicTo:
					out.CubicTo(e.Control1.X, e.Control1.Y,
						e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
				case replay.Close:
					out.Close()
				}
			}
		case *TagCommand:
			// no geometry
		default:
			return nil, fmt.Errorf("record: %s command has no path form: %w",
				cmd.Type(), replay.ErrUnsupported)
		}
	}
	return out, nil
}
