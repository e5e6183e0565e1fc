package record

import (
	"image"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/target"
)

// renderState marks an in-progress rasterization of the surface, so a
// command that paints the surface into itself reads the pixels drawn so
// far instead of recursing.
type renderState struct {
	img *image.RGBA
}

// Image rasterizes a bounded surface into an *image.RGBA through the
// image target. The result is cached until the next command is recorded.
func (s *Surface) Image() (*image.RGBA, error) {
	if s.finished {
		return nil, replay.ErrSurfaceFinished
	}
	if s.unbounded {
		return nil, replay.ErrUnsupported
	}
	if s.rendering != nil {
		return s.rendering.img, nil
	}
	if s.imageCache != nil {
		return s.imageCache, nil
	}

	t := target.NewImageTarget(s.extents.W, s.extents.H)
	s.rendering = &renderState{img: t.Image()}
	defer func() { s.rendering = nil }()

	m := replay.Translate(float64(-s.extents.X), float64(-s.extents.Y))
	if err := s.ReplayWithOptions(t, ReplayOptions{Transform: &m}); err != nil {
		return nil, err
	}
	s.imageCache = t.Image()
	return s.imageCache, nil
}

// ImageSource implements target.ImageSourcer, letting this recording be
// the source pattern of a replay into an image target.
func (s *Surface) ImageSource() (*image.RGBA, replay.Rect, error) {
	if s.rendering != nil {
		return s.rendering.img, s.extents, nil
	}
	img, err := s.Image()
	return img, s.extents, err
}

func (s *Surface) imageCacheDrop() {
	s.imageCache = nil
}
