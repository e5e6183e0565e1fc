package replay

import (
	"sync/atomic"

	"github.com/go-text/typesetting/font"
)

// Glyph is a single positioned glyph. X and Y are the glyph origin in
// user space.
type Glyph struct {
	ID font.GID
	X  float64
	Y  float64
}

// Cluster maps a run of UTF-8 bytes to a run of glyphs.
type Cluster struct {
	NumBytes  int
	NumGlyphs int
}

// ClusterFlags modify how clusters map text to glyphs.
type ClusterFlags uint8

const (
	// ClusterFlagBackward indicates the clusters map the text bytes to
	// the glyph slice back to front.
	ClusterFlagBackward ClusterFlags = 1 << iota
)

// ScaledFont is a font face bound to a size. It is reference counted:
// recorded text commands share the font instead of deep copying it, and
// each command holds one reference for its lifetime.
type ScaledFont struct {
	face *font.Face
	size float64
	refs atomic.Int32
}

// NewScaledFont binds face to the given size in user units per em.
// The returned font has one reference, owned by the caller.
func NewScaledFont(face *font.Face, size float64) *ScaledFont {
	f := &ScaledFont{face: face, size: size}
	f.refs.Store(1)
	return f
}

// Reference adds a reference and returns the receiver.
func (f *ScaledFont) Reference() *ScaledFont {
	if f != nil {
		f.refs.Add(1)
	}
	return f
}

// Release drops a reference.
func (f *ScaledFont) Release() {
	if f != nil {
		f.refs.Add(-1)
	}
}

// RefCount returns the current reference count.
func (f *ScaledFont) RefCount() int {
	if f == nil {
		return 0
	}
	return int(f.refs.Load())
}

// Face returns the underlying face.
func (f *ScaledFont) Face() *font.Face { return f.face }

// Size returns the font size in user units per em.
func (f *ScaledFont) Size() float64 { return f.size }

// Scale returns the factor converting font units to user units.
func (f *ScaledFont) Scale() float64 {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return f.size / float64(upem)
}

// GlyphExtents returns the user-space bounding box of the positioned
// glyphs.
func (f *ScaledFont) GlyphExtents(glyphs []Glyph) Box {
	b := EmptyBox()
	scale := f.Scale()
	for _, g := range glyphs {
		ext, ok := f.face.GlyphExtents(g.ID)
		if !ok {
			continue
		}
		x0 := g.X + float64(ext.XBearing)*scale
		y0 := g.Y - float64(ext.YBearing)*scale
		b = b.AddPoint(Point{X: x0, Y: y0})
		b = b.AddPoint(Point{
			X: x0 + float64(ext.Width)*scale,
			Y: y0 - float64(ext.Height)*scale,
		})
	}
	return b
}
