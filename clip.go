package replay

// Clip restricts drawing to the area inside Path under Rule. Extents is a
// device-space rectangle that conservatively contains that area. More
// holds additional path restrictions, each further intersecting the
// clipped area; replays use it to combine a replay-wide clip with a
// command's own. A nil *Clip means unclipped.
type Clip struct {
	Path    *Path
	Rule    FillRule
	Extents Rect
	More    []ClipMask
}

// ClipMask is one additional path restriction carried by a Clip.
type ClipMask struct {
	Path *Path
	Rule FillRule
}

// NewClip creates a clip from a path. The path is cloned; extents are the
// path's control-point bounds.
func NewClip(path *Path, rule FillRule) *Clip {
	return &Clip{
		Path:    path.Clone(),
		Rule:    rule,
		Extents: path.Bounds().OuterRect(),
	}
}

// Copy returns a deep copy of the clip, or nil for a nil clip.
func (c *Clip) Copy() *Clip {
	if c == nil {
		return nil
	}
	cp := &Clip{
		Path:    c.Path.Clone(),
		Rule:    c.Rule,
		Extents: c.Extents,
	}
	if len(c.More) > 0 {
		cp.More = make([]ClipMask, len(c.More))
		for i, m := range c.More {
			cp.More[i] = ClipMask{Path: m.Path.Clone(), Rule: m.Rule}
		}
	}
	return cp
}

// Equal reports whether two clips restrict drawing identically. Two nil
// clips are equal; a nil clip never equals a non-nil one.
func (c *Clip) Equal(other *Clip) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.Rule != other.Rule || c.Extents != other.Extents || !c.Path.Equal(other.Path) {
		return false
	}
	if len(c.More) != len(other.More) {
		return false
	}
	for i, m := range c.More {
		if m.Rule != other.More[i].Rule || !m.Path.Equal(other.More[i].Path) {
			return false
		}
	}
	return true
}

// ClipExtents returns the clip's device extents, or the unbounded
// rectangle for a nil clip.
func (c *Clip) ClipExtents() Rect {
	if c == nil {
		return UnboundedRect()
	}
	return c.Extents
}

// Intersect returns a clip restricted to r. A nil receiver yields a
// rectangular clip over r.
func (c *Clip) Intersect(r Rect) *Clip {
	if c == nil {
		path := NewPath()
		path.Rectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		return &Clip{Path: path, Rule: FillRuleWinding, Extents: r}
	}
	cp := c.Copy()
	cp.Extents = cp.Extents.Intersect(r)
	return cp
}
