package replay

// RGBA is a premultiplied-alpha-free color with float64 channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// IsOpaque reports whether the color is fully opaque.
func (c RGBA) IsOpaque() bool { return c.A >= 1 }

// IsClear reports whether the color is fully transparent.
func (c RGBA) IsClear() bool { return c.A <= 0 }

// GradientStop is a single color stop on a gradient at Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// Source is a surface that can be used as the source of a SurfacePattern.
// Recording surfaces implement it, which lets one recording be replayed as
// the paint source of another.
type Source interface {
	// Content reports which channels the source carries.
	Content() Content

	// SourceExtents returns the drawn extents of the source in its own
	// coordinate space, and whether they are bounded.
	SourceExtents() (Rect, bool)
}

// SourceSnapshotter is implemented by sources whose content can still
// change, such as a recording surface that is being drawn into.
// SnapshotSource returns an independent source frozen at the moment of
// the call.
type SourceSnapshotter interface {
	SnapshotSource() Source
}

// SourceFlagger is implemented by sources that can summarize their pixel
// content without being rasterized. Both flags are conservative: a false
// answer is always safe.
type SourceFlagger interface {
	// HasBilevelAlpha reports whether every pixel is either fully opaque
	// or fully transparent.
	HasBilevelAlpha() bool

	// HasOnlyOpOver reports whether the source was produced using only
	// the Over operator.
	HasOnlyOpOver() bool
}

// Pattern is the paint source of a recorded command.
//
// Patterns handed to a recording surface are snapshotted: the recorded
// command owns an independent deep copy, so callers may mutate or reuse
// their pattern after the call returns.
type Pattern interface {
	// Snapshot returns a deep copy that does not share mutable state
	// with the receiver.
	Snapshot() Pattern

	// IsClear reports whether drawing with the pattern can have no
	// effect (for example a fully transparent solid).
	IsClear() bool

	// IsOpaque reports whether the pattern is known to be fully opaque
	// everywhere.
	IsOpaque() bool
}

// Solid is a single-color pattern.
type Solid struct {
	Color RGBA

	// Foreground marks the pattern as a placeholder to be substituted
	// with a caller-provided color at replay time.
	Foreground bool
}

// NewSolid creates a solid color pattern.
func NewSolid(c RGBA) *Solid {
	return &Solid{Color: c}
}

// NewForeground creates a solid pattern that replays with the foreground
// color of the replay, falling back to Color when none is given.
func NewForeground(fallback RGBA) *Solid {
	return &Solid{Color: fallback, Foreground: true}
}

// Snapshot implements Pattern.
func (p *Solid) Snapshot() Pattern {
	cp := *p
	return &cp
}

// IsClear implements Pattern.
func (p *Solid) IsClear() bool { return !p.Foreground && p.Color.IsClear() }

// IsOpaque implements Pattern.
func (p *Solid) IsOpaque() bool { return p.Color.IsOpaque() }

// LinearGradient is a gradient along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []GradientStop
}

// AddStop appends a color stop. Stops must be added in ascending offset
// order.
func (p *LinearGradient) AddStop(offset float64, c RGBA) {
	p.Stops = append(p.Stops, GradientStop{Offset: offset, Color: c})
}

// Snapshot implements Pattern.
func (p *LinearGradient) Snapshot() Pattern {
	cp := *p
	cp.Stops = append([]GradientStop(nil), p.Stops...)
	return &cp
}

// IsClear implements Pattern.
func (p *LinearGradient) IsClear() bool {
	for _, s := range p.Stops {
		if !s.Color.IsClear() {
			return false
		}
	}
	return true
}

// IsOpaque implements Pattern.
func (p *LinearGradient) IsOpaque() bool {
	if len(p.Stops) == 0 {
		return false
	}
	for _, s := range p.Stops {
		if !s.Color.IsOpaque() {
			return false
		}
	}
	return true
}

// RadialGradient is a gradient between two circles.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
}

// AddStop appends a color stop. Stops must be added in ascending offset
// order.
func (p *RadialGradient) AddStop(offset float64, c RGBA) {
	p.Stops = append(p.Stops, GradientStop{Offset: offset, Color: c})
}

// Snapshot implements Pattern.
func (p *RadialGradient) Snapshot() Pattern {
	cp := *p
	cp.Stops = append([]GradientStop(nil), p.Stops...)
	return &cp
}

// IsClear implements Pattern.
func (p *RadialGradient) IsClear() bool {
	for _, s := range p.Stops {
		if !s.Color.IsClear() {
			return false
		}
	}
	return true
}

// IsOpaque implements Pattern.
func (p *RadialGradient) IsOpaque() bool {
	if len(p.Stops) == 0 {
		return false
	}
	for _, s := range p.Stops {
		if !s.Color.IsOpaque() {
			return false
		}
	}
	return true
}

// SurfacePattern paints with the contents of another surface. Matrix maps
// user space to the source's space.
type SurfacePattern struct {
	Source Source
	Matrix Matrix
}

// NewSurfacePattern creates a pattern painting with src under the identity
// transform.
func NewSurfacePattern(src Source) *SurfacePattern {
	return &SurfacePattern{Source: src, Matrix: Identity()}
}

// Snapshot implements Pattern. Sources implementing SourceSnapshotter
// are frozen as of the call; other sources are shared and must not
// change afterwards.
func (p *SurfacePattern) Snapshot() Pattern {
	cp := *p
	if src, ok := p.Source.(SourceSnapshotter); ok {
		cp.Source = src.SnapshotSource()
	}
	return &cp
}

// IsClear implements Pattern.
func (p *SurfacePattern) IsClear() bool {
	if p.Source == nil {
		return true
	}
	r, bounded := p.Source.SourceExtents()
	return bounded && r.IsEmpty()
}

// IsOpaque implements Pattern. A surface source is never assumed opaque.
func (p *SurfacePattern) IsOpaque() bool { return false }
