package record

import (
	"image"
	"math"

	"github.com/gogpu/replay"
)

// Surface is a recording surface: an append-only log of drawing commands
// that can be replayed against any target.
//
// Every mutator deep-copies its arguments before appending, so recorded
// commands are immune to later caller mutation. Scaled fonts are the one
// exception: they are shared by reference, with the command holding a
// reference for its lifetime.
//
// Surfaces are NOT thread-safe. Only the region-array table is guarded
// for concurrent backend access.
type Surface struct {
	content   replay.Content
	extents   replay.Rect
	unbounded bool

	commands []Command
	tags     []int // indices of tag commands, replayed regardless of window
	tree     *bbNode

	isClear        bool
	optimizeClears bool
	finished       bool
	err            error

	// summary flags computed by the last create-regions replay
	hasBilevelAlpha bool
	hasOnlyOpOver   bool

	regions regionTable
	ids     IDAllocator

	// self-replay guard: non-nil while Image is rasterizing this
	// surface, so a command painting the surface into itself reads the
	// in-progress pixels instead of recursing.
	rendering  *renderState
	imageCache *image.RGBA
}

// Option configures a new Surface.
type Option func(*Surface)

// WithoutClearOptimization disables resetting the log when an operation
// wipes the whole surface. Useful when the log is inspected afterwards.
func WithoutClearOptimization() Option {
	return func(s *Surface) { s.optimizeClears = false }
}

// WithIDAllocator sets the allocator used for region-array ids.
func WithIDAllocator(ids IDAllocator) Option {
	return func(s *Surface) { s.ids = ids }
}

// New creates a recording surface. A nil extents records unbounded
// operations; otherwise extents is the maximum device area any replay
// target will cover, and recorded commands are clipped to it.
func New(content replay.Content, extents *replay.Rect, opts ...Option) *Surface {
	s := &Surface{
		content:        content,
		isClear:        true,
		optimizeClears: true,
		ids:            defaultIDs,
	}
	if extents != nil {
		s.extents = *extents
	} else {
		s.unbounded = true
		s.extents = replay.UnboundedRect()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Content reports which channels the surface carries. Implements
// replay.Source.
func (s *Surface) Content() replay.Content { return s.content }

// SourceExtents implements replay.Source.
func (s *Surface) SourceExtents() (replay.Rect, bool) {
	if s.unbounded {
		return replay.UnboundedRect(), false
	}
	return s.extents, true
}

// Extents returns the recorded extents and whether the surface is
// bounded.
func (s *Surface) Extents() (replay.Rect, bool) {
	return s.extents, !s.unbounded
}

// CommandCount returns the number of recorded commands.
func (s *Surface) CommandCount() int { return len(s.commands) }

// Commands returns the recorded command log. The slice and the commands
// are owned by the surface and must not be mutated.
func (s *Surface) Commands() []Command { return s.commands }

// IsClear reports whether the surface is known to hold no drawing.
func (s *Surface) IsClear() bool { return s.isClear }

// Err returns the surface's standing error: the first hard error any
// replay hit.
func (s *Surface) Err() error { return s.err }

// HasBilevelAlpha reports whether every recorded pixel is known fully
// opaque or fully transparent. Valid after a create-regions replay.
// Implements replay.SourceFlagger.
func (s *Surface) HasBilevelAlpha() bool { return s.hasBilevelAlpha }

// HasOnlyOpOver reports whether the recording uses only the Over
// operator. Valid after a create-regions replay. Implements
// replay.SourceFlagger.
func (s *Surface) HasOnlyOpOver() bool { return s.hasOnlyOpOver }

// Finish releases the recorded commands and their font references. All
// further operations on the surface return ErrSurfaceFinished.
func (s *Surface) Finish() {
	if s.finished {
		return
	}
	s.releaseCommands()
	s.regions.clear()
	s.finished = true
}

// reset discards all recorded commands; used when an operation is
// detected to wipe the whole surface.
func (s *Surface) reset() {
	s.releaseCommands()
	s.tree = nil
	s.isClear = true
}

func (s *Surface) releaseCommands() {
	for _, cmd := range s.commands {
		if g, ok := cmd.(*GlyphsCommand); ok {
			g.Font.Release()
		}
	}
	s.commands = nil
	s.tags = nil
	s.tree = nil
	s.imageCacheDrop()
}

// commit appends a finished command to the log and invalidates the
// spatial index.
func (s *Surface) commit(cmd Command) {
	cmd.header().Index = len(s.commands)
	s.commands = append(s.commands, cmd)
	if cmd.Type() == CmdTag {
		s.tags = append(s.tags, cmd.header().Index)
	}
	s.tree = nil
	s.isClear = false
	s.imageCacheDrop()
}

// Paint records filling the whole clipped area with source.
//
// Two clear-tracking optimizations apply when the surface was created
// with them enabled (the default): a Clear with no clip resets the log
// outright, and an unclipped Source paint (or an Over paint that cannot
// show anything beneath it) resets the log before being recorded.
func (s *Surface) Paint(op replay.Operator, source replay.Pattern, clip *replay.Clip) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}

	if op == replay.OperatorClear && clip == nil && s.optimizeClears {
		s.reset()
		return nil
	}

	if clip == nil && s.optimizeClears &&
		(op == replay.OperatorSource ||
			(op == replay.OperatorOver && (s.isClear || isOpaqueSolid(source)))) {
		s.reset()
	}

	extents, err := s.opExtents(op, replay.EmptyBox(), false, clip)
	if err != nil {
		return err
	}

	s.commit(&PaintCommand{
		Header: Header{Op: op, Extents: extents, Clip: clip.Copy()},
		Source: source.Snapshot(),
	})
	return nil
}

// Mask records filling the clipped area with source through the mask
// pattern's alpha.
func (s *Surface) Mask(op replay.Operator, source, mask replay.Pattern, clip *replay.Clip) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}

	extents, err := s.opExtents(op, replay.EmptyBox(), false, clip)
	if err != nil {
		return err
	}

	s.commit(&MaskCommand{
		Header: Header{Op: op, Extents: extents, Clip: clip.Copy()},
		Source: source.Snapshot(),
		Mask:   mask.Snapshot(),
	})
	return nil
}

// Fill records filling a path. The path is in device space and is
// cloned.
func (s *Surface) Fill(op replay.Operator, source replay.Pattern, path *replay.Path,
	rule replay.FillRule, tolerance float64, antialias replay.Antialias,
	clip *replay.Clip) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}

	extents, err := s.opExtents(op, path.Bounds(), true, clip)
	if err != nil {
		return err
	}

	s.commit(&FillCommand{
		Header:    Header{Op: op, Extents: extents, Clip: clip.Copy()},
		Source:    source.Snapshot(),
		Path:      path.Clone(),
		Rule:      rule,
		Tolerance: tolerance,
		Antialias: antialias,
	})
	return nil
}

// Stroke records stroking a path. The path is in device space; ctm is
// the user-to-device matrix the stroke width is defined under.
func (s *Surface) Stroke(op replay.Operator, source replay.Pattern, path *replay.Path,
	style replay.StrokeStyle, ctm replay.Matrix, tolerance float64,
	antialias replay.Antialias, clip *replay.Clip) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}

	bounds := path.Bounds()
	if !bounds.IsEmpty() {
		pad := style.MaxDistanceFromPath() * matrixScale(ctm)
		bounds = replay.Box{
			X0: bounds.X0 - pad, Y0: bounds.Y0 - pad,
			X1: bounds.X1 + pad, Y1: bounds.Y1 + pad,
		}
	}
	extents, err := s.opExtents(op, bounds, true, clip)
	if err != nil {
		return err
	}

	s.commit(&StrokeCommand{
		Header:     Header{Op: op, Extents: extents, Clip: clip.Copy()},
		Source:     source.Snapshot(),
		Path:       path.Clone(),
		Style:      style.Clone(),
		CTM:        ctm,
		CTMInverse: ctm.Invert(),
		Tolerance:  tolerance,
		Antialias:  antialias,
	})
	return nil
}

// ShowTextGlyphs records drawing a positioned glyph run. Glyph and
// cluster slices are copied; the scaled font is shared, with the command
// taking a reference that is released when the surface is finished.
func (s *Surface) ShowTextGlyphs(op replay.Operator, source replay.Pattern,
	text string, glyphs []replay.Glyph, clusters []replay.Cluster,
	flags replay.ClusterFlags, font *replay.ScaledFont, clip *replay.Clip) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}
	if font == nil {
		return replay.ErrTypeMismatch
	}

	extents, err := s.opExtents(op, font.GlyphExtents(glyphs), true, clip)
	if err != nil {
		return err
	}

	s.commit(&GlyphsCommand{
		Header:   Header{Op: op, Extents: extents, Clip: clip.Copy()},
		Source:   source.Snapshot(),
		Text:     text,
		Glyphs:   append([]replay.Glyph(nil), glyphs...),
		Clusters: append([]replay.Cluster(nil), clusters...),
		Flags:    flags,
		Font:     font.Reference(),
	})
	return nil
}

// Tag records the beginning or end of a logical structure tag. Tag
// commands carry no ink but always reach the target in log order, even
// on windowed replays.
func (s *Surface) Tag(begin bool, name, attributes string) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}

	s.commit(&TagCommand{
		Header:     Header{Op: replay.OperatorOver},
		Begin:      begin,
		Name:       name,
		Attributes: attributes,
	})
	return nil
}

// Snapshot returns an independent surface holding the commands recorded
// so far. Commands are immutable once recorded, so the snapshot shares
// them; fonts gain one reference each.
func (s *Surface) Snapshot() *Surface {
	cp := &Surface{
		content:         s.content,
		extents:         s.extents,
		unbounded:       s.unbounded,
		commands:        append([]Command(nil), s.commands...),
		tags:            append([]int(nil), s.tags...),
		isClear:         s.isClear,
		optimizeClears:  s.optimizeClears,
		hasBilevelAlpha: s.hasBilevelAlpha,
		hasOnlyOpOver:   s.hasOnlyOpOver,
		ids:             s.ids,
	}
	for _, cmd := range cp.commands {
		if g, ok := cmd.(*GlyphsCommand); ok {
			g.Font.Reference()
		}
	}
	return cp
}

// SnapshotSource implements replay.SourceSnapshotter, so a surface
// pattern referencing this surface freezes its content when recorded.
func (s *Surface) SnapshotSource() replay.Source { return s.Snapshot() }

// opExtents computes the conservative device extents a command can
// affect: the surface extents intersected with the clip, further reduced
// to the geometry bounds for operators bounded by their mask. An empty
// result means the command cannot draw anything.
func (s *Surface) opExtents(op replay.Operator, geom replay.Box, hasGeom bool,
	clip *replay.Clip) (replay.Rect, error) {
	ext := s.extents.Intersect(clip.ClipExtents())
	if hasGeom && op.BoundedByMask() {
		ext = ext.Intersect(geom.OuterRect())
	}
	if ext.IsEmpty() {
		return replay.EmptyRect, replay.ErrNothingToDo
	}
	return ext, nil
}

func isOpaqueSolid(p replay.Pattern) bool {
	solid, ok := p.(*replay.Solid)
	return ok && solid.IsOpaque()
}

// matrixScale returns the average linear scale factor of m.
func matrixScale(m replay.Matrix) float64 {
	det := m.A*m.E - m.B*m.D
	if det < 0 {
		det = -det
	}
	return math.Sqrt(det)
}
