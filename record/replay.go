package record

import (
	"errors"
	"fmt"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/target"
)

type replayMode uint8

const (
	modeReplay replayMode = iota
	modeCreateRegions
	modeReplayRegion
)

// ReplayOptions control how a replay maps recorded device space onto the
// destination target.
type ReplayOptions struct {
	// Extents, when non-nil, bounds the replay to a window in
	// destination device space.
	Extents *replay.Rect

	// Transform, when non-nil, maps recorded device space into
	// destination device space.
	Transform *replay.Matrix

	// Clip, when non-nil, is intersected into every replayed command,
	// in recorded device space.
	Clip *replay.Clip

	// SurfaceIsUnbounded replays without bounding drawing to the
	// recorded extents.
	SurfaceIsUnbounded bool
}

type replayParams struct {
	opts           ReplayOptions
	mode           replayMode
	region         RegionKind
	regionsID      uint32
	foreground     *replay.RGBA
	foregroundUsed bool
}

// Replay draws the whole recorded log against t, in log order.
func (s *Surface) Replay(t target.Target) error {
	return s.replayInternal(t, &replayParams{})
}

// ReplayWithOptions draws the recorded log against t with the given
// window, transform and clip.
func (s *Surface) ReplayWithOptions(t target.Target, opts ReplayOptions) error {
	return s.replayInternal(t, &replayParams{opts: opts})
}

// ReplayWithForeground replays with fg substituted for every foreground
// marker pattern, and reports whether any command consumed it.
func (s *Surface) ReplayWithForeground(t target.Target, fg replay.RGBA) (bool, error) {
	p := replayParams{foreground: &fg}
	err := s.replayInternal(t, &p)
	return p.foregroundUsed, err
}

// ReplayAndCreateRegions probes every command against t and records, in
// the region array with the given id, whether the target handled it
// natively or would fall back to an image. The id must come from
// AttachRegions and must not have been classified before. Fill and
// stroke commands are always probed separately, never merged.
//
// As a side effect the surface's bilevel-alpha and only-op-over summary
// flags are recomputed.
func (s *Surface) ReplayAndCreateRegions(t target.Target, regionsID uint32) error {
	return s.replayInternal(t, &replayParams{
		mode:      modeCreateRegions,
		regionsID: regionsID,
	})
}

// ReplayRegion draws only the commands classified as region under the
// given region-array id by an earlier ReplayAndCreateRegions.
func (s *Surface) ReplayRegion(t target.Target, regionsID uint32, region RegionKind) error {
	return s.replayInternal(t, &replayParams{
		mode:      modeReplayRegion,
		region:    region,
		regionsID: regionsID,
	})
}

// ReplayOne draws the single command at the given log index against t,
// without any window or region filtering.
func (s *Surface) ReplayOne(t target.Target, index int) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}
	if index < 0 || index >= len(s.commands) {
		return replay.ErrInvalidIndex
	}

	w := target.Wrap(t)
	err := s.dispatch(w, s.commands[index], nil)
	if errors.Is(err, replay.ErrNothingToDo) {
		err = nil
	}
	return err
}

func (s *Surface) replayInternal(t target.Target, p *replayParams) error {
	if s.finished {
		return replay.ErrSurfaceFinished
	}
	if s.err != nil {
		return s.err
	}
	if s.isClear || len(s.commands) == 0 {
		return nil
	}

	var ra *regionArray
	if p.regionsID != 0 {
		ra = s.regions.find(p.regionsID)
		if ra == nil {
			return fmt.Errorf("record: unknown region array id %d: %w",
				p.regionsID, replay.ErrInvalidIndex)
		}
	}

	transform := replay.Identity()
	if p.opts.Transform != nil {
		transform = *p.opts.Transform
	}

	w := target.Wrap(t)
	if p.opts.Extents != nil {
		w.IntersectExtents(*p.opts.Extents)
	}
	if !s.unbounded && !p.opts.SurfaceIsUnbounded {
		w.IntersectExtents(transform.TransformRect(s.extents))
	}
	w.SetTransform(transform)
	if p.opts.Clip != nil {
		w.SetClip(p.opts.Clip)
	}

	if p.foreground != nil {
		if fg, ok := t.(target.Foregrounder); ok {
			fg.SetForeground(p.foreground)
			defer fg.SetForeground(nil)
		}
	}

	// The window the replay can affect, in recorded device space.
	queryExt := replay.UnboundedRect()
	if ext, bounded := w.Extents(); bounded {
		if ext.IsEmpty() {
			return nil
		}
		queryExt = transform.Invert().TransformRect(ext)
	}

	switch p.mode {
	case modeCreateRegions:
		s.hasBilevelAlpha = true
		s.hasOnlyOpOver = true
		if ra != nil {
			if ra.elements != nil {
				return fmt.Errorf("record: region array %d already classified: %w",
					ra.id, replay.ErrInvalidIndex)
			}
			ra.elements = make([]RegionElement, len(s.commands))
		}
	case modeReplayRegion:
		if ra == nil || len(ra.elements) != len(s.commands) {
			return fmt.Errorf("record: region array %d does not match the log: %w",
				p.regionsID, replay.ErrInvalidIndex)
		}
	}

	indices := s.visibleCommands(queryExt)
	count := len(s.commands)
	if indices != nil {
		count = len(indices)
	}

	getter, _ := t.(target.RegionIDGetter)
	log := replay.Logger()

	var status error
	skipNext := -1
	for i := 0; i < count; i++ {
		idx := i
		if indices != nil {
			idx = indices[i]
		}
		if idx == skipNext {
			continue
		}
		cmd := s.commands[idx]
		hdr := cmd.header()

		var re *RegionElement
		if ra != nil && ra.elements != nil {
			re = &ra.elements[idx]
		}
		// Tags always execute so structure marks survive restricted
		// replays; RegionAll marks a command no pass may skip.
		if re != nil && p.mode == modeReplayRegion &&
			re.Region != p.region && re.Region != RegionAll &&
			cmd.Type() != CmdTag {
			continue
		}
		if !queryExt.Intersects(hdr.Extents) && cmd.Type() != CmdTag {
			continue
		}

		log.Debug("replay command", "index", idx, "type", cmd.Type().String())

		status = nil
		merged := false
		if fill, ok := cmd.(*FillCommand); ok && p.mode != modeCreateRegions {
			var skipped int
			merged, skipped, status = s.tryFillStroke(w, fill, idx, ra, p)
			if merged {
				skipNext = skipped
			}
		}
		if !merged {
			status = s.dispatch(w, cmd, p)
		}

		if p.mode == modeCreateRegions {
			s.mergeCommandAttributes(cmd)
			if re != nil && getter != nil && status == nil {
				re.SourceID = getter.RegionID()
				if cmd.Type() == CmdMask {
					re.MaskID = re.SourceID
				}
			}
		}

		// A degenerate clip can make a command do nothing when
		// replayed; that is not an error.
		if errors.Is(status, replay.ErrNothingToDo) {
			status = nil
		}

		if p.mode == modeCreateRegions && re != nil {
			switch {
			case status == nil:
				re.Region = RegionNative
			case errors.Is(status, replay.ErrImageFallback):
				re.Region = RegionImageFallback
				status = nil
			}
		}

		if status != nil {
			break
		}
	}

	if status != nil && replay.IsHardError(status) {
		s.err = status
	}
	return status
}

// tryFillStroke merges a fill with the immediately following stroke over
// the same path and clip into one target call, when the target supports
// it. It returns the merged index to skip on success.
func (s *Surface) tryFillStroke(w *target.Wrapper, fill *FillCommand, idx int,
	ra *regionArray, p *replayParams) (merged bool, skipped int, err error) {
	if _, ok := w.Target().(target.FillStroker); !ok {
		return false, 0, nil
	}
	next := idx + 1
	if next >= len(s.commands) {
		return false, 0, nil
	}
	stroke, ok := s.commands[next].(*StrokeCommand)
	if !ok {
		return false, 0, nil
	}
	if p.mode == modeReplayRegion && p.region != RegionAll &&
		ra != nil && ra.elements[next].Region != p.region {
		return false, 0, nil
	}
	if !fill.Path.Equal(stroke.Path) || !fill.Clip.Equal(stroke.Clip) {
		return false, 0, nil
	}

	err = w.FillStroke(fill.Op, s.sourceFor(p, fill.Source), fill.Rule,
		stroke.Op, s.sourceFor(p, stroke.Source), stroke.Style, stroke.CTM,
		fill.Path, fill.Tolerance, fill.Antialias, fill.Clip)
	if errors.Is(err, replay.ErrUnsupported) {
		return false, 0, nil
	}
	return true, next, err
}

// dispatch replays one command through the wrapper. p may be nil for a
// plain single-command replay.
func (s *Surface) dispatch(w *target.Wrapper, cmd Command, p *replayParams) error {
	hdr := cmd.header()
	switch c := cmd.(type) {
	case *PaintCommand:
		return w.Paint(hdr.Op, s.sourceFor(p, c.Source), hdr.Clip)
	case *MaskCommand:
		return w.Mask(hdr.Op, s.sourceFor(p, c.Source), s.sourceFor(p, c.Mask), hdr.Clip)
	case *FillCommand:
		return w.Fill(hdr.Op, s.sourceFor(p, c.Source), c.Path, c.Rule,
			c.Tolerance, c.Antialias, hdr.Clip)
	case *StrokeCommand:
		return w.Stroke(hdr.Op, s.sourceFor(p, c.Source), c.Path, c.Style,
			c.CTM, c.Tolerance, c.Antialias, hdr.Clip)
	case *GlyphsCommand:
		return w.Glyphs(hdr.Op, s.sourceFor(p, c.Source), target.TextRun{
			Text:     c.Text,
			Glyphs:   c.Glyphs,
			Clusters: c.Clusters,
			Flags:    c.Flags,
			Font:     c.Font,
		}, hdr.Clip)
	case *TagCommand:
		return w.Tag(c.Begin, c.Name, c.Attributes)
	default:
		panic(fmt.Sprintf("record: unknown command type %T", cmd))
	}
}

// sourceFor substitutes the replay's foreground color for foreground
// marker patterns.
func (s *Surface) sourceFor(p *replayParams, pat replay.Pattern) replay.Pattern {
	if p == nil || p.foreground == nil {
		return pat
	}
	solid, ok := pat.(*replay.Solid)
	if !ok || !solid.Foreground {
		return pat
	}
	p.foregroundUsed = true
	return replay.NewSolid(*p.foreground)
}

// mergeCommandAttributes folds one command's patterns into the surface's
// bilevel-alpha and only-op-over summary flags.
func (s *Surface) mergeCommandAttributes(cmd Command) {
	op := cmd.header().Op
	switch c := cmd.(type) {
	case *PaintCommand:
		s.mergeSourceAttributes(op, c.Source)
	case *MaskCommand:
		s.mergeSourceAttributes(op, c.Source)
		s.mergeSourceAttributes(op, c.Mask)
	case *FillCommand:
		s.mergeSourceAttributes(op, c.Source)
	case *StrokeCommand:
		s.mergeSourceAttributes(op, c.Source)
	case *GlyphsCommand:
		s.mergeSourceAttributes(op, c.Source)
	}
}

// mergeSourceAttributes narrows the summary flags for one pattern. For
// surface patterns whose source is itself a recording, the source's own
// summary flags are folded in recursively.
func (s *Surface) mergeSourceAttributes(op replay.Operator, source replay.Pattern) {
	if op != replay.OperatorOver {
		s.hasOnlyOpOver = false
	}

	if sp, ok := source.(*replay.SurfacePattern); ok {
		if f, ok := sp.Source.(replay.SourceFlagger); ok {
			if !f.HasBilevelAlpha() {
				s.hasBilevelAlpha = false
			}
			if !f.HasOnlyOpOver() {
				s.hasOnlyOpOver = false
			}
			return
		}
		// unknown source content
		s.hasBilevelAlpha = false
		return
	}

	if !source.IsClear() && !source.IsOpaque() {
		s.hasBilevelAlpha = false
	}
}

// visibleCommands returns the log indices that can affect ext, in log
// order, or nil when every command is visible. Tag commands are always
// included.
func (s *Surface) visibleCommands(ext replay.Rect) []int {
	if ext.Contains(s.extents) {
		return nil
	}
	if s.tree == nil {
		s.tree = buildBBTree(s.commands)
	}
	vis := s.tree.query(ext)
	if len(s.tags) > 0 {
		vis = mergeSortedUnique(vis, s.tags)
	}
	if len(vis) == len(s.commands) {
		return nil
	}
	return vis
}

// mergeSortedUnique merges two ascending index slices, dropping
// duplicates.
func mergeSortedUnique(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
