package record

import (
	"fmt"
	"io"

	"github.com/gogpu/replay"
)

// Dump writes a human-readable listing of the command log to w, for
// debugging. When regionsID names an attached region array its
// classification is printed alongside each command; pass 0 to skip it.
func (s *Surface) Dump(w io.Writer, regionsID uint32) {
	bounds := "unbounded"
	if !s.unbounded {
		bounds = rectString(s.extents)
	}
	fmt.Fprintf(w, "recording surface: %s, content %s, %d commands\n",
		bounds, s.content, len(s.commands))

	var elements []RegionElement
	if regionsID != 0 {
		if ra := s.regions.find(regionsID); ra != nil {
			elements = ra.elements
		}
	}

	for i, cmd := range s.commands {
		fmt.Fprintf(w, "%4d: %-6s op=%s extents=%s",
			i, cmd.Type(), cmd.header().Op, rectString(cmd.header().Extents))
		if cmd.header().Clip != nil {
			fmt.Fprintf(w, " clip=%s", rectString(cmd.header().Clip.Extents))
		}

		switch c := cmd.(type) {
		case *PaintCommand:
			fmt.Fprintf(w, " source=%s", patternString(c.Source))
		case *MaskCommand:
			fmt.Fprintf(w, " source=%s mask=%s",
				patternString(c.Source), patternString(c.Mask))
		case *FillCommand:
			fmt.Fprintf(w, " source=%s rule=%s elements=%d",
				patternString(c.Source), c.Rule, len(c.Path.Elements()))
		case *StrokeCommand:
			fmt.Fprintf(w, " source=%s width=%g elements=%d",
				patternString(c.Source), c.Style.Width, len(c.Path.Elements()))
		case *GlyphsCommand:
			fmt.Fprintf(w, " source=%s glyphs=%d text=%q",
				patternString(c.Source), len(c.Glyphs), c.Text)
		case *TagCommand:
			verb := "end"
			if c.Begin {
				verb = "begin"
			}
			fmt.Fprintf(w, " %s %q", verb, c.Name)
		}

		if elements != nil && i < len(elements) {
			fmt.Fprintf(w, " region=%s", elements[i].Region)
			if elements[i].SourceID != 0 {
				fmt.Fprintf(w, " source_id=%d", elements[i].SourceID)
			}
		}
		fmt.Fprintln(w)
	}
}

func rectString(r replay.Rect) string {
	if r.IsUnbounded() {
		return "[unbounded]"
	}
	return fmt.Sprintf("[%d %d %dx%d]", r.X, r.Y, r.W, r.H)
}

func patternString(p replay.Pattern) string {
	switch pat := p.(type) {
	case *replay.Solid:
		if pat.Foreground {
			return "foreground"
		}
		return fmt.Sprintf("solid(%.2f %.2f %.2f %.2f)",
			pat.Color.R, pat.Color.G, pat.Color.B, pat.Color.A)
	case *replay.LinearGradient:
		return fmt.Sprintf("linear(%d stops)", len(pat.Stops))
	case *replay.RadialGradient:
		return fmt.Sprintf("radial(%d stops)", len(pat.Stops))
	case *replay.SurfacePattern:
		return "surface"
	}
	return "unknown"
}
