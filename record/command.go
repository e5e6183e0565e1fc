// Package record implements a deferred-rendering command log.
//
// A Surface captures drawing operations as typed command structures
// instead of rasterizing them immediately. Commands are stored in an
// append-only log and replayed later against any target backend, any
// number of times. A lazily built bounding-box tree over the command
// extents answers windowed replays without walking the whole log.
//
// Design follows Cairo's recording surface: typed command structs for
// inspectability and debuggability, deep-copied arguments so recorded
// commands are immune to caller mutation, and a clear-tracking
// optimization that resets the log when an operation wipes the surface.
//
// # Example
//
//	// Record drawing operations
//	s := record.New(replay.ContentColorAlpha, &replay.Rect{W: 100, H: 100})
//	path := replay.NewPath()
//	path.Rectangle(10, 10, 50, 50)
//	s.Fill(replay.OperatorOver, replay.NewSolid(replay.RGBA{R: 1, A: 1}), path,
//		replay.FillRuleWinding, 0.1, replay.AntialiasDefault, nil)
//
//	// Replay to a backend
//	t := target.NewImageTarget(100, 100)
//	err := s.Replay(t)
package record

import (
	"github.com/gogpu/replay"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdPaint  CommandType = iota // Fill the clipped area with the source
	CmdMask                      // Fill through a mask's alpha
	CmdFill                      // Fill a path
	CmdStroke                    // Stroke a path
	CmdGlyphs                    // Draw a positioned glyph run
	CmdTag                       // Begin or end a structure tag
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPaint:  "Paint",
	CmdMask:   "Mask",
	CmdFill:   "Fill",
	CmdStroke: "Stroke",
	CmdGlyphs: "Glyphs",
	CmdTag:    "Tag",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Header carries the fields shared by every recorded command.
type Header struct {
	// Op is the compositing operator the command draws with.
	Op replay.Operator

	// Extents is the conservative device-space rectangle the command
	// can affect.
	Extents replay.Rect

	// Clip restricts the command; nil means unclipped. Owned by the
	// command.
	Clip *replay.Clip

	// Index is the command's position in the log, fixed at append time.
	Index int
}

// Command is the interface implemented by all recorded command types.
// Every argument a command carries is an independent deep copy taken at
// record time, except scaled fonts, which are shared by reference.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	header() *Header
}

// PaintCommand fills the whole clipped area with the source.
type PaintCommand struct {
	Header
	Source replay.Pattern
}

func (c *PaintCommand) Type() CommandType { return CmdPaint }

func (c *PaintCommand) header() *Header { return &c.Header }

// MaskCommand fills the clipped area with the source modulated by the
// mask pattern's alpha.
type MaskCommand struct {
	Header
	Source replay.Pattern
	Mask   replay.Pattern
}

func (c *MaskCommand) Type() CommandType { return CmdMask }

func (c *MaskCommand) header() *Header { return &c.Header }

// FillCommand fills a path's interior.
type FillCommand struct {
	Header
	Source    replay.Pattern
	Path      *replay.Path
	Rule      replay.FillRule
	Tolerance float64
	Antialias replay.Antialias
}

func (c *FillCommand) Type() CommandType { return CmdFill }

func (c *FillCommand) header() *Header { return &c.Header }

// StrokeCommand strokes a path's outline. CTM is the user-to-device
// matrix the stroke width is defined under; CTMInverse is its inverse,
// captured at record time.
type StrokeCommand struct {
	Header
	Source     replay.Pattern
	Path       *replay.Path
	Style      replay.StrokeStyle
	CTM        replay.Matrix
	CTMInverse replay.Matrix
	Tolerance  float64
	Antialias  replay.Antialias
}

func (c *StrokeCommand) Type() CommandType { return CmdStroke }

func (c *StrokeCommand) header() *Header { return &c.Header }

// GlyphsCommand draws a positioned glyph run. Font is shared by
// reference; the command holds one reference released when the surface
// is finished.
type GlyphsCommand struct {
	Header
	Source   replay.Pattern
	Text     string
	Glyphs   []replay.Glyph
	Clusters []replay.Cluster
	Flags    replay.ClusterFlags
	Font     *replay.ScaledFont
}

func (c *GlyphsCommand) Type() CommandType { return CmdGlyphs }

func (c *GlyphsCommand) header() *Header { return &c.Header }

// TagCommand begins (Begin=true) or ends a logical structure tag. Tags
// carry no ink but must reach the target in log order.
type TagCommand struct {
	Header
	Begin      bool
	Name       string
	Attributes string
}

func (c *TagCommand) Type() CommandType { return CmdTag }

func (c *TagCommand) header() *Header { return &c.Header }
