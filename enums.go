package replay

// Operator is a compositing operator applied when a command is drawn.
type Operator uint8

const (
	// OperatorClear clears the destination within the operation extents.
	OperatorClear Operator = iota
	// OperatorSource replaces the destination with the source.
	OperatorSource
	// OperatorOver draws the source over the destination (default).
	OperatorOver
	// OperatorIn keeps source where the destination was opaque.
	OperatorIn
	// OperatorOut keeps source where the destination was transparent.
	OperatorOut
	// OperatorAtop draws source atop destination alpha.
	OperatorAtop
	// OperatorDest leaves the destination untouched.
	OperatorDest
	// OperatorDestOver draws the destination over the source.
	OperatorDestOver
	// OperatorDestIn keeps destination where the source was opaque.
	OperatorDestIn
	// OperatorDestOut keeps destination where the source was transparent.
	OperatorDestOut
	// OperatorDestAtop draws destination atop source alpha.
	OperatorDestAtop
	// OperatorXor keeps source and destination where they do not overlap.
	OperatorXor
	// OperatorAdd sums source and destination.
	OperatorAdd
	// OperatorSaturate saturating-adds source and destination.
	OperatorSaturate
)

var operatorNames = [...]string{
	OperatorClear:    "Clear",
	OperatorSource:   "Source",
	OperatorOver:     "Over",
	OperatorIn:       "In",
	OperatorOut:      "Out",
	OperatorAtop:     "Atop",
	OperatorDest:     "Dest",
	OperatorDestOver: "DestOver",
	OperatorDestIn:   "DestIn",
	OperatorDestOut:  "DestOut",
	OperatorDestAtop: "DestAtop",
	OperatorXor:      "Xor",
	OperatorAdd:      "Add",
	OperatorSaturate: "Saturate",
}

// String returns the string representation of an Operator.
func (op Operator) String() string {
	if int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "Unknown"
}

// BoundedByMask reports whether the operator leaves pixels outside the
// drawn shape untouched. Operators for which this is false (Clear, Source,
// In, Out, DestIn, DestAtop) affect the whole clip region, so their
// recorded extents cannot be reduced to the geometry's bounds.
func (op Operator) BoundedByMask() bool {
	switch op {
	case OperatorClear, OperatorSource, OperatorIn, OperatorOut,
		OperatorDestIn, OperatorDestAtop:
		return false
	}
	return true
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleWinding uses the non-zero winding rule.
	// A point is inside if the winding number is non-zero.
	FillRuleWinding FillRule = iota

	// FillRuleEvenOdd uses the even-odd rule.
	// A point is inside if the winding number is odd.
	FillRuleEvenOdd
)

// String returns the string representation of a FillRule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "EvenOdd"
	}
	return "Winding"
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Antialias selects the antialiasing mode a command was recorded with.
// The recording core carries it through to the target unchanged.
type Antialias uint8

const (
	// AntialiasDefault uses the target's default antialiasing.
	AntialiasDefault Antialias = iota
	// AntialiasNone disables antialiasing.
	AntialiasNone
	// AntialiasGray uses single-channel antialiasing.
	AntialiasGray
	// AntialiasSubpixel uses subpixel antialiasing.
	AntialiasSubpixel
)

// Content describes which channels a surface carries.
type Content uint8

const (
	// ContentColor carries color channels only.
	ContentColor Content = iota
	// ContentAlpha carries an alpha channel only.
	ContentAlpha
	// ContentColorAlpha carries color and alpha channels.
	ContentColorAlpha
)

var contentNames = [...]string{
	ContentColor:      "Color",
	ContentAlpha:      "Alpha",
	ContentColorAlpha: "ColorAlpha",
}

// String returns the string representation of a Content.
func (c Content) String() string {
	if int(c) < len(contentNames) {
		return contentNames[c]
	}
	return "Unknown"
}
