package danmaku

// Motion is a comment's movement class, encoded per the wire contract in
// SPEC_FULL.md §6: 0 = scroll, 1 = top, 2 = bottom.
type Motion uint32

const (
	// Scroll comments travel right-to-left across the full screen width.
	Scroll Motion = 0
	// Top comments are centered and pinned to a fixed vertical track near
	// the top of the screen for their whole lifetime.
	Top Motion = 1
	// Bottom comments are centered and pinned near the bottom.
	Bottom Motion = 2
)

// String returns a short name for the motion class.
func (m Motion) String() string {
	switch m {
	case Scroll:
		return "scroll"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Comment is an immutable input record (spec.md §3).
type Comment struct {
	// ID uniquely identifies this comment within its stream.
	ID uint64

	// SpawnTimeMs is the time the comment should start being visible.
	// Successive SpawnTimeMs values admitted from the same StreamID must be
	// non-decreasing (invariant 4).
	SpawnTimeMs uint32

	// StreamID groups comments that share a single monotonicity guarantee.
	// Comments from different streams may interleave freely.
	StreamID uint32

	// Text is the comment body. Line-breaking is not performed; a comment
	// is always rendered as a single line.
	Text string

	// Motion selects the lane-allocation algorithm used in track.
	Motion Motion

	// Color is the comment's solid fill color (rich markup is a Non-goal).
	Color RGBA

	// FontSizePx is the requested font size in pixels.
	FontSizePx float64

	// StyleFlags is an opaque bitmask forwarded to the rasterizer (e.g. bold).
	StyleFlags uint32
}

// RasterizedComment is C1's output: a tight, single-channel coverage bitmap
// plus the metrics C2/C4 need to place it. Owned by the atlas once interned.
type RasterizedComment struct {
	// Bitmap holds Width*Height coverage bytes, row-major, no padding.
	Bitmap []byte

	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// BaselinePx is the distance from the bitmap's top row to the text
	// baseline, in pixels.
	BaselinePx float64

	// AdvancePx is the logical line width used by the track allocator —
	// this is the comment's on-screen footprint, not necessarily equal to
	// Width (hinting/subpixel rounding may differ slightly).
	AdvancePx float64
}

// LiveComment is C4/C5's record for a comment that has been admitted to a
// track and is present in the instance buffer (spec.md §3).
//
// LiveComment deliberately holds no pointer back to an atlas entry: per
// spec.md §9, atlas entries are reference-counted leaves and comments are
// holders, never the reverse. The Renderer keeps its own side table from
// comment ID to the pinning atlas entry so instance.Buffer.Compact can
// report "this ID expired" without knowing what an atlas entry is.
type LiveComment struct {
	ID          uint64
	SpawnTimeMs uint32
	Motion      Motion
	Track       uint32
	LineWidthPx uint32
	AtlasU      uint32
	AtlasV      uint32
	Color       RGBA
}

// ExpiresAt returns the time at which this comment becomes dead.
func (lc LiveComment) ExpiresAt(lifetimeMs uint32) uint32 {
	return lc.SpawnTimeMs + lifetimeMs
}
