package danmaku

import "errors"

// Sentinel errors for the six error kinds in SPEC_FULL.md §7.
//
// ErrShapeError, ErrFontUnavailable, ErrAtlasFull and ErrTrackUnavailable
// are per-comment failures: Push/Render log them via Logger() and continue.
// ErrDeviceLost, ErrSurfaceResized and ErrConfigError are frame- or
// startup-level and are returned to the caller.
var (
	// ErrShapeError is returned when the shaper fails to produce glyphs
	// for a comment's text.
	ErrShapeError = errors.New("danmaku: shape error")

	// ErrFontUnavailable is returned when no font covers the requested text.
	ErrFontUnavailable = errors.New("danmaku: font unavailable")

	// ErrAtlasFull is returned when the atlas cannot free enough space for
	// a new entry, even after sweeping.
	ErrAtlasFull = errors.New("danmaku: atlas full")

	// ErrTrackUnavailable is returned when no lane is free and the motion
	// class's track pool is already at capacity.
	ErrTrackUnavailable = errors.New("danmaku: no track available")

	// ErrDeviceLost is returned from Render, wrapping the error, whenever
	// the C6 backend's Render fails. The Renderer does not rebuild the
	// atlas or the instance buffer afterwards.
	ErrDeviceLost = errors.New("danmaku: GPU device lost")

	// ErrSurfaceResized is informational: returned from Resize to confirm
	// uniforms were recomputed. Never a failure.
	ErrSurfaceResized = errors.New("danmaku: surface resized")

	// ErrConfigError is returned from NewRenderer for invalid configuration.
	ErrConfigError = errors.New("danmaku: invalid configuration")
)
