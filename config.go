package danmaku

import (
	"fmt"

	"github.com/flyingtext/danmaku/filter"
	"github.com/flyingtext/danmaku/render"
	"github.com/flyingtext/danmaku/text"
)

// Config configures a Renderer. It is validated once in NewRenderer.
type Config struct {
	// ScreenWidth and ScreenHeight are the viewport dimensions in pixels.
	ScreenWidth, ScreenHeight uint32

	// LineHeightPx is the vertical spacing between tracks, shared by all
	// motion classes.
	LineHeightPx uint32

	// LifetimeMs is the total on-screen duration of every comment.
	LifetimeMs uint32

	// MaxTracksScroll, MaxTracksTop, MaxTracksBottom cap the number of
	// lanes each motion class may allocate. Once a class is at its cap and
	// no lane is free, new comments of that class are logged and dropped.
	MaxTracksScroll, MaxTracksTop, MaxTracksBottom uint32

	// AtlasWidth and AtlasHeight size the shelf-packed bitmap cache.
	AtlasWidth, AtlasHeight uint32

	// AtlasGraceFrames is the minimum idle time, in frames, before an
	// unpinned atlas entry becomes evictable (spec.md §4.2 eviction policy).
	AtlasGraceFrames uint32

	// AtlasLowWaterMark is the free-byte threshold sweep() stops at once
	// reached.
	AtlasLowWaterMark uint32

	// ShadowWidth and ShadowWeight parameterize C3's radial falloff.
	ShadowWidth  uint32
	ShadowWeight float32

	// WorkerCount sizes the rasterization worker pool (C8). Zero disables
	// offload: rasterization runs synchronously on the Push goroutine.
	WorkerCount int

	// ShapeDeadlineMs bounds how long a worker may spend rasterizing a
	// single comment before it is cancelled and dropped.
	ShapeDeadlineMs uint32

	// Opacity is the global composite opacity applied in the copy pass.
	Opacity float32

	// Face shapes and measures comment text (C1). Like render.DeviceHandle,
	// it is received from the host rather than constructed by the
	// Renderer — font resources are shared, immutable global state
	// (spec.md §9 "Global state").
	Face text.Face

	// FilterChain runs before a comment is admitted (C7). A nil chain
	// accepts every comment.
	FilterChain *filter.Chain

	// DeviceHandle is the host-provided GPU device, forwarded to the C6
	// backend. A nil handle is replaced by render.NullDeviceHandle;
	// CPU-backed targets are drawn by the software compositor whatever the
	// handle.
	DeviceHandle render.DeviceHandle
}

// DefaultConfig returns a Config with conservative defaults, following the
// teacher's plain-struct-with-validation convention (gpucore.PipelineConfig)
// rather than functional options — danmaku.Config has no optional behavior
// tied to construction order.
func DefaultConfig(screenWidth, screenHeight uint32) Config {
	return Config{
		ScreenWidth:       screenWidth,
		ScreenHeight:      screenHeight,
		LineHeightPx:      36,
		LifetimeMs:        8000,
		MaxTracksScroll:   16,
		MaxTracksTop:      4,
		MaxTracksBottom:   4,
		AtlasWidth:        2048,
		AtlasHeight:       2048,
		AtlasGraceFrames:  30,
		AtlasLowWaterMark: 0,
		ShadowWidth:       3,
		ShadowWeight:      0.6,
		WorkerCount:       2,
		ShapeDeadlineMs:   50,
		Opacity:           1.0,
	}
}

// Validate checks the configuration for startup-fatal errors (spec.md §7
// ConfigError kind). It is called once from NewRenderer.
func (c *Config) Validate() error {
	if c.ScreenWidth == 0 || c.ScreenHeight == 0 {
		return fmt.Errorf("%w: screen size must be non-zero, got %dx%d", ErrConfigError, c.ScreenWidth, c.ScreenHeight)
	}
	if c.LineHeightPx == 0 {
		return fmt.Errorf("%w: line height must be non-zero", ErrConfigError)
	}
	if c.LifetimeMs == 0 {
		return fmt.Errorf("%w: lifetime must be non-zero", ErrConfigError)
	}
	if c.AtlasWidth == 0 || c.AtlasHeight == 0 {
		return fmt.Errorf("%w: atlas size must be non-zero, got %dx%d", ErrConfigError, c.AtlasWidth, c.AtlasHeight)
	}
	if c.MaxTracksScroll == 0 && c.MaxTracksTop == 0 && c.MaxTracksBottom == 0 {
		return fmt.Errorf("%w: at least one motion class must allow tracks", ErrConfigError)
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("%w: worker count cannot be negative", ErrConfigError)
	}
	if c.Face == nil {
		return fmt.Errorf("%w: a text.Face must be provided", ErrConfigError)
	}
	return nil
}
