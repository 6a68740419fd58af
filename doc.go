// Package danmaku renders scrolling video-comment overlays ("danmaku").
//
// # Overview
//
// danmaku is a Pure Go rendering engine for bullet-comment overlays: short
// text comments that scroll across a video frame, or sit pinned at the top
// or bottom, each carrying a timestamp, color and size. It is designed to
// integrate with the GoGPU ecosystem and plug into a host application's
// existing render loop via a host-provided GPU device, the same way the
// render/ package receives rather than owns its GPU resources.
//
// # Quick Start
//
//	import "github.com/flyingtext/danmaku"
//
//	cfg := danmaku.DefaultConfig(1920, 1080)
//	cfg.Face = myFace // a text.Face loaded by the host
//
//	r, err := danmaku.NewRenderer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	r.Push(danmaku.Comment{Text: "hello", SpawnTimeMs: 0, Motion: danmaku.Scroll})
//
//	err = r.Render(4000, target)
//
// # Pipeline
//
// A comment entering the renderer passes through a filter chain, is
// shaped and rasterized into the glyph atlas (cached by text+size+style),
// assigned a track by the track allocator according to its motion class,
// and finally assembled into an instance buffer consumed by a single
// GPU instanced draw call per frame.
//
// # Architecture
//
// The library is organized into:
//   - Root package: Comment/LiveComment types, Renderer host API, Config
//   - filter/: predicate chain applied before a comment is admitted
//   - track/: lane allocation per motion class (scroll, top, bottom)
//   - atlas/: glyph/text raster cache with shelf packing and eviction
//   - instance/: per-frame GPU instance buffer assembly
//   - render/: frame renderer, device/target integration, GPU backend
//   - worker/: background rasterization pool
//   - gpucore/: instance-record and frame-uniform wire types, and the
//     DrawPipeline that stages them for render/
//
// # Coordinate System
//
// Uses standard computer graphics coordinates: origin (0,0) at top-left,
// X increases right, Y increases down. Screen position is a closed-form
// function of time, motion class, track index and per-comment offset,
// evaluated at draw time (render.SoftwareRenderer does this on the CPU);
// the instance buffer stores no per-frame screen coordinates.
package danmaku

// Version information.
const (
	// Version is the current version of the library.
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier.
	VersionPrerelease = "alpha.1"
)
