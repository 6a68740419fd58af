// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between the danmaku
// instance buffer and GPU frameworks.
//
// This package defines the core abstractions for device integration,
// allowing the overlay to render to GPU surfaces provided by host
// applications (like gogpu.App), or to a CPU pixmap for headless use.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host application, it does NOT
// create its own. This follows the Vello/femtovg/Skia pattern where the
// rendering library is injected with GPU resources rather than managing
// them itself.
//
// # Core Interfaces
//
//   - DeviceHandle: Provides GPU device access from the host application
//   - RenderTarget: Defines where rendering output goes (Pixmap, Texture, Surface)
//   - Renderer: Draws one Frame's live instances to a target
//
// # Frame
//
// A [Frame] is the render-time view of C5's instance buffer: the live
// instance.Record slice, the current clock and viewport, and the glyph
// and shadow atlas bytes the quads sample from. Renderer implementations
// never mutate a Frame; the same Frame can be drawn to several targets
// (e.g. a preview pixmap and the real surface).
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU compositor that evaluates the same closed-form
//     motion formulas as the GPU vertex shader, for headless rendering
//     and tests.
//   - GPURenderer: wraps a gpucore.DrawPipeline (Phase 1 stub: CPU targets
//     are drawn by SoftwareRenderer, GPU targets return an error).
//
// # RenderTarget Implementations
//
//   - PixmapTarget: CPU-backed *image.RGBA target
//   - TextureTarget: GPU texture target (stub)
//   - SurfaceTarget: Window surface from host (stub)
//
// # Usage
//
// Integration with gogpu:
//
//	app := gogpu.NewApp(gogpu.Config{...})
//	var renderer render.Renderer
//
//	app.OnInit(func(gc *gogpu.Context) {
//	    // render receives the GPU device from gogpu (zero overhead)
//	    renderer, _ = render.NewGPURenderer(gc.DeviceHandle(), nil)
//	})
//
//	app.OnDraw(func(gc *gogpu.Context) {
//	    frame := buildFrame() // assembled from instance.Buffer + atlas.Atlas
//	    renderer.Render(gc.SurfaceTarget(), frame)
//	})
//
// Software rendering fallback:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer := render.NewSoftwareRenderer()
//	renderer.Render(target, frame)
//	img := target.Image()
//
// # Architecture
//
//	                 User Application
//	                       │
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	 gogpu.App       danmaku.Renderer   instance.Buffer
//	 (windowing)     (C9 host facade)   (C5 instance data)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	               danmaku/render package
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	DeviceHandle     RenderTarget       Renderer
//	(GPU access)    (output target)   (execution)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	               danmaku/gpucore package
//	               (DrawPipeline, single instanced draw)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
//
// # References
//
//   - Vello DeviceProvider pattern: https://github.com/AhornGraphics/vello
//   - femtovg Renderer trait: https://github.com/AhornGraphics/femtovg
//   - Skia GrDirectContext: https://skia.org/docs/user/api/
package render
