// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Renderer executes one frame's worth of instanced quad draws to a render
// target.
//
// The Renderer interface is the primary abstraction for rendering backends.
// Different implementations provide CPU or GPU rendering:
//
//   - SoftwareRenderer: CPU compositing of the glyph/shadow atlases
//   - GPURenderer: GPU-accelerated rendering via a gpucore.DrawPipeline
//
// Renderers are stateless between Render calls, allowing the same renderer
// to be used with different targets and frames.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	if err := renderer.Render(target, frame); err != nil {
//	    log.Printf("render failed: %v", err)
//	}
type Renderer interface {
	// Render composites frame's live instances onto target.
	//
	// frame is not modified by this operation and can be rendered
	// multiple times to different targets.
	Render(target RenderTarget, frame Frame) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers, this is typically a no-op as operations are
	// synchronous. For GPU renderers, this may submit command buffers
	// and wait for completion.
	//
	// Returns an error if flushing fails.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if the glyph coverage is sampled
	// with filtering rather than nearest-neighbor.
	SupportsAntialiasing bool

	// SupportsTextures indicates if texture sampling is supported.
	SupportsTextures bool

	// MaxTextureSize is the maximum texture dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
