// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/flyingtext/danmaku/gpucore"
)

// GPURenderer is a GPU-accelerated renderer driven by a gpucore.DrawPipeline.
//
// This renderer uses the GPU device provided by the host application to
// issue the single instanced draw described in SPEC_FULL.md §6: every live
// comment's on-screen position is evaluated in the vertex shader from
// (time, motion, track, line_width), so one draw call covers the whole
// frame.
//
// Note: This is a stub implementation for Phase 1. The draw pipeline
// stages and validates the frame's instances, but issuing real GPU commands
// is deferred to a backend-specific adapter; Phase 1 always routes CPU
// targets through the software compositor and reports GPU texture targets
// as not yet implemented, after staging.
//
// Example:
//
//	app := gogpu.NewApp(gogpu.Config{...})
//	var renderer *render.GPURenderer
//	var initialized bool
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if !initialized {
//	        provider := app.GPUContextProvider()
//	        if provider != nil {
//	            renderer, _ = render.NewGPURenderer(provider, nil)
//	            initialized = true
//	        }
//	    }
//	    target := render.NewPixmapTarget(800, 600)
//	    renderer.Render(target, frame)
//	})
type GPURenderer struct {
	// handle is the GPU device handle from the host application.
	handle DeviceHandle

	// pipeline stages and validates each frame's instances for GPU texture
	// targets. nil disables staging. NewGPURenderer stores the pipeline it
	// is given; the root package's NewRenderer passes one sized to the
	// screen.
	pipeline *gpucore.DrawPipeline

	// softwareFallback is used for CPU-backed targets.
	softwareFallback *SoftwareRenderer
}

// NewGPURenderer creates a new GPU-accelerated renderer.
//
// The DeviceHandle must be provided by the host application (e.g., gogpu.App).
// pipeline may be nil, in which case GPU texture targets report an error
// without staging; pass a *gpucore.DrawPipeline (built with
// gpucore.NewDrawPipeline) to exercise instance validation ahead of a real
// backend adapter.
//
// Returns an error if the device handle is invalid.
func NewGPURenderer(handle DeviceHandle, pipeline *gpucore.DrawPipeline) (*GPURenderer, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}

	return &GPURenderer{
		handle:           handle,
		pipeline:         pipeline,
		softwareFallback: NewSoftwareRenderer(),
	}, nil
}

// Render draws frame to target.
//
// CPU-backed targets always use software compositing. GPU texture targets
// are staged through the pipeline (if one is attached) and then rejected:
// Phase 1 has no backend adapter to submit the staged instances to.
func (r *GPURenderer) Render(target RenderTarget, frame Frame) error {
	if target == nil {
		return errors.New("render: nil target")
	}

	if target.Pixels() != nil {
		return r.softwareFallback.Render(target, frame)
	}

	if r.pipeline != nil {
		instances := make([]gpucore.InstanceRecord, len(frame.Records))
		for i, rec := range frame.Records {
			instances[i] = gpucore.InstanceRecord{
				TimeMs:      rec.TimeMs,
				Motion:      rec.Motion,
				Track:       rec.Track,
				LineWidthPx: rec.LineWidthPx,
				OffsetX:     rec.OffsetX,
				OffsetY:     rec.OffsetY,
				AtlasU:      rec.AtlasU,
				AtlasV:      rec.AtlasV,
				ColorR:      rec.ColorR,
				ColorG:      rec.ColorG,
				ColorB:      rec.ColorB,
			}
		}
		uniforms := gpucore.FrameUniforms{
			NowMs:          frame.NowMs,
			ViewportWidth:  frame.ViewportWidth,
			ViewportHeight: frame.ViewportHeight,
			LifetimeMs:     frame.LifetimeMs,
			Opacity:        frame.Opacity,
		}
		if _, err := r.pipeline.Execute(instances, uniforms); err != nil {
			return fmt.Errorf("render: stage GPU instances: %w", err)
		}
	}

	return errors.New("render: GPU targets not yet implemented (Phase 1)")
}

// Flush ensures all GPU commands are submitted and complete.
//
// For CPU targets, this is a no-op.
func (r *GPURenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *GPURenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                r.pipeline != nil && r.pipeline.UseGPU(),
		SupportsAntialiasing: true,
		SupportsTextures:     true,
		MaxTextureSize:       8192,
	}
}

// DeviceHandle returns the underlying device handle.
// This allows advanced users to access the GPU device for custom rendering.
func (r *GPURenderer) DeviceHandle() DeviceHandle {
	return r.handle
}

// CreateTextureTarget creates a GPU texture render target.
//
// Note: Phase 1 implementation returns an error.
func (r *GPURenderer) CreateTextureTarget(width, height int) (*TextureTarget, error) {
	return nil, errors.New("render: GPU texture targets not yet implemented (Phase 1)")
}

// Ensure GPURenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*GPURenderer)(nil)
	_ CapableRenderer = (*GPURenderer)(nil)
)
