// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"testing"

	"github.com/flyingtext/danmaku/instance"
)

func TestNewGPURenderer(t *testing.T) {
	renderer, err := NewGPURenderer(NullDeviceHandle{}, nil)
	if err != nil {
		t.Fatalf("NewGPURenderer() error = %v", err)
	}
	if renderer == nil {
		t.Fatal("NewGPURenderer() returned nil")
	}
}

func TestNewGPURendererNilHandle(t *testing.T) {
	_, err := NewGPURenderer(nil, nil)
	if err == nil {
		t.Error("NewGPURenderer(nil, nil) should return error")
	}
}

func TestGPURendererCapabilities(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)
	caps := renderer.Capabilities()

	if caps.IsGPU {
		t.Error("GPURenderer.Capabilities().IsGPU should be false with no pipeline attached")
	}
	if !caps.SupportsAntialiasing {
		t.Error("GPURenderer should support antialiasing")
	}
	if caps.MaxTextureSize == 0 {
		t.Error("MaxTextureSize should not be 0")
	}
}

func TestGPURendererFlush(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)

	if err := renderer.Flush(); err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
}

func TestGPURendererDeviceHandle(t *testing.T) {
	handle := NullDeviceHandle{}
	renderer, _ := NewGPURenderer(handle, nil)

	if renderer.DeviceHandle() != handle {
		t.Error("DeviceHandle() should return the provided handle")
	}
}

// fullCoverageFrame builds a Frame with a single instance that covers the
// entire target with solid coverage, useful for asserting a known color
// lands at a known pixel.
func fullCoverageFrame(w, h int, r, g, b float32) Frame {
	atlas := make([]byte, w*h)
	for i := range atlas {
		atlas[i] = 255
	}
	return Frame{
		Records: []instance.Record{{
			TimeMs:      0,
			Motion:      2, // Bottom: y = ViewportHeight - LineHeightPx = 0
			Track:       0,
			LineWidthPx: uint32(w),
			AtlasU:      0,
			AtlasV:      0,
			ColorR:      r,
			ColorG:      g,
			ColorB:      b,
		}},
		NowMs:          0,
		LineHeightPx:   uint32(h),
		ViewportWidth:  uint32(w),
		ViewportHeight: uint32(h),
		Opacity:        1,
		GlyphAtlas:     atlas,
		AtlasWidth:     w,
		AtlasHeight:    h,
	}
}

func TestGPURendererCPUTarget(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)
	target := NewPixmapTarget(100, 100)
	frame := fullCoverageFrame(100, 100, 1, 0, 0)

	if err := renderer.Render(target, frame); err != nil {
		t.Errorf("Render() to CPU target error = %v", err)
	}

	pixel := target.GetPixel(50, 50).(color.RGBA)
	if pixel.R != 255 || pixel.G != 0 || pixel.B != 0 {
		t.Errorf("Pixel = %v, want red", pixel)
	}
}

func TestGPURendererGPUTarget(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)
	target := NewSurfaceTarget(100, 100, 0, nil)
	frame := fullCoverageFrame(100, 100, 1, 1, 1)

	// Phase 1: GPU targets not implemented
	if err := renderer.Render(target, frame); err == nil {
		t.Error("Render() to GPU target should return error in Phase 1")
	}
}

func TestGPURendererNilTarget(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)

	if err := renderer.Render(nil, Frame{}); err == nil {
		t.Error("Render(nil, _) should return error")
	}
}

func TestGPURendererCreateTextureTarget(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)

	if _, err := renderer.CreateTextureTarget(256, 256); err == nil {
		t.Error("CreateTextureTarget() should return error in Phase 1")
	}
}

func TestGPURendererFillWithSoftwareFallback(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)
	target := NewPixmapTarget(200, 200)

	// Pre-fill the target white, then render a smaller blue quad centered
	// horizontally in it, so we can distinguish covered from uncovered pixels.
	pixels := target.Pixels()
	for i := 0; i < len(pixels); i += 4 {
		pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = 255, 255, 255, 255
	}

	atlas := make([]byte, 100*100)
	for i := range atlas {
		atlas[i] = 255
	}
	frame := Frame{
		Records: []instance.Record{{
			Motion:      1, // Top
			LineWidthPx: 100,
			ColorR:      0,
			ColorG:      0,
			ColorB:      1,
		}},
		LineHeightPx:   100,
		ViewportWidth:  200,
		ViewportHeight: 200,
		Opacity:        1,
		GlyphAtlas:     atlas,
		AtlasWidth:     100,
		AtlasHeight:    100,
	}
	// Top motion centers the quad horizontally and puts track 0 one line
	// down: x=(200-100)/2=50, y=(0+1)*100=100, so it spans x 50..149, y 100..199.

	if err := renderer.Render(target, frame); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	center := target.GetPixel(100, 150).(color.RGBA)
	if center.B != 255 || center.R != 0 {
		t.Errorf("Center = %v, want blue", center)
	}

	corner := target.GetPixel(10, 10).(color.RGBA)
	if corner.R != 255 || corner.G != 255 || corner.B != 255 {
		t.Errorf("Corner = %v, want white", corner)
	}
}

func TestGPURendererImplementsRenderer(t *testing.T) {
	renderer, _ := NewGPURenderer(NullDeviceHandle{}, nil)

	var _ Renderer = renderer
	var _ CapableRenderer = renderer
}
