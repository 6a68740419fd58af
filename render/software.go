// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/flyingtext/danmaku/instance"
)

// Motion mirrors instance.Record's Motion field values. render does not
// import the instance package for these three constants to keep the
// self-contained-sub-package layout consistent with track, atlas and
// gpucore; the Renderer (root package) is responsible for keeping the
// numbering in sync.
const (
	motionScroll uint32 = 0
	motionTop    uint32 = 1
	motionBottom uint32 = 2
)

// SoftwareRenderer composites a Frame's live instances directly onto a
// CPU-backed RenderTarget, sampling coverage from the glyph and shadow
// atlases. It evaluates the same closed-form motion formulas the GPU
// vertex shader would, so a CPU target and a GPU target render the same
// instance buffer to visually equivalent output.
//
// SoftwareRenderer is the headless/test backend: it requires no GPU device
// and is deterministic given (Frame, NowMs).
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a CPU compositor.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render composites frame onto target.
func (r *SoftwareRenderer) Render(target RenderTarget, frame Frame) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	pixels := target.Pixels()
	if pixels == nil {
		return errors.New("render: target has no CPU pixel access")
	}
	stride := target.Stride()
	tw, th := target.Width(), target.Height()

	opacity := frame.Opacity
	if opacity == 0 {
		opacity = 1
	}

	for _, rec := range frame.Records {
		x, y, w, h := quadRect(rec, frame)
		blitQuad(pixels, stride, tw, th, x, y, w, h, rec, frame, opacity)
	}
	return nil
}

// Flush is a no-op: CPU compositing is synchronous.
func (r *SoftwareRenderer) Flush() error { return nil }

// Capabilities reports the software backend's feature set.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: false,
		SupportsTextures:     true,
		MaxTextureSize:       0,
	}
}

var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)

// quadRect evaluates the record's closed-form screen position for the
// frame's clock, returning the quad's top-left corner and size in pixels.
func quadRect(rec instance.Record, frame Frame) (x, y, w, h int) {
	w = int(rec.LineWidthPx)
	h = int(frame.LineHeightPx)

	elapsed := float64(int64(frame.NowMs) - int64(rec.TimeMs))
	viewportW := float64(frame.ViewportWidth)

	switch rec.Motion {
	case motionScroll:
		lifetime := float64(frame.LifetimeMs)
		if lifetime <= 0 {
			lifetime = 1
		}
		speed := (viewportW + float64(rec.LineWidthPx)) / lifetime
		x = int(viewportW-speed*elapsed) + int(rec.OffsetX)
		y = int(rec.Track)*int(frame.LineHeightPx) + int(rec.OffsetY)
	case motionTop:
		// Track 0 sits one line_height below the top edge, not flush with
		// it: SPEC_FULL.md §8 scenario 3 states offset_y = line_height for
		// track 0 on a top-anchored comment.
		x = int((viewportW-float64(rec.LineWidthPx))/2) + int(rec.OffsetX)
		y = int(rec.Track+1)*int(frame.LineHeightPx) + int(rec.OffsetY)
	case motionBottom:
		x = int((viewportW-float64(rec.LineWidthPx))/2) + int(rec.OffsetX)
		y = int(frame.ViewportHeight) - int(rec.Track+1)*int(frame.LineHeightPx) + int(rec.OffsetY)
	}
	return x, y, w, h
}

func blitQuad(pixels []byte, stride, tw, th, x, y, w, h int, rec instance.Record, frame Frame, opacity float32) {
	for dy := 0; dy < h; dy++ {
		py := y + dy
		if py < 0 || py >= th {
			continue
		}
		ay := int(rec.AtlasV) + dy
		if ay < 0 || ay >= frame.AtlasHeight {
			continue
		}
		for dx := 0; dx < w; dx++ {
			px := x + dx
			if px < 0 || px >= tw {
				continue
			}
			ax := int(rec.AtlasU) + dx
			if ax < 0 || ax >= frame.AtlasWidth {
				continue
			}
			atlasIdx := ay*frame.AtlasWidth + ax
			var shadow byte
			if frame.ShadowAtlas != nil {
				shadow = frame.ShadowAtlas[atlasIdx]
			}
			glyph := frame.GlyphAtlas[atlasIdx]

			offset := py*stride + px*4
			if shadow > 0 {
				blendPixel(pixels[offset:offset+4], 0, 0, 0, float32(shadow)/255*opacity)
			}
			if glyph > 0 {
				blendPixel(pixels[offset:offset+4], rec.ColorR, rec.ColorG, rec.ColorB, float32(glyph)/255*opacity)
			}
		}
	}
}

func blendPixel(dst []byte, r, g, b, a float32) {
	if a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	inv := 1 - a
	dst[0] = byte(r*255*a + float32(dst[0])*inv)
	dst[1] = byte(g*255*a + float32(dst[1])*inv)
	dst[2] = byte(b*255*a + float32(dst[2])*inv)
	dst[3] = byte(255*a + float32(dst[3])*inv)
}
