// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/flyingtext/danmaku/instance"

// Frame bundles everything a Renderer needs to draw one frame: the live
// instance records (already ordered and compacted by instance.Buffer), the
// per-frame uniforms, and the two source textures the quads sample from.
//
// Frame intentionally carries raw byte slices for the atlases rather than
// the atlas package's *Entry type, so render never depends on atlas — the
// Renderer (root package) is the only place both packages are wired
// together.
type Frame struct {
	Records []instance.Record

	NowMs          uint32
	LifetimeMs     uint32
	LineHeightPx   uint32
	ViewportWidth  uint32
	ViewportHeight uint32
	Opacity        float32

	// GlyphAtlas and ShadowAtlas are single-channel coverage textures,
	// row-major, AtlasWidth*AtlasHeight bytes each. ShadowAtlas shares
	// the glyph atlas's geometry (spec §4.3): the same atlas_uv indexes
	// both.
	GlyphAtlas, ShadowAtlas  []byte
	AtlasWidth, AtlasHeight int
}
