// Package text rasterizes whole danmaku comment strings into alpha-coverage
// bitmaps for the glyph atlas.
//
// Comments are short, throwaway strings: the renderer never needs per-glyph
// shaping, script itemization, or a glyph cache, because atlas.Atlas already
// caches the rendered bitmap for an entire comment keyed by its content and
// font size (see atlas.Atlas.Intern). This package therefore only keeps the
// two operations the renderer actually calls:
//
//   - Measure: advance width and line height of a string, for track packing
//   - Draw: rasterize a string onto a destination image, for atlas admission
//
// The pipeline follows the same two-stage shape as the gg text/v2 API it is
// adapted from:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(24)
//	w, h := text.Measure("hello danmaku", face)
//	text.Draw(dst, "hello danmaku", face, 0, h, color.White)
//
// Font parsing is abstracted through the FontParser interface so an
// alternative backend can be registered with RegisterParser; the default
// uses golang.org/x/image/font/opentype.
package text
