package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Draw rasterizes a whole comment string onto dst in a single font.Drawer
// pass, with no per-glyph shaping: Renderer.rasterize calls this once per
// comment into a freshly sized image.Alpha, which atlas.Atlas then interns
// as the comment's bitmap. Position (x, y) is the baseline origin; callers
// pass the face's Ascent so the whole glyph height lands inside dst.
//
// The face must be a *sourceFace built by NewFontSource, backed by an
// opentype-parsed font; any other Face implementation is a no-op.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return
	}
	xparsed, ok := sf.source.Parsed().(*ximageParsedFont)
	if !ok {
		return
	}

	otFace, err := opentype.NewFace(xparsed.font, &opentype.FaceOptions{
		Size:    sf.size,
		DPI:     72,
		Hinting: mapHinting(sf.config.hinting),
	})
	if err != nil {
		return
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

// Measure returns a comment's advance width and line height, used by the
// track allocator to size its lane before the bitmap Draw will produce
// exists.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}
	width = face.Advance(text)
	height = face.Metrics().LineHeight()
	return width, height
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingFull
	}
}
