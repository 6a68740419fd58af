package text

// FontParser turns raw font bytes into a ParsedFont. NewFontSource calls
// the parser named by a SourceOption (WithParser); sourceFace doesn't care
// which backend produced the ParsedFont it holds, only that it answers
// GlyphIndex/GlyphAdvance/Metrics for Draw and Measure.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is a loaded font file, queried by sourceFace for the glyph
// advances and metrics Draw and Measure need. Name/FullName/NumGlyphs/
// UnitsPerEm surface font identity for FontSource.Name and diagnostics;
// there is no glyph-bounds query because nothing rasterizes single glyphs
// in this package — Draw blits a whole string in one font.Drawer pass.
type ParsedFont interface {
	// Name returns the font family name, or empty string if unavailable.
	Name() string

	// FullName returns the full font name, or empty string if unavailable.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, or 0 if not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given size
	// in points; ppem (pixels per em) is derived from size and DPI.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds the font-level metrics sourceFace.Metrics converts
// into a Metrics value for a comment's lane/bitmap sizing.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// parserRegistry holds registered font parsers. The default is "ximage"
// (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under name, selectable
// with WithParser.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
