package text

// Metrics holds a Face's metrics at its size: Ascent is the baseline
// y-offset Draw uses, and LineHeight() is the bitmap height rasterize()
// allocates for a comment before drawing it.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font,
	// stored as a positive value (unlike FontMetrics.Descent).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap, the recommended vertical
// distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
