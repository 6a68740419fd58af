package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads a test font for testing.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}

	return source
}

// TestFaceMetrics tests Face.Metrics.
func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		if err := source.Close(); err != nil {
			t.Errorf("failed to close font source: %v", err)
		}
	}()

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12.0},
		{"size 16", 16.0},
		{"size 24", 24.0},
		{"size 48", 48.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := source.Face(tt.size)

			metrics := face.Metrics()

			if metrics.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", metrics.Ascent)
			}
			if metrics.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", metrics.Descent)
			}
			if metrics.LineGap < 0 {
				t.Errorf("LineGap should be non-negative, got %f", metrics.LineGap)
			}

			expectedLineHeight := metrics.Ascent + metrics.Descent + metrics.LineGap
			if metrics.LineHeight() != expectedLineHeight {
				t.Errorf("LineHeight() = %f, want %f", metrics.LineHeight(), expectedLineHeight)
			}

			if tt.size == 24.0 {
				face12 := source.Face(12.0)
				metrics12 := face12.Metrics()

				ratio := metrics.Ascent / metrics12.Ascent
				if ratio < 1.8 || ratio > 2.2 {
					t.Errorf("Metrics scaling incorrect: ratio = %f, want ~2.0", ratio)
				}
			}
		})
	}
}

// TestFaceAdvance tests Face.Advance.
func TestFaceAdvance(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		_ = source.Close()
	}()

	face := source.Face(16.0)

	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"single char", "A"},
		{"word", "Hello"},
		{"sentence", "The quick brown fox"},
		{"unicode", "Hello 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance := face.Advance(tt.text)

			if tt.text == "" {
				if advance != 0 {
					t.Errorf("Advance() = %f, want 0 for empty string", advance)
				}
				return
			}

			if advance <= 0 {
				t.Errorf("Advance() = %f, want positive value for %q", advance, tt.text)
			}

			if len(tt.text) > 1 {
				singleAdvance := face.Advance(string(tt.text[0]))
				if advance <= singleAdvance {
					t.Errorf("Advance(%q) = %f should be > Advance(%q) = %f",
						tt.text, advance, string(tt.text[0]), singleAdvance)
				}
			}
		})
	}
}

// TestFaceSize tests Face.Size.
func TestFaceSize(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		_ = source.Close()
	}()

	tests := []float64{12.0, 16.0, 24.0, 48.0, 72.0}

	for _, size := range tests {
		t.Run("", func(t *testing.T) {
			face := source.Face(size)

			if got := face.Size(); got != size {
				t.Errorf("Size() = %f, want %f", got, size)
			}
		})
	}
}

// TestFaceMultipleFaces tests creating multiple faces of different sizes
// from one source.
func TestFaceMultipleFaces(t *testing.T) {
	source := loadTestFont(t)
	defer func() {
		_ = source.Close()
	}()

	face12 := source.Face(12.0)
	face16 := source.Face(16.0)
	face24 := source.Face(24.0)

	if face12.Size() != 12.0 {
		t.Errorf("face12.Size() = %f, want 12.0", face12.Size())
	}
	if face16.Size() != 16.0 {
		t.Errorf("face16.Size() = %f, want 16.0", face16.Size())
	}
	if face24.Size() != 24.0 {
		t.Errorf("face24.Size() = %f, want 24.0", face24.Size())
	}

	metrics12 := face12.Metrics()
	metrics24 := face24.Metrics()

	ratio := metrics24.Ascent / metrics12.Ascent
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("Metrics scaling incorrect: ratio = %f, want ~2.0", ratio)
	}
}
