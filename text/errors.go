package text

import "errors"

// ErrEmptyFontData is returned when font data passed to NewFontSource is
// empty.
var ErrEmptyFontData = errors.New("text: empty font data")
