package filter

import (
	"crypto/sha256"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// RegexPredicate rejects comments whose text matches re, grounded on
// original_source/src/filter/regex.rs's RegexFilter.
type RegexPredicate struct {
	re *regexp.Regexp
}

// NewRegexPredicate compiles pattern and returns a predicate that rejects
// any comment text matching it.
func NewRegexPredicate(pattern string) (*RegexPredicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexPredicate{re: re}, nil
}

// Reject implements Predicate.
func (p *RegexPredicate) Reject(c Comment) bool {
	return p.re.MatchString(c.Text)
}

// KeywordPredicate rejects comments whose text contains keyword, grounded
// on original_source/src/filter/simple.rs's SimpleFilter.
type KeywordPredicate struct {
	keyword string
}

// NewKeywordPredicate returns a predicate that rejects any comment
// containing keyword as a substring.
func NewKeywordPredicate(keyword string) *KeywordPredicate {
	return &KeywordPredicate{keyword: keyword}
}

// Reject implements Predicate.
func (p *KeywordPredicate) Reject(c Comment) bool {
	return strings.Contains(c.Text, p.keyword)
}

// FontSizeRangePredicate rejects comments whose requested font size falls
// outside [MinPx, MaxPx]. A zero bound disables that side of the range.
type FontSizeRangePredicate struct {
	MinPx, MaxPx float64
}

// Reject implements Predicate.
func (p FontSizeRangePredicate) Reject(c Comment) bool {
	if p.MinPx > 0 && c.FontSizePx < p.MinPx {
		return true
	}
	if p.MaxPx > 0 && c.FontSizePx > p.MaxPx {
		return true
	}
	return false
}

// MaxLenPredicate rejects comments whose text is longer than MaxRunes
// runes, the reference predicate named in SPEC_FULL.md §4.7 and the filter
// short-circuit test scenario.
type MaxLenPredicate struct {
	MaxRunes int
}

// Reject implements Predicate.
func (p MaxLenPredicate) Reject(c Comment) bool {
	return len([]rune(c.Text)) > p.MaxRunes
}

// DuplicatePredicate rejects a comment whose normalized text was already
// seen within WindowMs of the current comment's SpawnTimeMs, per spec.md
// §4.7's "duplicate-suppression within a time window (hash of normalized
// text)" reference predicate and SPEC_FULL.md §11's normalization detail.
//
// Text is normalized with Unicode NFC (golang.org/x/text/unicode/norm)
// before hashing, so visually identical comments submitted with different
// combining-character decompositions are still recognized as duplicates.
type DuplicatePredicate struct {
	WindowMs uint32

	mu   sync.Mutex
	seen map[[sha256.Size]byte]uint32 // hash -> last-seen SpawnTimeMs
}

// NewDuplicatePredicate returns a predicate that rejects repeats of the
// same normalized text seen within windowMs.
func NewDuplicatePredicate(windowMs uint32) *DuplicatePredicate {
	return &DuplicatePredicate{
		WindowMs: windowMs,
		seen:     make(map[[sha256.Size]byte]uint32),
	}
}

// Reject implements Predicate. It also records c as seen, so repeated
// calls with the same Chain statefully suppress duplicates.
func (p *DuplicatePredicate) Reject(c Comment) bool {
	normalized := norm.NFC.String(c.Text)
	hash := sha256.Sum256([]byte(normalized))

	p.mu.Lock()
	defer p.mu.Unlock()

	last, ok := p.seen[hash]
	p.seen[hash] = c.SpawnTimeMs
	if !ok {
		return false
	}
	return c.SpawnTimeMs-last <= p.WindowMs
}

var (
	_ Predicate = (*RegexPredicate)(nil)
	_ Predicate = (*KeywordPredicate)(nil)
	_ Predicate = FontSizeRangePredicate{}
	_ Predicate = MaxLenPredicate{}
	_ Predicate = (*DuplicatePredicate)(nil)
)
