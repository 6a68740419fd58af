package filter

import (
	"strings"
	"testing"
)

// countingPredicate records how many times Reject was called, so a test
// can assert a later predicate in the chain was never consulted.
type countingPredicate struct {
	calls int
	p     Predicate
}

func (c *countingPredicate) Reject(comment Comment) bool {
	c.calls++
	return c.p.Reject(comment)
}

func TestChainShortCircuitsOnFirstReject(t *testing.T) {
	regexPred, err := NewRegexPredicate("^spam")
	if err != nil {
		t.Fatalf("compile regex: %v", err)
	}
	maxLen := &countingPredicate{p: MaxLenPredicate{MaxRunes: 140}}
	chain := NewChain(regexPred, maxLen)

	text := "spam" + strings.Repeat("x", 500)
	accepted := chain.Accept(Comment{Text: text})

	if accepted {
		t.Fatalf("expected comment to be rejected by the regex predicate")
	}
	if maxLen.calls != 0 {
		t.Fatalf("expected max_len predicate to be skipped, got %d calls", maxLen.calls)
	}
}

func TestChainAcceptsWhenNoPredicateRejects(t *testing.T) {
	regexPred, _ := NewRegexPredicate("^spam")
	chain := NewChain(regexPred, MaxLenPredicate{MaxRunes: 140})

	if !chain.Accept(Comment{Text: "hello world"}) {
		t.Fatalf("expected comment to be accepted")
	}
}

func TestMaxLenPredicateCountsRunesNotBytes(t *testing.T) {
	p := MaxLenPredicate{MaxRunes: 3}
	if p.Reject(Comment{Text: "あいう"}) {
		t.Fatalf("3 runes should not be rejected by MaxRunes=3")
	}
	if !p.Reject(Comment{Text: "あいうえ"}) {
		t.Fatalf("4 runes should be rejected by MaxRunes=3")
	}
}

func TestFontSizeRangePredicate(t *testing.T) {
	p := FontSizeRangePredicate{MinPx: 10, MaxPx: 40}
	if p.Reject(Comment{FontSizePx: 20}) {
		t.Fatalf("20px should be within [10,40]")
	}
	if !p.Reject(Comment{FontSizePx: 5}) {
		t.Fatalf("5px should be rejected (below min)")
	}
	if !p.Reject(Comment{FontSizePx: 50}) {
		t.Fatalf("50px should be rejected (above max)")
	}
}

func TestDuplicatePredicateWithinWindow(t *testing.T) {
	p := NewDuplicatePredicate(1000)

	if p.Reject(Comment{Text: "hello", SpawnTimeMs: 0}) {
		t.Fatalf("first occurrence should not be rejected")
	}
	if !p.Reject(Comment{Text: "hello", SpawnTimeMs: 500}) {
		t.Fatalf("repeat within window should be rejected")
	}
	if p.Reject(Comment{Text: "hello", SpawnTimeMs: 2000}) {
		t.Fatalf("repeat outside window should not be rejected")
	}
}

func TestDuplicatePredicateNormalizesText(t *testing.T) {
	p := NewDuplicatePredicate(1000)

	// "é" as a single codepoint vs. "e" + combining acute accent.
	precomposed := "caf\u00e9"
	decomposed := "café"

	if p.Reject(Comment{Text: precomposed, SpawnTimeMs: 0}) {
		t.Fatalf("first occurrence should not be rejected")
	}
	if !p.Reject(Comment{Text: decomposed, SpawnTimeMs: 100}) {
		t.Fatalf("NFC-equivalent text should be recognized as a duplicate")
	}
}
