package filter

// Comment is the subset of the root package's Comment that predicates need
// to evaluate. filter does not import the root danmaku package (the same
// self-contained layout as track/atlas/instance/gpucore); the Renderer is
// responsible for converting a danmaku.Comment into a filter.Comment before
// calling Chain.Accept.
type Comment struct {
	Text        string
	FontSizePx  float64
	SpawnTimeMs uint32
}

// Predicate reports whether a comment should be rejected. Reject, not
// Accept, is the verb the original DanmakuFilter trait uses
// (original_source/src/filter/mod.rs's is_filtered): true means "drop it".
type Predicate interface {
	Reject(c Comment) bool
}

// Chain runs a sequence of predicates in order, short-circuiting on the
// first rejection (spec.md §4.7 / original_source/src/filter/merge.rs's
// MergeFilter).
type Chain struct {
	predicates []Predicate
}

// NewChain builds a Chain that evaluates predicates in the given order.
func NewChain(predicates ...Predicate) *Chain {
	return &Chain{predicates: predicates}
}

// Accept returns true if no predicate rejects c, evaluating predicates in
// order and stopping at the first rejection.
func (ch *Chain) Accept(c Comment) bool {
	for _, p := range ch.predicates {
		if p.Reject(c) {
			return false
		}
	}
	return true
}

// Len returns the number of predicates in the chain.
func (ch *Chain) Len() int {
	return len(ch.predicates)
}
