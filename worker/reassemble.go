package worker

import "sync"

// reassembler buffers out-of-order completed Results until they can be
// drained contiguously per stream, restoring the monotonic spawn-time
// order C4's scroll-lane formula requires even though goroutines in the
// pool may finish out of submission order.
//
// A rasterization that fails or hits its deadline is dropped rather than
// retried (Open Question 2, DESIGN.md), but its sequence number still has
// to be accounted for: skip tombstones it so drain advances past the gap
// instead of buffering every later comment on that stream forever.
type reassembler struct {
	mu      sync.Mutex
	nextSeq map[uint32]uint64
	pending map[uint32]map[uint64]Result
	skipped map[uint32]map[uint64]struct{}
}

func newReassembler() *reassembler {
	return &reassembler{
		nextSeq: make(map[uint32]uint64),
		pending: make(map[uint32]map[uint64]Result),
		skipped: make(map[uint32]map[uint64]struct{}),
	}
}

// offer records a completed result, ready to be returned by drain once it
// and every earlier sequence number in its stream have arrived or been
// skipped.
func (r *reassembler) offer(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.pending[res.StreamID]
	if !ok {
		buf = make(map[uint64]Result)
		r.pending[res.StreamID] = buf
	}
	buf[res.Seq] = res
}

// skip tombstones seq for streamID. A dropped rasterization never calls
// offer, so without a tombstone drain would wait forever for a result that
// is never coming, stalling every later seq on the same stream.
func (r *reassembler) skip(streamID uint32, seq uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf, ok := r.skipped[streamID]
	if !ok {
		buf = make(map[uint64]struct{})
		r.skipped[streamID] = buf
	}
	buf[seq] = struct{}{}
}

// drain returns every result that is now contiguous with its stream's
// last-drained sequence number, removing them (and any skipped seq in the
// same contiguous run) from the buffers. Results from different streams
// may interleave in the returned slice; within a stream, order is
// preserved.
func (r *reassembler) drain() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	streams := make(map[uint32]struct{}, len(r.pending)+len(r.skipped))
	for streamID := range r.pending {
		streams[streamID] = struct{}{}
	}
	for streamID := range r.skipped {
		streams[streamID] = struct{}{}
	}

	var out []Result
	for streamID := range streams {
		buf := r.pending[streamID]
		skipped := r.skipped[streamID]
		next := r.nextSeq[streamID]
		for {
			if res, ok := buf[next]; ok {
				out = append(out, res)
				delete(buf, next)
				next++
				continue
			}
			if _, ok := skipped[next]; ok {
				delete(skipped, next)
				next++
				continue
			}
			break
		}
		r.nextSeq[streamID] = next
	}
	return out
}
