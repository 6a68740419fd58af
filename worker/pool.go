package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Request is one rasterization job submitted to the pool. Seq is a
// monotonic per-stream counter assigned by the caller (the Renderer),
// used to restore delivery order regardless of which goroutine finishes
// first.
type Request struct {
	StreamID    uint32
	Seq         uint64
	SpawnTimeMs uint32
	Payload     any
}

// Result is a completed rasterization, ready for the frame owner to drain
// in order and hand to C4.admit.
type Result struct {
	StreamID    uint32
	Seq         uint64
	SpawnTimeMs uint32
	Output      any
}

// RasterizeFunc performs C1 for a single request. Pool does not import the
// text or atlas packages directly — the Renderer supplies the closure that
// turns a Request's payload into a coverage bitmap with the text package
// (atlas admission happens later, when the frame owner drains results),
// keeping worker's layout self-contained like track, atlas and instance.
type RasterizeFunc func(ctx context.Context, req Request) (any, error)

// Pool is a fixed-size goroutine pool draining a shared request channel,
// grounded on original_source/src/worker.rs's background worker thread —
// generalized from one thread to N, since Go's goroutines make fan-out as
// cheap as the single-worker case the original used.
type Pool struct {
	rasterize RasterizeFunc
	deadline  time.Duration
	logger    *slog.Logger

	reqCh chan Request
	done  chan struct{}
	wg    sync.WaitGroup

	reassembler *reassembler
}

// New starts a pool of workerCount goroutines. deadline bounds a single
// request's rasterization time via context.WithTimeout; zero disables the
// deadline. A nil logger discards output.
func New(workerCount int, deadline time.Duration, rasterize RasterizeFunc, logger *slog.Logger) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Pool{
		rasterize:   rasterize,
		deadline:    deadline,
		logger:      logger,
		reqCh:       make(chan Request, workerCount*4),
		done:        make(chan struct{}),
		reassembler: newReassembler(),
	}

	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.runWorker()
	}
	return p
}

func (p *Pool) runWorker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case req := <-p.reqCh:
			p.process(req)
		}
	}
}

func (p *Pool) process(req Request) {
	ctx := context.Background()
	if p.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.deadline)
		defer cancel()
	}

	out, err := p.rasterize(ctx, req)
	if err != nil {
		// Open Question 2 (DESIGN.md): drop-and-forget. A cancelled or
		// failed request is never re-enqueued, but its seq is tombstoned
		// so the reassembler doesn't wait on it forever and stall every
		// later comment on this stream.
		if errors.Is(err, context.DeadlineExceeded) {
			p.logger.Warn("rasterization deadline exceeded, dropping comment",
				"stream", req.StreamID, "seq", req.Seq)
		} else {
			p.logger.Warn("rasterization failed, dropping comment",
				"stream", req.StreamID, "seq", req.Seq, "error", err)
		}
		p.reassembler.skip(req.StreamID, req.Seq)
		return
	}

	p.reassembler.offer(Result{
		StreamID:    req.StreamID,
		Seq:         req.Seq,
		SpawnTimeMs: req.SpawnTimeMs,
		Output:      out,
	})
}

// Submit enqueues a rasterization request. Safe to call from any
// goroutine (SPEC_FULL.md §4.9's Push contract).
func (p *Pool) Submit(req Request) {
	p.reqCh <- req
}

// Drain returns every result now contiguous with its stream's last-drained
// sequence number, in the order the frame owner should feed them to
// C4.admit. Call once per frame, before admitting any comment.
func (p *Pool) Drain() []Result {
	return p.reassembler.drain()
}

// Close stops accepting new work and waits for in-flight requests to
// finish or hit their deadline.
func (p *Pool) Close() {
	close(p.done)
	p.wg.Wait()
}
