// Package worker implements C8: a fixed-size goroutine pool that offloads
// C1 rasterization off the render-owning goroutine, grounded on
// original_source/src/worker.rs's request/response queue.
//
// Unlike the original's single background thread driving a triple-buffered
// time-chunk provider, Pool fans rasterization requests out across a fixed
// number of goroutines and uses a small ordered-reassembly buffer keyed by
// per-stream sequence number to restore the monotonic delivery order C4's
// scroll-lane formula requires (SPEC_FULL.md §4.8). A request whose
// rasterization exceeds its deadline is cancelled and dropped, never
// re-enqueued (Open Question 2's drop-and-forget decision, see DESIGN.md).
package worker
