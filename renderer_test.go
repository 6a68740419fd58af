package danmaku

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/flyingtext/danmaku/render"
	"github.com/flyingtext/danmaku/text"
	"github.com/flyingtext/danmaku/track"
)

// loadTestFace loads the embedded Go font for use as a Config.Face in
// tests, the same fixture text/face_test.go uses.
func loadTestFace(t *testing.T) text.Face {
	t.Helper()
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() { _ = source.Close() })
	return source.Face(16.0)
}

func newTestRenderer(t *testing.T, screenWidth, screenHeight uint32) *Renderer {
	t.Helper()
	cfg := DefaultConfig(screenWidth, screenHeight)
	cfg.Face = loadTestFace(t)
	cfg.WorkerCount = 0 // synchronous rasterization for deterministic tests
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// TestSingleScrollCommentPlacement covers end-to-end scenario 1: a scroll
// comment's lane speed and screen position follow the closed-form formula
// track.admitScroll uses, evaluated here through the public API. The
// numeric clip-space placements scenario 1 specifies (x=1.0 at t=0, x≈
// -0.104 at t=4000, x=-1.0 at t=8000) are covered directly against the C6
// formula by render.TestScrollQuadRectMatchesScenario1; this test checks
// that Push/Render feed that formula the record scenario 1 expects.
func TestSingleScrollCommentPlacement(t *testing.T) {
	r := newTestRenderer(t, 1920, 1080)

	r.Push(Comment{
		ID:          1,
		SpawnTimeMs: 0,
		StreamID:    1,
		Text:        "hello",
		Motion:      Scroll,
		Color:       RGB(1, 1, 1),
	})

	target := render.NewPixmapTarget(1920, 1080)
	if err := r.Render(0, target); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if r.buf.Len() != 1 {
		t.Fatalf("expected 1 live instance, got %d", r.buf.Len())
	}

	rec := r.buf.Records()[0]
	if rec.Motion != uint32(Scroll) {
		t.Fatalf("expected scroll motion, got %d", rec.Motion)
	}
	if rec.Track != 0 {
		t.Fatalf("expected first comment to take lane 0, got %d", rec.Track)
	}
}

// TestLaneReuseTiming covers end-to-end scenario 2's boundary from the host
// API: a 400px-wide comment spawned 1000ms after a 200px-wide one on an
// 1920px/8000ms config must NOT share lane 0 (the free_after_ms bound is
// ~2069ms), landing on lane 1 instead.
func TestLaneReuseTiming(t *testing.T) {
	r := newTestRenderer(t, 1920, 1080)

	// track.Admit is exercised directly here (not through Push/rasterize)
	// since scenario 2 specifies exact widths rather than text that would
	// need to shape to those widths.
	lane0, err := r.tracks.Admit(track.Scroll, 200, 0)
	if err != nil {
		t.Fatalf("first admit: %v", err)
	}
	if lane0 != 0 {
		t.Fatalf("expected first comment on lane 0, got %d", lane0)
	}

	lane1, err := r.tracks.Admit(track.Scroll, 400, 1000)
	if err != nil {
		t.Fatalf("second admit: %v", err)
	}
	if lane1 != 1 {
		t.Fatalf("expected second comment to land on a new lane (1), got %d", lane1)
	}
}

// TestTopMotionCentering covers end-to-end scenario 3: on a 1000px-wide
// screen, a top comment is assigned track 0 and its on-screen placement is
// horizontally centered by the renderer's C6 backend, not stored as an
// explicit offset in the instance record.
func TestTopMotionCentering(t *testing.T) {
	r := newTestRenderer(t, 1000, 600)

	idx, err := r.tracks.Admit(track.Top, 300, 0)
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected the first top comment to take track 0, got %d", idx)
	}
}

// TestFrameCompactDropsExpiredComments covers end-to-end scenario 6: at
// t=10000 with lifetime=8000, comments spawned at t<=2000 are absent from
// the instance buffer and their atlas entries are unpinned.
func TestFrameCompactDropsExpiredComments(t *testing.T) {
	r := newTestRenderer(t, 1920, 1080) // DefaultConfig's LifetimeMs is 8000

	r.Push(Comment{ID: 1, SpawnTimeMs: 1000, StreamID: 1, Text: "old", Motion: Scroll, Color: RGB(1, 1, 1)})
	r.Push(Comment{ID: 2, SpawnTimeMs: 9000, StreamID: 1, Text: "new", Motion: Scroll, Color: RGB(1, 1, 1)})

	target := render.NewPixmapTarget(1920, 1080)
	if err := r.Render(10000, target); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if r.buf.Len() != 1 {
		t.Fatalf("expected 1 live instance after compact, got %d", r.buf.Len())
	}
	if _, pinned := r.pins[1]; pinned {
		t.Fatalf("expired comment 1 should have been unpinned")
	}
	if _, pinned := r.pins[2]; !pinned {
		t.Fatalf("live comment 2 should still be pinned")
	}
}
