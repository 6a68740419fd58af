package track

import (
	"errors"
	"log/slog"
)

// ErrNoTrack is returned by Table.Admit when every lane is occupied and the
// motion class's track pool is already at MaxTracks capacity.
var ErrNoTrack = errors.New("track: no lane available")

// Motion mirrors danmaku.Motion's encoding without importing the root
// package (track has no dependency on danmaku's types; the Renderer
// translates between them).
type Motion uint32

const (
	Scroll Motion = 0
	Top    Motion = 1
	Bottom Motion = 2
)

// lane is a single row reserved for one motion class. For scroll lanes,
// speed and widthPx describe the *occupant* comment, so a later admit can
// evaluate spec.md §4.4's free_after_ms test against it.
type lane struct {
	occupied bool
	spawnMs  uint32
	widthPx  float64
	speed    float64 // px/ms, scroll lanes only
}

// Config parameterizes a Table. ScreenWidthPx and LifetimeMs drive the
// scroll-lane free-time formula from spec.md §4.4.
type Config struct {
	ScreenWidthPx float64
	LifetimeMs    uint32

	MaxTracksScroll uint32
	MaxTracksTop    uint32
	MaxTracksBottom uint32

	// Logger receives per-admit diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// Table holds the lane state for all three motion classes.
type Table struct {
	cfg Config

	scroll []lane
	top    []lane
	bottom []lane
}

// New creates a Table with empty lane pools; lanes are allocated lazily up
// to each motion class's MaxTracks cap.
func New(cfg Config) *Table {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Table{cfg: cfg}
}

// SetScreenWidth updates the scroll speed formula's screen width. Called by
// Renderer.Resize; unlike the atlas, track state depends on screen size.
func (t *Table) SetScreenWidth(w float64) {
	t.cfg.ScreenWidthPx = w
}

// Admit assigns a lane to a comment of the given motion, width and spawn
// time, enforcing invariant (1) (no on-screen overlap within a lane).
// nowMs must be non-decreasing across calls for the same stream.
func (t *Table) Admit(motion Motion, widthPx float64, nowMs uint32) (uint32, error) {
	switch motion {
	case Scroll:
		return t.admitScroll(widthPx, nowMs)
	case Top:
		return t.admitStatic(&t.top, t.cfg.MaxTracksTop, widthPx, nowMs, false)
	case Bottom:
		return t.admitStatic(&t.bottom, t.cfg.MaxTracksBottom, widthPx, nowMs, true)
	default:
		return 0, ErrNoTrack
	}
}

// admitScroll implements spec.md §4.4: a scroll lane is free for a new
// comment of width w_new once
//
//	now >= t_prev + max(w_prev / v_prev, lifetime_ms * (w_prev+w_new) / (screen_w+w_new))
//
// The first term is when the previous comment's trailing edge clears the
// right screen edge (no catch-up collision); the second is when it has
// moved far enough left that a faster-or-equal new comment entering behind
// it cannot close the gap before lifetime expiry forces both off-screen.
func (t *Table) admitScroll(widthPx float64, nowMs uint32) (uint32, error) {
	for i := range t.scroll {
		l := &t.scroll[i]
		if !l.occupied || t.scrollFreeAfter(l, widthPx) <= nowMs {
			t.occupyScroll(l, uint32(i), widthPx, nowMs)
			return uint32(i), nil
		}
	}

	if uint32(len(t.scroll)) >= t.cfg.MaxTracksScroll {
		t.cfg.Logger.Warn("track: scroll lanes exhausted", "max", t.cfg.MaxTracksScroll)
		return 0, ErrNoTrack
	}

	idx := uint32(len(t.scroll))
	t.scroll = append(t.scroll, lane{})
	t.occupyScroll(&t.scroll[idx], idx, widthPx, nowMs)
	return idx, nil
}

// scrollFreeAfter evaluates the free_after_ms bound for l's occupant against
// a candidate new comment of width newWidthPx.
func (t *Table) scrollFreeAfter(l *lane, newWidthPx float64) uint32 {
	lifetime := float64(t.cfg.LifetimeMs)
	byTrailingEdge := l.widthPx / l.speed
	byHeadStart := lifetime * (l.widthPx + newWidthPx) / (t.cfg.ScreenWidthPx + newWidthPx)
	bound := byTrailingEdge
	if byHeadStart > bound {
		bound = byHeadStart
	}
	return l.spawnMs + uint32(bound)
}

func (t *Table) occupyScroll(l *lane, idx uint32, widthPx float64, nowMs uint32) {
	speed := (t.cfg.ScreenWidthPx + widthPx) / float64(t.cfg.LifetimeMs)

	l.occupied = true
	l.widthPx = widthPx
	l.speed = speed
	l.spawnMs = nowMs
	t.cfg.Logger.Debug("track: scroll lane occupied", "lane", idx, "spawn_ms", nowMs, "width_px", widthPx)
}

// admitStatic implements the top/bottom centered-lane allocator: a lane is
// free once now >= spawn+lifetime. Lane selection picks the lowest free
// index for top, highest for bottom (spec.md §4.4 "Lane selection"), so the
// two motion classes grow their stacks away from each other on screen.
func (t *Table) admitStatic(lanes *[]lane, maxTracks uint32, widthPx float64, nowMs uint32, highestFirst bool) (uint32, error) {
	ls := *lanes

	if highestFirst {
		for i := len(ls) - 1; i >= 0; i-- {
			l := &ls[i]
			if !l.occupied || nowMs >= l.spawnMs+t.cfg.LifetimeMs {
				t.occupyStatic(l, uint32(i), widthPx, nowMs)
				return uint32(i), nil
			}
		}
	} else {
		for i := range ls {
			l := &ls[i]
			if !l.occupied || nowMs >= l.spawnMs+t.cfg.LifetimeMs {
				t.occupyStatic(l, uint32(i), widthPx, nowMs)
				return uint32(i), nil
			}
		}
	}

	if uint32(len(ls)) >= maxTracks {
		return 0, ErrNoTrack
	}

	idx := uint32(len(ls))
	ls = append(ls, lane{})
	*lanes = ls
	t.occupyStatic(&(*lanes)[idx], idx, widthPx, nowMs)
	return idx, nil
}

func (t *Table) occupyStatic(l *lane, idx uint32, widthPx float64, nowMs uint32) {
	l.occupied = true
	l.widthPx = widthPx
	l.spawnMs = nowMs
	t.cfg.Logger.Debug("track: static lane occupied", "lane", idx, "spawn_ms", nowMs)
}

// LaneCount returns the number of lanes a motion class has ever allocated
// (including lanes that are currently free but were previously occupied).
func (t *Table) LaneCount(motion Motion) int {
	switch motion {
	case Scroll:
		return len(t.scroll)
	case Top:
		return len(t.top)
	case Bottom:
		return len(t.bottom)
	default:
		return 0
	}
}
