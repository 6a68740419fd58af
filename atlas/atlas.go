// Package atlas implements the shelf-packed glyph/comment texture cache
// (C2) and its shadow companion (C3).
//
// An Atlas interns rasterized bitmaps into shelf-packed rectangles, pins
// them for the duration of their referencing LiveComments, and evicts
// unpinned entries in LRU order, subject to a grace window, when sweep is
// asked to make room. Residency gates track admission (SPEC_FULL.md §5):
// a comment is never admitted to a lane before its bitmap is resident.
package atlas

import (
	"errors"
	"log/slog"
)

// ErrFull is returned by Intern when no rectangle can be freed for a new
// entry, even after a sweep.
var ErrFull = errors.New("atlas: full")

// Rect is an entry's placement within the atlas texture.
type Rect struct {
	U, V, W, H uint32
}

// Bitmap is the rasterized payload handed to Intern. Atlas does not
// interpret Pixels beyond its dimensions; C1 (text package) produces it.
type Bitmap struct {
	Pixels        []byte
	Width, Height int
}

// Entry is a resident atlas record: a glyph rect plus its shadow
// companion rect, reference-counted by live uses.
type Entry struct {
	Rect       Rect
	ShadowRect Rect

	refs          int
	lastUsedFrame uint64
	width, height int
}

// Config parameterizes an Atlas.
type Config struct {
	Width, Height int
	Padding       int

	// GraceFrames is the minimum idle time, in frames, before an unpinned
	// entry becomes evictable.
	GraceFrames uint64

	// LowWaterMark stops Sweep once this many free bytes (approximated as
	// texture area minus used area) are available.
	LowWaterMark int

	// ShadowWidth and ShadowWeight parameterize the radial-falloff shadow
	// built for every interned entry (see BuildShadow).
	ShadowWidth  int
	ShadowWeight float32

	Logger *slog.Logger
}

// key identifies a cached bitmap by its content identity. Callers (the
// Renderer) own the mapping from comment text/style to key; Atlas itself
// is content-addressed only by this opaque value.
type key uint64

type lruEntry struct {
	k    key
	e    *Entry
	prev *lruEntry
	next *lruEntry
}

// Atlas is the resident bitmap cache for one texture (glyph atlas). Its
// shadow companion is a parallel texture of identical geometry.
type Atlas struct {
	cfg Config

	shelves *shelfAllocator
	shadow  *shelfAllocator

	entries map[key]*lruEntry
	head    *lruEntry // most recently used
	tail    *lruEntry // least recently used

	// freeRects and freeShadowRects hold rectangles reclaimed by Sweep,
	// keyed by exact (w, h) so a same-sized re-intern can reuse a slot
	// without re-running the shelf allocator.
	freeRects       map[[2]int][]Rect
	freeShadowRects map[[2]int][]Rect

	usedArea int
}

// New creates an Atlas with an empty shelf-packed texture.
func New(cfg Config) *Atlas {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Atlas{
		cfg:       cfg,
		shelves:   newShelfAllocator(cfg.Width, cfg.Height, cfg.Padding),
		shadow:    newShelfAllocator(cfg.Width, cfg.Height, cfg.Padding),
		entries:         make(map[key]*lruEntry),
		freeRects:       make(map[[2]int][]Rect),
		freeShadowRects: make(map[[2]int][]Rect),
	}
}

// Intern returns the resident Entry for k, allocating and uploading bm (via
// upload) if it is not already cached. currentFrame marks the entry fresh.
// upload is called with the glyph rect and the shadow rect once both are
// allocated; it is the caller's hook to actually write pixels into the GPU
// texture (Atlas itself only manages rectangle bookkeeping).
func (a *Atlas) Intern(k uint64, bm Bitmap, currentFrame uint64, upload func(glyph, shadow Rect)) (*Entry, error) {
	kk := key(k)
	if le, ok := a.entries[kk]; ok {
		le.e.lastUsedFrame = currentFrame
		a.touch(le)
		return le.e, nil
	}

	glyphRect, ok := a.allocate(bm.Width, bm.Height)
	if !ok {
		a.Sweep(currentFrame)
		glyphRect, ok = a.allocate(bm.Width, bm.Height)
		if !ok {
			return nil, ErrFull
		}
	}

	shadowRect, ok := a.allocateShadow(bm.Width, bm.Height)
	if !ok {
		a.Sweep(currentFrame)
		shadowRect, ok = a.allocateShadow(bm.Width, bm.Height)
		if !ok {
			return nil, ErrFull
		}
	}

	e := &Entry{
		Rect:          glyphRect,
		ShadowRect:    shadowRect,
		lastUsedFrame: currentFrame,
		width:         bm.Width,
		height:        bm.Height,
	}
	le := &lruEntry{k: kk, e: e}
	a.entries[kk] = le
	a.pushFront(le)

	if upload != nil {
		upload(glyphRect, shadowRect)
	}

	a.cfg.Logger.Debug("atlas: interned", "key", k, "w", bm.Width, "h", bm.Height)
	return e, nil
}

func (a *Atlas) allocate(w, h int) (Rect, bool) {
	if r, ok := takeFreeRect(a.freeRects, w, h); ok {
		return r, true
	}
	x, y, ok := a.shelves.allocate(w, h)
	if !ok {
		return Rect{}, false
	}
	return Rect{U: uint32(x), V: uint32(y), W: uint32(w), H: uint32(h)}, true
}

func (a *Atlas) allocateShadow(w, h int) (Rect, bool) {
	if r, ok := takeFreeRect(a.freeShadowRects, w, h); ok {
		return r, true
	}
	x, y, ok := a.shadow.allocate(w, h)
	if !ok {
		return Rect{}, false
	}
	return Rect{U: uint32(x), V: uint32(y), W: uint32(w), H: uint32(h)}, true
}

func takeFreeRect(free map[[2]int][]Rect, w, h int) (Rect, bool) {
	sz := [2]int{w, h}
	rs := free[sz]
	if len(rs) == 0 {
		return Rect{}, false
	}
	r := rs[len(rs)-1]
	free[sz] = rs[:len(rs)-1]
	return r, true
}

// Pin increments an entry's reference count, making it ineligible for
// eviction until a matching Unpin.
func (a *Atlas) Pin(e *Entry) {
	e.refs++
}

// Unpin decrements an entry's reference count. An entry at refs==0 is
// eligible for eviction once GraceFrames have elapsed since lastUsedFrame.
func (a *Atlas) Unpin(e *Entry) {
	if e.refs > 0 {
		e.refs--
	}
}

// Sweep evicts unpinned, grace-expired entries in LRU order until the free
// area reaches LowWaterMark. A LowWaterMark of zero means "evict exactly
// one entry if possible" — the minimal reclaim needed before Intern
// retries its allocation.
func (a *Atlas) Sweep(currentFrame uint64) {
	for {
		victim := a.tail
		for victim != nil && (victim.e.refs > 0 || currentFrame-victim.e.lastUsedFrame < a.cfg.GraceFrames) {
			victim = victim.prev
		}
		if victim == nil {
			return
		}
		a.evict(victim)
		if a.cfg.LowWaterMark == 0 || a.freeBytesApprox() >= a.cfg.LowWaterMark {
			return
		}
	}
}

func (a *Atlas) evict(le *lruEntry) {
	delete(a.entries, le.k)
	a.unlink(le)

	sz := [2]int{le.e.width, le.e.height}
	a.freeRects[sz] = append(a.freeRects[sz], le.e.Rect)
	a.freeShadowRects[sz] = append(a.freeShadowRects[sz], le.e.ShadowRect)
	a.cfg.Logger.Debug("atlas: evicted", "key", uint64(le.k))
}

func (a *Atlas) freeBytesApprox() int {
	total := a.cfg.Width * a.cfg.Height
	return total - a.shelves.usedArea
}

// --- intrusive LRU list ---

func (a *Atlas) pushFront(le *lruEntry) {
	le.prev = nil
	le.next = a.head
	if a.head != nil {
		a.head.prev = le
	}
	a.head = le
	if a.tail == nil {
		a.tail = le
	}
}

func (a *Atlas) touch(le *lruEntry) {
	if a.head == le {
		return
	}
	a.unlink(le)
	a.pushFront(le)
}

func (a *Atlas) unlink(le *lruEntry) {
	if le.prev != nil {
		le.prev.next = le.next
	} else if a.head == le {
		a.head = le.next
	}
	if le.next != nil {
		le.next.prev = le.prev
	} else if a.tail == le {
		a.tail = le.prev
	}
	le.prev, le.next = nil, nil
}
