// Package instance implements the GPU instance buffer assembler (C5).
//
// A Buffer maintains a growable, spawn-time-ordered array of Record values
// mirroring the renderer's LiveComments. Because all per-frame motion is a
// closed-form function of (time, motion, track, line_width), Compact is the
// only per-frame CPU work: it drops expired records and reports their IDs
// so the caller can release the corresponding atlas entries.
package instance

import "math"

// Record is the GPU-visible instance record, bit-exact with the wire
// contract in SPEC_FULL.md §6: time_ms u32, motion u32, track u32,
// line_width_px u32, offset_xy i32x2, atlas_uv u32x2, color f32x3.
//
// Field order and types must not change without updating the shader that
// consumes this layout.
type Record struct {
	TimeMs      uint32
	Motion      uint32
	Track       uint32
	LineWidthPx uint32
	OffsetX     int32
	OffsetY     int32
	AtlasU      uint32
	AtlasV      uint32
	ColorR      float32
	ColorG      float32
	ColorB      float32
}

// entry pairs a Record with the comment ID it was pushed for, so Compact
// can report which IDs expired without the Buffer knowing anything about
// atlas entries or Comments.
type entry struct {
	id     uint64
	spawn  uint32
	record Record
}

// Buffer holds live instance records ordered by spawn time.
type Buffer struct {
	entries []entry
}

// New creates an empty instance buffer.
func New() *Buffer {
	return &Buffer{}
}

// Push appends a record for comment id, spawned at spawnMs. Records must be
// pushed in non-decreasing spawn-time order (the same invariant the track
// allocator enforces on admission), so Buffer never needs to re-sort.
func (b *Buffer) Push(id uint64, spawnMs uint32, rec Record) {
	b.entries = append(b.entries, entry{id: id, spawn: spawnMs, record: rec})
}

// Len returns the number of live records.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Records returns the live records in spawn-time order, ready for upload.
// The returned slice is a fresh copy; later Push or Compact calls do not
// change it.
func (b *Buffer) Records() []Record {
	out := make([]Record, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.record
	}
	return out
}

// Compact drops every record whose comment has expired as of nowMs
// (spawnMs + lifetimeMs <= nowMs), returning the expired comment IDs so the
// caller can unpin their atlas entries. Compact is idempotent: calling it
// again with the same nowMs returns an empty slice.
func (b *Buffer) Compact(nowMs, lifetimeMs uint32) []uint64 {
	var expired []uint64
	live := b.entries[:0]
	for _, e := range b.entries {
		if e.spawn+lifetimeMs <= nowMs {
			expired = append(expired, e.id)
			continue
		}
		live = append(live, e)
	}
	b.entries = live
	return expired
}

// ColorToSRGB gamma-corrects a linear 0..255 color channel triple into the
// sRGB-ish space the fragment shader multiplies glyph alpha by, matching
// the reference renderer's vertex-stage color conversion (gamma 2.2).
func ColorToSRGB(r, g, b uint8) (cr, cg, cb float32) {
	const gamma = 2.2
	cr = float32(math.Pow(float64(r)/255, gamma))
	cg = float32(math.Pow(float64(g)/255, gamma))
	cb = float32(math.Pow(float64(b)/255, gamma))
	return
}
