// Package track implements the per-motion-class lane allocator (C4).
//
// A Table assigns each incoming comment a lane index such that concurrent
// comments of the same motion class never visually overlap on screen. Scroll
// lanes are freed by a closed-form "free_after_ms" formula derived from
// relative speed; top/bottom lanes are freed purely by comment lifetime.
//
// Admission requires non-decreasing spawn times per stream (see worker),
// matching the ordering guarantee in SPEC_FULL.md §5.
package track
