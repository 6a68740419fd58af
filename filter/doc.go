// Package filter implements C7: a short-circuiting predicate chain applied
// to a Comment before it reaches the track allocator.
//
// A Chain runs each Predicate in order and rejects on the first true
// result, matching the original implementation's DanmakuFilter/MergeFilter
// trait (original_source/src/filter/mod.rs, merge.rs): "is_filtered"
// there means "exclude", same as Predicate.Reject here.
package filter
