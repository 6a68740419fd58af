// Package atlas implements the residency-managed glyph/comment texture
// cache (C2) and its shadow builder (C3).
//
// Allocation is grounded on shelf packing: rectangles are placed into
// horizontal shelves of dynamic height, first-fit. Eviction is LRU among
// unpinned entries, gated by a grace window to avoid churn on repeated
// text. Shadows are precomputed at intern time using a radial max-falloff,
// not a Gaussian blur, so shadow cost is paid once per cache entry rather
// than once per frame.
package atlas
