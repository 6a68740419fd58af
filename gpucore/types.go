package gpucore

// InstanceRecord mirrors instance.Record's layout for the CPU-GPU transfer
// boundary: one instanced-draw vertex input per live comment, matching the
// wire contract in SPEC_FULL.md §6. gpucore does not import the instance
// package (that would reintroduce the cycle the Renderer avoids), so the
// draw pipeline re-declares the same field layout here; render.GPURenderer
// copies each instance.Record into an InstanceRecord field by field, and
// the two layouts are kept in sync by hand.
type InstanceRecord struct {
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

// FrameUniforms is the per-frame uniform block bound at draw time: the
// clock used to evaluate each instance's closed-form motion, the viewport
// size for the scroll/static position formulas, and the global composite
// opacity applied in C6's copy pass.
type FrameUniforms struct {
	NowMs          uint32
	ViewportWidth  uint32
	ViewportHeight uint32
	LifetimeMs     uint32
	Opacity        float32
	Padding1       float32
	Padding2       float32
	Padding3       float32
}
