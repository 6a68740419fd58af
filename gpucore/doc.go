// Package gpucore describes the single-instanced-draw wire contract for the
// danmaku frame renderer (C6): [InstanceRecord], [FrameUniforms], and the
// [DrawPipeline] that stages and validates a frame's instances ahead of
// submission.
//
// # Single instanced draw
//
// Because every live comment's on-screen position is a closed-form
// function of (time, motion, track, line_width) evaluated in the vertex
// shader, [DrawPipeline] has no flatten/coarse/fine staging: a full build
// would upload the instance buffer and frame uniforms once per frame, then
// issue a single draw call covering every live instance.
//
// # Phase 1
//
// No backend adapter is wired up yet — [DrawPipeline.Execute] validates the
// instance set against the pipeline's configured capacity and reports how
// many instances it accepted, without issuing any GPU commands.
// render.GPURenderer calls it this way for targets without CPU pixels and
// then returns an error for them, since nothing submits the staged
// instances; CPU targets skip the pipeline. render.SoftwareRenderer remains
// the only renderer that actually produces pixels.
package gpucore
