package gpucore

import (
	"fmt"
	"sync"
)

// PipelineConfig configures a DrawPipeline.
type PipelineConfig struct {
	// Width is the viewport width in pixels.
	Width int

	// Height is the viewport height in pixels.
	Height int

	// MaxInstances bounds the instance buffer's upload size. If 0,
	// defaults to 4096.
	MaxInstances int
}

// DrawPipeline stages and validates the single instanced draw that renders
// all live comments for a frame (C6): a full build would upload the
// instance buffer and frame uniforms, then issue one draw covering every
// instance, followed optionally by a full-screen copy pass applying global
// opacity.
//
// No backend is wired up yet (Phase 1): Execute validates the instance set
// and reports how many instances it accepted, without issuing GPU commands.
// render.GPURenderer calls it for every texture target before reporting
// that GPU submission itself isn't implemented, so the staging logic here
// runs on the live path rather than only from tests.
type DrawPipeline struct {
	mu sync.Mutex

	config PipelineConfig

	initialized bool
}

// NewDrawPipeline creates a new draw pipeline for the given viewport.
func NewDrawPipeline(config *PipelineConfig) (*DrawPipeline, error) {
	if config == nil {
		return nil, fmt.Errorf("gpucore: config is required")
	}
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("gpucore: invalid viewport size: %dx%d", config.Width, config.Height)
	}

	cfg := *config
	if cfg.MaxInstances <= 0 {
		cfg.MaxInstances = 4096
	}

	p := &DrawPipeline{config: cfg}
	p.initialized = true

	return p, nil
}

// Execute validates instances against the pipeline's configured capacity
// and returns the number of instances it accepted. uniforms is accepted for
// the same reason: a full build would bind it alongside the instance
// buffer at draw time.
func (p *DrawPipeline) Execute(instances []InstanceRecord, uniforms FrameUniforms) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0, fmt.Errorf("gpucore: pipeline not initialized")
	}
	if len(instances) > p.config.MaxInstances {
		return 0, fmt.Errorf("gpucore: %d instances exceeds MaxInstances %d", len(instances), p.config.MaxInstances)
	}

	_ = uniforms

	return len(instances), nil
}

// Resize updates the pipeline for a new viewport size.
func (p *DrawPipeline) Resize(width, height int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return fmt.Errorf("gpucore: invalid viewport size: %dx%d", width, height)
	}

	p.config.Width = width
	p.config.Height = height
	return nil
}

// UseGPU reports whether the pipeline issues real GPU commands. Always
// false until a backend adapter is implemented.
func (p *DrawPipeline) UseGPU() bool {
	return false
}

// Config returns a copy of the pipeline configuration.
func (p *DrawPipeline) Config() PipelineConfig {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.config
}

// IsInitialized returns whether the pipeline is initialized.
func (p *DrawPipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Destroy releases the pipeline's resources.
func (p *DrawPipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initialized = false
}
