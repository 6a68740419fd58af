package danmaku

import (
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/flyingtext/danmaku/atlas"
	"github.com/flyingtext/danmaku/filter"
	"github.com/flyingtext/danmaku/gpucore"
	"github.com/flyingtext/danmaku/instance"
	"github.com/flyingtext/danmaku/render"
	"github.com/flyingtext/danmaku/text"
	"github.com/flyingtext/danmaku/track"
	"github.com/flyingtext/danmaku/worker"
)

// Renderer is the host-facing facade (C9): it owns the atlas (C2), the
// track tables (C4), the instance buffer (C5), the rasterization worker
// pool (C8) and a C6 frame-render backend. It does not own a GPU device —
// the device handle, if any, is received through Config, never created.
type Renderer struct {
	cfg  Config
	face text.Face

	filterChain *filter.Chain
	tracks      *track.Table
	atlas       *atlas.Atlas
	buf         *instance.Buffer
	pool        *worker.Pool
	backend     render.Renderer

	mu          sync.Mutex
	pins        map[uint64]*atlas.Entry
	seqByStream map[uint32]uint64
	frame       uint64

	// glyphTexture and shadowTexture are the CPU-side backing stores for
	// C2/C3's shelf-packed rectangles. atlas.Atlas only tracks geometry;
	// the Renderer is the owner of the actual pixels, written in the
	// Intern upload callback and read back in Render to build a Frame.
	glyphTexture, shadowTexture []byte
}

// rasterizedJob pairs a rasterized bitmap with the Comment it came from,
// so Render can admit a worker-pool result without re-deriving fields the
// worker.Request didn't carry (ID, Motion, Color).
type rasterizedJob struct {
	Comment Comment
	RC      RasterizedComment
}

// NewRenderer validates cfg and wires up C2/C4/C5/C6/C8. If
// cfg.WorkerCount is zero, Push rasterizes synchronously instead of
// offloading to C8.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:         cfg,
		face:        cfg.Face,
		filterChain: cfg.FilterChain,
		pins:        make(map[uint64]*atlas.Entry),
		seqByStream: make(map[uint32]uint64),
	}

	r.tracks = track.New(track.Config{
		ScreenWidthPx:   float64(cfg.ScreenWidth),
		LifetimeMs:      cfg.LifetimeMs,
		MaxTracksScroll: cfg.MaxTracksScroll,
		MaxTracksTop:    cfg.MaxTracksTop,
		MaxTracksBottom: cfg.MaxTracksBottom,
		Logger:          Logger(),
	})

	r.atlas = atlas.New(atlas.Config{
		Width:        int(cfg.AtlasWidth),
		Height:       int(cfg.AtlasHeight),
		Padding:      1,
		GraceFrames:  uint64(cfg.AtlasGraceFrames),
		LowWaterMark: int(cfg.AtlasLowWaterMark),
		ShadowWidth:  int(cfg.ShadowWidth),
		ShadowWeight: cfg.ShadowWeight,
		Logger:       Logger(),
	})

	r.buf = instance.New()
	r.glyphTexture = make([]byte, int(cfg.AtlasWidth)*int(cfg.AtlasHeight))
	r.shadowTexture = make([]byte, int(cfg.AtlasWidth)*int(cfg.AtlasHeight))

	if cfg.WorkerCount > 0 {
		deadline := time.Duration(cfg.ShapeDeadlineMs) * time.Millisecond
		r.pool = worker.New(cfg.WorkerCount, deadline, r.rasterize, Logger())
	}

	handle := cfg.DeviceHandle
	if handle == nil {
		handle = render.NullDeviceHandle{}
	}
	pipeline, err := gpucore.NewDrawPipeline(&gpucore.PipelineConfig{
		Width:  int(cfg.ScreenWidth),
		Height: int(cfg.ScreenHeight),
	})
	if err != nil {
		return nil, fmt.Errorf("danmaku: build draw pipeline: %w", err)
	}
	gpuRenderer, err := render.NewGPURenderer(handle, pipeline)
	if err != nil {
		return nil, fmt.Errorf("danmaku: build render backend: %w", err)
	}
	r.backend = gpuRenderer

	return r, nil
}

// Push runs comment through C7, then either rasterizes it synchronously
// or enqueues it to C8 depending on Config.WorkerCount. Safe to call from
// any goroutine.
func (r *Renderer) Push(c Comment) {
	if r.filterChain != nil && !r.filterChain.Accept(filter.Comment{
		Text:        c.Text,
		FontSizePx:  c.FontSizePx,
		SpawnTimeMs: c.SpawnTimeMs,
	}) {
		Logger().Debug("comment rejected by filter chain", "stream", c.StreamID)
		return
	}

	req := worker.Request{
		StreamID:    c.StreamID,
		Seq:         r.nextSeq(c.StreamID),
		SpawnTimeMs: c.SpawnTimeMs,
		Payload:     c,
	}

	if r.pool != nil {
		r.pool.Submit(req)
		return
	}

	out, err := r.rasterize(context.Background(), req)
	if err != nil {
		Logger().Warn("rasterization failed, dropping comment", "error", err)
		return
	}

	job := out.(rasterizedJob)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admit(job.Comment, job.RC)
}

func (r *Renderer) nextSeq(streamID uint32) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := r.seqByStream[streamID]
	r.seqByStream[streamID] = seq + 1
	return seq
}

// rasterize implements C1 for one request: shape the comment's text with
// Config.Face and rasterize it into a single-channel coverage bitmap via
// text.Draw, the same whole-string font.Drawer blit the teacher's draw.go
// uses for on-screen text.
func (r *Renderer) rasterize(ctx context.Context, req worker.Request) (any, error) {
	c := req.Payload.(Comment)
	if c.Text == "" {
		return nil, ErrShapeError
	}
	if r.face == nil {
		return nil, ErrFontUnavailable
	}

	width, _ := text.Measure(c.Text, r.face)
	metrics := r.face.Metrics()
	height := metrics.LineHeight()

	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty bitmap for text %q", ErrShapeError, c.Text)
	}

	canvas := image.NewAlpha(image.Rect(0, 0, w, h))
	text.Draw(canvas, c.Text, r.face, 0, metrics.Ascent, color.Opaque)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return rasterizedJob{
		Comment: c,
		RC: RasterizedComment{
			Bitmap:     canvas.Pix,
			Width:      w,
			Height:     h,
			BaselinePx: metrics.Ascent,
			AdvancePx:  width,
		},
	}, nil
}

// blitInto copies a w*h coverage bitmap into tex, a flat AtlasWidth*AtlasHeight
// buffer, at the sub-region described by rect. rect's width/height always
// match w/h since both came from the same Intern call.
func (r *Renderer) blitInto(tex []byte, rect atlas.Rect, bitmap []byte, w, h int) {
	stride := int(r.cfg.AtlasWidth)
	for row := 0; row < h; row++ {
		srcOff := row * w
		dstOff := (int(rect.V)+row)*stride + int(rect.U)
		copy(tex[dstOff:dstOff+w], bitmap[srcOff:srcOff+w])
	}
}

// admit interns rc into the atlas, allocates a track via C4, and pushes
// the resulting instance record into C5. Caller must hold r.mu.
func (r *Renderer) admit(c Comment, rc RasterizedComment) {
	shadowBitmap := atlas.BuildShadow(rc.Bitmap, rc.Width, rc.Height, int(r.cfg.ShadowWidth), r.cfg.ShadowWeight)
	contentKey := fnv.New64a()
	fmt.Fprintf(contentKey, "%s\x00%g\x00%d", c.Text, c.FontSizePx, c.StyleFlags)
	entry, err := r.atlas.Intern(contentKey.Sum64(), atlas.Bitmap{
		Pixels: rc.Bitmap,
		Width:  rc.Width,
		Height: rc.Height,
	}, r.frame, func(glyph, shadow atlas.Rect) {
		r.blitInto(r.glyphTexture, glyph, rc.Bitmap, rc.Width, rc.Height)
		r.blitInto(r.shadowTexture, shadow, shadowBitmap, rc.Width, rc.Height)
	})
	if err != nil {
		Logger().Warn("atlas intern failed, dropping comment", "error", err)
		return
	}
	r.atlas.Pin(entry)

	trackIdx, err := r.tracks.Admit(track.Motion(c.Motion), rc.AdvancePx, c.SpawnTimeMs)
	if err != nil {
		r.atlas.Unpin(entry)
		Logger().Warn("no track available, dropping comment", "error", err)
		return
	}

	cr, cg, cb := instance.ColorToSRGB(
		uint8(clamp255(c.Color.R*255)),
		uint8(clamp255(c.Color.G*255)),
		uint8(clamp255(c.Color.B*255)),
	)

	r.pins[c.ID] = entry
	r.buf.Push(c.ID, c.SpawnTimeMs, instance.Record{
		TimeMs:      c.SpawnTimeMs,
		Motion:      uint32(c.Motion),
		Track:       trackIdx,
		LineWidthPx: uint32(math.Round(rc.AdvancePx)),
		OffsetX:     0,
		OffsetY:     0,
		AtlasU:      entry.Rect.U,
		AtlasV:      entry.Rect.V,
		ColorR:      cr,
		ColorG:      cg,
		ColorB:      cb,
	})
}

// Render drains C8's reassembly buffer, admits every comment it yields in
// order, compacts C5, sweeps C2, and draws the live instance set to
// target for the given presentation time.
func (r *Renderer) Render(nowMs uint32, target render.RenderTarget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pool != nil {
		for _, res := range r.pool.Drain() {
			job := res.Output.(rasterizedJob)
			r.admit(job.Comment, job.RC)
		}
	}

	expired := r.buf.Compact(nowMs, r.cfg.LifetimeMs)
	for _, id := range expired {
		if entry, ok := r.pins[id]; ok {
			r.atlas.Unpin(entry)
			delete(r.pins, id)
		}
	}

	r.frame++
	r.atlas.Sweep(r.frame)

	frame := render.Frame{
		Records:        r.buf.Records(),
		NowMs:          nowMs,
		LifetimeMs:     r.cfg.LifetimeMs,
		LineHeightPx:   r.cfg.LineHeightPx,
		ViewportWidth:  r.cfg.ScreenWidth,
		ViewportHeight: r.cfg.ScreenHeight,
		Opacity:        r.cfg.Opacity,
		GlyphAtlas:     r.glyphTexture,
		ShadowAtlas:    r.shadowTexture,
		AtlasWidth:     int(r.cfg.AtlasWidth),
		AtlasHeight:    int(r.cfg.AtlasHeight),
	}

	if err := r.backend.Render(target, frame); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceLost, err)
	}
	return nil
}

// Resize updates the viewport used by C4's scroll-speed formula and C6's
// uniforms. Per spec.md §4.6, this never tears down the atlas: atlas
// coordinates are independent of screen size.
func (r *Renderer) Resize(w, h uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg.ScreenWidth = w
	r.cfg.ScreenHeight = h
	r.tracks.SetScreenWidth(float64(w))
	return ErrSurfaceResized
}

// Close releases the worker pool. It does not own a GPU device, so there
// is nothing else to release.
func (r *Renderer) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}
	return nil
}
