// Command danmakudemo renders one frame of scrolling and pinned comments,
// at the time given by -at, to a PNG, exercising the library without a GPU
// device.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/flyingtext/danmaku"
	"github.com/flyingtext/danmaku/filter"
	"github.com/flyingtext/danmaku/render"
	"github.com/flyingtext/danmaku/text"
)

func main() {
	var (
		width  = flag.Int("width", 1280, "viewport width")
		height = flag.Int("height", 720, "viewport height")
		atMs   = flag.Uint("at", 4000, "presentation time in milliseconds")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		log.Fatalf("load font: %v", err)
	}
	defer func() { _ = source.Close() }()

	cfg := danmaku.DefaultConfig(uint32(*width), uint32(*height))
	cfg.Face = source.Face(24)
	cfg.FilterChain = filter.NewChain(filter.NewKeywordPredicate("spam"))

	r, err := danmaku.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("new renderer: %v", err)
	}
	defer func() { _ = r.Close() }()

	for _, c := range seedComments() {
		r.Push(c)
	}

	target := render.NewPixmapTarget(*width, *height)
	if err := r.Render(uint32(*atMs), target); err != nil {
		log.Fatalf("render: %v", err)
	}

	f, err := os.Create(*output) //nolint:gosec // output path is user-provided intentionally
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, target.Image()); err != nil {
		log.Fatalf("encode png: %v", err)
	}

	log.Printf("rendered %dx%d at t=%dms to %s\n", *width, *height, *atMs, *output)
}

func seedComments() []danmaku.Comment {
	return []danmaku.Comment{
		{ID: 1, StreamID: 1, SpawnTimeMs: 0, Text: "hello danmaku", Motion: danmaku.Scroll, Color: danmaku.RGB(1, 1, 1)},
		{ID: 2, StreamID: 1, SpawnTimeMs: 500, Text: "pinned at top", Motion: danmaku.Top, Color: danmaku.RGB(1, 0.8, 0)},
		{ID: 3, StreamID: 1, SpawnTimeMs: 1000, Text: "pinned at bottom", Motion: danmaku.Bottom, Color: danmaku.RGB(0.4, 0.8, 1)},
	}
}
