// Command griddemo renders frames of a moving grid cell into a PNG file.
//
// A single cell starts in the top-left corner and moves one cell down and
// to the right every frame, jumping back to the corner when it leaves the
// viewport. The last frame is saved.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"

	grid "github.com/gogpu/gg-grid"
)

func main() {
	var (
		width   = flag.Int("width", 350, "image width")
		height  = flag.Int("height", 280, "image height")
		cell    = flag.Float64("cell", 15, "cell size")
		frames  = flag.Int("frames", 30, "number of frames to render")
		output  = flag.String("output", "grid.png", "output file")
		verbose = flag.Bool("v", false, "log frame diagnostics")
	)
	flag.Parse()

	if *verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	size := grid.Size{W: *cell, H: *cell}
	viewport := grid.Size{W: float64(*width), H: float64(*height)}

	h := grid.New(size)
	h.Register(grid.NewCell(grid.NewPosition(0, 0, size), gg.Blue))

	dc := gg.NewContext(*width, *height)
	defer dc.Close()

	step := grid.NewPosition(1, 1, size)
	for i := 0; i < *frames; i++ {
		dc.ClearWithColor(gg.White)

		if err := h.DrawGrid(viewport, gg.Black); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}
		if err := h.DisplayFPS(fps(h.FrameTime())); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}

		for _, c := range h.Cells() {
			c.Position = c.Position.Add(step)
			if c.Position.Offscreen(viewport) {
				log.Printf("Cell is offscreen at frame %d", i)
				c.Position = grid.NewPosition(0, 0, size)
			}
		}

		if err := h.Flush(dc); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Grid saved to %s (%dx%d, %d frames)\n", *output, *width, *height, *frames)
}

// fps converts a frame duration into a frame rate.
func fps(frame time.Duration) float64 {
	if frame <= 0 {
		return 0
	}
	return 1 / frame.Seconds()
}
