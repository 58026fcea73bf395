// Command gridgpu opens a GPU-backed window with a grid and a moving cell.
//
// Space toggles the frame rate overlay.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator

	grid "github.com/gogpu/gg-grid"
	"github.com/gogpu/gg-grid/integration/gogpugrid"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		cell    = flag.Float64("cell", 15, "cell size")
		title   = flag.String("title", "Pixel Handler", "window title")
		verbose = flag.Bool("v", false, "log frame diagnostics")
	)
	flag.Parse()

	if *verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	size := grid.Size{W: *cell, H: *cell}
	step := grid.NewPosition(1, 1, size)

	w, err := gogpugrid.New(gogpugrid.Config{
		CellSize: size,
		Update: func(h *grid.Handler, viewport grid.Size) error {
			for _, c := range h.Cells() {
				c.Position = c.Position.Add(step)
				if c.Position.Offscreen(viewport) {
					c.Position = grid.NewPosition(0, 0, size)
				}
			}
			return nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	w.Handler().Register(grid.NewCell(grid.NewPosition(0, 0, size), gg.Blue))

	if err := gogpugrid.Run(w, *title, *width, *height); err != nil {
		log.Fatal(err)
	}
}
