// Command gridview opens a window with a grid; left clicks add cells.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	grid "github.com/gogpu/gg-grid"
	"github.com/gogpu/gg-grid/integration/ebitengrid"
)

func main() {
	var (
		width   = flag.Int("width", 640, "window width")
		height  = flag.Int("height", 480, "window height")
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

	g, err := ebitengrid.New(ebitengrid.Config{
		CellSize: grid.Size{W: *cell, H: *cell},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebitengrid.Run(g, *title, *width, *height); err != nil {
		log.Fatal(err)
	}
}
