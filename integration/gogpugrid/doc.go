// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpugrid hosts a grid.Handler in a gogpu window.
//
// gogpu owns the window, the GPU device and the frame loop. Each frame is
// drawn into the gg.Context of a ggcanvas.Canvas, which uploads it as a
// texture. The data flow per frame is:
//
//	grid.Handler (DrawGrid, DisplayFPS, Flush) -> ggcanvas.Canvas -> gogpu.Context -> window
//
// # Usage
//
//	w, err := gogpugrid.New(gogpugrid.Config{
//	    CellSize: grid.Size{W: 15, H: 15},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := gogpugrid.Run(w, "Pixel Handler", 800, 600); err != nil {
//	    log.Fatal(err)
//	}
//
// gogpu has no frame rate counter of its own, so the overlay shows the
// rate derived from Handler.FrameTime. Space toggles the overlay.
//
// # Thread Safety
//
// Window is driven by gogpu's draw callback and is NOT safe for concurrent
// use.
package gogpugrid
