// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitengrid hosts a grid.Handler in an Ebitengine window.
//
// Ebitengine owns the window and the frame loop; gg renders each frame on
// the CPU. The data flow per frame is:
//
//	grid.Handler (DrawGrid, DisplayFPS, Flush) -> gg.Context -> ebiten.Image -> screen
//
// # Usage
//
//	g, err := ebitengrid.New(ebitengrid.Config{
//	    CellSize: grid.Size{W: 15, H: 15},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := ebitengrid.Run(g, "Pixel Handler", 640, 480); err != nil {
//	    log.Fatal(err)
//	}
//
// A left click registers a cell under the cursor. The overlay shows
// ebiten.ActualFPS, so the frame rate comes from the engine's own timer.
//
// # Thread Safety
//
// Game is driven by Ebitengine's game loop and is NOT safe for concurrent
// use.
package ebitengrid
