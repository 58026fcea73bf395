// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpugrid

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	grid "github.com/gogpu/gg-grid"
)

// Config configures a Window.
type Config struct {
	// CellSize is the size of one grid cell. Required.
	CellSize grid.Size

	// Background clears the frame before drawing. Default: white.
	Background *gg.RGBA

	// GridColor is the color of the grid lines. Default: black.
	GridColor *gg.RGBA

	// HideFPS starts with the frame rate overlay hidden.
	HideFPS bool

	// Update runs once per frame before drawing, with the current viewport
	// size. Use it to move or add cells.
	Update func(h *grid.Handler, viewport grid.Size) error

	// Options are passed to grid.New.
	Options []grid.Option
}

// Window draws a grid.Handler into a gogpu window through a ggcanvas.Canvas.
type Window struct {
	cfg     Config
	handler *grid.Handler
	canvas  *ggcanvas.Canvas

	bg, lines gg.RGBA
	showFPS   bool

	// err is the first frame failure. The draw callback cannot return
	// errors, so it stops drawing and Run reports it.
	err error
}

// New creates a Window. The canvas is created by the first frame.
func New(cfg Config) (*Window, error) {
	if cfg.CellSize.W <= 0 || cfg.CellSize.H <= 0 {
		return nil, fmt.Errorf("gogpugrid: %w: %gx%g", grid.ErrInvalidCellSize, cfg.CellSize.W, cfg.CellSize.H)
	}
	w := &Window{
		cfg:     cfg,
		handler: grid.New(cfg.CellSize, cfg.Options...),
		bg:      gg.White,
		lines:   gg.Black,
		showFPS: !cfg.HideFPS,
	}
	if cfg.Background != nil {
		w.bg = *cfg.Background
	}
	if cfg.GridColor != nil {
		w.lines = *cfg.GridColor
	}
	return w, nil
}

// Handler returns the grid handler drawn by the window.
func (w *Window) Handler() *grid.Handler {
	return w.handler
}

// Canvas returns the canvas frames are drawn into, or nil before the first
// frame.
func (w *Window) Canvas() *ggcanvas.Canvas {
	return w.canvas
}

// Err returns the first frame failure, if any.
func (w *Window) Err() error {
	return w.err
}

// Run opens a window and draws w until the window is closed. It returns the
// first frame failure, if any.
func Run(w *Window, title string, width, height int) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height).
		WithContinuousRender(true))

	app.OnDraw(func(dc *gogpu.Context) {
		w.draw(app, dc)
	})
	app.EventSource().OnKeyPress(w.handleKey)
	app.OnClose(w.close)

	if err := app.Run(); err != nil {
		return err
	}
	return w.err
}

// draw renders one frame and presents it.
func (w *Window) draw(app *gogpu.App, dc *gogpu.Context) {
	if w.err != nil {
		return
	}
	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return
	}

	provider := app.GPUContextProvider()
	if provider == nil {
		return
	}
	if err := w.ensureCanvas(provider, width, height); err != nil {
		w.fail(err)
		return
	}

	var frameErr error
	viewport := grid.Size{W: float64(width), H: float64(height)}
	if err := w.canvas.Draw(func(cc *gg.Context) {
		frameErr = w.frame(cc, viewport)
	}); err != nil {
		w.fail(err)
		return
	}
	if frameErr != nil {
		w.fail(frameErr)
		return
	}

	if err := w.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		w.fail(err)
	}
}

// ensureCanvas creates the canvas on first use and keeps it the size of
// the window.
func (w *Window) ensureCanvas(provider gpucontext.DeviceProvider, width, height int) error {
	if w.canvas == nil {
		c, err := ggcanvas.New(provider, width, height)
		if err != nil {
			return err
		}
		w.canvas = c
		grid.Logger().Debug("gogpugrid: canvas created", "width", width, "height", height)
		return nil
	}
	if cw, ch := w.canvas.Size(); cw != width || ch != height {
		return w.canvas.Resize(width, height)
	}
	return nil
}

// frame draws one frame into cc.
func (w *Window) frame(cc *gg.Context, viewport grid.Size) error {
	if w.cfg.Update != nil {
		if err := w.cfg.Update(w.handler, viewport); err != nil {
			return err
		}
	}

	cc.ClearWithColor(w.bg)
	if err := w.handler.DrawGrid(viewport, w.lines); err != nil {
		return err
	}
	if w.showFPS {
		if err := w.handler.DisplayFPS(rate(w.handler.FrameTime())); err != nil {
			return err
		}
	}
	return w.handler.Flush(cc)
}

// handleKey toggles the frame rate overlay on Space.
func (w *Window) handleKey(key gpucontext.Key, _ gpucontext.Modifiers) {
	if key != gpucontext.KeySpace {
		return
	}
	w.showFPS = !w.showFPS
	grid.Logger().Debug("gogpugrid: fps overlay toggled", "visible", w.showFPS)
}

func (w *Window) fail(err error) {
	grid.Logger().Warn("gogpugrid: frame failed", "err", err)
	w.err = err
}

func (w *Window) close() {
	if w.canvas != nil {
		_ = w.canvas.Close()
		w.canvas = nil
	}
}

// rate converts a frame duration into a frame rate.
func rate(frame time.Duration) float64 {
	if frame <= 0 {
		return 0
	}
	return 1 / frame.Seconds()
}
