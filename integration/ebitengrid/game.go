// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengrid

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	grid "github.com/gogpu/gg-grid"
)

// ErrInvalidDimensions is returned when the layout size is not positive.
var ErrInvalidDimensions = errors.New("ebitengrid: invalid dimensions")

// Config configures a Game.
type Config struct {
	// CellSize is the size of one grid cell. Required.
	CellSize grid.Size

	// Background clears the frame before drawing. Default: white.
	Background *gg.RGBA

	// GridColor is the color of the grid lines. Default: black.
	GridColor *gg.RGBA

	// CellColor is the color of cells placed with the mouse. Default: black.
	CellColor *gg.RGBA

	// HideFPS disables the frame rate overlay.
	HideFPS bool

	// Update runs once per tick after input handling, with the current
	// viewport size. Use it to move or add cells.
	Update func(h *grid.Handler, viewport grid.Size) error

	// Options are passed to grid.New.
	Options []grid.Option
}

func (c Config) colors() (bg, lines, cells gg.RGBA) {
	bg, lines, cells = gg.White, gg.Black, gg.Black
	if c.Background != nil {
		bg = *c.Background
	}
	if c.GridColor != nil {
		lines = *c.GridColor
	}
	if c.CellColor != nil {
		cells = *c.CellColor
	}
	return bg, lines, cells
}

// Game implements ebiten.Game around a grid.Handler.
type Game struct {
	cfg     Config
	handler *grid.Handler

	dc     *gg.Context
	frame  *ebiten.Image // lazily created, matches dc size
	rgba   *image.RGBA   // scratch for non-RGBA context images
	width  int
	height int

	bg, lines, cellColor gg.RGBA

	// err is the first render failure. Draw cannot return errors, so it is
	// reported by the next Update, which stops the game loop.
	err error

	// Input and timing sources, replaced in tests.
	actualFPS func() float64
	clicked   func() bool
	cursor    func() (x, y int)
}

// New creates a Game. The drawing context is created by the first Layout.
func New(cfg Config) (*Game, error) {
	if cfg.CellSize.W <= 0 || cfg.CellSize.H <= 0 {
		return nil, fmt.Errorf("ebitengrid: %w: %gx%g", grid.ErrInvalidCellSize, cfg.CellSize.W, cfg.CellSize.H)
	}
	bg, lines, cells := cfg.colors()
	return &Game{
		cfg:       cfg,
		handler:   grid.New(cfg.CellSize, cfg.Options...),
		bg:        bg,
		lines:     lines,
		cellColor: cells,
		actualFPS: ebiten.ActualFPS,
		clicked: func() bool {
			return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		},
		cursor: ebiten.CursorPosition,
	}, nil
}

// Handler returns the grid handler drawn by the game.
func (g *Game) Handler() *grid.Handler {
	return g.handler
}

// Context returns the gg context frames are rendered into, or nil before
// the first Layout.
func (g *Game) Context() *gg.Context {
	return g.dc
}

// Viewport returns the current layout size.
func (g *Game) Viewport() grid.Size {
	return grid.Size{W: float64(g.width), H: float64(g.height)}
}

// Place registers a cell under the screen point (x, y).
// Points outside the viewport are ignored; Place reports whether a cell
// was registered.
func (g *Game) Place(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	pos := grid.PositionFromPoint(gg.Pt(float64(x), float64(y)), g.handler.CellSize())
	g.handler.Register(grid.NewCell(pos, g.cellColor))
	grid.Logger().Debug("ebitengrid: cell placed", "position", pos)
	return true
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.clicked() {
		g.Place(g.cursor())
	}
	if g.cfg.Update != nil {
		if err := g.cfg.Update(g.handler, g.Viewport()); err != nil {
			return err
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dc == nil || g.err != nil {
		return
	}
	if err := g.render(); err != nil {
		grid.Logger().Warn("ebitengrid: frame failed", "err", err)
		g.err = err
		return
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(g.pixels())
	screen.DrawImage(g.frame, nil)
}

// Layout implements ebiten.Game. The logical screen follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.resize(outsideWidth, outsideHeight); err != nil {
		grid.Logger().Warn("ebitengrid: resize ignored", "err", err)
		return g.width, g.height
	}
	return g.width, g.height
}

// resize recreates the context when the layout size changes.
func (g *Game) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if g.dc != nil && width == g.width && height == g.height {
		return nil
	}

	if g.dc != nil {
		_ = g.dc.Close()
	}
	if g.frame != nil {
		g.frame.Deallocate()
		g.frame = nil
	}
	g.dc = gg.NewContext(width, height)
	g.width, g.height = width, height
	return nil
}

// render draws one frame into the context.
func (g *Game) render() error {
	g.dc.ClearWithColor(g.bg)

	if err := g.handler.DrawGrid(g.Viewport(), g.lines); err != nil {
		return err
	}
	if !g.cfg.HideFPS {
		if err := g.handler.DisplayFPS(g.actualFPS()); err != nil {
			return err
		}
	}
	return g.handler.Flush(g.dc)
}

// pixels returns the context's pixels as premultiplied RGBA bytes.
func (g *Game) pixels() []byte {
	img := g.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*g.width {
		return rgba.Pix
	}
	if g.rgba == nil || g.rgba.Bounds() != img.Bounds() {
		g.rgba = image.NewRGBA(img.Bounds())
	}
	draw.Draw(g.rgba, g.rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return g.rgba.Pix
}

// Run opens a resizable window and runs g until the window is closed or
// the game returns an error.
func Run(g *Game, title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
