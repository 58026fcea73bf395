package grid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/message"

	"github.com/gogpu/gg-grid/internal/labelcache"
)

// Handler tracks the cells of a uniform grid and the drawables queued for
// the current frame.
//
// A frame is a sequence of Register, DrawGrid and DisplayFPS calls followed
// by one Flush. Flush draws every registered cell as a single batched mesh,
// then the queued drawables in the order they were queued, and empties the
// queue.
//
// Cells may be relocated between frames by changing the Position of a *Cell
// obtained from Lookup or Cells. Map keys are refreshed from each cell's
// current position during Flush, so until then Lookup finds a moved cell
// under its previous position.
//
// Handler is NOT safe for concurrent use.
type Handler struct {
	size  Size
	cells map[Position]*Cell
	stack []Entry
	opts  options

	// lastFlush is the handler clock reading at the end of the last Flush.
	lastFlush time.Time

	builder *MeshBuilder // reused by Flush

	// FPS overlay state, created on first DisplayFPS.
	face       text.Face
	printer    *message.Printer
	labels     *labelcache.Cache[string, *Text]
	background *Mesh
}

// New creates an empty handler for cells of the given size.
//
// Example:
//
//	h := grid.New(grid.Size{W: 15, H: 15})
//	h.Register(grid.NewCell(grid.NewPosition(0, 0, h.CellSize()), gg.Blue))
func New(size Size, opts ...Option) *Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Handler{
		size:      size,
		cells:     make(map[Position]*Cell),
		stack:     make([]Entry, 0, 8),
		opts:      o,
		lastFlush: o.now(),
		builder:   NewMeshBuilder(),
		face:      o.face,
		printer:   message.NewPrinter(o.lang),
		labels:    labelcache.New[string, *Text](o.cacheSize),
	}
}

// CellSize returns the size of one grid cell.
func (h *Handler) CellSize() Size {
	return h.size
}

// Register stores c at its position, replacing any cell already there.
func (h *Handler) Register(c Cell) {
	if old, ok := h.cells[c.Position]; ok {
		Logger().Debug("grid: cell replaced",
			"position", c.Position, "old", old.Color, "new", c.Color)
	}
	h.cells[c.Position] = &c
}

// Remove deletes the cell stored at pos and reports whether there was one.
func (h *Handler) Remove(pos Position) bool {
	if _, ok := h.cells[pos]; !ok {
		return false
	}
	delete(h.cells, pos)
	return true
}

// Lookup returns the cell stored at pos.
func (h *Handler) Lookup(pos Position) (*Cell, bool) {
	c, ok := h.cells[pos]
	return c, ok
}

// Occupied reports whether a cell is stored at pos.
func (h *Handler) Occupied(pos Position) bool {
	_, ok := h.cells[pos]
	return ok
}

// Len returns the number of registered cells.
func (h *Handler) Len() int {
	return len(h.cells)
}

// Cells iterates over the registered cells in row-major key order.
// The cells may be modified during iteration; registering or removing
// cells is not allowed until the iteration finishes.
func (h *Handler) Cells() iter.Seq2[Position, *Cell] {
	return func(yield func(Position, *Cell) bool) {
		for _, k := range slices.SortedFunc(maps.Keys(h.cells), comparePositions) {
			if !yield(k, h.cells[k]) {
				return
			}
		}
	}
}

// Enqueue adds a drawable to the draw stack.
func (h *Handler) Enqueue(d Drawable, p DrawParam) {
	h.stack = append(h.stack, Entry{Param: p, Drawable: d})
}

// Pending returns a copy of the draw stack.
func (h *Handler) Pending() []Entry {
	return slices.Clone(h.stack)
}

// FrameTime returns the time elapsed since the last Flush, or since New if
// Flush has not been called. It is meant for hosts without a frame timer of
// their own.
func (h *Handler) FrameTime() time.Duration {
	return h.opts.now().Sub(h.lastFlush)
}

// DrawGrid queues the grid lines covering a viewport of the given size.
//
// floor(viewport.H/cell.H) horizontal lines are drawn at multiples of the
// cell height, each spanning the full viewport width, and
// floor(viewport.W/cell.W) vertical lines at multiples of the cell width,
// each spanning the full viewport height.
func (h *Handler) DrawGrid(viewport Size, lineColor gg.RGBA) error {
	if !h.size.valid() {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCellSize, h.size.W, h.size.H)
	}

	horizontal := int(viewport.H / h.size.H)
	vertical := int(viewport.W / h.size.W)

	b := NewMeshBuilder()
	width := h.opts.lineWidth

	for i := 0; i < horizontal; i++ {
		y := float64(i) * h.size.H
		if err := b.Line([]gg.Point{gg.Pt(0, y), gg.Pt(viewport.W, y)}, width, lineColor); err != nil {
			return fmt.Errorf("grid: horizontal line %d: %w", i, err)
		}
	}
	for i := 0; i < vertical; i++ {
		x := float64(i) * h.size.W
		if err := b.Line([]gg.Point{gg.Pt(x, 0), gg.Pt(x, viewport.H)}, width, lineColor); err != nil {
			return fmt.Errorf("grid: vertical line %d: %w", i, err)
		}
	}

	h.Enqueue(b.Build(), DefaultDrawParam())
	return nil
}

// Flush draws the frame into dc.
//
// All registered cells are re-keyed by their current position and drawn as
// one mesh, then every queued drawable is drawn with its own parameters in
// queue order. The draw stack is emptied and the frame timer reset even when
// drawing fails; the first failure stops the frame and is returned as a
// *DrawError.
func (h *Handler) Flush(dc *gg.Context) error {
	if dc == nil {
		return ErrNilContext
	}
	defer h.endFrame()

	h.rekey()

	mesh, err := h.cellMesh()
	if err != nil {
		return &DrawError{Index: -1, Kind: KindMesh, Err: err}
	}
	if err := mesh.Draw(dc, DefaultDrawParam()); err != nil {
		return &DrawError{Index: -1, Kind: KindMesh, Err: err}
	}

	for i, e := range h.stack {
		if err := e.Drawable.Draw(dc, e.Param); err != nil {
			return &DrawError{Index: i, Kind: e.Drawable.Kind(), Err: err}
		}
	}

	labels := h.labels.Stats()
	Logger().Debug("grid: frame flushed",
		"cells", len(h.cells), "entries", len(h.stack), "frame", h.FrameTime(),
		"labels", labels.Len, "label_hits", labels.Hits, "label_misses", labels.Misses)
	return nil
}

// rekey rebuilds the cell map so every key matches its cell's position.
// When relocated cells collide, the cell whose previous key sorts last in
// row-major order is kept.
func (h *Handler) rekey() {
	moved := false
	for k, c := range h.cells {
		if k != c.Position {
			moved = true
			break
		}
	}
	if !moved {
		return
	}

	cells := make(map[Position]*Cell, len(h.cells))
	for _, k := range slices.SortedFunc(maps.Keys(h.cells), comparePositions) {
		c := h.cells[k]
		if _, dup := cells[c.Position]; dup {
			Logger().Warn("grid: relocated cell replaced another",
				"from", k, "to", c.Position)
		}
		cells[c.Position] = c
	}
	h.cells = cells
}

// cellMesh batches every registered cell in row-major order.
func (h *Handler) cellMesh() (*Mesh, error) {
	h.builder.Reset()
	for _, k := range slices.SortedFunc(maps.Keys(h.cells), comparePositions) {
		if err := h.cells[k].AppendTo(h.builder); err != nil {
			return nil, err
		}
	}
	return h.builder.Build(), nil
}

func (h *Handler) endFrame() {
	clear(h.stack)
	h.stack = h.stack[:0]
	h.lastFlush = h.opts.now()
}
