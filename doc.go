// Package grid keeps track of colored cells on a uniform grid and draws
// them with gg.
//
// # Overview
//
// grid is a thin helper over an immediate-mode [gg.Context]. It maps grid
// positions to cells, draws grid lines and a frames-per-second overlay, and
// commits everything once per frame. It does not open windows or run an
// event loop; the host owns both and hands a context to [Handler.Flush].
//
// # Quick Start
//
//	size := grid.Size{W: 15, H: 15}
//	h := grid.New(size)
//	h.Register(grid.NewCell(grid.NewPosition(0, 0, size), gg.Blue))
//
//	dc := gg.NewContext(300, 300)
//	dc.ClearWithColor(gg.White)
//
//	// once per frame
//	_ = h.DrawGrid(grid.Size{W: 300, H: 300}, gg.Black)
//	_ = h.DisplayFPS(60)
//	if err := h.Flush(dc); err != nil {
//	    return err
//	}
//
// # Frames
//
// Between two flushes a Handler only accumulates: Register changes the cell
// map, DrawGrid and DisplayFPS push drawables onto the draw stack. Flush
// draws all cells as one batched [Mesh], then drains the draw stack in
// insertion order.
//
// # Coordinate System
//
// A [Position] stores the top-left corner of its cell in screen units,
// already scaled by the cell size. Origin (0,0) is the top-left of the
// context, X grows right and Y grows down, as in gg.
//
// # Drawables
//
// The draw stack holds [Drawable] values. The set is closed: [Text],
// [Image] and [Mesh].
package grid
