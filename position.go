package grid

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Size is a width and height in screen units.
// It describes both the size of one grid cell and the size of a viewport.
type Size struct {
	W, H float64
}

// valid reports whether both components are positive and finite.
func (s Size) valid() bool {
	return s.W > 0 && s.H > 0 && !math.IsInf(s.W, 0) && !math.IsInf(s.H, 0)
}

// Position is a discrete grid coordinate.
//
// X and Y hold the screen-space top-left corner of the cell, already scaled
// by the cell size and truncated to integers. Position is comparable: two
// positions are equal iff Size, X and Y all match, so it can be used directly
// as a map key.
type Position struct {
	Size Size
	X, Y int
}

// NewPosition returns the position of the cell at column col and row row.
//
// Indices are scaled by the cell size truncated to an integer, so fractional
// cell sizes lose precision: with Size{W: 15.5} column 2 maps to X = 30,
// not 31.
func NewPosition(col, row int, size Size) Position {
	return Position{
		Size: size,
		X:    col * int(size.W),
		Y:    row * int(size.H),
	}
}

// PositionFromPoint returns the position of the cell containing p.
// Coordinates are floor-divided, so negative points map to negative cells.
func PositionFromPoint(p gg.Point, size Size) Position {
	col := int(math.Floor(p.X / size.W))
	row := int(math.Floor(p.Y / size.H))
	return NewPosition(col, row, size)
}

// Point returns the top-left corner of the cell.
func (p Position) Point() gg.Point {
	return gg.Pt(float64(p.X), float64(p.Y))
}

// Rect returns the area covered by the cell.
func (p Position) Rect() gg.Rect {
	tl := p.Point()
	return gg.Rect{
		Min: tl,
		Max: gg.Pt(tl.X+p.Size.W, tl.Y+p.Size.H),
	}
}

// Index returns the column and row of the cell.
// It inverts NewPosition for cell sizes of at least one unit.
func (p Position) Index() (col, row int) {
	w, h := int(p.Size.W), int(p.Size.H)
	if w != 0 {
		col = p.X / w
	}
	if h != 0 {
		row = p.Y / h
	}
	return col, row
}

// Add returns the component-wise sum of p and q.
// The cell size of p is kept.
func (p Position) Add(q Position) Position {
	return Position{Size: p.Size, X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the component-wise product of p and q.
// The cell size of p is kept.
func (p Position) Mul(q Position) Position {
	return Position{Size: p.Size, X: p.X * q.X, Y: p.Y * q.Y}
}

// Offscreen reports whether the cell is not entirely inside a viewport of
// the given size anchored at the origin.
func (p Position) Offscreen(viewport Size) bool {
	right := viewport.W - p.Size.W
	bottom := viewport.H - p.Size.H

	x, y := float64(p.X), float64(p.Y)
	return x < 0 || x > right || y < 0 || y > bottom
}

// String returns a debug representation such as "(30,45)@15x15".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)@%gx%g", p.X, p.Y, p.Size.W, p.Size.H)
}

// less orders positions row-major.
func (p Position) less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Size.H != q.Size.H {
		return p.Size.H < q.Size.H
	}
	return p.Size.W < q.Size.W
}

// comparePositions is a row-major comparison for slices.SortFunc.
func comparePositions(a, b Position) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}
