package grid

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Cell is a colored square at a grid position.
//
// Once registered with a Handler the cell is owned by it; callers holding a
// *Cell from Lookup or Cells may change Position or Color between frames and
// the next Flush picks up the change.
type Cell struct {
	Position Position
	Color    gg.RGBA
}

// NewCell creates a cell.
func NewCell(pos Position, c gg.RGBA) Cell {
	return Cell{Position: pos, Color: c}
}

// AppendTo adds the cell's filled rectangle to b.
func (c *Cell) AppendTo(b *MeshBuilder) error {
	if err := b.Rectangle(c.Position.Rect(), c.Color); err != nil {
		return fmt.Errorf("grid: cell %v: %w", c.Position, err)
	}
	return nil
}
