package sim

// Cell is an integer grid coordinate. Column 0 is the left edge, row 0 is the
// floor, and rows at or above the grid height form the spawn buffer.
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by a shape offset.
func (c Cell) Add(o Offset) Cell {
	return Cell{c.X + o.X, c.Y + o.Y}
}

// Offset is a unit offset relative to a piece origin.
type Offset struct {
	X, Y int
}

// BlockID is an opaque handle to a settled block, issued by a BlockPool.
// The zero value is never issued and marks an empty grid cell.
type BlockID uint32

// Placement pairs a cell with the block identity occupying it.
type Placement struct {
	Cell  Cell
	Block BlockID
}

// PieceBlocks is the number of cells in every piece.
const PieceBlocks = 4

func cellsAt(origin Cell, offsets [PieceBlocks]Offset) [PieceBlocks]Cell {
	var cells [PieceBlocks]Cell
	for i, o := range offsets {
		cells[i] = origin.Add(o)
	}
	return cells
}
