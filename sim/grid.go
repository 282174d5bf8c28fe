package sim

// Grid is the occupancy table for settled blocks. It is the single source of
// truth for collision and row fullness: a cell is occupied exactly when a
// block was committed there and no later clear or reset removed it.
//
// Storage is a dense row-major slab indexed cells[y*width+x]; BlockID zero
// marks an empty cell.
type Grid struct {
	width, height int
	cells         []BlockID
}

// NewGrid creates an empty grid. Non-positive dimensions are a startup fault.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("blockfall: grid dimensions must be positive")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]BlockID, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of visible rows. Rows at or above this form the
// spawn buffer and are never stored.
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(c Cell) int { return c.Y*g.width + c.X }

// Occupied reports whether an in-bounds cell currently holds a block.
func (g *Grid) Occupied(c Cell) bool {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return false
	}
	return g.cells[g.index(c)] != 0
}

// BlockAt returns the block identity stored at c, if any.
func (g *Grid) BlockAt(c Cell) (BlockID, bool) {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return 0, false
	}
	id := g.cells[g.index(c)]
	return id, id != 0
}

// IsValidPlacement reports whether every cell is inside the playfield columns,
// at or above the floor, and unoccupied. Cells in the spawn buffer
// (row >= height) are always valid.
func (g *Grid) IsValidPlacement(cells [PieceBlocks]Cell) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= g.width || c.Y < 0 {
			return false
		}
		if c.Y >= g.height {
			continue
		}
		if g.cells[g.index(c)] != 0 {
			return false
		}
	}
	return true
}

// Commit marks the given cells occupied and returns the placements as stored.
// A cell in the spawn buffer is clamped into the top row so an over-height
// settle still registers for game-over detection. A clamped cell that lands on
// an occupied one is dropped rather than overwriting.
func (g *Grid) Commit(placements []Placement) []Placement {
	committed := make([]Placement, 0, len(placements))
	for _, p := range placements {
		c := p.Cell
		if c.Y >= g.height {
			c.Y = g.height - 1
		}
		if c.X < 0 || c.X >= g.width || c.Y < 0 {
			continue
		}
		i := g.index(c)
		if g.cells[i] != 0 {
			continue
		}
		g.cells[i] = p.Block
		committed = append(committed, Placement{Cell: c, Block: p.Block})
	}
	return committed
}

// FullRows returns the ascending row indices where every column is occupied.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.height; y++ {
		full := true
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == 0 {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows and compacts every column downward in a
// single bottom-to-top pass, preserving the relative order of surviving
// blocks. The clear set is normalized first: out-of-range rows, duplicates,
// and rows that are not actually full are ignored, so a stale or malformed
// request degrades to a no-op instead of failing. The rebuilt grid replaces
// the old one in one step; removed block identities are returned for release.
func (g *Grid) ClearRows(rows []int) []BlockID {
	clearSet := make([]bool, g.height)
	count := 0
	for _, y := range rows {
		if y < 0 || y >= g.height || clearSet[y] {
			continue
		}
		if !g.rowFull(y) {
			continue
		}
		clearSet[y] = true
		count++
	}
	if count == 0 {
		return nil
	}

	next := make([]BlockID, len(g.cells))
	removed := make([]BlockID, 0, count*g.width)
	for x := 0; x < g.width; x++ {
		dst := 0
		for y := 0; y < g.height; y++ {
			id := g.cells[y*g.width+x]
			if id == 0 {
				continue
			}
			if clearSet[y] {
				removed = append(removed, id)
				continue
			}
			next[dst*g.width+x] = id
			dst++
		}
	}
	g.cells = next
	return removed
}

func (g *Grid) rowFull(y int) bool {
	for x := 0; x < g.width; x++ {
		if g.cells[y*g.width+x] == 0 {
			return false
		}
	}
	return true
}

// IsGameOver reports whether any column is occupied in the topmost row.
func (g *Grid) IsGameOver() bool {
	top := (g.height - 1) * g.width
	for x := 0; x < g.width; x++ {
		if g.cells[top+x] != 0 {
			return true
		}
	}
	return false
}

// Reset empties the grid and returns every block identity it held so the
// caller can release them.
func (g *Grid) Reset() []BlockID {
	var held []BlockID
	for i, id := range g.cells {
		if id != 0 {
			held = append(held, id)
			g.cells[i] = 0
		}
	}
	return held
}

// Blocks returns every stored placement, bottom row first. Renderers and
// snapshots read the grid through this.
func (g *Grid) Blocks() []Placement {
	var out []Placement
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if id := g.cells[y*g.width+x]; id != 0 {
				out = append(out, Placement{Cell: Cell{x, y}, Block: id})
			}
		}
	}
	return out
}
