package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(x, y int) sim.Cell { return sim.Cell{X: x, Y: y} }

func TestValidPlacementBounds(t *testing.T) {
	g := sim.NewGrid(10, 22)

	tests := []struct {
		name  string
		cells [sim.PieceBlocks]sim.Cell
		want  bool
	}{
		{"inside", [4]sim.Cell{cell(0, 0), cell(1, 0), cell(2, 0), cell(3, 0)}, true},
		{"left of field", [4]sim.Cell{cell(-1, 5), cell(0, 5), cell(1, 5), cell(2, 5)}, false},
		{"right of field", [4]sim.Cell{cell(7, 5), cell(8, 5), cell(9, 5), cell(10, 5)}, false},
		{"below floor", [4]sim.Cell{cell(4, -1), cell(4, 0), cell(4, 1), cell(4, 2)}, false},
		{"spawn buffer always valid", [4]sim.Cell{cell(4, 22), cell(4, 23), cell(4, 99), cell(4, 1000)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsValidPlacement(tt.cells))
		})
	}
}

func TestCommitThenOccupied(t *testing.T) {
	g := sim.NewGrid(10, 22)
	cells := [4]sim.Cell{cell(3, 0), cell(4, 0), cell(5, 0), cell(4, 1)}
	require.True(t, g.IsValidPlacement(cells))

	var placements []sim.Placement
	for i, c := range cells {
		placements = append(placements, sim.Placement{Cell: c, Block: sim.BlockID(i + 1)})
	}
	committed := g.Commit(placements)
	require.Len(t, committed, 4)

	for i, c := range cells {
		assert.True(t, g.Occupied(c))
		id, ok := g.BlockAt(c)
		require.True(t, ok)
		assert.Equal(t, sim.BlockID(i+1), id)
	}
	assert.False(t, g.IsValidPlacement(cells))
}

func TestCommitClampsSpawnBuffer(t *testing.T) {
	g := sim.NewGrid(10, 22)
	committed := g.Commit([]sim.Placement{{Cell: cell(4, 25), Block: 7}})
	require.Len(t, committed, 1)
	assert.Equal(t, cell(4, 21), committed[0].Cell)
	assert.True(t, g.Occupied(cell(4, 21)))
	assert.True(t, g.IsGameOver(), "a clamped over-height settle must register in the top row")
}

// Literal end-to-end scenario: fill row 0 of a 10x22 grid through direct
// commits, clear it, and check the shift from row 1.
func TestFullRowClearScenario(t *testing.T) {
	g := sim.NewGrid(10, 22)

	var row0 []sim.Placement
	for x := 0; x < 10; x++ {
		row0 = append(row0, sim.Placement{Cell: cell(x, 0), Block: sim.BlockID(x + 1)})
	}
	g.Commit(row0)
	g.Commit([]sim.Placement{{Cell: cell(3, 1), Block: 42}})

	assert.Equal(t, []int{0}, g.FullRows())

	removed := g.ClearRows([]int{0})
	require.Len(t, removed, 10)
	for x := 0; x < 10; x++ {
		assert.Contains(t, removed, sim.BlockID(x+1))
	}

	id, ok := g.BlockAt(cell(3, 0))
	require.True(t, ok, "row 1 contents must shift to row 0")
	assert.Equal(t, sim.BlockID(42), id)
	assert.False(t, g.Occupied(cell(3, 1)))
	assert.Empty(t, g.FullRows())
}

func TestClearRowsNormalizesInput(t *testing.T) {
	g := sim.NewGrid(4, 6)
	g.Commit([]sim.Placement{
		{Cell: cell(0, 0), Block: 1},
		{Cell: cell(1, 0), Block: 2},
	})
	before := g.Blocks()

	assert.Empty(t, g.ClearRows(nil))
	assert.Empty(t, g.ClearRows([]int{}))
	assert.Empty(t, g.ClearRows([]int{-3, 6, 99}))
	assert.Empty(t, g.ClearRows([]int{0, 0, 0}), "row 0 is not full")
	assert.Equal(t, before, g.Blocks(), "no-op clears must leave the grid unchanged")
}

func TestClearCompaction(t *testing.T) {
	g := sim.NewGrid(3, 8)

	// Fill rows 1 and 3 completely, plus a sparse column 0 stack with a gap.
	var placements []sim.Placement
	next := sim.BlockID(100)
	for _, y := range []int{1, 3} {
		for x := 0; x < 3; x++ {
			placements = append(placements, sim.Placement{Cell: cell(x, y), Block: next})
			next++
		}
	}
	placements = append(placements,
		sim.Placement{Cell: cell(0, 0), Block: 1},
		sim.Placement{Cell: cell(0, 5), Block: 2},
		sim.Placement{Cell: cell(0, 7), Block: 3},
	)
	g.Commit(placements)
	require.Equal(t, []int{1, 3}, g.FullRows())

	removed := g.ClearRows([]int{1, 3})
	assert.Len(t, removed, 6)

	// Column 0 held blocks 1, 2, 3 bottom-to-top outside the cleared rows;
	// after compaction they sit in rows 0..2 in the same order with no gaps.
	for y, want := range []sim.BlockID{1, 2, 3} {
		id, ok := g.BlockAt(cell(0, y))
		require.True(t, ok, "row %d should be occupied", y)
		assert.Equal(t, want, id)
	}
	for y := 3; y < 8; y++ {
		assert.False(t, g.Occupied(cell(0, y)))
	}
	for y := 0; y < 8; y++ {
		assert.False(t, g.Occupied(cell(1, y)))
		assert.False(t, g.Occupied(cell(2, y)))
	}
}

func TestIsGameOverTopRow(t *testing.T) {
	g := sim.NewGrid(10, 22)
	assert.False(t, g.IsGameOver())

	g.Commit([]sim.Placement{{Cell: cell(0, 20), Block: 1}})
	assert.False(t, g.IsGameOver())

	g.Commit([]sim.Placement{{Cell: cell(9, 21), Block: 2}})
	assert.True(t, g.IsGameOver())
}

func TestGridReset(t *testing.T) {
	g := sim.NewGrid(4, 6)
	g.Commit([]sim.Placement{
		{Cell: cell(0, 0), Block: 11},
		{Cell: cell(1, 2), Block: 12},
		{Cell: cell(3, 5), Block: 13},
	})

	held := g.Reset()
	assert.ElementsMatch(t, []sim.BlockID{11, 12, 13}, held)
	assert.Empty(t, g.Blocks())
	assert.False(t, g.IsGameOver())
}

func TestNewGridPanicsOnBadDimensions(t *testing.T) {
	assert.Panics(t, func() { sim.NewGrid(0, 22) })
	assert.Panics(t, func() { sim.NewGrid(10, -1) })
}
