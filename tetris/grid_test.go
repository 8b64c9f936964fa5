package tetris_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(g *tetris.Grid, row int, except ...int) {
	skip := map[int]bool{}
	for _, c := range except {
		skip[c] = true
	}
	for column := range g.Width() {
		if !skip[column] {
			g.Insert(tetris.NewBlock(column, row, tetris.Blue))
		}
	}
}

func TestOutOfBoundsIsOccupied(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	g.Insert(tetris.NewBlock(0, 19, tetris.Red))

	for column := -2; column < 12; column++ {
		for row := -2; row < 22; row++ {
			if g.InBounds(column, row) {
				continue
			}
			assert.True(t, g.IsOccupied(column, row), "(%d,%d)", column, row)
			assert.Nil(t, g.At(column, row))
		}
	}
	assert.False(t, g.IsOccupied(0, 0))
	assert.True(t, g.IsOccupied(0, 19))
}

func TestInsertAndLookup(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	b := tetris.NewBlock(3, 7, tetris.Teal)

	g.Insert(b)

	assert.Same(t, b, g.At(3, 7))
	assert.Equal(t, 1, g.Len())
	assert.False(t, g.Fits(tetris.Cell{Column: 3, Row: 7}))
	assert.True(t, g.Fits(tetris.Cell{Column: 4, Row: 7}, tetris.Cell{Column: 3, Row: 6}))
	assert.False(t, g.Fits(tetris.Cell{Column: 10, Row: 7}))
}

func TestInsertPanicsOnMisuse(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	g.Insert(tetris.NewBlock(1, 1, tetris.Red))

	assert.Panics(t, func() { g.Insert(tetris.NewBlock(1, 1, tetris.Blue)) })
	assert.Panics(t, func() { g.Insert(tetris.NewBlock(-1, 1, tetris.Blue)) })
	assert.Panics(t, func() { g.Insert(tetris.NewBlock(1, 20, tetris.Blue)) })
	assert.Panics(t, func() { tetris.NewGrid(0, 20) })
}

func TestRemoveCompletedRowsDetectsAllBeforeRemoving(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	fillRow(g, 19)
	fillRow(g, 18)
	fillRow(g, 16)
	fillRow(g, 17, 4)

	removed := g.RemoveCompletedRows()

	require.Len(t, removed, 3)
	assert.Equal(t, []int{19, 18, 16}, tetris.RowIndices(removed))
	for _, r := range removed {
		assert.Len(t, r.Blocks, 10)
		for _, b := range r.Blocks {
			assert.Equal(t, r.Row, b.Row)
		}
	}
	assert.Equal(t, 9, g.Len())
	assert.Empty(t, g.RemoveCompletedRows())
}

func TestCollapseShiftsStackByRemovedRowsBelow(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	fillRow(g, 19)
	fillRow(g, 18, 0)
	fillRow(g, 17)
	top := tetris.NewBlock(2, 16, tetris.Red)
	g.Insert(top)

	removed := g.RemoveCompletedRows()
	require.Equal(t, []int{19, 17}, tetris.RowIndices(removed))

	fallen := g.CollapseRowsAbove(tetris.RowIndices(removed))

	assert.Len(t, fallen, 10)
	assert.Equal(t, 18, top.Row)
	assert.Same(t, top, g.At(2, 18))
	for column := 1; column < 10; column++ {
		assert.True(t, g.IsOccupied(column, 19), "column %d", column)
	}
	assert.False(t, g.IsOccupied(0, 19))
	assert.Equal(t, 10, g.Len())

	for _, f := range fallen {
		assert.Equal(t, f.ToRow, f.Block.Row)
		assert.Greater(t, f.ToRow, f.FromRow)
	}
}

func TestCollapseWithNothingRemoved(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	g.Insert(tetris.NewBlock(0, 0, tetris.Red))

	assert.Nil(t, g.CollapseRowsAbove(nil))
	assert.True(t, g.IsOccupied(0, 0))
}

// After a clear every column above the floor region is a contiguous run.
func TestCollapseLeavesNoGaps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		g := tetris.NewGrid(10, 20)
		for column := range g.Width() {
			height := 1 + rng.IntN(12)
			for row := g.Height() - 1; row >= g.Height()-height; row-- {
				g.Insert(tetris.NewBlock(column, row, tetris.Orange))
			}
			for row := range 6 {
				if rng.IntN(3) == 0 {
					g.Insert(tetris.NewBlock(column, row, tetris.Purple))
				}
			}
		}

		removed := g.RemoveCompletedRows()
		require.NotEmpty(t, removed)
		g.CollapseRowsAbove(tetris.RowIndices(removed))

		for column := range g.Width() {
			seenEmpty := false
			for row := g.Height() - 1; row >= 0; row-- {
				if !g.IsOccupied(column, row) {
					seenEmpty = true
					continue
				}
				require.False(t, seenEmpty, "gap under (%d,%d)", column, row)
			}
		}
	}
}

func TestClearAllIsIdempotent(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	fillRow(g, 19, 3)
	g.Insert(tetris.NewBlock(3, 0, tetris.Yellow))

	blocks := g.ClearAll()

	assert.Len(t, blocks, 10)
	assert.Equal(t, tetris.Cell{Column: 3, Row: 0}, blocks[0].Cell())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.ClearAll())
}

func TestColumnHeight(t *testing.T) {
	g := tetris.NewGrid(10, 20)
	g.Insert(tetris.NewBlock(2, 15, tetris.Red))
	g.Insert(tetris.NewBlock(2, 19, tetris.Red))

	assert.Equal(t, 5, g.ColumnHeight(2))
	assert.Equal(t, 0, g.ColumnHeight(3))
}
