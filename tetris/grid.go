package tetris

import (
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// Grid is the settled playfield: a fixed width x height mapping from cells to
// blocks. Anything outside the bounds reads as occupied, so the walls and the
// floor need no special casing in collision checks.
type Grid struct {
	width  int
	height int
	cells  *intmap.Map[int, *Block]
}

// RemovedRow is a completed row taken out of the grid along with its blocks.
type RemovedRow struct {
	Row    int
	Blocks []*Block
}

// Fall records a block that moved down during a collapse.
type Fall struct {
	Block   *Block
	FromRow int
	ToRow   int
}

// NewGrid creates an empty grid. It panics on a non-positive size.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  intmap.New[int, *Block](width * height),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of settled blocks.
func (g *Grid) Len() int {
	return g.cells.Len()
}

func (g *Grid) index(column, row int) int {
	return row*g.width + column
}

// InBounds reports whether the cell lies inside the playfield.
func (g *Grid) InBounds(column, row int) bool {
	return column >= 0 && column < g.width && row >= 0 && row < g.height
}

// IsOccupied reports whether a block sits at the cell. Out-of-bounds cells
// are always occupied.
func (g *Grid) IsOccupied(column, row int) bool {
	if !g.InBounds(column, row) {
		return true
	}
	return g.cells.Has(g.index(column, row))
}

// At returns the block at the cell, or nil.
func (g *Grid) At(column, row int) *Block {
	if !g.InBounds(column, row) {
		return nil
	}
	b, _ := g.cells.Get(g.index(column, row))
	return b
}

// Fits reports whether every cell is in bounds and empty.
func (g *Grid) Fits(cells ...Cell) bool {
	for _, c := range cells {
		if g.IsOccupied(c.Column, c.Row) {
			return false
		}
	}
	return true
}

// Insert settles a block at its own position. The cell must be in bounds and
// empty; anything else is a bug in the caller and panics.
func (g *Grid) Insert(b *Block) {
	if !g.InBounds(b.Column, b.Row) {
		panic(fmt.Sprintf("tetris: insert out of bounds: %v", b))
	}
	idx := g.index(b.Column, b.Row)
	if g.cells.Has(idx) {
		panic(fmt.Sprintf("tetris: insert into occupied cell: %v", b))
	}
	g.cells.Put(idx, b)
}

func (g *Grid) take(column, row int) *Block {
	idx := g.index(column, row)
	b, ok := g.cells.Get(idx)
	if !ok {
		return nil
	}
	g.cells.Del(idx)
	return b
}

func (g *Grid) rowFull(row int) bool {
	for column := range g.width {
		if !g.cells.Has(g.index(column, row)) {
			return false
		}
	}
	return true
}

// RemoveCompletedRows takes every full row out of the grid and returns them
// from the bottom up. All rows are detected before any is removed.
func (g *Grid) RemoveCompletedRows() []RemovedRow {
	var full []int
	for row := g.height - 1; row >= 0; row-- {
		if g.rowFull(row) {
			full = append(full, row)
		}
	}

	removed := make([]RemovedRow, 0, len(full))
	for _, row := range full {
		blocks := make([]*Block, 0, g.width)
		for column := range g.width {
			blocks = append(blocks, g.take(column, row))
		}
		removed = append(removed, RemovedRow{Row: row, Blocks: blocks})
	}
	return removed
}

// CollapseRowsAbove lets every block above the lowest removed row fall down
// its column until it rests on another block or the floor. Columns are
// walked bottom-up so blocks keep their vertical order. A stack without holes
// therefore moves down by exactly the number of removed rows beneath it.
func (g *Grid) CollapseRowsAbove(removedRows []int) []Fall {
	if len(removedRows) == 0 {
		return nil
	}
	lowest := slices.Max(removedRows)

	var fallen []Fall
	for column := range g.width {
		for row := lowest - 1; row >= 0; row-- {
			b := g.At(column, row)
			if b == nil {
				continue
			}
			target := row
			for target+1 < g.height && !g.IsOccupied(column, target+1) {
				target++
			}
			if target == row {
				continue
			}
			g.take(column, row)
			b.Row = target
			g.cells.Put(g.index(column, target), b)
			fallen = append(fallen, Fall{Block: b, FromRow: row, ToRow: target})
		}
	}
	return fallen
}

// ClearAll empties the grid and returns what it held in row-major order.
// Calling it on an empty grid returns nothing.
func (g *Grid) ClearAll() []*Block {
	blocks := g.Blocks()
	g.cells.Clear()
	return blocks
}

// Blocks returns the settled blocks in row-major order.
func (g *Grid) Blocks() []*Block {
	blocks := make([]*Block, 0, g.cells.Len())
	for row := range g.height {
		for column := range g.width {
			if b := g.At(column, row); b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

// ColumnHeight returns how many rows a column's stack spans, measured from the
// floor to its topmost block.
func (g *Grid) ColumnHeight(column int) int {
	for row := range g.height {
		if g.IsOccupied(column, row) {
			return g.height - row
		}
	}
	return 0
}

// RowIndices extracts the row numbers of removed rows.
func RowIndices(removed []RemovedRow) []int {
	rows := make([]int, len(removed))
	for i, r := range removed {
		rows[i] = r.Row
	}
	return rows
}
