// Package tetris implements the rule engine of a falling-block puzzle game.
// A Controller owns the settled Grid and the falling Shape, reacts to explicit
// operations (gravity ticks, moves, rotations, drops) and reports what happened
// through an ordered queue of events. Nothing in this package renders, plays
// sound or reads input devices.
package tetris

import "fmt"

// Color is one of the six block colors.
type Color int

const (
	Blue Color = iota
	Orange
	Purple
	Red
	Teal
	Yellow
)

// NumColors is the size of the block palette.
const NumColors = 6

var colorNames = [NumColors]string{"blue", "orange", "purple", "red", "teal", "yellow"}

func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Cell is a grid coordinate. Row 0 is the top of the playfield.
type Cell struct {
	Column, Row int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Column: c.Column + d.Column, Row: c.Row + d.Row}
}

// Block is a single square of a shape or of the settled grid.
// Column and Row change as the block moves; its color never does.
type Block struct {
	Column int
	Row    int
	color  Color
}

// NewBlock creates a block at the given position.
func NewBlock(column, row int, color Color) *Block {
	return &Block{Column: column, Row: row, color: color}
}

// Color returns the block's color.
func (b *Block) Color() Color {
	return b.color
}

// Cell returns the block's current position.
func (b *Block) Cell() Cell {
	return Cell{Column: b.Column, Row: b.Row}
}

// Equal reports whether both blocks sit on the same cell with the same color.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return *b == *other
}

func (b *Block) String() string {
	return fmt.Sprintf("%s: [%d, %d]", b.color, b.Column, b.Row)
}
