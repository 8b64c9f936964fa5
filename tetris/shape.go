package tetris

import "fmt"

// Rotation directions accepted by Shape.Rotated and Shape.Rotate.
const (
	Clockwise        = 1
	CounterClockwise = -1
)

// Shape is a tetromino: four blocks placed around a pivot according to the
// offset table of its kind and current rotation. The methods returning cells
// are pure; the ones that move the shape do not check the grid, that is the
// controller's job.
type Shape struct {
	kind     Kind
	color    Color
	rotation int
	pivot    Cell
	blocks   [4]*Block
}

// NewShape creates a shape of the given kind in rotation 0 around pivot.
func NewShape(kind Kind, color Color, pivot Cell) *Shape {
	s := &Shape{
		kind:  kind,
		color: color,
		pivot: pivot,
	}
	for i, cell := range s.CellsAt(0, pivot) {
		s.blocks[i] = NewBlock(cell.Column, cell.Row, color)
	}
	return s
}

func (s *Shape) Kind() Kind { return s.kind }
func (s *Shape) Color() Color { return s.color }
func (s *Shape) Rotation() int { return s.rotation }
func (s *Shape) Pivot() Cell { return s.pivot }
func (s *Shape) String() string { return fmt.Sprintf("%s%d@%v", s.kind, s.rotation, s.pivot) }

// Blocks returns the shape's blocks. The slice is fresh; the blocks are not.
func (s *Shape) Blocks() []*Block {
	blocks := s.blocks
	return blocks[:]
}

// Cells returns the current block positions.
func (s *Shape) Cells() [4]Cell {
	var cells [4]Cell
	for i, b := range s.blocks {
		cells[i] = b.Cell()
	}
	return cells
}

// CellsAt returns the positions the shape's blocks would take at an arbitrary
// rotation and pivot.
func (s *Shape) CellsAt(rotation int, pivot Cell) [4]Cell {
	var cells [4]Cell
	for i, off := range s.kind.Offsets(rotation) {
		cells[i] = pivot.Add(off)
	}
	return cells
}

// Rotated returns the positions after one rotation step in dir.
func (s *Shape) Rotated(dir int) [4]Cell {
	return s.CellsAt(s.rotation+dir, s.pivot)
}

// Translated returns the positions after shifting by the given deltas.
func (s *Shape) Translated(deltaColumn, deltaRow int) [4]Cell {
	return s.CellsAt(s.rotation, s.pivot.Add(Cell{Column: deltaColumn, Row: deltaRow}))
}

// Rotate turns the shape one step in dir.
func (s *Shape) Rotate(dir int) {
	s.rotation = normalizeRotation(s.rotation + dir)
	s.sync()
}

// Shift moves the shape and its pivot by the given deltas.
func (s *Shape) Shift(deltaColumn, deltaRow int) {
	s.pivot = s.pivot.Add(Cell{Column: deltaColumn, Row: deltaRow})
	s.sync()
}

// MoveTo places the pivot at cell, keeping the rotation.
func (s *Shape) MoveTo(pivot Cell) {
	s.pivot = pivot
	s.sync()
}

func (s *Shape) sync() {
	for i, cell := range s.CellsAt(s.rotation, s.pivot) {
		s.blocks[i].Column = cell.Column
		s.blocks[i].Row = cell.Row
	}
}

// LowestRow returns the largest row index covered by the shape.
func (s *Shape) LowestRow() int {
	lowest := s.blocks[0].Row
	for _, b := range s.blocks[1:] {
		lowest = max(lowest, b.Row)
	}
	return lowest
}

// BottomBlocks returns the blocks with no block of the same shape directly
// beneath them, that is the blocks that touch whatever the shape lands on.
func (s *Shape) BottomBlocks() []*Block {
	var bottom []*Block
	for _, b := range s.blocks {
		covered := false
		for _, o := range s.blocks {
			if o.Column == b.Column && o.Row == b.Row+1 {
				covered = true
				break
			}
		}
		if !covered {
			bottom = append(bottom, b)
		}
	}
	return bottom
}
