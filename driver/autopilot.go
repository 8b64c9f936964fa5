package driver

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

const maxPreDrops = 2

// Weights scores a board after a candidate placement. Higher is better, so
// the penalties are negative.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights is a well known hand-tuned set for a 10 wide board.
var DefaultWeights = Weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// Placement is where the autopilot decided to put a shape.
type Placement struct {
	Drops     int
	Rotations int
	Shift     int
	Score     float64
}

// AutopilotSystem plays the game by queueing actions. For every new shape it
// tries each rotation and column reachable from where the shape is, scores
// the board the hard drop would leave, and queues the moves to get there.
// It must run before the InputSystem in the same frame so the plan is applied
// to the position it was computed for. Player moves queued while it is on are
// dropped; only restart gets through.
type AutopilotSystem struct {
	Weights Weights

	planned *tetris.Shape
	board   []bool
	Plans   int64
	Ignored int64
}

func (s *AutopilotSystem) Execute(frame *Frame) {
	restart := false
	for _, action := range frame.Input.Drain() {
		if action == ActionRestart {
			restart = true
		} else {
			s.Ignored++
		}
	}
	if restart {
		// plan for the new game's first shape next frame
		frame.Input.Push(ActionRestart)
		return
	}

	game := frame.Game
	shape := game.FallingShape()
	if shape == nil || shape == s.planned || frame.Input.Paused() {
		return
	}
	s.planned = shape

	p, ok := s.Plan(game)
	if !ok {
		return
	}
	s.Plans++

	for range p.Drops {
		frame.Input.Push(ActionSoftDrop)
	}
	for range p.Rotations {
		frame.Input.Push(ActionRotate)
	}
	step := ActionRight
	if p.Shift < 0 {
		step = ActionLeft
	}
	for range abs(p.Shift) {
		frame.Input.Push(step)
	}
	frame.Input.Push(ActionHardDrop)
}

// Plan returns the best placement for the falling shape. Every rotation step
// and column step on the way is checked against the grid, so the plan can be
// executed exactly.
func (s *AutopilotSystem) Plan(game *tetris.Controller) (Placement, bool) {
	shape := game.FallingShape()
	if shape == nil {
		return Placement{}, false
	}
	grid := game.Grid()
	s.snapshot(grid)

	weights := s.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights
	}

	best := Placement{Score: math.Inf(-1)}
	found := false

	// Shapes spawn with rotation room only below the pivot, so dropping a
	// row or two first opens up the other rotations.
	for drops := range maxPreDrops + 1 {
		pivot := shape.Pivot().Add(tetris.Cell{Row: drops})
		if drops > 0 {
			cells := shape.CellsAt(shape.Rotation(), pivot)
			if !grid.Fits(cells[:]...) {
				break
			}
		}
		for rotations := range tetris.NumRotations {
			if !s.reachable(shape, rotations, pivot, grid) {
				break
			}
			rotation := shape.Rotation() + rotations
			for _, dir := range []int{-1, 1} {
				start := 0
				if dir > 0 {
					start = 1
				}
				for shift := start; ; shift += dir {
					at := tetris.Cell{Column: pivot.Column + shift, Row: pivot.Row}
					cells := shape.CellsAt(rotation, at)
					if !grid.Fits(cells[:]...) {
						break
					}
					score := s.evaluate(grid, shape, rotation, at, weights)
					if !found || score > best.Score {
						best = Placement{Drops: drops, Rotations: rotations, Shift: shift, Score: score}
						found = true
					}
				}
			}
		}
	}
	return best, found
}

func (s *AutopilotSystem) reachable(shape *tetris.Shape, rotations int, pivot tetris.Cell, grid *tetris.Grid) bool {
	for r := 1; r <= rotations; r++ {
		cells := shape.CellsAt(shape.Rotation()+r, pivot)
		if !grid.Fits(cells[:]...) {
			return false
		}
	}
	return true
}

func (s *AutopilotSystem) snapshot(grid *tetris.Grid) {
	w, h := grid.Width(), grid.Height()
	if len(s.board) != w*h {
		s.board = make([]bool, w*h)
	}
	for row := range h {
		for column := range w {
			s.board[row*w+column] = grid.IsOccupied(column, row)
		}
	}
}

func (s *AutopilotSystem) evaluate(grid *tetris.Grid, shape *tetris.Shape, rotation int, at tetris.Cell, weights Weights) float64 {
	w, h := grid.Width(), grid.Height()
	board := make([]bool, len(s.board))
	copy(board, s.board)

	free := func(cells [4]tetris.Cell) bool {
		for _, c := range cells {
			if c.Column < 0 || c.Column >= w || c.Row < 0 || c.Row >= h || board[c.Row*w+c.Column] {
				return false
			}
		}
		return true
	}
	for free(shape.CellsAt(rotation, tetris.Cell{Column: at.Column, Row: at.Row + 1})) {
		at.Row++
	}
	for _, c := range shape.CellsAt(rotation, at) {
		board[c.Row*w+c.Column] = true
	}

	// compact away full rows
	lines := 0
	kept := make([]bool, 0, len(board))
	for row := h - 1; row >= 0; row-- {
		line := board[row*w : (row+1)*w]
		full := true
		for _, filled := range line {
			full = full && filled
		}
		if full {
			lines++
			continue
		}
		kept = append(kept, line...)
	}
	// kept is bottom-up; index 0 is the floor row
	rows := len(kept) / w

	height, holes, bumpiness := 0, 0, 0
	previous := -1
	for column := range w {
		top := 0
		for r := rows - 1; r >= 0; r-- {
			if kept[r*w+column] {
				top = r + 1
				break
			}
		}
		for r := range top {
			if !kept[r*w+column] {
				holes++
			}
		}
		height += top
		if previous >= 0 {
			bumpiness += abs(top - previous)
		}
		previous = top
	}

	return weights.Height*float64(height) +
		weights.Lines*float64(lines) +
		weights.Holes*float64(holes) +
		weights.Bumpiness*float64(bumpiness)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
