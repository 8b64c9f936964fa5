package tetris

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// State is the controller's position in the falling-shape lifecycle.
type State int

const (
	// StateIdle means no game has begun.
	StateIdle State = iota
	// StateFalling means a shape is live and accepts moves.
	StateFalling
	// StateLanded means the last shape locked and NewShape is due.
	StateLanded
	// StateGameOver is terminal until the next BeginGame.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFalling:
		return "falling"
	case StateLanded:
		return "landed"
	case StateGameOver:
		return "game over"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Controller.
type Option func(*Controller)

// WithRules replaces DefaultRules.
func WithRules(rules Rules) Option {
	return func(c *Controller) {
		c.rules = rules
	}
}

// WithGenerator sets the piece source. Without it pieces are drawn uniformly
// from a time-seeded source.
func WithGenerator(g Generator) Option {
	return func(c *Controller) {
		c.generator = g
	}
}

// WithListener delivers queued events to l at the end of every operation.
// Without a listener events stay queued until drained.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listener = l
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller runs one game at a time. It never blocks and never schedules
// anything itself: every method is an immediate state transition whose
// outcome is returned and queued as events. It is not safe for concurrent use.
type Controller struct {
	rules     Rules
	grid      *Grid
	generator Generator
	listener  Listener
	logger    *log.Logger
	events    EventQueue

	state   State
	falling *Shape
	next    *Shape
	score   int
	level   int
	lines   int
	pieces  int
}

// NewController creates an idle controller. Call BeginGame to start playing.
func NewController(opts ...Option) (*Controller, error) {
	c := &Controller{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.rules.Validate(); err != nil {
		return nil, err
	}
	if c.generator == nil {
		c.generator = NewRandomGenerator(NewRand(0))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	c.grid = NewGrid(c.rules.Width, c.rules.Height)
	c.level = c.rules.StartLevel
	return c, nil
}

func (c *Controller) Rules() Rules { return c.rules }
func (c *Controller) Grid() *Grid { return c.grid }
func (c *Controller) State() State { return c.state }
func (c *Controller) FallingShape() *Shape { return c.falling }
func (c *Controller) NextShape() *Shape { return c.next }
func (c *Controller) Score() int { return c.score }
func (c *Controller) Level() int { return c.level }
func (c *Controller) Lines() int { return c.lines }
func (c *Controller) Events() *EventQueue { return &c.events }

// TickInterval returns the gravity period for the current level.
func (c *Controller) TickInterval() time.Duration {
	return c.rules.TickInterval(c.level)
}

// Pieces returns how many shapes have entered play this game.
func (c *Controller) Pieces() int {
	return c.pieces
}

// BeginGame clears the board, resets score and level and puts the first shape
// into play. It may be called at any time to restart.
func (c *Controller) BeginGame() {
	c.grid.ClearAll()
	c.falling = nil
	c.score = 0
	c.lines = 0
	c.pieces = 0
	c.level = c.rules.StartLevel
	c.state = StateIdle

	c.logger.Debug("game began", "level", c.level)
	c.events.Push(GameBegan{Level: c.level, Score: c.score})

	c.next = c.spawn()
	c.promote()
	c.flush()
}

// NewShape puts the pending next shape into play and draws a fresh next one.
// If the spawn cells are taken the game ends and falling is nil.
func (c *Controller) NewShape() (falling, next *Shape) {
	if c.state != StateLanded {
		panic(fmt.Sprintf("tetris: NewShape called in state %s", c.state))
	}
	c.promote()
	c.flush()
	return c.falling, c.next
}

// LetShapeFall is the gravity tick. It moves the falling shape down one row
// and returns nil, or locks it where it is when it cannot move and returns
// the resulting landing.
func (c *Controller) LetShapeFall() *Landing {
	s := c.mustFall("LetShapeFall")
	if c.fits(s.Translated(0, 1)) {
		s.Shift(0, 1)
		c.events.Push(ShapeMoved{Shape: s})
		c.flush()
		return nil
	}

	landing := c.lock(false)
	c.flush()
	return landing
}

// MoveShapeLeft shifts the falling shape one column left if there is room.
func (c *Controller) MoveShapeLeft() bool {
	return c.shift("MoveShapeLeft", -1)
}

// MoveShapeRight shifts the falling shape one column right if there is room.
func (c *Controller) MoveShapeRight() bool {
	return c.shift("MoveShapeRight", 1)
}

// RotateShape turns the falling shape clockwise if the result fits. There is
// no wall kick: a rotation that does not fit in place is dropped.
func (c *Controller) RotateShape() bool {
	s := c.mustFall("RotateShape")
	if !c.fits(s.Rotated(Clockwise)) {
		return false
	}
	s.Rotate(Clockwise)
	c.events.Push(ShapeMoved{Shape: s})
	c.flush()
	return true
}

// DropShape moves the falling shape as far down as it goes and locks it.
func (c *Controller) DropShape() *Landing {
	s := c.mustFall("DropShape")
	distance := c.dropDistance(s)
	if distance > 0 {
		s.Shift(0, distance)
	}
	c.events.Push(ShapeDropped{Shape: s, Distance: distance})

	landing := c.lock(true)
	c.flush()
	return landing
}

// DropPreview returns the cells the falling shape would occupy after a drop.
func (c *Controller) DropPreview() ([4]Cell, bool) {
	if c.falling == nil {
		return [4]Cell{}, false
	}
	return c.falling.Translated(0, c.dropDistance(c.falling)), true
}

// RemoveCompletedLines clears full rows, collapses what is above them and
// repeats until no row is full, scoring every pass. Landing already does
// this, so on a board only changed by the controller it finds nothing.
func (c *Controller) RemoveCompletedLines() ClearResult {
	level := c.level
	result := c.clearLines()
	if c.level > level {
		c.events.Push(LevelUp{Level: c.level})
	}
	c.flush()
	return result
}

// RemoveAllBlocks empties the grid and returns what it held. A second call
// returns nothing.
func (c *Controller) RemoveAllBlocks() []*Block {
	blocks := c.grid.ClearAll()
	c.logger.Debug("grid swept", "blocks", len(blocks))
	return blocks
}

func (c *Controller) spawn() *Shape {
	p := c.generator.Next()
	return NewShape(p.Kind, p.Color, Cell{Column: c.rules.SpawnColumn, Row: c.rules.SpawnRow})
}

func (c *Controller) promote() {
	c.falling = c.next
	c.next = c.spawn()

	if !c.fits(c.falling.Cells()) {
		c.logger.Debug("spawn blocked", "shape", c.falling, "score", c.score)
		c.falling = nil
		c.state = StateGameOver
		c.events.Push(GameEnded{Score: c.score, Level: c.level, Lines: c.lines})
		return
	}

	c.pieces++
	c.state = StateFalling
	c.events.Push(ShapeMoved{Shape: c.falling})
}

func (c *Controller) shift(op string, deltaColumn int) bool {
	s := c.mustFall(op)
	if !c.fits(s.Translated(deltaColumn, 0)) {
		return false
	}
	s.Shift(deltaColumn, 0)
	c.events.Push(ShapeMoved{Shape: s})
	c.flush()
	return true
}

func (c *Controller) lock(dropped bool) *Landing {
	s := c.falling
	for _, b := range s.blocks {
		c.grid.Insert(b)
	}
	c.falling = nil
	c.state = StateLanded
	c.logger.Debug("shape locked", "shape", s, "dropped", dropped)

	level := c.level
	landing := &Landing{Shape: s, Dropped: dropped, Clear: c.clearLines()}
	c.events.Push(ShapeLanded{Landing: landing})
	if c.level > level {
		c.events.Push(LevelUp{Level: c.level})
	}
	return landing
}

func (c *Controller) clearLines() ClearResult {
	var result ClearResult
	for {
		removed := c.grid.RemoveCompletedRows()
		if len(removed) == 0 {
			return result
		}
		fallen := c.grid.CollapseRowsAbove(RowIndices(removed))

		points := c.rules.LineScore(len(removed), c.level)
		c.score += points
		c.lines += len(removed)
		c.level = max(c.level, c.rules.LevelFor(c.lines))

		result.Passes = append(result.Passes, ClearPass{Removed: removed, Fallen: fallen, Points: points})
		c.logger.Debug("rows cleared", "rows", len(removed), "points", points, "score", c.score, "level", c.level)
	}
}

func (c *Controller) dropDistance(s *Shape) int {
	distance := 0
	for c.fits(s.Translated(0, distance+1)) {
		distance++
	}
	return distance
}

func (c *Controller) fits(cells [4]Cell) bool {
	return c.grid.Fits(cells[:]...)
}

func (c *Controller) mustFall(op string) *Shape {
	if c.falling == nil {
		panic(fmt.Sprintf("tetris: %s called without a falling shape (state %s)", op, c.state))
	}
	return c.falling
}

func (c *Controller) flush() {
	if c.listener != nil {
		c.events.Flush(c.listener.Notify)
	}
}
