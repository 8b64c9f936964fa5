package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRules is wrapped by every Rules validation failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the tunable constants of a game.
type Rules struct {
	Width  int
	Height int

	// SpawnColumn and SpawnRow locate the pivot of every new shape.
	SpawnColumn int
	SpawnRow    int

	StartLevel    int
	LinesPerLevel int

	// PointsPerLine scales LineRewards, which is indexed by the number of
	// rows removed together.
	PointsPerLine int
	LineRewards   []int

	BaseTick time.Duration
	TickStep time.Duration
	MinTick  time.Duration
}

// DefaultRules returns a 10x20 board with the classic 1/3/5/8 reward table and
// a 600ms tick at level one.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		SpawnColumn:   4,
		SpawnRow:      0,
		StartLevel:    1,
		LinesPerLevel: 10,
		PointsPerLine: 100,
		LineRewards:   []int{0, 1, 3, 5, 8},
		BaseTick:      600 * time.Millisecond,
		TickStep:      100 * time.Millisecond,
		MinTick:       50 * time.Millisecond,
	}
}

// Validate checks that a game can be played with these rules.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4 || r.Height < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidRules, r.Width, r.Height)
	case r.SpawnColumn < 1 || r.SpawnColumn > r.Width-3:
		return fmt.Errorf("%w: spawn column %d does not fit every kind on a %d wide board", ErrInvalidRules, r.SpawnColumn, r.Width)
	case r.SpawnRow < 0 || r.SpawnRow > r.Height-2:
		return fmt.Errorf("%w: spawn row %d outside board", ErrInvalidRules, r.SpawnRow)
	case r.StartLevel < 1:
		return fmt.Errorf("%w: start level %d", ErrInvalidRules, r.StartLevel)
	case r.LinesPerLevel < 1:
		return fmt.Errorf("%w: lines per level %d", ErrInvalidRules, r.LinesPerLevel)
	case r.PointsPerLine < 1:
		return fmt.Errorf("%w: points per line %d", ErrInvalidRules, r.PointsPerLine)
	case len(r.LineRewards) < 2:
		return fmt.Errorf("%w: line rewards need at least one entry past zero", ErrInvalidRules)
	case r.MinTick <= 0 || r.BaseTick < r.MinTick || r.TickStep < 0:
		return fmt.Errorf("%w: tick %v step %v min %v", ErrInvalidRules, r.BaseTick, r.TickStep, r.MinTick)
	}
	for n := 1; n < len(r.LineRewards); n++ {
		if r.LineRewards[n] <= r.LineRewards[n-1] {
			return fmt.Errorf("%w: line rewards must strictly increase, got %v", ErrInvalidRules, r.LineRewards)
		}
	}
	return nil
}

// LineScore returns the points for removing rows at once on the given level.
// Past the end of the reward table each extra row adds the table's last step.
func (r Rules) LineScore(rows, level int) int {
	if rows <= 0 {
		return 0
	}
	last := len(r.LineRewards) - 1
	units := 0
	if rows <= last {
		units = r.LineRewards[rows]
	} else {
		step := r.LineRewards[last] - r.LineRewards[last-1]
		units = r.LineRewards[last] + (rows-last)*step
	}
	return units * r.PointsPerLine * level
}

// LevelFor returns the level reached after clearing lines.
func (r Rules) LevelFor(lines int) int {
	return r.StartLevel + lines/r.LinesPerLevel
}

// TickInterval returns the gravity period at level.
func (r Rules) TickInterval(level int) time.Duration {
	steps := time.Duration(max(level-1, 0))
	return max(r.BaseTick-steps*r.TickStep, r.MinTick)
}
