package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRulesAreValid(t *testing.T) {
	assert.NoError(t, tetris.DefaultRules().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *tetris.Rules)
	}{
		{"narrow board", func(r *tetris.Rules) { r.Width = 3 }},
		{"spawn column at wall", func(r *tetris.Rules) { r.SpawnColumn = 0 }},
		{"spawn column too far right", func(r *tetris.Rules) { r.SpawnColumn = 8 }},
		{"spawn row below board", func(r *tetris.Rules) { r.SpawnRow = 19 }},
		{"start level zero", func(r *tetris.Rules) { r.StartLevel = 0 }},
		{"lines per level zero", func(r *tetris.Rules) { r.LinesPerLevel = 0 }},
		{"no points", func(r *tetris.Rules) { r.PointsPerLine = 0 }},
		{"short reward table", func(r *tetris.Rules) { r.LineRewards = []int{0} }},
		{"flat rewards", func(r *tetris.Rules) { r.LineRewards = []int{0, 1, 1} }},
		{"min tick zero", func(r *tetris.Rules) { r.MinTick = 0 }},
		{"base below min", func(r *tetris.Rules) { r.BaseTick = 10 * time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tetris.DefaultRules()
			tt.modify(&r)
			assert.ErrorIs(t, r.Validate(), tetris.ErrInvalidRules)
		})
	}
}

func TestLineScore(t *testing.T) {
	r := tetris.DefaultRules()

	assert.Equal(t, 0, r.LineScore(0, 1))
	assert.Equal(t, 100, r.LineScore(1, 1))
	assert.Equal(t, 300, r.LineScore(2, 1))
	assert.Equal(t, 500, r.LineScore(3, 1))
	assert.Equal(t, 800, r.LineScore(4, 1))
	assert.Equal(t, 1600, r.LineScore(4, 2))
	// past the table every extra row adds the last step of three
	assert.Equal(t, 1100, r.LineScore(5, 1))
}

func TestLevelAndTick(t *testing.T) {
	r := tetris.DefaultRules()

	assert.Equal(t, 1, r.LevelFor(0))
	assert.Equal(t, 1, r.LevelFor(9))
	assert.Equal(t, 2, r.LevelFor(10))
	assert.Equal(t, 4, r.LevelFor(35))

	assert.Equal(t, 600*time.Millisecond, r.TickInterval(1))
	assert.Equal(t, 500*time.Millisecond, r.TickInterval(2))
	assert.Equal(t, 100*time.Millisecond, r.TickInterval(6))
	assert.Equal(t, 50*time.Millisecond, r.TickInterval(7))
	assert.Equal(t, 50*time.Millisecond, r.TickInterval(40))
}
