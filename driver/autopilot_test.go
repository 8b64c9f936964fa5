package driver_test

import (
	"testing"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutopilotFillsTheWell(t *testing.T) {
	game := newGame(t)
	game.BeginGame()
	for column := range 9 {
		game.Grid().Insert(tetris.NewBlock(column, 19, tetris.Blue))
	}
	pilot := &driver.AutopilotSystem{}

	p, ok := pilot.Plan(game)

	require.True(t, ok)
	assert.Equal(t, 1, p.Drops)
	assert.Equal(t, 1, p.Rotations)
	assert.Equal(t, 5, p.Shift)
}

func TestAutopilotPlanIsAppliedInTheSameFrame(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{Autopilot: true})
	game.BeginGame()
	for column := range 9 {
		game.Grid().Insert(tetris.NewBlock(column, 19, tetris.Blue))
	}

	st.Once(0)

	assert.Equal(t, 1, game.Lines())
	assert.Equal(t, 100, game.Score())
	assert.Equal(t, int64(1), st.Autopilot.Plans)
	assert.Zero(t, st.Actions.Rejected)
	assert.Equal(t, 3, game.Grid().ColumnHeight(9))
}

func TestAutopilotIgnoresPlayerMoves(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{Autopilot: true})
	game.BeginGame()
	for column := range 9 {
		game.Grid().Insert(tetris.NewBlock(column, 19, tetris.Blue))
	}

	st.Input().Push(driver.ActionLeft, driver.ActionLeft, driver.ActionRotate)
	st.Once(0)

	assert.Equal(t, 1, game.Lines())
	assert.Equal(t, 3, game.Grid().ColumnHeight(9))
	assert.Equal(t, int64(3), st.Autopilot.Ignored)
	assert.Zero(t, st.Actions.Rejected)
}

func TestAutopilotLetsRestartThrough(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{Autopilot: true})
	game.BeginGame()
	game.Grid().Insert(tetris.NewBlock(0, 19, tetris.Blue))

	st.Input().Push(driver.ActionRestart)
	st.Once(0)

	assert.Zero(t, st.Autopilot.Ignored)
	assert.Equal(t, int64(1), st.Actions.Applied)
	assert.Equal(t, 0, game.Grid().Len())
}

func TestAutopilotPlaysWithoutHelp(t *testing.T) {
	game, err := tetris.NewController(tetris.WithGenerator(tetris.NewBagGenerator(tetris.NewRand(1))))
	require.NoError(t, err)
	st := driver.NewStandard(game, driver.Setup{Autopilot: true, AutoRestart: true})
	session := driver.NewSession(nil)
	st.Listen(session)
	game.BeginGame()

	for range 2000 {
		st.Once(1.0 / 60)
	}

	lines := session.Current().Lines
	for _, g := range session.Games() {
		lines += g.Lines
	}
	assert.Greater(t, lines, 10)
	assert.Positive(t, session.Clears(1)+session.Clears(2)+session.Clears(3)+session.Clears(4))
}
