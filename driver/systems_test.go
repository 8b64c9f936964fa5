package driver_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityTicksAtLevelInterval(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{})
	game.BeginGame()
	shape := game.FallingShape()

	st.Once(0.3)
	assert.Equal(t, 0, shape.Pivot().Row)
	st.Once(0.3)
	assert.Equal(t, 1, shape.Pivot().Row)
	st.Once(1.2)
	assert.Equal(t, 3, shape.Pivot().Row)
	assert.Equal(t, int64(3), st.Gravity.Ticks)
}

func TestInputMovesFallingShape(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{})
	game.BeginGame()

	st.Input().Push(driver.ActionLeft, driver.ActionLeft, driver.ActionSoftDrop)
	st.Once(0)

	assert.Equal(t, tetris.Cell{Column: 2, Row: 1}, game.FallingShape().Pivot())
	assert.Equal(t, int64(3), st.Actions.Applied)

	st.Input().Push(driver.ActionRotate)
	st.Once(0)
	assert.Equal(t, 1, game.FallingShape().Rotation())
}

func TestPauseDiscardsInputAndStopsGravity(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{})
	game.BeginGame()

	require.True(t, st.Input().TogglePause())
	st.Input().Push(driver.ActionRight)
	st.Once(5)

	assert.Equal(t, tetris.Cell{Column: 4, Row: 0}, game.FallingShape().Pivot())
	assert.Equal(t, 0, st.Input().Len())

	require.False(t, st.Input().TogglePause())
	st.Once(0.6)
	assert.Equal(t, 1, game.FallingShape().Pivot().Row)
}

func TestSpawnWaitsForDelay(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{SpawnDelay: 100 * time.Millisecond})
	game.BeginGame()

	st.Input().Push(driver.ActionHardDrop)
	st.Once(0)
	assert.Equal(t, tetris.StateLanded, game.State())

	st.Input().Push(driver.ActionLeft)
	st.Once(0.05)
	assert.Equal(t, tetris.StateLanded, game.State())
	assert.Equal(t, int64(1), st.Actions.Rejected)

	st.Once(0.05)
	assert.Equal(t, tetris.StateFalling, game.State())
	assert.Equal(t, 2, game.Pieces())
}

func TestRestartSweepsOnceThenBegins(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{RestartDelay: time.Second, AutoRestart: true})
	game.BeginGame()
	game.DropShape()
	game.Grid().Insert(tetris.NewBlock(4, 0, tetris.Red))

	st.Once(0)

	assert.Equal(t, tetris.StateGameOver, game.State())
	assert.Len(t, st.Restart.Swept, 5)
	assert.Equal(t, 0, game.Grid().Len())

	st.Once(0.5)
	assert.Equal(t, tetris.StateGameOver, game.State())
	assert.Len(t, st.Restart.Swept, 5)

	st.Once(0.5)
	assert.Equal(t, tetris.StateFalling, game.State())
	assert.Equal(t, 1, st.Restart.Restarts)
}

func TestRestartActionBeginsNewGame(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{})
	game.BeginGame()
	game.DropShape()

	st.Input().Push(driver.ActionRestart)
	st.Once(0)

	assert.Equal(t, tetris.StateFalling, game.State())
	assert.Equal(t, 0, game.Grid().Len())
}

func TestRestartWorksWhilePaused(t *testing.T) {
	game := newGame(t)
	st := driver.NewStandard(game, driver.Setup{})
	game.BeginGame()
	game.DropShape()
	require.True(t, st.Input().TogglePause())

	st.Input().Push(driver.ActionRight, driver.ActionRestart, driver.ActionLeft)
	st.Once(0)

	assert.Equal(t, tetris.StateFalling, game.State())
	assert.Equal(t, 0, game.Grid().Len())
	assert.Equal(t, tetris.Cell{Column: 4, Row: 0}, game.FallingShape().Pivot())
	assert.Equal(t, int64(1), st.Actions.Applied)
	assert.True(t, st.Input().Paused())
}
