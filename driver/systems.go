package driver

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// InputSystem applies queued player actions. Moves only reach the game while
// a shape is falling and the game is not paused; the rest are discarded so a
// key pressed during a landing delay does not leak into the next shape.
// Restart is honoured in any state, paused included.
type InputSystem struct {
	Applied  int64
	Rejected int64
}

func (s *InputSystem) Execute(frame *Frame) {
	actions := frame.Input.Drain()
	paused := frame.Input.Paused()

	game := frame.Game
	for _, action := range actions {
		if action == ActionRestart {
			game.BeginGame()
			s.Applied++
			continue
		}
		if paused {
			continue
		}
		if game.State() != tetris.StateFalling {
			s.Rejected++
			continue
		}

		ok := true
		switch action {
		case ActionLeft:
			ok = game.MoveShapeLeft()
		case ActionRight:
			ok = game.MoveShapeRight()
		case ActionRotate:
			ok = game.RotateShape()
		case ActionSoftDrop:
			game.LetShapeFall()
		case ActionHardDrop:
			game.DropShape()
		}
		if ok {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem accumulates frame time and lets the falling shape drop one
// row per elapsed tick interval of the current level.
type GravitySystem struct {
	elapsed float64
	Ticks   int64
}

func (s *GravitySystem) Execute(frame *Frame) {
	game := frame.Game
	if frame.Input.Paused() || game.State() != tetris.StateFalling {
		s.elapsed = 0
		return
	}

	s.elapsed += frame.DeltaTime
	for game.State() == tetris.StateFalling {
		interval := game.TickInterval().Seconds()
		if s.elapsed < interval {
			return
		}
		s.elapsed -= interval
		s.Ticks++
		game.LetShapeFall()
	}
	s.elapsed = 0
}

// SpawnSystem puts the next shape into play once a landed shape has rested
// for Delay.
type SpawnSystem struct {
	Delay  time.Duration
	waited float64
}

func (s *SpawnSystem) Execute(frame *Frame) {
	game := frame.Game
	if game.State() != tetris.StateLanded {
		s.waited = 0
		return
	}
	if frame.Input.Paused() {
		return
	}

	s.waited += frame.DeltaTime
	if s.waited >= s.Delay.Seconds() {
		s.waited = 0
		game.NewShape()
	}
}

// RestartSystem sweeps the board once the game is over and, when Auto is set,
// begins a new game after Delay.
type RestartSystem struct {
	Delay time.Duration
	Auto  bool

	Swept    []*tetris.Block
	swept    bool
	waited   float64
	Restarts int
}

func (s *RestartSystem) Execute(frame *Frame) {
	game := frame.Game
	if game.State() != tetris.StateGameOver {
		s.swept = false
		s.waited = 0
		return
	}

	if !s.swept {
		s.Swept = game.RemoveAllBlocks()
		s.swept = true
	}
	if !s.Auto || frame.Input.Paused() {
		return
	}

	s.waited += frame.DeltaTime
	if s.waited >= s.Delay.Seconds() {
		s.Restarts++
		game.BeginGame()
	}
}
