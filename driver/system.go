package driver

import "github.com/plus3/blockfall/tetris"

// System is one step of a frame. Systems run in registration order and may
// keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is what every system sees during one scheduler pass.
type Frame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	Game      *tetris.Controller
	Input     *Input
}
