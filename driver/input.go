package driver

import (
	"fmt"
	"sync"
)

// Action is a player command waiting to be applied to the falling shape.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionRestart
)

var actionNames = []string{"left", "right", "rotate", "soft_drop", "hard_drop", "restart"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Input collects actions between frames. Front ends push from whatever
// goroutine reads the keyboard; the InputSystem drains once per frame.
type Input struct {
	mu      sync.Mutex
	pending []Action
	paused  bool
}

func NewInput() *Input {
	return &Input{}
}

// Push queues actions in order.
func (in *Input) Push(actions ...Action) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.pending = append(in.pending, actions...)
}

// Drain returns the queued actions and clears the queue.
func (in *Input) Drain() []Action {
	in.mu.Lock()
	defer in.mu.Unlock()
	actions := in.pending
	in.pending = nil
	return actions
}

// Len returns the number of queued actions.
func (in *Input) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.pending)
}

// TogglePause flips the pause flag and returns the new value.
func (in *Input) TogglePause() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.paused = !in.paused
	return in.paused
}

func (in *Input) Paused() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.paused
}
