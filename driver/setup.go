package driver

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Setup selects the systems NewStandard registers.
type Setup struct {
	SpawnDelay   time.Duration
	RestartDelay time.Duration
	AutoRestart  bool
	Autopilot    bool
}

// Standard is a scheduler with the usual systems registered. The systems are
// exposed so front ends can read their state.
type Standard struct {
	*Scheduler
	Autopilot *AutopilotSystem
	Actions   *InputSystem
	Gravity   *GravitySystem
	Spawn     *SpawnSystem
	Restart   *RestartSystem
}

// NewStandard registers autopilot (optional), input, gravity, spawn and
// restart in that order.
func NewStandard(game *tetris.Controller, setup Setup) *Standard {
	st := &Standard{
		Scheduler: NewScheduler(game),
		Actions:   &InputSystem{},
		Gravity:   &GravitySystem{},
		Spawn:     &SpawnSystem{Delay: setup.SpawnDelay},
		Restart:   &RestartSystem{Delay: setup.RestartDelay, Auto: setup.AutoRestart},
	}
	if setup.Autopilot {
		st.Autopilot = &AutopilotSystem{}
		st.Register(st.Autopilot)
	}
	st.Register(st.Actions)
	st.Register(st.Gravity)
	st.Register(st.Spawn)
	st.Register(st.Restart)
	return st
}
