package driver

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against one game, frame by frame. Events the game
// queued during a frame are delivered to listeners once every system has run.
type Scheduler struct {
	game        *tetris.Controller
	input       *Input
	systems     []System
	systemStats []*systemStatsInternal
	listeners   []tetris.Listener
	frames      int64
}

// NewScheduler creates a scheduler driving game. The controller should not
// have its own listener; register listeners on the scheduler instead.
func NewScheduler(game *tetris.Controller) *Scheduler {
	return &Scheduler{
		game:  game,
		input: NewInput(),
	}
}

func (s *Scheduler) Game() *tetris.Controller { return s.game }
func (s *Scheduler) Input() *Input { return s.input }

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Listen adds a listener for game events.
func (s *Scheduler) Listen(l tetris.Listener) {
	s.listeners = append(s.listeners, l)
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the game's events.
func (s *Scheduler) Once(dt float64) {
	frame := &Frame{DeltaTime: dt, Game: s.game, Input: s.input}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	s.frames++

	s.game.Events().Flush(func(ev tetris.Event) {
		for _, l := range s.listeners {
			l.Notify(ev)
		}
	})
}

// Run drives the game in real time: one frame per tick of interval, each fed
// the wall-clock time since the previous frame. It returns when ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Once(dt.Seconds())
		}
	}
}

// GetStats snapshots frame and per-system timings, in registration order.
// A system that has not run yet reports zero durations.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, 0, len(s.systemStats)),
	}
	for _, st := range s.systemStats {
		stats.Systems = append(stats.Systems, st.snapshot())
		stats.TotalExecutions += st.executionCount
	}
	return stats
}

func (st *systemStatsInternal) snapshot() SystemStats {
	out := SystemStats{
		Name:           st.name,
		ExecutionCount: st.executionCount,
		MaxDuration:    st.maxDuration,
		LastDuration:   st.lastDuration,
		TotalDuration:  st.totalDuration,
	}
	if st.executionCount > 0 {
		out.MinDuration = st.minDuration
		out.AvgDuration = st.totalDuration / time.Duration(st.executionCount)
	}
	return out
}
