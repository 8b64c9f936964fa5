package tetris

// Event is a lifecycle notification emitted by the Controller.
type Event interface {
	Name() string
}

// GameBegan is emitted when BeginGame has reset the board.
type GameBegan struct {
	Level int
	Score int
}

// GameEnded is emitted when a new shape cannot be placed at the spawn cell.
type GameEnded struct {
	Score int
	Level int
	Lines int
}

// LevelUp is emitted when cleared lines cross a level threshold.
type LevelUp struct {
	Level int
}

// ShapeDropped is emitted when a hard drop has moved the shape to its resting
// place, just before it locks.
type ShapeDropped struct {
	Shape    *Shape
	Distance int
}

// ShapeLanded is emitted after a shape locked into the grid and every line
// clear it caused has been resolved.
type ShapeLanded struct {
	Landing *Landing
}

// ShapeMoved is emitted after a spawn, translation or rotation.
type ShapeMoved struct {
	Shape *Shape
}

func (GameBegan) Name() string    { return "game_began" }
func (GameEnded) Name() string    { return "game_ended" }
func (LevelUp) Name() string      { return "level_up" }
func (ShapeDropped) Name() string { return "shape_dropped" }
func (ShapeLanded) Name() string  { return "shape_landed" }
func (ShapeMoved) Name() string   { return "shape_moved" }

// Listener receives events synchronously at the end of every operation.
type Listener interface {
	Notify(ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) Notify(ev Event) { f(ev) }

// EventQueue buffers events in emission order until they are flushed.
type EventQueue struct {
	events   []Event
	flushing bool
}

// Push queues an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns the pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}

// Flush hands pending events to fn one at a time until the queue is empty.
// fn may trigger operations that queue new events; they are delivered after
// everything queued before them. A Flush reached from inside fn returns
// immediately and leaves delivery to the outer one.
func (q *EventQueue) Flush(fn func(Event)) {
	if q.flushing {
		return
	}
	q.flushing = true
	defer func() { q.flushing = false }()

	for len(q.events) > 0 {
		ev := q.events[0]
		q.events = q.events[1:]
		fn(ev)
	}
	q.events = nil
}
