package driver

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// GameSummary is the record of one finished game.
type GameSummary struct {
	ID       uuid.UUID
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Drops    int
	MaxClear int
}

// Session listens to a game's events across restarts. It tags every game
// with an id, logs the lifecycle, and keeps a summary per finished game plus
// a histogram of how many rows each clear removed.
type Session struct {
	logger  *log.Logger
	base    *log.Logger
	current GameSummary
	active  bool
	games   []GameSummary
	clears  *intmap.Map[int, int]
}

// NewSession creates a session logging to logger. A nil logger discards.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		logger: logger,
		base:   logger,
		clears: intmap.New[int, int](8),
	}
}

func (s *Session) Notify(ev tetris.Event) {
	switch e := ev.(type) {
	case tetris.GameBegan:
		if s.active {
			s.finish(s.current.Score, s.current.Level, s.current.Lines)
		}
		s.current = GameSummary{ID: uuid.New(), Level: e.Level}
		s.active = true
		s.logger = s.base.With("session", s.current.ID.String())
		s.logger.Info("game began", "level", e.Level)

	case tetris.ShapeDropped:
		s.current.Drops++
		s.logger.Debug("shape dropped", "shape", e.Shape, "distance", e.Distance)

	case tetris.ShapeLanded:
		s.current.Pieces++
		lines := e.Landing.Clear.Lines()
		if lines == 0 {
			return
		}
		n, _ := s.clears.Get(lines)
		s.clears.Put(lines, n+1)
		s.current.Lines += lines
		s.current.Score += e.Landing.Clear.Points()
		s.current.MaxClear = max(s.current.MaxClear, lines)
		s.logger.Debug("rows cleared", "lines", lines, "rows", e.Landing.Clear.Rows(), "points", e.Landing.Clear.Points())

	case tetris.LevelUp:
		s.current.Level = e.Level
		s.logger.Info("level up", "level", e.Level)

	case tetris.GameEnded:
		s.finish(e.Score, e.Level, e.Lines)
	}
}

func (s *Session) finish(score, level, lines int) {
	s.current.Score = score
	s.current.Level = level
	s.current.Lines = lines
	s.games = append(s.games, s.current)
	s.active = false
	s.logger.Info("game ended", "score", score, "level", level, "lines", lines, "pieces", s.current.Pieces)
}

// Close records the game in progress, if any, as finished with its current
// totals. Use it when a game is abandoned rather than lost.
func (s *Session) Close() {
	if s.active {
		s.finish(s.current.Score, s.current.Level, s.current.Lines)
	}
}

// Current returns the summary of the game in progress.
func (s *Session) Current() GameSummary {
	return s.current
}

// Games returns the finished games in order.
func (s *Session) Games() []GameSummary {
	return s.games
}

// Clears returns how many landings removed exactly lines rows at once.
func (s *Session) Clears(lines int) int {
	n, _ := s.clears.Get(lines)
	return n
}

// ClearKinds returns how many distinct clear sizes have been seen.
func (s *Session) ClearKinds() int {
	return s.clears.Len()
}

// Best returns the highest scoring finished game.
func (s *Session) Best() (GameSummary, bool) {
	if len(s.games) == 0 {
		return GameSummary{}, false
	}
	best := s.games[0]
	for _, g := range s.games[1:] {
		if g.Score > best.Score {
			best = g
		}
	}
	return best, true
}

// Reset forgets every recorded game.
func (s *Session) Reset() {
	s.games = nil
	s.current = GameSummary{}
	s.active = false
	s.clears.Clear()
}
