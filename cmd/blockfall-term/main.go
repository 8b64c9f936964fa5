package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

const frameInterval = 16 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// the screen owns stdout, so logs only go to a configured file
	logger, closer, err := cfg.NewLogger(io.Discard, "blockfall-term")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	gen, err := cfg.Generator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	controller, err := tetris.NewController(
		tetris.WithRules(cfg.TetrisRules()),
		tetris.WithGenerator(gen),
		tetris.WithLogger(logger.WithPrefix("engine")),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	st := driver.NewStandard(controller, driver.Setup{
		SpawnDelay:   cfg.Game.SpawnDelay,
		RestartDelay: cfg.Game.RestartDelay,
		AutoRestart:  cfg.Game.AutoRestart,
	})
	st.Register(&RenderSystem{Screen: screen})
	session := driver.NewSession(logger)
	st.Listen(session)

	controller.BeginGame()
	run(screen, st)
	logGames(logger, session)
}

// logGames records the game still in play, then logs every game of the session.
func logGames(logger *log.Logger, session *driver.Session) {
	session.Close()
	for _, g := range session.Games() {
		logger.Info("game", "id", g.ID, "score", g.Score, "lines", g.Lines)
	}
}

func run(screen tcell.Screen, st *driver.Standard) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	lastTime := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !handleEvent(ev, st.Input()) {
				return
			}
		case now := <-ticker.C:
			st.Once(now.Sub(lastTime).Seconds())
			lastTime = now
		}
	}
}

// handleEvent maps keys to actions. It returns false when the player quits.
func handleEvent(ev tcell.Event, input *driver.Input) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			input.Push(driver.ActionLeft)
		case tcell.KeyRight:
			input.Push(driver.ActionRight)
		case tcell.KeyUp:
			input.Push(driver.ActionRotate)
		case tcell.KeyDown:
			input.Push(driver.ActionSoftDrop)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				input.Push(driver.ActionHardDrop)
			case 'p':
				input.TogglePause()
			case 'r':
				input.Push(driver.ActionRestart)
			}
		}
	case nil:
		// PollEvent returns nil once the screen is finalized
		return false
	}
	return true
}
