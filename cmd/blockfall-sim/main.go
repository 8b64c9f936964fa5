package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	games := flag.Int("games", 10, "number of games the autopilot plays")
	maxFrames := flag.Int("max-frames", 200000, "frame limit per game")
	dt := flag.Duration("dt", time.Second/60, "simulated time per frame")
	seed := flag.Uint64("seed", 1, "piece generator seed, 0 for time")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if *writeConfig != "" {
		if err := config.Save(cfg, *writeConfig); err != nil {
			log.Fatal("save config", "err", err)
		}
		log.Info("config written", "path", *writeConfig)
		return
	}
	cfg.Game.Seed = *seed

	logger, closer, err := cfg.NewLogger(os.Stderr, "sim")
	if err != nil {
		log.Fatal("logger", "err", err)
	}
	defer closer.Close()

	sim, err := newSimulation(cfg, logger)
	if err != nil {
		logger.Fatal("setup", "err", err)
	}

	report := &Report{
		Games:      *games,
		MaxFrames:  *maxFrames,
		FrameDelta: *dt,
		Seed:       *seed,
		Randomizer: cfg.Game.Randomizer,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running simulation", "games", *games, "dt", *dt)
	start := time.Now()
	for range *games {
		frames := sim.playOne(*maxFrames, dt.Seconds())
		report.TotalFrames += int64(frames)
		report.FrameTime.Samples = append(report.FrameTime.Samples, sim.lastFrameTimes...)
	}
	report.TotalTime = time.Since(start)
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(sim)

	fmt.Println("\n--- Blockfall Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

type simulation struct {
	game           *tetris.Controller
	driver         *driver.Standard
	session        *driver.Session
	lastFrameTimes []time.Duration
}

func newSimulation(cfg config.Config, logger *log.Logger) (*simulation, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	game, err := tetris.NewController(
		tetris.WithRules(cfg.TetrisRules()),
		tetris.WithGenerator(gen),
		tetris.WithLogger(logger.WithPrefix("engine")),
	)
	if err != nil {
		return nil, err
	}

	st := driver.NewStandard(game, driver.Setup{Autopilot: true})
	session := driver.NewSession(logger)
	st.Listen(session)
	return &simulation{game: game, driver: st, session: session}, nil
}

// playOne runs a game until it ends or hits maxFrames and returns the number
// of frames it took.
func (s *simulation) playOne(maxFrames int, dt float64) int {
	s.lastFrameTimes = s.lastFrameTimes[:0]
	s.game.BeginGame()

	frames := 0
	for frames < maxFrames && s.game.State() != tetris.StateGameOver {
		start := time.Now()
		s.driver.Once(dt)
		s.lastFrameTimes = append(s.lastFrameTimes, time.Since(start))
		frames++
	}
	if s.game.State() != tetris.StateGameOver {
		s.session.Close()
	}
	return frames
}
