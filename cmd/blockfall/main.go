package main

import (
	"flag"
	"fmt"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

const sidebarWidth = 200

func main() {
	autopilot := flag.Bool("autopilot", false, "let the autopilot play")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, closer, err := cfg.NewLogger(os.Stderr, "blockfall")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	gen, err := cfg.Generator()
	if err != nil {
		logger.Fatal("bad config", "err", err)
	}
	controller, err := tetris.NewController(
		tetris.WithRules(cfg.TetrisRules()),
		tetris.WithGenerator(gen),
		tetris.WithLogger(logger.WithPrefix("engine")),
	)
	if err != nil {
		logger.Fatal("bad rules", "err", err)
	}

	st := driver.NewStandard(controller, driver.Setup{
		SpawnDelay:   cfg.Game.SpawnDelay,
		RestartDelay: cfg.Game.RestartDelay,
		AutoRestart:  cfg.Game.AutoRestart,
		Autopilot:    *autopilot,
	})
	session := driver.NewSession(logger)
	st.Listen(session)

	rules := controller.Rules()
	width := rules.Width*cfg.Display.CellSize + sidebarWidth
	height := rules.Height * cfg.Display.CellSize

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Blockfall", width, height)
	imgui.CurrentIO().SetIniFilename("")

	game := &Game{
		driver:   st,
		session:  session,
		backend:  backend,
		overlay:  cfg.Display.DebugOverlay,
		cellSize: float32(cfg.Display.CellSize),
	}
	controller.BeginGame()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop", "err", err)
	}
	session.Close()
	if best, ok := session.Best(); ok {
		logger.Info("best game", "score", best.Score, "lines", best.Lines, "level", best.Level)
	}
}
