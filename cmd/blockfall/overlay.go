package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

func (g *Game) drawOverlay() {
	game := g.driver.Game()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 220), imgui.CondOnce)
	if imgui.BeginV("Game", nil, 0) {
		imgui.Text(fmt.Sprintf("State: %s", game.State()))
		imgui.Text(fmt.Sprintf("Falling: %v", game.FallingShape()))
		imgui.Text(fmt.Sprintf("Next: %v", game.NextShape()))
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", game.Score(), game.Level(), game.Lines()))
		imgui.Text(fmt.Sprintf("Tick: %s", game.TickInterval()))
		imgui.Text(fmt.Sprintf("Pieces: %d  Blocks: %d", game.Pieces(), game.Grid().Len()))
		imgui.Separator()
		cur := g.session.Current()
		imgui.Text(fmt.Sprintf("Session: %s", cur.ID))
		imgui.Text(fmt.Sprintf("Games: %d", len(g.session.Games())))
		imgui.Text(fmt.Sprintf("Clears 1/2/3/4: %d/%d/%d/%d",
			g.session.Clears(1), g.session.Clears(2), g.session.Clears(3), g.session.Clears(4)))
	}
	imgui.End()

	stats := g.driver.GetStats()
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 200), imgui.CondOnce)
	if imgui.BeginV("Systems", nil, 0) {
		imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
		imgui.Separator()
		for _, s := range stats.Systems {
			imgui.Text(fmt.Sprintf("%s: avg %s max %s", s.Name, s.AvgDuration, s.MaxDuration))
		}
	}
	imgui.End()
}
