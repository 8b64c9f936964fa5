package main

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/driver"
)

// Held keys repeat after dasFrames, then every arrFrames.
const (
	dasFrames = 10
	arrFrames = 2
)

var keyActions = []struct {
	key    ebiten.Key
	action driver.Action
	repeat bool
}{
	{ebiten.KeyArrowLeft, driver.ActionLeft, true},
	{ebiten.KeyArrowRight, driver.ActionRight, true},
	{ebiten.KeyArrowDown, driver.ActionSoftDrop, true},
	{ebiten.KeyArrowUp, driver.ActionRotate, false},
	{ebiten.KeySpace, driver.ActionHardDrop, false},
	{ebiten.KeyR, driver.ActionRestart, false},
}

// Game implements ebiten.Game around a standard driver.
type Game struct {
	driver   *driver.Standard
	session  *driver.Session
	backend  *ebitenbackend.EbitenBackend
	overlay  bool
	cellSize float32
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.driver.Input().TogglePause()
	}
	for _, ka := range keyActions {
		if pressed(ka.key, ka.repeat) {
			g.driver.Input().Push(ka.action)
		}
	}

	g.backend.BeginFrame()
	g.driver.Once(1.0 / 60.0)
	if g.overlay {
		g.drawOverlay()
	}
	g.backend.EndFrame()
	return nil
}

func pressed(key ebiten.Key, repeat bool) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return repeat && d >= dasFrames && (d-dasFrames)%arrFrames == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBoard(screen)
	g.drawSidebar(screen)
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
