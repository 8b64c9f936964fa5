package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var blockColors = [tetris.NumColors]color.RGBA{
	tetris.Blue:   {70, 110, 230, 255},
	tetris.Orange: {240, 150, 40, 255},
	tetris.Purple: {160, 80, 220, 255},
	tetris.Red:    {220, 60, 60, 255},
	tetris.Teal:   {50, 200, 200, 255},
	tetris.Yellow: {240, 220, 60, 255},
}

var (
	background = color.RGBA{20, 20, 28, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	ghost      = color.RGBA{200, 200, 200, 255}
)

func (g *Game) drawCell(dst *ebiten.Image, x, y float32, clr color.Color) {
	size := g.cellSize
	vector.DrawFilledRect(dst, x*size+1, y*size+1, size-2, size-2, clr, false)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	game := g.driver.Game()
	grid := game.Grid()
	size := g.cellSize

	vector.DrawFilledRect(screen, 0, 0, float32(grid.Width())*size, float32(grid.Height())*size, background, false)
	for row := range grid.Height() {
		for column := range grid.Width() {
			vector.StrokeRect(screen, float32(column)*size, float32(row)*size, size, size, 1, gridLine, false)
		}
	}

	for _, b := range grid.Blocks() {
		g.drawCell(screen, float32(b.Column), float32(b.Row), blockColors[b.Color()])
	}

	if cells, ok := game.DropPreview(); ok {
		for _, c := range cells {
			vector.StrokeRect(screen, float32(c.Column)*size+2, float32(c.Row)*size+2, size-4, size-4, 1, ghost, false)
		}
	}
	if s := game.FallingShape(); s != nil {
		for _, b := range s.Blocks() {
			g.drawCell(screen, float32(b.Column), float32(b.Row), blockColors[b.Color()])
		}
	}
}

func (g *Game) drawSidebar(screen *ebiten.Image) {
	game := g.driver.Game()
	left := float32(game.Grid().Width())*g.cellSize + 20

	status := fmt.Sprintf("Score: %d\nLevel: %d\nLines: %d\n\nNext:", game.Score(), game.Level(), game.Lines())
	switch {
	case game.State() == tetris.StateGameOver:
		status += "\n\n\n\n\nGAME OVER\nR to restart"
	case g.driver.Input().Paused():
		status += "\n\n\n\n\nPAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, int(left), 10)

	next := game.NextShape()
	if next == nil {
		return
	}
	// draw the next shape around a pivot inside the sidebar
	preview := next.CellsAt(0, tetris.Cell{Column: 1, Row: 0})
	for _, c := range preview {
		x := left + float32(c.Column)*g.cellSize*0.6
		y := 90 + float32(c.Row)*g.cellSize*0.6
		vector.DrawFilledRect(screen, x, y, g.cellSize*0.6-1, g.cellSize*0.6-1, blockColors[next.Color()], false)
	}
}
