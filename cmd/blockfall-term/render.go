package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

var blockStyles = [tetris.NumColors]tcell.Style{
	tetris.Blue:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	tetris.Orange: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	tetris.Purple: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	tetris.Red:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	tetris.Teal:   tcell.StyleDefault.Foreground(tcell.ColorTeal),
	tetris.Yellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle  = tcell.StyleDefault
)

// RenderSystem draws the board two terminal columns per cell so blocks look
// square. It runs last in the frame.
type RenderSystem struct {
	Screen tcell.Screen
}

func (s *RenderSystem) Execute(frame *driver.Frame) {
	scr := s.Screen
	game := frame.Game
	grid := game.Grid()
	scr.Clear()

	for row := 0; row <= grid.Height(); row++ {
		s.cell(-1, row, '│', wallStyle)
		s.cell(grid.Width(), row, '│', wallStyle)
	}
	for column := -1; column <= grid.Width(); column++ {
		s.cell(column, grid.Height(), '─', wallStyle)
	}

	if cells, ok := game.DropPreview(); ok {
		for _, c := range cells {
			s.cell(c.Column, c.Row, '░', ghostStyle)
		}
	}
	for _, b := range grid.Blocks() {
		s.cell(b.Column, b.Row, '█', blockStyles[b.Color()])
	}
	if shape := game.FallingShape(); shape != nil {
		for _, b := range shape.Blocks() {
			s.cell(b.Column, b.Row, '█', blockStyles[b.Color()])
		}
	}

	x := (grid.Width()+2)*2 + 2
	lines := []string{
		fmt.Sprintf("Score %d", game.Score()),
		fmt.Sprintf("Level %d", game.Level()),
		fmt.Sprintf("Lines %d", game.Lines()),
		"",
		"Next",
	}
	switch {
	case game.State() == tetris.StateGameOver:
		lines = append(lines, "", "", "", "GAME OVER", "r to restart")
	case frame.Input.Paused():
		lines = append(lines, "", "", "", "PAUSED")
	}
	for i, line := range lines {
		s.text(x, i, line)
	}

	if next := game.NextShape(); next != nil {
		for _, c := range next.CellsAt(0, tetris.Cell{Column: 1, Row: 0}) {
			px := x + c.Column*2
			scr.SetContent(px, 5+c.Row, '█', nil, blockStyles[next.Color()])
			scr.SetContent(px+1, 5+c.Row, '█', nil, blockStyles[next.Color()])
		}
	}

	scr.Show()
}

// cell draws at board coordinates; the left wall sits at column -1.
func (s *RenderSystem) cell(column, row int, r rune, style tcell.Style) {
	x := (column + 1) * 2
	s.Screen.SetContent(x, row, r, nil, style)
	s.Screen.SetContent(x+1, row, r, nil, style)
}

func (s *RenderSystem) text(x, y int, str string) {
	for i, r := range []rune(str) {
		s.Screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
