package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkDropUntilGameOver(b *testing.B) {
	for b.Loop() {
		c, err := tetris.NewController(tetris.WithGenerator(tetris.NewBagGenerator(tetris.NewRand(1))))
		if err != nil {
			b.Fatal(err)
		}
		c.BeginGame()
		for c.State() != tetris.StateGameOver {
			c.DropShape()
			c.NewShape()
		}
	}
}

func BenchmarkRemoveCompletedRows(b *testing.B) {
	g := tetris.NewGrid(10, 20)
	for b.Loop() {
		for row := 16; row < 20; row++ {
			fillRow(g, row)
		}
		g.Insert(tetris.NewBlock(0, 15, tetris.Red))
		removed := g.RemoveCompletedRows()
		g.CollapseRowsAbove(tetris.RowIndices(removed))
		g.ClearAll()
	}
}
