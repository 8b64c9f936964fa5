package driver_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

func ExampleNewStandard() {
	game, err := tetris.NewController(tetris.WithGenerator(tetris.NewSequenceGenerator(
		tetris.Piece{Kind: tetris.KindI, Color: tetris.Teal},
		tetris.Piece{Kind: tetris.KindO, Color: tetris.Yellow},
	)))
	if err != nil {
		panic(err)
	}

	st := driver.NewStandard(game, driver.Setup{SpawnDelay: 100 * time.Millisecond})
	session := driver.NewSession(nil)
	st.Listen(session)
	game.BeginGame()

	st.Input().Push(driver.ActionHardDrop)
	st.Once(0)
	fmt.Println(game.State(), game.Grid().Len())

	st.Once(0.1)
	fmt.Println(game.State(), game.FallingShape())

	cur := session.Current()
	fmt.Println("pieces", cur.Pieces, "drops", cur.Drops)

	// Output:
	// landed 4
	// falling O0@{4 0}
	// pieces 1 drops 1
}
