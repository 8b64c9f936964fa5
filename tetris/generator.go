package tetris

import (
	"math/rand/v2"
	"time"
)

// Piece is what a Generator hands out: a kind and a color for the next shape.
type Piece struct {
	Kind  Kind
	Color Color
}

// Generator supplies the sequence of pieces a game is played with.
type Generator interface {
	Next() Piece
}

// NewRand returns a PCG-backed source for the given seed. A zero seed is
// replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomGenerator draws kind and color independently and uniformly.
type RandomGenerator struct {
	rng *rand.Rand
}

func NewRandomGenerator(rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{rng: rng}
}

func (g *RandomGenerator) Next() Piece {
	return Piece{
		Kind:  Kind(g.rng.IntN(NumKinds)),
		Color: Color(g.rng.IntN(NumColors)),
	}
}

// BagGenerator deals kinds from a shuffled bag holding each of the seven once,
// refilling it when empty. Colors stay uniform.
type BagGenerator struct {
	rng *rand.Rand
	bag []Kind
}

func NewBagGenerator(rng *rand.Rand) *BagGenerator {
	return &BagGenerator{rng: rng}
}

func (g *BagGenerator) Next() Piece {
	if len(g.bag) == 0 {
		g.bag = Kinds()
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	kind := g.bag[0]
	g.bag = g.bag[1:]
	return Piece{Kind: kind, Color: Color(g.rng.IntN(NumColors))}
}

// SequenceGenerator replays a fixed list of pieces, cycling at the end.
type SequenceGenerator struct {
	pieces []Piece
	next   int
}

// NewSequenceGenerator panics when given no pieces.
func NewSequenceGenerator(pieces ...Piece) *SequenceGenerator {
	if len(pieces) == 0 {
		panic("tetris: sequence generator needs at least one piece")
	}
	return &SequenceGenerator{pieces: pieces}
}

func (g *SequenceGenerator) Next() Piece {
	p := g.pieces[g.next]
	g.next = (g.next + 1) % len(g.pieces)
	return p
}
