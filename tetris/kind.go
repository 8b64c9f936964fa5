package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of tetromino kinds.
const NumKinds = 7

// NumRotations is the number of rotation states of every kind.
const NumRotations = 4

var kindNames = [NumKinds]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// offsets[kind][rotation][i] is the position of block i relative to the pivot.
// Each rotation is the previous one turned clockwise around the pivot, and
// block i keeps its identity across rotations. Rotation 0 never reaches above
// the pivot row, so every kind fits when spawned on row 0.
var offsets = [NumKinds][NumRotations][4]Cell{
	KindI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}},
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
		{{1, 0}, {0, 0}, {-1, 0}, {0, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, 0}},
	},
	KindS: {
		{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {1, -1}, {0, -1}},
		{{0, 0}, {0, -1}, {1, 1}, {1, 0}},
	},
	KindZ: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
		{{1, 0}, {0, 0}, {0, -1}, {-1, -1}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
	},
	KindJ: {
		{{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{1, 0}, {0, 0}, {-1, 0}, {-1, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, -1}},
	},
	KindL: {
		{{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, -1}},
		{{1, 0}, {0, 0}, {-1, 0}, {1, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, 1}},
	},
}

// Offsets returns the block offsets of kind k at the given rotation.
func (k Kind) Offsets(rotation int) [4]Cell {
	return offsets[k][normalizeRotation(rotation)]
}

func normalizeRotation(rotation int) int {
	return ((rotation % NumRotations) + NumRotations) % NumRotations
}
