package tetris

// ClearPass is one round of line clearing: the rows that were full at the
// time, the blocks that fell afterwards and the points it earned.
type ClearPass struct {
	Removed []RemovedRow
	Fallen  []Fall
	Points  int
}

// ClearResult collects the passes of a line clear. Collapsing can complete
// further rows, so one landing may need several passes.
type ClearResult struct {
	Passes []ClearPass
}

// Empty reports whether nothing was cleared.
func (r ClearResult) Empty() bool {
	return len(r.Passes) == 0
}

// Lines returns the total number of rows removed.
func (r ClearResult) Lines() int {
	n := 0
	for _, p := range r.Passes {
		n += len(p.Removed)
	}
	return n
}

// Points returns the total score earned.
func (r ClearResult) Points() int {
	n := 0
	for _, p := range r.Passes {
		n += p.Points
	}
	return n
}

// Rows returns the removed row indices, pass by pass, each pass bottom-up.
// Indices refer to the grid as it was when their pass ran.
func (r ClearResult) Rows() []int {
	var rows []int
	for _, p := range r.Passes {
		rows = append(rows, RowIndices(p.Removed)...)
	}
	return rows
}

// FallenBlocks returns every block that moved during the clear, once each.
func (r ClearResult) FallenBlocks() []*Block {
	seen := make(map[*Block]struct{})
	var blocks []*Block
	for _, p := range r.Passes {
		for _, f := range p.Fallen {
			if _, ok := seen[f.Block]; ok {
				continue
			}
			seen[f.Block] = struct{}{}
			blocks = append(blocks, f.Block)
		}
	}
	return blocks
}

// Landing describes a shape locking into the grid.
type Landing struct {
	Shape   *Shape
	Dropped bool
	Clear   ClearResult
}
