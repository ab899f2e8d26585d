// internal/game/encode.go
package game

const (
	PlaneCnt  = 3 // [me, opponent, valid cell]
	PlaneLen  = BoardLength * BoardLength
	TensorLen = PlaneCnt * PlaneLen
)

// EncodeBoardTensor projects b into a flat [3][17][17] float32 tensor.
// plane 0: me, plane 1: opponent, plane 2: every star cell.
func EncodeBoardTensor(b *Board[Player], me Player) [TensorLen]float32 {
	var t [TensorLen]float32
	opp := me.Opponent()
	for _, c := range validList {
		idx := CoordIndex(c)
		t[2*PlaneLen+idx] = 1
		switch owner, ok := b.Occupant(c); {
		case !ok:
		case owner == me:
			t[idx] = 1
		case owner == opp:
			t[PlaneLen+idx] = 1
		}
	}
	return t
}

// Tensor encodes the game from the point of view of the player to move, or of
// the winner once the game is finished.
func (g *Game) Tensor() [TensorLen]float32 {
	var me Player
	switch st := g.status.(type) {
	case Playing:
		me = st.Active
	case Finished:
		me = st.Winner
	}
	return EncodeBoardTensor(&g.board, me)
}

// CoordIndex maps a cell to 0..288 (row-major).
func CoordIndex(c Coord) int { return c.Row*BoardLength + c.Col }

// IndexCoord is the inverse of CoordIndex.
func IndexCoord(i int) Coord { return Coord{Row: i / BoardLength, Col: i % BoardLength} }
