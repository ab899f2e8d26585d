package selfplay

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"sternhalma_go/internal/game"
)

// Sample is one recorded position: the board as seen by the mover and the move it chose.
type Sample struct {
	Tensor [game.TensorLen]float32
	Move   game.Move
	Mover  game.Player
}

// Record is one finished or capped game.
type Record struct {
	ID       uuid.UUID
	Samples  []Sample
	Finished bool
	Winner   game.Player // zero unless Finished
	Turns    int
}

// Outcome returns +1 if p won, -1 if p lost and 0 when the game was capped.
func (r *Record) Outcome(p game.Player) int {
	switch {
	case !r.Finished:
		return 0
	case r.Winner == p:
		return 1
	default:
		return -1
	}
}

// PlayOneGame plays uniformly random legal moves until the game ends or
// maxTurns moves were made. The first openingPlies moves are not recorded.
func PlayOneGame(r *rand.Rand, maxTurns, openingPlies int) Record {
	g := game.NewGame()
	rec := Record{ID: uuid.New()}

	for g.Turns() < maxTurns {
		active, ok := g.ActivePlayer()
		if !ok {
			break
		}
		moves := g.LegalMoves()
		if len(moves) == 0 {
			// No way forward for the side to move; keep it as an unfinished game.
			break
		}
		mv := moves[r.Intn(len(moves))]

		var sample Sample
		record := g.Turns() >= openingPlies
		if record {
			sample = Sample{Tensor: g.Tensor(), Move: mv, Mover: active}
		}
		if err := g.Play(mv); err != nil {
			// LegalMoves only returns playable moves.
			panic(err)
		}
		if record {
			rec.Samples = append(rec.Samples, sample)
		}
	}

	rec.Turns = g.Turns()
	if st, ok := g.Status().(game.Finished); ok {
		rec.Finished = true
		rec.Winner = st.Winner
	}
	return rec
}
