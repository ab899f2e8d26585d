package game

import (
	"fmt"
)

// Status is either Playing or Finished. Consumers switch on the concrete type.
type Status interface {
	isStatus()
}

// Playing is the status of a game in progress.
type Playing struct {
	Active Player
	Turns  int
}

// Finished is terminal; no move is accepted afterwards.
type Finished struct {
	Winner     Player
	TotalTurns int
}

func (Playing) isStatus()  {}
func (Finished) isStatus() {}

// Game owns the board and the turn/termination state machine.
// A Game is not safe for concurrent use; run independent Games in parallel instead.
type Game struct {
	board  Board[Player]
	status Status
}

// NewGame places ten pieces per player on their home triangles; Player1 moves first.
func NewGame() *Game {
	b := NewBoard[Player]()
	for _, p := range []Player{Player1, Player2} {
		for _, c := range homeCells[p.index()] {
			_ = b.Place(c, p)
		}
	}
	return &Game{
		board:  b,
		status: Playing{Active: Player1, Turns: 0},
	}
}

// newGameFrom builds a game around an arbitrary position.
func newGameFrom(b Board[Player], active Player, turns int) *Game {
	return &Game{board: b, status: Playing{Active: active, Turns: turns}}
}

// Status returns the current status.
func (g *Game) Status() Status { return g.status }

// Board returns a snapshot of the board.
func (g *Game) Board() Board[Player] { return g.board }

// ApplyMove moves the active player's piece from src to dst, then either ends
// the game or hands the turn to the opponent. A rejected move changes nothing.
func (g *Game) ApplyMove(src, dst Coord) error {
	st, ok := g.status.(Playing)
	if !ok {
		return ErrGameOver
	}
	if err := Apply(&g.board, Move{From: src, To: dst}, st.Active); err != nil {
		return err
	}

	turns := st.Turns + 1
	if HasWon(&g.board, st.Active) {
		g.status = Finished{Winner: st.Active, TotalTurns: turns}
		return nil
	}
	g.status = Playing{Active: st.Active.Opponent(), Turns: turns}
	return nil
}

// Play is ApplyMove for a Move value.
func (g *Game) Play(m Move) error { return g.ApplyMove(m.From, m.To) }

// LegalDestinations returns the destinations for src if it holds a piece of the active player.
func (g *Game) LegalDestinations(src Coord) []Coord {
	st, ok := g.status.(Playing)
	if !ok {
		return nil
	}
	return LegalDestinations(&g.board, src, st.Active)
}

// LegalMoves lists every legal move of the active player; nil once finished.
func (g *Game) LegalMoves() []Move {
	st, ok := g.status.(Playing)
	if !ok {
		return nil
	}
	return GenerateMoves(&g.board, st.Active)
}

// HasWon reports whether every cell of p's target triangle holds one of p's pieces.
func HasWon(b *Board[Player], p Player) bool {
	for _, c := range homeCells[p.Opponent().index()] {
		if owner, ok := b.Occupant(c); !ok || owner != p {
			return false
		}
	}
	return true
}

// ActivePlayer returns the player to move; ok is false once the game is finished.
func (g *Game) ActivePlayer() (Player, bool) {
	st, ok := g.status.(Playing)
	return st.Active, ok
}

// PlayerIndicator is +1 / -1 for the player to move and 0 when finished.
func (g *Game) PlayerIndicator() int {
	switch st := g.status.(type) {
	case Playing:
		return st.Active.Indicator()
	case Finished:
		return 0
	}
	panic(fmt.Sprintf("unknown status %T", g.status))
}

// WinnerIndicator is +1 / -1 for the winner and 0 while playing.
func (g *Game) WinnerIndicator() int {
	switch st := g.status.(type) {
	case Playing:
		return 0
	case Finished:
		return st.Winner.Indicator()
	}
	panic(fmt.Sprintf("unknown status %T", g.status))
}

// Turns returns the number of accepted moves.
func (g *Game) Turns() int {
	switch st := g.status.(type) {
	case Playing:
		return st.Turns
	case Finished:
		return st.TotalTurns
	}
	panic(fmt.Sprintf("unknown status %T", g.status))
}

// IsFinished reports whether the game has a winner.
func (g *Game) IsFinished() bool {
	_, done := g.status.(Finished)
	return done
}
