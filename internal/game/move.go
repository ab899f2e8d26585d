package game

import (
	"fmt"
	"sort"
)

// Move relocates one piece From -> To. A jump chain is collapsed into a single move.
type Move struct {
	From Coord
	To   Coord
}

// IsStep reports whether the move goes to an adjacent cell.
func (m Move) IsStep() bool {
	for _, d := range Directions {
		if m.From.Add(d) == m.To {
			return true
		}
	}
	return false
}

// IsJump reports whether the move is not a single step.
func (m Move) IsJump() bool { return !m.IsStep() }

// Reverse returns the move going back To -> From.
func (m Move) Reverse() Move { return Move{From: m.To, To: m.From} }

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// LegalDestinations returns every cell mover's piece on src can reach this turn:
// the empty neighbours plus all cells reachable through a chain of jumps.
// The result is sorted row-major. It is empty when src holds no piece of mover.
func LegalDestinations(b *Board[Player], src Coord, mover Player) []Coord {
	if owner, ok := b.Occupant(src); !ok || owner != mover {
		return nil
	}

	var out []Coord

	// 1) steps
	for _, d := range Directions {
		if n := src.Add(d); b.IsEmpty(n) {
			out = append(out, n)
		}
	}

	// 2) jump closure, breadth first over landing cells. A landing is always an
	// even offset from src, so it never coincides with a step target and the
	// piece still standing on src is never jumped over.
	var visited [BoardLength][BoardLength]bool
	visited[src.Row][src.Col] = true
	queue := []Coord{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			over := cur.Add(d)
			land := over.Add(d)
			if b.Get(over).Kind != Occupied || !b.IsEmpty(land) {
				continue
			}
			if visited[land.Row][land.Col] {
				continue
			}
			visited[land.Row][land.Col] = true
			queue = append(queue, land)
			out = append(out, land)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// IsLegal reports whether m is a legal move for mover on b.
func IsLegal(b *Board[Player], m Move, mover Player) bool {
	for _, d := range LegalDestinations(b, m.From, mover) {
		if d == m.To {
			return true
		}
	}
	return false
}

// GenerateMoves lists every legal move of mover on b.
func GenerateMoves(b *Board[Player], mover Player) []Move {
	var moves []Move
	for _, c := range validList {
		for _, to := range LegalDestinations(b, c, mover) {
			moves = append(moves, Move{From: c, To: to})
		}
	}
	return moves
}

// Apply validates m against b for mover and executes it. On error b is untouched.
func Apply(b *Board[Player], m Move, mover Player) error {
	if !m.From.InRange() || !m.To.InRange() {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, m)
	}
	owner, ok := b.Occupant(m.From)
	if !ok {
		return fmt.Errorf("%w: no piece at source %v", ErrIllegalMove, m.From)
	}
	if owner != mover {
		return fmt.Errorf("%w: piece at %v belongs to %v, not %v", ErrIllegalMove, m.From, owner, mover)
	}
	if !IsLegal(b, m, mover) {
		return fmt.Errorf("%w: %v is not reachable", ErrIllegalMove, m)
	}

	// Both cells are on the star at this point, so neither write can fail.
	_ = b.Clear(m.From)
	_ = b.Place(m.To, mover)
	return nil
}
