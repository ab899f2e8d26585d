package game

import (
	"fmt"
)

// CellKind is the tri-state of a cell: off the star, empty, or holding a piece.
type CellKind uint8

const (
	OffBoard CellKind = iota
	Empty
	Occupied
)

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return "off-board"
}

// Cell is the content of one grid position. Value is meaningful only when Kind is Occupied.
type Cell[T comparable] struct {
	Kind  CellKind
	Value T
}

// EmptyCell returns an empty cell.
func EmptyCell[T comparable]() Cell[T] { return Cell[T]{Kind: Empty} }

// OccupiedBy returns a cell holding v.
func OccupiedBy[T comparable](v T) Cell[T] { return Cell[T]{Kind: Occupied, Value: v} }

// Board is a 17×17 grid of cells generic over what occupies a cell.
// It is a value: assigning or returning a Board copies the whole grid.
type Board[T comparable] struct {
	cells [BoardLength][BoardLength]Cell[T]
}

// NewBoard returns a board with every star cell empty.
func NewBoard[T comparable]() Board[T] {
	var b Board[T]
	for _, c := range validList {
		b.cells[c.Row][c.Col].Kind = Empty
	}
	return b
}

// Get returns the cell at c. Coordinates outside the grid read as OffBoard.
func (b *Board[T]) Get(c Coord) Cell[T] {
	if !c.InRange() {
		return Cell[T]{}
	}
	return b.cells[c.Row][c.Col]
}

// Set writes one cell. Off-board targets and OffBoard values are rejected without mutation.
func (b *Board[T]) Set(c Coord, cell Cell[T]) error {
	if !c.InRange() {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}
	if !mask[c.Row][c.Col] {
		return fmt.Errorf("%w: %v", ErrOffBoard, c)
	}
	if cell.Kind == OffBoard {
		return fmt.Errorf("%w: cannot mark %v off-board", ErrOffBoard, c)
	}
	if cell.Kind == Empty {
		var zero T
		cell.Value = zero
	}
	b.cells[c.Row][c.Col] = cell
	return nil
}

// Place puts v on c.
func (b *Board[T]) Place(c Coord, v T) error { return b.Set(c, OccupiedBy(v)) }

// Clear empties c.
func (b *Board[T]) Clear(c Coord) error { return b.Set(c, EmptyCell[T]()) }

// IsEmpty reports whether c is a star cell with no piece.
func (b *Board[T]) IsEmpty(c Coord) bool { return b.Get(c).Kind == Empty }

// Occupant returns the piece on c, if any.
func (b *Board[T]) Occupant(c Coord) (T, bool) {
	cell := b.Get(c)
	return cell.Value, cell.Kind == Occupied
}

// Count returns how many cells hold v.
func (b *Board[T]) Count(v T) int {
	n := 0
	for _, c := range validList {
		cell := b.cells[c.Row][c.Col]
		if cell.Kind == Occupied && cell.Value == v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board[T]) Clone() Board[T] { return *b }

// Equal reports whether both boards hold the same content everywhere.
func (b *Board[T]) Equal(o *Board[T]) bool { return b.cells == o.cells }
