package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned for every rejected move. The game is left unchanged.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidCoordinate marks a coordinate outside the 17×17 index space.
	ErrInvalidCoordinate = fmt.Errorf("%w: coordinate out of range", ErrIllegalMove)
	// ErrGameOver is returned when a move is submitted to a finished game.
	ErrGameOver = fmt.Errorf("%w: game is finished", ErrIllegalMove)
	// ErrOffBoard is returned by Board.Set for cells outside the star.
	ErrOffBoard = errors.New("cell is off the board")
)
