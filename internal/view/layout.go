// Package view holds the window-independent part of the board UI: the mapping
// between cells and pixels and the click-to-move selection logic.
package view

import (
	"math"

	"sternhalma_go/internal/game"
)

const (
	// cells spanned by the widest row and by the column of rows
	spanX = 13.0
	spanY = 16.0
)

var rowStep = math.Sqrt(3) / 2

// Layout places the star inside a w×h area. Rows are rowStep*Cell apart and
// each row is shifted half a cell to the right of the one above.
type Layout struct {
	Cell             float64 // distance between neighbouring centres
	CenterX, CenterY float64 // pixel position of cell (8,8)
}

// NewLayout fits the board into w×h with a margin of half a cell.
func NewLayout(w, h int) Layout {
	cell := math.Min(float64(w)/(spanX+1), float64(h)/(spanY*rowStep+1))
	return Layout{
		Cell:    cell,
		CenterX: float64(w) / 2,
		CenterY: float64(h) / 2,
	}
}

// Center returns the pixel centre of c.
func (l Layout) Center(c game.Coord) (float64, float64) {
	r := float64(c.Row - game.BoardLength/2)
	q := float64(c.Col - game.BoardLength/2)
	x := l.CenterX + (q+r/2)*l.Cell
	y := l.CenterY + r*rowStep*l.Cell
	return x, y
}

// CellAt returns the star cell under pixel (px, py).
func (l Layout) CellAt(px, py float64) (game.Coord, bool) {
	rf := (py - l.CenterY) / (rowStep * l.Cell)
	qf := (px-l.CenterX)/l.Cell - rf/2
	q, r := cubeRound(qf, rf)
	c := game.Coord{Row: r + game.BoardLength/2, Col: q + game.BoardLength/2}
	return c, game.IsValid(c)
}

// cubeRound rounds fractional axial coordinates to the nearest hex.
func cubeRound(qf, rf float64) (int, int) {
	sf := -qf - rf
	rq, rr, rs := math.Round(qf), math.Round(rf), math.Round(sf)

	dq := math.Abs(rq - qf)
	dr := math.Abs(rr - rf)
	ds := math.Abs(rs - sf)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return int(rq), int(rr)
}
