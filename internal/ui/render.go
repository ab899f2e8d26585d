// File /ui/render.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sternhalma_go/internal/game"
	"sternhalma_go/internal/view"
)

// vertical space reserved above the board for the status line
const hudHeight = 40

var (
	colorBackground = color.RGBA{0x10, 0x10, 0x30, 0xff}
	colorHole       = color.RGBA{0x50, 0x50, 0x70, 0xff}
	colorStepHint   = color.RGBA{0x40, 0xd0, 0x40, 0xff}
	colorJumpHint   = color.RGBA{0xe0, 0xd0, 0x30, 0xff}
	colorSelected   = color.RGBA{0xff, 0xff, 0xff, 0xff}

	pieceColors = map[game.Player]color.Color{
		game.Player1: color.RGBA{0xd0, 0x30, 0x30, 0xff},
		game.Player2: color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
	}
)

// drawBoard draws every hole, then the destination hints of the selected
// piece (green for a step, yellow for a jump), then the pieces.
func drawBoard(dst *ebiten.Image, l view.Layout, b *game.Board[game.Player], hints []game.Coord, sel game.Coord, hasSel bool) {
	hole := float32(l.Cell * 0.2)
	piece := float32(l.Cell * 0.38)

	for _, c := range game.ValidCoords() {
		x, y := center(l, c)
		vector.DrawFilledCircle(dst, x, y, hole, colorHole, true)
	}

	for _, to := range hints {
		x, y := center(l, to)
		clr := colorJumpHint
		if (game.Move{From: sel, To: to}).IsStep() {
			clr = colorStepHint
		}
		vector.StrokeCircle(dst, x, y, piece, 3, clr, true)
	}

	for _, c := range game.ValidCoords() {
		p, ok := b.Occupant(c)
		if !ok {
			continue
		}
		x, y := center(l, c)
		vector.DrawFilledCircle(dst, x, y, piece, pieceColors[p], true)
		if hasSel && c == sel {
			vector.StrokeCircle(dst, x, y, piece+3, 2, colorSelected, true)
		}
	}
}

// center converts a cell to screen space below the HUD.
func center(l view.Layout, c game.Coord) (float32, float32) {
	x, y := l.Center(c)
	return float32(x), float32(y + hudHeight)
}
