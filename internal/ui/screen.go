// File /ui/screen.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"sternhalma_go/internal/assets"
	"sternhalma_go/internal/game"
	"sternhalma_go/internal/view"
)

const (
	// window size
	WindowWidth  = 800
	WindowHeight = 720
)

// GameScreen implements ebiten.Game for a hot-seat match.
type GameScreen struct {
	ctrl   *view.Controller
	layout view.Layout
	face   text.Face
	status string // last click outcome shown in the HUD

	audioManager *assets.AudioManager
}

// NewGameScreen builds the screen around a fresh game. ctx may be nil to run muted.
func NewGameScreen(ctx *audio.Context) *GameScreen {
	gs := &GameScreen{
		ctrl:   view.NewController(),
		layout: view.NewLayout(WindowWidth, WindowHeight-hudHeight),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
	if ctx != nil {
		gs.audioManager = assets.NewAudioManager(ctx)
	}
	return gs
}

// Update handles keyboard and mouse input once per tick.
func (gs *GameScreen) Update() error {
	gs.audioManager.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.ctrl.Reset()
		gs.status = ""
		return nil
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	at, ok := gs.layout.CellAt(float64(mx), float64(my-hudHeight))
	switch gs.ctrl.Click(at, ok) {
	case view.Selected:
		gs.status = ""
		gs.audioManager.Play(assets.SoundSelect)
	case view.Deselected:
		gs.status = ""
		gs.audioManager.Play(assets.SoundCancel)
	case view.Moved:
		gs.status = ""
		gs.audioManager.Play(assets.SoundMove)
	case view.Rejected:
		gs.status = "illegal move"
		gs.audioManager.Play(assets.SoundIllegal)
	case view.Won:
		gs.status = "press R for a new game"
		gs.audioManager.Play(assets.SoundGameEnd)
	}
	return nil
}

// Draw renders HUD, board, hints and pieces.
func (gs *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	board := gs.ctrl.Game.Board()
	sel, hasSel := gs.ctrl.Selected()
	drawBoard(screen, gs.layout, &board, gs.ctrl.Hints(), sel, hasSel)

	gs.drawHUD(screen)
}

// Layout keeps a fixed logical resolution.
func (gs *GameScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

func (gs *GameScreen) drawHUD(dst *ebiten.Image) {
	var line string
	switch st := gs.ctrl.Game.Status().(type) {
	case game.Playing:
		line = fmt.Sprintf("Turn %d  -  %v to move", st.Turns+1, st.Active)
	case game.Finished:
		line = fmt.Sprintf("%v wins after %d turns", st.Winner, st.TotalTurns)
	}
	if gs.status != "" {
		line += "  (" + gs.status + ")"
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 12)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, line, gs.face, op)
}
