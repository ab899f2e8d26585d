package view

import (
	"errors"

	"github.com/rs/zerolog/log"

	"sternhalma_go/internal/game"
)

// Event tells the renderer what a click did.
type Event int

const (
	None Event = iota
	Selected
	Deselected
	Moved
	Rejected
	Won
)

// Controller turns board clicks into moves on a Game.
// First click picks one of the active player's pieces, second click moves it.
type Controller struct {
	Game     *game.Game
	selected *game.Coord
	hints    []game.Coord
}

// NewController starts a fresh game.
func NewController() *Controller {
	return &Controller{Game: game.NewGame()}
}

// Selected returns the picked source cell, if any.
func (c *Controller) Selected() (game.Coord, bool) {
	if c.selected == nil {
		return game.Coord{}, false
	}
	return *c.selected, true
}

// Hints returns the legal destinations of the selected piece.
func (c *Controller) Hints() []game.Coord { return c.hints }

// Reset throws the current game away.
func (c *Controller) Reset() {
	c.Game = game.NewGame()
	c.clear()
	log.Info().Msg("new game")
}

// Click handles a click on cell at; onBoard is false for clicks outside the star.
func (c *Controller) Click(at game.Coord, onBoard bool) Event {
	active, playing := c.Game.ActivePlayer()
	if !playing {
		return None
	}
	if !onBoard {
		return c.clear()
	}

	board := c.Game.Board()
	owner, occupied := board.Occupant(at)
	if occupied && owner == active {
		// Clicking the selected piece again drops the selection.
		if c.selected != nil && *c.selected == at {
			return c.clear()
		}
		c.selected = &at
		c.hints = c.Game.LegalDestinations(at)
		return Selected
	}
	if c.selected == nil {
		return None
	}

	from := *c.selected
	err := c.Game.ApplyMove(from, at)
	if err != nil {
		if !errors.Is(err, game.ErrIllegalMove) {
			log.Error().Err(err).Msg("apply move")
		}
		log.Debug().Err(err).Stringer("player", active).Msg("move rejected")
		c.clear()
		return Rejected
	}
	c.clear()
	log.Debug().
		Stringer("player", active).
		Stringer("move", game.Move{From: from, To: at}).
		Int("turns", c.Game.Turns()).
		Msg("move applied")

	if st, done := c.Game.Status().(game.Finished); done {
		log.Info().Stringer("winner", st.Winner).Int("turns", st.TotalTurns).Msg("game over")
		return Won
	}
	return Moved
}

func (c *Controller) clear() Event {
	had := c.selected != nil
	c.selected, c.hints = nil, nil
	if had {
		return Deselected
	}
	return None
}
