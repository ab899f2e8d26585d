package game

// Player identifies one of the two sides.
type Player uint8

const (
	Player1 Player = iota + 1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Indicator is +1 for Player1 and -1 for Player2.
func (p Player) Indicator() int {
	if p == Player1 {
		return 1
	}
	return -1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "none"
}

func (p Player) index() int {
	if p == Player2 {
		return 1
	}
	return 0
}
