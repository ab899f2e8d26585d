package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardWith(pieces map[Coord]Player) Board[Player] {
	b := NewBoard[Player]()
	for c, p := range pieces {
		if err := b.Place(c, p); err != nil {
			panic(err)
		}
	}
	return b
}

func TestStepMoves(t *testing.T) {
	b := boardWith(map[Coord]Player{{8, 8}: Player1})

	got := LegalDestinations(&b, Coord{8, 8}, Player1)
	require.ElementsMatch(t, Neighbors(Coord{8, 8}), got)
	require.NotContains(t, got, Coord{8, 8})
}

func TestJumpOverEitherColor(t *testing.T) {
	for _, blocker := range []Player{Player1, Player2} {
		b := boardWith(map[Coord]Player{
			{8, 8}: Player1,
			{8, 9}: blocker,
		})

		got := LegalDestinations(&b, Coord{8, 8}, Player1)
		require.Contains(t, got, Coord{8, 10}, "jump over %v", blocker)
		require.NotContains(t, got, Coord{8, 9})
	}
}

func TestJumpBlockedLanding(t *testing.T) {
	b := boardWith(map[Coord]Player{
		{8, 8}:  Player1,
		{8, 9}:  Player2,
		{8, 10}: Player2,
	})
	require.NotContains(t, LegalDestinations(&b, Coord{8, 8}, Player1), Coord{8, 10})
	require.NotContains(t, LegalDestinations(&b, Coord{8, 8}, Player1), Coord{8, 11})
}

func TestJumpChain(t *testing.T) {
	b := boardWith(map[Coord]Player{
		{8, 8}:  Player1,
		{8, 9}:  Player2,
		{8, 11}: Player1,
		{7, 12}: Player2, // turn the chain up-right from (8,12)
	})

	got := LegalDestinations(&b, Coord{8, 8}, Player1)
	require.Contains(t, got, Coord{8, 10})
	require.Contains(t, got, Coord{8, 12})
	require.Contains(t, got, Coord{6, 12}, "chains may change direction")
	require.True(t, IsLegal(&b, Move{From: Coord{8, 8}, To: Coord{6, 12}}, Player1))
}

func TestJumpChainWithCycle(t *testing.T) {
	// A ring around an empty (8,8) lets a jumper bounce between the centre and
	// the ring landings forever if visited landings were not tracked.
	pieces := map[Coord]Player{{10, 6}: Player1}
	for _, d := range Directions {
		pieces[Coord{8, 8}.Add(d)] = Player2
	}
	b := boardWith(pieces)

	got := LegalDestinations(&b, Coord{10, 6}, Player1)
	for _, d := range Directions {
		land := Coord{8, 8}.Add(d).Add(d)
		if land == (Coord{10, 6}) {
			continue
		}
		require.Contains(t, got, land)
	}
	require.Contains(t, got, Coord{8, 8})
	require.NotContains(t, got, Coord{10, 6})
}

func TestLegalDestinationsForeignOrEmptySource(t *testing.T) {
	b := boardWith(map[Coord]Player{{8, 8}: Player1})

	require.Empty(t, LegalDestinations(&b, Coord{8, 8}, Player2))
	require.Empty(t, LegalDestinations(&b, Coord{8, 9}, Player1))
	require.Empty(t, LegalDestinations(&b, Coord{0, 0}, Player1))
	require.Empty(t, LegalDestinations(&b, Coord{-1, 99}, Player1))
}

func TestInitialMoves(t *testing.T) {
	g := NewGame()
	b := g.Board()

	require.Equal(t, []Coord{{12, 4}, {12, 5}}, LegalDestinations(&b, Coord{13, 4}, Player1))
	require.Equal(t, []Coord{{12, 4}, {12, 6}}, LegalDestinations(&b, Coord{14, 4}, Player1))
	require.Empty(t, LegalDestinations(&b, Coord{16, 4}, Player1))
	require.Len(t, GenerateMoves(&b, Player1), 14)
	require.Len(t, GenerateMoves(&b, Player2), 14)
}

func TestApplyRejectsWithoutMutation(t *testing.T) {
	g := NewGame()
	b := g.Board()
	before := b.Clone()

	cases := []struct {
		name string
		m    Move
	}{
		{"empty source", Move{From: Coord{8, 8}, To: Coord{8, 9}}},
		{"opponent piece", Move{From: Coord{3, 9}, To: Coord{4, 9}}},
		{"unreachable", Move{From: Coord{13, 4}, To: Coord{8, 8}}},
		{"same cell", Move{From: Coord{13, 4}, To: Coord{13, 4}}},
		{"out of range", Move{From: Coord{13, 4}, To: Coord{20, 4}}},
		{"off board", Move{From: Coord{13, 4}, To: Coord{13, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Apply(&b, tc.m, Player1)
			require.ErrorIs(t, err, ErrIllegalMove)
			require.True(t, b.Equal(&before))
		})
	}
}

func TestApplyThenReverseRestoresBoard(t *testing.T) {
	g := NewGame()
	// Walk a deterministic line of play, checking every legal move on the way.
	for ply := 0; ply < 30; ply++ {
		st := g.Status().(Playing)
		b := g.Board()
		moves := GenerateMoves(&b, st.Active)
		require.NotEmpty(t, moves)

		for _, m := range moves {
			work := b.Clone()
			require.NoError(t, Apply(&work, m, st.Active), "%v", m)
			require.NoError(t, Apply(&work, m.Reverse(), st.Active), "reverse of %v", m)
			require.True(t, work.Equal(&b), "%v did not round trip", m)
		}

		require.NoError(t, g.Play(moves[ply%len(moves)]))
	}
}

func TestMoveKinds(t *testing.T) {
	require.True(t, Move{From: Coord{8, 8}, To: Coord{7, 9}}.IsStep())
	require.True(t, Move{From: Coord{8, 8}, To: Coord{8, 10}}.IsJump())
	require.Equal(t, Move{From: Coord{8, 10}, To: Coord{8, 8}}, Move{From: Coord{8, 8}, To: Coord{8, 10}}.Reverse())
}
