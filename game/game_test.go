package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := New()

	require.Equal(t, White, g.Turn, "White moves first")
	require.False(t, g.HasLastMove, "fresh game has no last move")
	require.Equal(t, White, g.Board[3][3])
	require.Equal(t, White, g.Board[4][4])
	require.Equal(t, Black, g.Board[3][4])
	require.Equal(t, Black, g.Board[4][3])

	black, white := g.Score()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
	require.Equal(t, 60, g.Empties())
}

func TestInitialValidMoves(t *testing.T) {
	g := New()

	t.Run("black", func(t *testing.T) {
		want := []Coord{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
		require.ElementsMatch(t, want, g.ValidMoves(Black))
	})

	t.Run("white", func(t *testing.T) {
		want := []Coord{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
		require.ElementsMatch(t, want, g.ValidMoves(White))
	})
}

func TestApplyFlips(t *testing.T) {
	t.Run("black plays (2,3)", func(t *testing.T) {
		g := New()
		require.True(t, g.Apply(Coord{2, 3}, Black))
		require.Equal(t, Black, g.Board[2][3], "placed disc")
		require.Equal(t, Black, g.Board[3][3], "flipped disc")
		black, white := g.Score()
		require.Equal(t, 4, black)
		require.Equal(t, 1, white)
	})

	t.Run("white plays (2,4)", func(t *testing.T) {
		g := New()
		require.True(t, g.Apply(Coord{2, 4}, White))
		require.Equal(t, White, g.Board[2][4], "placed disc")
		require.Equal(t, White, g.Board[3][4], "flipped disc")
		black, white := g.Score()
		require.Equal(t, 1, black)
		require.Equal(t, 4, white)
	})
}

func TestApplyRejectsIllegalMoves(t *testing.T) {
	cases := []struct {
		name string
		move Coord
	}{
		{"occupied cell", Coord{3, 3}},
		{"no captures", Coord{0, 0}},
		{"off board", Coord{-1, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			before := *g
			require.False(t, g.Apply(tc.move, White))
			require.Equal(t, before, *g, "rejected move must not mutate the state")
		})
	}
}

func TestLastMoveTracking(t *testing.T) {
	g := New()
	require.False(t, g.HasLastMove)
	require.True(t, g.Apply(Coord{2, 4}, White))
	require.True(t, g.HasLastMove)
	require.Equal(t, Coord{2, 4}, g.LastMove)
}

func TestTurnAdvances(t *testing.T) {
	g := New()
	require.True(t, g.Apply(Coord{2, 4}, White))
	require.Equal(t, Black, g.Turn, "turn goes to the opponent when it can reply")
}

func TestTurnPassing(t *testing.T) {
	t.Run("opponent without moves is skipped", func(t *testing.T) {
		// After White completes the top-left run, Black has no reply
		// anywhere, but White can still play (5,4).
		g := &Game{Turn: White}
		g.Board[0][0] = White
		g.Board[0][1] = Black
		g.Board[5][5] = Black
		g.Board[5][6] = Black
		g.Board[5][7] = White

		require.True(t, g.Apply(Coord{0, 2}, White))
		require.False(t, g.HasMove(Black))
		require.Equal(t, White, g.Turn, "turn reverts to the mover when the opponent must pass")
	})

	t.Run("game over when neither side can move", func(t *testing.T) {
		g := &Game{Turn: White}
		g.Board[0][0] = White
		g.Board[0][1] = Black

		require.True(t, g.Apply(Coord{0, 2}, White))
		require.Equal(t, Nobody, g.Turn)
		require.True(t, g.Over())
	})
}

// The side-to-move invariant must hold at every reachable state: either the
// side to move has a legal move, or the game is over and neither side has
// one.
func TestTurnInvariantOverFullGame(t *testing.T) {
	g := New()
	for plies := 0; !g.Over(); plies++ {
		require.Less(t, plies, 128, "game must terminate")
		moves := g.ValidMoves(g.Turn)
		require.NotEmpty(t, moves, "side to move must have a legal move")
		require.True(t, g.Apply(moves[0], g.Turn))
	}
	require.False(t, g.HasMove(Black))
	require.False(t, g.HasMove(White))
}

func TestCopyIsIndependent(t *testing.T) {
	g := New()
	clone := g.Copy()
	require.True(t, clone.Apply(Coord{2, 4}, White))
	require.Equal(t, Nobody, g.Board[2][4], "mutating the copy must not touch the original")
	require.Equal(t, White, g.Turn)
}

func TestPlaceUnplaceRoundTrip(t *testing.T) {
	g := New()
	require.True(t, g.Apply(Coord{2, 4}, White))
	before := *g

	u, ok := g.Place(Coord{2, 3}, Black)
	require.True(t, ok)
	require.NotEqual(t, before, *g)
	g.Unplace(u)
	require.Equal(t, before, *g, "undo must restore the exact previous state")
}

func TestCapturesMultiDirection(t *testing.T) {
	// Black at (3,3) would capture in two directions at once.
	g := &Game{Turn: Black}
	g.Board[3][4] = White
	g.Board[3][5] = Black
	g.Board[4][3] = White
	g.Board[5][3] = Black

	captured := g.Captures(Coord{3, 3}, Black)
	require.ElementsMatch(t, []Coord{{3, 4}, {4, 3}}, captured)
}

func TestCapturesRunMustBeBounded(t *testing.T) {
	g := &Game{Turn: Black}
	g.Board[3][4] = White
	g.Board[3][5] = White
	// Run ends on an empty cell: no capture.
	require.Empty(t, g.Captures(Coord{3, 3}, Black))
	// Run ends off the board: no capture.
	g.Board[3][6] = White
	g.Board[3][7] = White
	require.Empty(t, g.Captures(Coord{3, 3}, Black))
}

func TestHashDistinguishesTurnAndDepth(t *testing.T) {
	g := New()
	require.NotEqual(t, g.Hash(Black, 3), g.Hash(White, 3))
	require.NotEqual(t, g.Hash(Black, 3), g.Hash(Black, 4))
	require.Equal(t, g.Hash(Black, 3), g.Hash(Black, 3))

	other := New()
	other.Apply(Coord{2, 4}, White)
	require.NotEqual(t, g.Hash(Black, 3), other.Hash(Black, 3))
}
