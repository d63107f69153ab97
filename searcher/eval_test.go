package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kudige/othello/game"
)

func TestWeightsFor(t *testing.T) {
	cases := []struct {
		discs int
		want  phaseWeights
	}{
		{4, phaseWeights{disc: 10, mobility: 80, corner: 800, edge: 40, unsafe: 60}},
		{20, phaseWeights{disc: 10, mobility: 80, corner: 800, edge: 40, unsafe: 60}},
		{21, phaseWeights{disc: 30, mobility: 60, corner: 800, edge: 60, unsafe: 40}},
		{52, phaseWeights{disc: 30, mobility: 60, corner: 800, edge: 60, unsafe: 40}},
		{53, phaseWeights{disc: 100, mobility: 20, corner: 800, edge: 20, unsafe: 0}},
		{64, phaseWeights{disc: 100, mobility: 20, corner: 800, edge: 20, unsafe: 0}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, weightsFor(tc.discs), "discs=%d", tc.discs)
	}
}

func TestUnsafeCellSet(t *testing.T) {
	require.Len(t, unsafeCells, 12)
	for c := range unsafeCells {
		require.False(t, corners[c], "corners are never unsafe cells")
	}
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	g := game.New()
	require.Zero(t, Evaluate(g, game.Black))
	require.Zero(t, Evaluate(g, game.White))
}

func TestEvaluateCornerDominatesDiscCount(t *testing.T) {
	// Black holds one corner; White holds five interior discs. The corner
	// term outweighs the disc deficit.
	g := &game.Game{Turn: game.Black}
	g.Board[0][0] = game.Black
	g.Board[3][3] = game.White
	g.Board[3][4] = game.White
	g.Board[4][3] = game.White
	g.Board[4][4] = game.White
	g.Board[5][5] = game.White

	require.Positive(t, Evaluate(g, game.Black))
	require.Negative(t, Evaluate(g, game.White))
}

func TestEvaluateIsZeroSumBetweenPerspectives(t *testing.T) {
	g := game.New()
	require.True(t, g.Apply(game.Coord{Row: 2, Col: 4}, game.White))
	require.True(t, g.Apply(game.Coord{Row: 2, Col: 3}, game.Black))

	require.Equal(t, Evaluate(g, game.Black), -Evaluate(g, game.White))
}

func TestEvaluateUnsafePenalty(t *testing.T) {
	// Identical material except Black sits next to a corner.
	unsafe := &game.Game{}
	unsafe.Board[1][1] = game.Black
	unsafe.Board[4][4] = game.White

	safe := &game.Game{}
	safe.Board[3][3] = game.Black
	safe.Board[4][4] = game.White

	require.Less(t, Evaluate(unsafe, game.Black), Evaluate(safe, game.Black))
}
