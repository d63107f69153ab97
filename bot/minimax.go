package bot

import "github.com/kudige/othello/game"

// positionWeights values each cell statically: corners are gold, the cells
// beside them are traps, edges are decent. Tuned constants, kept verbatim.
var positionWeights = [game.BoardSize][game.BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// Minimax searches a fixed number of plies with plain minimax over the
// static positional table: no pruning, no caching, no move ordering.
type Minimax struct {
	Depth int
}

func (m Minimax) ChooseMove(g *game.Game, side game.Side) (game.Coord, bool) {
	moves := g.ValidMoves(side)
	if len(moves) == 0 {
		return game.Coord{}, false
	}
	best := moves[0]
	bestVal := -inf
	for _, mv := range moves {
		sim := g.Copy()
		sim.Apply(mv, side)
		val := minimax(sim, side.Opponent(), m.Depth-1, side)
		if val > bestVal {
			bestVal = val
			best = mv
		}
	}
	return best, true
}

const inf = 1 << 30

// evaluateStatic sums the positional table over the board, positive for pov.
func evaluateStatic(g *game.Game, pov game.Side) int {
	score := 0
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			score += positionWeights[r][c] * int(g.Board[r][c])
		}
	}
	return score * int(pov)
}

func minimax(g *game.Game, turn game.Side, depth int, pov game.Side) int {
	moves := g.ValidMoves(turn)
	if depth == 0 {
		return evaluateStatic(g, pov)
	}
	if len(moves) == 0 {
		if g.HasMove(turn.Opponent()) {
			return minimax(g, turn.Opponent(), depth-1, pov)
		}
		return evaluateStatic(g, pov)
	}
	if turn == pov {
		best := -inf
		for _, mv := range moves {
			sim := g.Copy()
			sim.Apply(mv, turn)
			if val := minimax(sim, turn.Opponent(), depth-1, pov); val > best {
				best = val
			}
		}
		return best
	}
	best := inf
	for _, mv := range moves {
		sim := g.Copy()
		sim.Apply(mv, turn)
		if val := minimax(sim, turn.Opponent(), depth-1, pov); val < best {
			best = val
		}
	}
	return best
}
