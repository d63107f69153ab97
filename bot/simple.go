package bot

import "github.com/kudige/othello/game"

// Greedy picks the move flipping the most discs. Ties go to the first such
// move in board-scan order.
type Greedy struct{}

func (Greedy) ChooseMove(g *game.Game, side game.Side) (game.Coord, bool) {
	moves := g.ValidMoves(side)
	if len(moves) == 0 {
		return game.Coord{}, false
	}
	best := moves[0]
	bestCaptures := len(g.Captures(best, side))
	for _, m := range moves[1:] {
		if captures := len(g.Captures(m, side)); captures > bestCaptures {
			bestCaptures = captures
			best = m
		}
	}
	return best, true
}

// Lookahead simulates each move one ply ahead and picks the one leaving the
// opponent the fewest options. Ties go to scan order.
type Lookahead struct{}

func (Lookahead) ChooseMove(g *game.Game, side game.Side) (game.Coord, bool) {
	moves := g.ValidMoves(side)
	if len(moves) == 0 {
		return game.Coord{}, false
	}
	best := moves[0]
	minOpponent := -1
	for _, m := range moves {
		sim := g.Copy()
		sim.Apply(m, side)
		opponentMoves := len(sim.ValidMoves(side.Opponent()))
		if minOpponent < 0 || opponentMoves < minOpponent {
			minOpponent = opponentMoves
			best = m
		}
	}
	return best, true
}
