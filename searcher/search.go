// Package searcher implements the strong Othello engine: iterative-deepening
// alpha-beta search over the heuristic evaluator, with move ordering, a
// per-search transposition cache, a tiny opening book and an exact endgame
// solver.
package searcher

import "github.com/kudige/othello/game"

// inf bounds every reachable evaluation while leaving room to negate.
const inf = 1 << 30

// endgameEmpties is the threshold at which the search stops trusting the
// heuristic horizon and solves the remaining game exactly.
const endgameEmpties = 12

// Stats counts work done by the most recent search.
type Stats struct {
	Nodes     int
	CacheHits int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth sets the nominal maximum search depth.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithoutBook disables the opening book.
func WithoutBook() Option {
	return func(e *Engine) {
		e.useBook = false
	}
}

// Engine is the strong search engine. An Engine is stateless between calls:
// the transposition cache lives and dies inside one FindMove invocation, so
// unrelated searches can never contaminate each other.
type Engine struct {
	maxDepth int
	useBook  bool
	stats    Stats
}

// New returns an engine searching 6 plies by default.
func New(options ...Option) *Engine {
	e := &Engine{maxDepth: 6, useBook: true}
	for _, option := range options {
		option(e)
	}
	return e
}

// Stats returns the counters from the most recent FindMove call.
func (e *Engine) Stats() Stats { return e.stats }

// FindMove returns the engine's move for side, or false when side has no
// legal move. The caller's state is never modified.
func (e *Engine) FindMove(g *game.Game, side game.Side) (game.Coord, bool) {
	e.stats = Stats{}

	if e.useBook && g.Discs() == 4 {
		if side == game.White {
			return game.Coord{Row: 2, Col: 4}, true
		}
		return game.Coord{Row: 2, Col: 3}, true
	}

	moves := g.ValidMoves(side)
	if len(moves) == 0 {
		return game.Coord{}, false
	}

	maxDepth := e.maxDepth
	if empties := g.Empties(); empties <= endgameEmpties {
		// Few enough cells left to play the game out exactly.
		maxDepth = empties
	}

	sim := g.Copy()
	table := make(map[game.StateHash]int)
	ordered := orderMoves(sim, moves, side)

	best := ordered[0]
	for depth := 1; depth <= maxDepth; depth++ {
		bestVal := -inf
		for _, m := range ordered {
			u, _ := sim.Place(m, side)
			val := e.alphabeta(sim, table, depth-1, -inf, inf, side.Opponent(), side)
			sim.Unplace(u)
			if val > bestVal {
				bestVal = val
				best = m
			}
		}
	}
	return best, true
}

// alphabeta returns the value of the position from pov's perspective with
// turn to move and depth plies remaining. A side with no move passes, which
// costs one ply; when neither side can move the position is scored as is.
func (e *Engine) alphabeta(g *game.Game, table map[game.StateHash]int, depth, alpha, beta int, turn, pov game.Side) int {
	key := g.Hash(turn, depth)
	if val, ok := table[key]; ok {
		e.stats.CacheHits++
		return val
	}
	e.stats.Nodes++

	moves := g.ValidMoves(turn)
	if depth == 0 || (len(moves) == 0 && !g.HasMove(turn.Opponent())) {
		val := Evaluate(g, pov)
		table[key] = val
		return val
	}
	if len(moves) == 0 {
		val := e.alphabeta(g, table, depth-1, alpha, beta, turn.Opponent(), pov)
		table[key] = val
		return val
	}

	var value int
	if turn == pov {
		value = -inf
		for _, m := range orderMoves(g, moves, turn) {
			u, _ := g.Place(m, turn)
			child := e.alphabeta(g, table, depth-1, alpha, beta, turn.Opponent(), pov)
			g.Unplace(u)
			if child > value {
				value = child
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		value = inf
		for _, m := range orderMoves(g, moves, turn) {
			u, _ := g.Place(m, turn)
			child := e.alphabeta(g, table, depth-1, alpha, beta, turn.Opponent(), pov)
			g.Unplace(u)
			if child < value {
				value = child
			}
			if value < beta {
				beta = value
			}
			if alpha >= beta {
				break
			}
		}
	}
	table[key] = value
	return value
}
