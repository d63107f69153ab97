package searcher

import (
	"golang.org/x/exp/slices"

	"github.com/kudige/othello/game"
)

// moveKey is the ordering key of one candidate: lower priority expands
// first, and within a priority the move capturing more discs comes first.
type moveKey struct {
	priority int
	captures int
}

func keyFor(g *game.Game, c game.Coord, turn game.Side) moveKey {
	switch {
	case corners[c]:
		return moveKey{priority: 0}
	case unsafeCells[c]:
		return moveKey{priority: 3}
	case isEdge(c):
		return moveKey{priority: 1, captures: len(g.Captures(c, turn))}
	default:
		return moveKey{priority: 2, captures: len(g.Captures(c, turn))}
	}
}

// orderMoves sorts candidates so that the moves most likely to cause an
// alpha-beta cutoff are expanded first: corners, then edges, then interior
// cells, with corner-adjacent cells last. The sort is stable so equal keys
// keep board-scan order. Ordering never changes the search result, only how
// fast it converges.
func orderMoves(g *game.Game, moves []game.Coord, turn game.Side) []game.Coord {
	ordered := make([]game.Coord, len(moves))
	copy(ordered, moves)
	keys := make(map[game.Coord]moveKey, len(moves))
	for _, m := range ordered {
		keys[m] = keyFor(g, m, turn)
	}
	slices.SortStableFunc(ordered, func(a, b game.Coord) int {
		ka, kb := keys[a], keys[b]
		if ka.priority != kb.priority {
			return ka.priority - kb.priority
		}
		return kb.captures - ka.captures
	})
	return ordered
}
