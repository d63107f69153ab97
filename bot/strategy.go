// Package bot provides the playable strategy tiers and the named registry
// the orchestrator selects them from.
package bot

import (
	"github.com/pkg/errors"

	"github.com/kudige/othello/game"
	"github.com/kudige/othello/searcher"
)

// Strategy produces a move for side in the given position, or reports that
// side has no legal move. Implementations never modify the caller's state.
type Strategy interface {
	ChooseMove(g *game.Game, side game.Side) (game.Coord, bool)
}

// The bot roster. Each name is bound to one strategy tier; the Sasha tiers
// share the strong engine at decreasing depth budgets.
var registry = map[string]func() Strategy{
	"David":        func() Strategy { return Greedy{} },
	"Roger":        func() Strategy { return Lookahead{} },
	"Minnie":       func() Strategy { return Minimax{Depth: 3} },
	"Sasha senior": func() Strategy { return NewSearchBot(6) },
	"Sasha junior": func() Strategy { return NewSearchBot(5) },
	"Sasha intern": func() Strategy { return NewSearchBot(4) },
}

// names in roster order, weakest first.
var names = []string{"David", "Roger", "Minnie", "Sasha intern", "Sasha junior", "Sasha senior"}

// Names lists every registered strategy name.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Get returns a fresh instance of the named strategy. An unknown name is a
// configuration error; no search is attempted.
func Get(name string) (Strategy, error) {
	build, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown strategy %q", name)
	}
	return build(), nil
}

// SearchBot plays with the strong engine.
type SearchBot struct {
	engine *searcher.Engine
}

// NewSearchBot returns a strong-engine strategy searching up to maxDepth
// plies.
func NewSearchBot(maxDepth int) *SearchBot {
	return &SearchBot{engine: searcher.New(searcher.WithMaxDepth(maxDepth))}
}

func (b *SearchBot) ChooseMove(g *game.Game, side game.Side) (game.Coord, bool) {
	return b.engine.FindMove(g, side)
}

// Stats exposes the engine's counters from its last search.
func (b *SearchBot) Stats() searcher.Stats {
	return b.engine.Stats()
}
