package searcher

import "github.com/kudige/othello/game"

// Corner cells are unflippable and dominate the evaluation by construction.
var corners = map[game.Coord]bool{
	{Row: 0, Col: 0}: true,
	{Row: 0, Col: 7}: true,
	{Row: 7, Col: 0}: true,
	{Row: 7, Col: 7}: true,
}

// unsafeCells are the 12 cells adjacent to a corner. Occupying one tends to
// hand the corner to the opponent, so the evaluator penalizes them.
var unsafeCells = map[game.Coord]bool{
	{Row: 0, Col: 1}: true, {Row: 1, Col: 0}: true, {Row: 1, Col: 1}: true,
	{Row: 0, Col: 6}: true, {Row: 1, Col: 7}: true, {Row: 1, Col: 6}: true,
	{Row: 6, Col: 0}: true, {Row: 7, Col: 1}: true, {Row: 6, Col: 1}: true,
	{Row: 6, Col: 6}: true, {Row: 6, Col: 7}: true, {Row: 7, Col: 6}: true,
}

// phaseWeights are the term weights for one phase of the game. The values
// are tuned constants; behavioral parity matters more than optimality, so
// they are kept verbatim.
type phaseWeights struct {
	disc     int
	mobility int
	corner   int
	edge     int
	unsafe   int
}

func weightsFor(discs int) phaseWeights {
	switch {
	case discs <= 20:
		return phaseWeights{disc: 10, mobility: 80, corner: 800, edge: 40, unsafe: 60}
	case discs <= 52:
		return phaseWeights{disc: 30, mobility: 60, corner: 800, edge: 60, unsafe: 40}
	default:
		return phaseWeights{disc: 100, mobility: 20, corner: 800, edge: 20, unsafe: 0}
	}
}

func isEdge(c game.Coord) bool {
	return c.Row == 0 || c.Row == game.BoardSize-1 || c.Col == 0 || c.Col == game.BoardSize-1
}

// Evaluate scores the position from pov's perspective, combining disc,
// mobility, corner, edge and unsafe-cell differentials with phase-dependent
// weights.
func Evaluate(g *game.Game, pov game.Side) int {
	opponent := pov.Opponent()

	var povDiscs, oppDiscs int
	var povCorners, oppCorners int
	var povEdges, oppEdges int
	var povUnsafe, oppUnsafe int
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			cell := g.Board[r][c]
			if cell == game.Nobody {
				continue
			}
			coord := game.Coord{Row: r, Col: c}
			if cell == pov {
				povDiscs++
				if corners[coord] {
					povCorners++
				} else if isEdge(coord) {
					povEdges++
				}
				if unsafeCells[coord] {
					povUnsafe++
				}
			} else {
				oppDiscs++
				if corners[coord] {
					oppCorners++
				} else if isEdge(coord) {
					oppEdges++
				}
				if unsafeCells[coord] {
					oppUnsafe++
				}
			}
		}
	}

	povMoves := len(g.ValidMoves(pov))
	oppMoves := len(g.ValidMoves(opponent))

	w := weightsFor(povDiscs + oppDiscs)
	score := 10 * (povDiscs - oppDiscs) * w.disc
	score += (povMoves - oppMoves) * w.mobility
	score += (povCorners - oppCorners) * w.corner
	score += (povEdges - oppEdges) * w.edge
	score -= (povUnsafe - oppUnsafe) * w.unsafe
	return score
}
