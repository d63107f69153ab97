// Package game implements the Othello board, move generation and capture
// resolution. It is the single source of truth for the rules; the searcher
// and bot packages only ever talk to the board through it.
package game

import (
	"encoding/binary"
	"hash/fnv"
)

// BoardSize is the side length of the square board.
const BoardSize = 8

// Side identifies a player. Board cells reuse the same encoding: a cell
// holds the side that owns it, or Nobody when empty. Nobody is also the
// side-to-move marker for a finished game.
type Side int8

const (
	Nobody Side = 0
	Black  Side = 1
	White  Side = -1
)

// Opponent returns the other color. Opponent of Nobody is Nobody.
func (s Side) Opponent() Side { return -s }

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "nobody"
	}
}

// Board is the 8x8 cell grid.
type Board [BoardSize][BoardSize]Side

// Coord is a board position. Row and Col are in [0,8).
type Coord struct {
	Row int
	Col int
}

// Inside reports whether the coordinate is on the board.
func (c Coord) Inside() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// The 8 compass directions used for capture scans.
var directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Game is the canonical game state: the grid, the side to move and the most
// recently played coordinate. Turn is Nobody once neither side can move.
type Game struct {
	Board       Board
	Turn        Side
	LastMove    Coord
	HasLastMove bool
}

// New returns the standard starting position with the four center discs
// placed. White moves first.
func New() *Game {
	g := &Game{Turn: White}
	mid := BoardSize / 2
	g.Board[mid-1][mid-1] = White
	g.Board[mid][mid] = White
	g.Board[mid-1][mid] = Black
	g.Board[mid][mid-1] = Black
	return g
}

// Copy returns an independent copy of the state.
func (g *Game) Copy() *Game {
	clone := *g
	return &clone
}

// Over reports whether neither side has a legal move.
func (g *Game) Over() bool { return g.Turn == Nobody }

// Captures returns the opponent coordinates that would flip if side played
// at c. The move is legal iff the result is non-empty. An occupied or
// off-board c captures nothing.
func (g *Game) Captures(c Coord, side Side) []Coord {
	if !c.Inside() || g.Board[c.Row][c.Col] != Nobody {
		return nil
	}
	opponent := side.Opponent()
	var captured []Coord
	for _, d := range directions {
		n := Coord{c.Row + d.Row, c.Col + d.Col}
		run := 0
		for n.Inside() && g.Board[n.Row][n.Col] == opponent {
			run++
			n = Coord{n.Row + d.Row, n.Col + d.Col}
		}
		// A run counts only when bounded by one of side's own discs.
		if run > 0 && n.Inside() && g.Board[n.Row][n.Col] == side {
			n = Coord{c.Row + d.Row, c.Col + d.Col}
			for i := 0; i < run; i++ {
				captured = append(captured, n)
				n = Coord{n.Row + d.Row, n.Col + d.Col}
			}
		}
	}
	return captured
}

// ValidMoves returns every legal move for side in row-major scan order.
// Scan order is the tie-break order relied on by all strategies.
func (g *Game) ValidMoves(side Side) []Coord {
	var moves []Coord
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			cell := Coord{r, c}
			if g.Board[r][c] == Nobody && len(g.Captures(cell, side)) > 0 {
				moves = append(moves, cell)
			}
		}
	}
	return moves
}

// HasMove reports whether side has at least one legal move.
func (g *Game) HasMove(side Side) bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if g.Board[r][c] == Nobody && len(g.Captures(Coord{r, c}, side)) > 0 {
				return true
			}
		}
	}
	return false
}

// Undo records the inverse of a placement so search can revert it instead of
// duplicating the board per node.
type Undo struct {
	move        Coord
	flipped     []Coord
	prevTurn    Side
	prevLast    Coord
	prevHasLast bool
}

// Place plays side at c, flips the captured discs and advances the turn.
// It returns false and leaves the state untouched when the move is illegal.
// On success the returned Undo reverts the placement via Unplace.
//
// Turn passing: if the opponent has no reply, the turn stays with side; if
// side has none either, the turn becomes Nobody and the game is over.
func (g *Game) Place(c Coord, side Side) (Undo, bool) {
	captured := g.Captures(c, side)
	if len(captured) == 0 {
		return Undo{}, false
	}
	u := Undo{
		move:        c,
		flipped:     captured,
		prevTurn:    g.Turn,
		prevLast:    g.LastMove,
		prevHasLast: g.HasLastMove,
	}
	g.Board[c.Row][c.Col] = side
	g.LastMove = c
	g.HasLastMove = true
	for _, f := range captured {
		g.Board[f.Row][f.Col] = side
	}
	g.Turn = side.Opponent()
	if !g.HasMove(g.Turn) {
		g.Turn = side
		if !g.HasMove(g.Turn) {
			g.Turn = Nobody
		}
	}
	return u, true
}

// Unplace reverts a placement previously returned by Place.
func (g *Game) Unplace(u Undo) {
	side := g.Board[u.move.Row][u.move.Col]
	g.Board[u.move.Row][u.move.Col] = Nobody
	for _, f := range u.flipped {
		g.Board[f.Row][f.Col] = side.Opponent()
	}
	g.Turn = u.prevTurn
	g.LastMove = u.prevLast
	g.HasLastMove = u.prevHasLast
}

// Apply plays side at c. It reports whether the move was legal; an illegal
// move leaves the state unmodified.
func (g *Game) Apply(c Coord, side Side) bool {
	_, ok := g.Place(c, side)
	return ok
}

// Score tallies the discs of each color.
func (g *Game) Score() (black, white int) {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch g.Board[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Discs returns the total number of discs on the board.
func (g *Game) Discs() int {
	black, white := g.Score()
	return black + white
}

// Empties returns the number of empty cells.
func (g *Game) Empties() int {
	return BoardSize*BoardSize - g.Discs()
}

// StateHash is a transposition key.
type StateHash uint64

// Hash derives a transposition key from the board contents, the side to
// move inside the search and the remaining depth.
func (g *Game) Hash(turn Side, depth int) StateHash {
	hasher := fnv.New64a()
	var cells [BoardSize * BoardSize]byte
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			cells[r*BoardSize+c] = byte(g.Board[r][c])
		}
	}
	hasher.Write(cells[:])
	binary.Write(hasher, binary.LittleEndian, int64(turn))
	binary.Write(hasher, binary.LittleEndian, int64(depth))
	return StateHash(hasher.Sum64())
}
