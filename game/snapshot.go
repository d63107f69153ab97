package game

import (
	"encoding/json"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Snapshot is the wire shape of a saved game: the grid as signed cell
// values, the side to move and the optional last move as [row, col].
type Snapshot struct {
	Board   [][]int `json:"board"`
	Current int     `json:"current"`
	Last    *[2]int `json:"last"`
}

// Snapshot captures the current state in its persistable form.
func (g *Game) Snapshot() Snapshot {
	board := make([][]int, BoardSize)
	for r := 0; r < BoardSize; r++ {
		board[r] = make([]int, BoardSize)
		for c := 0; c < BoardSize; c++ {
			board[r][c] = int(g.Board[r][c])
		}
	}
	s := Snapshot{Board: board, Current: int(g.Turn)}
	if g.HasLastMove {
		s.Last = &[2]int{g.LastMove.Row, g.LastMove.Col}
	}
	return s
}

// FromSnapshot builds a Game from an external snapshot. The snapshot is
// validated structurally first; on any violation no state is constructed
// and the returned error lists every problem found.
func FromSnapshot(s Snapshot) (*Game, error) {
	var errs *multierror.Error
	if len(s.Board) != BoardSize {
		errs = multierror.Append(errs, errors.Errorf("board has %d rows, want %d", len(s.Board), BoardSize))
	}
	for r, row := range s.Board {
		if len(row) != BoardSize {
			errs = multierror.Append(errs, errors.Errorf("row %d has %d cells, want %d", r, len(row), BoardSize))
			continue
		}
		for c, cell := range row {
			if cell != int(Nobody) && cell != int(Black) && cell != int(White) {
				errs = multierror.Append(errs, errors.Errorf("cell (%d,%d) has invalid value %d", r, c, cell))
			}
		}
	}
	if s.Current != int(Nobody) && s.Current != int(Black) && s.Current != int(White) {
		errs = multierror.Append(errs, errors.Errorf("invalid side to move %d", s.Current))
	}
	if s.Last != nil {
		last := Coord{s.Last[0], s.Last[1]}
		if !last.Inside() {
			errs = multierror.Append(errs, errors.Errorf("last move (%d,%d) is off the board", last.Row, last.Col))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(err, "invalid snapshot")
	}

	g := &Game{Turn: Side(s.Current)}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			g.Board[r][c] = Side(s.Board[r][c])
		}
	}
	if s.Last != nil {
		g.LastMove = Coord{s.Last[0], s.Last[1]}
		g.HasLastMove = true
	}
	return g, nil
}

// savedFile matches the formats the web client writes: either a bare
// snapshot or a history list, in which case the last entry is the live one.
type savedFile struct {
	History []Snapshot `json:"history"`
}

// LoadFile reads a saved game from path. Files holding a history take the
// final position.
func LoadFile(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read saved game %s", path)
	}
	var wrapped savedFile
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.History) > 0 {
		return FromSnapshot(wrapped.History[len(wrapped.History)-1])
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse saved game %s", path)
	}
	return FromSnapshot(s)
}
