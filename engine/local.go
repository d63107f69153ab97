// Package engine runs complete local games between two strategies.
package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kudige/othello/bot"
	"github.com/kudige/othello/game"
)

// maxPlies caps the match loop. A full game is at most 60 placements; the
// cap only matters if a strategy misbehaves.
const maxPlies = 128

// Match is one local game between two strategies.
type Match struct {
	ID    uuid.UUID
	State *game.Game
	Black bot.Strategy
	White bot.Strategy
}

// NewMatch sets up a fresh game between the two strategies.
func NewMatch(black, white bot.Strategy) *Match {
	return &Match{
		ID:    uuid.New(),
		State: game.New(),
		Black: black,
		White: white,
	}
}

// Run plays the match to the end and returns the final disc counts. Turn
// passing is handled inside the game state; the loop only ever asks the
// side to move.
func (m *Match) Run() (blackScore, whiteScore int) {
	log.Info().
		Str("match", m.ID.String()).
		Str("starting", m.State.Turn.String()).
		Msg("match started")

	for ply := 0; !m.State.Over() && ply < maxPlies; ply++ {
		side := m.State.Turn
		strategy := m.Black
		if side == game.White {
			strategy = m.White
		}

		move, ok := strategy.ChooseMove(m.State, side)
		if !ok {
			// The game state guarantees the side to move has a move, so a
			// refusal means the strategy is broken.
			log.Error().
				Str("match", m.ID.String()).
				Str("side", side.String()).
				Msg("strategy returned no move for a playable position")
			break
		}
		if !m.State.Apply(move, side) {
			log.Error().
				Str("match", m.ID.String()).
				Str("side", side.String()).
				Int("row", move.Row).
				Int("col", move.Col).
				Msg("strategy returned an illegal move")
			break
		}
		log.Debug().
			Str("match", m.ID.String()).
			Str("side", side.String()).
			Int("row", move.Row).
			Int("col", move.Col).
			Msg("move played")
	}

	blackScore, whiteScore = m.State.Score()
	log.Info().
		Str("match", m.ID.String()).
		Int("black", blackScore).
		Int("white", whiteScore).
		Msg("match over")
	return blackScore, whiteScore
}
