// Command othello runs bot-vs-bot arena matches, or suggests a move for a
// saved game when -saved is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/kudige/othello/bot"
	"github.com/kudige/othello/engine"
	"github.com/kudige/othello/game"
)

type arenaConfig struct {
	Games int    `mapstructure:"ARENA_GAMES"`
	Black string `mapstructure:"ARENA_BLACK"`
	White string `mapstructure:"ARENA_WHITE"`
}

func loadConfig(path string) (*arenaConfig, error) {
	viper.SetDefault("ARENA_GAMES", 1)
	viper.SetDefault("ARENA_BLACK", "Sasha intern")
	viper.SetDefault("ARENA_WHITE", "David")
	viper.AutomaticEnv()
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	var cfg arenaConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	configPath := flag.String("config", "", "optional arena config file")
	savedPath := flag.String("saved", "", "saved game file: print the bot's move and exit")
	botName := flag.String("bot", "Sasha senior", "strategy to consult in -saved mode")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *savedPath != "" {
		if err := suggestMove(*savedPath, *botName); err != nil {
			log.Fatal().Err(err).Msg("saved-game mode failed")
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("bad arena config")
	}
	if err := runArena(cfg); err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
}

// suggestMove loads a saved game and prints the chosen strategy's move for
// the side to move.
func suggestMove(path, botName string) error {
	g, err := game.LoadFile(path)
	if err != nil {
		return err
	}
	strategy, err := bot.Get(botName)
	if err != nil {
		return err
	}
	if g.Over() {
		fmt.Println("Game is already over.")
		return nil
	}
	move, ok := strategy.ChooseMove(g, g.Turn)
	if !ok {
		fmt.Println("No valid moves available.")
		return nil
	}
	fmt.Printf("Next move: %d %d\n", move.Row, move.Col)
	return nil
}

// runArena plays the configured matchup and logs a summary tally.
func runArena(cfg *arenaConfig) error {
	black, err := bot.Get(cfg.Black)
	if err != nil {
		return err
	}
	white, err := bot.Get(cfg.White)
	if err != nil {
		return err
	}

	log.Info().
		Str("black", cfg.Black).
		Str("white", cfg.White).
		Int("games", cfg.Games).
		Str("roster", strings.Join(bot.Names(), ", ")).
		Msg("arena starting")

	var blackWins, whiteWins, draws int
	for i := 0; i < cfg.Games; i++ {
		blackScore, whiteScore := engine.NewMatch(black, white).Run()
		switch {
		case blackScore > whiteScore:
			blackWins++
		case whiteScore > blackScore:
			whiteWins++
		default:
			draws++
		}
	}

	log.Info().
		Int("black_wins", blackWins).
		Int("white_wins", whiteWins).
		Int("draws", draws).
		Msg("arena finished")
	return nil
}
