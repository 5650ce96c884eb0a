package main

import (
	"adversary/config"
	"adversary/engine"
	"adversary/experiments"
	"adversary/game"
	"adversary/player"
	"adversary/reversi"
	"adversary/searcher"
	"adversary/tictactoe"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, overridden by ADVERSARY_* variables")
	mode := flag.String("mode", "play", "play or experiment")
	first := flag.String("first", "human", "First player: human, ai or random")
	second := flag.String("second", "ai", "Second player: human, ai or random")
	experiment := flag.String("experiment", "utilities", "Experiment to run: "+strings.Join(experimentNames(), ", "))
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	switch *mode {
	case "play":
		err = play(cfg, *first, *second)
	case "experiment":
		err = runExperiment(cfg, *experiment)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("stopped")
	}
}

func experimentNames() []string {
	names := lo.Keys(experiments.Predefined)
	sort.Strings(names)
	return names
}

func runExperiment(cfg *config.Config, name string) error {
	build, ok := experiments.Predefined[name]
	if !ok {
		return fmt.Errorf("unknown experiment %q", name)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := experiments.Run(ctx, build(cfg.ExperimentSettings()))
	if err != nil {
		return err
	}
	for _, m := range summary.MatchUps {
		log.Info().Msgf("matchup %d: wins %v, draws %d over %d games", m.MatchUp+1, m.Wins, m.Draws, m.Games)
	}
	return nil
}

func play(cfg *config.Config, first, second string) error {
	var start game.Position
	options := cfg.SearchOptions()
	switch cfg.Game {
	case "tictactoe":
		start = tictactoe.New()
		options = append(options, searcher.WithUtility(tictactoe.Utility))
	case "reversi":
		start = reversi.New()
		options = append(options, searcher.WithUtility(reversi.Decisive(reversi.Utilities[cfg.Search.Utility])))
		if cfg.Search.Ordered {
			options = append(options, searcher.WithOrdering(reversi.SquareOrdering))
		}
	}

	p1, err := newPlayer(first, "first", options)
	if err != nil {
		return err
	}
	p2, err := newPlayer(second, "second", options)
	if err != nil {
		return err
	}

	e := engine.LocalEngine(start, p1, p2)
	e.Observer = func(step int, move game.Move, next game.Position) {
		fmt.Printf("%d. %s plays %v\n", step, next.Player().Opponent(), move)
	}
	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}

	if err := player.NewRenderer(os.Stdout).Render(e.State); err != nil {
		return err
	}
	if winner == game.None {
		fmt.Println("Draw!")
	} else {
		fmt.Printf("%s player wins!\n", winner)
	}
	return nil
}

func newPlayer(kind, name string, options []searcher.Option) (player.Player, error) {
	switch kind {
	case "human":
		return player.NewHuman(os.Stdin, os.Stdout), nil
	case "ai":
		return player.NewAI(name, options...), nil
	case "random":
		return player.NewRandom(), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
