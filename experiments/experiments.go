package experiments

import (
	"adversary/engine"
	"adversary/experiments/metrics"
	"adversary/player"
	"adversary/reversi"
	"adversary/searcher"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames   = 10 // Per match up
	TimeBudget = 100 * time.Millisecond
	MaxDepth   = 6
)

type Experiment struct {
	Name     string
	Games    int // Per match up, colours alternate between games
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	MaxTurns int
	Parallel int // Games played at the same time
	OutDir   string
}

// Settings scale the predefined experiments.
type Settings struct {
	Games    int
	Duration time.Duration
	MaxDepth int
	MaxTurns int
	Parallel int
	OutDir   string
}

func (s Settings) experiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) Experiment {
	return Experiment{
		Name:     name,
		Games:    lo.Ternary(s.Games > 0, s.Games, NumGames),
		Configs:  configs,
		MatchUps: matchUps,
		MaxTurns: lo.Ternary(s.MaxTurns > 0, s.MaxTurns, engine.MaxTurns),
		Parallel: s.Parallel,
		OutDir:   s.OutDir,
	}
}

func (s Settings) agent(id int, utility string) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:             id,
		Utility:        utility,
		MaxDepth:       lo.Ternary(s.MaxDepth >= searcher.MinDepth, s.MaxDepth, MaxDepth),
		Duration:       lo.Ternary(s.Duration > 0, s.Duration, TimeBudget),
		Transpositions: true,
	}
}

// Utilities pairs every reversi utility against the static square weights.
func Utilities(s Settings) Experiment {
	baseline := s.agent(0, "static")
	names := lo.Keys(reversi.Utilities)
	sort.Strings(names)
	configs := lo.Map(names, func(name string, i int) metrics.AgentConfig { return s.agent(i+1, name) })
	matchUps := lo.Map(configs, func(c metrics.AgentConfig, _ int) [2]metrics.AgentConfig { return [2]metrics.AgentConfig{baseline, c} })
	return s.experiment("utilities", append(configs, baseline), matchUps)
}

// Transpositions plays the same agent with and without a transposition table.
func Transpositions(s Settings) Experiment {
	with := s.agent(1, "hybrid")
	without := s.agent(2, "hybrid")
	without.Transpositions = false
	return s.experiment("transpositions", []metrics.AgentConfig{with, without}, [][2]metrics.AgentConfig{{with, without}})
}

// Ordering plays square-weight ordering against shuffled ordering.
func Ordering(s Settings) Experiment {
	ordered := s.agent(1, "hybrid")
	ordered.Ordered = true
	shuffled := s.agent(2, "hybrid")
	return s.experiment("ordering", []metrics.AgentConfig{ordered, shuffled}, [][2]metrics.AgentConfig{{ordered, shuffled}})
}

// Predefined experiments by name.
var Predefined = map[string]func(Settings) Experiment{
	"utilities":      Utilities,
	"transpositions": Transpositions,
	"ordering":       Ordering,
}

func validate(configs []metrics.AgentConfig) error {
	for _, config := range configs {
		if _, ok := reversi.Utilities[config.Utility]; !ok {
			return fmt.Errorf("agent %d: unknown utility %q", config.ID, config.Utility)
		}
	}
	return nil
}

// Run plays every match-up of exp on reversi, writes the records under
// exp.OutDir and returns the summary.
func Run(ctx context.Context, exp Experiment) (metrics.Summary, error) {
	if err := validate(exp.Configs); err != nil {
		return metrics.Summary{}, err
	}
	if err := validate(lo.FlatMap(exp.MatchUps, func(m [2]metrics.AgentConfig, _ int) []metrics.AgentConfig { return m[:] })); err != nil {
		return metrics.Summary{}, err
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	total := len(exp.MatchUps) * exp.Games
	gameRecords := make([]metrics.GameRecord, total)
	moveRecords := make([][]metrics.MoveRecord, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(exp.Parallel, 1))
	for mi, matchUp := range exp.MatchUps {
		for i := 0; i < exp.Games; i++ {
			id := mi*exp.Games + i + 1
			// Alternate the starting agent
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(exp.MatchUps), i+1, exp.Games)

				winner, gameMetric, moveMetrics, err := runGame(first, second, exp.MaxTurns)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				gameRecords[id-1] = metrics.GameRecord{
					ID:         id,
					MatchUp:    mi,
					Agent1:     first.ID,
					Agent2:     second.ID,
					GameMetric: gameMetric,
				}
				moveRecords[id-1] = lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
					return metrics.MoveRecord{Game: id, MoveMetric: mm}
				})

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.MatchUps), i+1, winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return metrics.Summary{}, fmt.Errorf("%s experiment failed: %w", exp.Name, err)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	moves := lo.Flatten(moveRecords)
	summary := metrics.Summarize(exp.Name, exp.Configs, gameRecords, moves)
	if err := write(exp, gameRecords, moves, summary); err != nil {
		return summary, err
	}
	return summary, nil
}

func write(exp Experiment, games []metrics.GameRecord, moves []metrics.MoveRecord, summary metrics.Summary) error {
	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(exp.Configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummary(summary)
	if err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored summary")
	return nil
}

// runGame plays one reversi game between two agents and returns the winner.
func runGame(config1, config2 metrics.AgentConfig, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(reversi.New(), createAI(config1), createAI(config2))
	if maxTurns > 0 {
		e.MaxTurns = maxTurns
	}

	winner, gameMetric, moveMetrics, err := e.Run()
	return winner.String(), gameMetric, moveMetrics, err
}

func createAI(config metrics.AgentConfig) *player.AI {
	options := []searcher.Option{
		searcher.WithUtility(reversi.Decisive(reversi.Utilities[config.Utility])),
		searcher.WithMetrics(),
	}

	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if !config.Transpositions {
		options = append(options, searcher.WithoutTranspositions())
	}
	if config.Ordered {
		options = append(options, searcher.WithOrdering(reversi.SquareOrdering))
	}

	return player.NewAI(fmt.Sprintf("agent-%d", config.ID), options...)
}
