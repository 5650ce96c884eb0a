package metrics

import (
	"adversary/game"
	"sort"

	"github.com/samber/lo"
)

type Summary struct {
	Name     string           `yaml:"name"`
	Games    int              `yaml:"games"`
	Agents   []AgentConfig    `yaml:"agents"`
	MatchUps []MatchUpSummary `yaml:"match_ups"`
}

type MatchUpSummary struct {
	MatchUp   int         `yaml:"match_up"`
	Games     int         `yaml:"games"`
	Wins      map[int]int `yaml:"wins"` // By AgentConfig.ID
	Draws     int         `yaml:"draws"`
	Truncated int         `yaml:"truncated"`
	MeanMoves float64     `yaml:"mean_moves"`
	MeanDepth float64     `yaml:"mean_depth"` // Deepest completed iteration, averaged over moves
	MeanNodes float64     `yaml:"mean_nodes"`
}

// Summarize aggregates game and move records per match-up.
func Summarize(name string, configs []AgentConfig, games []GameRecord, moves []MoveRecord) Summary {
	movesByGame := lo.GroupBy(moves, func(m MoveRecord) int { return m.Game })
	gamesByMatchUp := lo.GroupBy(games, func(g GameRecord) int { return g.MatchUp })

	matchUps := lo.Keys(gamesByMatchUp)
	sort.Ints(matchUps)

	summaries := lo.Map(matchUps, func(matchUp int, _ int) MatchUpSummary {
		played := gamesByMatchUp[matchUp]
		summary := MatchUpSummary{
			MatchUp: matchUp,
			Games:   len(played),
			Wins:    map[int]int{},
		}
		for _, g := range played {
			summary.Wins[g.Agent1] += 0
			summary.Wins[g.Agent2] += 0
			switch g.Winner {
			case game.First:
				summary.Wins[g.Agent1]++
			case game.Second:
				summary.Wins[g.Agent2]++
			default:
				summary.Draws++
			}
			if g.Truncated {
				summary.Truncated++
			}
		}

		playedMoves := lo.FlatMap(played, func(g GameRecord, _ int) []MoveRecord { return movesByGame[g.ID] })
		summary.MeanMoves = mean(lo.SumBy(played, func(g GameRecord) int { return g.TotalMoves }), len(played))
		summary.MeanDepth = mean(lo.SumBy(playedMoves, func(m MoveRecord) int { return m.Depth }), len(playedMoves))
		summary.MeanNodes = mean(lo.SumBy(playedMoves, func(m MoveRecord) int { return m.Nodes }), len(playedMoves))
		return summary
	})

	return Summary{
		Name:     name,
		Games:    len(games),
		Agents:   configs,
		MatchUps: summaries,
	}
}

func mean(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
