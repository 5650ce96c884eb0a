package metrics

import (
	"adversary/game"
	"adversary/searcher"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRecords() ([]GameRecord, []MoveRecord) {
	games := []GameRecord{
		{ID: 1, MatchUp: 0, Agent1: 1, Agent2: 2, GameMetric: GameMetric{Winner: game.First, TotalMoves: 2}},
		{ID: 2, MatchUp: 0, Agent1: 2, Agent2: 1, GameMetric: GameMetric{Winner: game.First, TotalMoves: 4}},
		{ID: 3, MatchUp: 1, Agent1: 1, Agent2: 3, GameMetric: GameMetric{Winner: game.None, TotalMoves: 1, Truncated: true}},
	}
	moves := []MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.First, SearchMetric: searcher.SearchMetric{Depth: 2, Nodes: 10}}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.Second, SearchMetric: searcher.SearchMetric{Depth: 4, Nodes: 30}}},
		{Game: 3, MoveMetric: MoveMetric{Step: 1, Player: game.First, SearchMetric: searcher.SearchMetric{Depth: 3, Nodes: 5}}},
	}
	return games, moves
}

func TestSummarize(t *testing.T) {
	games, moves := sampleRecords()
	summary := Summarize("test", nil, games, moves)

	require.Equal(t, 3, summary.Games)
	require.Len(t, summary.MatchUps, 2)

	first := summary.MatchUps[0]
	require.Equal(t, 2, first.Games)
	require.Equal(t, map[int]int{1: 1, 2: 1}, first.Wins)
	require.Zero(t, first.Draws)
	require.Equal(t, 3.0, first.MeanMoves)
	require.Equal(t, 3.0, first.MeanDepth)
	require.Equal(t, 20.0, first.MeanNodes)

	second := summary.MatchUps[1]
	require.Equal(t, 1, second.Draws)
	require.Equal(t, 1, second.Truncated)
	require.Equal(t, map[int]int{1: 0, 3: 0}, second.Wins)
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "unit"), filepath.Dir(w.Dir()))

	configs := []AgentConfig{{ID: 1, Utility: "hybrid", MaxDepth: 4, Duration: time.Second, Transpositions: true}}
	games, moves := sampleRecords()
	require.NoError(t, w.WriteAgentConfigs(configs))
	require.NoError(t, w.WriteGameRecords(games))
	require.NoError(t, w.WriteMoveRecords(moves))
	require.NoError(t, w.WriteSummary(Summarize("unit", configs, games, moves)))

	read := func(file string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), file))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	agents := read("agent_configs.csv")
	require.Equal(t, []string{"1", "hybrid", "4", "1s", "true", "false"}, agents[1])

	gameRows := read("game_records.csv")
	require.Len(t, gameRows, 4)
	require.Equal(t, "match_up", gameRows[0][1])
	require.Equal(t, "first", gameRows[1][5])

	moveRows := read("move_records.csv")
	require.Len(t, moveRows, 4)
	require.Equal(t, "second", moveRows[2][2])
	require.Equal(t, "30", moveRows[2][6])

	data, err := os.ReadFile(filepath.Join(w.Dir(), "summary.yaml"))
	require.NoError(t, err)
	var summary Summary
	require.NoError(t, yaml.Unmarshal(data, &summary))
	require.Equal(t, "unit", summary.Name)
	require.Equal(t, "hybrid", summary.Agents[0].Utility)
	require.Equal(t, time.Second, summary.Agents[0].Duration)
	require.Len(t, summary.MatchUps, 2)
}
