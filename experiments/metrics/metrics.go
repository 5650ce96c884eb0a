package metrics

import (
	"adversary/game"
	"adversary/searcher"
	"time"
)

// AgentConfig describes a search-backed player taking part in an experiment.
type AgentConfig struct {
	ID             int           `yaml:"id"`
	Utility        string        `yaml:"utility"` // Key into reversi.Utilities
	MaxDepth       int           `yaml:"max_depth"`
	Duration       time.Duration `yaml:"duration"`
	Transpositions bool          `yaml:"transpositions"`
	Ordered        bool          `yaml:"ordered"` // Square-weight ordering instead of shuffling
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Truncated      bool // Stopped by the turn cap before the game ended
}

type GameRecord struct {
	ID      int
	MatchUp int // Index of the match-up the game belongs to
	Agent1 int // AgentConfig.ID playing First
	Agent2 int // AgentConfig.ID playing Second
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
