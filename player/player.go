package player

import (
	"adversary/game"
	"adversary/searcher"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// Player chooses moves for whichever side is to move in the positions it is
// given.
type Player interface {
	FindMove(pos game.Position) (game.Move, error)
}

// MetricReporter is implemented by players that search.
type MetricReporter interface {
	LastMetric() searcher.SearchMetric
}

// AI plays the move found by an iterative deepening search.
type AI struct {
	Name     string
	searcher *searcher.Negamax
}

func NewAI(name string, options ...searcher.Option) *AI {
	return &AI{Name: name, searcher: searcher.NewNegamax(options...)}
}

func (a *AI) FindMove(pos game.Position) (game.Move, error) {
	result := a.searcher.Search(pos)
	log.Info().
		Str("player", a.Name).
		Interface("move", result.Move).
		Float64("score", result.Score).
		Int("depth", result.Depth).
		Msg("ai-move")
	return result.Move, nil
}

func (a *AI) LastMetric() searcher.SearchMetric {
	return a.searcher.LastMetric()
}

// Random plays a uniformly random legal move.
type Random struct{}

func NewRandom() Random {
	return Random{}
}

func (Random) FindMove(pos game.Position) (game.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves in a position handed to a player")
	}
	return moves[frand.Intn(len(moves))], nil
}
