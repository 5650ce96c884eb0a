package engine

import (
	"adversary/experiments/metrics"
	"adversary/game"
	"adversary/player"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const MaxTurns = 500

// Observer is told about every move right after it is played.
type Observer func(step int, move game.Move, next game.Position)

type Engine struct {
	State    game.Position
	Players  map[game.Player]player.Player
	MaxTurns int
	Observer Observer
}

// LocalEngine plays first against second from the given start position. The
// side to move in start decides who begins.
func LocalEngine(start game.Position, first, second player.Player) *Engine {
	if first == nil || second == nil {
		panic("need two players")
	}
	return &Engine{
		State:    start,
		Players:  map[game.Player]player.Player{game.First: first, game.Second: second},
		MaxTurns: MaxTurns,
	}
}

// Run plays until the position is terminal or MaxTurns moves have been made.
// A player error or an illegal move ends the game with an error.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.State.Player())

	turn := 1
	for !e.State.Terminal() && turn <= e.MaxTurns {
		mover := e.State.Player()
		p, ok := e.Players[mover]
		if !ok {
			panic(fmt.Sprintf("no player for side %s", mover))
		}

		move, err := p.FindMove(e.State)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %s failed to move on turn %d: %w", mover, turn, err)
		}
		if !game.IsLegal(e.State, move) {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %s chose illegal move %v on turn %d", mover, move, turn)
		}

		moveMetric := metrics.MoveMetric{Step: turn, Player: mover, Move: move}
		if reporter, ok := p.(player.MetricReporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		e.State = e.State.Play(move)
		log.Debug().Int("turn", turn).Str("player", mover.String()).Interface("move", move).Msg("played")
		if e.Observer != nil {
			e.Observer(turn, move, e.State)
		}
		turn++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Truncated = !e.State.Terminal()
	if gameMetric.Truncated {
		log.Info().Msgf("stopped after %d turns without a result", e.MaxTurns)
	} else {
		gameMetric.Winner = e.State.Result()
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)
	}

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
